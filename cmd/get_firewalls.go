package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/panw-tools/panw-utils/internal/creds"
	"github.com/panw-tools/panw-utils/internal/format"
	"github.com/panw-tools/panw-utils/internal/panos"
)

var (
	fwState  string
	fwTerse  bool
	fwRaw    bool
	fwDomain string
)

// getFirewallsCmd represents the 'get firewalls' command
var getFirewallsCmd = &cobra.Command{
	Use:   "firewalls [flags] [panorama]",
	Short: "Get Panorama managed firewalls",
	Long: `Get Panorama managed firewalls, including management address and serial number

Examples:
  # Print firewalls managed by the saved default Panorama:

    > panw-utils get firewalls

  # Print connected firewalls only, hostnames only, for piping:

    > panw-utils get firewalls --state connected --terse panorama01.example.com

  # Feed the firewall list to another command:

    > panw-utils get firewalls --terse | panw-utils get interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains([]string{"connected", "disconnected", "all"}, fwState) {
			return fmt.Errorf("invalid state %q (connected, disconnected, all)", fwState)
		}

		panorama := cfg.Panorama
		if len(args) > 0 {
			panorama = args[0]
		}
		if panorama == "" {
			var err error
			panorama, err = creds.PromptLine("Panorama IP/Hostname: ")
			if err != nil {
				return err
			}
			if panorama == "" {
				return fmt.Errorf("no panorama specified")
			}
		}

		cred, err := resolveCredential(cmd, panorama)
		if err != nil {
			return err
		}

		start := time.Now()
		client := newClient(cred.Key)

		opCmd := "<show><devices><all></all></devices></show>"
		if fwState == "connected" {
			opCmd = "<show><devices><connected></connected></devices></show>"
		}

		fmt.Fprintf(os.Stderr, "Getting managed firewalls from %v ... ", panorama)
		raw, err := client.Op(cmd.Context(), panorama, opCmd)
		if err != nil {
			format.Red.Fprintf(os.Stderr, "fail\n\n")
			return err
		}
		format.Green.Fprintf(os.Stderr, "success\n\n")

		if fwRaw {
			fmt.Printf("%s\n", raw)
			return nil
		}

		list, err := panos.ParseDeviceList(panorama, raw)
		if err != nil {
			return err
		}

		var devices []panos.Device
		for _, d := range list.Devices {
			if fwState == "disconnected" && d.Connected == "yes" {
				continue
			}
			devices = append(devices, d)
		}

		if fwTerse {
			names := make([]string, 0, len(devices))
			for _, d := range devices {
				if d.Hostname == "" {
					continue
				}
				names = append(names, d.Hostname+fwDomain)
			}
			format.Terse(os.Stdout, names)
			return nil
		}

		tbl := format.NewTable(os.Stdout, "Host", "MgmtIP", "Serial", "Model", "Connected", "Uptime", "SwVersion")
		for _, d := range devices {
			tbl.AddRow(d.Hostname, d.Address, d.Serial, d.Model, d.Connected, d.Uptime, d.SoftwareVersion)
		}
		tbl.Print()

		format.Summary(os.Stderr, start)
		return nil
	},
}

func init() {
	getCmd.AddCommand(getFirewallsCmd)

	getFirewallsCmd.Flags().StringVarP(&apiKey, "key", "k", apiKey, "API key")
	getFirewallsCmd.Flags().StringVarP(&user, "user", "u", user, "PAN admin user")
	getFirewallsCmd.Flags().StringVarP(&fwState, "state", "s", "all", "connection state to include (connected, disconnected, all)")
	getFirewallsCmd.Flags().BoolVarP(&fwTerse, "terse", "t", false, "output firewall names only, for piping")
	getFirewallsCmd.Flags().BoolVarP(&fwRaw, "raw", "r", false, "output the raw XML response")
	getFirewallsCmd.Flags().StringVarP(&fwDomain, "domain", "d", "", "domain suffix appended to terse hostnames")
}
