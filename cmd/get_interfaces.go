package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/panw-tools/panw-utils/internal/batch"
	"github.com/panw-tools/panw-utils/internal/format"
	"github.com/panw-tools/panw-utils/internal/hosts"
	"github.com/panw-tools/panw-utils/internal/panos"
)

var (
	ifState string
	ifTerse bool
)

// getInterfacesCmd represents the 'get interfaces' command
var getInterfacesCmd = &cobra.Command{
	Use:   "interfaces [flags] [host]...",
	Short: "Get firewall interfaces",
	Long: `Get firewall interfaces

Examples:
  # Print all interfaces of 'fw01.example.com' and 'fw02.example.com':

    > panw-utils get interfaces fw01.example.com fw02.example.com

  # Print interfaces of every firewall managed by the saved Panorama:

    > panw-utils get firewalls --terse | panw-utils get interfaces

  # Print the addresses of interfaces that are up, for piping:

    > panw-utils get interfaces --state up --terse fw01.example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ifState != "" && !slices.Contains([]string{"up", "down"}, ifState) {
			return fmt.Errorf("invalid state %q (up, down)", ifState)
		}

		targets, err := hosts.Resolve(args, stdinHosts(), cfg.Firewall)
		if err != nil {
			return err
		}

		cred, err := resolveCredential(cmd, targets[0])
		if err != nil {
			return err
		}

		start := time.Now()
		client := newClient(cred.Key)

		results := batch.Run(cmd.Context(), targets, limit, func(ctx context.Context, host string) (panos.InterfaceReport, error) {
			raw, err := client.Op(ctx, host, "<show><interface>all</interface></show>")
			if err != nil {
				return panos.InterfaceReport{}, err
			}
			return panos.ParseInterfaceReport(host, raw)
		})

		tbl := format.NewTable(os.Stdout, "Firewall", "Interface", "State", "IpAddress", "Zone")
		var terseFields []string
		var failures []error
		ok := 0
		for _, res := range results {
			if res.Err != nil {
				failures = append(failures, res.Err)
				continue
			}
			ok++
			for _, iface := range res.Value.Interfaces {
				if ifState != "" && iface.State != ifState {
					continue
				}
				if ifTerse {
					if ip := panos.BareIP(iface.IP); ip != "" {
						terseFields = append(terseFields, ip)
					}
					continue
				}
				tbl.AddRow(res.Value.Host, iface.Name, iface.State, iface.IP, iface.Zone)
			}
		}

		if ifTerse {
			format.Terse(os.Stdout, terseFields)
		} else {
			tbl.Print()
		}

		format.ReportErrors(os.Stderr, failures)
		if ok == 0 {
			return fmt.Errorf("no host could be queried")
		}

		if !ifTerse {
			format.Summary(os.Stderr, start)
		}
		return nil
	},
}

func init() {
	getCmd.AddCommand(getInterfacesCmd)

	getInterfacesCmd.Flags().StringVarP(&apiKey, "key", "k", apiKey, "API key")
	getInterfacesCmd.Flags().StringVarP(&user, "user", "u", user, "PAN admin user")
	getInterfacesCmd.Flags().StringVarP(&ifState, "state", "s", "", "include interfaces in this state only (up, down)")
	getInterfacesCmd.Flags().BoolVarP(&ifTerse, "terse", "t", false, "output interface addresses only, for piping")
}
