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
	configXPath string
	configType  string
)

var configTypes = []string{"candidate", "effective-running", "merged", "pushed-shared-policy", "pushed-template", "running", "synced", "synced-diff"}

// getConfigXmlCmd represents the 'get config xml' command
var getConfigXmlCmd = &cobra.Command{
	Use:   "xml [flags] [host]...",
	Short: "Get firewall XML formatted config",
	Long: `Get firewall XML formatted config

Examples:
  # Print the running configuration of 'fw01.example.com' and 'fw02.example.com':

    > panw-utils get config xml fw01.example.com fw02.example.com

  # Print the running configuration of every firewall managed by the saved Panorama:

    > panw-utils get firewalls --terse | panw-utils get config xml

  # Print the management configuration node only:

    > panw-utils get config xml --xpath 'devices/entry/deviceconfig/system' fw01.example.com

  # Print the candidate configuration:

    > panw-utils get config xml --type candidate fw01.example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(configTypes, configType) {
			return fmt.Errorf("invalid configuration type %q", configType)
		}
		if configXPath != "" && configType != "running" {
			return fmt.Errorf("--xpath applies to the running configuration only")
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

		results := batch.Run(cmd.Context(), targets, limit, func(ctx context.Context, host string) (panos.ConfigDocument, error) {
			var raw []byte
			var err error
			if configXPath != "" {
				raw, err = client.ShowConfigXPath(ctx, host, configXPath)
			} else {
				opCmd := fmt.Sprintf("<show><config><%s></%s></config></show>", configType, configType)
				raw, err = client.Op(ctx, host, opCmd)
			}
			if err != nil {
				return panos.ConfigDocument{}, err
			}
			return panos.ParseConfigDocument(host, raw)
		})

		var failures []error
		ok := 0
		for _, res := range results {
			if res.Err != nil {
				failures = append(failures, res.Err)
				continue
			}
			ok++
			format.Banner(os.Stdout, res.Host)
			fmt.Printf("%s\n\n", res.Value.XML)
			format.Divider(os.Stdout)
		}

		format.ReportErrors(os.Stderr, failures)
		if ok == 0 {
			return fmt.Errorf("no host could be queried")
		}

		format.Summary(os.Stderr, start)
		return nil
	},
}

func init() {
	getConfigCmd.AddCommand(getConfigXmlCmd)

	getConfigXmlCmd.Flags().StringVarP(&apiKey, "key", "k", apiKey, "API key")
	getConfigXmlCmd.Flags().StringVarP(&user, "user", "u", user, "PAN admin user")
	getConfigXmlCmd.Flags().StringVarP(&configXPath, "xpath", "x", "", "xpath of the configuration node to retrieve")
	getConfigXmlCmd.Flags().StringVarP(&configType, "type", "t", "running", fmt.Sprintf("type of configuration to retrieve %v", configTypes))
}
