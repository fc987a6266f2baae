//go:build !windows
// +build !windows

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/panw-tools/panw-utils/internal/batch"
	"github.com/panw-tools/panw-utils/internal/format"
	"github.com/panw-tools/panw-utils/internal/hosts"
	"github.com/panw-tools/panw-utils/internal/panos"
)

var configFilter string

// getConfigSetCmd represents the 'get config set' command
var getConfigSetCmd = &cobra.Command{
	Use:   "set [flags] [host]...",
	Short: "Get firewall set formatted config",
	Long: `Get firewall set formatted config via SSH

Examples:
  # Print the set-format configuration of 'fw01.example.com':

    > panw-utils get config set fw01.example.com

  # Print address object configuration of every firewall managed by the saved Panorama:

    > panw-utils get firewalls --terse | panw-utils get config set --key-based-auth --filter 'address'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		targets, err := hosts.Resolve(args, stdinHosts(), cfg.Firewall)
		if err != nil {
			return err
		}

		sshCfg, err := sshConfig(hosts.FromPipe(os.Stdin))
		if err != nil {
			return err
		}

		start := time.Now()

		results := batch.Run(cmd.Context(), targets, limit, func(_ context.Context, host string) (string, error) {
			return panos.FetchSetConfig(host, sshCfg, configFilter)
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
			fmt.Printf("%s\n\n", res.Value)
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
	getConfigCmd.AddCommand(getConfigSetCmd)

	getConfigSetCmd.Flags().StringVarP(&user, "user", "u", user, "PAN admin user")
	getConfigSetCmd.Flags().StringVarP(&password, "password", "p", password, "password for PAN user")
	getConfigSetCmd.Flags().BoolVarP(&keyBasedAuth, "key-based-auth", "K", false, "use key-based authentication")
	getConfigSetCmd.Flags().BoolVar(&ignoreHostKey, "insecure", false, "ignore host key checking")
	getConfigSetCmd.Flags().StringVar(&sshPort, "port", "22", "port to connect to on host")
	getConfigSetCmd.Flags().IntVarP(&sshTimeout, "ssh-timeout", "S", 30, "SSH timeout in seconds")
	getConfigSetCmd.Flags().StringVarP(&configFilter, "filter", "f", "", "filter configuration output")
}
