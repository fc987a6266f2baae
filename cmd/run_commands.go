//go:build !windows
// +build !windows

package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/panw-tools/panw-utils/internal/batch"
	"github.com/panw-tools/panw-utils/internal/format"
	"github.com/panw-tools/panw-utils/internal/hosts"
	"github.com/panw-tools/panw-utils/internal/panos"
)

var cliCommands []string

// runCommandsCmd represents the 'run commands' command
var runCommandsCmd = &cobra.Command{
	Use:   "commands [flags] [host]...",
	Short: "Execute CLI commands via SSH",
	Long: `Execute CLI commands via SSH

Examples:
  # Execute 'show system info' and 'show arp all' on fw01.example.com:

    > panw-utils run commands --command "show system info","show arp all" fw01.example.com

  # Execute 'show system info' on every firewall managed by the saved Panorama:

    > panw-utils get firewalls --terse | panw-utils run commands --command "show system info" --key-based-auth`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(cliCommands) == 0 {
			return fmt.Errorf("no commands specified")
		}

		targets, err := hosts.Resolve(args, stdinHosts(), cfg.Firewall)
		if err != nil {
			return err
		}

		sshCfg, err := sshConfig(hosts.FromPipe(os.Stdin))
		if err != nil {
			return err
		}

		start := time.Now()

		results := batch.Run(cmd.Context(), targets, limit, func(_ context.Context, host string) (map[string]string, error) {
			return panos.RunCommands(host, sshCfg, cliCommands)
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

			keys := make([]string, 0, len(res.Value))
			for k := range res.Value {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			for _, k := range keys {
				format.Yellow.Printf("*** %s ***\n", k)
				fmt.Printf("%s\n\n", panos.TrimOutput(res.Value[k]))
			}
			format.Divider(os.Stdout)
		}

		format.ReportErrors(os.Stderr, failures)
		if ok == 0 {
			return fmt.Errorf("no host could be queried")
		}

		elapsed := time.Since(start)
		fmt.Fprintf(os.Stderr, "\n Complete: %d command(s) executed on %d host(s) in %.3f seconds\n", len(cliCommands), ok, elapsed.Seconds())
		return nil
	},
}

func init() {
	runCmd.AddCommand(runCommandsCmd)

	runCommandsCmd.Flags().StringVarP(&user, "user", "u", user, "PAN admin user")
	runCommandsCmd.Flags().StringVarP(&password, "password", "p", password, "password for PAN user")
	runCommandsCmd.Flags().StringSliceVarP(&cliCommands, "command", "c", nil, "comma separated set of commands to execute")
	runCommandsCmd.Flags().BoolVarP(&keyBasedAuth, "key-based-auth", "K", false, "use key-based authentication")
	runCommandsCmd.Flags().BoolVar(&ignoreHostKey, "insecure", false, "ignore host key checking")
	runCommandsCmd.Flags().StringVar(&sshPort, "port", "22", "port to connect to on host")
	runCommandsCmd.Flags().IntVarP(&sshTimeout, "ssh-timeout", "S", 30, "SSH timeout in seconds")
}
