package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/panw-tools/panw-utils/internal/batch"
	"github.com/panw-tools/panw-utils/internal/creds"
	"github.com/panw-tools/panw-utils/internal/format"
	"github.com/panw-tools/panw-utils/internal/hosts"
	"github.com/panw-tools/panw-utils/internal/settings"
)

var (
	apiKeyVerbose bool
	apiKeySave    bool
)

// getApiKeyCmd represents the 'get api-key' command
var getApiKeyCmd = &cobra.Command{
	Use:   "api-key [flags] [host]...",
	Short: "Get an API key",
	Long: `Get an API key, suitable for piping to pbcopy (macOS) or clip.exe (Windows)

Examples:
  # Get an API key for the saved default firewall:

    > panw-utils get api-key

  # Get an API key for each firewall and save the first to the settings file:

    > panw-utils get api-key --save fw01.example.com fw02.example.com

  # Get an API key for each firewall returned by 'get firewalls':

    > panw-utils get firewalls --terse | panw-utils get api-key -u admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		targets, err := hosts.Resolve(args, stdinHosts(), cfg.Firewall)
		if err != nil {
			return err
		}

		piped := hosts.FromPipe(os.Stdin)
		if user == "" {
			user = cfg.User
		}
		if user == "" {
			if piped {
				return fmt.Errorf("the --user flag is required when reading hosts from stdin")
			}
			user, err = creds.PromptLine("PAN User: ")
			if err != nil {
				return err
			}
		}
		if password == "" {
			password, err = creds.PromptPassword(fmt.Sprintf("Password (%s): ", user))
			if err != nil {
				return err
			}
		}

		start := time.Now()
		client := newClient("")

		results := batch.Run(cmd.Context(), targets, limit, func(ctx context.Context, host string) (string, error) {
			return client.GenerateKey(ctx, host, user, password)
		})

		verbose := apiKeyVerbose || len(targets) > 1
		var failures []error
		ok := 0
		for _, res := range results {
			if res.Err != nil {
				failures = append(failures, res.Err)
				continue
			}
			ok++
			if verbose {
				fmt.Printf("%-30s %s\n", res.Host+":", res.Value)
			} else {
				fmt.Println(res.Value)
			}
		}

		format.ReportErrors(os.Stderr, failures)

		if apiKeySave {
			for _, res := range results {
				if res.Err == nil {
					cfg.APIKey = res.Value
					cfg.User = user
					if err := cfg.Save(); err != nil {
						return err
					}
					fmt.Fprintf(os.Stderr, "\nAPI key saved to %s\n", settings.Path())
					break
				}
			}
		}

		if ok == 0 {
			return fmt.Errorf("no key could be generated")
		}
		format.Summary(os.Stderr, start)
		return nil
	},
}

func init() {
	getCmd.AddCommand(getApiKeyCmd)

	getApiKeyCmd.Flags().StringVarP(&user, "user", "u", user, "PAN admin user")
	getApiKeyCmd.Flags().StringVarP(&password, "password", "p", password, "password for PAN user")
	getApiKeyCmd.Flags().BoolVarP(&apiKeyVerbose, "verbose", "v", false, "prefix each key with its host")
	getApiKeyCmd.Flags().BoolVarP(&apiKeySave, "save", "s", false, "save the first key to the settings file")
}
