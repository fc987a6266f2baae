package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/panw-tools/panw-utils/internal/creds"
	"github.com/panw-tools/panw-utils/internal/hosts"
	"github.com/panw-tools/panw-utils/internal/panos"
	"github.com/panw-tools/panw-utils/internal/settings"
)

var cfg settings.Settings

// Flags shared across the query commands
var (
	apiKey      string
	user        string
	password    string
	limit       int64
	httpTimeout int
	retries     int
)

var rootCmd = &cobra.Command{
	Use:          "panw-utils",
	Short:        "Utilities for working with Palo Alto Networks firewalls and Panorama",
	Long:         "",
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadSettings)

	rootCmd.PersistentFlags().Int64VarP(&limit, "limit", "l", 0, "maximum concurrent host queries (default 25)")
	rootCmd.PersistentFlags().IntVar(&httpTimeout, "timeout", 60, "HTTP timeout in seconds per request")
	rootCmd.PersistentFlags().IntVar(&retries, "retries", 0, "additional attempts after a connection failure")
}

func loadSettings() {
	s, err := settings.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring unreadable settings file: %v\n", err)
	}
	cfg = s
}

// stdinHosts returns stdin when it carries piped input, nil otherwise.
// Passing nil keeps the resolver off the terminal.
func stdinHosts() io.Reader {
	if hosts.FromPipe(os.Stdin) {
		return os.Stdin
	}
	return nil
}

func newClient(key string) *panos.Client {
	return panos.NewClient(key,
		panos.WithTimeout(time.Duration(httpTimeout)*time.Second),
		panos.WithRetries(retries))
}

// resolveCredential applies the key precedence for a command run:
// --key flag, then the saved key, then an interactive keygen exchange
// against keygenHost. Prompting is disallowed when hosts were piped in,
// matching the original utilities.
func resolveCredential(cmd *cobra.Command, keygenHost string) (creds.Credential, error) {
	return creds.Resolve(cmd.Context(), creds.Options{
		ExplicitKey: apiKey,
		SavedKey:    cfg.APIKey,
		SavedUser:   cfg.User,
		User:        user,
		Host:        keygenHost,
		Interactive: !hosts.FromPipe(os.Stdin),
		Keygen:      newClient(""),
	})
}
