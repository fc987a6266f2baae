package cmd

import (
	"fmt"
	"os"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/panw-tools/panw-utils/internal/creds"
	"github.com/panw-tools/panw-utils/internal/settings"
)

// configCmd groups the saved settings commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Work with the saved settings",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// configPathCmd represents the 'config path' command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(settings.Path())
	},
}

// configShowCmd represents the 'config show' command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings file",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(settings.Path())
		if err != nil {
			return err
		}
		fmt.Printf("%s", b)
		return nil
	},
}

// configEditCmd represents the 'config edit' command
var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the settings file in the default editor",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return open.Run(settings.Path())
	},
}

// configUpdateCmd represents the 'config update' command
var configUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Interactively update the saved settings",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(os.Stderr, "\nUpdating saved settings ...\n\n")

		updated := cfg
		var err error
		if updated.Firewall, err = promptDefault("Default Firewall", cfg.Firewall); err != nil {
			return err
		}
		if updated.Panorama, err = promptDefault("Default Panorama", cfg.Panorama); err != nil {
			return err
		}
		if updated.User, err = promptDefault("Default User", cfg.User); err != nil {
			return err
		}
		if updated.APIKey, err = promptDefault("API Key", cfg.APIKey); err != nil {
			return err
		}

		if err := updated.Save(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "\nSettings updated: %s\n", settings.Path())
		return nil
	},
}

// promptDefault prompts for a new value, keeping current on an empty
// answer.
func promptDefault(label, current string) (string, error) {
	answer, err := creds.PromptLine(fmt.Sprintf("New %s [%s]: ", label, current))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configUpdateCmd)
}
