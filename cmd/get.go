package cmd

import (
	"github.com/spf13/cobra"
)

// getCmd groups the query commands
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get information from firewalls and Panorama",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
