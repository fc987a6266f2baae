package cmd

import (
	"github.com/spf13/cobra"
)

// runCmd groups the remote execution commands
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run commands on firewalls",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
