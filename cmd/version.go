package cmd

import (
	"fmt"

	"profilekit/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the profilekit version",
	Args:  cobra.NoArgs,
	// Overrides the root hook: printing the version needs no config or database.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "profilekit", version.AppVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
