package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/amplicon-labs/urna/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the urna version",
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.WriteString(version.Current.String() + "\n")
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
