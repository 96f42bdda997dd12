package cli

import "github.com/spf13/cobra"

// Version is set at build time with -ldflags "-X matchmaker/internal/cli.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the matchctl version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("matchctl %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
