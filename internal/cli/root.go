// Package cli implements the matchctl command line tool.
package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrNotFound is returned by lookup commands when the email is not in the dataset.
var ErrNotFound = errors.New("email not found")

var rootCmd = &cobra.Command{
	Use:   "matchctl",
	Short: "Operate the matchmaking email lookup",
	Long: `matchctl checks emails against the matchmaking record dataset,
either locally against the configured source or through a running server.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func printResult(cmd *cobra.Command, email string, found bool) error {
	if !found {
		cmd.Printf("%s: not found\n", email)
		return ErrNotFound
	}
	cmd.Printf("%s: found\n", email)
	return nil
}
