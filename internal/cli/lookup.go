package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"matchmaker/internal/config"
	"matchmaker/internal/dataset"
	"matchmaker/internal/lookup"
)

var (
	lookupSource  string
	lookupPath    string
	lookupMode    string
	lookupColumn  int
	loadLookupCfg = config.Load
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [email]",
	Short: "Look up an email in the configured dataset",
	Long: `Runs the lookup directly against the dataset source configured through
the environment, .env or config.yaml. Flags override the configured source.
Exits non-zero when the email is not found or the dataset cannot be read.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupSource, "source", "", "dataset source (file, s3, redis, postgres)")
	lookupCmd.Flags().StringVar(&lookupPath, "dataset", "", "dataset file path for the file source")
	lookupCmd.Flags().StringVar(&lookupMode, "mode", "", "match mode (substring, exact)")
	lookupCmd.Flags().IntVar(&lookupColumn, "column", -1, "column compared in exact mode, -1 for any")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	email := args[0]

	cfg := loadLookupCfg()
	if lookupSource != "" {
		cfg.DatasetSource = lookupSource
	}
	if lookupPath != "" {
		cfg.DatasetPath = lookupPath
	}
	if lookupMode != "" {
		cfg.MatchMode = lookupMode
	}
	if cmd.Flags().Changed("column") {
		cfg.MatchColumn = lookupColumn
	}

	ctx := cmd.Context()
	source, err := dataset.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer dataset.Close(source)

	found, err := lookup.New(source, lookup.MatcherFromConfig(cfg)).Lookup(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	return printResult(cmd, email, found)
}
