package commands

import (
	"gramcheck/internal/check"
	"gramcheck/internal/cli"
	"gramcheck/internal/config"
	"gramcheck/internal/execution"
	"gramcheck/internal/storage"
	"gramcheck/internal/suite"
	"gramcheck/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	List   *ListCommand
	Faills *FaillsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	loader := suite.NewLoader()
	filter := suite.NewFilter()
	runner := execution.NewRunner(cfg)
	checker := check.NewChecker()
	pool := execution.NewWorkerPool(cfg, runner, checker)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Run:    NewRunCommand(cfg, loader, filter, runner, checker, pool, jsonStorage, formatter, errorViewer),
		List:   NewListCommand(cfg, loader, filter, formatter, jsonStorage),
		Faills: NewFaillsCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the comment parse checks",
		Long:  "Execute each case against the external parser and report pass/fail",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if flags.Processors > 0 {
				cfg.Processors = flags.Processors
			}
			return nil
		},
	}
	runCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 1, "Number of parallel workers (1 runs cases strictly in order)")
	runCmd.Flags().StringVarP(&flags.SuiteFile, "suite", "s", "", "YAML suite file with cases to run (default: built-in comment cases)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. '*block*')")
	runCmd.Flags().StringVar(&flags.GrammarDir, "grammar-dir", "", "Directory the parser is invoked from (grammar location)")
	runCmd.Flags().StringVar(&flags.ParserBin, "parser-bin", "", "External parser executable (default: tree-sitter)")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Per-invocation deadline (default 30s)")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first failing case")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only cases that failed in the last run")
	runCmd.Flags().BoolVar(&flags.OpenFaills, "open-faills", false, "Open the faills viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the suite's cases",
		Long:  "Print the cases that would run, without invoking the parser",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.SuiteFile, "suite", "s", "", "YAML suite file with cases to list (default: built-in comment cases)")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. '*block*')")
	listCmd.Flags().BoolVarP(&flags.Expected, "expected", "e", false, "Show each case's input and expected labels")
	rootCmd.AddCommand(listCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View case failures interactively",
		Long:  "Display failures from the last run in an interactive viewer",
		RunE:  c.Faills.Execute,
	}
	rootCmd.AddCommand(faillsCmd)
}
