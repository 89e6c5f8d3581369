package main

import (
	"fmt"
	"os"

	"gramcheck/internal/cli"
	"gramcheck/internal/cli/commands"
	"gramcheck/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "gramcheck",
		Short:         "Grammar comment-parsing verifier",
		Long:          `Verifies that a grammar distinguishes line comments from block comments. Feeds source snippets to an external tree-sitter parser and checks that the expected node types appear in the parse output.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults, then apply .env/environment overrides
	cfg := config.New()
	cfg.LoadEnv()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
