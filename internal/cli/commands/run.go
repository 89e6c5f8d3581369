package commands

import (
	"fmt"

	"gramcheck/internal/check"
	"gramcheck/internal/config"
	"gramcheck/internal/domain"
	"gramcheck/internal/execution"
	"gramcheck/internal/storage"
	"gramcheck/internal/suite"
	"gramcheck/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	loader    *suite.Loader
	filter    *suite.Filter
	runner    *execution.Runner
	checker   *check.Checker
	pool      *execution.WorkerPool
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	loader *suite.Loader,
	filter *suite.Filter,
	runner *execution.Runner,
	checker *check.Checker,
	pool *execution.WorkerPool,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		runner:    runner,
		checker:   checker,
		pool:      pool,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cases, err := rc.loadCases()
	if err != nil {
		return err
	}

	cases = rc.filter.FilterByName(cases, rc.config.Flags.NameFilter)

	if len(cases) == 0 {
		color.Yellow("No cases to check")
		return nil
	}

	ctx := cmd.Context()

	// Fail-fast needs deterministic ordering, so it always runs sequentially
	var executor execution.Executor
	if rc.config.Processors > 1 && !rc.config.Flags.FailFast {
		rc.pool.SetProgress(ui.NewProgressBar(len(cases)))
		executor = rc.pool
	} else {
		seq := execution.NewSequentialExecutor(rc.runner, rc.checker)
		seq.SetReporter(rc.formatter)
		seq.SetFailFast(rc.config.Flags.FailFast)
		executor = seq
	}

	results, duration, err := executor.Execute(ctx, cases)
	if err != nil {
		return err
	}

	var failures []domain.CheckFailure
	failed := 0
	for _, res := range results {
		if !res.Passed {
			failed++
			failures = append(failures, rc.checker.Failure(res))
		}
	}

	if err := rc.storage.Save(results, failures, duration, rc.config.Processors); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	output, err := rc.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to read results: %w", err)
	}
	rc.formatter.PrintRunStats(output)

	if rc.config.Flags.OpenFaills && failed > 0 {
		if err := rc.viewer.View(output); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(results))
	}
	return nil
}

// loadCases resolves the case list from the suite flag, the built-in suite,
// and the --failed selection.
func (rc *RunCommand) loadCases() ([]domain.Case, error) {
	var cases []domain.Case
	var err error

	if rc.config.Flags.SuiteFile != "" {
		cases, err = rc.loader.Load(rc.config.Flags.SuiteFile)
		if err != nil {
			return nil, err
		}
	} else {
		cases = suite.Builtin()
	}

	if !rc.config.Flags.OnlyFailed {
		return cases, nil
	}

	output, err := rc.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("no saved results to select failed cases from: %w", err)
	}
	failedNames := make(map[string]struct{}, len(output.Details))
	for _, failure := range output.Details {
		failedNames[failure.CaseName] = struct{}{}
	}

	var selected []domain.Case
	for _, c := range cases {
		if _, ok := failedNames[c.Name]; ok {
			selected = append(selected, c)
		}
	}
	return selected, nil
}
