package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gramcheck/internal/config"
	"gramcheck/internal/domain"
	"gramcheck/internal/storage"
	"gramcheck/internal/suite"
	"gramcheck/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	loader    *suite.Loader
	filter    *suite.Filter
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	loader *suite.Loader,
	filter *suite.Filter,
	formatter *ui.Formatter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	var cases []domain.Case
	var err error

	if lc.config.Flags.SuiteFile != "" {
		cases, err = lc.loader.Load(lc.config.Flags.SuiteFile)
		if err != nil {
			return err
		}
	} else {
		cases = suite.Builtin()
	}

	cases = lc.filter.FilterByName(cases, lc.config.Flags.NameFilter)

	if len(cases) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	// Mark cases that failed in the last saved run, if any
	var failedNames map[string]struct{}
	if output, err := lc.storage.Load(); err == nil {
		failedNames = make(map[string]struct{}, len(output.Details))
		for _, failure := range output.Details {
			failedNames[failure.CaseName] = struct{}{}
		}
	}

	lc.formatter.PrintCaseList(cases, lc.config.Flags.Expected, failedNames)
	return nil
}
