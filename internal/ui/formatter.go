package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"gramcheck/internal/config"
	"gramcheck/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// CaseStart prints the case input before it runs
func (f *Formatter) CaseStart(c domain.Case) {
	fmt.Printf("Testing: %q\n", c.Source)
}

// CaseDone prints the verdict for a finished case
func (f *Formatter) CaseDone(res domain.CaseResult) {
	if res.Passed {
		color.Green("  ✓ PASSED")
	} else {
		color.Red("  ✗ FAILED")
		for _, line := range strings.Split(res.Diagnostic, "\n") {
			fmt.Printf("  %s\n", line)
		}
	}
	fmt.Println()
}

// PrintRunStats displays the statistics table and summary line for a run
func (f *Formatter) PrintRunStats(output *domain.RunOutput) {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                   Grammar Check Statistics                    ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Cases")
	color.White("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Cases")
	color.Green("%-27d │\n", meta.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Cases")
	color.Red("%-27d │\n", meta.FailedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	fmt.Printf("Results: %d passed, %d failed out of %d tests\n", meta.PassedCases, meta.FailedCases, meta.TotalCases)
	if meta.FailedCases == 0 {
		color.Green("✓ All cases passed!")
	} else {
		color.Red("✗ %d case(s) failed", meta.FailedCases)
		f.printFailureList(output.Details)
	}
}

// printFailureList prints the failed cases with their missing labels
func (f *Formatter) printFailureList(failures []domain.CheckFailure) {
	for i, failure := range failures {
		connector := "├──"
		if i == len(failures)-1 {
			connector = "└──"
		}
		color.Yellow("%s %s", connector, failure.CaseName)

		childPrefix := "│   "
		if i == len(failures)-1 {
			childPrefix = "    "
		}
		if len(failure.Missing) > 0 {
			color.Red("%smissing: %s", childPrefix, strings.Join(failure.Missing, ", "))
		} else if failure.TimedOut {
			color.Red("%stimed out", childPrefix)
		} else if failure.ExitCode != 0 {
			color.Red("%sexit status %d", childPrefix, failure.ExitCode)
		}
	}
}

// PrintCaseList prints the suite's cases, optionally with expected labels.
// failedNames is optional; cases in this set are marked with [F] in red
// (from the last saved run).
func (f *Formatter) PrintCaseList(cases []domain.Case, showExpected bool, failedNames map[string]struct{}) {
	color.Green("Found %d case(s):\n", len(cases))

	for i, c := range cases {
		failMarker := ""
		if len(failedNames) > 0 {
			if _, ok := failedNames[c.Name]; ok {
				failMarker = " " + color.RedString("[F]")
			}
		}

		isLast := i == len(cases)-1
		if isLast {
			color.Cyan("└── %s%s", c.Name, failMarker)
		} else {
			color.Cyan("├── %s%s", c.Name, failMarker)
		}

		if !showExpected {
			continue
		}

		childPrefix := "│   "
		if isLast {
			childPrefix = "    "
		}
		fmt.Printf("%s%s %s\n", childPrefix, "input:", color.WhiteString("%q", c.Source))
		for j, label := range c.Expect {
			caseConnector := "├── "
			if j == len(c.Expect)-1 {
				caseConnector = "└── "
			}
			fmt.Printf("%s%s%s\n", childPrefix, caseConnector, color.YellowString(label))
		}
		if !isLast {
			fmt.Println()
		}
	}
}
