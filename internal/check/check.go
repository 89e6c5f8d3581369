package check

import (
	"fmt"
	"strings"
	"time"

	"gramcheck/internal/domain"
)

// timeRounding keeps timeout diagnostics readable
const timeRounding = 10 * time.Millisecond

// Checker derives a pass/fail verdict from a parser invocation.
// Matching is literal substring containment against the raw parse dump,
// mirroring how the labels appear in the tool's textual output.
type Checker struct{}

// NewChecker creates a new Checker
func NewChecker() *Checker {
	return &Checker{}
}

// Evaluate checks one invocation against the case's expected labels.
// A timed-out or non-zero-exit invocation fails regardless of output content.
func (c *Checker) Evaluate(cs domain.Case, inv domain.InvocationResult) domain.CaseResult {
	result := domain.CaseResult{
		Case:       cs,
		Invocation: inv,
	}

	if inv.TimedOut {
		result.Diagnostic = fmt.Sprintf("parser timed out after %s", inv.Duration.Round(timeRounding))
		return result
	}

	if inv.ExitCode != 0 {
		diag := fmt.Sprintf("parser exited with status %d", inv.ExitCode)
		if stderr := strings.TrimSpace(inv.Stderr); stderr != "" {
			diag += "\n" + stderr
		}
		result.Diagnostic = diag
		return result
	}

	for _, label := range cs.Expect {
		if !strings.Contains(inv.Stdout, label) {
			result.Missing = append(result.Missing, label)
		}
	}

	if len(result.Missing) > 0 {
		diag := fmt.Sprintf("expected label(s) not found in parse output: %s", strings.Join(result.Missing, ", "))
		if out := strings.TrimSpace(inv.Stdout); out != "" {
			diag += "\noutput: " + out
		}
		result.Diagnostic = diag
		return result
	}

	result.Passed = true
	return result
}

// Failure builds the persisted record for a failed case result
func (c *Checker) Failure(res domain.CaseResult) domain.CheckFailure {
	return domain.CheckFailure{
		CaseName: res.Case.Name,
		Source:   res.Case.Source,
		Expect:   res.Case.Expect,
		Missing:  res.Missing,
		ExitCode: res.Invocation.ExitCode,
		TimedOut: res.Invocation.TimedOut,
		Output:   res.Invocation.Stdout,
		Stderr:   res.Invocation.Stderr,
		Message:  res.Diagnostic,
	}
}
