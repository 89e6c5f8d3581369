package execution

import (
	"context"
	"time"

	"gramcheck/internal/check"
	"gramcheck/internal/domain"
)

// SequentialExecutor runs cases strictly in order, one at a time.
// Each case is written, invoked, checked, and cleaned up before the next
// one starts.
type SequentialExecutor struct {
	invoker  Invoker
	checker  *check.Checker
	reporter Reporter
	failFast bool
}

// NewSequentialExecutor creates a new SequentialExecutor
func NewSequentialExecutor(invoker Invoker, checker *check.Checker) *SequentialExecutor {
	return &SequentialExecutor{
		invoker: invoker,
		checker: checker,
	}
}

// SetReporter sets the per-case reporter
func (e *SequentialExecutor) SetReporter(r Reporter) {
	e.reporter = r
}

// SetFailFast makes the executor stop after the first failing case
func (e *SequentialExecutor) SetFailFast(on bool) {
	e.failFast = on
}

// Execute runs all cases in order. An invoker error (parser cannot launch,
// temp file cannot be created) aborts the run immediately; per-case failures
// are recorded and execution continues.
func (e *SequentialExecutor) Execute(ctx context.Context, cases []domain.Case) ([]domain.CaseResult, time.Duration, error) {
	start := time.Now()

	var results []domain.CaseResult
	for _, c := range cases {
		if e.reporter != nil {
			e.reporter.CaseStart(c)
		}

		inv, err := e.invoker.Run(ctx, c)
		if err != nil {
			return nil, time.Since(start), err
		}

		res := e.checker.Evaluate(c, inv)
		if e.reporter != nil {
			e.reporter.CaseDone(res)
		}
		results = append(results, res)

		if e.failFast && !res.Passed {
			break
		}
	}

	return results, time.Since(start), nil
}
