package execution

import (
	"context"
	"time"

	"gramcheck/internal/domain"
)

// Invoker runs the external parser for one case
type Invoker interface {
	Run(ctx context.Context, c domain.Case) (domain.InvocationResult, error)
}

// Executor executes cases and returns their verdicts
type Executor interface {
	Execute(ctx context.Context, cases []domain.Case) ([]domain.CaseResult, time.Duration, error)
}

// Reporter receives per-case progress during a sequential run
type Reporter interface {
	CaseStart(c domain.Case)
	CaseDone(res domain.CaseResult)
}
