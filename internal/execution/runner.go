package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"gramcheck/internal/config"
	"gramcheck/internal/domain"
)

// Runner invokes the external parser for a single case
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run writes the case source to a uniquely named temp file and runs the
// parser on it from the configured grammar directory. The temp file is
// removed on every path. A non-zero exit or a hit deadline is reported in
// the result; an invocation that cannot start at all, or a temp file that
// cannot be created, is returned as an error and aborts the run.
func (r *Runner) Run(ctx context.Context, c domain.Case) (domain.InvocationResult, error) {
	tmp, err := os.CreateTemp("", "gramcheck-*"+r.config.SnippetSuffix)
	if err != nil {
		return domain.InvocationResult{}, fmt.Errorf("create snippet file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(c.Source); err != nil {
		tmp.Close()
		return domain.InvocationResult{}, fmt.Errorf("write snippet file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return domain.InvocationResult{}, fmt.Errorf("close snippet file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.GetTimeout())
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.config.GetParserBin(), r.config.ParseVerb, tmpPath)
	cmd.Dir = r.config.GetGrammarDir()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	result := domain.InvocationResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err == nil {
		return result, nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		result.TimedOut = true
		result.ExitCode = -1
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	// The parser could not be launched at all
	return domain.InvocationResult{}, fmt.Errorf("invoke parser %s: %w", r.config.GetParserBin(), err)
}
