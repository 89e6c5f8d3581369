package domain

import "time"

// InvocationResult represents one run of the external parser
type InvocationResult struct {
	ExitCode int           // Exit status of the parser process
	Stdout   string        // Captured parse dump
	Stderr   string        // Captured diagnostic output
	TimedOut bool          // Whether the process was killed by the deadline
	Duration time.Duration // Time taken by the invocation
}

// CaseResult is the verdict for a single case
type CaseResult struct {
	Case       Case
	Invocation InvocationResult
	Passed     bool
	Missing    []string // Expected labels absent from the parse dump
	Diagnostic string   // Human-readable failure explanation, empty on pass
}

// RunMeta contains metadata about a verification run
type RunMeta struct {
	TotalCases      int     `json:"total_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete output structure for a verification run
type RunOutput struct {
	Meta    RunMeta        `json:"meta"`
	Details []CheckFailure `json:"details"`
}
