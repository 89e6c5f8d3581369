package domain

// CheckFailure represents a failed case
type CheckFailure struct {
	CaseName string   `json:"case_name"`
	Source   string   `json:"source"`
	Expect   []string `json:"expect"`
	Missing  []string `json:"missing,omitempty"`
	ExitCode int      `json:"exit_code"`
	TimedOut bool     `json:"timed_out,omitempty"`
	Output   string   `json:"output,omitempty"`
	Stderr   string   `json:"stderr,omitempty"`
	Message  string   `json:"message"`
	Resolved bool     `json:"resolved,omitempty"` // Track if failure is marked as resolved in the viewer
}
