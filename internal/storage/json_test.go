package storage

import (
	"testing"
	"time"

	"gramcheck/internal/config"
	"gramcheck/internal/domain"
)

func testStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.OutputJSONDir = t.TempDir()
	return NewJSONStorage(cfg)
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	st := testStorage(t)

	results := []domain.CaseResult{
		{Case: domain.Case{Name: "line comment"}, Passed: true},
		{Case: domain.Case{Name: "block comment"}, Passed: false},
		{Case: domain.Case{Name: "inline block comment"}, Passed: false},
	}
	failures := []domain.CheckFailure{
		{CaseName: "block comment", Missing: []string{"block_comment"}, Message: "expected label(s) not found"},
		{CaseName: "inline block comment", ExitCode: 1, Message: "parser exited with status 1"},
	}

	if err := st.Save(results, failures, 1500*time.Millisecond, 1); err != nil {
		t.Fatalf("save: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	meta := output.Meta
	if meta.TotalCases != 3 || meta.PassedCases != 1 || meta.FailedCases != 2 {
		t.Errorf("meta counts = %d/%d/%d, want 3/1/2", meta.TotalCases, meta.PassedCases, meta.FailedCases)
	}
	if meta.PassedCases+meta.FailedCases != meta.TotalCases {
		t.Error("passed + failed must equal total")
	}
	if meta.DurationSeconds != 1.5 {
		t.Errorf("DurationSeconds = %f, want 1.5", meta.DurationSeconds)
	}
	if meta.Workers != 1 {
		t.Errorf("Workers = %d, want 1", meta.Workers)
	}

	if len(output.Details) != 2 {
		t.Fatalf("expected 2 failure records, got %d", len(output.Details))
	}
	if output.Details[0].CaseName != "block comment" {
		t.Errorf("first failure = %q", output.Details[0].CaseName)
	}
	if output.Details[1].ExitCode != 1 {
		t.Errorf("second failure exit code = %d", output.Details[1].ExitCode)
	}
}

func TestJSONStorage_SaveOutput_RoundTripsResolved(t *testing.T) {
	st := testStorage(t)

	output := &domain.RunOutput{
		Meta:    domain.RunMeta{TotalCases: 1, FailedCases: 1},
		Details: []domain.CheckFailure{{CaseName: "line comment", Resolved: true}},
	}
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save output: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.Details[0].Resolved {
		t.Error("resolved flag not persisted")
	}
}

func TestJSONStorage_Load_MissingFile(t *testing.T) {
	st := testStorage(t)
	if _, err := st.Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}
