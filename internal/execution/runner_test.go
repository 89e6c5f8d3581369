package execution

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"gramcheck/internal/config"
	"gramcheck/internal/domain"
)

// stubParser writes an executable shell script standing in for the external
// parser and returns its path.
func stubParser(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub parser scripts require a unix shell")
	}
	path := filepath.Join(t.TempDir(), "fake-parser")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("write stub parser: %v", err)
	}
	return path
}

func runnerConfig(t *testing.T, parserBin string) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.ParserBin = parserBin
	cfg.GrammarDir = t.TempDir()
	cfg.Timeout = 10 * time.Second
	return cfg
}

func TestRunner_Run(t *testing.T) {
	bin := stubParser(t, `echo "(source_file (line_comment))"`)
	runner := NewRunner(runnerConfig(t, bin))

	inv, err := runner.Run(context.Background(), domain.Case{
		Name:   "line comment",
		Source: "# hello\n",
		Expect: []string{"line_comment"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inv.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", inv.ExitCode)
	}
	if !strings.Contains(inv.Stdout, "line_comment") {
		t.Errorf("stdout missing label: %q", inv.Stdout)
	}
	if inv.TimedOut {
		t.Error("TimedOut should be false")
	}
	if inv.Duration <= 0 {
		t.Error("Duration should be positive")
	}
}

func TestRunner_Run_PassesSnippetFile(t *testing.T) {
	// The stub echoes the snippet back, proving the temp file path argument
	// points at a file containing the case source.
	bin := stubParser(t, `cat "$2"`)
	runner := NewRunner(runnerConfig(t, bin))

	inv, err := runner.Run(context.Background(), domain.Case{Source: "x = #= block =# y # line\n"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Stdout != "x = #= block =# y # line\n" {
		t.Errorf("snippet file content = %q", inv.Stdout)
	}
}

func TestRunner_Run_CleansUpTempFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TMPDIR", tmpDir)

	tests := []struct {
		name   string
		script string
	}{
		{name: "on success", script: `echo ok`},
		{name: "on parser failure", script: `echo "boom" >&2; exit 3`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bin := stubParser(t, tt.script)
			runner := NewRunner(runnerConfig(t, bin))

			if _, err := runner.Run(context.Background(), domain.Case{Source: "# x\n"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			leftovers, err := filepath.Glob(filepath.Join(tmpDir, "gramcheck-*"))
			if err != nil {
				t.Fatalf("glob: %v", err)
			}
			if len(leftovers) != 0 {
				t.Errorf("snippet temp files not cleaned up: %v", leftovers)
			}
		})
	}
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	bin := stubParser(t, `echo "Error: invalid syntax" >&2; exit 1`)
	runner := NewRunner(runnerConfig(t, bin))

	inv, err := runner.Run(context.Background(), domain.Case{Source: "# x\n"})
	if err != nil {
		t.Fatalf("non-zero exit should not be an error: %v", err)
	}
	if inv.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", inv.ExitCode)
	}
	if !strings.Contains(inv.Stderr, "invalid syntax") {
		t.Errorf("stderr not captured: %q", inv.Stderr)
	}
}

func TestRunner_Run_Timeout(t *testing.T) {
	bin := stubParser(t, `exec sleep 5`)
	cfg := runnerConfig(t, bin)
	cfg.Timeout = 100 * time.Millisecond
	runner := NewRunner(cfg)

	inv, err := runner.Run(context.Background(), domain.Case{Source: "# x\n"})
	if err != nil {
		t.Fatalf("timeout should not be an error: %v", err)
	}
	if !inv.TimedOut {
		t.Error("expected TimedOut")
	}
}

func TestRunner_Run_ParserNotFound(t *testing.T) {
	cfg := runnerConfig(t, filepath.Join(t.TempDir(), "no-such-parser"))
	runner := NewRunner(cfg)

	if _, err := runner.Run(context.Background(), domain.Case{Source: "# x\n"}); err == nil {
		t.Fatal("expected error when the parser binary does not exist")
	}
}
