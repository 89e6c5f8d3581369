package cli

import (
	"time"

	"gramcheck/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Processors int
	SuiteFile  string
	NameFilter string
	GrammarDir string
	ParserBin  string
	Timeout    time.Duration
	Expected   bool
	FailFast   bool
	OnlyFailed bool
	OpenFaills bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Processors: f.Processors,
		SuiteFile:  f.SuiteFile,
		NameFilter: f.NameFilter,
		GrammarDir: f.GrammarDir,
		ParserBin:  f.ParserBin,
		Timeout:    f.Timeout,
		Expected:   f.Expected,
		FailFast:   f.FailFast,
		OnlyFailed: f.OnlyFailed,
		OpenFaills: f.OpenFaills,
	}
}
