package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Parser invocation settings
	ParserBin     string
	ParseVerb     string
	GrammarDir    string
	SnippetSuffix string
	Timeout       time.Duration

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Processors int

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ParserBin:      DefaultParserBin,
		ParseVerb:      DefaultParseVerb,
		GrammarDir:     DefaultGrammarDir,
		SnippetSuffix:  DefaultSnippetSuffix,
		Timeout:        DefaultTimeout,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Processors:     DefaultProcessors,
		Flags:          Flags{Processors: DefaultProcessors},
	}
}

// LoadEnv applies overrides from a .env file (if present) and the environment.
// Flags still take precedence over these values.
func (c *Config) LoadEnv() {
	// .env might not exist, that's okay - use environment variables
	_ = godotenv.Load()

	if v := os.Getenv("GRAMCHECK_PARSER_BIN"); v != "" {
		c.ParserBin = v
	}
	if v := os.Getenv("GRAMCHECK_GRAMMAR_DIR"); v != "" {
		c.GrammarDir = v
	}
}

// GetParserBin returns the parser executable, using flag if provided
func (c *Config) GetParserBin() string {
	if c.Flags.ParserBin != "" {
		return c.Flags.ParserBin
	}
	return c.ParserBin
}

// GetGrammarDir returns the parser working directory, using flag if provided
func (c *Config) GetGrammarDir() string {
	if c.Flags.GrammarDir != "" {
		return c.Flags.GrammarDir
	}
	return c.GrammarDir
}

// GetTimeout returns the per-invocation deadline, using flag if provided
func (c *Config) GetTimeout() time.Duration {
	if c.Flags.Timeout > 0 {
		return c.Flags.Timeout
	}
	return c.Timeout
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and faills always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
