package config

import "time"

const (
	// DefaultParserBin is the external parser executable
	DefaultParserBin = "tree-sitter"
	// DefaultParseVerb is the subcommand passed to the parser
	DefaultParseVerb = "parse"
	// DefaultGrammarDir is the working directory for parser invocations
	DefaultGrammarDir = "."
	// DefaultSnippetSuffix is the file extension for snippet temp files
	DefaultSnippetSuffix = ".jl"
	// DefaultTimeout bounds a single parser invocation
	DefaultTimeout = 30 * time.Second
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "check-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultProcessors is the default number of workers (sequential)
	DefaultProcessors = 1
)
