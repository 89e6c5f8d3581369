package suite

import "gramcheck/internal/domain"

// Builtin returns the default comment-disambiguation cases: line comments,
// block comments, and mixes of both must each parse to their own node type.
func Builtin() []domain.Case {
	return []domain.Case{
		{
			Name:   "line comment",
			Source: "# This is a line comment\n",
			Expect: []string{"line_comment"},
		},
		{
			Name:   "inline line comment",
			Source: "x = 1 # inline comment\n",
			Expect: []string{"line_comment"},
		},
		{
			Name:   "block comment",
			Source: "#= This is a block comment =#\n",
			Expect: []string{"block_comment"},
		},
		{
			Name:   "inline block comment",
			Source: "x = #= inline block comment =# 1\n",
			Expect: []string{"block_comment"},
		},
		{
			Name:   "line then block comment",
			Source: "# Line comment\n#= Block comment =#\n",
			Expect: []string{"line_comment", "block_comment"},
		},
		{
			Name:   "block and line on one line",
			Source: "x = #= block =# y # line\n",
			Expect: []string{"block_comment", "line_comment"},
		},
	}
}
