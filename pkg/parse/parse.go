// Package parse turns CQL source into typed statements. Parsing never fails
// as a whole: each statement region that cannot be parsed is reported as an
// error and carried through as cql.Unknown, so one bad statement does not
// take down the rest of a script.
package parse

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/cql"
	"github.com/tentacle-scylla/cqlast/pkg/grammar"
	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// AST is the result of parsing a CQL source text.
type AST struct {
	// Text is the original input.
	Text string

	// Tree is the underlying syntax tree.
	Tree *grammar.Tree

	// Statements holds one entry per statement region, in source order.
	Statements []ParsedStatement

	// Errors contains any parsing errors encountered.
	Errors types.Errors
}

// ParsedStatement is one statement region of the input.
type ParsedStatement struct {
	// Statement is the typed statement; cql.Unknown when the region failed
	// to parse.
	Statement cql.Statement

	// HasError reports whether the region failed to parse.
	HasError bool

	// StartByte and EndByte delimit the region in the input, semicolon
	// excluded.
	StartByte int
	EndByte   int
}

// ExtractText returns the region's raw text.
func (s ParsedStatement) ExtractText(input string) string {
	return input[s.StartByte:s.EndByte]
}

// HasErrors returns true if there were any parsing errors.
func (a *AST) HasErrors() bool {
	return len(a.Errors) > 0
}

// First returns the first parsed statement, or nil for empty input.
func (a *AST) First() cql.Statement {
	if len(a.Statements) == 0 {
		return nil
	}
	return a.Statements[0].Statement
}

// Parse parses CQL source holding one or more semicolon-separated
// statements.
func Parse(input string) *AST {
	tree := grammar.ParseTree(input)

	ast := &AST{Text: input, Tree: tree}
	for _, err := range tree.Errors {
		ast.Errors = append(ast.Errors, convertError(err, input))
	}

	cursor := tree.Root.Walk()
	if !cursor.GotoFirstChild() {
		return ast
	}
	for {
		node := cursor.Node()
		ast.Statements = append(ast.Statements, ParsedStatement{
			Statement: statementFromNode(input, node),
			HasError:  node.HasError(),
			StartByte: node.StartByte(),
			EndByte:   node.EndByte(),
		})
		if !cursor.GotoNextSibling() {
			break
		}
	}
	return ast
}

// Statements parses input and returns just the typed statements.
func Statements(input string) []cql.Statement {
	ast := Parse(input)
	out := make([]cql.Statement, len(ast.Statements))
	for i, s := range ast.Statements {
		out[i] = s.Statement
	}
	return out
}

// IsValid returns true if the CQL input is syntactically valid.
func IsValid(input string) bool {
	return !Parse(input).HasErrors()
}

// Region is a statement region of a source text.
type Region struct {
	Text      string
	StartByte int
	EndByte   int
}

// Split splits CQL source into statement regions without building typed
// statements. Semicolons inside strings, quoted names and comments do not
// split.
func Split(input string) []Region {
	tree := grammar.ParseTree(input)
	cursor := tree.Root.Walk()
	if !cursor.GotoFirstChild() {
		return nil
	}
	var regions []Region
	for {
		node := cursor.Node()
		regions = append(regions, Region{
			Text:      node.Content(input),
			StartByte: node.StartByte(),
			EndByte:   node.EndByte(),
		})
		if !cursor.GotoNextSibling() {
			break
		}
	}
	return regions
}

// convertError turns a syntax error into a reported error, attaching a
// keyword suggestion when the offending token looks like a typo.
func convertError(err *grammar.ParseError, input string) *types.Error {
	out := &types.Error{
		Line:    err.Line,
		Column:  err.Column,
		Message: err.Message,
		Query:   input,
	}
	if err.Near != "" {
		if suggestion := SuggestKeyword(err.Near); suggestion != "" {
			out.Suggestion = "Did you mean '" + suggestion + "'?"
		}
	}
	if out.Suggestion == "" {
		out.Suggestion = suggestFromInput(input)
	}
	return out
}

// suggestFromInput scans the input for words that look like misspelled
// keywords.
func suggestFromInput(input string) string {
	for _, word := range strings.Fields(input) {
		word = strings.TrimRight(word, ";,()[]{}=<>!")
		word = strings.TrimLeft(word, "(")
		if word == "" || grammar.IsKeyword(word) {
			continue
		}
		if suggestion := SuggestKeyword(word); suggestion != "" {
			return "Did you mean '" + suggestion + "'?"
		}
	}
	return ""
}
