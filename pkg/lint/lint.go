// Package lint validates CQL input and reports syntax errors per statement.
package lint

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/parse"
	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// Check validates CQL and returns any errors found. The input may hold
// several semicolon-separated statements.
func Check(input string) types.Errors {
	return parse.Parse(input).Errors
}

// IsValid returns true if the CQL input is syntactically valid
func IsValid(input string) bool {
	return !Check(input).HasErrors()
}

// Result contains detailed lint results for a statement
type Result struct {
	Input   string
	Type    types.StatementType
	Errors  types.Errors
	IsValid bool
}

// Analyze performs detailed analysis on a CQL input as a whole. Type is the
// type of the first statement.
func Analyze(input string) *Result {
	ast := parse.Parse(input)
	res := &Result{
		Input:   input,
		Type:    types.StatementUnknown,
		Errors:  ast.Errors,
		IsValid: !ast.HasErrors(),
	}
	if first := ast.First(); first != nil {
		res.Type = first.Type()
	}
	return res
}

// AnalyzeMultiple performs per-statement analysis: one result per statement
// region, each with the errors that fall inside it.
func AnalyzeMultiple(input string) []*Result {
	ast := parse.Parse(input)
	results := make([]*Result, 0, len(ast.Statements))
	for _, stmt := range ast.Statements {
		res := &Result{
			Input:   strings.TrimSpace(stmt.ExtractText(input)),
			Type:    stmt.Statement.Type(),
			IsValid: !stmt.HasError,
		}
		if stmt.HasError {
			res.Errors = errorsInRegion(ast.Errors, input, stmt.StartByte, stmt.EndByte)
		}
		results = append(results, res)
	}
	return results
}

// errorsInRegion picks the errors whose position falls inside the byte range.
func errorsInRegion(errs types.Errors, input string, start, end int) types.Errors {
	var out types.Errors
	for _, e := range errs {
		off := offsetOf(input, e.Line, e.Column)
		if off >= start && off <= end {
			out = append(out, e)
		}
	}
	return out
}

// offsetOf converts a 1-based line and 0-based column back to a byte offset.
func offsetOf(input string, line, column int) int {
	off := 0
	for line > 1 {
		nl := strings.IndexByte(input[off:], '\n')
		if nl < 0 {
			break
		}
		off += nl + 1
		line--
	}
	return off + column
}
