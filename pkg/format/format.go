// Package format renders CQL statements as text.
//
// Compact style produces the canonical single-line form, the same text the
// statement types print themselves. Pretty style lays major clauses out on
// separate lines, one column per line in DDL, for human consumption.
package format

import (
	"fmt"
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/cql"
	"github.com/tentacle-scylla/cqlast/pkg/parse"
)

// Style defines the formatting style for CQL output
type Style int

const (
	// Compact produces single-line, minimal whitespace output
	Compact Style = iota

	// Pretty produces multi-line, indented output
	Pretty
)

// Options configures the formatter behavior
type Options struct {
	Style             Style
	IndentString      string // Default: "    " (4 spaces)
	TrailingSemicolon bool
}

// DefaultOptions returns sensible defaults for multi-line formatting
func DefaultOptions() Options {
	return Options{
		Style:             Pretty,
		IndentString:      "    ",
		TrailingSemicolon: true,
	}
}

// CompactOptions returns options for compact formatting
func CompactOptions() Options {
	return Options{
		Style:             Compact,
		TrailingSemicolon: true,
	}
}

// Format formats a single typed statement according to the given options.
func Format(stmt cql.Statement, opts Options) string {
	if stmt == nil {
		return ""
	}
	var out string
	if opts.Style == Pretty {
		out = prettyStatement(stmt, opts)
	} else {
		out = stmt.String()
	}
	if opts.TrailingSemicolon {
		out += ";"
	}
	return out
}

// String parses the input and formats every statement, joined by newlines.
// Returns an error if the input does not parse.
func String(input string, opts Options) (string, error) {
	ast := parse.Parse(input)
	if ast.HasErrors() {
		return "", ast.Errors[0]
	}
	parts := make([]string, len(ast.Statements))
	for i, s := range ast.Statements {
		parts[i] = Format(s.Statement, opts)
	}
	sep := "\n"
	if opts.Style == Pretty {
		sep = "\n\n"
	}
	return strings.Join(parts, sep), nil
}

// PrettyString formats the input with default pretty options.
func PrettyString(input string) (string, error) {
	return String(input, DefaultOptions())
}

// CompactString formats the input on single lines.
func CompactString(input string) (string, error) {
	return String(input, CompactOptions())
}

// prettyStatement renders one statement in pretty style. Statements without a
// dedicated pretty layout fall back to their canonical form.
func prettyStatement(stmt cql.Statement, opts Options) string {
	indent := opts.IndentString
	if indent == "" {
		indent = "    "
	}
	switch s := stmt.(type) {
	case cql.Select:
		return prettySelect(s)
	case *cql.Select:
		return prettySelect(*s)
	case cql.Insert:
		return prettyInsert(s)
	case *cql.Insert:
		return prettyInsert(*s)
	case cql.Update:
		return prettyUpdate(s)
	case *cql.Update:
		return prettyUpdate(*s)
	case cql.Delete:
		return prettyDelete(s)
	case *cql.Delete:
		return prettyDelete(*s)
	case cql.CreateTable:
		return prettyCreateTable(s, indent)
	case *cql.CreateTable:
		return prettyCreateTable(*s, indent)
	case cql.CreateType:
		return prettyCreateType(s, indent)
	case *cql.CreateType:
		return prettyCreateType(*s, indent)
	case cql.CreateKeyspace:
		return prettyKeyspace("CREATE", s.KeyspaceData)
	case *cql.CreateKeyspace:
		return prettyKeyspace("CREATE", s.KeyspaceData)
	case cql.AlterKeyspace:
		return prettyKeyspace("ALTER", s.KeyspaceData)
	case *cql.AlterKeyspace:
		return prettyKeyspace("ALTER", s.KeyspaceData)
	case cql.CreateMaterializedView:
		return prettyMaterializedView(s)
	case *cql.CreateMaterializedView:
		return prettyMaterializedView(*s)
	default:
		return stmt.String()
	}
}

func joinStringers[T fmt.Stringer](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, sep)
}

func prettySelect(s cql.Select) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if s.Distinct {
		b.WriteString("DISTINCT ")
	}
	if s.JSON {
		b.WriteString("JSON ")
	}
	b.WriteString(joinStringers(s.Columns, ", "))
	b.WriteString("\nFROM ")
	b.WriteString(s.TableName.String())
	if len(s.Where) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(joinStringers(s.Where, "\n  AND "))
	}
	if s.Order != nil {
		b.WriteString("\nORDER BY ")
		b.WriteString(s.Order.String())
	}
	if s.Limit != nil {
		fmt.Fprintf(&b, "\nLIMIT %d", *s.Limit)
	}
	if s.Filtering {
		b.WriteString("\nALLOW FILTERING")
	}
	return b.String()
}

func prettyInsert(s cql.Insert) string {
	// Batched writes keep their canonical layout.
	if s.BeginBatch != nil {
		return s.String()
	}
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(s.TableName.String())
	if len(s.Columns) > 0 {
		b.WriteString(" (")
		parts := make([]string, len(s.Columns))
		for i, c := range s.Columns {
			parts[i] = c.String()
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}
	b.WriteString("\n")
	b.WriteString(s.Values.String())
	if s.IfNotExists {
		b.WriteString("\nIF NOT EXISTS")
	}
	if s.UsingTTL != nil {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(s.UsingTTL.String()))
	}
	return b.String()
}

func prettyUpdate(s cql.Update) string {
	if s.BeginBatch != nil {
		return s.String()
	}
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(s.TableName.String())
	if s.UsingTTL != nil {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(s.UsingTTL.String()))
	}
	b.WriteString("\nSET ")
	b.WriteString(joinStringers(s.Assignments, ",\n    "))
	if len(s.Where) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(joinStringers(s.Where, "\n  AND "))
	}
	if s.IfExists {
		b.WriteString("\nIF EXISTS")
	} else if len(s.IfClause) > 0 {
		b.WriteString("\nIF ")
		b.WriteString(joinStringers(s.IfClause, " AND "))
	}
	return b.String()
}

func prettyDelete(s cql.Delete) string {
	if s.BeginBatch != nil {
		return s.String()
	}
	var b strings.Builder
	b.WriteString("DELETE")
	if len(s.Columns) > 0 {
		b.WriteString(" ")
		b.WriteString(joinStringers(s.Columns, ", "))
	}
	b.WriteString("\nFROM ")
	b.WriteString(s.TableName.String())
	if s.Timestamp != nil {
		fmt.Fprintf(&b, "\nUSING TIMESTAMP %d", *s.Timestamp)
	}
	if len(s.Where) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(joinStringers(s.Where, "\n  AND "))
	}
	if s.IfExists {
		b.WriteString("\nIF EXISTS")
	} else if len(s.IfClause) > 0 {
		b.WriteString("\nIF ")
		b.WriteString(joinStringers(s.IfClause, " AND "))
	}
	return b.String()
}

func prettyCreateTable(s cql.CreateTable, indent string) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	if s.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(s.Name.String())
	b.WriteString(" (\n")
	lines := make([]string, 0, len(s.Columns)+1)
	for _, c := range s.Columns {
		lines = append(lines, indent+c.String())
	}
	if s.Key != nil {
		lines = append(lines, indent+s.Key.String())
	}
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n)")
	if len(s.WithClause) > 0 {
		b.WriteString(" WITH ")
		b.WriteString(joinStringers(s.WithClause, "\n  AND "))
	}
	return b.String()
}

func prettyCreateType(s cql.CreateType, indent string) string {
	var b strings.Builder
	b.WriteString("CREATE TYPE ")
	if s.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(s.Name.String())
	b.WriteString(" (\n")
	lines := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		lines[i] = indent + c.String()
	}
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n)")
	return b.String()
}

func prettyKeyspace(verb string, k cql.KeyspaceData) string {
	var b strings.Builder
	b.WriteString(verb)
	b.WriteString(" KEYSPACE ")
	if k.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(k.Name.String())
	b.WriteString("\nWITH REPLICATION = {")
	parts := make([]string, len(k.Replication))
	for i, p := range k.Replication {
		parts[i] = p.Key + ":" + p.Value
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString("}")
	if k.DurableWrites != nil {
		if *k.DurableWrites {
			b.WriteString("\n  AND DURABLE_WRITES = TRUE")
		} else {
			b.WriteString("\n  AND DURABLE_WRITES = FALSE")
		}
	}
	return b.String()
}

func prettyMaterializedView(s cql.CreateMaterializedView) string {
	var b strings.Builder
	b.WriteString("CREATE MATERIALIZED VIEW ")
	if s.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(s.Name.String())
	b.WriteString(" AS\nSELECT ")
	parts := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		parts[i] = c.String()
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString("\nFROM ")
	b.WriteString(s.Table.String())
	if len(s.Where) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(joinStringers(s.Where, "\n  AND "))
	}
	b.WriteString("\n")
	b.WriteString(s.Key.String())
	if len(s.WithClause) > 0 {
		b.WriteString("\nWITH ")
		b.WriteString(joinStringers(s.WithClause, "\n  AND "))
	}
	return b.String()
}
