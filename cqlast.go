// Package cqlast provides CQL parsing, linting, and formatting capabilities
// for Cassandra and ScyllaDB.
//
// This is a convenience package that re-exports the main types and functions
// from the sub-packages. For more control, import the sub-packages directly:
//
//   - github.com/tentacle-scylla/cqlast/pkg/parse    - Parsing CQL into typed statements
//   - github.com/tentacle-scylla/cqlast/pkg/cql      - The typed statement model
//   - github.com/tentacle-scylla/cqlast/pkg/grammar  - Lexer, syntax tree and cursor
//   - github.com/tentacle-scylla/cqlast/pkg/format   - Formatting CQL statements
//   - github.com/tentacle-scylla/cqlast/pkg/lint     - Linting CQL statements
//   - github.com/tentacle-scylla/cqlast/pkg/types    - Common types (Error, StatementType)
//   - github.com/tentacle-scylla/cqlast/pkg/schema   - Schema types
//   - github.com/tentacle-scylla/cqlast/pkg/tokenize - Tokenization for highlighting
package cqlast

import (
	"github.com/tentacle-scylla/cqlast/pkg/cql"
	"github.com/tentacle-scylla/cqlast/pkg/format"
	"github.com/tentacle-scylla/cqlast/pkg/lint"
	"github.com/tentacle-scylla/cqlast/pkg/parse"
	"github.com/tentacle-scylla/cqlast/pkg/schema"
	"github.com/tentacle-scylla/cqlast/pkg/tokenize"
	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// Re-export types
type (
	// Error represents a parsing or validation error with position information
	Error = types.Error

	// Errors is a collection of Error pointers
	Errors = types.Errors

	// StatementType represents the type of CQL statement
	StatementType = types.StatementType

	// Statement is a typed CQL statement
	Statement = cql.Statement

	// AST is the result of parsing a CQL source text
	AST = parse.AST

	// ParsedStatement is one statement region of a parsed input
	ParsedStatement = parse.ParsedStatement

	// Region is a statement region produced by Split
	Region = parse.Region

	// LintResult contains detailed lint results for a statement
	LintResult = lint.Result

	// FormatStyle defines the formatting style for CQL output
	FormatStyle = format.Style

	// FormatOptions configures the formatter behavior
	FormatOptions = format.Options

	// Schema represents a CQL schema (keyspaces, tables, columns, etc.)
	Schema = schema.Schema

	// Keyspace represents a keyspace in the schema
	Keyspace = schema.Keyspace

	// Table represents a table in the schema
	Table = schema.Table

	// Column represents a column in a table
	Column = schema.Column

	// Token represents a single token for syntax highlighting
	Token = tokenize.Token

	// TokenType identifies the semantic type of a token
	TokenType = tokenize.TokenType

	// TokenContext provides semantic information for enhanced tokenization
	TokenContext = tokenize.Context
)

// Re-export statement type constants
const (
	StatementUnknown                = types.StatementUnknown
	StatementSelect                 = types.StatementSelect
	StatementInsert                 = types.StatementInsert
	StatementUpdate                 = types.StatementUpdate
	StatementDelete                 = types.StatementDelete
	StatementBatch                  = types.StatementBatch
	StatementCreateKeyspace         = types.StatementCreateKeyspace
	StatementAlterKeyspace          = types.StatementAlterKeyspace
	StatementDropKeyspace           = types.StatementDropKeyspace
	StatementCreateTable            = types.StatementCreateTable
	StatementAlterTable             = types.StatementAlterTable
	StatementDropTable              = types.StatementDropTable
	StatementTruncate               = types.StatementTruncate
	StatementCreateIndex            = types.StatementCreateIndex
	StatementDropIndex              = types.StatementDropIndex
	StatementCreateMaterializedView = types.StatementCreateMaterializedView
	StatementAlterMaterializedView  = types.StatementAlterMaterializedView
	StatementDropMaterializedView   = types.StatementDropMaterializedView
	StatementCreateType             = types.StatementCreateType
	StatementAlterType              = types.StatementAlterType
	StatementDropType               = types.StatementDropType
	StatementCreateFunction         = types.StatementCreateFunction
	StatementDropFunction           = types.StatementDropFunction
	StatementCreateAggregate        = types.StatementCreateAggregate
	StatementDropAggregate          = types.StatementDropAggregate
	StatementCreateTrigger          = types.StatementCreateTrigger
	StatementDropTrigger            = types.StatementDropTrigger
	StatementCreateRole             = types.StatementCreateRole
	StatementAlterRole              = types.StatementAlterRole
	StatementDropRole               = types.StatementDropRole
	StatementCreateUser             = types.StatementCreateUser
	StatementAlterUser              = types.StatementAlterUser
	StatementDropUser               = types.StatementDropUser
	StatementGrant                  = types.StatementGrant
	StatementRevoke                 = types.StatementRevoke
	StatementListRoles              = types.StatementListRoles
	StatementListPermissions        = types.StatementListPermissions
	StatementUse                    = types.StatementUse
)

// Re-export format style constants
const (
	FormatCompact = format.Compact
	FormatPretty  = format.Pretty
)

// Re-export token type constants
const (
	TokenKeyword       = tokenize.TokenKeyword
	TokenFunction      = tokenize.TokenFunction
	TokenTypeToken     = tokenize.TokenType_
	TokenString        = tokenize.TokenString
	TokenNumber        = tokenize.TokenNumber
	TokenIdentifier    = tokenize.TokenIdentifier
	TokenOperator      = tokenize.TokenOperator
	TokenPunctuation   = tokenize.TokenPunctuation
	TokenPartitionKey  = tokenize.TokenPartitionKey
	TokenClusteringKey = tokenize.TokenClusteringKey
	TokenColumn        = tokenize.TokenColumn
	TokenPlaceholder   = tokenize.TokenPlaceholder
)

// Parse parses CQL source holding one or more semicolon-separated statements
func Parse(input string) *AST {
	return parse.Parse(input)
}

// Statements parses input and returns just the typed statements
func Statements(input string) []Statement {
	return parse.Statements(input)
}

// Split splits CQL source into statement regions
func Split(input string) []Region {
	return parse.Split(input)
}

// IsValid returns true if the CQL input is syntactically valid
func IsValid(input string) bool {
	return parse.IsValid(input)
}

// Lint validates CQL and returns any errors found
func Lint(input string) Errors {
	return lint.Check(input)
}

// Analyze performs detailed analysis on a CQL input
func Analyze(input string) *LintResult {
	return lint.Analyze(input)
}

// AnalyzeMultiple performs detailed analysis on multiple CQL statements
func AnalyzeMultiple(input string) []*LintResult {
	return lint.AnalyzeMultiple(input)
}

// Format formats a typed CQL statement according to the given options
func Format(stmt Statement, opts FormatOptions) string {
	return format.Format(stmt, opts)
}

// FormatString parses and formats a CQL string
func FormatString(input string, opts FormatOptions) (string, error) {
	return format.String(input, opts)
}

// Pretty is a convenience function for pretty formatting
func Pretty(input string) (string, error) {
	return format.PrettyString(input)
}

// Compact is a convenience function for compact formatting
func Compact(input string) (string, error) {
	return format.CompactString(input)
}

// DefaultFormatOptions returns sensible defaults for formatting
func DefaultFormatOptions() FormatOptions {
	return format.DefaultOptions()
}

// CompactFormatOptions returns options for compact formatting
func CompactFormatOptions() FormatOptions {
	return format.CompactOptions()
}

// NewSchema creates an empty schema
func NewSchema() *Schema {
	return schema.NewSchema()
}

// LoadSchemaDDL builds a schema from a CQL DDL script
func LoadSchemaDDL(input string) (*Schema, error) {
	return schema.LoadDDL(input)
}

// GetTokens returns all tokens from a CQL string with semantic classification.
// The optional context provides semantic information for enhanced highlighting
// (e.g., distinguishing partition keys from regular columns).
func GetTokens(input string, ctx *TokenContext) []Token {
	return tokenize.Tokenize(input, ctx)
}
