package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// CreateFunction is a CREATE FUNCTION statement.
type CreateFunction struct {
	OrReplace   bool
	IfNotExists bool
	Name        FQName
	Params      []ColumnDefinition
	// ReturnsNull is true for RETURNS NULL ON NULL INPUT, false for
	// CALLED ON NULL INPUT.
	ReturnsNull bool
	Returns     DataType
	Language    string
	// Body holds the raw function body constant, delimiters included.
	Body string
}

func (CreateFunction) isStatement() {}

func (f CreateFunction) String() string {
	var b strings.Builder
	b.WriteString("CREATE ")
	if f.OrReplace {
		b.WriteString("OR REPLACE ")
	}
	b.WriteString("FUNCTION ")
	if f.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(f.Name.String())
	b.WriteString(" (")
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(") ")
	if f.ReturnsNull {
		b.WriteString("RETURNS NULL")
	} else {
		b.WriteString("CALLED")
	}
	b.WriteString(" ON NULL INPUT RETURNS ")
	b.WriteString(f.Returns.String())
	b.WriteString(" LANGUAGE ")
	b.WriteString(f.Language)
	b.WriteString(" AS ")
	b.WriteString(f.Body)
	return b.String()
}

func (CreateFunction) ShortName() string { return "CREATE FUNCTION" }

func (f CreateFunction) GetKeyspace(def string) string { return f.Name.ExtractKeyspace(def) }

func (CreateFunction) GetTableName() *FQName { return nil }

func (CreateFunction) Type() types.StatementType { return types.StatementCreateFunction }
