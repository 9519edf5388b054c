package cql

import (
	"fmt"
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// Delete is a DELETE statement.
type Delete struct {
	BeginBatch *BeginBatch
	// Columns is the optional list of columns to delete.
	Columns   []IndexedColumn
	TableName FQName
	Timestamp *uint64
	Where     []RelationElement
	// IfClause holds the IF conditions; IfExists renders IF EXISTS when
	// IfClause is empty.
	IfClause []RelationElement
	IfExists bool
}

func (Delete) isStatement() {}

func (d Delete) String() string {
	var b strings.Builder
	b.WriteString(beginBatchPrefix(d.BeginBatch))
	b.WriteString("DELETE ")
	if len(d.Columns) > 0 {
		parts := make([]string, len(d.Columns))
		for i, c := range d.Columns {
			parts[i] = c.String()
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(" ")
	}
	b.WriteString("FROM ")
	b.WriteString(d.TableName.String())
	if d.Timestamp != nil {
		b.WriteString(fmt.Sprintf(" USING TIMESTAMP %d", *d.Timestamp))
	}
	b.WriteString(" WHERE ")
	b.WriteString(joinRelations(d.Where))
	if len(d.IfClause) > 0 {
		b.WriteString(" IF ")
		b.WriteString(joinRelations(d.IfClause))
	} else if d.IfExists {
		b.WriteString(" IF EXISTS")
	}
	return b.String()
}

func (Delete) ShortName() string { return "DELETE" }

func (d Delete) GetKeyspace(def string) string { return d.TableName.ExtractKeyspace(def) }

func (d Delete) GetTableName() *FQName { return &d.TableName }

func (Delete) Type() types.StatementType { return types.StatementDelete }

// IndexedColumn is a column with an optional index into it, written
// column[idx].
type IndexedColumn struct {
	Column Identifier
	// Idx is the raw index expression, empty when absent.
	Idx string
}

func (c IndexedColumn) String() string {
	if c.Idx != "" {
		return c.Column.String() + "[" + c.Idx + "]"
	}
	return c.Column.String()
}
