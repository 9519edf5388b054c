package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// Insert is an INSERT statement.
type Insert struct {
	// BeginBatch, when set, prefixes the statement with BEGIN BATCH.
	BeginBatch  *BeginBatch
	TableName   FQName
	Columns     []Identifier
	Values      InsertValues
	UsingTTL    *TtlTimestamp
	IfNotExists bool
}

func (Insert) isStatement() {}

func (i Insert) String() string {
	var b strings.Builder
	b.WriteString(beginBatchPrefix(i.BeginBatch))
	b.WriteString("INSERT INTO ")
	b.WriteString(i.TableName.String())
	if len(i.Columns) > 0 {
		b.WriteString(" (")
		b.WriteString(joinIdentifiers(i.Columns))
		b.WriteString(")")
	}
	b.WriteString(" ")
	b.WriteString(i.Values.String())
	if i.IfNotExists {
		b.WriteString(" IF NOT EXISTS")
	}
	if i.UsingTTL != nil {
		b.WriteString(i.UsingTTL.String())
	}
	return b.String()
}

func (Insert) ShortName() string { return "INSERT" }

func (i Insert) GetKeyspace(def string) string { return i.TableName.ExtractKeyspace(def) }

func (i Insert) GetTableName() *FQName { return &i.TableName }

func (Insert) Type() types.StatementType { return types.StatementInsert }

// ValueMap pairs column names with their inserted operands. The map is empty
// for JSON inserts or when the column and value counts disagree.
func (i Insert) ValueMap() map[string]Operand {
	result := make(map[string]Operand)
	if i.Values.JSON != "" || len(i.Columns) != len(i.Values.Values) {
		return result
	}
	for n, col := range i.Columns {
		result[col.String()] = i.Values.Values[n]
	}
	return result
}

// InsertValues is the value part of an INSERT: either a VALUES list or a JSON
// string.
type InsertValues struct {
	Values []Operand
	// JSON, when non-empty, holds the raw JSON constant and takes precedence.
	JSON string
}

func (v InsertValues) String() string {
	if v.JSON != "" {
		return "JSON " + v.JSON
	}
	parts := make([]string, len(v.Values))
	for i, op := range v.Values {
		parts[i] = op.String()
	}
	return "VALUES (" + strings.Join(parts, ", ") + ")"
}
