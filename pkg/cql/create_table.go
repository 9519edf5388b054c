package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// CreateTable is a CREATE TABLE statement.
type CreateTable struct {
	IfNotExists bool
	Name        FQName
	Columns     []ColumnDefinition
	// Key is the table-level primary key, when not given inline on a column.
	Key        *PrimaryKey
	WithClause []WithItem
}

func (CreateTable) isStatement() {}

func (t CreateTable) String() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	if t.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(t.Name.String())
	b.WriteString(" (")
	parts := make([]string, 0, len(t.Columns)+1)
	for _, c := range t.Columns {
		parts = append(parts, c.String())
	}
	if t.Key != nil {
		parts = append(parts, t.Key.String())
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(")")
	if len(t.WithClause) > 0 {
		b.WriteString(" WITH ")
		b.WriteString(joinWithItems(t.WithClause))
	}
	return b.String()
}

func (CreateTable) ShortName() string { return "CREATE TABLE" }

func (t CreateTable) GetKeyspace(def string) string { return t.Name.ExtractKeyspace(def) }

func (t CreateTable) GetTableName() *FQName { return &t.Name }

func (CreateTable) Type() types.StatementType { return types.StatementCreateTable }

// AlterTableOperationKind discriminates the ALTER TABLE operations.
type AlterTableOperationKind int

const (
	AlterTableAdd AlterTableOperationKind = iota
	AlterTableDropColumns
	AlterTableDropCompactStorage
	AlterTableRename
	AlterTableWith
)

// AlterTableOperation is the operation part of an ALTER TABLE statement.
type AlterTableOperation struct {
	Kind    AlterTableOperationKind
	Columns []ColumnDefinition // Add
	Dropped []Identifier       // DropColumns
	From    Identifier         // Rename
	To      Identifier         // Rename
	With    []WithItem         // With
}

func (op AlterTableOperation) String() string {
	switch op.Kind {
	case AlterTableAdd:
		parts := make([]string, len(op.Columns))
		for i, c := range op.Columns {
			parts[i] = c.String()
		}
		return "ADD " + strings.Join(parts, ", ")
	case AlterTableDropColumns:
		return "DROP " + joinIdentifiers(op.Dropped)
	case AlterTableDropCompactStorage:
		return "DROP COMPACT STORAGE"
	case AlterTableRename:
		return "RENAME " + op.From.String() + " TO " + op.To.String()
	case AlterTableWith:
		return "WITH " + joinWithItems(op.With)
	}
	return ""
}

// AlterTable is an ALTER TABLE statement.
type AlterTable struct {
	Name      FQName
	Operation AlterTableOperation
}

func (AlterTable) isStatement() {}

func (t AlterTable) String() string {
	return "ALTER TABLE " + t.Name.String() + " " + t.Operation.String()
}

func (AlterTable) ShortName() string { return "ALTER TABLE" }

func (t AlterTable) GetKeyspace(def string) string { return t.Name.ExtractKeyspace(def) }

func (t AlterTable) GetTableName() *FQName { return &t.Name }

func (AlterTable) Type() types.StatementType { return types.StatementAlterTable }
