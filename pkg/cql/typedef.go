package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// CreateType is a CREATE TYPE statement.
type CreateType struct {
	IfNotExists bool
	Name        FQName
	Columns     []ColumnDefinition
}

func (CreateType) isStatement() {}

func (t CreateType) String() string {
	var b strings.Builder
	b.WriteString("CREATE TYPE ")
	if t.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(t.Name.String())
	b.WriteString(" (")
	parts := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		parts[i] = c.String()
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(")")
	return b.String()
}

func (CreateType) ShortName() string { return "CREATE TYPE" }

func (t CreateType) GetKeyspace(def string) string { return t.Name.ExtractKeyspace(def) }

func (CreateType) GetTableName() *FQName { return nil }

func (CreateType) Type() types.StatementType { return types.StatementCreateType }

// AlterTypeOperationKind discriminates the ALTER TYPE operations.
type AlterTypeOperationKind int

const (
	AlterTypeAlterColumn AlterTypeOperationKind = iota
	AlterTypeAdd
	AlterTypeRename
)

// AlterTypeRenamePair is one FROM TO pair of an ALTER TYPE RENAME.
type AlterTypeRenamePair struct {
	From Identifier
	To   Identifier
}

// AlterTypeOperation is the operation part of an ALTER TYPE statement.
type AlterTypeOperation struct {
	Kind AlterTypeOperationKind
	// Column and DataType carry the AlterColumn form.
	Column   Identifier
	DataType DataType
	// Added carries the Add form.
	Added []ColumnDefinition
	// Renamed carries the Rename form.
	Renamed []AlterTypeRenamePair
}

func (op AlterTypeOperation) String() string {
	switch op.Kind {
	case AlterTypeAlterColumn:
		return "ALTER " + op.Column.String() + " TYPE " + op.DataType.String()
	case AlterTypeAdd:
		parts := make([]string, len(op.Added))
		for i, c := range op.Added {
			parts[i] = c.String()
		}
		return "ADD " + strings.Join(parts, ", ")
	case AlterTypeRename:
		parts := make([]string, len(op.Renamed))
		for i, p := range op.Renamed {
			parts[i] = p.From.String() + " TO " + p.To.String()
		}
		return "RENAME " + strings.Join(parts, " AND ")
	}
	return ""
}

// AlterType is an ALTER TYPE statement.
type AlterType struct {
	Name      FQName
	Operation AlterTypeOperation
}

func (AlterType) isStatement() {}

func (t AlterType) String() string {
	return "ALTER TYPE " + t.Name.String() + " " + t.Operation.String()
}

func (AlterType) ShortName() string { return "ALTER TYPE" }

func (t AlterType) GetKeyspace(def string) string { return t.Name.ExtractKeyspace(def) }

func (AlterType) GetTableName() *FQName { return nil }

func (AlterType) Type() types.StatementType { return types.StatementAlterType }
