package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// CreateMaterializedView is a CREATE MATERIALIZED VIEW statement.
type CreateMaterializedView struct {
	IfNotExists bool
	Name        FQName
	Columns     []Identifier
	Table       FQName
	Where       []RelationElement
	Key         PrimaryKey
	WithClause  []WithItem
}

func (CreateMaterializedView) isStatement() {}

func (v CreateMaterializedView) String() string {
	var b strings.Builder
	b.WriteString("CREATE MATERIALIZED VIEW ")
	if v.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(v.Name.String())
	b.WriteString(" AS SELECT ")
	b.WriteString(joinIdentifiers(v.Columns))
	b.WriteString(" FROM ")
	b.WriteString(v.Table.String())
	b.WriteString(" WHERE ")
	b.WriteString(joinRelations(v.Where))
	b.WriteString(" ")
	b.WriteString(v.Key.String())
	if len(v.WithClause) > 0 {
		b.WriteString(" WITH ")
		b.WriteString(joinWithItems(v.WithClause))
	}
	return b.String()
}

func (CreateMaterializedView) ShortName() string { return "CREATE MATERIALIZED VIEW" }

func (v CreateMaterializedView) GetKeyspace(def string) string {
	return v.Name.ExtractKeyspace(def)
}

func (v CreateMaterializedView) GetTableName() *FQName { return &v.Table }

func (CreateMaterializedView) Type() types.StatementType {
	return types.StatementCreateMaterializedView
}

// AlterMaterializedView is an ALTER MATERIALIZED VIEW statement.
type AlterMaterializedView struct {
	Name       FQName
	WithClause []WithItem
}

func (AlterMaterializedView) isStatement() {}

func (v AlterMaterializedView) String() string {
	var b strings.Builder
	b.WriteString("ALTER MATERIALIZED VIEW ")
	b.WriteString(v.Name.String())
	if len(v.WithClause) > 0 {
		b.WriteString(" WITH ")
		b.WriteString(joinWithItems(v.WithClause))
	}
	return b.String()
}

func (AlterMaterializedView) ShortName() string { return "ALTER MATERIALIZED VIEW" }

func (v AlterMaterializedView) GetKeyspace(def string) string {
	return v.Name.ExtractKeyspace(def)
}

func (AlterMaterializedView) GetTableName() *FQName { return nil }

func (AlterMaterializedView) Type() types.StatementType {
	return types.StatementAlterMaterializedView
}
