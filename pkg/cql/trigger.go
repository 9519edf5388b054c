package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// CreateTrigger is a CREATE TRIGGER statement.
type CreateTrigger struct {
	IfNotExists bool
	Name        FQName
	// Class holds the raw trigger class constant, quotes included.
	Class string
}

func (CreateTrigger) isStatement() {}

func (t CreateTrigger) String() string {
	var b strings.Builder
	b.WriteString("CREATE TRIGGER ")
	if t.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(t.Name.String())
	b.WriteString(" USING ")
	b.WriteString(t.Class)
	return b.String()
}

func (CreateTrigger) ShortName() string { return "CREATE TRIGGER" }

func (t CreateTrigger) GetKeyspace(def string) string { return t.Name.ExtractKeyspace(def) }

func (CreateTrigger) GetTableName() *FQName { return nil }

func (CreateTrigger) Type() types.StatementType { return types.StatementCreateTrigger }

// DropTrigger is a DROP TRIGGER statement.
type DropTrigger struct {
	IfExists bool
	Name     FQName
	Table    FQName
}

func (DropTrigger) isStatement() {}

func (t DropTrigger) String() string {
	var b strings.Builder
	b.WriteString("DROP TRIGGER")
	if t.IfExists {
		b.WriteString(" IF EXISTS")
	}
	b.WriteString(" ")
	b.WriteString(t.Name.String())
	b.WriteString(" ON ")
	b.WriteString(t.Table.String())
	return b.String()
}

func (DropTrigger) ShortName() string { return "DROP TRIGGER" }

func (t DropTrigger) GetKeyspace(def string) string { return t.Table.ExtractKeyspace(def) }

func (t DropTrigger) GetTableName() *FQName { return &t.Table }

func (DropTrigger) Type() types.StatementType { return types.StatementDropTrigger }
