package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// IndexColumnKind discriminates how the indexed column is addressed.
type IndexColumnKind int

const (
	// IndexColumn indexes the column value.
	IndexColumn IndexColumnKind = iota
	// IndexKeys indexes the keys of a map column.
	IndexKeys
	// IndexEntries indexes the entries of a map column.
	IndexEntries
	// IndexFull indexes a frozen collection as a whole.
	IndexFull
)

// IndexColumnType is the column specification of a CREATE INDEX statement.
type IndexColumnType struct {
	Kind IndexColumnKind
	Name string
}

func (c IndexColumnType) String() string {
	switch c.Kind {
	case IndexKeys:
		return "KEYS( " + c.Name + " )"
	case IndexEntries:
		return "ENTRIES( " + c.Name + " )"
	case IndexFull:
		return "FULL( " + c.Name + " )"
	}
	return c.Name
}

// CreateIndex is a CREATE INDEX statement.
type CreateIndex struct {
	IfNotExists bool
	// Name is the optional index name.
	Name   string
	Table  FQName
	Column IndexColumnType
}

func (CreateIndex) isStatement() {}

func (i CreateIndex) String() string {
	var b strings.Builder
	b.WriteString("CREATE INDEX ")
	if i.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	if i.Name != "" {
		b.WriteString(i.Name)
		b.WriteString(" ")
	}
	b.WriteString("ON ")
	b.WriteString(i.Table.String())
	b.WriteString("( ")
	b.WriteString(i.Column.String())
	b.WriteString(" )")
	return b.String()
}

func (CreateIndex) ShortName() string { return "CREATE INDEX" }

func (i CreateIndex) GetKeyspace(def string) string { return i.Table.ExtractKeyspace(def) }

func (i CreateIndex) GetTableName() *FQName { return &i.Table }

func (CreateIndex) Type() types.StatementType { return types.StatementCreateIndex }
