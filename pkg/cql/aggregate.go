package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// InitCondKind discriminates the INITCOND forms.
type InitCondKind int

const (
	// InitCondConstant is a single constant value.
	InitCondConstant InitCondKind = iota
	// InitCondList is a parenthesised list of conditions.
	InitCondList
	// InitCondMap is a parenthesised list of key:condition pairs.
	InitCondMap
)

// InitCondition is the INITCOND clause of a CREATE AGGREGATE statement.
// Lists and maps nest arbitrarily.
type InitCondition struct {
	Kind     InitCondKind
	Constant string
	Values   []InitCondition
	Pairs    []InitCondPair
}

// InitCondPair is one key:condition entry of a map-form INITCOND.
type InitCondPair struct {
	Key   string
	Value InitCondition
}

func (c InitCondition) String() string {
	switch c.Kind {
	case InitCondList:
		parts := make([]string, len(c.Values))
		for i, v := range c.Values {
			parts[i] = v.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case InitCondMap:
		parts := make([]string, len(c.Pairs))
		for i, p := range c.Pairs {
			parts[i] = p.Key + ":" + p.Value.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return c.Constant
}

// CreateAggregate is a CREATE AGGREGATE statement.
type CreateAggregate struct {
	OrReplace   bool
	IfNotExists bool
	Name        FQName
	DataType    DataType
	SFunc       string
	SType       DataType
	FinalFunc   string
	InitCond    InitCondition
}

func (CreateAggregate) isStatement() {}

func (a CreateAggregate) String() string {
	var b strings.Builder
	b.WriteString("CREATE ")
	if a.OrReplace {
		b.WriteString("OR REPLACE ")
	}
	b.WriteString("AGGREGATE ")
	if a.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(a.Name.String())
	b.WriteString(" (")
	b.WriteString(a.DataType.String())
	b.WriteString(") SFUNC ")
	b.WriteString(a.SFunc)
	b.WriteString(" STYPE ")
	b.WriteString(a.SType.String())
	if a.FinalFunc != "" {
		b.WriteString(" FINALFUNC ")
		b.WriteString(a.FinalFunc)
	}
	if cond := a.InitCond.String(); cond != "" {
		b.WriteString(" INITCOND ")
		b.WriteString(cond)
	}
	return b.String()
}

func (CreateAggregate) ShortName() string { return "CREATE AGGREGATE" }

func (a CreateAggregate) GetKeyspace(def string) string { return a.Name.ExtractKeyspace(def) }

func (CreateAggregate) GetTableName() *FQName { return nil }

func (CreateAggregate) Type() types.StatementType { return types.StatementCreateAggregate }
