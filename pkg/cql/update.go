package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// Update is an UPDATE statement.
type Update struct {
	BeginBatch  *BeginBatch
	TableName   FQName
	UsingTTL    *TtlTimestamp
	Assignments []AssignmentElement
	Where       []RelationElement
	IfClause    []RelationElement
	IfExists    bool
}

func (Update) isStatement() {}

func (u Update) String() string {
	var b strings.Builder
	b.WriteString(beginBatchPrefix(u.BeginBatch))
	b.WriteString("UPDATE ")
	b.WriteString(u.TableName.String())
	if u.UsingTTL != nil {
		b.WriteString(u.UsingTTL.String())
	}
	b.WriteString(" SET ")
	parts := make([]string, len(u.Assignments))
	for i, a := range u.Assignments {
		parts[i] = a.String()
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(" WHERE ")
	b.WriteString(joinRelations(u.Where))
	if len(u.IfClause) > 0 {
		b.WriteString(" IF ")
		b.WriteString(joinRelations(u.IfClause))
	} else if u.IfExists {
		b.WriteString(" IF EXISTS")
	}
	return b.String()
}

func (Update) ShortName() string { return "UPDATE" }

func (u Update) GetKeyspace(def string) string { return u.TableName.ExtractKeyspace(def) }

func (u Update) GetTableName() *FQName { return &u.TableName }

func (Update) Type() types.StatementType { return types.StatementUpdate }

// AssignmentOperatorKind selects the optional arithmetic in an assignment.
type AssignmentOperatorKind int

const (
	AssignmentPlus AssignmentOperatorKind = iota
	AssignmentMinus
)

// AssignmentOperator is the optional `+ value` or `- value` suffix of an
// assignment.
type AssignmentOperator struct {
	Kind    AssignmentOperatorKind
	Operand Operand
}

func (a AssignmentOperator) String() string {
	if a.Kind == AssignmentMinus {
		return " - " + a.Operand.String()
	}
	return " + " + a.Operand.String()
}

// AssignmentElement is one SET item: a column (optionally indexed), a value
// and an optional +/- operand.
type AssignmentElement struct {
	Name     IndexedColumn
	Value    Operand
	Operator *AssignmentOperator
}

func (a AssignmentElement) String() string {
	if a.Operator != nil {
		return a.Name.String() + " = " + a.Value.String() + a.Operator.String()
	}
	return a.Name.String() + " = " + a.Value.String()
}
