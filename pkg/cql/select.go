package cql

import (
	"fmt"
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// Select is a SELECT statement.
type Select struct {
	Distinct  bool
	JSON      bool
	TableName FQName
	Columns   []SelectElement
	Where     []RelationElement
	Order     *OrderClause
	Limit     *int32
	// Filtering adds ALLOW FILTERING.
	Filtering bool
}

func (Select) isStatement() {}

func (s Select) String() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if s.Distinct {
		b.WriteString("DISTINCT ")
	}
	if s.JSON {
		b.WriteString("JSON ")
	}
	parts := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		parts[i] = c.String()
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(" FROM ")
	b.WriteString(s.TableName.String())
	if len(s.Where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(joinRelations(s.Where))
	}
	if s.Order != nil {
		b.WriteString(" ORDER BY ")
		b.WriteString(s.Order.String())
	}
	if s.Limit != nil {
		b.WriteString(fmt.Sprintf(" LIMIT %d", *s.Limit))
	}
	if s.Filtering {
		b.WriteString(" ALLOW FILTERING")
	}
	return b.String()
}

func (Select) ShortName() string { return "SELECT" }

func (s Select) GetKeyspace(def string) string { return s.TableName.ExtractKeyspace(def) }

func (s Select) GetTableName() *FQName { return &s.TableName }

func (Select) Type() types.StatementType { return types.StatementSelect }

// ColumnNames returns the selected column names, without aliases. Functions
// and * are not included.
func (s Select) ColumnNames() []string {
	var result []string
	for _, e := range s.Columns {
		if e.Kind == SelectColumn {
			result = append(result, e.Name)
		}
	}
	return result
}

// Aliased returns the aliased column names; unaliased columns contribute
// their base name. Functions and * are not included.
func (s Select) Aliased() []string {
	var result []string
	for _, e := range s.Columns {
		if e.Kind != SelectColumn {
			continue
		}
		if e.Alias != "" {
			result = append(result, e.Alias)
		} else {
			result = append(result, e.Name)
		}
	}
	return result
}

// SelectElementKind discriminates the selectable element variants.
type SelectElementKind int

const (
	// SelectStar is `*`.
	SelectStar SelectElementKind = iota
	// SelectColumn is a column, optionally aliased.
	SelectColumn
	// SelectFunction is a function call, optionally aliased.
	SelectFunction
)

// SelectElement is one element of the select list.
type SelectElement struct {
	Kind  SelectElementKind
	Name  string
	Alias string
}

func (e SelectElement) String() string {
	if e.Kind == SelectStar {
		return "*"
	}
	if e.Alias != "" {
		return e.Name + " AS " + e.Alias
	}
	return e.Name
}
