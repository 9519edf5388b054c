package cql

import (
	"fmt"
	"strings"
)

// RelationOperator is the comparison used in WHERE and IF clauses.
type RelationOperator int

const (
	OperatorLessThan RelationOperator = iota
	OperatorLessThanOrEqual
	OperatorEqual
	OperatorNotEqual
	OperatorGreaterThanOrEqual
	OperatorGreaterThan
	OperatorIn
	OperatorContains
	OperatorContainsKey
	// OperatorIsNot only appears in materialized view definitions, where every
	// primary key column must be declared IS NOT NULL.
	OperatorIsNot
)

func (o RelationOperator) String() string {
	switch o {
	case OperatorLessThan:
		return "<"
	case OperatorLessThanOrEqual:
		return "<="
	case OperatorEqual:
		return "="
	case OperatorNotEqual:
		return "<>"
	case OperatorGreaterThanOrEqual:
		return ">="
	case OperatorGreaterThan:
		return ">"
	case OperatorIn:
		return "IN"
	case OperatorContains:
		return "CONTAINS"
	case OperatorContainsKey:
		return "CONTAINS KEY"
	case OperatorIsNot:
		return "IS NOT"
	}
	return ""
}

// RelationElement is a single comparison. Value holds one operand for scalar
// comparisons and several for IN lists and tuple comparisons.
type RelationElement struct {
	// Obj is the column, function or column tuple on the left side.
	Obj  Operand
	Oper RelationOperator
	// Value is the right side: value, function, tuple or tuple list.
	Value []Operand
}

func (r RelationElement) String() string {
	parts := make([]string, len(r.Value))
	for i, v := range r.Value {
		parts[i] = v.String()
	}
	joined := strings.Join(parts, ", ")
	if r.Oper == OperatorIn {
		return fmt.Sprintf("%s IN (%s)", r.Obj, joined)
	}
	return fmt.Sprintf("%s %s %s", r.Obj, r.Oper, joined)
}

func joinRelations(relations []RelationElement) string {
	parts := make([]string, len(relations))
	for i, r := range relations {
		parts[i] = r.String()
	}
	return strings.Join(parts, " AND ")
}

// ColumnRelationMap groups relation elements by the column on their left
// side, keyed by Identifier.Key. Elements whose left side is not a column are
// skipped.
func ColumnRelationMap(where []RelationElement) map[string][]RelationElement {
	result := make(map[string][]RelationElement)
	for _, rel := range where {
		if rel.Obj.Kind == OperandColumn {
			key := rel.Obj.Column.Key()
			result[key] = append(result[key], rel)
		}
	}
	return result
}

// ColumnList returns the distinct columns appearing on the left side of the
// where clause, in first-seen order.
func ColumnList(where []RelationElement) []Identifier {
	seen := make(map[string]bool)
	var result []Identifier
	for _, rel := range where {
		if rel.Obj.Kind != OperandColumn {
			continue
		}
		key := rel.Obj.Column.Key()
		if !seen[key] {
			seen[key] = true
			result = append(result, rel.Obj.Column)
		}
	}
	return result
}

// TtlTimestamp is the USING TTL / USING TIMESTAMP option on writes.
type TtlTimestamp struct {
	TTL       *uint64
	Timestamp *uint64
}

// String renders with a leading space so it can be appended directly after
// the table name.
func (t TtlTimestamp) String() string {
	switch {
	case t.TTL != nil && t.Timestamp != nil:
		return fmt.Sprintf(" USING TTL %d AND TIMESTAMP %d", *t.TTL, *t.Timestamp)
	case t.TTL != nil:
		return fmt.Sprintf(" USING TTL %d", *t.TTL)
	case t.Timestamp != nil:
		return fmt.Sprintf(" USING TIMESTAMP %d", *t.Timestamp)
	}
	return ""
}

// OrderClause is a single ORDER BY column. Direction always renders
// explicitly: ASC is not implied in the output even when it was in the input.
type OrderClause struct {
	Name Identifier
	Desc bool
}

func (o OrderClause) String() string {
	if o.Desc {
		return o.Name.String() + " DESC"
	}
	return o.Name.String() + " ASC"
}

// OptionValue is a WITH option value: either a literal or a map.
type OptionValue struct {
	Literal string
	Map     []MapEntry
	IsMap   bool
}

func (o OptionValue) String() string {
	if !o.IsMap {
		return o.Literal
	}
	parts := make([]string, len(o.Map))
	for i, p := range o.Map {
		parts[i] = p.Key + ":" + p.Value
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// WithItemKind discriminates the WITH clause item variants.
type WithItemKind int

const (
	// WithOption is `key = value`.
	WithOption WithItemKind = iota
	// WithClusterOrder is `CLUSTERING ORDER BY (col ASC|DESC)`.
	WithClusterOrder
	// WithID is `ID = 'id'`.
	WithID
	// WithCompactStorage is `COMPACT STORAGE`.
	WithCompactStorage
)

// WithItem is one element of a WITH clause.
type WithItem struct {
	Kind  WithItemKind
	Key   string
	Value OptionValue
	Order OrderClause
	ID    string
}

func (w WithItem) String() string {
	switch w.Kind {
	case WithOption:
		return w.Key + " = " + w.Value.String()
	case WithClusterOrder:
		return "CLUSTERING ORDER BY (" + w.Order.String() + ")"
	case WithID:
		return "ID = " + w.ID
	case WithCompactStorage:
		return "COMPACT STORAGE"
	}
	return ""
}

func joinWithItems(items []WithItem) string {
	parts := make([]string, len(items))
	for i, w := range items {
		parts[i] = w.String()
	}
	return strings.Join(parts, " AND ")
}

// PrimaryKey is the normalized primary key definition. The single column,
// compound and composite surface forms all reduce to a partition list and a
// clustering list. There must be at least one partition column.
type PrimaryKey struct {
	Partition  []Identifier
	Clustering []Identifier
}

func (p PrimaryKey) String() string {
	if len(p.Partition) == 0 && len(p.Clustering) == 0 {
		return ""
	}
	if len(p.Partition) == 1 {
		if len(p.Clustering) == 0 {
			return "PRIMARY KEY (" + p.Partition[0].String() + ")"
		}
		return "PRIMARY KEY (" + p.Partition[0].String() + ", " + joinIdentifiers(p.Clustering) + ")"
	}
	return "PRIMARY KEY ((" + joinIdentifiers(p.Partition) + "), " + joinIdentifiers(p.Clustering) + ")"
}

func joinIdentifiers(ids []Identifier) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}

// PrivilegeType is the set of grantable privileges.
type PrivilegeType int

const (
	PrivilegeAll PrivilegeType = iota
	PrivilegeAlter
	PrivilegeAuthorize
	PrivilegeDescribe
	PrivilegeExecute
	PrivilegeCreate
	PrivilegeDrop
	PrivilegeModify
	PrivilegeSelect
)

// String renders ALL as "ALL PERMISSIONS", its canonical long form.
func (p PrivilegeType) String() string {
	switch p {
	case PrivilegeAll:
		return "ALL PERMISSIONS"
	case PrivilegeAlter:
		return "ALTER"
	case PrivilegeAuthorize:
		return "AUTHORIZE"
	case PrivilegeDescribe:
		return "DESCRIBE"
	case PrivilegeExecute:
		return "EXECUTE"
	case PrivilegeCreate:
		return "CREATE"
	case PrivilegeDrop:
		return "DROP"
	case PrivilegeModify:
		return "MODIFY"
	case PrivilegeSelect:
		return "SELECT"
	}
	return ""
}

// ResourceKind discriminates the Resource variants.
type ResourceKind int

const (
	ResourceAllFunctions ResourceKind = iota
	ResourceAllKeyspaces
	ResourceAllRoles
	ResourceFunction
	ResourceKeyspace
	ResourceRole
	ResourceTable
)

// Resource is the object a privilege applies to.
type Resource struct {
	Kind ResourceKind
	// Name is the function or table name.
	Name FQName
	// Text is the keyspace qualifier for AllFunctions, or the keyspace or
	// role name.
	Text string
}

func (r Resource) String() string {
	switch r.Kind {
	case ResourceAllFunctions:
		if r.Text != "" {
			return "ALL FUNCTIONS IN KEYSPACE " + r.Text
		}
		return "ALL FUNCTIONS"
	case ResourceAllKeyspaces:
		return "ALL KEYSPACES"
	case ResourceAllRoles:
		return "ALL ROLES"
	case ResourceFunction:
		return "FUNCTION " + r.Name.String()
	case ResourceKeyspace:
		return "KEYSPACE " + r.Text
	case ResourceRole:
		return "ROLE " + r.Text
	case ResourceTable:
		return "TABLE " + r.Name.String()
	}
	return ""
}

// Privilege is the data for GRANT, REVOKE and LIST PERMISSIONS statements.
// Resource and Role are required for GRANT and REVOKE and optional for LIST.
type Privilege struct {
	Privilege PrivilegeType
	Resource  *Resource
	Role      string
}
