package cql

import "strings"

// OperandKind discriminates the Operand variants.
type OperandKind int

const (
	// OperandConst is a literal constant: number, string, boolean, uuid or
	// hex blob, kept exactly as written.
	OperandConst OperandKind = iota
	// OperandMap renders as {k:v, k:v}.
	OperandMap
	// OperandSet renders as {a, b}.
	OperandSet
	// OperandList renders as [a, b].
	OperandList
	// OperandTuple renders as (a, b).
	OperandTuple
	// OperandColumn is a column reference.
	OperandColumn
	// OperandFunc is a function call kept as raw text, e.g. now().
	OperandFunc
	// OperandParam is a bind marker: ? or :name.
	OperandParam
	// OperandNull is the NULL value.
	OperandNull
)

// MapEntry is a single key/value pair in a map-shaped value.
type MapEntry struct {
	Key   string
	Value string
}

// Operand is a value that can appear on either side of a relation or in an
// assignment.
type Operand struct {
	Kind   OperandKind
	Text   string    // Const, Func, Param
	Column Identifier
	Pairs  []MapEntry // Map
	Values []string   // Set, List
	Tuple  []Operand  // Tuple
}

func ConstOperand(text string) Operand    { return Operand{Kind: OperandConst, Text: text} }
func FuncOperand(text string) Operand     { return Operand{Kind: OperandFunc, Text: text} }
func ParamOperand(text string) Operand    { return Operand{Kind: OperandParam, Text: text} }
func ColumnOperand(id Identifier) Operand { return Operand{Kind: OperandColumn, Column: id} }
func NullOperand() Operand                { return Operand{Kind: OperandNull} }
func MapOperand(pairs []MapEntry) Operand { return Operand{Kind: OperandMap, Pairs: pairs} }
func SetOperand(values []string) Operand  { return Operand{Kind: OperandSet, Values: values} }
func ListOperand(values []string) Operand { return Operand{Kind: OperandList, Values: values} }
func TupleOperand(values []Operand) Operand {
	return Operand{Kind: OperandTuple, Tuple: values}
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandConst, OperandFunc, OperandParam:
		return o.Text
	case OperandColumn:
		return o.Column.String()
	case OperandMap:
		parts := make([]string, len(o.Pairs))
		for i, p := range o.Pairs {
			parts[i] = p.Key + ":" + p.Value
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case OperandSet:
		return "{" + strings.Join(o.Values, ", ") + "}"
	case OperandList:
		return "[" + strings.Join(o.Values, ", ") + "]"
	case OperandTuple:
		parts := make([]string, len(o.Tuple))
		for i, v := range o.Tuple {
			parts[i] = v.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case OperandNull:
		return "NULL"
	}
	return ""
}

// UnescapeConst removes the delimiters from a quoted CQL string and collapses
// doubled single quotes. Valid delimiters are ' and $$. Any other value is
// returned unchanged.
func UnescapeConst(value string) string {
	if strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") && len(value) >= 2 {
		return strings.ReplaceAll(value[1:len(value)-1], "''", "'")
	}
	if strings.HasPrefix(value, "$$") && strings.HasSuffix(value, "$$") && len(value) >= 4 {
		return value[2 : len(value)-2]
	}
	return value
}

// EscapeConst builds a constant operand from raw text. Text containing a
// single quote is wrapped in $$ delimiters; if it also contains $$ it is
// single-quoted with inner quotes doubled. Plain text is kept as is.
func EscapeConst(text string) Operand {
	if strings.Contains(text, "'") {
		if strings.Contains(text, "$$") {
			return ConstOperand("'" + strings.ReplaceAll(text, "'", "''") + "'")
		}
		return ConstOperand("$$" + text + "$$")
	}
	return ConstOperand(text)
}
