// Package cql defines the typed model for CQL statements and their canonical
// text rendering. Every type renders itself through String; rendering a parsed
// statement and parsing it again yields an equal statement.
package cql

import "strings"

// Identifier is a quoted or unquoted CQL identifier.
//
// Unquoted identifiers are case insensitive and render verbatim. Quoted
// identifiers are case sensitive and render with surrounding double quotes,
// doubling any quote inside (`foo"bar` renders as `"foo""bar"`). A quoted
// identifier in all lower case is equivalent to the unquoted spelling in any
// case.
type Identifier struct {
	Text   string
	Quoted bool
}

// ParseIdentifier interprets text as written in a statement. A leading double
// quote marks a quoted identifier: the surrounding quotes are stripped and
// doubled inner quotes collapsed. Anything else is unquoted.
func ParseIdentifier(text string) Identifier {
	if strings.HasPrefix(text, `"`) && len(text) >= 2 {
		inner := text[1 : len(text)-1]
		return Identifier{Text: strings.ReplaceAll(inner, `""`, `"`), Quoted: true}
	}
	return Identifier{Text: text}
}

// UnquotedIdentifier returns an unquoted identifier holding text as is.
func UnquotedIdentifier(text string) Identifier {
	return Identifier{Text: text}
}

func (i Identifier) String() string {
	if i.Quoted {
		return `"` + strings.ReplaceAll(i.Text, `"`, `""`) + `"`
	}
	return i.Text
}

// Equal reports whether two identifiers name the same object.
func (i Identifier) Equal(o Identifier) bool {
	switch {
	case i.Quoted && o.Quoted:
		return i.Text == o.Text
	case !i.Quoted && !o.Quoted:
		return strings.EqualFold(i.Text, o.Text)
	case i.Quoted:
		return i.Text == strings.ToLower(o.Text)
	default:
		return strings.ToLower(i.Text) == o.Text
	}
}

// Key returns a canonical form usable as a map key. Equal identifiers always
// produce the same key.
func (i Identifier) Key() string {
	if i.Quoted {
		return i.Text
	}
	return strings.ToLower(i.Text)
}

// FQName is an optionally keyspace-qualified name.
type FQName struct {
	Keyspace *Identifier
	Name     Identifier
}

// ParseFQName splits text at the first dot into keyspace and name. Without a
// dot the whole text is the name.
func ParseFQName(text string) FQName {
	if idx := strings.IndexByte(text, '.'); idx >= 0 {
		return NewFQName(text[:idx], text[idx+1:])
	}
	return SimpleFQName(text)
}

// SimpleFQName returns an unqualified name.
func SimpleFQName(name string) FQName {
	return FQName{Name: ParseIdentifier(name)}
}

// NewFQName returns a keyspace-qualified name.
func NewFQName(keyspace, name string) FQName {
	ks := ParseIdentifier(keyspace)
	return FQName{Keyspace: &ks, Name: ParseIdentifier(name)}
}

func (f FQName) String() string {
	if f.Keyspace != nil {
		return f.Keyspace.String() + "." + f.Name.String()
	}
	return f.Name.String()
}

// ExtractKeyspace returns the keyspace portion, or def when unqualified.
func (f FQName) ExtractKeyspace(def string) string {
	if f.Keyspace != nil {
		return f.Keyspace.String()
	}
	return def
}

// Equal reports whether two names refer to the same object.
func (f FQName) Equal(o FQName) bool {
	if (f.Keyspace == nil) != (o.Keyspace == nil) {
		return false
	}
	if f.Keyspace != nil && !f.Keyspace.Equal(*o.Keyspace) {
		return false
	}
	return f.Name.Equal(o.Name)
}
