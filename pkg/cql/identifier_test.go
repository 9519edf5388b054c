package cql

import "testing"

func TestIdentifierString(t *testing.T) {
	tests := []struct {
		name string
		id   Identifier
		want string
	}{
		{"unquoted", UnquotedIdentifier("users"), "users"},
		{"unquoted keeps case", UnquotedIdentifier("Users"), "Users"},
		{"quoted", Identifier{Text: "My Table", Quoted: true}, `"My Table"`},
		{"quoted doubles inner quotes", Identifier{Text: `a"b`, Quoted: true}, `"a""b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseIdentifier(t *testing.T) {
	id := ParseIdentifier(`"My ""Quoted"" Name"`)
	if !id.Quoted || id.Text != `My "Quoted" Name` {
		t.Errorf("ParseIdentifier = %+v", id)
	}

	id = ParseIdentifier("plain")
	if id.Quoted || id.Text != "plain" {
		t.Errorf("ParseIdentifier = %+v", id)
	}
}

func TestIdentifierEqual(t *testing.T) {
	tests := []struct {
		a, b Identifier
		want bool
	}{
		{UnquotedIdentifier("users"), UnquotedIdentifier("USERS"), true},
		{UnquotedIdentifier("users"), UnquotedIdentifier("other"), false},
		{Identifier{Text: "users", Quoted: true}, Identifier{Text: "users", Quoted: true}, true},
		{Identifier{Text: "Users", Quoted: true}, Identifier{Text: "users", Quoted: true}, false},
		// A quoted lower-case identifier equals the unquoted spelling.
		{Identifier{Text: "users", Quoted: true}, UnquotedIdentifier("USERS"), true},
		{Identifier{Text: "Users", Quoted: true}, UnquotedIdentifier("users"), false},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIdentifierKey(t *testing.T) {
	a := UnquotedIdentifier("CamelCase")
	b := UnquotedIdentifier("camelcase")
	if a.Key() != b.Key() {
		t.Error("equal identifiers must produce the same key")
	}
	q := Identifier{Text: "CamelCase", Quoted: true}
	if q.Key() == a.Key() {
		t.Error("quoted mixed-case identifier must keep its case in the key")
	}
}

func TestFQName(t *testing.T) {
	fq := ParseFQName("ks.table")
	if fq.Keyspace == nil || fq.Keyspace.Text != "ks" || fq.Name.Text != "table" {
		t.Errorf("ParseFQName = %+v", fq)
	}
	if fq.String() != "ks.table" {
		t.Errorf("String() = %q", fq.String())
	}

	simple := ParseFQName("table")
	if simple.Keyspace != nil {
		t.Error("unqualified name should have nil keyspace")
	}
	if got := simple.ExtractKeyspace("def"); got != "def" {
		t.Errorf("ExtractKeyspace = %q, want def", got)
	}
	if got := fq.ExtractKeyspace("def"); got != "ks" {
		t.Errorf("ExtractKeyspace = %q, want ks", got)
	}
}

func TestUnescapeConst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"'hello'", "hello"},
		{"'it''s'", "it's"},
		{"$$raw body$$", "raw body"},
		{"42", "42"},
	}
	for _, tt := range tests {
		if got := UnescapeConst(tt.input); got != tt.want {
			t.Errorf("UnescapeConst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEscapeConst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"it's", "$$it's$$"},
		{"both ' and $$", "'both '' and $$'"},
	}
	for _, tt := range tests {
		if got := EscapeConst(tt.input).Text; got != tt.want {
			t.Errorf("EscapeConst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
