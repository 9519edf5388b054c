package lint

import (
	"strings"
	"testing"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErrors bool
	}{
		{"valid query", "SELECT * FROM users;", false},
		{"typo in keyword", "SELECT * FORM users;", true},
		{"not cql", "THIS IS NOT CQL;", true},
		{"valid ddl", "CREATE TABLE t (id int PRIMARY KEY);", false},
		{"empty input", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := Check(tt.input)
			if errors.HasErrors() != tt.wantErrors {
				t.Errorf("HasErrors() = %v, want %v", errors.HasErrors(), tt.wantErrors)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("SELECT * FROM users;") {
		t.Error("valid query should return true")
	}
	if IsValid("INVALID QUERY;") {
		t.Error("invalid query should return false")
	}
}

func TestAnalyze(t *testing.T) {
	result := Analyze("SELECT * FROM users WHERE id = 1;")
	if !result.IsValid {
		t.Error("expected valid result")
	}
	if result.Type != types.StatementSelect {
		t.Errorf("Type = %v, want SELECT", result.Type)
	}
	if result.Errors.HasErrors() {
		t.Error("expected no errors")
	}
}

func TestAnalyzeInvalid(t *testing.T) {
	result := Analyze("SELECT * FORM users;")
	if result.IsValid {
		t.Error("expected invalid result")
	}
	if !result.Errors.HasErrors() {
		t.Fatal("expected errors")
	}
	if result.Type != types.StatementUnknown {
		t.Errorf("Type = %v, want UNKNOWN", result.Type)
	}
	if result.Errors.First().Line != 1 {
		t.Errorf("Line = %d, want 1", result.Errors.First().Line)
	}
}

func TestAnalyzeMultiple(t *testing.T) {
	input := `
		SELECT * FROM users;
		INSERT INTO users (id) VALUES (1);
		UPDATE users SET name = 'test' WHERE id = 1;
	`
	results := AnalyzeMultiple(input)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	expectedTypes := []types.StatementType{
		types.StatementSelect,
		types.StatementInsert,
		types.StatementUpdate,
	}
	for i, r := range results {
		if !r.IsValid {
			t.Errorf("result[%d] is not valid", i)
		}
		if r.Type != expectedTypes[i] {
			t.Errorf("result[%d].Type = %v, want %v", i, r.Type, expectedTypes[i])
		}
		if strings.HasPrefix(r.Input, "\n") || strings.HasSuffix(r.Input, "\t") {
			t.Errorf("result[%d].Input not trimmed: %q", i, r.Input)
		}
	}
}

func TestAnalyzeMultipleErrorAttribution(t *testing.T) {
	input := "SELECT * FROM users;\nFLARGLE;\nUSE ks;"
	results := AnalyzeMultiple(input)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if !results[0].IsValid || !results[2].IsValid {
		t.Error("surrounding statements should be valid")
	}
	if results[1].IsValid {
		t.Error("middle statement should be invalid")
	}
	if !results[1].Errors.HasErrors() {
		t.Error("errors should attach to the failing statement")
	}
	if results[0].Errors.HasErrors() || results[2].Errors.HasErrors() {
		t.Error("errors leaked onto valid statements")
	}
	if results[1].Input != "FLARGLE" {
		t.Errorf("Input = %q, want FLARGLE", results[1].Input)
	}
}
