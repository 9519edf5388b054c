package format

import (
	"strings"
	"testing"
)

func TestCompactString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"select",
			"select  *\nfrom users\nwhere id = 1;",
			"SELECT * FROM users WHERE id = 1;",
		},
		{
			"insert",
			"insert into t (a, b) values (1, 'x');",
			"INSERT INTO t (a, b) VALUES (1, 'x');",
		},
		{
			"multiple statements",
			"USE ks; SELECT * FROM t;",
			"USE ks;\nSELECT * FROM t;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompactString(tt.input)
			if err != nil {
				t.Fatalf("CompactString: %v", err)
			}
			if got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestCompactStringInvalid(t *testing.T) {
	if _, err := CompactString("SELECT * FORM users;"); err == nil {
		t.Error("expected an error for invalid input")
	}
}

func TestPrettySelect(t *testing.T) {
	got, err := PrettyString("SELECT a, b FROM ks.t WHERE id = 1 AND ts > 5 ORDER BY ts DESC LIMIT 10;")
	if err != nil {
		t.Fatalf("PrettyString: %v", err)
	}
	want := strings.Join([]string{
		"SELECT a, b",
		"FROM ks.t",
		"WHERE id = 1",
		"  AND ts > 5",
		"ORDER BY ts DESC",
		"LIMIT 10;",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyCreateTable(t *testing.T) {
	got, err := PrettyString("CREATE TABLE t (a int, b text, PRIMARY KEY (a, b)) WITH comment = 'x';")
	if err != nil {
		t.Fatalf("PrettyString: %v", err)
	}
	want := strings.Join([]string{
		"CREATE TABLE t (",
		"    a INT,",
		"    b TEXT,",
		"    PRIMARY KEY (a, b)",
		") WITH comment = 'x';",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyKeyspace(t *testing.T) {
	got, err := PrettyString("CREATE KEYSPACE ks WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1} AND durable_writes = true;")
	if err != nil {
		t.Fatalf("PrettyString: %v", err)
	}
	want := strings.Join([]string{
		"CREATE KEYSPACE ks",
		"WITH REPLICATION = {'class':'SimpleStrategy', 'replication_factor':1}",
		"  AND DURABLE_WRITES = TRUE;",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyFallsBackToCanonical(t *testing.T) {
	got, err := PrettyString("DROP TABLE IF EXISTS ks.t;")
	if err != nil {
		t.Fatalf("PrettyString: %v", err)
	}
	if got != "DROP TABLE IF EXISTS ks.t;" {
		t.Errorf("got %q", got)
	}
}

func TestPrettyStatementSeparator(t *testing.T) {
	got, err := PrettyString("USE a; USE b;")
	if err != nil {
		t.Fatalf("PrettyString: %v", err)
	}
	if got != "USE a;\n\nUSE b;" {
		t.Errorf("got %q", got)
	}
}

func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.IndentString = "\t"
	got, err := String("CREATE TYPE addr (street text);", opts)
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if !strings.Contains(got, "\n\tstreet TEXT") {
		t.Errorf("custom indent not applied:\n%s", got)
	}

	opts = CompactOptions()
	opts.TrailingSemicolon = false
	got, err = String("USE ks;", opts)
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if got != "USE ks" {
		t.Errorf("got %q", got)
	}
}

func TestFormatNil(t *testing.T) {
	if got := Format(nil, DefaultOptions()); got != "" {
		t.Errorf("Format(nil) = %q", got)
	}
}
