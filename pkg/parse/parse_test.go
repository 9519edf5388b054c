package parse

import (
	"strings"
	"testing"

	"github.com/tentacle-scylla/cqlast/pkg/cql"
	"github.com/tentacle-scylla/cqlast/pkg/types"
)

func TestParseTypes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantType  types.StatementType
		wantValid bool
	}{
		{"simple select", "SELECT * FROM users;", types.StatementSelect, true},
		{"select with where", "SELECT id, name FROM users WHERE id = 1;", types.StatementSelect, true},
		{"insert", "INSERT INTO users (id, name) VALUES (1, 'test');", types.StatementInsert, true},
		{"update", "UPDATE users SET name = 'new' WHERE id = 1;", types.StatementUpdate, true},
		{"delete", "DELETE FROM users WHERE id = 1;", types.StatementDelete, true},
		{"create table", "CREATE TABLE users (id int PRIMARY KEY, name text);", types.StatementCreateTable, true},
		{"create keyspace", "CREATE KEYSPACE test WITH REPLICATION = {'class': 'SimpleStrategy', 'replication_factor': 1};", types.StatementCreateKeyspace, true},
		{"use", "USE ks;", types.StatementUse, true},
		{"truncate", "TRUNCATE users;", types.StatementTruncate, true},
		{"grant", "GRANT SELECT ON TABLE users TO admin;", types.StatementGrant, true},
		{"invalid - typo in FROM", "SELECT * FORM users;", types.StatementUnknown, false},
		{"without semicolon - still valid", "SELECT * FROM users", types.StatementSelect, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ast := Parse(tt.input)

			if ast.HasErrors() == tt.wantValid {
				t.Errorf("HasErrors() = %v, want valid=%v", ast.HasErrors(), tt.wantValid)
				for _, err := range ast.Errors {
					t.Logf("  Error: %s", err.Error())
				}
			}
			if len(ast.Statements) != 1 {
				t.Fatalf("got %d statements, want 1", len(ast.Statements))
			}
			if got := ast.Statements[0].Statement.Type(); got != tt.wantType {
				t.Errorf("Type = %v, want %v", got, tt.wantType)
			}
		})
	}
}

// canonicalTests map raw input to the canonical rendering of the parsed
// statement. The canonical form must itself parse back to the same statement;
// TestRoundTrip below checks that for every entry.
var canonicalTests = []struct {
	name  string
	input string
	want  string
}{
	// SELECT
	{"select star", "select * from users", "SELECT * FROM users"},
	{"select distinct", "SELECT DISTINCT a, b FROM ks.t WHERE id = 1 LIMIT 5", "SELECT DISTINCT a, b FROM ks.t WHERE id = 1 LIMIT 5"},
	{"select json", "SELECT JSON * FROM t", "SELECT JSON * FROM t"},
	{"select function alias", "SELECT count(*) AS cnt FROM t", "SELECT count(*) AS cnt FROM t"},
	{"select in", "SELECT a FROM t WHERE id IN (1, 2, 3)", "SELECT a FROM t WHERE id IN (1, 2, 3)"},
	{"select contains", "SELECT a FROM t WHERE tags CONTAINS 'x'", "SELECT a FROM t WHERE tags CONTAINS 'x'"},
	{"select contains key", "SELECT a FROM t WHERE m CONTAINS KEY 'x'", "SELECT a FROM t WHERE m CONTAINS KEY 'x'"},
	{"select order implicit asc", "SELECT a FROM t ORDER BY ts", "SELECT a FROM t ORDER BY ts ASC"},
	{"select order desc filtering", "SELECT a FROM t WHERE b = 2 ORDER BY ts DESC ALLOW FILTERING", "SELECT a FROM t WHERE b = 2 ORDER BY ts DESC ALLOW FILTERING"},
	{"select token", "SELECT a FROM t WHERE token(pk) > token(5)", "SELECT a FROM t WHERE token(pk) > token(5)"},
	{"select tuple relation", "SELECT a FROM t WHERE (a, b) > (1, 2)", "SELECT a FROM t WHERE (a, b) > (1, 2)"},
	{"select not equal", "SELECT a FROM t WHERE b != 3", "SELECT a FROM t WHERE b <> 3"},

	// INSERT
	{"insert", "INSERT INTO t (a, b) VALUES (1, 'x')", "INSERT INTO t (a, b) VALUES (1, 'x')"},
	{"insert lowercase options", "insert into ks.t (a) values (?) if not exists using ttl 60", "INSERT INTO ks.t (a) VALUES (?) IF NOT EXISTS USING TTL 60"},
	{"insert json", `INSERT INTO t JSON '{"a": 1}'`, `INSERT INTO t JSON '{"a": 1}'`},
	{"insert collections", "INSERT INTO t (a, b, c, d) VALUES ({'x':1}, {1, 2}, [1, 2], (1, 'y'))", "INSERT INTO t (a, b, c, d) VALUES ({'x':1}, {1, 2}, [1, 2], (1, 'y'))"},
	{"insert named markers", "INSERT INTO t (a, b) VALUES (:a, :b)", "INSERT INTO t (a, b) VALUES (:a, :b)"},

	// UPDATE
	{"update", "UPDATE users SET name = 'new' WHERE id = 1", "UPDATE users SET name = 'new' WHERE id = 1"},
	{"update counter", "UPDATE t SET a = 1, b = b + 1 WHERE id = 1 IF EXISTS", "UPDATE t SET a = 1, b = b + 1 WHERE id = 1 IF EXISTS"},
	{"update using ttl", "UPDATE t USING TTL 3600 SET a = 1 WHERE id = 1 IF a > 0", "UPDATE t USING TTL 3600 SET a = 1 WHERE id = 1 IF a > 0"},
	{"update map entry", "UPDATE t SET m['k'] = 'v' WHERE id = 1", "UPDATE t SET m['k'] = 'v' WHERE id = 1"},

	// DELETE
	{"delete row", "DELETE FROM t WHERE id = 1", "DELETE FROM t WHERE id = 1"},
	{"delete columns", "DELETE a, b[0] FROM t USING TIMESTAMP 123 WHERE id = 1 IF EXISTS", "DELETE a, b[0] FROM t USING TIMESTAMP 123 WHERE id = 1 IF EXISTS"},

	// BATCH
	{"batch delete", "BEGIN UNLOGGED BATCH USING TIMESTAMP 100 DELETE FROM t WHERE id = 1", "BEGIN UNLOGGED BATCH USING TIMESTAMP 100 DELETE FROM t WHERE id = 1"},
	{"apply batch", "APPLY BATCH", "APPLY BATCH"},

	// USE / TRUNCATE
	{"use", "use ks", "USE ks"},
	{"truncate short", "TRUNCATE t", "TRUNCATE TABLE t"},
	{"truncate qualified", "TRUNCATE TABLE ks.t", "TRUNCATE TABLE ks.t"},

	// KEYSPACE
	{"create keyspace", "CREATE KEYSPACE IF NOT EXISTS test WITH REPLICATION = {'class': 'SimpleStrategy', 'replication_factor': 1} AND DURABLE_WRITES = true",
		"CREATE KEYSPACE IF NOT EXISTS test WITH REPLICATION = {'class':'SimpleStrategy', 'replication_factor':1} AND DURABLE_WRITES = TRUE"},
	{"alter keyspace", "ALTER KEYSPACE test WITH REPLICATION = {'class':'NetworkTopologyStrategy', 'dc1':3}",
		"ALTER KEYSPACE test WITH REPLICATION = {'class':'NetworkTopologyStrategy', 'dc1':3}"},

	// TABLE
	{"create table inline key", "create table big_data_ks.big_data_table (uuid_key uuid PRIMARY KEY, data text)",
		"CREATE TABLE big_data_ks.big_data_table (uuid_key UUID PRIMARY KEY, data TEXT)"},
	{"create table compound key", "CREATE TABLE t (a int, b text, PRIMARY KEY ((a), b))",
		"CREATE TABLE t (a INT, b TEXT, PRIMARY KEY (a, b))"},
	{"create table composite key", "CREATE TABLE t (a int, b int, c int, PRIMARY KEY ((a, b), c))",
		"CREATE TABLE t (a INT, b INT, c INT, PRIMARY KEY ((a, b), c))"},
	{"create table options", "CREATE TABLE t (a int, b int, PRIMARY KEY (a, b)) WITH comment = 'hi' AND CLUSTERING ORDER BY (b DESC) AND COMPACT STORAGE",
		"CREATE TABLE t (a INT, b INT, PRIMARY KEY (a, b)) WITH comment = 'hi' AND CLUSTERING ORDER BY (b DESC) AND COMPACT STORAGE"},
	{"create table option map", "CREATE TABLE t (a int PRIMARY KEY) WITH compaction = {'class':'LeveledCompactionStrategy'}",
		"CREATE TABLE t (a INT PRIMARY KEY) WITH compaction = {'class':'LeveledCompactionStrategy'}"},
	{"create table collection types", "CREATE TABLE t (a uuid PRIMARY KEY, b map<text, int>, c frozen<list<text>>)",
		"CREATE TABLE t (a UUID PRIMARY KEY, b MAP<TEXT, INT>, c FROZEN<LIST<TEXT>>)"},
	{"create table nested collection types", "CREATE TABLE t (a int PRIMARY KEY, b map<text, frozen<map<int, udt_val>>>)",
		"CREATE TABLE t (a INT PRIMARY KEY, b MAP<TEXT, FROZEN<MAP<INT, udt_val>>>)"},
	{"alter table add", "ALTER TABLE ks.t ADD a int, b text", "ALTER TABLE ks.t ADD a INT, b TEXT"},
	{"alter table drop", "ALTER TABLE t DROP a, b", "ALTER TABLE t DROP a, b"},
	{"alter table drop compact", "ALTER TABLE t DROP COMPACT STORAGE", "ALTER TABLE t DROP COMPACT STORAGE"},
	{"alter table rename", "ALTER TABLE t RENAME a TO b", "ALTER TABLE t RENAME a TO b"},
	{"alter table with", "ALTER TABLE t WITH gc_grace_seconds = 86400", "ALTER TABLE t WITH gc_grace_seconds = 86400"},

	// INDEX
	{"create index", "CREATE INDEX idx ON t (col)", "CREATE INDEX idx ON t( col )"},
	{"create index keys", "CREATE INDEX ON t (KEYS(m))", "CREATE INDEX ON t( KEYS( m ) )"},
	{"create index full", "CREATE INDEX IF NOT EXISTS ON ks.t (FULL(f))", "CREATE INDEX IF NOT EXISTS ON ks.t( FULL( f ) )"},

	// MATERIALIZED VIEW
	{"create view", "CREATE MATERIALIZED VIEW mv AS SELECT a, b FROM t WHERE a IS NOT NULL AND b IS NOT NULL PRIMARY KEY (a, b)",
		"CREATE MATERIALIZED VIEW mv AS SELECT a, b FROM t WHERE a IS NOT NULL AND b IS NOT NULL PRIMARY KEY (a, b)"},
	{"alter view", "ALTER MATERIALIZED VIEW mv WITH comment = 'x'", "ALTER MATERIALIZED VIEW mv WITH comment = 'x'"},

	// TYPE
	{"create type", "CREATE TYPE ks.address (street text, city text)", "CREATE TYPE ks.address (street TEXT, city TEXT)"},
	{"alter type alter", "ALTER TYPE address ALTER street TYPE varchar", "ALTER TYPE address ALTER street TYPE VARCHAR"},
	{"alter type add", "ALTER TYPE address ADD zip int", "ALTER TYPE address ADD zip INT"},
	{"alter type rename", "ALTER TYPE address RENAME street TO st AND city TO c", "ALTER TYPE address RENAME street TO st AND city TO c"},

	// FUNCTION / AGGREGATE
	{"create function", "CREATE OR REPLACE FUNCTION ks.avg_state (state tuple<int, bigint>, val int) CALLED ON NULL INPUT RETURNS tuple<int, bigint> LANGUAGE java AS $$ return state; $$",
		"CREATE OR REPLACE FUNCTION ks.avg_state (state TUPLE<INT, BIGINT>, val INT) CALLED ON NULL INPUT RETURNS TUPLE<INT, BIGINT> LANGUAGE java AS $$ return state; $$"},
	{"create function returns null", "CREATE FUNCTION IF NOT EXISTS f (x int) RETURNS NULL ON NULL INPUT RETURNS text LANGUAGE javascript AS 'return x;'",
		"CREATE FUNCTION IF NOT EXISTS f (x INT) RETURNS NULL ON NULL INPUT RETURNS TEXT LANGUAGE javascript AS 'return x;'"},
	{"create aggregate", "CREATE AGGREGATE avg_agg (int) SFUNC avg_state STYPE tuple<int, bigint> FINALFUNC avg_final INITCOND (0, 0)",
		"CREATE AGGREGATE avg_agg (INT) SFUNC avg_state STYPE TUPLE<INT, BIGINT> FINALFUNC avg_final INITCOND (0, 0)"},
	{"create aggregate minimal", "CREATE AGGREGATE sum_agg (int) SFUNC sum_state STYPE int",
		"CREATE AGGREGATE sum_agg (INT) SFUNC sum_state STYPE INT"},

	// TRIGGER
	{"create trigger", "CREATE TRIGGER trig USING 'org.apache.cassandra.triggers.AuditTrigger'",
		"CREATE TRIGGER trig USING 'org.apache.cassandra.triggers.AuditTrigger'"},
	{"drop trigger", "DROP TRIGGER IF EXISTS trig ON ks.t", "DROP TRIGGER IF EXISTS trig ON ks.t"},

	// DROP
	{"drop table", "DROP TABLE IF EXISTS ks.t", "DROP TABLE IF EXISTS ks.t"},
	{"drop keyspace", "DROP KEYSPACE ks", "DROP KEYSPACE ks"},
	{"drop index", "DROP INDEX idx", "DROP INDEX idx"},
	{"drop view", "DROP MATERIALIZED VIEW mv", "DROP MATERIALIZED VIEW mv"},
	{"drop type", "DROP TYPE ty", "DROP TYPE ty"},
	{"drop function", "DROP FUNCTION ks.f", "DROP FUNCTION ks.f"},
	{"drop aggregate", "DROP AGGREGATE agg", "DROP AGGREGATE agg"},
	{"drop role", "DROP ROLE admin", "DROP ROLE admin"},
	{"drop user", "DROP USER alice", "DROP USER alice"},

	// ROLE / USER
	{"create role", "CREATE ROLE IF NOT EXISTS admin WITH PASSWORD = 'secret' AND SUPERUSER = true AND LOGIN = true",
		"CREATE ROLE IF NOT EXISTS admin WITH PASSWORD = 'secret' AND SUPERUSER = TRUE AND LOGIN = TRUE"},
	{"alter role options", "ALTER ROLE admin WITH OPTIONS = {'opt1':'value'}",
		"ALTER ROLE admin WITH OPTIONS = {'opt1':'value'}"},
	{"list roles", "LIST ROLES OF admin NORECURSIVE", "LIST ROLES OF admin NORECURSIVE"},
	{"create user", "CREATE USER alice WITH PASSWORD 'pw' SUPERUSER", "CREATE USER alice WITH PASSWORD 'pw' SUPERUSER"},
	{"alter user", "ALTER USER alice WITH PASSWORD 'new' NOSUPERUSER", "ALTER USER alice WITH PASSWORD 'new' NOSUPERUSER"},

	// GRANT / REVOKE / LIST
	{"grant", "GRANT SELECT ON TABLE ks.t TO admin", "GRANT SELECT ON TABLE ks.t TO admin"},
	{"grant all long form", "GRANT ALL ON KEYSPACE ks TO admin", "GRANT ALL PERMISSIONS ON KEYSPACE ks TO admin"},
	{"grant bare table", "GRANT MODIFY ON t TO admin", "GRANT MODIFY ON TABLE t TO admin"},
	{"revoke", "REVOKE MODIFY ON ALL KEYSPACES FROM admin", "REVOKE MODIFY ON ALL KEYSPACES FROM admin"},
	{"list permissions", "LIST ALL PERMISSIONS OF admin", "LIST ALL PERMISSIONS OF admin"},
	{"list permissions on", "LIST SELECT ON TABLE t OF admin", "LIST SELECT ON TABLE t OF admin"},
	{"grant all functions in keyspace", "GRANT EXECUTE ON ALL FUNCTIONS IN KEYSPACE ks TO admin", "GRANT EXECUTE ON ALL FUNCTIONS IN KEYSPACE ks TO admin"},
}

func TestCanonicalRendering(t *testing.T) {
	for _, tt := range canonicalTests {
		t.Run(tt.name, func(t *testing.T) {
			ast := Parse(tt.input + ";")
			if ast.HasErrors() {
				t.Fatalf("parse errors: %v", ast.Errors)
			}
			if len(ast.Statements) != 1 {
				t.Fatalf("got %d statements, want 1", len(ast.Statements))
			}
			if got := ast.Statements[0].Statement.String(); got != tt.want {
				t.Errorf("canonical rendering\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}
}

// TestRoundTrip checks that parsing the canonical rendering again yields the
// same canonical rendering, for every corpus entry.
func TestRoundTrip(t *testing.T) {
	for _, tt := range canonicalTests {
		t.Run(tt.name, func(t *testing.T) {
			first := Parse(tt.input + ";")
			if first.HasErrors() {
				t.Fatalf("parse errors: %v", first.Errors)
			}
			canonical := first.Statements[0].Statement.String()

			second := Parse(canonical + ";")
			if second.HasErrors() {
				t.Fatalf("canonical form does not parse: %q: %v", canonical, second.Errors)
			}
			if got := second.Statements[0].Statement.String(); got != canonical {
				t.Errorf("round trip not stable\nfirst:  %s\nsecond: %s", canonical, got)
			}
		})
	}
}

func TestBatchStatements(t *testing.T) {
	input := "BEGIN BATCH INSERT INTO t (a) VALUES (1); APPLY BATCH;"
	ast := Parse(input)
	if ast.HasErrors() {
		t.Fatalf("parse errors: %v", ast.Errors)
	}
	if len(ast.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(ast.Statements))
	}
	ins, ok := ast.Statements[0].Statement.(cql.Insert)
	if !ok {
		t.Fatalf("statement 0 is %T, want cql.Insert", ast.Statements[0].Statement)
	}
	if ins.BeginBatch == nil {
		t.Error("insert should carry the batch prefix")
	}
	if got := ins.String(); got != "BEGIN BATCH INSERT INTO t (a) VALUES (1)" {
		t.Errorf("canonical = %q", got)
	}
	if _, ok := ast.Statements[1].Statement.(cql.ApplyBatch); !ok {
		t.Errorf("statement 1 is %T, want cql.ApplyBatch", ast.Statements[1].Statement)
	}
}

func TestErrorIsolation(t *testing.T) {
	input := "SELECT * FROM users; FLARGLE BLARG; SELECT id FROM t;"
	ast := Parse(input)

	if len(ast.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(ast.Statements))
	}
	wantErr := []bool{false, true, false}
	for i, s := range ast.Statements {
		if s.HasError != wantErr[i] {
			t.Errorf("statement %d HasError = %v, want %v", i, s.HasError, wantErr[i])
		}
	}
	if !ast.HasErrors() {
		t.Error("expected parse errors")
	}
	unknown, ok := ast.Statements[1].Statement.(cql.Unknown)
	if !ok {
		t.Fatalf("statement 1 is %T, want cql.Unknown", ast.Statements[1].Statement)
	}
	if !strings.Contains(unknown.Query, "FLARGLE") {
		t.Errorf("Unknown.Query = %q, want the raw region text", unknown.Query)
	}
}

func TestStatementOffsets(t *testing.T) {
	input := "SELECT * FROM a; SELECT * FROM b;"
	ast := Parse(input)
	if len(ast.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(ast.Statements))
	}
	for i, s := range ast.Statements {
		text := s.ExtractText(input)
		if !strings.HasPrefix(strings.TrimSpace(text), "SELECT") {
			t.Errorf("statement %d text = %q", i, text)
		}
	}
	if ast.Statements[0].EndByte > strings.Index(input, ";") {
		t.Errorf("first region should end before the semicolon, got %d", ast.Statements[0].EndByte)
	}
	if ast.Statements[1].StartByte <= strings.Index(input, ";") {
		t.Errorf("second region starts at %d", ast.Statements[1].StartByte)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"two statements", "SELECT * FROM a; SELECT * FROM b;", 2},
		{"semicolon in string", "INSERT INTO t (a) VALUES ('x; y'); SELECT * FROM t;", 2},
		{"semicolon in comment", "SELECT * FROM a; -- trailing; comment\nSELECT * FROM b;", 2},
		{"no trailing semicolon", "SELECT * FROM a", 1},
		{"empty", "", 0},
		{"only semicolons", " ; ; ", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := Split(tt.input)
			if len(regions) != tt.want {
				t.Fatalf("got %d regions, want %d", len(regions), tt.want)
			}
			for _, r := range regions {
				if r.Text != tt.input[r.StartByte:r.EndByte] {
					t.Errorf("region text %q does not match offsets [%d:%d]", r.Text, r.StartByte, r.EndByte)
				}
			}
		})
	}
}

func TestKeyspaceExtraction(t *testing.T) {
	tests := []struct {
		input string
		def   string
		want  string
	}{
		{"SELECT * FROM ks.t;", "fallback", "ks"},
		{"SELECT * FROM t;", "fallback", "fallback"},
		{"CREATE KEYSPACE test WITH REPLICATION = {'class':'SimpleStrategy'};", "fallback", "test"},
		{"DROP KEYSPACE test;", "fallback", "test"},
		// USE names its keyspace; the default does not apply.
		{"USE other;", "fallback", "other"},
	}
	for _, tt := range tests {
		ast := Parse(tt.input)
		if ast.HasErrors() {
			t.Fatalf("%s: parse errors: %v", tt.input, ast.Errors)
		}
		if got := ast.First().GetKeyspace(tt.def); got != tt.want {
			t.Errorf("%s: GetKeyspace = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestInsertValueMap(t *testing.T) {
	ast := Parse("INSERT INTO t (a, b) VALUES (1, 'x');")
	if ast.HasErrors() {
		t.Fatalf("parse errors: %v", ast.Errors)
	}
	ins := ast.First().(cql.Insert)
	vm := ins.ValueMap()
	if len(vm) != 2 {
		t.Fatalf("got %d entries, want 2", len(vm))
	}
	if vm["a"].Text != "1" || vm["b"].Text != "'x'" {
		t.Errorf("ValueMap = %v", vm)
	}
}

func TestQuotedIdentifiers(t *testing.T) {
	ast := Parse(`SELECT "CamelCase" FROM "My Table";`)
	if ast.HasErrors() {
		t.Fatalf("parse errors: %v", ast.Errors)
	}
	sel := ast.First().(cql.Select)
	if got := sel.String(); got != `SELECT "CamelCase" FROM "My Table"` {
		t.Errorf("canonical = %q", got)
	}
}

func TestSuggestKeyword(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SELEC", "SELECT"},
		{"FORM", "FROM"},
		{"UPDAT", "UPDATE"},
		{"SELECT", ""},
		{"zzz", ""},
		{"ab", ""},
	}
	for _, tt := range tests {
		if got := SuggestKeyword(tt.input); got != tt.want {
			t.Errorf("SuggestKeyword(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestErrorSuggestion(t *testing.T) {
	ast := Parse("SELECT * FORM users;")
	if !ast.HasErrors() {
		t.Fatal("expected parse errors")
	}
	err := ast.Errors.First()
	if err.Suggestion == "" || !strings.Contains(err.Suggestion, "FROM") {
		t.Errorf("Suggestion = %q, want a FROM hint", err.Suggestion)
	}
}
