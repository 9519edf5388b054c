package schema

import (
	"strings"
	"testing"
)

const sampleDDL = `
CREATE KEYSPACE store WITH replication = {'class': 'org.apache.cassandra.locator.NetworkTopologyStrategy', 'dc1': 3, 'dc2': 2} AND durable_writes = true;

USE store;

CREATE TABLE orders (
    customer uuid,
    placed_at timestamp,
    total decimal,
    notes text,
    PRIMARY KEY ((customer), placed_at)
) WITH CLUSTERING ORDER BY (placed_at DESC)
  AND comment = 'order history'
  AND gc_grace_seconds = 86400
  AND compaction = {'class': 'LeveledCompactionStrategy'};

CREATE TYPE address (street text, city text);

CREATE INDEX notes_idx ON orders (notes);

CREATE MATERIALIZED VIEW orders_by_day AS
    SELECT customer, placed_at, total
    FROM orders
    WHERE customer IS NOT NULL AND placed_at IS NOT NULL
    PRIMARY KEY (placed_at, customer);
`

func TestLoadDDL(t *testing.T) {
	s, err := LoadDDL(sampleDDL)
	if err != nil {
		t.Fatalf("LoadDDL: %v", err)
	}

	ks := s.GetKeyspace("store")
	if ks == nil {
		t.Fatal("keyspace store not found")
	}
	if ks.ReplicationClass != "NetworkTopologyStrategy" {
		t.Errorf("ReplicationClass = %q", ks.ReplicationClass)
	}
	if ks.ReplicationFactor["dc1"] != 3 || ks.ReplicationFactor["dc2"] != 2 {
		t.Errorf("ReplicationFactor = %v", ks.ReplicationFactor)
	}
	if !ks.DurableWrites {
		t.Error("DurableWrites should be true")
	}

	tbl := ks.GetTable("orders")
	if tbl == nil {
		t.Fatal("table orders not found")
	}
	if len(tbl.ColumnOrder) != 4 {
		t.Errorf("ColumnOrder = %v", tbl.ColumnOrder)
	}
	if col := tbl.GetColumn("total"); col == nil || col.Type != "DECIMAL" {
		t.Errorf("column total = %+v", col)
	}
	if len(tbl.PartitionKey) != 1 || tbl.PartitionKey[0] != "customer" {
		t.Errorf("PartitionKey = %v", tbl.PartitionKey)
	}
	if len(tbl.ClusteringKey) != 1 || tbl.ClusteringKey[0] != "placed_at" {
		t.Errorf("ClusteringKey = %v", tbl.ClusteringKey)
	}
	if tbl.ClusteringOrder["placed_at"] != OrderDesc {
		t.Errorf("ClusteringOrder = %v", tbl.ClusteringOrder)
	}
	if tbl.Comment != "order history" {
		t.Errorf("Comment = %q", tbl.Comment)
	}
	if tbl.GCGraceSeconds != 86400 {
		t.Errorf("GCGraceSeconds = %d", tbl.GCGraceSeconds)
	}
	if tbl.Compaction["class"] != "LeveledCompactionStrategy" {
		t.Errorf("Compaction = %v", tbl.Compaction)
	}

	udt := ks.GetType("address")
	if udt == nil {
		t.Fatal("type address not found")
	}
	if udt.Fields["city"] != "TEXT" || len(udt.FieldOrder) != 2 {
		t.Errorf("address fields = %+v", udt)
	}

	idx := tbl.GetIndex("notes_idx")
	if idx == nil || idx.TargetColumn != "notes" {
		t.Errorf("index = %+v", idx)
	}

	mv := tbl.GetMaterializedView("orders_by_day")
	if mv == nil {
		t.Fatal("materialized view not found")
	}
	if len(mv.PartitionKey) != 1 || mv.PartitionKey[0] != "placed_at" {
		t.Errorf("mv PartitionKey = %v", mv.PartitionKey)
	}
	if col := mv.Columns["total"]; col == nil || col.Type != "DECIMAL" {
		t.Errorf("mv column total = %+v", col)
	}
	if !strings.Contains(mv.WhereClause, "customer IS NOT NULL") {
		t.Errorf("WhereClause = %q", mv.WhereClause)
	}
}

func TestLoadDDLInvalid(t *testing.T) {
	if _, err := LoadDDL("CREATE TABEL nope;"); err == nil {
		t.Error("expected an error for invalid DDL")
	}
}

func TestLoadDDLInlinePrimaryKey(t *testing.T) {
	s, err := LoadDDL("CREATE TABLE ks.t (id uuid PRIMARY KEY, name text);")
	if err != nil {
		t.Fatalf("LoadDDL: %v", err)
	}
	tbl := s.GetKeyspace("ks").GetTable("t")
	if tbl == nil {
		t.Fatal("table not found")
	}
	if len(tbl.PartitionKey) != 1 || tbl.PartitionKey[0] != "id" {
		t.Errorf("PartitionKey = %v", tbl.PartitionKey)
	}
	if len(tbl.ClusteringKey) != 0 {
		t.Errorf("ClusteringKey = %v", tbl.ClusteringKey)
	}
}

func TestLoadDDLAlterTable(t *testing.T) {
	s, err := LoadDDL(`
		CREATE TABLE ks.t (id int PRIMARY KEY, old text, gone text);
		ALTER TABLE ks.t ADD extra int;
		ALTER TABLE ks.t DROP gone;
		ALTER TABLE ks.t RENAME old TO fresh;
		ALTER TABLE ks.t WITH comment = 'altered';
	`)
	if err != nil {
		t.Fatalf("LoadDDL: %v", err)
	}
	tbl := s.GetKeyspace("ks").GetTable("t")
	if tbl.GetColumn("extra") == nil {
		t.Error("added column missing")
	}
	if tbl.GetColumn("gone") != nil {
		t.Error("dropped column still present")
	}
	if tbl.GetColumn("old") != nil || tbl.GetColumn("fresh") == nil {
		t.Error("rename not applied")
	}
	for _, n := range tbl.ColumnOrder {
		if n == "gone" || n == "old" {
			t.Errorf("ColumnOrder still lists %q", n)
		}
	}
	if tbl.Comment != "altered" {
		t.Errorf("Comment = %q", tbl.Comment)
	}
}

func TestLoadDDLReAddColumn(t *testing.T) {
	s, err := LoadDDL(`
		CREATE TABLE ks.t (id int PRIMARY KEY, v text);
		ALTER TABLE ks.t ADD v varchar;
	`)
	if err != nil {
		t.Fatalf("LoadDDL: %v", err)
	}
	tbl := s.GetKeyspace("ks").GetTable("t")
	if got := tbl.GetColumn("v").Type; got != "VARCHAR" {
		t.Errorf("re-added column type = %q", got)
	}
	count := 0
	for _, n := range tbl.ColumnOrder {
		if n == "v" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("column v appears %d times in ColumnOrder", count)
	}
}

func TestLoadDDLUseTracking(t *testing.T) {
	s, err := LoadDDL(`
		USE first;
		CREATE TABLE a (id int PRIMARY KEY);
		USE second;
		CREATE TABLE b (id int PRIMARY KEY);
	`)
	if err != nil {
		t.Fatalf("LoadDDL: %v", err)
	}
	if s.GetKeyspace("first").GetTable("a") == nil {
		t.Error("table a should land in keyspace first")
	}
	if s.GetKeyspace("second").GetTable("b") == nil {
		t.Error("table b should land in keyspace second")
	}
	if s.GetKeyspace("first").GetTable("b") != nil {
		t.Error("table b leaked into keyspace first")
	}
}

func TestLoadDDLDrops(t *testing.T) {
	s, err := LoadDDL(`
		CREATE KEYSPACE ks WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1};
		USE ks;
		CREATE TABLE t (id int PRIMARY KEY);
		CREATE TYPE u (f text);
		DROP TABLE t;
		DROP TYPE u;
	`)
	if err != nil {
		t.Fatalf("LoadDDL: %v", err)
	}
	ks := s.GetKeyspace("ks")
	if ks.GetTable("t") != nil {
		t.Error("dropped table still present")
	}
	if ks.GetType("u") != nil {
		t.Error("dropped type still present")
	}

	s, err = LoadDDL(`
		CREATE KEYSPACE ks WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1};
		DROP KEYSPACE ks;
	`)
	if err != nil {
		t.Fatalf("LoadDDL: %v", err)
	}
	if s.GetKeyspace("ks") != nil {
		t.Error("dropped keyspace still present")
	}
}

func TestLoadDDLFunctionAndAggregate(t *testing.T) {
	s, err := LoadDDL(`
		CREATE FUNCTION ks.plus (a int, b int)
			RETURNS NULL ON NULL INPUT
			RETURNS int
			LANGUAGE java
			AS 'return a + b;';
		CREATE AGGREGATE ks.total (int)
			SFUNC plus
			STYPE int
			INITCOND 0;
	`)
	if err != nil {
		t.Fatalf("LoadDDL: %v", err)
	}
	ks := s.GetKeyspace("ks")
	fn := ks.GetFunction("plus")
	if fn == nil {
		t.Fatal("function not found")
	}
	if fn.ReturnType != "INT" || fn.Language != "java" {
		t.Errorf("function = %+v", fn)
	}
	if len(fn.Parameters) != 2 || fn.Parameters[0].Name != "a" {
		t.Errorf("parameters = %+v", fn.Parameters)
	}
	if fn.CalledOnNull {
		t.Error("RETURNS NULL ON NULL INPUT should clear CalledOnNull")
	}

	agg := ks.Aggregates["total"]
	if agg == nil {
		t.Fatal("aggregate not found")
	}
	if agg.StateFunc != "plus" || agg.StateType != "INT" {
		t.Errorf("aggregate = %+v", agg)
	}
}
