// Package schema models a CQL schema: keyspaces with their tables, columns,
// keys, user-defined types, functions, and aggregates. A schema is built
// through the chainable Add/With methods, loaded from JSON, or derived from a
// parsed DDL script via LoadDDL.
package schema

// Schema holds every keyspace, keyed by name.
type Schema struct {
	Keyspaces map[string]*Keyspace
}

// Keyspace is one CQL keyspace and everything defined inside it.
type Keyspace struct {
	Name              string
	ReplicationClass  string         // strategy class, without package qualifier
	ReplicationFactor map[string]int // "replication_factor" -> n, or DC name -> n
	DurableWrites     bool
	Tables            map[string]*Table
	Types             map[string]*UserType
	Functions         map[string]*Function
	Aggregates        map[string]*Aggregate
}

// Table is a CQL table: columns in definition order plus key structure and
// the WITH options the DDL loader understands.
type Table struct {
	Name              string
	Keyspace          string
	Columns           map[string]*Column
	ColumnOrder       []string         // definition order
	PartitionKey      []string         // column names, partition key order
	ClusteringKey     []string         // column names, clustering key order
	ClusteringOrder   map[string]Order // column -> ASC/DESC
	Indexes           map[string]*Index
	MaterializedViews map[string]*MaterializedView
	Comment           string

	GCGraceSeconds      int
	BloomFilterFPChance float64
	Compaction          map[string]string
	Compression         map[string]string
	Caching             map[string]string
}

// Column is one column of a table or materialized view. Type is the canonical
// CQL type text, e.g. "INT" or "MAP<TEXT, INT>".
type Column struct {
	Name            string
	Type            string
	IsStatic        bool
	IsPartitionKey  bool
	IsClusteringKey bool
	Position        int // position within the primary key, 0-based
}

// Order is a clustering order direction.
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

// Index is a secondary index. Kind records the collection target form
// (KEYS, ENTRIES, FULL) when the index was created with one.
type Index struct {
	Name         string
	Table        string
	TargetColumn string
	Kind         string
	Options      map[string]string // custom index options
	ClassName    string            // custom index class
}

// MaterializedView is a materialized view, attached to its base table.
type MaterializedView struct {
	Name            string
	Keyspace        string
	BaseTable       string
	Columns         map[string]*Column
	ColumnOrder     []string
	PartitionKey    []string
	ClusteringKey   []string
	ClusteringOrder map[string]Order
	WhereClause     string // the view's WHERE clause, as rendered text
}

// UserType is a user-defined type.
type UserType struct {
	Name       string
	Keyspace   string
	Fields     map[string]string // field name -> CQL type
	FieldOrder []string          // definition order
}

// Function is a user-defined function. CalledOnNull distinguishes
// CALLED ON NULL INPUT from RETURNS NULL ON NULL INPUT.
type Function struct {
	Name          string
	Keyspace      string
	Parameters    []FunctionParam
	ReturnType    string
	Language      string
	Body          string
	CalledOnNull  bool
	Deterministic bool
}

// FunctionParam is one function parameter.
type FunctionParam struct {
	Name string
	Type string
}

// Aggregate is a user-defined aggregate.
type Aggregate struct {
	Name       string
	Keyspace   string
	StateFunc  string
	StateType  string
	FinalFunc  string
	InitCond   string
	Parameters []string // Parameter types
	ReturnType string
}

// Lookups below are nil-safe: calling them on a nil receiver or an
// uninitialized map returns nil.

// GetKeyspace returns a keyspace by name, or nil if not found.
func (s *Schema) GetKeyspace(name string) *Keyspace {
	if s == nil || s.Keyspaces == nil {
		return nil
	}
	return s.Keyspaces[name]
}

// GetTable returns a table by name, or nil if not found.
func (ks *Keyspace) GetTable(name string) *Table {
	if ks == nil || ks.Tables == nil {
		return nil
	}
	return ks.Tables[name]
}

// GetColumn returns a column by name, or nil if not found.
func (t *Table) GetColumn(name string) *Column {
	if t == nil || t.Columns == nil {
		return nil
	}
	return t.Columns[name]
}

// GetType returns a user-defined type by name, or nil if not found.
func (ks *Keyspace) GetType(name string) *UserType {
	if ks == nil || ks.Types == nil {
		return nil
	}
	return ks.Types[name]
}

// GetFunction returns a user-defined function by name, or nil if not found.
func (ks *Keyspace) GetFunction(name string) *Function {
	if ks == nil || ks.Functions == nil {
		return nil
	}
	return ks.Functions[name]
}

// GetIndex returns an index by name, or nil if not found.
func (t *Table) GetIndex(name string) *Index {
	if t == nil || t.Indexes == nil {
		return nil
	}
	return t.Indexes[name]
}

// GetMaterializedView returns a materialized view by name, or nil if not found.
func (t *Table) GetMaterializedView(name string) *MaterializedView {
	if t == nil || t.MaterializedViews == nil {
		return nil
	}
	return t.MaterializedViews[name]
}

// PartitionKeyColumns returns the partition key columns in order.
func (t *Table) PartitionKeyColumns() []*Column {
	if t == nil {
		return nil
	}
	cols := make([]*Column, 0, len(t.PartitionKey))
	for _, name := range t.PartitionKey {
		if col := t.GetColumn(name); col != nil {
			cols = append(cols, col)
		}
	}
	return cols
}

// ClusteringKeyColumns returns the clustering key columns in order.
func (t *Table) ClusteringKeyColumns() []*Column {
	if t == nil {
		return nil
	}
	cols := make([]*Column, 0, len(t.ClusteringKey))
	for _, name := range t.ClusteringKey {
		if col := t.GetColumn(name); col != nil {
			cols = append(cols, col)
		}
	}
	return cols
}

// PrimaryKeyColumns returns all primary key columns (partition + clustering) in order.
func (t *Table) PrimaryKeyColumns() []*Column {
	if t == nil {
		return nil
	}
	cols := make([]*Column, 0, len(t.PartitionKey)+len(t.ClusteringKey))
	cols = append(cols, t.PartitionKeyColumns()...)
	cols = append(cols, t.ClusteringKeyColumns()...)
	return cols
}

// RegularColumns returns all non-primary-key columns.
func (t *Table) RegularColumns() []*Column {
	if t == nil {
		return nil
	}
	cols := make([]*Column, 0)
	for _, name := range t.ColumnOrder {
		col := t.GetColumn(name)
		if col != nil && !col.IsPartitionKey && !col.IsClusteringKey {
			cols = append(cols, col)
		}
	}
	return cols
}

// AllColumns returns all columns in definition order.
func (t *Table) AllColumns() []*Column {
	if t == nil {
		return nil
	}
	cols := make([]*Column, 0, len(t.ColumnOrder))
	for _, name := range t.ColumnOrder {
		if col := t.GetColumn(name); col != nil {
			cols = append(cols, col)
		}
	}
	return cols
}

// TableNames returns all table names in the keyspace.
func (ks *Keyspace) TableNames() []string {
	if ks == nil || ks.Tables == nil {
		return nil
	}
	names := make([]string, 0, len(ks.Tables))
	for name := range ks.Tables {
		names = append(names, name)
	}
	return names
}

// MaterializedViewNames returns all materialized view names in the keyspace.
// MVs are collected from all tables in the keyspace.
func (ks *Keyspace) MaterializedViewNames() []string {
	if ks == nil || ks.Tables == nil {
		return nil
	}
	var names []string
	for _, tbl := range ks.Tables {
		if tbl.MaterializedViews != nil {
			for name := range tbl.MaterializedViews {
				names = append(names, name)
			}
		}
	}
	return names
}

// GetMaterializedView returns a materialized view by name from any table in the keyspace.
func (ks *Keyspace) GetMaterializedView(name string) *MaterializedView {
	if ks == nil || ks.Tables == nil {
		return nil
	}
	for _, tbl := range ks.Tables {
		if mv := tbl.GetMaterializedView(name); mv != nil {
			return mv
		}
	}
	return nil
}

// KeyspaceNames returns all keyspace names in the schema.
func (s *Schema) KeyspaceNames() []string {
	if s == nil || s.Keyspaces == nil {
		return nil
	}
	names := make([]string, 0, len(s.Keyspaces))
	for name := range s.Keyspaces {
		names = append(names, name)
	}
	return names
}
