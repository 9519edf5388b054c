package schema

import (
	"strconv"
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/cql"
	"github.com/tentacle-scylla/cqlast/pkg/parse"
)

// LoadDDL builds a schema from a CQL DDL script, e.g. the output of
// DESCRIBE SCHEMA. Statements that do not contribute to the schema (DML,
// permissions, roles) are ignored. Returns an error when the script does not
// parse.
func LoadDDL(input string) (*Schema, error) {
	ast := parse.Parse(input)
	if ast.HasErrors() {
		return nil, ast.Errors[0]
	}
	stmts := make([]cql.Statement, len(ast.Statements))
	for i, s := range ast.Statements {
		stmts[i] = s.Statement
	}
	return FromStatements(stmts), nil
}

// FromStatements builds a schema from typed statements. A USE statement sets
// the keyspace for subsequent unqualified names; before any USE, unqualified
// names land in a keyspace with an empty name.
func FromStatements(stmts []cql.Statement) *Schema {
	s := NewSchema()
	current := ""
	for _, stmt := range stmts {
		switch st := stmt.(type) {
		case cql.Use:
			current = st.Keyspace
		case cql.CreateKeyspace:
			applyKeyspace(s, st.KeyspaceData)
		case cql.AlterKeyspace:
			applyKeyspace(s, st.KeyspaceData)
		case cql.CreateTable:
			applyCreateTable(s, current, st)
		case cql.AlterTable:
			applyAlterTable(s, current, st)
		case cql.CreateType:
			applyCreateType(s, current, st)
		case cql.CreateIndex:
			applyCreateIndex(s, current, st)
		case cql.CreateMaterializedView:
			applyCreateView(s, current, st)
		case cql.CreateFunction:
			applyCreateFunction(s, current, st)
		case cql.CreateAggregate:
			applyCreateAggregate(s, current, st)
		case cql.DropKeyspace:
			delete(s.Keyspaces, st.Name.Name.String())
		case cql.DropTable:
			if ks := s.GetKeyspace(st.GetKeyspace(current)); ks != nil {
				delete(ks.Tables, st.Name.Name.String())
			}
		case cql.DropType:
			if ks := s.GetKeyspace(st.GetKeyspace(current)); ks != nil {
				delete(ks.Types, st.Name.Name.String())
			}
		}
	}
	return s
}

func applyKeyspace(s *Schema, data cql.KeyspaceData) {
	ks := s.AddKeyspace(data.Name.String())
	factors := make(map[string]int)
	class := ""
	for _, entry := range data.Replication {
		key := cql.UnescapeConst(entry.Key)
		value := cql.UnescapeConst(entry.Value)
		if strings.EqualFold(key, "class") {
			// Strip any package qualifier like org.apache.cassandra.locator.
			if idx := strings.LastIndexByte(value, '.'); idx >= 0 {
				value = value[idx+1:]
			}
			class = value
			continue
		}
		if n, err := strconv.Atoi(value); err == nil {
			factors[key] = n
		}
	}
	if class != "" {
		ks.WithReplication(class, factors)
	}
	if data.DurableWrites != nil {
		ks.WithDurableWrites(*data.DurableWrites)
	}
}

func applyCreateTable(s *Schema, current string, st cql.CreateTable) {
	ks := s.AddKeyspace(st.GetKeyspace(current))
	t := ks.AddTable(st.Name.Name.String())
	var inlineKey []string
	for _, col := range st.Columns {
		t.AddColumn(col.Name.String(), col.DataType.String())
		if col.PrimaryKey {
			inlineKey = append(inlineKey, col.Name.String())
		}
	}
	if st.Key != nil {
		t.SetPartitionKey(identifierNames(st.Key.Partition)...)
		t.SetClusteringKey(identifierNames(st.Key.Clustering)...)
	} else if len(inlineKey) > 0 {
		t.SetPartitionKey(inlineKey...)
	}
	applyTableOptions(t, st.WithClause)
}

func applyTableOptions(t *Table, with []cql.WithItem) {
	for _, item := range with {
		switch item.Kind {
		case cql.WithClusterOrder:
			order := OrderAsc
			if item.Order.Desc {
				order = OrderDesc
			}
			t.SetClusteringOrder(item.Order.Name.String(), order)
		case cql.WithOption:
			applyTableOption(t, item.Key, item.Value)
		}
	}
}

func applyTableOption(t *Table, key string, value cql.OptionValue) {
	switch strings.ToLower(key) {
	case "comment":
		t.WithComment(cql.UnescapeConst(value.Literal))
	case "gc_grace_seconds":
		if n, err := strconv.Atoi(value.Literal); err == nil {
			t.WithGCGraceSeconds(n)
		}
	case "bloom_filter_fp_chance":
		if f, err := strconv.ParseFloat(value.Literal, 64); err == nil {
			t.BloomFilterFPChance = f
		}
	case "compaction":
		t.Compaction = optionMap(value)
	case "compression":
		t.Compression = optionMap(value)
	case "caching":
		t.Caching = optionMap(value)
	}
}

func optionMap(value cql.OptionValue) map[string]string {
	out := make(map[string]string, len(value.Map))
	for _, entry := range value.Map {
		out[cql.UnescapeConst(entry.Key)] = cql.UnescapeConst(entry.Value)
	}
	return out
}

func applyAlterTable(s *Schema, current string, st cql.AlterTable) {
	ks := s.GetKeyspace(st.GetKeyspace(current))
	t := ks.GetTable(st.Name.Name.String())
	if t == nil {
		return
	}
	op := st.Operation
	switch op.Kind {
	case cql.AlterTableAdd:
		for _, col := range op.Columns {
			t.AddColumn(col.Name.String(), col.DataType.String())
		}
	case cql.AlterTableDropColumns:
		for _, col := range op.Dropped {
			name := col.String()
			delete(t.Columns, name)
			for i, n := range t.ColumnOrder {
				if n == name {
					t.ColumnOrder = append(t.ColumnOrder[:i], t.ColumnOrder[i+1:]...)
					break
				}
			}
		}
	case cql.AlterTableRename:
		if col := t.GetColumn(op.From.String()); col != nil {
			delete(t.Columns, op.From.String())
			col.Name = op.To.String()
			t.Columns[col.Name] = col
			for i, n := range t.ColumnOrder {
				if n == op.From.String() {
					t.ColumnOrder[i] = col.Name
				}
			}
		}
	case cql.AlterTableWith:
		applyTableOptions(t, op.With)
	}
}

func applyCreateType(s *Schema, current string, st cql.CreateType) {
	ks := s.AddKeyspace(st.GetKeyspace(current))
	udt := ks.AddType(st.Name.Name.String())
	for _, col := range st.Columns {
		udt.AddField(col.Name.String(), col.DataType.String())
	}
}

func applyCreateIndex(s *Schema, current string, st cql.CreateIndex) {
	ks := s.AddKeyspace(st.GetKeyspace(current))
	t := ks.AddTable(st.Table.Name.String())
	idx := t.AddIndex(st.Name, st.Column.Name)
	switch st.Column.Kind {
	case cql.IndexKeys:
		idx.WithKind("KEYS")
	case cql.IndexEntries:
		idx.WithKind("ENTRIES")
	case cql.IndexFull:
		idx.WithKind("FULL")
	}
}

func applyCreateView(s *Schema, current string, st cql.CreateMaterializedView) {
	ks := s.AddKeyspace(st.Table.ExtractKeyspace(current))
	t := ks.AddTable(st.Table.Name.String())
	mv := t.AddMaterializedView(st.Name.Name.String())
	for _, col := range st.Columns {
		base := t.GetColumn(col.String())
		colType := ""
		if base != nil {
			colType = base.Type
		}
		mv.AddColumn(col.String(), colType)
	}
	mv.SetPartitionKey(identifierNames(st.Key.Partition)...)
	mv.SetClusteringKey(identifierNames(st.Key.Clustering)...)
	whereParts := make([]string, len(st.Where))
	for i, rel := range st.Where {
		whereParts[i] = rel.String()
	}
	mv.WithWhereClause(strings.Join(whereParts, " AND "))
}

func applyCreateFunction(s *Schema, current string, st cql.CreateFunction) {
	ks := s.AddKeyspace(st.GetKeyspace(current))
	fn := ks.AddFunction(st.Name.Name.String()).
		WithReturnType(st.Returns.String()).
		WithLanguage(st.Language).
		WithBody(st.Body)
	for _, p := range st.Params {
		fn.AddParameter(p.Name.String(), p.DataType.String())
	}
	if st.ReturnsNull {
		fn.ReturnsNullOnNullInput()
	} else {
		fn.CalledOnNullInput()
	}
}

func applyCreateAggregate(s *Schema, current string, st cql.CreateAggregate) {
	ks := s.AddKeyspace(st.GetKeyspace(current))
	agg := &Aggregate{
		Name:       st.Name.Name.String(),
		Keyspace:   ks.Name,
		StateFunc:  st.SFunc,
		StateType:  st.SType.String(),
		FinalFunc:  st.FinalFunc,
		InitCond:   st.InitCond.String(),
		Parameters: []string{st.DataType.String()},
	}
	if ks.Aggregates == nil {
		ks.Aggregates = make(map[string]*Aggregate)
	}
	ks.Aggregates[agg.Name] = agg
}

func identifierNames(ids []cql.Identifier) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}
