package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// CommonDrop is the shared payload of the single-name DROP statements.
type CommonDrop struct {
	Name     FQName
	IfExists bool
}

// dropText renders a DROP statement for the given object keyword.
func (d CommonDrop) dropText(object string) string {
	var b strings.Builder
	b.WriteString("DROP ")
	b.WriteString(object)
	if d.IfExists {
		b.WriteString(" IF EXISTS")
	}
	b.WriteString(" ")
	b.WriteString(d.Name.String())
	return b.String()
}

// DropAggregate is a DROP AGGREGATE statement.
type DropAggregate struct {
	CommonDrop
}

func (DropAggregate) isStatement() {}

func (d DropAggregate) String() string { return d.dropText("AGGREGATE") }

func (DropAggregate) ShortName() string { return "DROP AGGREGATE" }

func (d DropAggregate) GetKeyspace(def string) string { return d.Name.ExtractKeyspace(def) }

func (DropAggregate) GetTableName() *FQName { return nil }

func (DropAggregate) Type() types.StatementType { return types.StatementDropAggregate }

// DropFunction is a DROP FUNCTION statement.
type DropFunction struct {
	CommonDrop
}

func (DropFunction) isStatement() {}

func (d DropFunction) String() string { return d.dropText("FUNCTION") }

func (DropFunction) ShortName() string { return "DROP FUNCTION" }

func (d DropFunction) GetKeyspace(def string) string { return d.Name.ExtractKeyspace(def) }

func (DropFunction) GetTableName() *FQName { return nil }

func (DropFunction) Type() types.StatementType { return types.StatementDropFunction }

// DropIndex is a DROP INDEX statement.
type DropIndex struct {
	CommonDrop
}

func (DropIndex) isStatement() {}

func (d DropIndex) String() string { return d.dropText("INDEX") }

func (DropIndex) ShortName() string { return "DROP INDEX" }

func (d DropIndex) GetKeyspace(def string) string { return d.Name.ExtractKeyspace(def) }

func (DropIndex) GetTableName() *FQName { return nil }

func (DropIndex) Type() types.StatementType { return types.StatementDropIndex }

// DropKeyspace is a DROP KEYSPACE statement.
type DropKeyspace struct {
	CommonDrop
}

func (DropKeyspace) isStatement() {}

func (d DropKeyspace) String() string { return d.dropText("KEYSPACE") }

func (DropKeyspace) ShortName() string { return "DROP KEYSPACE" }

func (d DropKeyspace) GetKeyspace(def string) string { return d.Name.Name.String() }

func (DropKeyspace) GetTableName() *FQName { return nil }

func (DropKeyspace) Type() types.StatementType { return types.StatementDropKeyspace }

// DropMaterializedView is a DROP MATERIALIZED VIEW statement.
type DropMaterializedView struct {
	CommonDrop
}

func (DropMaterializedView) isStatement() {}

func (d DropMaterializedView) String() string { return d.dropText("MATERIALIZED VIEW") }

func (DropMaterializedView) ShortName() string { return "DROP MATERIALIZED VIEW" }

func (d DropMaterializedView) GetKeyspace(def string) string {
	return d.Name.ExtractKeyspace(def)
}

func (DropMaterializedView) GetTableName() *FQName { return nil }

func (DropMaterializedView) Type() types.StatementType {
	return types.StatementDropMaterializedView
}

// DropRole is a DROP ROLE statement.
type DropRole struct {
	CommonDrop
}

func (DropRole) isStatement() {}

func (d DropRole) String() string { return d.dropText("ROLE") }

func (DropRole) ShortName() string { return "DROP ROLE" }

func (DropRole) GetKeyspace(def string) string { return def }

func (DropRole) GetTableName() *FQName { return nil }

func (DropRole) Type() types.StatementType { return types.StatementDropRole }

// DropTable is a DROP TABLE statement.
type DropTable struct {
	CommonDrop
}

func (DropTable) isStatement() {}

func (d DropTable) String() string { return d.dropText("TABLE") }

func (DropTable) ShortName() string { return "DROP TABLE" }

func (d DropTable) GetKeyspace(def string) string { return d.Name.ExtractKeyspace(def) }

func (d DropTable) GetTableName() *FQName { return &d.Name }

func (DropTable) Type() types.StatementType { return types.StatementDropTable }

// DropType is a DROP TYPE statement.
type DropType struct {
	CommonDrop
}

func (DropType) isStatement() {}

func (d DropType) String() string { return d.dropText("TYPE") }

func (DropType) ShortName() string { return "DROP TYPE" }

func (d DropType) GetKeyspace(def string) string { return d.Name.ExtractKeyspace(def) }

func (DropType) GetTableName() *FQName { return nil }

func (DropType) Type() types.StatementType { return types.StatementDropType }

// DropUser is a DROP USER statement.
type DropUser struct {
	CommonDrop
}

func (DropUser) isStatement() {}

func (d DropUser) String() string { return d.dropText("USER") }

func (DropUser) ShortName() string { return "DROP USER" }

func (DropUser) GetKeyspace(def string) string { return def }

func (DropUser) GetTableName() *FQName { return nil }

func (DropUser) Type() types.StatementType { return types.StatementDropUser }
