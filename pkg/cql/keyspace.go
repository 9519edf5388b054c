package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// KeyspaceData is the shared payload of CREATE KEYSPACE and ALTER KEYSPACE.
type KeyspaceData struct {
	Name        Identifier
	Replication []MapEntry
	// DurableWrites, when set, appends the DURABLE_WRITES option.
	DurableWrites *bool
	IfNotExists   bool
}

// keyspaceText renders everything after the CREATE or ALTER keyword.
func (k KeyspaceData) keyspaceText() string {
	var b strings.Builder
	b.WriteString("KEYSPACE ")
	if k.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(k.Name.String())
	b.WriteString(" WITH REPLICATION = {")
	parts := make([]string, len(k.Replication))
	for i, p := range k.Replication {
		parts[i] = p.Key + ":" + p.Value
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString("}")
	if k.DurableWrites != nil {
		if *k.DurableWrites {
			b.WriteString(" AND DURABLE_WRITES = TRUE")
		} else {
			b.WriteString(" AND DURABLE_WRITES = FALSE")
		}
	}
	return b.String()
}

// CreateKeyspace is a CREATE KEYSPACE statement.
type CreateKeyspace struct {
	KeyspaceData
}

func (CreateKeyspace) isStatement() {}

func (k CreateKeyspace) String() string { return "CREATE " + k.keyspaceText() }

func (CreateKeyspace) ShortName() string { return "CREATE KEYSPACE" }

func (k CreateKeyspace) GetKeyspace(def string) string { return k.Name.String() }

func (CreateKeyspace) GetTableName() *FQName { return nil }

func (CreateKeyspace) Type() types.StatementType { return types.StatementCreateKeyspace }

// AlterKeyspace is an ALTER KEYSPACE statement.
type AlterKeyspace struct {
	KeyspaceData
}

func (AlterKeyspace) isStatement() {}

func (k AlterKeyspace) String() string { return "ALTER " + k.keyspaceText() }

func (AlterKeyspace) ShortName() string { return "ALTER KEYSPACE" }

func (k AlterKeyspace) GetKeyspace(def string) string { return k.Name.String() }

func (AlterKeyspace) GetTableName() *FQName { return nil }

func (AlterKeyspace) Type() types.StatementType { return types.StatementAlterKeyspace }
