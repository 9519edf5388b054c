package cql

import (
	"fmt"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// Statement is a parsed CQL statement. String renders the canonical form:
// keywords upper case, identifiers verbatim, collection values normalized.
type Statement interface {
	fmt.Stringer

	// ShortName returns the statement keyword, e.g. "CREATE TABLE".
	ShortName() string

	// GetKeyspace returns the keyspace the statement operates on, or def when
	// the statement is unqualified or has no keyspace at all.
	GetKeyspace(def string) string

	// GetTableName returns the table the statement operates on, if any.
	GetTableName() *FQName

	// Type returns the statement classification.
	Type() types.StatementType

	isStatement()
}

// Unknown holds the raw text of a statement that could not be parsed.
type Unknown struct {
	Query string
}

func (Unknown) isStatement() {}

func (u Unknown) String() string { return u.Query }

func (Unknown) ShortName() string { return "UNRECOGNIZED CQL" }

func (Unknown) GetKeyspace(def string) string { return def }

func (Unknown) GetTableName() *FQName { return nil }

func (Unknown) Type() types.StatementType { return types.StatementUnknown }

// Use is a USE statement.
type Use struct {
	Keyspace string
}

func (Use) isStatement() {}

func (u Use) String() string { return "USE " + u.Keyspace }

func (Use) ShortName() string { return "USE" }

func (u Use) GetKeyspace(def string) string { return u.Keyspace }

func (Use) GetTableName() *FQName { return nil }

func (Use) Type() types.StatementType { return types.StatementUse }

// Truncate is a TRUNCATE statement. It always renders with the TABLE keyword
// whether or not the input had one.
type Truncate struct {
	Table FQName
}

func (Truncate) isStatement() {}

func (t Truncate) String() string { return "TRUNCATE TABLE " + t.Table.String() }

func (Truncate) ShortName() string { return "TRUNCATE" }

func (t Truncate) GetKeyspace(def string) string { return t.Table.ExtractKeyspace(def) }

func (t Truncate) GetTableName() *FQName { return &t.Table }

func (Truncate) Type() types.StatementType { return types.StatementTruncate }

// ApplyBatch is an APPLY BATCH statement.
type ApplyBatch struct{}

func (ApplyBatch) isStatement() {}

func (ApplyBatch) String() string { return "APPLY BATCH" }

func (ApplyBatch) ShortName() string { return "APPLY BATCH" }

func (ApplyBatch) GetKeyspace(def string) string { return def }

func (ApplyBatch) GetTableName() *FQName { return nil }

func (ApplyBatch) Type() types.StatementType { return types.StatementBatch }
