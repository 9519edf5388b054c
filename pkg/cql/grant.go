package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// Grant is a GRANT statement.
type Grant struct {
	Privilege
}

func (Grant) isStatement() {}

func (g Grant) String() string {
	return "GRANT " + g.Privilege.Privilege.String() + " ON " + g.Resource.String() + " TO " + g.Role
}

func (Grant) ShortName() string { return "GRANT" }

func (Grant) GetKeyspace(def string) string { return def }

func (Grant) GetTableName() *FQName { return nil }

func (Grant) Type() types.StatementType { return types.StatementGrant }

// Revoke is a REVOKE statement.
type Revoke struct {
	Privilege
}

func (Revoke) isStatement() {}

func (r Revoke) String() string {
	return "REVOKE " + r.Privilege.Privilege.String() + " ON " + r.Resource.String() + " FROM " + r.Role
}

func (Revoke) ShortName() string { return "REVOKE" }

func (Revoke) GetKeyspace(def string) string { return def }

func (Revoke) GetTableName() *FQName { return nil }

func (Revoke) Type() types.StatementType { return types.StatementRevoke }

// ListPermissions is a LIST permissions statement. Resource and Role are
// both optional.
type ListPermissions struct {
	Privilege
}

func (ListPermissions) isStatement() {}

func (l ListPermissions) String() string {
	var b strings.Builder
	b.WriteString("LIST ")
	b.WriteString(l.Privilege.Privilege.String())
	if l.Resource != nil {
		b.WriteString(" ON ")
		b.WriteString(l.Resource.String())
	}
	if l.Role != "" {
		b.WriteString(" OF ")
		b.WriteString(l.Role)
	}
	return b.String()
}

func (ListPermissions) ShortName() string { return "LIST PERMISSIONS" }

func (ListPermissions) GetKeyspace(def string) string { return def }

func (ListPermissions) GetTableName() *FQName { return nil }

func (ListPermissions) Type() types.StatementType { return types.StatementListPermissions }
