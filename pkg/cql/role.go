package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// RoleCommon is the shared payload of CREATE ROLE and ALTER ROLE.
type RoleCommon struct {
	Name Identifier
	// Password holds the raw password constant, quotes included.
	Password string
	// Superuser and Login render only when set.
	Superuser *bool
	Login     *bool
	// Options are settings for an external authenticator.
	Options     []MapEntry
	IfNotExists bool
}

// roleText renders everything after the CREATE or ALTER keyword.
func (r RoleCommon) roleText() string {
	var with []string
	if r.Password != "" {
		with = append(with, "PASSWORD = "+r.Password)
	}
	if r.Superuser != nil {
		if *r.Superuser {
			with = append(with, "SUPERUSER = TRUE")
		} else {
			with = append(with, "SUPERUSER = FALSE")
		}
	}
	if r.Login != nil {
		if *r.Login {
			with = append(with, "LOGIN = TRUE")
		} else {
			with = append(with, "LOGIN = FALSE")
		}
	}
	if len(r.Options) > 0 {
		parts := make([]string, len(r.Options))
		for i, p := range r.Options {
			parts[i] = p.Key + ":" + p.Value
		}
		with = append(with, "OPTIONS = {"+strings.Join(parts, ", ")+"}")
	}

	var b strings.Builder
	b.WriteString("ROLE ")
	if r.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(r.Name.String())
	if len(with) > 0 {
		b.WriteString(" WITH ")
		b.WriteString(strings.Join(with, " AND "))
	}
	return b.String()
}

// CreateRole is a CREATE ROLE statement.
type CreateRole struct {
	RoleCommon
}

func (CreateRole) isStatement() {}

func (r CreateRole) String() string { return "CREATE " + r.roleText() }

func (CreateRole) ShortName() string { return "CREATE ROLE" }

func (CreateRole) GetKeyspace(def string) string { return def }

func (CreateRole) GetTableName() *FQName { return nil }

func (CreateRole) Type() types.StatementType { return types.StatementCreateRole }

// AlterRole is an ALTER ROLE statement.
type AlterRole struct {
	RoleCommon
}

func (AlterRole) isStatement() {}

func (r AlterRole) String() string { return "ALTER " + r.roleText() }

func (AlterRole) ShortName() string { return "ALTER ROLE" }

func (AlterRole) GetKeyspace(def string) string { return def }

func (AlterRole) GetTableName() *FQName { return nil }

func (AlterRole) Type() types.StatementType { return types.StatementAlterRole }

// ListRoles is a LIST ROLES statement.
type ListRoles struct {
	// Of restricts the listing to a single role.
	Of string
	// NoRecurse adds NORECURSIVE.
	NoRecurse bool
}

func (ListRoles) isStatement() {}

func (l ListRoles) String() string {
	var b strings.Builder
	b.WriteString("LIST ROLES")
	if l.Of != "" {
		b.WriteString(" OF ")
		b.WriteString(l.Of)
	}
	if l.NoRecurse {
		b.WriteString(" NORECURSIVE")
	}
	return b.String()
}

func (ListRoles) ShortName() string { return "LIST ROLES" }

func (ListRoles) GetKeyspace(def string) string { return def }

func (ListRoles) GetTableName() *FQName { return nil }

func (ListRoles) Type() types.StatementType { return types.StatementListRoles }
