package cql

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/types"
)

// UserData is the shared payload of CREATE USER and ALTER USER.
type UserData struct {
	Name string
	// Password holds the raw password constant, quotes included.
	Password string
	// Superuser and NoSuperuser are separate flags; the grammar allows either
	// keyword but not both.
	Superuser   bool
	NoSuperuser bool
	IfNotExists bool
}

// userText renders everything after the CREATE or ALTER keyword.
func (u UserData) userText() string {
	var with strings.Builder
	if u.Password != "" {
		with.WriteString(" PASSWORD ")
		with.WriteString(u.Password)
	}
	if u.Superuser {
		with.WriteString(" SUPERUSER")
	}
	if u.NoSuperuser {
		with.WriteString(" NOSUPERUSER")
	}

	var b strings.Builder
	b.WriteString("USER ")
	if u.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(u.Name)
	if with.Len() > 0 {
		b.WriteString(" WITH")
		b.WriteString(with.String())
	}
	return b.String()
}

// CreateUser is a CREATE USER statement.
type CreateUser struct {
	UserData
}

func (CreateUser) isStatement() {}

func (u CreateUser) String() string { return "CREATE " + u.userText() }

func (CreateUser) ShortName() string { return "CREATE USER" }

func (CreateUser) GetKeyspace(def string) string { return def }

func (CreateUser) GetTableName() *FQName { return nil }

func (CreateUser) Type() types.StatementType { return types.StatementCreateUser }

// AlterUser is an ALTER USER statement.
type AlterUser struct {
	UserData
}

func (AlterUser) isStatement() {}

func (u AlterUser) String() string { return "ALTER " + u.userText() }

func (AlterUser) ShortName() string { return "ALTER USER" }

func (AlterUser) GetKeyspace(def string) string { return def }

func (AlterUser) GetTableName() *FQName { return nil }

func (AlterUser) Type() types.StatementType { return types.StatementAlterUser }
