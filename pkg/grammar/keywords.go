package grammar

import "strings"

// Keywords is the CQL keyword vocabulary, used for token classification and
// for suggesting corrections to misspelled statements.
var Keywords = []string{
	"ADD", "AGGREGATE", "ALL", "ALLOW", "ALTER", "AND", "APPLY", "AS", "ASC",
	"AUTHORIZE", "BATCH", "BEGIN", "BY", "CALLED", "CLUSTERING", "COLUMNFAMILY",
	"COMPACT", "CONTAINS", "COUNTER", "CREATE", "DELETE", "DESC", "DESCRIBE",
	"DISTINCT", "DROP", "DURABLE_WRITES", "ENTRIES", "EXECUTE", "EXISTS",
	"FALSE", "FILTERING", "FINALFUNC", "FROM", "FULL", "FUNCTION", "FUNCTIONS",
	"GRANT", "IF", "IN", "INDEX", "INITCOND", "INPUT", "INSERT", "INTO",
	"IS", "JSON", "KEY", "KEYS", "KEYSPACE", "KEYSPACES", "LANGUAGE", "LIMIT",
	"LIST", "LOGIN", "MATERIALIZED", "MODIFY", "NORECURSIVE", "NOSUPERUSER",
	"NOT", "NULL", "OF", "ON", "OPTIONS", "OR", "ORDER", "PASSWORD",
	"PERMISSION", "PERMISSIONS", "PRIMARY", "RENAME", "REPLACE", "REPLICATION",
	"RETURNS", "REVOKE", "ROLE", "ROLES", "SELECT", "SET", "SFUNC", "STORAGE",
	"STYPE", "SUPERUSER", "TABLE", "TIMESTAMP", "TO", "TRIGGER", "TRUE",
	"TRUNCATE", "TTL", "TYPE", "UNLOGGED", "UPDATE", "USE", "USER", "USING",
	"VALUES", "VIEW", "WHERE", "WITH",
}

var keywordSet = func() map[string]bool {
	m := make(map[string]bool, len(Keywords))
	for _, k := range Keywords {
		m[k] = true
	}
	return m
}()

// IsKeyword reports whether word is a CQL keyword, compared case
// insensitively.
func IsKeyword(word string) bool {
	return keywordSet[strings.ToUpper(word)]
}
