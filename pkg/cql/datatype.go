package cql

import "strings"

// DataTypeName is the name of a CQL data type. Built-in type names are stored
// in upper case; custom type names keep their original spelling.
type DataTypeName string

const (
	DataTypeAscii     DataTypeName = "ASCII"
	DataTypeBigInt    DataTypeName = "BIGINT"
	DataTypeBlob      DataTypeName = "BLOB"
	DataTypeBoolean   DataTypeName = "BOOLEAN"
	DataTypeCounter   DataTypeName = "COUNTER"
	DataTypeDate      DataTypeName = "DATE"
	DataTypeDecimal   DataTypeName = "DECIMAL"
	DataTypeDouble    DataTypeName = "DOUBLE"
	DataTypeFloat     DataTypeName = "FLOAT"
	DataTypeFrozen    DataTypeName = "FROZEN"
	DataTypeInet      DataTypeName = "INET"
	DataTypeInt       DataTypeName = "INT"
	DataTypeList      DataTypeName = "LIST"
	DataTypeMap       DataTypeName = "MAP"
	DataTypeSet       DataTypeName = "SET"
	DataTypeSmallInt  DataTypeName = "SMALLINT"
	DataTypeText      DataTypeName = "TEXT"
	DataTypeTime      DataTypeName = "TIME"
	DataTypeTimestamp DataTypeName = "TIMESTAMP"
	DataTypeTimeUUID  DataTypeName = "TIMEUUID"
	DataTypeTinyInt   DataTypeName = "TINYINT"
	DataTypeTuple     DataTypeName = "TUPLE"
	DataTypeUUID      DataTypeName = "UUID"
	DataTypeVarChar   DataTypeName = "VARCHAR"
	DataTypeVarInt    DataTypeName = "VARINT"
)

var builtinDataTypes = map[DataTypeName]bool{
	DataTypeAscii: true, DataTypeBigInt: true, DataTypeBlob: true,
	DataTypeBoolean: true, DataTypeCounter: true, DataTypeDate: true,
	DataTypeDecimal: true, DataTypeDouble: true, DataTypeFloat: true,
	DataTypeFrozen: true, DataTypeInet: true, DataTypeInt: true,
	DataTypeList: true, DataTypeMap: true, DataTypeSet: true,
	DataTypeSmallInt: true, DataTypeText: true, DataTypeTime: true,
	DataTypeTimestamp: true, DataTypeTimeUUID: true, DataTypeTinyInt: true,
	DataTypeTuple: true, DataTypeUUID: true, DataTypeVarChar: true,
	DataTypeVarInt: true,
}

// DataTypeNameFrom maps a type name as written to its DataTypeName. Built-in
// names are recognized case-insensitively; anything else is a custom type and
// keeps its spelling.
func DataTypeNameFrom(name string) DataTypeName {
	upper := DataTypeName(strings.ToUpper(name))
	if builtinDataTypes[upper] {
		return upper
	}
	return DataTypeName(name)
}

// IsCustom reports whether the name is not one of the built-in types.
func (d DataTypeName) IsCustom() bool {
	return !builtinDataTypes[d]
}

func (d DataTypeName) String() string {
	return string(d)
}

// DataType is a type name with an optional parameter list, e.g. FROZEN<foo>
// or MAP<TEXT, INT>.
type DataType struct {
	Name       DataTypeName
	Definition []DataTypeName
}

func (d DataType) String() string {
	if len(d.Definition) == 0 {
		return string(d.Name)
	}
	parts := make([]string, len(d.Definition))
	for i, p := range d.Definition {
		parts[i] = string(p)
	}
	return string(d.Name) + "<" + strings.Join(parts, ", ") + ">"
}

// ColumnDefinition is a column name and type. PrimaryKey is only meaningful
// inside a CREATE TABLE column list; everywhere else it must be false.
type ColumnDefinition struct {
	Name       Identifier
	DataType   DataType
	PrimaryKey bool
}

func (c ColumnDefinition) String() string {
	if c.PrimaryKey {
		return c.Name.String() + " " + c.DataType.String() + " PRIMARY KEY"
	}
	return c.Name.String() + " " + c.DataType.String()
}
