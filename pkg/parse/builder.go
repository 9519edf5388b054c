package parse

import (
	"strconv"
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/cql"
	"github.com/tentacle-scylla/cqlast/pkg/grammar"
)

// statementFromNode turns one statement node of the syntax tree into its
// typed form. Nodes that failed to parse come back as cql.Unknown.
func statementFromNode(src string, node *grammar.Node) cql.Statement {
	switch node.Kind() {
	case grammar.KindSelect:
		return buildSelect(src, node)
	case grammar.KindInsert:
		return buildInsert(src, node)
	case grammar.KindUpdate:
		return buildUpdate(src, node)
	case grammar.KindDelete:
		return buildDelete(src, node)
	case grammar.KindUse:
		return cql.Use{Keyspace: childText(src, node, grammar.KindIdentifier)}
	case grammar.KindTruncate:
		return cql.Truncate{Table: cql.ParseFQName(childText(src, node, grammar.KindTableName))}
	case grammar.KindApplyBatch:
		return cql.ApplyBatch{}
	case grammar.KindCreateKeyspace:
		return cql.CreateKeyspace{KeyspaceData: buildKeyspaceData(src, node)}
	case grammar.KindAlterKeyspace:
		return cql.AlterKeyspace{KeyspaceData: buildKeyspaceData(src, node)}
	case grammar.KindCreateTable:
		return buildCreateTable(src, node)
	case grammar.KindAlterTable:
		return buildAlterTable(src, node)
	case grammar.KindCreateIndex:
		return buildCreateIndex(src, node)
	case grammar.KindCreateView:
		return buildCreateMaterializedView(src, node)
	case grammar.KindAlterView:
		return buildAlterMaterializedView(src, node)
	case grammar.KindCreateType:
		return buildCreateType(src, node)
	case grammar.KindAlterType:
		return buildAlterType(src, node)
	case grammar.KindCreateFunction:
		return buildCreateFunction(src, node)
	case grammar.KindCreateAggregate:
		return buildCreateAggregate(src, node)
	case grammar.KindCreateTrigger:
		return buildCreateTrigger(src, node)
	case grammar.KindDropTrigger:
		return buildDropTrigger(src, node)
	case grammar.KindCreateRole:
		return cql.CreateRole{RoleCommon: buildRoleCommon(src, node)}
	case grammar.KindAlterRole:
		return cql.AlterRole{RoleCommon: buildRoleCommon(src, node)}
	case grammar.KindCreateUser:
		return cql.CreateUser{UserData: buildUserData(src, node)}
	case grammar.KindAlterUser:
		return cql.AlterUser{UserData: buildUserData(src, node)}
	case grammar.KindGrant:
		return cql.Grant{Privilege: buildPrivilege(src, node)}
	case grammar.KindRevoke:
		return cql.Revoke{Privilege: buildPrivilege(src, node)}
	case grammar.KindListPermissions:
		return cql.ListPermissions{Privilege: buildPrivilege(src, node)}
	case grammar.KindListRoles:
		return buildListRoles(src, node)
	case grammar.KindDropAggregate:
		return cql.DropAggregate{CommonDrop: buildCommonDrop(src, node)}
	case grammar.KindDropFunction:
		return cql.DropFunction{CommonDrop: buildCommonDrop(src, node)}
	case grammar.KindDropIndex:
		return cql.DropIndex{CommonDrop: buildCommonDrop(src, node)}
	case grammar.KindDropKeyspace:
		return cql.DropKeyspace{CommonDrop: buildCommonDrop(src, node)}
	case grammar.KindDropView:
		return cql.DropMaterializedView{CommonDrop: buildCommonDrop(src, node)}
	case grammar.KindDropRole:
		return cql.DropRole{CommonDrop: buildCommonDrop(src, node)}
	case grammar.KindDropTable:
		return cql.DropTable{CommonDrop: buildCommonDrop(src, node)}
	case grammar.KindDropType:
		return cql.DropType{CommonDrop: buildCommonDrop(src, node)}
	case grammar.KindDropUser:
		return cql.DropUser{CommonDrop: buildCommonDrop(src, node)}
	}
	return cql.Unknown{Query: strings.TrimSpace(node.Content(src))}
}

// childNodes collects the direct children of a node with a cursor walk.
func childNodes(n *grammar.Node) []*grammar.Node {
	cursor := n.Walk()
	if !cursor.GotoFirstChild() {
		return nil
	}
	var out []*grammar.Node
	for {
		out = append(out, cursor.Node())
		if !cursor.GotoNextSibling() {
			break
		}
	}
	return out
}

// childText returns the text of the first child of the given kind, or "".
func childText(src string, n *grammar.Node, kind string) string {
	for _, c := range childNodes(n) {
		if c.Kind() == kind {
			return c.Content(src)
		}
	}
	return ""
}

func buildOperand(src string, n *grammar.Node) cql.Operand {
	switch n.Kind() {
	case grammar.KindConstant:
		return cql.ConstOperand(n.Content(src))
	case grammar.KindNull:
		return cql.NullOperand()
	case grammar.KindBindMarker:
		return cql.ParamOperand(n.Content(src))
	case grammar.KindFunctionCall:
		return cql.FuncOperand(n.Content(src))
	case grammar.KindColumn:
		return cql.ColumnOperand(cql.ParseIdentifier(n.Content(src)))
	case grammar.KindMapLiteral:
		return cql.MapOperand(buildMapEntries(src, n))
	case grammar.KindSetLiteral:
		return cql.SetOperand(childTexts(src, n))
	case grammar.KindListLiteral:
		return cql.ListOperand(childTexts(src, n))
	case grammar.KindTupleLiteral:
		values := childNodes(n)
		tuple := make([]cql.Operand, len(values))
		for i, v := range values {
			tuple[i] = buildOperand(src, v)
		}
		return cql.TupleOperand(tuple)
	}
	return cql.ConstOperand(n.Content(src))
}

func childTexts(src string, n *grammar.Node) []string {
	children := childNodes(n)
	out := make([]string, len(children))
	for i, c := range children {
		out[i] = c.Content(src)
	}
	return out
}

// buildMapEntries reads the flat key, value, ... child list of a map-shaped
// node.
func buildMapEntries(src string, n *grammar.Node) []cql.MapEntry {
	children := childNodes(n)
	var pairs []cql.MapEntry
	for i := 0; i+1 < len(children); i += 2 {
		pairs = append(pairs, cql.MapEntry{
			Key:   children[i].Content(src),
			Value: children[i+1].Content(src),
		})
	}
	return pairs
}

var relationOperators = map[string]cql.RelationOperator{
	"<":            cql.OperatorLessThan,
	"<=":           cql.OperatorLessThanOrEqual,
	"=":            cql.OperatorEqual,
	"<>":           cql.OperatorNotEqual,
	"!=":           cql.OperatorNotEqual,
	">=":           cql.OperatorGreaterThanOrEqual,
	">":            cql.OperatorGreaterThan,
	"IN":           cql.OperatorIn,
	"CONTAINS":     cql.OperatorContains,
	"CONTAINS KEY": cql.OperatorContainsKey,
	"IS NOT":       cql.OperatorIsNot,
}

func buildRelations(src string, n *grammar.Node) []cql.RelationElement {
	var out []cql.RelationElement
	for _, rel := range childNodes(n) {
		children := childNodes(rel)
		if len(children) < 2 {
			continue
		}
		element := cql.RelationElement{Obj: buildOperand(src, children[0])}
		opText := strings.ToUpper(strings.Join(strings.Fields(children[1].Content(src)), " "))
		oper, ok := relationOperators[opText]
		if !ok {
			// The grammar cannot emit an operator outside this table.
			panic("cqlast: unknown relation operator " + opText)
		}
		element.Oper = oper
		for _, value := range children[2:] {
			element.Value = append(element.Value, buildOperand(src, value))
		}
		out = append(out, element)
	}
	return out
}

// buildUsing reads a USING TTL / TIMESTAMP clause. Values that do not fit a
// uint64 are dropped.
func buildUsing(src string, n *grammar.Node) *cql.TtlTimestamp {
	using := &cql.TtlTimestamp{}
	for _, part := range childNodes(n) {
		value, err := strconv.ParseUint(innerText(src, part), 10, 64)
		if err != nil {
			continue
		}
		switch part.Kind() {
		case grammar.KindTTL:
			v := value
			using.TTL = &v
		case grammar.KindTimestamp:
			v := value
			using.Timestamp = &v
		}
	}
	return using
}

// innerText returns the text of a node's single child.
func innerText(src string, n *grammar.Node) string {
	if n.ChildCount() == 0 {
		return n.Content(src)
	}
	return n.Child(0).Content(src)
}

func buildBeginBatch(src string, n *grammar.Node) *cql.BeginBatch {
	batch := &cql.BeginBatch{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindUnlogged:
			batch.Type = cql.BatchUnlogged
		case grammar.KindCounter:
			batch.Type = cql.BatchCounter
		case grammar.KindUsingClause:
			batch.Timestamp = buildUsing(src, c).Timestamp
		}
	}
	return batch
}

func buildSelect(src string, n *grammar.Node) cql.Statement {
	stmt := cql.Select{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindDistinct:
			stmt.Distinct = true
		case grammar.KindJSONMarker:
			stmt.JSON = true
		case grammar.KindSelectElement:
			stmt.Columns = append(stmt.Columns, buildSelectElement(src, c))
		case grammar.KindTableName:
			stmt.TableName = cql.ParseFQName(c.Content(src))
		case grammar.KindWhereSpec:
			stmt.Where = buildRelations(src, c)
		case grammar.KindOrderSpec:
			order := cql.OrderClause{Name: cql.ParseIdentifier(innerText(src, c))}
			for _, part := range childNodes(c) {
				if part.Kind() == grammar.KindDesc {
					order.Desc = true
				}
			}
			stmt.Order = &order
		case grammar.KindLimitSpec:
			if limit, err := strconv.ParseInt(innerText(src, c), 10, 32); err == nil {
				v := int32(limit)
				stmt.Limit = &v
			}
		case grammar.KindAllowFiltering:
			stmt.Filtering = true
		}
	}
	return stmt
}

func buildSelectElement(src string, n *grammar.Node) cql.SelectElement {
	children := childNodes(n)
	if len(children) == 0 {
		return cql.SelectElement{Kind: cql.SelectStar}
	}
	element := cql.SelectElement{Kind: cql.SelectColumn, Name: children[0].Content(src)}
	if children[0].Kind() == grammar.KindFunctionCall {
		element.Kind = cql.SelectFunction
	}
	if len(children) > 1 {
		element.Alias = children[1].Content(src)
	}
	return element
}

func buildInsert(src string, n *grammar.Node) cql.Statement {
	stmt := cql.Insert{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindBeginBatch:
			stmt.BeginBatch = buildBeginBatch(src, c)
		case grammar.KindTableName:
			stmt.TableName = cql.ParseFQName(c.Content(src))
		case grammar.KindColumnList:
			for _, col := range childNodes(c) {
				stmt.Columns = append(stmt.Columns, cql.ParseIdentifier(col.Content(src)))
			}
		case grammar.KindExpressionList:
			for _, value := range childNodes(c) {
				stmt.Values.Values = append(stmt.Values.Values, buildOperand(src, value))
			}
		case grammar.KindConstant:
			stmt.Values.JSON = c.Content(src)
		case grammar.KindIfNotExists:
			stmt.IfNotExists = true
		case grammar.KindUsingClause:
			stmt.UsingTTL = buildUsing(src, c)
		}
	}
	return stmt
}

func buildUpdate(src string, n *grammar.Node) cql.Statement {
	stmt := cql.Update{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindBeginBatch:
			stmt.BeginBatch = buildBeginBatch(src, c)
		case grammar.KindTableName:
			stmt.TableName = cql.ParseFQName(c.Content(src))
		case grammar.KindUsingClause:
			stmt.UsingTTL = buildUsing(src, c)
		case grammar.KindAssignment:
			stmt.Assignments = append(stmt.Assignments, buildAssignment(src, c))
		case grammar.KindWhereSpec:
			stmt.Where = buildRelations(src, c)
		case grammar.KindIfSpec:
			stmt.IfClause = buildRelations(src, c)
		case grammar.KindIfExists:
			stmt.IfExists = true
		}
	}
	return stmt
}

func buildAssignment(src string, n *grammar.Node) cql.AssignmentElement {
	element := cql.AssignmentElement{}
	seenName := false
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindColumn:
			if !seenName {
				element.Name.Column = cql.ParseIdentifier(c.Content(src))
				seenName = true
				continue
			}
			element.Value = buildOperand(src, c)
		case grammar.KindIndexExpr:
			element.Name.Idx = c.Content(src)
		case grammar.KindAssignmentPlus:
			element.Operator = &cql.AssignmentOperator{
				Kind:    cql.AssignmentPlus,
				Operand: buildOperand(src, c.Child(0)),
			}
		case grammar.KindAssignmentMinus:
			element.Operator = &cql.AssignmentOperator{
				Kind:    cql.AssignmentMinus,
				Operand: buildOperand(src, c.Child(0)),
			}
		default:
			element.Value = buildOperand(src, c)
		}
	}
	return element
}

func buildDelete(src string, n *grammar.Node) cql.Statement {
	stmt := cql.Delete{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindBeginBatch:
			stmt.BeginBatch = buildBeginBatch(src, c)
		case grammar.KindDeleteColumn:
			col := cql.IndexedColumn{}
			for _, part := range childNodes(c) {
				switch part.Kind() {
				case grammar.KindColumn:
					col.Column = cql.ParseIdentifier(part.Content(src))
				case grammar.KindIndexExpr:
					col.Idx = part.Content(src)
				}
			}
			stmt.Columns = append(stmt.Columns, col)
		case grammar.KindTableName:
			stmt.TableName = cql.ParseFQName(c.Content(src))
		case grammar.KindUsingClause:
			stmt.Timestamp = buildUsing(src, c).Timestamp
		case grammar.KindWhereSpec:
			stmt.Where = buildRelations(src, c)
		case grammar.KindIfSpec:
			stmt.IfClause = buildRelations(src, c)
		case grammar.KindIfExists:
			stmt.IfExists = true
		}
	}
	return stmt
}

func buildKeyspaceData(src string, n *grammar.Node) cql.KeyspaceData {
	data := cql.KeyspaceData{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindIfNotExists:
			data.IfNotExists = true
		case grammar.KindIdentifier:
			data.Name = cql.ParseIdentifier(c.Content(src))
		case grammar.KindReplicationList:
			data.Replication = buildMapEntries(src, c)
		case grammar.KindDurableWrites:
			v := strings.EqualFold(innerText(src, c), "TRUE")
			data.DurableWrites = &v
		}
	}
	return data
}

func buildDataType(src string, n *grammar.Node) cql.DataType {
	text := strings.TrimSpace(n.Content(src))
	open := strings.IndexByte(text, '<')
	if open < 0 || !strings.HasSuffix(text, ">") {
		return cql.DataType{Name: cql.DataTypeNameFrom(text)}
	}
	dt := cql.DataType{Name: cql.DataTypeNameFrom(strings.TrimSpace(text[:open]))}
	for _, param := range splitTypeParams(text[open+1 : len(text)-1]) {
		dt.Definition = append(dt.Definition, canonicalTypeName(param))
	}
	return dt
}

// canonicalTypeName canonicalizes a type parameter, recursing into angle
// brackets so nested builtins uppercase too (frozen<list<text>> and the like).
func canonicalTypeName(text string) cql.DataTypeName {
	open := strings.IndexByte(text, '<')
	if open < 0 || !strings.HasSuffix(text, ">") {
		return cql.DataTypeNameFrom(text)
	}
	head := cql.DataTypeNameFrom(strings.TrimSpace(text[:open]))
	params := splitTypeParams(text[open+1 : len(text)-1])
	for i, p := range params {
		params[i] = string(canonicalTypeName(p))
	}
	return cql.DataTypeName(string(head) + "<" + strings.Join(params, ", ") + ">")
}

// splitTypeParams splits a type parameter list on top-level commas.
func splitTypeParams(inner string) []string {
	var params []string
	depth, last := 0, 0
	flush := func(end int) {
		if param := strings.TrimSpace(inner[last:end]); param != "" {
			params = append(params, param)
		}
	}
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				flush(i)
				last = i + 1
			}
		}
	}
	flush(len(inner))
	return params
}

func buildColumnDefinition(src string, n *grammar.Node) cql.ColumnDefinition {
	def := cql.ColumnDefinition{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindColumn:
			def.Name = cql.ParseIdentifier(c.Content(src))
		case grammar.KindDataType:
			def.DataType = buildDataType(src, c)
		case grammar.KindPrimaryKeyFlag:
			def.PrimaryKey = true
		}
	}
	return def
}

func buildPrimaryKey(src string, n *grammar.Node) cql.PrimaryKey {
	key := cql.PrimaryKey{}
	for _, list := range childNodes(n) {
		cols := make([]cql.Identifier, 0, list.ChildCount())
		for _, col := range childNodes(list) {
			cols = append(cols, cql.ParseIdentifier(col.Content(src)))
		}
		switch list.Kind() {
		case grammar.KindPartitionKeyList:
			key.Partition = cols
		case grammar.KindClusteringKeyList:
			key.Clustering = cols
		}
	}
	return key
}

func buildWithClause(src string, n *grammar.Node) []cql.WithItem {
	var items []cql.WithItem
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindTableOption:
			items = append(items, buildTableOption(src, c))
		case grammar.KindClusteringOrder:
			order := cql.OrderClause{Name: cql.ParseIdentifier(innerText(src, c))}
			for _, part := range childNodes(c) {
				if part.Kind() == grammar.KindDesc {
					order.Desc = true
				}
			}
			items = append(items, cql.WithItem{Kind: cql.WithClusterOrder, Order: order})
		case grammar.KindCompactStorage:
			items = append(items, cql.WithItem{Kind: cql.WithCompactStorage})
		}
	}
	return items
}

func buildTableOption(src string, n *grammar.Node) cql.WithItem {
	item := cql.WithItem{Kind: cql.WithOption}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindOptionName:
			item.Key = c.Content(src)
		case grammar.KindOptionHash:
			item.Value = cql.OptionValue{Map: buildMapEntries(src, c), IsMap: true}
		default:
			item.Value = cql.OptionValue{Literal: c.Content(src)}
		}
	}
	if strings.EqualFold(item.Key, "ID") {
		return cql.WithItem{Kind: cql.WithID, ID: item.Value.Literal}
	}
	return item
}

func buildCreateTable(src string, n *grammar.Node) cql.Statement {
	stmt := cql.CreateTable{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindIfNotExists:
			stmt.IfNotExists = true
		case grammar.KindTableName:
			stmt.Name = cql.ParseFQName(c.Content(src))
		case grammar.KindColumnDefinition:
			stmt.Columns = append(stmt.Columns, buildColumnDefinition(src, c))
		case grammar.KindPrimaryKeyElement:
			key := buildPrimaryKey(src, c)
			stmt.Key = &key
		case grammar.KindWithElement:
			stmt.WithClause = buildWithClause(src, c)
		}
	}
	return stmt
}

func buildAlterTable(src string, n *grammar.Node) cql.Statement {
	stmt := cql.AlterTable{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindTableName:
			stmt.Name = cql.ParseFQName(c.Content(src))
		case grammar.KindAlterTableAdd:
			stmt.Operation.Kind = cql.AlterTableAdd
			for _, def := range childNodes(c) {
				stmt.Operation.Columns = append(stmt.Operation.Columns, buildColumnDefinition(src, def))
			}
		case grammar.KindAlterTableDrop:
			stmt.Operation.Kind = cql.AlterTableDropColumns
			for _, col := range childNodes(c) {
				stmt.Operation.Dropped = append(stmt.Operation.Dropped, cql.ParseIdentifier(col.Content(src)))
			}
		case grammar.KindAlterTableDropCS:
			stmt.Operation.Kind = cql.AlterTableDropCompactStorage
		case grammar.KindAlterTableRename:
			stmt.Operation.Kind = cql.AlterTableRename
			pair := childNodes(c)
			if len(pair) == 2 {
				stmt.Operation.From = cql.ParseIdentifier(pair[0].Content(src))
				stmt.Operation.To = cql.ParseIdentifier(pair[1].Content(src))
			}
		case grammar.KindAlterTableWith:
			stmt.Operation.Kind = cql.AlterTableWith
			if with := c.Child(0); with != nil {
				stmt.Operation.With = buildWithClause(src, with)
			}
		}
	}
	return stmt
}

func buildCreateIndex(src string, n *grammar.Node) cql.Statement {
	stmt := cql.CreateIndex{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindIfNotExists:
			stmt.IfNotExists = true
		case grammar.KindIdentifier:
			stmt.Name = c.Content(src)
		case grammar.KindTableName:
			stmt.Table = cql.ParseFQName(c.Content(src))
		case grammar.KindIndexColumn:
			stmt.Column = cql.IndexColumnType{Kind: cql.IndexColumn, Name: innerText(src, c)}
		case grammar.KindIndexKeys:
			stmt.Column = cql.IndexColumnType{Kind: cql.IndexKeys, Name: innerText(src, c)}
		case grammar.KindIndexEntries:
			stmt.Column = cql.IndexColumnType{Kind: cql.IndexEntries, Name: innerText(src, c)}
		case grammar.KindIndexFull:
			stmt.Column = cql.IndexColumnType{Kind: cql.IndexFull, Name: innerText(src, c)}
		}
	}
	return stmt
}

func buildCreateMaterializedView(src string, n *grammar.Node) cql.Statement {
	stmt := cql.CreateMaterializedView{}
	seenName := false
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindIfNotExists:
			stmt.IfNotExists = true
		case grammar.KindTableName:
			if !seenName {
				stmt.Name = cql.ParseFQName(c.Content(src))
				seenName = true
			} else {
				stmt.Table = cql.ParseFQName(c.Content(src))
			}
		case grammar.KindColumnList:
			for _, col := range childNodes(c) {
				stmt.Columns = append(stmt.Columns, cql.ParseIdentifier(col.Content(src)))
			}
		case grammar.KindWhereSpec:
			stmt.Where = buildRelations(src, c)
		case grammar.KindPrimaryKeyElement:
			stmt.Key = buildPrimaryKey(src, c)
		case grammar.KindWithElement:
			stmt.WithClause = buildWithClause(src, c)
		}
	}
	return stmt
}

func buildAlterMaterializedView(src string, n *grammar.Node) cql.Statement {
	stmt := cql.AlterMaterializedView{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindTableName:
			stmt.Name = cql.ParseFQName(c.Content(src))
		case grammar.KindWithElement:
			stmt.WithClause = buildWithClause(src, c)
		}
	}
	return stmt
}

func buildCreateType(src string, n *grammar.Node) cql.Statement {
	stmt := cql.CreateType{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindIfNotExists:
			stmt.IfNotExists = true
		case grammar.KindTableName:
			stmt.Name = cql.ParseFQName(c.Content(src))
		case grammar.KindColumnDefinition:
			stmt.Columns = append(stmt.Columns, buildColumnDefinition(src, c))
		}
	}
	return stmt
}

func buildAlterType(src string, n *grammar.Node) cql.Statement {
	stmt := cql.AlterType{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindTableName:
			stmt.Name = cql.ParseFQName(c.Content(src))
		case grammar.KindAlterTypeAlterColumn:
			stmt.Operation.Kind = cql.AlterTypeAlterColumn
			for _, part := range childNodes(c) {
				switch part.Kind() {
				case grammar.KindColumn:
					stmt.Operation.Column = cql.ParseIdentifier(part.Content(src))
				case grammar.KindDataType:
					stmt.Operation.DataType = buildDataType(src, part)
				}
			}
		case grammar.KindAlterTypeAdd:
			stmt.Operation.Kind = cql.AlterTypeAdd
			for _, def := range childNodes(c) {
				stmt.Operation.Added = append(stmt.Operation.Added, buildColumnDefinition(src, def))
			}
		case grammar.KindAlterTypeRename:
			stmt.Operation.Kind = cql.AlterTypeRename
			for _, pair := range childNodes(c) {
				cols := childNodes(pair)
				if len(cols) != 2 {
					continue
				}
				stmt.Operation.Renamed = append(stmt.Operation.Renamed, cql.AlterTypeRenamePair{
					From: cql.ParseIdentifier(cols[0].Content(src)),
					To:   cql.ParseIdentifier(cols[1].Content(src)),
				})
			}
		}
	}
	return stmt
}

func buildCreateFunction(src string, n *grammar.Node) cql.Statement {
	stmt := cql.CreateFunction{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindOrReplace:
			stmt.OrReplace = true
		case grammar.KindIfNotExists:
			stmt.IfNotExists = true
		case grammar.KindTableName:
			stmt.Name = cql.ParseFQName(c.Content(src))
		case grammar.KindColumnDefinition:
			stmt.Params = append(stmt.Params, buildColumnDefinition(src, c))
		case grammar.KindReturnsNullOnNull:
			stmt.ReturnsNull = true
		case grammar.KindCalledOnNull:
			stmt.ReturnsNull = false
		case grammar.KindDataType:
			stmt.Returns = buildDataType(src, c)
		case grammar.KindIdentifier:
			stmt.Language = c.Content(src)
		case grammar.KindConstant:
			stmt.Body = c.Content(src)
		}
	}
	return stmt
}

func buildCreateAggregate(src string, n *grammar.Node) cql.Statement {
	stmt := cql.CreateAggregate{}
	dataTypes := 0
	identifiers := 0
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindOrReplace:
			stmt.OrReplace = true
		case grammar.KindIfNotExists:
			stmt.IfNotExists = true
		case grammar.KindTableName:
			stmt.Name = cql.ParseFQName(c.Content(src))
		case grammar.KindDataType:
			if dataTypes == 0 {
				stmt.DataType = buildDataType(src, c)
			} else {
				stmt.SType = buildDataType(src, c)
			}
			dataTypes++
		case grammar.KindIdentifier:
			if identifiers == 0 {
				stmt.SFunc = c.Content(src)
			} else {
				stmt.FinalFunc = c.Content(src)
			}
			identifiers++
		case grammar.KindConstant, grammar.KindInitCondList, grammar.KindInitCondHash:
			stmt.InitCond = buildInitCond(src, c)
		}
	}
	return stmt
}

func buildInitCond(src string, n *grammar.Node) cql.InitCondition {
	switch n.Kind() {
	case grammar.KindInitCondList:
		cond := cql.InitCondition{Kind: cql.InitCondList}
		for _, c := range childNodes(n) {
			cond.Values = append(cond.Values, buildInitCond(src, c))
		}
		return cond
	case grammar.KindInitCondHash:
		cond := cql.InitCondition{Kind: cql.InitCondMap}
		children := childNodes(n)
		for i := 0; i+1 < len(children); i += 2 {
			cond.Pairs = append(cond.Pairs, cql.InitCondPair{
				Key:   children[i].Content(src),
				Value: buildInitCond(src, children[i+1]),
			})
		}
		return cond
	}
	return cql.InitCondition{Kind: cql.InitCondConstant, Constant: n.Content(src)}
}

func buildCreateTrigger(src string, n *grammar.Node) cql.Statement {
	stmt := cql.CreateTrigger{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindIfNotExists:
			stmt.IfNotExists = true
		case grammar.KindTableName:
			stmt.Name = cql.ParseFQName(c.Content(src))
		case grammar.KindConstant:
			stmt.Class = c.Content(src)
		}
	}
	return stmt
}

func buildDropTrigger(src string, n *grammar.Node) cql.Statement {
	stmt := cql.DropTrigger{}
	seenName := false
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindIfExists:
			stmt.IfExists = true
		case grammar.KindTableName:
			if !seenName {
				stmt.Name = cql.ParseFQName(c.Content(src))
				seenName = true
			} else {
				stmt.Table = cql.ParseFQName(c.Content(src))
			}
		}
	}
	return stmt
}

func buildCommonDrop(src string, n *grammar.Node) cql.CommonDrop {
	drop := cql.CommonDrop{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindIfExists:
			drop.IfExists = true
		case grammar.KindTableName:
			drop.Name = cql.ParseFQName(c.Content(src))
		}
	}
	return drop
}

func buildRoleCommon(src string, n *grammar.Node) cql.RoleCommon {
	role := cql.RoleCommon{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindIfNotExists:
			role.IfNotExists = true
		case grammar.KindIdentifier:
			role.Name = cql.ParseIdentifier(c.Content(src))
		case grammar.KindRolePassword:
			role.Password = innerText(src, c)
		case grammar.KindRoleSuper:
			v := strings.EqualFold(innerText(src, c), "TRUE")
			role.Superuser = &v
		case grammar.KindRoleLogin:
			v := strings.EqualFold(innerText(src, c), "TRUE")
			role.Login = &v
		case grammar.KindRoleOptions:
			if hash := c.Child(0); hash != nil {
				role.Options = buildMapEntries(src, hash)
			}
		}
	}
	return role
}

func buildUserData(src string, n *grammar.Node) cql.UserData {
	user := cql.UserData{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindIfNotExists:
			user.IfNotExists = true
		case grammar.KindIdentifier:
			user.Name = c.Content(src)
		case grammar.KindUserPassword:
			user.Password = innerText(src, c)
		case grammar.KindSuperuser:
			user.Superuser = true
		case grammar.KindNoSuperuser:
			user.NoSuperuser = true
		}
	}
	return user
}

var privilegeTypes = map[string]cql.PrivilegeType{
	"ALL":       cql.PrivilegeAll,
	"ALTER":     cql.PrivilegeAlter,
	"AUTHORIZE": cql.PrivilegeAuthorize,
	"DESCRIBE":  cql.PrivilegeDescribe,
	"EXECUTE":   cql.PrivilegeExecute,
	"CREATE":    cql.PrivilegeCreate,
	"DROP":      cql.PrivilegeDrop,
	"MODIFY":    cql.PrivilegeModify,
	"SELECT":    cql.PrivilegeSelect,
}

func buildPrivilege(src string, n *grammar.Node) cql.Privilege {
	priv := cql.Privilege{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindPrivilege:
			first := strings.ToUpper(strings.Fields(c.Content(src))[0])
			priv.Privilege = privilegeTypes[first]
		case grammar.KindIdentifier:
			priv.Role = c.Content(src)
		default:
			if resource := buildResource(src, c); resource != nil {
				priv.Resource = resource
			}
		}
	}
	return priv
}

func buildResource(src string, n *grammar.Node) *cql.Resource {
	switch n.Kind() {
	case grammar.KindResourceAllFunctions:
		return &cql.Resource{Kind: cql.ResourceAllFunctions, Text: childText(src, n, grammar.KindIdentifier)}
	case grammar.KindResourceAllKeyspaces:
		return &cql.Resource{Kind: cql.ResourceAllKeyspaces}
	case grammar.KindResourceAllRoles:
		return &cql.Resource{Kind: cql.ResourceAllRoles}
	case grammar.KindResourceFunction:
		return &cql.Resource{Kind: cql.ResourceFunction, Name: cql.ParseFQName(innerText(src, n))}
	case grammar.KindResourceKeyspace:
		return &cql.Resource{Kind: cql.ResourceKeyspace, Text: innerText(src, n)}
	case grammar.KindResourceRole:
		return &cql.Resource{Kind: cql.ResourceRole, Text: innerText(src, n)}
	case grammar.KindResourceTable:
		return &cql.Resource{Kind: cql.ResourceTable, Name: cql.ParseFQName(innerText(src, n))}
	}
	return nil
}

func buildListRoles(src string, n *grammar.Node) cql.Statement {
	stmt := cql.ListRoles{}
	for _, c := range childNodes(n) {
		switch c.Kind() {
		case grammar.KindIdentifier:
			stmt.Of = c.Content(src)
		case grammar.KindNoRecursive:
			stmt.NoRecurse = true
		}
	}
	return stmt
}
