package grammar

func (p *parser) createStatement() (*Node, *ParseError) {
	start := p.cur().Start
	p.expect("CREATE")
	switch {
	case p.at("KEYSPACE"):
		return p.keyspaceStatement(KindCreateKeyspace, start)
	case p.at("TABLE") || p.at("COLUMNFAMILY"):
		return p.createTable(start)
	case p.at("INDEX"):
		return p.createIndex(start)
	case p.at("MATERIALIZED"):
		return p.createMaterializedView(start)
	case p.at("TYPE"):
		return p.createType(start)
	case p.at("TRIGGER"):
		return p.createTrigger(start)
	case p.at("ROLE"):
		return p.roleStatement(KindCreateRole, start)
	case p.at("USER"):
		return p.userStatement(KindCreateUser, start)
	case p.at("OR") || p.at("FUNCTION") || p.at("AGGREGATE"):
		var orReplace *Node
		if p.at("OR") {
			orStart := p.cur().Start
			p.pos++
			if err := p.expect("REPLACE"); err != nil {
				return nil, err
			}
			orReplace = p.markerSince(KindOrReplace, orStart)
		}
		if p.at("FUNCTION") {
			return p.createFunction(start, orReplace)
		}
		if p.at("AGGREGATE") {
			return p.createAggregate(start, orReplace)
		}
		return nil, p.errorf("expected FUNCTION or AGGREGATE")
	}
	return nil, p.errorf("unrecognized CREATE statement")
}

func (p *parser) alterStatement() (*Node, *ParseError) {
	start := p.cur().Start
	p.expect("ALTER")
	switch {
	case p.at("KEYSPACE"):
		return p.keyspaceStatement(KindAlterKeyspace, start)
	case p.at("TABLE") || p.at("COLUMNFAMILY"):
		return p.alterTable(start)
	case p.at("MATERIALIZED"):
		return p.alterMaterializedView(start)
	case p.at("TYPE"):
		return p.alterType(start)
	case p.at("ROLE"):
		return p.roleStatement(KindAlterRole, start)
	case p.at("USER"):
		return p.userStatement(KindAlterUser, start)
	}
	return nil, p.errorf("unrecognized ALTER statement")
}

func (p *parser) dropStatement() (*Node, *ParseError) {
	start := p.cur().Start
	p.expect("DROP")

	var kind string
	switch {
	case p.at("AGGREGATE"):
		kind = KindDropAggregate
	case p.at("FUNCTION"):
		kind = KindDropFunction
	case p.at("INDEX"):
		kind = KindDropIndex
	case p.at("KEYSPACE"):
		kind = KindDropKeyspace
	case p.at("MATERIALIZED"):
		kind = KindDropView
	case p.at("ROLE"):
		kind = KindDropRole
	case p.at("TABLE") || p.at("COLUMNFAMILY"):
		kind = KindDropTable
	case p.at("TRIGGER"):
		kind = KindDropTrigger
	case p.at("TYPE"):
		kind = KindDropType
	case p.at("USER"):
		kind = KindDropUser
	default:
		return nil, p.errorf("unrecognized DROP statement")
	}
	p.pos++
	if kind == KindDropView {
		if err := p.expect("VIEW"); err != nil {
			return nil, err
		}
	}

	var children []*Node
	ifExists, err := p.ifExists()
	if err != nil {
		return nil, err
	}
	if ifExists != nil {
		children = append(children, ifExists)
	}

	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, name)

	if kind == KindDropTrigger {
		if err := p.expect("ON"); err != nil {
			return nil, err
		}
		table, err := p.tableName()
		if err != nil {
			return nil, err
		}
		children = append(children, table)
	}
	return p.node(kind, start, children), nil
}

func (p *parser) ifExists() (*Node, *ParseError) {
	if !p.at("IF") {
		return nil, nil
	}
	start := p.cur().Start
	p.pos++
	if err := p.expect("EXISTS"); err != nil {
		return nil, err
	}
	return p.markerSince(KindIfExists, start), nil
}

func (p *parser) ifNotExists() (*Node, *ParseError) {
	if !p.at("IF") {
		return nil, nil
	}
	start := p.cur().Start
	p.pos++
	if err := p.expect("NOT"); err != nil {
		return nil, err
	}
	if err := p.expect("EXISTS"); err != nil {
		return nil, err
	}
	return p.markerSince(KindIfNotExists, start), nil
}

// keyspaceStatement parses the body shared by CREATE KEYSPACE and ALTER
// KEYSPACE; the keyspace keyword is still current.
func (p *parser) keyspaceStatement(kind string, start int) (*Node, *ParseError) {
	p.pos++
	var children []*Node
	if kind == KindCreateKeyspace {
		ine, err := p.ifNotExists()
		if err != nil {
			return nil, err
		}
		if ine != nil {
			children = append(children, ine)
		}
	}
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	children = append(children, name)

	if err := p.expect("WITH"); err != nil {
		return nil, err
	}
	for {
		switch {
		case p.at("REPLICATION"):
			repStart := p.cur().Start
			p.pos++
			if _, ok := p.acceptKind(TokenEQ); !ok {
				return nil, p.errorf("expected = after REPLICATION")
			}
			pairs, err := p.hashPairs()
			if err != nil {
				return nil, err
			}
			children = append(children, p.node(KindReplicationList, repStart, pairs))
		case p.at("DURABLE_WRITES"):
			dwStart := p.cur().Start
			p.pos++
			if _, ok := p.acceptKind(TokenEQ); !ok {
				return nil, p.errorf("expected = after DURABLE_WRITES")
			}
			if !p.at("TRUE") && !p.at("FALSE") {
				return nil, p.errorf("expected TRUE or FALSE")
			}
			value := leaf(KindConstant, p.cur())
			p.pos++
			children = append(children, p.node(KindDurableWrites, dwStart, []*Node{value}))
		default:
			return nil, p.errorf("unrecognized keyspace option")
		}
		if !p.accept("AND") {
			break
		}
	}
	return p.node(kind, start, children), nil
}

// hashPairs parses { k : v, ... } into a flat key, value, ... node list.
func (p *parser) hashPairs() ([]*Node, *ParseError) {
	if _, ok := p.acceptKind(TokenLBrace); !ok {
		return nil, p.errorf("expected {")
	}
	var pairs []*Node
	if _, ok := p.acceptKind(TokenRBrace); ok {
		return pairs, nil
	}
	for {
		key, err := p.operand()
		if err != nil {
			return nil, err
		}
		if _, ok := p.acceptKind(TokenColon); !ok {
			return nil, p.errorf("expected : in option map")
		}
		value, err := p.operand()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p.rawOperand(key), p.rawOperand(value))
		if _, ok := p.acceptKind(TokenComma); !ok {
			break
		}
	}
	if _, ok := p.acceptKind(TokenRBrace); !ok {
		return nil, p.errorf("expected }")
	}
	return pairs, nil
}

func (p *parser) createTable(start int) (*Node, *ParseError) {
	p.pos++
	var children []*Node
	ine, err := p.ifNotExists()
	if err != nil {
		return nil, err
	}
	if ine != nil {
		children = append(children, ine)
	}
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, name)

	if _, ok := p.acceptKind(TokenLParen); !ok {
		return nil, p.errorf("expected ( after table name")
	}
	for {
		if p.at("PRIMARY") {
			pk, err := p.primaryKeyElement()
			if err != nil {
				return nil, err
			}
			children = append(children, pk)
		} else {
			def, err := p.columnDefinition(true)
			if err != nil {
				return nil, err
			}
			children = append(children, def)
		}
		if _, ok := p.acceptKind(TokenComma); !ok {
			break
		}
	}
	if _, ok := p.acceptKind(TokenRParen); !ok {
		return nil, p.errorf("expected ) after column definitions")
	}

	if p.at("WITH") {
		with, err := p.withElement()
		if err != nil {
			return nil, err
		}
		children = append(children, with)
	}
	return p.node(KindCreateTable, start, children), nil
}

// columnDefinition parses `name type`, with an optional PRIMARY KEY suffix
// when allowPK is set.
func (p *parser) columnDefinition(allowPK bool) (*Node, *ParseError) {
	start := p.cur().Start
	col, err := p.column()
	if err != nil {
		return nil, err
	}
	dt, err := p.dataType()
	if err != nil {
		return nil, err
	}
	children := []*Node{col, dt}
	if allowPK && p.at("PRIMARY") {
		pkStart := p.cur().Start
		p.pos++
		if err := p.expect("KEY"); err != nil {
			return nil, err
		}
		children = append(children, p.markerSince(KindPrimaryKeyFlag, pkStart))
	}
	return p.node(KindColumnDefinition, start, children), nil
}

// dataType parses a type name with an optional angle-bracketed parameter
// list into a single leaf spanning the raw text.
func (p *parser) dataType() (*Node, *ParseError) {
	t := p.cur()
	if t.Kind != TokenWord && t.Kind != TokenQuotedName {
		return nil, p.errorf("expected a data type")
	}
	start := t.Start
	p.pos++
	if p.cur().Kind == TokenLT {
		depth := 0
		for {
			switch p.cur().Kind {
			case TokenLT:
				depth++
			case TokenGT:
				depth--
			case TokenEOF:
				return nil, p.errorf("unterminated data type")
			}
			p.pos++
			if depth == 0 {
				break
			}
		}
	}
	return &Node{kind: KindDataType, start: start, end: p.prevEnd()}, nil
}

// primaryKeyElement parses PRIMARY KEY ( ... ), normalizing the single,
// compound and composite forms into a partition list and a clustering list.
func (p *parser) primaryKeyElement() (*Node, *ParseError) {
	start := p.cur().Start
	p.expect("PRIMARY")
	if err := p.expect("KEY"); err != nil {
		return nil, err
	}
	if _, ok := p.acceptKind(TokenLParen); !ok {
		return nil, p.errorf("expected ( after PRIMARY KEY")
	}

	var partition, clustering []*Node
	partitionStart := p.cur().Start
	if p.cur().Kind == TokenLParen {
		p.pos++
		for {
			col, err := p.column()
			if err != nil {
				return nil, err
			}
			partition = append(partition, col)
			if _, ok := p.acceptKind(TokenComma); !ok {
				break
			}
		}
		if _, ok := p.acceptKind(TokenRParen); !ok {
			return nil, p.errorf("expected ) after partition key")
		}
	} else {
		col, err := p.column()
		if err != nil {
			return nil, err
		}
		partition = append(partition, col)
	}
	partitionNode := p.node(KindPartitionKeyList, partitionStart, partition)

	for {
		if _, ok := p.acceptKind(TokenComma); !ok {
			break
		}
		col, err := p.column()
		if err != nil {
			return nil, err
		}
		clustering = append(clustering, col)
	}
	if _, ok := p.acceptKind(TokenRParen); !ok {
		return nil, p.errorf("expected ) after primary key")
	}

	children := []*Node{partitionNode}
	if len(clustering) > 0 {
		children = append(children, &Node{
			kind:     KindClusteringKeyList,
			start:    clustering[0].start,
			end:      clustering[len(clustering)-1].end,
			children: clustering,
		})
	}
	return p.node(KindPrimaryKeyElement, start, children), nil
}

// withElement parses WITH item AND item ... for tables and views.
func (p *parser) withElement() (*Node, *ParseError) {
	start := p.cur().Start
	p.expect("WITH")
	var items []*Node
	for {
		item, err := p.withItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.accept("AND") {
			break
		}
	}
	return p.node(KindWithElement, start, items), nil
}

func (p *parser) withItem() (*Node, *ParseError) {
	start := p.cur().Start
	switch {
	case p.at("CLUSTERING"):
		p.pos++
		if err := p.expect("ORDER"); err != nil {
			return nil, err
		}
		if err := p.expect("BY"); err != nil {
			return nil, err
		}
		if _, ok := p.acceptKind(TokenLParen); !ok {
			return nil, p.errorf("expected ( after CLUSTERING ORDER BY")
		}
		col, err := p.column()
		if err != nil {
			return nil, err
		}
		children := []*Node{col}
		if p.at("ASC") {
			children = append(children, leaf(KindAsc, p.cur()))
			p.pos++
		} else if p.at("DESC") {
			children = append(children, leaf(KindDesc, p.cur()))
			p.pos++
		}
		if _, ok := p.acceptKind(TokenRParen); !ok {
			return nil, p.errorf("expected ) after clustering order")
		}
		return p.node(KindClusteringOrder, start, children), nil
	case p.at("COMPACT"):
		p.pos++
		if err := p.expect("STORAGE"); err != nil {
			return nil, err
		}
		return p.markerSince(KindCompactStorage, start), nil
	}

	key := p.cur()
	if key.Kind != TokenWord {
		return nil, p.errorf("expected an option name")
	}
	p.pos++
	if _, ok := p.acceptKind(TokenEQ); !ok {
		return nil, p.errorf("expected = after option name")
	}
	children := []*Node{leaf(KindOptionName, key)}
	if p.cur().Kind == TokenLBrace {
		hashStart := p.cur().Start
		pairs, err := p.hashPairs()
		if err != nil {
			return nil, err
		}
		children = append(children, p.node(KindOptionHash, hashStart, pairs))
	} else {
		value, err := p.operand()
		if err != nil {
			return nil, err
		}
		children = append(children, p.rawOperand(value))
	}
	return p.node(KindTableOption, start, children), nil
}

func (p *parser) alterTable(start int) (*Node, *ParseError) {
	p.pos++
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}

	opStart := p.cur().Start
	var op *Node
	switch {
	case p.at("ADD"):
		p.pos++
		var defs []*Node
		for {
			def, err := p.columnDefinition(false)
			if err != nil {
				return nil, err
			}
			defs = append(defs, def)
			if _, ok := p.acceptKind(TokenComma); !ok {
				break
			}
		}
		op = p.node(KindAlterTableAdd, opStart, defs)
	case p.at("DROP"):
		p.pos++
		if p.at("COMPACT") {
			p.pos++
			if err := p.expect("STORAGE"); err != nil {
				return nil, err
			}
			op = p.markerSince(KindAlterTableDropCS, opStart)
			break
		}
		var cols []*Node
		for {
			col, err := p.column()
			if err != nil {
				return nil, err
			}
			cols = append(cols, col)
			if _, ok := p.acceptKind(TokenComma); !ok {
				break
			}
		}
		op = p.node(KindAlterTableDrop, opStart, cols)
	case p.at("RENAME"):
		p.pos++
		from, err := p.column()
		if err != nil {
			return nil, err
		}
		if err := p.expect("TO"); err != nil {
			return nil, err
		}
		to, err := p.column()
		if err != nil {
			return nil, err
		}
		op = p.node(KindAlterTableRename, opStart, []*Node{from, to})
	case p.at("WITH"):
		with, err := p.withElement()
		if err != nil {
			return nil, err
		}
		op = p.node(KindAlterTableWith, opStart, []*Node{with})
	default:
		return nil, p.errorf("unrecognized ALTER TABLE operation")
	}
	return p.node(KindAlterTable, start, []*Node{name, op}), nil
}

func (p *parser) createIndex(start int) (*Node, *ParseError) {
	p.pos++
	var children []*Node
	ine, err := p.ifNotExists()
	if err != nil {
		return nil, err
	}
	if ine != nil {
		children = append(children, ine)
	}
	if !p.at("ON") {
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		children = append(children, name)
	}
	if err := p.expect("ON"); err != nil {
		return nil, err
	}
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, table)

	if _, ok := p.acceptKind(TokenLParen); !ok {
		return nil, p.errorf("expected ( after table name")
	}
	specStart := p.cur().Start
	specKind := KindIndexColumn
	wrapped := false
	switch {
	case p.at("KEYS") && p.peek(1).Kind == TokenLParen:
		specKind = KindIndexKeys
		wrapped = true
	case p.at("ENTRIES") && p.peek(1).Kind == TokenLParen:
		specKind = KindIndexEntries
		wrapped = true
	case p.at("FULL") && p.peek(1).Kind == TokenLParen:
		specKind = KindIndexFull
		wrapped = true
	}
	if wrapped {
		p.pos += 2
	}
	col, err := p.column()
	if err != nil {
		return nil, err
	}
	if wrapped {
		if _, ok := p.acceptKind(TokenRParen); !ok {
			return nil, p.errorf("expected )")
		}
	}
	if _, ok := p.acceptKind(TokenRParen); !ok {
		return nil, p.errorf("expected )")
	}
	children = append(children, p.node(specKind, specStart, []*Node{col}))
	return p.node(KindCreateIndex, start, children), nil
}

func (p *parser) createMaterializedView(start int) (*Node, *ParseError) {
	p.pos++
	if err := p.expect("VIEW"); err != nil {
		return nil, err
	}
	var children []*Node
	ine, err := p.ifNotExists()
	if err != nil {
		return nil, err
	}
	if ine != nil {
		children = append(children, ine)
	}
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, name)

	if err := p.expect("AS"); err != nil {
		return nil, err
	}
	if err := p.expect("SELECT"); err != nil {
		return nil, err
	}
	listStart := p.cur().Start
	var cols []*Node
	for {
		col, err := p.column()
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
		if _, ok := p.acceptKind(TokenComma); !ok {
			break
		}
	}
	children = append(children, p.node(KindColumnList, listStart, cols))

	if err := p.expect("FROM"); err != nil {
		return nil, err
	}
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, table)

	if err := p.expect("WHERE"); err != nil {
		return nil, err
	}
	where, err := p.whereSpec(KindWhereSpec)
	if err != nil {
		return nil, err
	}
	children = append(children, where)

	pk, err := p.primaryKeyElement()
	if err != nil {
		return nil, err
	}
	children = append(children, pk)

	if p.at("WITH") {
		with, err := p.withElement()
		if err != nil {
			return nil, err
		}
		children = append(children, with)
	}
	return p.node(KindCreateView, start, children), nil
}

func (p *parser) alterMaterializedView(start int) (*Node, *ParseError) {
	p.pos++
	if err := p.expect("VIEW"); err != nil {
		return nil, err
	}
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children := []*Node{name}
	if p.at("WITH") {
		with, err := p.withElement()
		if err != nil {
			return nil, err
		}
		children = append(children, with)
	}
	return p.node(KindAlterView, start, children), nil
}

func (p *parser) createType(start int) (*Node, *ParseError) {
	p.pos++
	var children []*Node
	ine, err := p.ifNotExists()
	if err != nil {
		return nil, err
	}
	if ine != nil {
		children = append(children, ine)
	}
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, name)

	if _, ok := p.acceptKind(TokenLParen); !ok {
		return nil, p.errorf("expected ( after type name")
	}
	for {
		def, err := p.columnDefinition(false)
		if err != nil {
			return nil, err
		}
		children = append(children, def)
		if _, ok := p.acceptKind(TokenComma); !ok {
			break
		}
	}
	if _, ok := p.acceptKind(TokenRParen); !ok {
		return nil, p.errorf("expected ) after field definitions")
	}
	return p.node(KindCreateType, start, children), nil
}

func (p *parser) alterType(start int) (*Node, *ParseError) {
	p.pos++
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}

	opStart := p.cur().Start
	var op *Node
	switch {
	case p.at("ALTER"):
		p.pos++
		col, err := p.column()
		if err != nil {
			return nil, err
		}
		if err := p.expect("TYPE"); err != nil {
			return nil, err
		}
		dt, err := p.dataType()
		if err != nil {
			return nil, err
		}
		op = p.node(KindAlterTypeAlterColumn, opStart, []*Node{col, dt})
	case p.at("ADD"):
		p.pos++
		var defs []*Node
		for {
			def, err := p.columnDefinition(false)
			if err != nil {
				return nil, err
			}
			defs = append(defs, def)
			if _, ok := p.acceptKind(TokenComma); !ok {
				break
			}
		}
		op = p.node(KindAlterTypeAdd, opStart, defs)
	case p.at("RENAME"):
		p.pos++
		var pairs []*Node
		for {
			pairStart := p.cur().Start
			from, err := p.column()
			if err != nil {
				return nil, err
			}
			if err := p.expect("TO"); err != nil {
				return nil, err
			}
			to, err := p.column()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p.node(KindRenamePair, pairStart, []*Node{from, to}))
			if !p.accept("AND") {
				break
			}
		}
		op = p.node(KindAlterTypeRename, opStart, pairs)
	default:
		return nil, p.errorf("unrecognized ALTER TYPE operation")
	}
	return p.node(KindAlterType, start, []*Node{name, op}), nil
}

func (p *parser) createFunction(start int, orReplace *Node) (*Node, *ParseError) {
	p.pos++
	var children []*Node
	if orReplace != nil {
		children = append(children, orReplace)
	}
	ine, err := p.ifNotExists()
	if err != nil {
		return nil, err
	}
	if ine != nil {
		children = append(children, ine)
	}
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, name)

	if _, ok := p.acceptKind(TokenLParen); !ok {
		return nil, p.errorf("expected ( after function name")
	}
	if _, ok := p.acceptKind(TokenRParen); !ok {
		for {
			def, err := p.columnDefinition(false)
			if err != nil {
				return nil, err
			}
			children = append(children, def)
			if _, ok := p.acceptKind(TokenComma); !ok {
				break
			}
		}
		if _, ok := p.acceptKind(TokenRParen); !ok {
			return nil, p.errorf("expected ) after parameters")
		}
	}

	nullStart := p.cur().Start
	var nullKind string
	switch {
	case p.at("RETURNS") && p.peek(1).Is("NULL"):
		p.pos += 2
		nullKind = KindReturnsNullOnNull
	case p.at("CALLED"):
		p.pos++
		nullKind = KindCalledOnNull
	default:
		return nil, p.errorf("expected RETURNS NULL or CALLED")
	}
	if err := p.expect("ON"); err != nil {
		return nil, err
	}
	if err := p.expect("NULL"); err != nil {
		return nil, err
	}
	if err := p.expect("INPUT"); err != nil {
		return nil, err
	}
	children = append(children, p.markerSince(nullKind, nullStart))

	if err := p.expect("RETURNS"); err != nil {
		return nil, err
	}
	returns, err := p.dataType()
	if err != nil {
		return nil, err
	}
	children = append(children, returns)

	if err := p.expect("LANGUAGE"); err != nil {
		return nil, err
	}
	lang, err := p.identifier()
	if err != nil {
		return nil, err
	}
	children = append(children, lang)

	if err := p.expect("AS"); err != nil {
		return nil, err
	}
	body := p.cur()
	if body.Kind != TokenString && body.Kind != TokenCodeBlock {
		return nil, p.errorf("expected a function body")
	}
	p.pos++
	children = append(children, leaf(KindConstant, body))
	return p.node(KindCreateFunction, start, children), nil
}

func (p *parser) createAggregate(start int, orReplace *Node) (*Node, *ParseError) {
	p.pos++
	var children []*Node
	if orReplace != nil {
		children = append(children, orReplace)
	}
	ine, err := p.ifNotExists()
	if err != nil {
		return nil, err
	}
	if ine != nil {
		children = append(children, ine)
	}
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, name)

	if _, ok := p.acceptKind(TokenLParen); !ok {
		return nil, p.errorf("expected ( after aggregate name")
	}
	arg, err := p.dataType()
	if err != nil {
		return nil, err
	}
	children = append(children, arg)
	if _, ok := p.acceptKind(TokenRParen); !ok {
		return nil, p.errorf("expected ) after argument type")
	}

	if err := p.expect("SFUNC"); err != nil {
		return nil, err
	}
	sfunc, err := p.identifier()
	if err != nil {
		return nil, err
	}
	children = append(children, sfunc)

	if err := p.expect("STYPE"); err != nil {
		return nil, err
	}
	stype, err := p.dataType()
	if err != nil {
		return nil, err
	}
	children = append(children, stype)

	// FINALFUNC and INITCOND are optional.
	if p.at("FINALFUNC") {
		p.pos++
		finalFunc, err := p.identifier()
		if err != nil {
			return nil, err
		}
		children = append(children, finalFunc)
	}

	if p.at("INITCOND") {
		p.pos++
		cond, err := p.initCond()
		if err != nil {
			return nil, err
		}
		children = append(children, cond)
	}
	return p.node(KindCreateAggregate, start, children), nil
}

// initCond parses the INITCOND clause: a constant, a parenthesised list or a
// parenthesised key:value map, nesting freely.
func (p *parser) initCond() (*Node, *ParseError) {
	if p.cur().Kind != TokenLParen {
		value, err := p.operand()
		if err != nil {
			return nil, err
		}
		return p.rawOperand(value), nil
	}

	start := p.cur().Start
	p.pos++
	first, err := p.initCond()
	if err != nil {
		return nil, err
	}
	if _, ok := p.acceptKind(TokenColon); ok {
		pairs := []*Node{first}
		for {
			value, err := p.initCond()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, value)
			if _, ok := p.acceptKind(TokenComma); !ok {
				break
			}
			key, err := p.initCond()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, key)
			if _, ok := p.acceptKind(TokenColon); !ok {
				return nil, p.errorf("expected : in INITCOND map")
			}
		}
		if _, ok := p.acceptKind(TokenRParen); !ok {
			return nil, p.errorf("expected ) after INITCOND map")
		}
		return p.node(KindInitCondHash, start, pairs), nil
	}

	values := []*Node{first}
	for {
		if _, ok := p.acceptKind(TokenComma); !ok {
			break
		}
		value, err := p.initCond()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	if _, ok := p.acceptKind(TokenRParen); !ok {
		return nil, p.errorf("expected ) after INITCOND list")
	}
	return p.node(KindInitCondList, start, values), nil
}

func (p *parser) createTrigger(start int) (*Node, *ParseError) {
	p.pos++
	var children []*Node
	ine, err := p.ifNotExists()
	if err != nil {
		return nil, err
	}
	if ine != nil {
		children = append(children, ine)
	}
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, name)

	if err := p.expect("USING"); err != nil {
		return nil, err
	}
	class, ok := p.acceptKind(TokenString)
	if !ok {
		return nil, p.errorf("expected a trigger class")
	}
	children = append(children, leaf(KindConstant, class))
	return p.node(KindCreateTrigger, start, children), nil
}

// roleStatement parses the body shared by CREATE ROLE and ALTER ROLE; the
// role keyword is still current.
func (p *parser) roleStatement(kind string, start int) (*Node, *ParseError) {
	p.pos++
	var children []*Node
	if kind == KindCreateRole {
		ine, err := p.ifNotExists()
		if err != nil {
			return nil, err
		}
		if ine != nil {
			children = append(children, ine)
		}
	}
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	children = append(children, name)

	if p.accept("WITH") {
		for {
			optStart := p.cur().Start
			switch {
			case p.at("PASSWORD"):
				p.pos++
				if _, ok := p.acceptKind(TokenEQ); !ok {
					return nil, p.errorf("expected = after PASSWORD")
				}
				value, ok := p.acceptKind(TokenString)
				if !ok {
					return nil, p.errorf("expected a password string")
				}
				children = append(children, p.node(KindRolePassword, optStart, []*Node{leaf(KindConstant, value)}))
			case p.at("SUPERUSER"), p.at("LOGIN"):
				optKind := KindRoleSuper
				if p.at("LOGIN") {
					optKind = KindRoleLogin
				}
				p.pos++
				if _, ok := p.acceptKind(TokenEQ); !ok {
					return nil, p.errorf("expected = after role option")
				}
				if !p.at("TRUE") && !p.at("FALSE") {
					return nil, p.errorf("expected TRUE or FALSE")
				}
				value := leaf(KindConstant, p.cur())
				p.pos++
				children = append(children, p.node(optKind, optStart, []*Node{value}))
			case p.at("OPTIONS"):
				p.pos++
				if _, ok := p.acceptKind(TokenEQ); !ok {
					return nil, p.errorf("expected = after OPTIONS")
				}
				hashStart := p.cur().Start
				pairs, err := p.hashPairs()
				if err != nil {
					return nil, err
				}
				hash := p.node(KindOptionHash, hashStart, pairs)
				children = append(children, p.node(KindRoleOptions, optStart, []*Node{hash}))
			default:
				return nil, p.errorf("unrecognized role option")
			}
			if !p.accept("AND") {
				break
			}
		}
	}
	return p.node(kind, start, children), nil
}

// userStatement parses the body shared by CREATE USER and ALTER USER; the
// user keyword is still current.
func (p *parser) userStatement(kind string, start int) (*Node, *ParseError) {
	p.pos++
	var children []*Node
	if kind == KindCreateUser {
		ine, err := p.ifNotExists()
		if err != nil {
			return nil, err
		}
		if ine != nil {
			children = append(children, ine)
		}
	}
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	children = append(children, name)

	if p.accept("WITH") {
		for {
			switch {
			case p.at("PASSWORD"):
				optStart := p.cur().Start
				p.pos++
				value, ok := p.acceptKind(TokenString)
				if !ok {
					return nil, p.errorf("expected a password string")
				}
				children = append(children, p.node(KindUserPassword, optStart, []*Node{leaf(KindConstant, value)}))
				continue
			case p.at("SUPERUSER"):
				children = append(children, leaf(KindSuperuser, p.cur()))
				p.pos++
				continue
			case p.at("NOSUPERUSER"):
				children = append(children, leaf(KindNoSuperuser, p.cur()))
				p.pos++
				continue
			}
			break
		}
	}
	return p.node(kind, start, children), nil
}

func (p *parser) grantRevoke(kind string) (*Node, *ParseError) {
	start := p.cur().Start
	p.pos++
	priv, err := p.privilege()
	if err != nil {
		return nil, err
	}
	if err := p.expect("ON"); err != nil {
		return nil, err
	}
	resource, err := p.resource()
	if err != nil {
		return nil, err
	}
	if kind == KindGrant {
		if err := p.expect("TO"); err != nil {
			return nil, err
		}
	} else {
		if err := p.expect("FROM"); err != nil {
			return nil, err
		}
	}
	role, err := p.identifier()
	if err != nil {
		return nil, err
	}
	return p.node(kind, start, []*Node{priv, resource, role}), nil
}

func (p *parser) listStatement() (*Node, *ParseError) {
	start := p.cur().Start
	p.pos++

	if p.at("ROLES") {
		p.pos++
		var children []*Node
		if p.accept("OF") {
			name, err := p.identifier()
			if err != nil {
				return nil, err
			}
			children = append(children, name)
		}
		if p.at("NORECURSIVE") {
			children = append(children, leaf(KindNoRecursive, p.cur()))
			p.pos++
		}
		return p.node(KindListRoles, start, children), nil
	}

	priv, err := p.privilege()
	if err != nil {
		return nil, err
	}
	children := []*Node{priv}
	if p.accept("ON") {
		resource, err := p.resource()
		if err != nil {
			return nil, err
		}
		children = append(children, resource)
	}
	if p.accept("OF") {
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		children = append(children, name)
	}
	return p.node(KindListPermissions, start, children), nil
}

func (p *parser) privilege() (*Node, *ParseError) {
	start := p.cur().Start
	switch {
	case p.at("ALL"):
		p.pos++
		p.accept("PERMISSIONS")
	case p.at("PERMISSIONS"), p.at("PERMISSION"):
		p.pos++
	case p.at("ALTER"), p.at("AUTHORIZE"), p.at("DESCRIBE"), p.at("EXECUTE"),
		p.at("CREATE"), p.at("DROP"), p.at("MODIFY"), p.at("SELECT"):
		p.pos++
	default:
		return nil, p.errorf("expected a privilege")
	}
	return p.markerSince(KindPrivilege, start), nil
}

func (p *parser) resource() (*Node, *ParseError) {
	start := p.cur().Start
	switch {
	case p.at("ALL"):
		p.pos++
		switch {
		case p.at("FUNCTIONS"):
			p.pos++
			var children []*Node
			if p.accept("IN") {
				if err := p.expect("KEYSPACE"); err != nil {
					return nil, err
				}
				name, err := p.identifier()
				if err != nil {
					return nil, err
				}
				children = append(children, name)
			}
			return p.node(KindResourceAllFunctions, start, children), nil
		case p.at("KEYSPACES"):
			p.pos++
			return p.markerSince(KindResourceAllKeyspaces, start), nil
		case p.at("ROLES"):
			p.pos++
			return p.markerSince(KindResourceAllRoles, start), nil
		}
		return nil, p.errorf("expected FUNCTIONS, KEYSPACES or ROLES")
	case p.at("FUNCTION"):
		p.pos++
		name, err := p.tableName()
		if err != nil {
			return nil, err
		}
		return p.node(KindResourceFunction, start, []*Node{name}), nil
	case p.at("KEYSPACE"):
		p.pos++
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		return p.node(KindResourceKeyspace, start, []*Node{name}), nil
	case p.at("ROLE"):
		p.pos++
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		return p.node(KindResourceRole, start, []*Node{name}), nil
	case p.at("TABLE"):
		p.pos++
		name, err := p.tableName()
		if err != nil {
			return nil, err
		}
		return p.node(KindResourceTable, start, []*Node{name}), nil
	}
	name, err := p.tableName()
	if err != nil {
		return nil, err
	}
	return p.node(KindResourceTable, start, []*Node{name}), nil
}
