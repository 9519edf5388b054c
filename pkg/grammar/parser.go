// Package grammar contains the CQL lexer, the statement parser and the
// syntax tree it produces. The parser is a hand-written recursive descent
// over the token stream; each statement that fails to parse becomes an ERROR
// node spanning its region, and parsing resumes at the next semicolon.
package grammar

import "fmt"

// ParseError is a syntax error with its source position. Line is 1-based and
// Column is a 0-based byte column.
type ParseError struct {
	Message string
	Line    int
	Column  int
	Offset  int
	// Near is the token text the error was reported at, empty at end of
	// input.
	Near string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d:%d %s", e.Line, e.Column, e.Message)
}

// Tree is a parsed source file. Root is a source_file node whose children
// are statement nodes and ERROR nodes, in source order.
type Tree struct {
	Source string
	Root   *Node
	Errors []*ParseError
}

// ParseTree parses src into a syntax tree. Parsing always produces a tree;
// syntax errors are reported in Errors and isolated to the statement region
// they occur in.
func ParseTree(src string) *Tree {
	p := &parser{src: src, tokens: Lex(src)}
	var children []*Node
	var errors []*ParseError

	for {
		for p.cur().Kind == TokenSemicolon {
			p.pos++
		}
		if p.cur().Kind == TokenEOF {
			break
		}
		start := p.pos
		stmt, err := p.statement()
		if err == nil && p.cur().Kind != TokenSemicolon && p.cur().Kind != TokenEOF {
			err = p.errorf("unexpected %q after statement", p.cur().Text)
		}
		if err != nil {
			errors = append(errors, err)
			p.pos = start
			for p.cur().Kind != TokenSemicolon && p.cur().Kind != TokenEOF {
				p.pos++
			}
			first := p.tokens[start]
			last := p.tokens[p.pos-1]
			children = append(children, &Node{
				kind:  KindErrorNode,
				start: first.Start,
				end:   last.End,
				err:   true,
			})
			continue
		}
		children = append(children, stmt)
	}

	root := &Node{kind: KindSourceFile, start: 0, end: len(src), children: children}
	return &Tree{Source: src, Root: root, Errors: errors}
}

type parser struct {
	src    string
	tokens []Token
	pos    int
}

func (p *parser) cur() Token { return p.tokens[p.pos] }

func (p *parser) peek(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

// prevEnd returns the end offset of the last consumed token.
func (p *parser) prevEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.tokens[p.pos-1].End
}

func (p *parser) at(kw string) bool { return p.cur().Is(kw) }

func (p *parser) accept(kw string) bool {
	if p.at(kw) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(kw string) *ParseError {
	if p.accept(kw) {
		return nil
	}
	return p.errorf("expected %s", kw)
}

func (p *parser) acceptKind(kind TokenKind) (Token, bool) {
	if p.cur().Kind == kind {
		t := p.cur()
		p.pos++
		return t, true
	}
	return Token{}, false
}

func (p *parser) errorf(format string, args ...interface{}) *ParseError {
	t := p.cur()
	near := t.Text
	if t.Kind == TokenEOF {
		near = ""
	}
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    t.Line,
		Column:  t.Column,
		Offset:  t.Start,
		Near:    near,
	}
}

// leaf builds a childless node over a single token.
func leaf(kind string, t Token) *Node {
	return &Node{kind: kind, start: t.Start, end: t.End}
}

// node builds an interior node spanning start to the last consumed token.
func (p *parser) node(kind string, start int, children []*Node) *Node {
	return &Node{kind: kind, start: start, end: p.prevEnd(), children: children}
}

// markerSince builds a childless node spanning start to the last consumed
// token, used for multi-word markers such as IF NOT EXISTS.
func (p *parser) markerSince(kind string, start int) *Node {
	return &Node{kind: kind, start: start, end: p.prevEnd()}
}

func (p *parser) statement() (*Node, *ParseError) {
	switch {
	case p.at("SELECT"):
		return p.selectStatement()
	case p.at("INSERT"):
		return p.insertStatement(nil, p.cur().Start)
	case p.at("UPDATE"):
		return p.updateStatement(nil, p.cur().Start)
	case p.at("DELETE"):
		return p.deleteStatement(nil, p.cur().Start)
	case p.at("BEGIN"):
		return p.batchStatement()
	case p.at("APPLY"):
		return p.applyBatch()
	case p.at("USE"):
		return p.useStatement()
	case p.at("TRUNCATE"):
		return p.truncateStatement()
	case p.at("CREATE"):
		return p.createStatement()
	case p.at("ALTER"):
		return p.alterStatement()
	case p.at("DROP"):
		return p.dropStatement()
	case p.at("GRANT"):
		return p.grantRevoke(KindGrant)
	case p.at("REVOKE"):
		return p.grantRevoke(KindRevoke)
	case p.at("LIST"):
		return p.listStatement()
	}
	return nil, p.errorf("unrecognized statement")
}

func (p *parser) selectStatement() (*Node, *ParseError) {
	start := p.cur().Start
	p.expect("SELECT")
	var children []*Node

	if p.at("DISTINCT") {
		children = append(children, leaf(KindDistinct, p.cur()))
		p.pos++
	}
	if p.at("JSON") {
		children = append(children, leaf(KindJSONMarker, p.cur()))
		p.pos++
	}

	for {
		elem, err := p.selectElement()
		if err != nil {
			return nil, err
		}
		children = append(children, elem)
		if _, ok := p.acceptKind(TokenComma); !ok {
			break
		}
	}

	if err := p.expect("FROM"); err != nil {
		return nil, err
	}
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, table)

	if p.accept("WHERE") {
		where, err := p.whereSpec(KindWhereSpec)
		if err != nil {
			return nil, err
		}
		children = append(children, where)
	}
	if p.at("ORDER") {
		orderStart := p.cur().Start
		p.pos++
		if err := p.expect("BY"); err != nil {
			return nil, err
		}
		col, err := p.column()
		if err != nil {
			return nil, err
		}
		orderChildren := []*Node{col}
		if p.at("ASC") {
			orderChildren = append(orderChildren, leaf(KindAsc, p.cur()))
			p.pos++
		} else if p.at("DESC") {
			orderChildren = append(orderChildren, leaf(KindDesc, p.cur()))
			p.pos++
		}
		children = append(children, p.node(KindOrderSpec, orderStart, orderChildren))
	}
	if p.at("LIMIT") {
		limitStart := p.cur().Start
		p.pos++
		value, err := p.operand()
		if err != nil {
			return nil, err
		}
		children = append(children, p.node(KindLimitSpec, limitStart, []*Node{value}))
	}
	if p.at("ALLOW") {
		allowStart := p.cur().Start
		p.pos++
		if err := p.expect("FILTERING"); err != nil {
			return nil, err
		}
		children = append(children, p.markerSince(KindAllowFiltering, allowStart))
	}

	return p.node(KindSelect, start, children), nil
}

func (p *parser) selectElement() (*Node, *ParseError) {
	if t, ok := p.acceptKind(TokenStar); ok {
		return leaf(KindSelectElement, t), nil
	}
	start := p.cur().Start
	var inner *Node
	if p.cur().Kind == TokenWord && p.peek(1).Kind == TokenLParen {
		call, err := p.functionCall()
		if err != nil {
			return nil, err
		}
		inner = call
	} else {
		col, err := p.column()
		if err != nil {
			return nil, err
		}
		inner = col
	}
	children := []*Node{inner}
	if p.accept("AS") {
		alias, err := p.identifier()
		if err != nil {
			return nil, err
		}
		children = append(children, alias)
	}
	return p.node(KindSelectElement, start, children), nil
}

func (p *parser) batchStatement() (*Node, *ParseError) {
	start := p.cur().Start
	batchStart := start
	p.expect("BEGIN")
	var batchChildren []*Node
	if p.at("UNLOGGED") {
		batchChildren = append(batchChildren, leaf(KindUnlogged, p.cur()))
		p.pos++
	} else if p.at("COUNTER") {
		batchChildren = append(batchChildren, leaf(KindCounter, p.cur()))
		p.pos++
	}
	if err := p.expect("BATCH"); err != nil {
		return nil, err
	}
	if p.at("USING") {
		using, err := p.usingClause()
		if err != nil {
			return nil, err
		}
		batchChildren = append(batchChildren, using)
	}
	batch := p.node(KindBeginBatch, batchStart, batchChildren)

	switch {
	case p.at("INSERT"):
		return p.insertStatement(batch, start)
	case p.at("UPDATE"):
		return p.updateStatement(batch, start)
	case p.at("DELETE"):
		return p.deleteStatement(batch, start)
	}
	return nil, p.errorf("expected INSERT, UPDATE or DELETE after BEGIN BATCH")
}

func (p *parser) applyBatch() (*Node, *ParseError) {
	start := p.cur().Start
	p.expect("APPLY")
	if err := p.expect("BATCH"); err != nil {
		return nil, err
	}
	return p.node(KindApplyBatch, start, nil), nil
}

func (p *parser) useStatement() (*Node, *ParseError) {
	start := p.cur().Start
	p.expect("USE")
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	return p.node(KindUse, start, []*Node{name}), nil
}

func (p *parser) truncateStatement() (*Node, *ParseError) {
	start := p.cur().Start
	p.expect("TRUNCATE")
	p.accept("TABLE")
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	return p.node(KindTruncate, start, []*Node{table}), nil
}

func (p *parser) insertStatement(batch *Node, start int) (*Node, *ParseError) {
	p.expect("INSERT")
	if err := p.expect("INTO"); err != nil {
		return nil, err
	}
	var children []*Node
	if batch != nil {
		children = append(children, batch)
	}

	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, table)

	// The parenthesised column list is absent in the JSON form.
	if p.cur().Kind == TokenLParen {
		cols, err := p.columnList()
		if err != nil {
			return nil, err
		}
		children = append(children, cols)
	}

	switch {
	case p.at("VALUES"):
		listStart := p.cur().Start
		p.pos++
		if _, ok := p.acceptKind(TokenLParen); !ok {
			return nil, p.errorf("expected ( after VALUES")
		}
		var values []*Node
		for {
			op, err := p.operand()
			if err != nil {
				return nil, err
			}
			values = append(values, op)
			if _, ok := p.acceptKind(TokenComma); !ok {
				break
			}
		}
		if _, ok := p.acceptKind(TokenRParen); !ok {
			return nil, p.errorf("expected ) after values")
		}
		children = append(children, p.node(KindExpressionList, listStart, values))
	case p.at("JSON"):
		children = append(children, leaf(KindJSONMarker, p.cur()))
		p.pos++
		body, ok := p.acceptKind(TokenString)
		if !ok {
			return nil, p.errorf("expected JSON string")
		}
		children = append(children, leaf(KindConstant, body))
	default:
		return nil, p.errorf("expected VALUES or JSON")
	}

	for {
		switch {
		case p.at("IF"):
			ifStart := p.cur().Start
			p.pos++
			if err := p.expect("NOT"); err != nil {
				return nil, err
			}
			if err := p.expect("EXISTS"); err != nil {
				return nil, err
			}
			children = append(children, p.markerSince(KindIfNotExists, ifStart))
		case p.at("USING"):
			using, err := p.usingClause()
			if err != nil {
				return nil, err
			}
			children = append(children, using)
		default:
			return p.node(KindInsert, start, children), nil
		}
	}
}

func (p *parser) updateStatement(batch *Node, start int) (*Node, *ParseError) {
	p.expect("UPDATE")
	var children []*Node
	if batch != nil {
		children = append(children, batch)
	}

	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, table)

	if p.at("USING") {
		using, err := p.usingClause()
		if err != nil {
			return nil, err
		}
		children = append(children, using)
	}

	if err := p.expect("SET"); err != nil {
		return nil, err
	}
	for {
		assign, err := p.assignmentElement()
		if err != nil {
			return nil, err
		}
		children = append(children, assign)
		if _, ok := p.acceptKind(TokenComma); !ok {
			break
		}
	}

	if err := p.expect("WHERE"); err != nil {
		return nil, err
	}
	where, err := p.whereSpec(KindWhereSpec)
	if err != nil {
		return nil, err
	}
	children = append(children, where)

	ifNode, err := p.ifClause()
	if err != nil {
		return nil, err
	}
	if ifNode != nil {
		children = append(children, ifNode)
	}
	return p.node(KindUpdate, start, children), nil
}

func (p *parser) deleteStatement(batch *Node, start int) (*Node, *ParseError) {
	p.expect("DELETE")
	var children []*Node
	if batch != nil {
		children = append(children, batch)
	}

	for !p.at("FROM") {
		itemStart := p.cur().Start
		col, err := p.column()
		if err != nil {
			return nil, err
		}
		itemChildren := []*Node{col}
		idx, err := p.indexSuffix()
		if err != nil {
			return nil, err
		}
		if idx != nil {
			itemChildren = append(itemChildren, idx)
		}
		children = append(children, p.node(KindDeleteColumn, itemStart, itemChildren))
		if _, ok := p.acceptKind(TokenComma); !ok {
			break
		}
	}

	if err := p.expect("FROM"); err != nil {
		return nil, err
	}
	table, err := p.tableName()
	if err != nil {
		return nil, err
	}
	children = append(children, table)

	if p.at("USING") {
		using, err := p.usingClause()
		if err != nil {
			return nil, err
		}
		children = append(children, using)
	}

	if err := p.expect("WHERE"); err != nil {
		return nil, err
	}
	where, err := p.whereSpec(KindWhereSpec)
	if err != nil {
		return nil, err
	}
	children = append(children, where)

	ifNode, err := p.ifClause()
	if err != nil {
		return nil, err
	}
	if ifNode != nil {
		children = append(children, ifNode)
	}
	return p.node(KindDelete, start, children), nil
}

// ifClause parses the optional IF EXISTS or IF <relations> tail of UPDATE and
// DELETE. It returns nil without error when there is no IF.
func (p *parser) ifClause() (*Node, *ParseError) {
	if !p.at("IF") {
		return nil, nil
	}
	start := p.cur().Start
	p.pos++
	if p.at("EXISTS") {
		p.pos++
		return p.markerSince(KindIfExists, start), nil
	}
	spec, err := p.whereSpec(KindIfSpec)
	if err != nil {
		return nil, err
	}
	spec.start = start
	return spec, nil
}

// usingClause parses USING TTL n AND TIMESTAMP n in either order, with both
// parts optional but at least one present.
func (p *parser) usingClause() (*Node, *ParseError) {
	start := p.cur().Start
	if err := p.expect("USING"); err != nil {
		return nil, err
	}
	var children []*Node
	for {
		partStart := p.cur().Start
		var kind string
		switch {
		case p.at("TTL"):
			kind = KindTTL
		case p.at("TIMESTAMP"):
			kind = KindTimestamp
		default:
			return nil, p.errorf("expected TTL or TIMESTAMP")
		}
		p.pos++
		value, ok := p.acceptKind(TokenNumber)
		if !ok {
			return nil, p.errorf("expected a number")
		}
		children = append(children, p.node(kind, partStart, []*Node{leaf(KindConstant, value)}))
		if !p.accept("AND") {
			break
		}
	}
	return p.node(KindUsingClause, start, children), nil
}

func (p *parser) assignmentElement() (*Node, *ParseError) {
	start := p.cur().Start
	col, err := p.column()
	if err != nil {
		return nil, err
	}
	children := []*Node{col}
	idx, err := p.indexSuffix()
	if err != nil {
		return nil, err
	}
	if idx != nil {
		children = append(children, idx)
	}
	if _, ok := p.acceptKind(TokenEQ); !ok {
		return nil, p.errorf("expected = in assignment")
	}
	value, err := p.operand()
	if err != nil {
		return nil, err
	}
	children = append(children, value)

	var opKind string
	if _, ok := p.acceptKind(TokenPlus); ok {
		opKind = KindAssignmentPlus
	} else if _, ok := p.acceptKind(TokenMinus); ok {
		opKind = KindAssignmentMinus
	}
	if opKind != "" {
		opStart := p.prevEnd() - 1
		operand, err := p.operand()
		if err != nil {
			return nil, err
		}
		children = append(children, p.node(opKind, opStart, []*Node{operand}))
	}
	return p.node(KindAssignment, start, children), nil
}

// indexSuffix parses an optional [expr] suffix after a column. The index
// expression is kept as raw text.
func (p *parser) indexSuffix() (*Node, *ParseError) {
	if _, ok := p.acceptKind(TokenLBracket); !ok {
		return nil, nil
	}
	exprStart := p.cur().Start
	depth := 1
	for depth > 0 {
		switch p.cur().Kind {
		case TokenLBracket:
			depth++
		case TokenRBracket:
			depth--
		case TokenEOF:
			return nil, p.errorf("unterminated index expression")
		}
		p.pos++
	}
	end := p.tokens[p.pos-1].Start
	if end < exprStart {
		end = exprStart
	}
	return &Node{kind: KindIndexExpr, start: exprStart, end: end}, nil
}

func (p *parser) whereSpec(kind string) (*Node, *ParseError) {
	start := p.cur().Start
	var relations []*Node
	for {
		rel, err := p.relationElement()
		if err != nil {
			return nil, err
		}
		relations = append(relations, rel)
		if !p.accept("AND") {
			break
		}
	}
	return p.node(kind, start, relations), nil
}

func (p *parser) relationElement() (*Node, *ParseError) {
	start := p.cur().Start

	var obj *Node
	var err *ParseError
	switch {
	case p.cur().Kind == TokenLParen:
		obj, err = p.columnTuple()
	case p.cur().Kind == TokenWord && p.peek(1).Kind == TokenLParen:
		obj, err = p.functionCall()
	default:
		obj, err = p.column()
	}
	if err != nil {
		return nil, err
	}
	children := []*Node{obj}

	opStart := p.cur().Start
	switch {
	case p.at("IN"):
		children = append(children, leaf(KindOperator, p.cur()))
		p.pos++
		if _, ok := p.acceptKind(TokenLParen); !ok {
			return nil, p.errorf("expected ( after IN")
		}
		for {
			value, err := p.operand()
			if err != nil {
				return nil, err
			}
			children = append(children, value)
			if _, ok := p.acceptKind(TokenComma); !ok {
				break
			}
		}
		if _, ok := p.acceptKind(TokenRParen); !ok {
			return nil, p.errorf("expected ) after IN list")
		}
	case p.at("CONTAINS"):
		p.pos++
		if p.at("KEY") {
			p.pos++
		}
		children = append(children, p.markerSince(KindOperator, opStart))
		value, err := p.operand()
		if err != nil {
			return nil, err
		}
		children = append(children, value)
	case p.at("IS"):
		p.pos++
		if err := p.expect("NOT"); err != nil {
			return nil, err
		}
		children = append(children, p.markerSince(KindOperator, opStart))
		nullTok := p.cur()
		if err := p.expect("NULL"); err != nil {
			return nil, err
		}
		children = append(children, leaf(KindNull, nullTok))
	default:
		switch p.cur().Kind {
		case TokenLT, TokenLE, TokenEQ, TokenNE, TokenGE, TokenGT:
			children = append(children, leaf(KindOperator, p.cur()))
			p.pos++
		default:
			return nil, p.errorf("expected a relation operator")
		}
		value, err := p.operand()
		if err != nil {
			return nil, err
		}
		children = append(children, value)
	}

	return p.node(KindRelationElement, start, children), nil
}

// columnTuple parses (col, col, ...) on the left side of a relation.
func (p *parser) columnTuple() (*Node, *ParseError) {
	start := p.cur().Start
	p.acceptKind(TokenLParen)
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
	if _, ok := p.acceptKind(TokenRParen); !ok {
		return nil, p.errorf("expected ) after column tuple")
	}
	return p.node(KindTupleLiteral, start, cols), nil
}

func (p *parser) operand() (*Node, *ParseError) {
	t := p.cur()
	switch t.Kind {
	case TokenString, TokenNumber, TokenUUID, TokenCodeBlock:
		p.pos++
		return leaf(KindConstant, t), nil
	case TokenMinus:
		if p.peek(1).Kind == TokenNumber {
			p.pos += 2
			return &Node{kind: KindConstant, start: t.Start, end: p.prevEnd()}, nil
		}
	case TokenQuestion:
		p.pos++
		return leaf(KindBindMarker, t), nil
	case TokenColon:
		if next := p.peek(1); next.Kind == TokenWord && next.Start == t.End {
			p.pos += 2
			return &Node{kind: KindBindMarker, start: t.Start, end: next.End}, nil
		}
	case TokenLBrace:
		return p.braceLiteral()
	case TokenLBracket:
		return p.listLiteral()
	case TokenLParen:
		return p.tupleLiteral()
	case TokenQuotedName:
		p.pos++
		return leaf(KindColumn, t), nil
	case TokenWord:
		switch {
		case t.Is("TRUE") || t.Is("FALSE"):
			p.pos++
			return leaf(KindConstant, t), nil
		case t.Is("NULL"):
			p.pos++
			return leaf(KindNull, t), nil
		case p.peek(1).Kind == TokenLParen:
			return p.functionCall()
		default:
			p.pos++
			return leaf(KindColumn, t), nil
		}
	}
	return nil, p.errorf("expected a value")
}

// braceLiteral parses {..}: a map when the first element is followed by a
// colon, otherwise a set. The empty literal is a set.
func (p *parser) braceLiteral() (*Node, *ParseError) {
	start := p.cur().Start
	p.acceptKind(TokenLBrace)
	if _, ok := p.acceptKind(TokenRBrace); ok {
		return p.node(KindSetLiteral, start, nil), nil
	}

	first, err := p.operand()
	if err != nil {
		return nil, err
	}
	if _, ok := p.acceptKind(TokenColon); ok {
		pairs := []*Node{p.rawOperand(first)}
		for {
			value, err := p.operand()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p.rawOperand(value))
			if _, ok := p.acceptKind(TokenComma); !ok {
				break
			}
			key, err := p.operand()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p.rawOperand(key))
			if _, ok := p.acceptKind(TokenColon); !ok {
				return nil, p.errorf("expected : in map literal")
			}
		}
		if _, ok := p.acceptKind(TokenRBrace); !ok {
			return nil, p.errorf("expected } after map literal")
		}
		return p.node(KindMapLiteral, start, pairs), nil
	}

	values := []*Node{p.rawOperand(first)}
	for {
		if _, ok := p.acceptKind(TokenComma); !ok {
			break
		}
		value, err := p.operand()
		if err != nil {
			return nil, err
		}
		values = append(values, p.rawOperand(value))
	}
	if _, ok := p.acceptKind(TokenRBrace); !ok {
		return nil, p.errorf("expected } after set literal")
	}
	return p.node(KindSetLiteral, start, values), nil
}

// rawOperand flattens a collection element to a constant leaf spanning its
// raw text. Scalar leaves pass through unchanged.
func (p *parser) rawOperand(n *Node) *Node {
	if len(n.children) == 0 {
		return n
	}
	return &Node{kind: KindConstant, start: n.start, end: n.end}
}

func (p *parser) listLiteral() (*Node, *ParseError) {
	start := p.cur().Start
	p.acceptKind(TokenLBracket)
	var values []*Node
	if _, ok := p.acceptKind(TokenRBracket); ok {
		return p.node(KindListLiteral, start, nil), nil
	}
	for {
		value, err := p.operand()
		if err != nil {
			return nil, err
		}
		values = append(values, p.rawOperand(value))
		if _, ok := p.acceptKind(TokenComma); !ok {
			break
		}
	}
	if _, ok := p.acceptKind(TokenRBracket); !ok {
		return nil, p.errorf("expected ] after list literal")
	}
	return p.node(KindListLiteral, start, values), nil
}

func (p *parser) tupleLiteral() (*Node, *ParseError) {
	start := p.cur().Start
	p.acceptKind(TokenLParen)
	var values []*Node
	for {
		value, err := p.operand()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
		if _, ok := p.acceptKind(TokenComma); !ok {
			break
		}
	}
	if _, ok := p.acceptKind(TokenRParen); !ok {
		return nil, p.errorf("expected ) after tuple")
	}
	return p.node(KindTupleLiteral, start, values), nil
}

// functionCall consumes a call as raw text through its matching closing
// parenthesis.
func (p *parser) functionCall() (*Node, *ParseError) {
	start := p.cur().Start
	p.pos++ // function name
	p.pos++ // opening paren
	depth := 1
	for depth > 0 {
		switch p.cur().Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		case TokenEOF:
			return nil, p.errorf("unterminated function call")
		}
		p.pos++
	}
	return &Node{kind: KindFunctionCall, start: start, end: p.prevEnd()}, nil
}

func (p *parser) column() (*Node, *ParseError) {
	t := p.cur()
	if t.Kind == TokenWord || t.Kind == TokenQuotedName {
		p.pos++
		return leaf(KindColumn, t), nil
	}
	return nil, p.errorf("expected a column name")
}

func (p *parser) identifier() (*Node, *ParseError) {
	t := p.cur()
	if t.Kind == TokenWord || t.Kind == TokenQuotedName || t.Kind == TokenString {
		p.pos++
		return leaf(KindIdentifier, t), nil
	}
	return nil, p.errorf("expected a name")
}

// tableName parses an optionally keyspace-qualified name into a single leaf.
func (p *parser) tableName() (*Node, *ParseError) {
	t := p.cur()
	if t.Kind != TokenWord && t.Kind != TokenQuotedName {
		return nil, p.errorf("expected a table name")
	}
	start := t.Start
	p.pos++
	if p.cur().Kind == TokenDot {
		p.pos++
		next := p.cur()
		if next.Kind != TokenWord && next.Kind != TokenQuotedName {
			return nil, p.errorf("expected a name after .")
		}
		p.pos++
	}
	return &Node{kind: KindTableName, start: start, end: p.prevEnd()}, nil
}

// columnList parses ( col, col, ... ).
func (p *parser) columnList() (*Node, *ParseError) {
	start := p.cur().Start
	if _, ok := p.acceptKind(TokenLParen); !ok {
		return nil, p.errorf("expected (")
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
	if _, ok := p.acceptKind(TokenRParen); !ok {
		return nil, p.errorf("expected )")
	}
	return p.node(KindColumnList, start, cols), nil
}
