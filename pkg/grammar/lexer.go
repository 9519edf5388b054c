package grammar

// lexer turns CQL source into a token stream. Whitespace and comments are
// skipped; they never appear as tokens.
type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

// Lex tokenizes src. The returned slice always ends with a TokenEOF token.
// Untokenizable input becomes TokenError tokens; lexing never stops early.
func Lex(src string) []Token {
	l := &lexer{src: src, line: 1}
	var tokens []Token
	for {
		t := l.next()
		tokens = append(tokens, t)
		if t.Kind == TokenEOF {
			return tokens
		}
	}
}

func (l *lexer) next() Token {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return l.token(TokenEOF, l.pos)
	}

	start := l.pos
	c := l.src[l.pos]
	switch {
	case c == '\'':
		return l.quoted(TokenString, '\'', start)
	case c == '"':
		return l.quoted(TokenQuotedName, '"', start)
	case c == '$':
		return l.codeBlock(start)
	case isHexDigit(c):
		if t, ok := l.uuid(start); ok {
			return t
		}
		if isDigit(c) {
			return l.number(start)
		}
		return l.word(start)
	case isWordStart(c):
		return l.word(start)
	}

	l.advance(1)
	switch c {
	case '?':
		return l.token(TokenQuestion, start)
	case ',':
		return l.token(TokenComma, start)
	case '.':
		return l.token(TokenDot, start)
	case ';':
		return l.token(TokenSemicolon, start)
	case ':':
		return l.token(TokenColon, start)
	case '(':
		return l.token(TokenLParen, start)
	case ')':
		return l.token(TokenRParen, start)
	case '{':
		return l.token(TokenLBrace, start)
	case '}':
		return l.token(TokenRBrace, start)
	case '[':
		return l.token(TokenLBracket, start)
	case ']':
		return l.token(TokenRBracket, start)
	case '+':
		return l.token(TokenPlus, start)
	case '-':
		return l.token(TokenMinus, start)
	case '*':
		return l.token(TokenStar, start)
	case '=':
		return l.token(TokenEQ, start)
	case '<':
		if l.peek() == '=' {
			l.advance(1)
			return l.token(TokenLE, start)
		}
		if l.peek() == '>' {
			l.advance(1)
			return l.token(TokenNE, start)
		}
		return l.token(TokenLT, start)
	case '>':
		if l.peek() == '=' {
			l.advance(1)
			return l.token(TokenGE, start)
		}
		return l.token(TokenGT, start)
	case '!':
		if l.peek() == '=' {
			l.advance(1)
			return l.token(TokenNE, start)
		}
	}
	return l.token(TokenError, start)
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance(1)
		case c == '-' && l.peekAt(1) == '-', c == '/' && l.peekAt(1) == '/':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance(1)
			}
		case c == '/' && l.peekAt(1) == '*':
			l.advance(2)
			for l.pos < len(l.src) {
				if l.src[l.pos] == '*' && l.peekAt(1) == '/' {
					l.advance(2)
					break
				}
				l.advance(1)
			}
		default:
			return
		}
	}
}

// quoted scans a delimited token, treating a doubled delimiter as an escape.
// An unterminated token lexes as TokenError to the end of input.
func (l *lexer) quoted(kind TokenKind, delim byte, start int) Token {
	l.advance(1)
	for l.pos < len(l.src) {
		if l.src[l.pos] == delim {
			if l.peekAt(1) == delim {
				l.advance(2)
				continue
			}
			l.advance(1)
			return l.token(kind, start)
		}
		l.advance(1)
	}
	return l.token(TokenError, start)
}

func (l *lexer) codeBlock(start int) Token {
	if l.peekAt(1) != '$' {
		l.advance(1)
		return l.token(TokenError, start)
	}
	l.advance(2)
	for l.pos < len(l.src) {
		if l.src[l.pos] == '$' && l.peekAt(1) == '$' {
			l.advance(2)
			return l.token(TokenCodeBlock, start)
		}
		l.advance(1)
	}
	return l.token(TokenError, start)
}

// uuid tries to scan a 36-character uuid constant at start. It only commits
// when the full hyphenated shape matches and no identifier character follows.
func (l *lexer) uuid(start int) (Token, bool) {
	const size = 36
	if start+size > len(l.src) {
		return Token{}, false
	}
	for i := 0; i < size; i++ {
		c := l.src[start+i]
		if i == 8 || i == 13 || i == 18 || i == 23 {
			if c != '-' {
				return Token{}, false
			}
		} else if !isHexDigit(c) {
			return Token{}, false
		}
	}
	if start+size < len(l.src) && isWordChar(l.src[start+size]) {
		return Token{}, false
	}
	l.advance(size)
	return l.token(TokenUUID, start), true
}

func (l *lexer) number(start int) Token {
	if l.src[l.pos] == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		l.advance(2)
		for l.pos < len(l.src) && isHexDigit(l.src[l.pos]) {
			l.advance(1)
		}
		return l.token(TokenNumber, start)
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.advance(1)
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' && isDigit(l.peekAt(1)) {
		l.advance(1)
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.advance(1)
		}
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		next := l.peekAt(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekAt(2))) {
			l.advance(2)
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.advance(1)
			}
		}
	}
	return l.token(TokenNumber, start)
}

func (l *lexer) word(start int) Token {
	for l.pos < len(l.src) && isWordChar(l.src[l.pos]) {
		l.advance(1)
	}
	return l.token(TokenWord, start)
}

func (l *lexer) token(kind TokenKind, start int) Token {
	return Token{
		Kind:   kind,
		Text:   l.src[start:l.pos],
		Start:  start,
		End:    l.pos,
		Line:   l.lineOf(start),
		Column: l.colOf(start),
	}
}

func (l *lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.src); i++ {
		if l.src[l.pos] == '\n' {
			l.line++
			l.col = 0
		} else {
			l.col++
		}
		l.pos++
	}
}

// lineOf recovers the line of a token start. Tokens never span the positions
// before start, so counting back from the current position is exact.
func (l *lexer) lineOf(start int) int {
	line := l.line
	for i := start; i < l.pos; i++ {
		if l.src[i] == '\n' {
			line--
		}
	}
	return line
}

func (l *lexer) colOf(start int) int {
	col := 0
	for i := start - 1; i >= 0 && l.src[i] != '\n'; i-- {
		col++
	}
	return col
}

func (l *lexer) peek() byte { return l.peekAt(0) }

func (l *lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isWordStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isWordChar(c byte) bool { return isWordStart(c) || isDigit(c) }
