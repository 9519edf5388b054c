package grammar

// TokenKind classifies a lexical token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	// TokenError marks input the lexer could not tokenize, e.g. an
	// unterminated string.
	TokenError
	// TokenWord is an unquoted identifier or keyword.
	TokenWord
	// TokenQuotedName is a double-quoted identifier, quotes included.
	TokenQuotedName
	// TokenString is a single-quoted string constant, quotes included.
	TokenString
	// TokenCodeBlock is a $$-delimited constant, delimiters included.
	TokenCodeBlock
	// TokenNumber is an integer, decimal, float or 0x hex constant.
	TokenNumber
	// TokenUUID is a uuid constant.
	TokenUUID
	TokenQuestion
	TokenComma
	TokenDot
	TokenSemicolon
	TokenColon
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenLT
	TokenLE
	TokenGT
	TokenGE
	TokenEQ
	TokenNE
	TokenPlus
	TokenMinus
	TokenStar
)

// Token is a single lexical token. Start and End are byte offsets into the
// source; Line is 1-based and Column is the 0-based byte column of Start.
type Token struct {
	Kind   TokenKind
	Text   string
	Start  int
	End    int
	Line   int
	Column int
}

// Is reports whether the token is a word matching kw, compared case
// insensitively.
func (t Token) Is(kw string) bool {
	if t.Kind != TokenWord || len(t.Text) != len(kw) {
		return false
	}
	for i := 0; i < len(kw); i++ {
		c := t.Text[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		k := kw[i]
		if 'a' <= k && k <= 'z' {
			k -= 'a' - 'A'
		}
		if c != k {
			return false
		}
	}
	return true
}
