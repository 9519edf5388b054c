package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestLexBasic(t *testing.T) {
	tokens := Lex("SELECT * FROM ks.t WHERE id = 1;")
	require.Equal(t, []TokenKind{
		TokenWord, TokenStar, TokenWord, TokenWord, TokenDot, TokenWord,
		TokenWord, TokenWord, TokenEQ, TokenNumber, TokenSemicolon, TokenEOF,
	}, kinds(tokens))
	assert.Equal(t, "SELECT", tokens[0].Text)
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 6, tokens[0].End)
}

func TestLexSkipsComments(t *testing.T) {
	tokens := Lex("-- line comment\n// another\n/* block; comment */ SELECT")
	require.Equal(t, []TokenKind{TokenWord, TokenEOF}, kinds(tokens))
	assert.Equal(t, "SELECT", tokens[0].Text)
}

func TestLexStrings(t *testing.T) {
	tokens := Lex("'it''s' \"Quoted Name\" $$ body $$")
	require.Equal(t, []TokenKind{TokenString, TokenQuotedName, TokenCodeBlock, TokenEOF}, kinds(tokens))
	assert.Equal(t, "'it''s'", tokens[0].Text)
	assert.Equal(t, `"Quoted Name"`, tokens[1].Text)
	assert.Equal(t, "$$ body $$", tokens[2].Text)
}

func TestLexUnterminatedString(t *testing.T) {
	tokens := Lex("'oops")
	require.Equal(t, []TokenKind{TokenError, TokenEOF}, kinds(tokens))
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"1e10", "1e10"},
		{"2.5e-3", "2.5e-3"},
		{"0xCAFE", "0xCAFE"},
	}
	for _, tt := range tests {
		tokens := Lex(tt.input)
		require.Equal(t, []TokenKind{TokenNumber, TokenEOF}, kinds(tokens), tt.input)
		assert.Equal(t, tt.text, tokens[0].Text)
	}
}

func TestLexUUID(t *testing.T) {
	tokens := Lex("123e4567-e89b-12d3-a456-426614174000")
	require.Equal(t, []TokenKind{TokenUUID, TokenEOF}, kinds(tokens))

	// A trailing word character means it is not a uuid.
	tokens = Lex("123e4567-e89b-12d3-a456-426614174000x")
	assert.NotEqual(t, TokenUUID, tokens[0].Kind)
}

func TestLexOperators(t *testing.T) {
	tokens := Lex("< <= > >= = <> != + - ?")
	require.Equal(t, []TokenKind{
		TokenLT, TokenLE, TokenGT, TokenGE, TokenEQ, TokenNE, TokenNE,
		TokenPlus, TokenMinus, TokenQuestion, TokenEOF,
	}, kinds(tokens))
}

func TestLexPositions(t *testing.T) {
	tokens := Lex("SELECT *\nFROM t")
	require.Len(t, tokens, 5)
	from := tokens[2]
	assert.Equal(t, "FROM", from.Text)
	assert.Equal(t, 2, from.Line)
	assert.Equal(t, 0, from.Column)
	tbl := tokens[3]
	assert.Equal(t, 2, tbl.Line)
	assert.Equal(t, 5, tbl.Column)
}

func TestTokenIs(t *testing.T) {
	tok := Token{Kind: TokenWord, Text: "select"}
	assert.True(t, tok.Is("SELECT"))
	assert.True(t, tok.Is("select"))
	assert.False(t, tok.Is("FROM"))
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("SELECT"))
	assert.True(t, IsKeyword("select"))
	assert.False(t, IsKeyword("users"))
	// id is a WITH-option name, not a reserved word.
	assert.False(t, IsKeyword("id"))
}
