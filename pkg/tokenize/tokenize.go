// Package tokenize provides CQL tokenization for syntax highlighting.
package tokenize

import (
	"strings"

	"github.com/tentacle-scylla/cqlast/pkg/grammar"
)

// TokenType identifies the semantic type of a token for syntax highlighting.
type TokenType string

const (
	TokenKeyword       TokenType = "keyword"
	TokenFunction      TokenType = "function"
	TokenType_         TokenType = "type"
	TokenString        TokenType = "string"
	TokenNumber        TokenType = "number"
	TokenIdentifier    TokenType = "identifier"
	TokenOperator      TokenType = "operator"
	TokenPunctuation   TokenType = "punctuation"
	TokenPartitionKey  TokenType = "partition_key"
	TokenClusteringKey TokenType = "clustering_key"
	TokenColumn        TokenType = "column"
	TokenPlaceholder   TokenType = "placeholder"
)

// Token represents a single token for syntax highlighting.
type Token struct {
	Start int       `json:"start"`
	End   int       `json:"end"`
	Text  string    `json:"text"`
	Type  TokenType `json:"type"`
}

// Context provides semantic information for enhanced tokenization.
type Context struct {
	PartitionKeys  []string
	ClusteringKeys []string
	Columns        []string
}

// typeNames are the built-in CQL type keywords.
var typeNames = makeSet([]string{
	"ascii", "bigint", "blob", "boolean", "counter", "date", "decimal",
	"double", "duration", "float", "frozen", "inet", "int", "list", "map",
	"set", "smallint", "text", "time", "timestamp", "timeuuid", "tinyint",
	"tuple", "uuid", "varchar", "varint",
})

// Tokenize returns all tokens from a CQL string with semantic classification.
func Tokenize(input string, ctx *Context) []Token {
	if input == "" {
		return nil
	}

	var partitionKeys, clusteringKeys, columns map[string]bool
	if ctx != nil {
		partitionKeys = makeSet(ctx.PartitionKeys)
		clusteringKeys = makeSet(ctx.ClusteringKeys)
		columns = makeSet(ctx.Columns)
	}

	raw := grammar.Lex(input)
	result := make([]Token, 0, len(raw))
	for i, tok := range raw {
		if tok.Kind == grammar.TokenEOF {
			continue
		}
		result = append(result, Token{
			Start: tok.Start,
			End:   tok.End,
			Text:  tok.Text,
			Type:  classify(raw, i, partitionKeys, clusteringKeys, columns),
		})
	}
	return result
}

func classify(tokens []grammar.Token, i int, partitionKeys, clusteringKeys, columns map[string]bool) TokenType {
	tok := tokens[i]
	switch tok.Kind {
	case grammar.TokenComma, grammar.TokenDot, grammar.TokenSemicolon,
		grammar.TokenColon, grammar.TokenLParen, grammar.TokenRParen,
		grammar.TokenLBrace, grammar.TokenRBrace,
		grammar.TokenLBracket, grammar.TokenRBracket:
		return TokenPunctuation
	case grammar.TokenLT, grammar.TokenLE, grammar.TokenGT, grammar.TokenGE,
		grammar.TokenEQ, grammar.TokenNE, grammar.TokenPlus,
		grammar.TokenMinus, grammar.TokenStar:
		return TokenOperator
	case grammar.TokenString, grammar.TokenCodeBlock:
		return TokenString
	case grammar.TokenNumber:
		return TokenNumber
	case grammar.TokenQuestion:
		return TokenPlaceholder
	case grammar.TokenUUID:
		return TokenIdentifier
	case grammar.TokenQuotedName:
		// Quoted names keep their delimiters in the token text.
		name := strings.Trim(tok.Text, `"`)
		return classifyName(strings.ToLower(name), partitionKeys, clusteringKeys, columns, TokenIdentifier)
	case grammar.TokenWord:
		// Fall through to word classification below.
	default:
		return TokenIdentifier
	}

	lower := strings.ToLower(tok.Text)

	// A word directly followed by an opening paren is a function call.
	if i+1 < len(tokens) {
		next := tokens[i+1]
		if next.Kind == grammar.TokenLParen && next.Start == tok.End && !grammar.IsKeyword(tok.Text) {
			return TokenFunction
		}
	}

	if typeNames[lower] {
		return TokenType_
	}
	if grammar.IsKeyword(tok.Text) {
		// Semantic context wins: reserved words can appear as column names.
		return classifyName(lower, partitionKeys, clusteringKeys, columns, TokenKeyword)
	}
	return classifyName(lower, partitionKeys, clusteringKeys, columns, TokenIdentifier)
}

// classifyName checks the semantic context maps, falling back to def.
func classifyName(lower string, partitionKeys, clusteringKeys, columns map[string]bool, def TokenType) TokenType {
	if partitionKeys != nil && partitionKeys[lower] {
		return TokenPartitionKey
	}
	if clusteringKeys != nil && clusteringKeys[lower] {
		return TokenClusteringKey
	}
	if columns != nil && columns[lower] {
		return TokenColumn
	}
	return def
}

// makeSet creates a case-insensitive lookup set from a slice of strings.
func makeSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	m := make(map[string]bool, len(items))
	for _, item := range items {
		m[strings.ToLower(item)] = true
	}
	return m
}
