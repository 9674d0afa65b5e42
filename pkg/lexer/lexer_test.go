package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func runTokens(t *testing.T, input string, want []struct {
	Type    TokenType
	Literal string
}) {
	t.Helper()

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		require.Equalf(t, tt.Type, tok.Type, "tests[%d] - tokentype wrong (literal %q)", i, tok.Literal)
		require.Equalf(t, tt.Literal, tok.Literal, "tests[%d] - literal wrong", i)
	}
}

func TestNextTokenStatement(t *testing.T) {
	input := `fn fact(n) [
  if (n <= 1) [
    return 1
  ]
  return n * fact(n - 1)
]`

	runTokens(t, input, []struct {
		Type    TokenType
		Literal string
	}{
		{TOKEN_FN, "fn"},
		{TOKEN_IDENT, "fact"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "n"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LBRACKET, "["},
		{TOKEN_IF, "if"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "n"},
		{TOKEN_LTE, "<="},
		{TOKEN_NUMBER, "1"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LBRACKET, "["},
		{TOKEN_RETURN, "return"},
		{TOKEN_NUMBER, "1"},
		{TOKEN_RBRACKET, "]"},
		{TOKEN_RETURN, "return"},
		{TOKEN_IDENT, "n"},
		{TOKEN_STAR, "*"},
		{TOKEN_IDENT, "fact"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "n"},
		{TOKEN_MINUS, "-"},
		{TOKEN_NUMBER, "1"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_RBRACKET, "]"},
		{TOKEN_EOF, ""},
	})
}

func TestOperatorsAndComparisons(t *testing.T) {
	input := "+-*/%^ == != < > <= >= === !== = += -= *= /= %= ^="

	runTokens(t, input, []struct {
		Type    TokenType
		Literal string
	}{
		{TOKEN_PLUS, "+"},
		{TOKEN_MINUS, "-"},
		{TOKEN_STAR, "*"},
		{TOKEN_SLASH, "/"},
		{TOKEN_PERCENT, "%"},
		{TOKEN_CARET, "^"},
		{TOKEN_EQ, "=="},
		{TOKEN_NEQ, "!="},
		{TOKEN_LT, "<"},
		{TOKEN_GT, ">"},
		{TOKEN_LTE, "<="},
		{TOKEN_GTE, ">="},
		{TOKEN_SEQ, "==="},
		{TOKEN_SNEQ, "!=="},
		{TOKEN_ASSIGN, "="},
		{TOKEN_PLUS_ASSIGN, "+="},
		{TOKEN_MINUS_ASSIGN, "-="},
		{TOKEN_STAR_ASSIGN, "*="},
		{TOKEN_SLASH_ASSIGN, "/="},
		{TOKEN_PERCENT_ASSIGN, "%="},
		{TOKEN_CARET_ASSIGN, "^="},
		{TOKEN_EOF, ""},
	})
}

func TestNumbers(t *testing.T) {
	input := "123 3.14 0.5 2432902008176640000"

	runTokens(t, input, []struct {
		Type    TokenType
		Literal string
	}{
		{TOKEN_NUMBER, "123"},
		{TOKEN_NUMBER, "3.14"},
		{TOKEN_NUMBER, "0.5"},
		{TOKEN_NUMBER, "2432902008176640000"},
		{TOKEN_EOF, ""},
	})
}

func TestStrings(t *testing.T) {
	input := `"hello world" 'single quoted' "line\nbreak" "unknown\qescape"`

	runTokens(t, input, []struct {
		Type    TokenType
		Literal string
	}{
		{TOKEN_STRING, "hello world"},
		{TOKEN_STRING, "single quoted"},
		{TOKEN_STRING, "line\nbreak"},
		{TOKEN_STRING, "unknownqescape"},
		{TOKEN_EOF, ""},
	})
}

func TestKeywords(t *testing.T) {
	input := "print fn return if else and or def x"

	runTokens(t, input, []struct {
		Type    TokenType
		Literal string
	}{
		{TOKEN_PRINT, "print"},
		{TOKEN_FN, "fn"},
		{TOKEN_RETURN, "return"},
		{TOKEN_IF, "if"},
		{TOKEN_ELSE, "else"},
		{TOKEN_AND, "and"},
		{TOKEN_OR, "or"},
		{TOKEN_DEF, "def"},
		{TOKEN_IDENT, "x"},
		{TOKEN_EOF, ""},
	})
}

func TestComments(t *testing.T) {
	input := "x = 1 ; this is a comment\ny = 2"

	runTokens(t, input, []struct {
		Type    TokenType
		Literal string
	}{
		{TOKEN_IDENT, "x"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_NUMBER, "1"},
		{TOKEN_IDENT, "y"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_NUMBER, "2"},
		{TOKEN_EOF, ""},
	})
}

func TestUnterminatedStringRunsToEOF(t *testing.T) {
	l := New(`"never closed`)
	tok := l.NextToken()
	require.Equal(t, TOKEN_STRING, tok.Type)
	require.Equal(t, "never closed", tok.Literal)
	require.Equal(t, TOKEN_EOF, l.NextToken().Type)
}

func TestIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	require.Equal(t, TOKEN_ILLEGAL, tok.Type)
	require.Equal(t, "@", tok.Literal)
}
