package lexer_test

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"

	"github.com/blanketsucks/language/internal/diag"
	"github.com/blanketsucks/language/internal/lexer"
	"github.com/blanketsucks/language/internal/token"
)

func lex(t *testing.T, src string) ([]token.Token, *diag.Recorder) {
	t.Helper()
	rec := &diag.Recorder{}
	tokens := lexer.New("test.qt", src, rec).Lex()
	return tokens, rec
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexEmptySourceYieldsEOF(t *testing.T) {
	tokens, rec := lex(t, "")
	require.False(t, rec.Fatal)
	require.Equal(t, []token.Kind{token.EOF}, kinds(tokens))
}

func TestLexIdentifiersAndKeywords(t *testing.T) {
	tokens, rec := lex(t, "let mut x = foo_bar;")
	require.False(t, rec.Fatal)
	require.Equal(t, []token.Kind{
		token.Let, token.Mut, token.Identifier, token.Assign, token.Identifier, token.Semicolon, token.EOF,
	}, kinds(tokens))
	require.Equal(t, "foo_bar", tokens[4].Lexeme)
}

func TestLexNumberLiteral(t *testing.T) {
	tokens, rec := lex(t, "42")
	require.False(t, rec.Fatal)
	require.Equal(t, token.Number, tokens[0].Kind)
	require.Equal(t, "42", tokens[0].Lexeme)
}

func TestLexStringLiteral(t *testing.T) {
	tokens, rec := lex(t, `"hello world"`)
	require.False(t, rec.Fatal)
	require.Equal(t, token.String, tokens[0].Kind)
	require.Equal(t, "hello world", tokens[0].Lexeme)
}

func TestLexCharLiteral(t *testing.T) {
	tokens, rec := lex(t, `'a'`)
	require.False(t, rec.Fatal)
	require.Equal(t, token.Char, tokens[0].Kind)
	require.Equal(t, "a", tokens[0].Lexeme)
}

func TestLexUnterminatedStringIsFatal(t *testing.T) {
	tokens, rec := lex(t, `"unterminated`)
	require.True(t, rec.Fatal)
	require.Len(t, rec.Errors(), 1)
	require.Contains(t, rec.Errors()[0].Message, "unterminated string literal")
	require.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
}

func TestLexUnterminatedCharIsFatal(t *testing.T) {
	_, rec := lex(t, `'a`)
	require.True(t, rec.Fatal)
	require.Contains(t, rec.Errors()[0].Message, "unterminated character literal")
}

func TestLexLineCommentIsDiscarded(t *testing.T) {
	tokens, rec := lex(t, "let x = 1; # a comment\nlet y = 2;")
	require.False(t, rec.Fatal)
	require.Equal(t, []token.Kind{
		token.Let, token.Identifier, token.Assign, token.Number, token.Semicolon,
		token.Let, token.Identifier, token.Assign, token.Number, token.Semicolon,
		token.EOF,
	}, kinds(tokens))
}

func TestLexLineCommentAtEOFDoesNotHang(t *testing.T) {
	tokens, rec := lex(t, "# trailing comment with no newline")
	require.False(t, rec.Fatal)
	require.Equal(t, []token.Kind{token.EOF}, kinds(tokens))
}

func TestLexTwoCharOperators(t *testing.T) {
	tokens, rec := lex(t, "+= -= *= /= == != <= >= && || << >> -> => ::")
	require.False(t, rec.Fatal)
	require.Equal(t, []token.Kind{
		token.PlusEq, token.MinusEq, token.StarEq, token.SlashEq,
		token.EqEq, token.BangEq, token.LtEq, token.GtEq,
		token.AmpAmp, token.PipePipe, token.ShiftL, token.ShiftR,
		token.Arrow, token.FatArrow, token.DoubleColon, token.EOF,
	}, kinds(tokens))
}

func TestLexUnexpectedSymbolIsFatal(t *testing.T) {
	_, rec := lex(t, "`")
	require.True(t, rec.Fatal)
	require.Contains(t, rec.Errors()[0].Message, "unexpected symbol")
}

func TestLexTracksLineAndColumn(t *testing.T) {
	tokens, rec := lex(t, "let\nx")
	require.False(t, rec.Fatal)

	require.Equal(t, 1, tokens[0].Span.Start.Line)
	require.Equal(t, 1, tokens[0].Span.Start.Column)

	require.Equal(t, 2, tokens[1].Span.Start.Line)
	require.Equal(t, 1, tokens[1].Span.Start.Column)
}

func TestLexSpanLineIsCurrentLineOnly(t *testing.T) {
	tokens, rec := lex(t, "let x = 1;\nlet y = 2;")
	require.False(t, rec.Fatal)

	// tokens[5] is "let" on the second line.
	require.Equal(t, token.Let, tokens[5].Kind)
	require.Equal(t, "let y = 2;", tokens[5].Span.Line)
}

// Lexing the same source twice yields token-equal results (spec.md §8's
// round-trip property), down to every Span field, not just Kind/Lexeme.
func TestLexingIsDeterministic(t *testing.T) {
	const src = "struct P { x: i32; y: i32; }\nfunc add(a: i32, b: i32) -> i32 { return a + b; }"

	first, firstRec := lex(t, src)
	require.False(t, firstRec.Fatal)

	second, secondRec := lex(t, src)
	require.False(t, secondRec.Fatal)

	if diff := pretty.Compare(first, second); diff != "" {
		t.Fatalf("lexing the same source twice produced different tokens (-first +second):\n%s", diff)
	}
}
