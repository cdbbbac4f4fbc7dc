package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blanketsucks/language/internal/codegen"
	"github.com/blanketsucks/language/internal/diag"
	"github.com/blanketsucks/language/internal/lexer"
	"github.com/blanketsucks/language/internal/parser"
)

func TestNullVisitorCountsVariantsInSampleProgram(t *testing.T) {
	const src = `
struct Point { x: i32; y: i32; }

func add(a: i32, b: i32) -> i32 {
	return a + b;
}

func main() {
	let p = Point { x: 1, y: 2 };
	let sum = add(p.x, p.y);
	for i in p {
		break;
	}
}
`
	rec := &diag.Recorder{}
	tokens := lexer.New("test.qt", src, rec).Lex()
	require.False(t, rec.Fatal)

	exprs := parser.ParseFile(tokens, rec)
	require.False(t, rec.Fatal, "parse errors: %+v", rec.Errors())
	require.NotEmpty(t, exprs)

	visitor := codegen.NewNullVisitor()
	require.NoError(t, visitor.Visit(exprs))

	require.Equal(t, 1, visitor.Counts["Struct"])
	require.Equal(t, 2, visitor.Counts["Func"])
	require.Greater(t, visitor.Counts["Identifier"], 0)
	require.Greater(t, visitor.Counts["BinaryOp"], 0)
	require.Equal(t, 1, visitor.Counts["For"])
	require.Equal(t, 1, visitor.Counts["Break"])
}

func TestNullVisitorOnEmptyInput(t *testing.T) {
	visitor := codegen.NewNullVisitor()
	require.NoError(t, visitor.Visit(nil))
	require.Empty(t, visitor.Counts)
}
