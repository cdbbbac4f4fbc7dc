package parser_test

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/blanketsucks/language/internal/ast"
	"github.com/blanketsucks/language/internal/diag"
	"github.com/blanketsucks/language/internal/lexer"
	"github.com/blanketsucks/language/internal/parser"
	"github.com/blanketsucks/language/internal/token"
)

// allowASTUnexported permits cmp to compare every ast node's embedded,
// unexported "base" field (which carries the node's Span). Every type that
// needs it lives in internal/ast, so gating on package path is sufficient.
var allowASTUnexported = cmp.Exporter(func(t reflect.Type) bool {
	return t.PkgPath() == "github.com/blanketsucks/language/internal/ast"
})

func parse(t *testing.T, src string) ([]ast.Expr, *diag.Recorder) {
	t.Helper()
	rec := &diag.Recorder{}
	tokens := lexer.New("test.qt", src, rec).Lex()
	require.False(t, rec.Fatal, "unexpected lex failure for %q", src)
	exprs := parser.ParseFile(tokens, rec)
	return exprs, rec
}

func parseOne(t *testing.T, src string) ast.Expr {
	t.Helper()
	exprs, rec := parse(t, src)
	require.False(t, rec.Fatal, "unexpected parse errors: %+v", rec.Errors())
	require.Len(t, exprs, 1)
	return exprs[0]
}

// Scenario 1: let mut x: i32 = 1 + 2 * 3;
func TestLetWithPrecedence(t *testing.T) {
	e := parseOne(t, "let mut x: i32 = 1 + 2 * 3;")
	let, ok := e.(*ast.LetExpr)
	require.True(t, ok)

	require.Len(t, let.Assign.Idents, 1)
	require.Equal(t, "x", let.Assign.Idents[0].Value)
	require.True(t, let.Assign.Idents[0].IsMutable)
	require.False(t, let.Assign.IsTupleUnpack)

	named, ok := let.Assign.Type.(*ast.NamedType)
	require.True(t, ok)
	require.Equal(t, "i32", named.Path.Name)

	add, ok := let.Assign.Value.(*ast.BinaryOpExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinAdd, add.Op)

	one, ok := add.Left.(*ast.IntegerLit)
	require.True(t, ok)
	require.Equal(t, "1", one.Value)

	mul, ok := add.Right.(*ast.BinaryOpExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinMul, mul.Op)

	two := mul.Left.(*ast.IntegerLit)
	three := mul.Right.(*ast.IntegerLit)
	require.Equal(t, "2", two.Value)
	require.Equal(t, "3", three.Value)
}

// Scenario 2: struct P { x: i32; y: i32; }
func TestStructFields(t *testing.T) {
	e := parseOne(t, "struct P { x: i32; y: i32; }")
	s, ok := e.(*ast.StructExpr)
	require.True(t, ok)

	require.Equal(t, "P", s.Decl.Name)
	require.Empty(t, s.Decl.Parents)
	require.Empty(t, s.Decl.Body)
	require.Len(t, s.Decl.Fields, 2)

	require.Equal(t, "x", s.Decl.Fields[0].Name)
	require.Equal(t, 0, s.Decl.Fields[0].Index)
	require.Equal(t, "y", s.Decl.Fields[1].Name)
	require.Equal(t, 1, s.Decl.Fields[1].Index)
}

// Scenario 3: f(1, k = 2, 3); is fatal (positional after keyword).
func TestCallPositionalAfterKeywordIsFatal(t *testing.T) {
	_, rec := parse(t, "f(1, k = 2, 3);")
	require.True(t, rec.Fatal)
	require.Contains(t, rec.Errors()[0].Message, "Expected an identifier")
}

// Scenario 4: return; at top level is fatal.
func TestReturnOutsideFunctionIsFatal(t *testing.T) {
	_, rec := parse(t, "return;")
	require.True(t, rec.Fatal)
	require.Contains(t, rec.Errors()[0].Message, "Cannot return outside of a function")
}

// Scenario 5: a + b * c == d -> Eq(Add(a, Mul(b, c)), d)
func TestMixedPrecedenceAndComparison(t *testing.T) {
	e := parseOne(t, "a + b * c == d;")
	eq, ok := e.(*ast.BinaryOpExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinEq, eq.Op)

	add, ok := eq.Left.(*ast.BinaryOpExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinAdd, add.Op)

	mul, ok := add.Right.(*ast.BinaryOpExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinMul, mul.Op)

	_, ok = eq.Right.(*ast.Identifier)
	require.True(t, ok)
}

// Scenario 6: let (mut a, b) = pair;
func TestTupleUnpack(t *testing.T) {
	e := parseOne(t, "let (mut a, b) = pair;")
	let, ok := e.(*ast.LetExpr)
	require.True(t, ok)

	require.True(t, let.Assign.IsTupleUnpack)
	require.Len(t, let.Assign.Idents, 2)
	require.Equal(t, "a", let.Assign.Idents[0].Value)
	require.True(t, let.Assign.Idents[0].IsMutable)
	require.Equal(t, "b", let.Assign.Idents[1].Value)
	require.False(t, let.Assign.Idents[1].IsMutable)
}

// Scenario 7: x as *mut i32
func TestCastToMutablePointer(t *testing.T) {
	e := parseOne(t, "x as *mut i32;")
	cast, ok := e.(*ast.CastExpr)
	require.True(t, ok)

	_, ok = cast.Operand.(*ast.Identifier)
	require.True(t, ok)

	ptr, ok := cast.Type.(*ast.PtrType)
	require.True(t, ok)
	require.True(t, ptr.IsMutable)

	named, ok := ptr.Pointee.(*ast.NamedType)
	require.True(t, ok)
	require.Equal(t, "i32", named.Path.Name)
}

// Scenario 8: "Foo { a: 1 }" is a struct literal; "Foo { 1 }" is not.
func TestStructLiteralDisambiguation(t *testing.T) {
	e := parseOne(t, "Foo { a: 1 };")
	lit, ok := e.(*ast.StructLiteralExpr)
	require.True(t, ok)

	ident, ok := lit.Struct.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "Foo", ident.Value)
	require.Equal(t, []string{"a"}, lit.Order)

	one := lit.Fields["a"].(*ast.IntegerLit)
	require.Equal(t, "1", one.Value)
}

func TestBareBlockIsNotStructLiteral(t *testing.T) {
	// "Foo { 1 }" is not a valid top-level statement: Foo is a bare
	// expression statement requiring a ';', so the parser finds '{' where
	// it expects ';' and reports a parse error rather than building a
	// StructLiteralExpr.
	_, rec := parse(t, "Foo { 1 };")
	require.True(t, rec.Fatal)
}

func TestIndexThenAttrIsLeftLeaning(t *testing.T) {
	e := parseOne(t, "a[i].b;")
	attr, ok := e.(*ast.AttrExpr)
	require.True(t, ok)
	require.Equal(t, "b", attr.Name)

	idx, ok := attr.Receiver.(*ast.IndexExpr)
	require.True(t, ok)

	recv, ok := idx.Receiver.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "a", recv.Value)
}

func TestAttrThenIndexIsLeftLeaning(t *testing.T) {
	e := parseOne(t, "a.b[i];")
	idx, ok := e.(*ast.IndexExpr)
	require.True(t, ok)

	attr, ok := idx.Receiver.(*ast.AttrExpr)
	require.True(t, ok)
	require.Equal(t, "b", attr.Name)
}

func TestEqualPrecedenceIsLeftAssociative(t *testing.T) {
	e := parseOne(t, "a + b + c;")
	outer, ok := e.(*ast.BinaryOpExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinAdd, outer.Op)

	inner, ok := outer.Left.(*ast.BinaryOpExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinAdd, inner.Op)

	_, ok = outer.Right.(*ast.Identifier)
	require.True(t, ok)
}

func TestForLoopBinders(t *testing.T) {
	e := parseOne(t, "for k, v in items { }")
	forExpr, ok := e.(*ast.ForExpr)
	require.True(t, ok)
	require.Len(t, forExpr.Binders, 2)
	require.Equal(t, "k", forExpr.Binders[0].Value)
	require.Equal(t, "v", forExpr.Binders[1].Value)

	_, ok = forExpr.Iterable.(*ast.Identifier)
	require.True(t, ok)
}

func TestBreakOutsideLoopIsFatal(t *testing.T) {
	_, rec := parse(t, "break;")
	require.True(t, rec.Fatal)
	require.Contains(t, rec.Errors()[0].Message, "Cannot break outside of a loop")
}

func TestContinueInsideWhileIsAccepted(t *testing.T) {
	_, rec := parse(t, "while true { continue; }")
	require.False(t, rec.Fatal)
}

func TestFuncPrototypeVsBody(t *testing.T) {
	proto := parseOne(t, "func foo(x: i32) -> i32;")
	_, ok := proto.(*ast.PrototypeExpr)
	require.True(t, ok)

	fn := parseOne(t, "func foo(x: i32) -> i32 { return x; }")
	_, ok = fn.(*ast.FuncExpr)
	require.True(t, ok)
}

func TestStructParentList(t *testing.T) {
	e := parseOne(t, "struct Child (Base), (Other) { }")
	s, ok := e.(*ast.StructExpr)
	require.True(t, ok)
	require.Len(t, s.Decl.Parents, 2)
	require.Equal(t, "Base", s.Decl.Parents[0].Name)
	require.Equal(t, "Other", s.Decl.Parents[1].Name)
}

func TestFuncTypeWithMultipleParams(t *testing.T) {
	e := parseOne(t, "let cb: func(i32, i32) -> i32;")
	let, ok := e.(*ast.LetExpr)
	require.True(t, ok)

	ft, ok := let.Assign.Type.(*ast.FuncType)
	require.True(t, ok)
	require.Len(t, ft.Params, 2)
	require.NotNil(t, ft.Return)
}

func TestTypeAliasInsideStructBody(t *testing.T) {
	e := parseOne(t, "struct S { type Id = i32; }")
	s, ok := e.(*ast.StructExpr)
	require.True(t, ok)
	require.Len(t, s.Decl.Body, 1)

	alias, ok := s.Decl.Body[0].(*ast.TypeAliasExpr)
	require.True(t, ok)
	require.Equal(t, "Id", alias.Name)

	named, ok := alias.Type.(*ast.NamedType)
	require.True(t, ok)
	require.Equal(t, "i32", named.Path.Name)
}

func TestDuplicateKeywordArgumentIsFatal(t *testing.T) {
	_, rec := parse(t, "f(k = 1, k = 2);")
	require.True(t, rec.Fatal)
	require.Contains(t, rec.Errors()[0].Message, "Duplicate keyword argument")
}

func TestDuplicateStructLiteralFieldIsFatal(t *testing.T) {
	_, rec := parse(t, "Foo { a: 1, a: 2 };")
	require.True(t, rec.Fatal)
	require.Contains(t, rec.Errors()[0].Message, "Duplicate field")
}

func TestImportForms(t *testing.T) {
	alias := parseOne(t, "import foo::bar as baz;")
	ai, ok := alias.(*ast.ImportExpr)
	require.True(t, ok)
	require.Equal(t, "baz", ai.Alias)

	items := parseOne(t, "import foo::bar { a, b };")
	ii, ok := items.(*ast.ImportExpr)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, ii.Items)

	wildcard := parseOne(t, "import foo::bar *;")
	wi, ok := wildcard.(*ast.ImportExpr)
	require.True(t, ok)
	require.True(t, wi.Wildcard)
}

// Universal invariant, checked on the top-level node: its span start is <=
// end by index and its filename is the lexer's.
func TestSpanInvariantHolds(t *testing.T) {
	exprs, rec := parse(t, "let x = 1 + 2 * (3 - 4);")
	require.False(t, rec.Fatal)
	require.Len(t, exprs, 1)

	span := exprs[0].Span()
	require.LessOrEqual(t, span.Start.Index, span.End.Index)
	require.Equal(t, "test.qt", span.Filename)
}

// Round-trip: parsing the same token list twice yields structurally equal
// ASTs, spans included (the parse is deterministic and does not mutate the
// borrowed token slice).
func TestParsingIsDeterministic(t *testing.T) {
	const src = "let mut x: i32 = 1 + 2 * 3;"
	rec := &diag.Recorder{}
	tokens := lexer.New("test.qt", src, rec).Lex()
	require.False(t, rec.Fatal)

	firstExprs := parser.ParseFile(tokens, &diag.Recorder{})
	secondExprs := parser.ParseFile(tokens, &diag.Recorder{})

	if diff := cmp.Diff(firstExprs, secondExprs, allowASTUnexported); diff != "" {
		t.Fatalf("parsing the same token list twice produced different ASTs (-first +second):\n%s", diff)
	}
}

func TestEmptyInputYieldsNoExpressions(t *testing.T) {
	exprs, rec := parse(t, "")
	require.False(t, rec.Fatal)
	require.Empty(t, exprs)
}

func TestTokenEOFAlwaysLast(t *testing.T) {
	rec := &diag.Recorder{}
	tokens := lexer.New("test.qt", "let x = 1;", rec).Lex()
	require.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
}
