package codegen

import (
	"fmt"

	"github.com/blanketsucks/language/internal/ast"
)

// NullVisitor walks the tree read-only and tallies how many nodes of each
// Expr/Type variant it observed. It stands in for the real LLVM backend
// (spec.md §1's "code-generation visitor... out of scope") so the compiler
// pipeline has something concrete to call and test against.
type NullVisitor struct {
	Counts map[string]int
}

func NewNullVisitor() *NullVisitor {
	return &NullVisitor{Counts: make(map[string]int)}
}

func (v *NullVisitor) Visit(exprs []ast.Expr) error {
	for _, e := range exprs {
		v.visitExpr(e)
	}
	return nil
}

func (v *NullVisitor) visitExpr(e ast.Expr) {
	if e == nil {
		return
	}
	v.Counts[exprKind(e)]++

	switch n := e.(type) {
	case *ast.ArrayLit:
		v.visitExprs(n.Elements)
	case *ast.TupleLit:
		v.visitExprs(n.Elements)
	case *ast.BlockExpr:
		v.visitExprs(n.Stmts)
	case *ast.LetExpr:
		v.visitVarAssign(n.Assign)
	case *ast.ConstExpr:
		v.visitVarAssign(n.Assign)
	case *ast.TypeAliasExpr:
		v.visitType(n.Type)
	case *ast.StructExpr:
		v.visitStructDecl(n.Decl)
	case *ast.EnumExpr:
		for _, enm := range n.Enumerators {
			v.visitExpr(enm.Value)
		}
	case *ast.ImplExpr:
		v.visitType(n.Type)
		v.visitExprs(n.Body)
	case *ast.PrototypeExpr:
		v.visitProtoDecl(n.Proto)
	case *ast.FuncExpr:
		v.visitProtoDecl(n.Proto)
		v.visitExpr(n.Body)
	case *ast.UnaryOpExpr:
		v.visitExpr(n.Operand)
	case *ast.BinaryOpExpr:
		v.visitExpr(n.Left)
		v.visitExpr(n.Right)
	case *ast.InplaceBinOpExpr:
		v.visitExpr(n.Left)
		v.visitExpr(n.Right)
	case *ast.CastExpr:
		v.visitExpr(n.Operand)
		v.visitType(n.Type)
	case *ast.SizeofExpr:
		v.visitType(n.Type)
	case *ast.IndexExpr:
		v.visitExpr(n.Receiver)
		v.visitExpr(n.Index)
	case *ast.AttrExpr:
		v.visitExpr(n.Receiver)
	case *ast.CallExpr:
		v.visitExpr(n.Callee)
		v.visitExprs(n.Args)
		for _, key := range n.KwOrder {
			v.visitExpr(n.KwArgs[key])
		}
	case *ast.StructLiteralExpr:
		v.visitExpr(n.Struct)
		for _, key := range n.Order {
			v.visitExpr(n.Fields[key])
		}
	case *ast.TernaryExpr:
		v.visitExpr(n.Then)
		v.visitExpr(n.Cond)
		v.visitExpr(n.Else)
	case *ast.IfExpr:
		v.visitExpr(n.Cond)
		v.visitExpr(n.Then)
		v.visitExpr(n.Else)
	case *ast.WhileExpr:
		v.visitExpr(n.Cond)
		v.visitExpr(n.Body)
	case *ast.ForExpr:
		v.visitExpr(n.Iterable)
		v.visitExpr(n.Body)
	case *ast.RetExpr:
		v.visitExpr(n.Value)
	}
}

func (v *NullVisitor) visitExprs(exprs []ast.Expr) {
	for _, e := range exprs {
		v.visitExpr(e)
	}
}

func (v *NullVisitor) visitVarAssign(a *ast.VarAssign) {
	if a == nil {
		return
	}
	v.visitType(a.Type)
	v.visitExpr(a.Value)
}

func (v *NullVisitor) visitStructDecl(d *ast.StructDecl) {
	if d == nil {
		return
	}
	for _, f := range d.Fields {
		v.visitType(f.Type)
	}
	v.visitExprs(d.Body)
}

func (v *NullVisitor) visitProtoDecl(p *ast.ProtoDecl) {
	if p == nil {
		return
	}
	for _, a := range p.Args {
		v.visitType(a.Type)
		v.visitExpr(a.Default)
	}
	v.visitType(p.Return)
}

func (v *NullVisitor) visitType(t ast.TypeExpr) {
	if t == nil {
		return
	}
	v.Counts[typeKind(t)]++

	switch n := t.(type) {
	case *ast.TupleType:
		for _, e := range n.Elements {
			v.visitType(e)
		}
	case *ast.ArrayType:
		v.visitType(n.Element)
		v.visitExpr(n.Size)
	case *ast.FuncType:
		for _, param := range n.Params {
			v.visitType(param)
		}
		v.visitType(n.Return)
	case *ast.PtrType:
		v.visitType(n.Pointee)
	case *ast.RefType:
		v.visitType(n.Referent)
	}
}

func exprKind(e ast.Expr) string {
	switch e.(type) {
	case *ast.IntegerLit:
		return "Integer"
	case *ast.FloatLit:
		return "Float"
	case *ast.StringLit:
		return "String"
	case *ast.ArrayLit:
		return "Array"
	case *ast.TupleLit:
		return "Tuple"
	case *ast.BlockExpr:
		return "Block"
	case *ast.Identifier:
		return "Identifier"
	case *ast.Path:
		return "Path"
	case *ast.LetExpr:
		return "Let"
	case *ast.ConstExpr:
		return "Const"
	case *ast.TypeAliasExpr:
		return "Type"
	case *ast.StructExpr:
		return "Struct"
	case *ast.EnumExpr:
		return "Enum"
	case *ast.ImplExpr:
		return "Impl"
	case *ast.PrototypeExpr:
		return "Prototype"
	case *ast.FuncExpr:
		return "Func"
	case *ast.UnaryOpExpr:
		return "UnaryOp"
	case *ast.BinaryOpExpr:
		return "BinaryOp"
	case *ast.InplaceBinOpExpr:
		return "InplaceBinOp"
	case *ast.CastExpr:
		return "Cast"
	case *ast.SizeofExpr:
		return "Sizeof"
	case *ast.IndexExpr:
		return "Index"
	case *ast.AttrExpr:
		return "Attr"
	case *ast.CallExpr:
		return "Call"
	case *ast.StructLiteralExpr:
		return "StructLiteral"
	case *ast.TernaryExpr:
		return "Ternary"
	case *ast.IfExpr:
		return "If"
	case *ast.WhileExpr:
		return "While"
	case *ast.ForExpr:
		return "For"
	case *ast.RetExpr:
		return "Ret"
	case *ast.BreakExpr:
		return "Break"
	case *ast.ContinueExpr:
		return "Continue"
	case *ast.ImportExpr:
		return "Import"
	default:
		return fmt.Sprintf("%T", e)
	}
}

func typeKind(t ast.TypeExpr) string {
	switch t.(type) {
	case *ast.NamedType:
		return "NamedType"
	case *ast.TupleType:
		return "TupleType"
	case *ast.ArrayType:
		return "ArrayType"
	case *ast.FuncType:
		return "FuncType"
	case *ast.PtrType:
		return "PtrType"
	case *ast.RefType:
		return "RefType"
	default:
		return fmt.Sprintf("%T", t)
	}
}
