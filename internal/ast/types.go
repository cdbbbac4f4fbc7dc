package ast

import "github.com/blanketsucks/language/internal/token"

// NamedType is a qualified path used as a type, e.g. "i32" or "foo::Bar".
type NamedType struct {
	base
	Path *Path
}

func NewNamedType(path *Path, span token.Span) *NamedType {
	return &NamedType{base: base{span}, Path: path}
}

func (*NamedType) typeNode() {}

// TupleType is an ordered, possibly-empty list of element types.
type TupleType struct {
	base
	Elements []TypeExpr
}

func NewTupleType(elements []TypeExpr, span token.Span) *TupleType {
	return &TupleType{base: base{span}, Elements: elements}
}

func (*TupleType) typeNode() {}

// ArrayType is "[Element ; Size]"; Size is a full expression, not decoded.
type ArrayType struct {
	base
	Element TypeExpr
	Size    Expr
}

func NewArrayType(element TypeExpr, size Expr, span token.Span) *ArrayType {
	return &ArrayType{base: base{span}, Element: element, Size: size}
}

func (*ArrayType) typeNode() {}

// FuncType is "func(Params...) [-> Return]".
type FuncType struct {
	base
	Params []TypeExpr
	Return TypeExpr // nil if absent
}

func NewFuncType(params []TypeExpr, ret TypeExpr, span token.Span) *FuncType {
	return &FuncType{base: base{span}, Params: params, Return: ret}
}

func (*FuncType) typeNode() {}

// PtrType is "*[mut] T". The parser rejects a pointer directly wrapping a
// reference (spec.md §3's invariant); PtrType itself carries no enforcement,
// it is simply never constructed with a RefType Pointee.
type PtrType struct {
	base
	Pointee   TypeExpr
	IsMutable bool
}

func NewPtrType(pointee TypeExpr, isMutable bool, span token.Span) *PtrType {
	return &PtrType{base: base{span}, Pointee: pointee, IsMutable: isMutable}
}

func (*PtrType) typeNode() {}

// RefType is "&[mut] T".
type RefType struct {
	base
	Referent  TypeExpr
	IsMutable bool
}

func NewRefType(referent TypeExpr, isMutable bool, span token.Span) *RefType {
	return &RefType{base: base{span}, Referent: referent, IsMutable: isMutable}
}

func (*RefType) typeNode() {}
