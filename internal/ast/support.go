package ast

import "github.com/blanketsucks/language/internal/token"

// Identifier is a bound name: a plain binder (let/const/argument/for-loop) or
// a bare name reference, depending on where the parser builds it.
type Identifier struct {
	base
	Value     string
	IsMutable bool
}

func NewIdentifier(value string, isMutable bool, span token.Span) *Identifier {
	return &Identifier{base: base{span}, Value: value, IsMutable: isMutable}
}

func (*Identifier) exprNode() {}

// Path is a qualified name: "head::segment::segment...". A bare identifier
// path has an empty Segments slice.
type Path struct {
	base
	Name     string
	Segments []string
}

func NewPath(name string, segments []string, span token.Span) *Path {
	return &Path{base: base{span}, Name: name, Segments: segments}
}

func (*Path) exprNode() {}

// VarAssign is the payload shared by Let and Const declarations.
//
// If IsTupleUnpack, len(Idents) >= 1 and the source used parenthesized
// binders; otherwise len(Idents) == 1.
type VarAssign struct {
	Idents        []*Identifier
	Type          TypeExpr // nil if absent
	Value         Expr     // nil if absent
	IsTupleUnpack bool
}

// Linkage is a function prototype's calling-convention annotation.
type Linkage int

const (
	LinkageNone Linkage = iota
	LinkageUnspecified
	LinkageC
)

// Argument is one parameter of a function prototype.
type Argument struct {
	base
	Name        string
	Type        TypeExpr // nil when IsSelf
	Default     Expr     // nil if no default value
	IsSelf      bool
	IsKwarg     bool
	IsMutable   bool
	IsVariadic  bool // reserved; never set true (spec.md §9 Open Questions)
}

func NewArgument(name string, ty TypeExpr, def Expr, isSelf, isKwarg, isMutable bool, span token.Span) *Argument {
	return &Argument{
		base:      base{span},
		Name:      name,
		Type:      ty,
		Default:   def,
		IsSelf:    isSelf,
		IsKwarg:   isKwarg,
		IsMutable: isMutable,
	}
}

// ProtoDecl is a function's signature without a body.
type ProtoDecl struct {
	base
	Name        string
	Args        []*Argument
	Return      TypeExpr // nil if absent
	IsCVariadic bool     // reserved; never set true
	Linkage     Linkage
}

func NewProtoDecl(name string, args []*Argument, ret TypeExpr, linkage Linkage, span token.Span) *ProtoDecl {
	return &ProtoDecl{base: base{span}, Name: name, Args: args, Return: ret, Linkage: linkage}
}

// StructField is one field of a struct declaration.
type StructField struct {
	Name       string
	Type       TypeExpr
	Index      int // zero-based declaration order
	IsReadonly bool
	IsPrivate  bool
}

// StructDecl is the payload of an Expr Struct variant.
type StructDecl struct {
	Name    string
	Opaque  bool
	Fields  []*StructField
	Parents []*Path
	Body    []Expr // Const, Type, or Func expressions only
}

// Enumerator is one member of an enum declaration.
type Enumerator struct {
	Name  string
	Value Expr // nil if absent
}
