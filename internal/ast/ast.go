// Package ast defines the AST quart's parser produces: two mutually
// recursive tagged unions rooted at Expr and Type (spec.md §3), plus the
// supporting record types each variant carries.
//
// Every node is owned uniquely by its parent; the root is the ordered list
// of top-level expressions ParseFile returns. Nodes are not modified after
// construction, matching spec.md §9's ownership notes.
package ast

import "github.com/blanketsucks/language/internal/token"

// Node is anything with a source span.
type Node interface {
	Span() token.Span
}

// Expr is a node in the expression tree (spec.md §3's Expr variants).
type Expr interface {
	Node
	exprNode()
}

// TypeExpr is a node in the type tree (spec.md §3's Type variants).
type TypeExpr interface {
	Node
	typeNode()
}

// base holds the span shared by all concrete node types and is embedded by
// value so each constructor stays a one-liner.
type base struct {
	span token.Span
}

func (b base) Span() token.Span { return b.span }
