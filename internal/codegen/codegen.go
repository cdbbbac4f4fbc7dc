// Package codegen defines the contract between the parser's AST and the
// downstream code-generation visitor spec.md §1 places out of scope (the
// real consumer would walk the tree and emit LLVM 14 IR). NullVisitor is a
// read-only stand-in that exercises the contract without an LLVM
// dependency.
package codegen

import "github.com/blanketsucks/language/internal/ast"

// Visitor is the AST consumer contract from spec.md §6: it receives the
// ordered top-level expression list as its sole input and must not mutate
// it. The AST is valid for the duration of the call.
type Visitor interface {
	Visit(exprs []ast.Expr) error
}
