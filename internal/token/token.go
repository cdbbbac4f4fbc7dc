// Package token defines the lexical tokens produced by the lexer and
// consumed by the parser: source locations, spans, and the closed set of
// token kinds.
package token

import "fmt"

// Location is a single point in a source buffer.
type Location struct {
	Line   int // 1-based
	Column int // 1-based
	Index  int // 0-based offset in runes; equals the byte offset only for ASCII source
}

// Span is a half-open interval [Start, End) in a source buffer, together with
// the text of the line containing Start and the filename it was lexed from.
//
// Spans are cloned rather than referencing the source buffer so that
// diagnostics stay valid after the buffer that produced them goes away.
type Span struct {
	Start    Location
	End      Location
	Line     string
	Filename string
}

// Length returns the number of runes the span covers (bytes only for ASCII
// source, since Location.Index counts runes).
func (s Span) Length() int {
	return s.End.Index - s.Start.Index
}

// String renders the span as filename:line:column for diagnostics that don't
// need the full source excerpt.
func (s Span) String() string {
	return fmt.Sprintf("%s:%d:%d", s.Filename, s.Start.Line, s.Start.Column)
}

// Merge returns a span that starts where a starts and ends at the later of
// a's and b's end. Callers pass the earliest-starting span first.
func Merge(a, b Span) Span {
	span := a
	if b.End.Index > span.End.Index {
		span.End = b.End
	}
	return span
}

// Kind identifies the syntactic category of a token.
type Kind string

// Token is one lexeme: its kind, the source text it was lexed from (for
// Identifier/Number/String/Char this is the captured lexeme), and its span.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   Span
}

const (
	// Literal-bearing
	Identifier Kind = "IDENTIFIER"
	Number     Kind = "NUMBER"
	String     Kind = "STRING"
	Char       Kind = "CHAR"

	// Keywords
	Extern       Kind = "EXTERN"
	Func         Kind = "FUNC"
	Return       Kind = "RETURN"
	If           Kind = "IF"
	Else         Kind = "ELSE"
	While        Kind = "WHILE"
	For          Kind = "FOR"
	Break        Kind = "BREAK"
	Continue     Kind = "CONTINUE"
	Let          Kind = "LET"
	Const        Kind = "CONST"
	Struct       Kind = "STRUCT"
	Namespace    Kind = "NAMESPACE"
	Enum         Kind = "ENUM"
	Module       Kind = "MODULE"
	Import       Kind = "IMPORT"
	As           Kind = "AS"
	Type         Kind = "TYPE"
	Sizeof       Kind = "SIZEOF"
	Offsetof     Kind = "OFFSETOF"
	Typeof       Kind = "TYPEOF"
	Using        Kind = "USING"
	From         Kind = "FROM"
	Defer        Kind = "DEFER"
	Private      Kind = "PRIVATE"
	Foreach      Kind = "FOREACH"
	In           Kind = "IN"
	StaticAssert Kind = "STATIC_ASSERT"
	Mut          Kind = "MUT"
	Readonly     Kind = "READONLY"
	Operator     Kind = "OPERATOR"
	Impl         Kind = "IMPL"

	// Operators
	Plus       Kind = "+"
	Minus      Kind = "-"
	Star       Kind = "*"
	Slash      Kind = "/"
	Percent    Kind = "%"
	Bang       Kind = "!"
	PipePipe   Kind = "||"
	AmpAmp     Kind = "&&"
	PlusPlus   Kind = "++"
	MinusMinus Kind = "--"
	Pipe       Kind = "|"
	Amp        Kind = "&"
	Tilde      Kind = "~"
	Caret      Kind = "^"
	ShiftR     Kind = ">>"
	ShiftL     Kind = "<<"
	PlusEq     Kind = "+="
	MinusEq    Kind = "-="
	StarEq     Kind = "*="
	SlashEq    Kind = "/="
	EqEq       Kind = "=="
	BangEq     Kind = "!="
	Gt         Kind = ">"
	Lt         Kind = "<"
	GtEq       Kind = ">="
	LtEq       Kind = "<="
	Assign     Kind = "="

	// Punctuation
	Comma       Kind = ","
	Semicolon   Kind = ";"
	Colon       Kind = ":"
	DoubleColon Kind = "::"
	Dot         Kind = "."
	LParen      Kind = "("
	RParen      Kind = ")"
	LBrace      Kind = "{"
	RBrace      Kind = "}"
	LBracket    Kind = "["
	RBracket    Kind = "]"
	Arrow       Kind = "->"
	FatArrow    Kind = "=>"
	Question    Kind = "?"
	DotDot      Kind = ".." // reserved

	// Reserved / sentinel
	Newline Kind = "NEWLINE" // reserved, never emitted
	Illegal Kind = "ILLEGAL"
	EOF     Kind = "EOF"
)

// Keywords maps every reserved word recognized by the lexer (spec.md §4.1) to
// its token kind. Anything not present here lexes as Identifier.
var Keywords = map[string]Kind{
	"extern":        Extern,
	"func":          Func,
	"return":        Return,
	"if":            If,
	"else":          Else,
	"while":         While,
	"for":           For,
	"break":         Break,
	"continue":      Continue,
	"let":           Let,
	"const":         Const,
	"struct":        Struct,
	"namespace":     Namespace,
	"enum":          Enum,
	"module":        Module,
	"import":        Import,
	"as":            As,
	"type":          Type,
	"sizeof":        Sizeof,
	"offsetof":      Offsetof,
	"typeof":        Typeof,
	"using":         Using,
	"from":          From,
	"defer":         Defer,
	"private":       Private,
	"foreach":       Foreach,
	"in":            In,
	"static_assert": StaticAssert,
	"mut":           Mut,
	"readonly":      Readonly,
	"operator":      Operator,
	"impl":          Impl,
}

// Lookup returns the keyword kind for ident, or Identifier if ident is not a
// reserved word.
func Lookup(ident string) Kind {
	if kind, ok := Keywords[ident]; ok {
		return kind
	}
	return Identifier
}

// Precedence levels for binary operators (spec.md §4.2.1). Higher binds
// tighter. Kinds absent from this table are not binary operators.
const (
	PrecLowest = 0
	PrecAssign = 5
	PrecOrAnd  = 10
	PrecCompare = 15
	PrecBitwise = 20
	PrecInplace = 25
	PrecSum     = 30
	PrecMod     = 35
	PrecProduct = 40
)

var precedences = map[Kind]int{
	Assign: PrecAssign,

	AmpAmp:   PrecOrAnd,
	PipePipe: PrecOrAnd,

	Lt:    PrecCompare,
	Gt:    PrecCompare,
	LtEq:  PrecCompare,
	GtEq:  PrecCompare,
	EqEq:  PrecCompare,
	BangEq: PrecCompare,

	Amp:    PrecBitwise,
	Pipe:   PrecBitwise,
	Caret:  PrecBitwise,
	ShiftL: PrecBitwise,
	ShiftR: PrecBitwise,

	PlusEq:  PrecInplace,
	MinusEq: PrecInplace,
	StarEq:  PrecInplace,
	SlashEq: PrecInplace,

	Plus:  PrecSum,
	Minus: PrecSum,

	Percent: PrecMod,

	Slash: PrecProduct,
	Star:  PrecProduct,
}

// Precedence returns k's binary-operator precedence, or PrecLowest-1 if k is
// not a binary operator (so it never satisfies a "precedence >= min" check).
func Precedence(k Kind) int {
	if p, ok := precedences[k]; ok {
		return p
	}
	return PrecLowest - 1
}

// IsInplace reports whether k is one of the assignment-combined arithmetic
// operators that parse to an InplaceBinOp rather than a BinaryOp.
func IsInplace(k Kind) bool {
	switch k {
	case PlusEq, MinusEq, StarEq, SlashEq:
		return true
	default:
		return false
	}
}
