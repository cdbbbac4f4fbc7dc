// Package lexer implements quart's lexer: a character-level state machine
// that turns a source buffer into a token stream (spec.md §4.1).
package lexer

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/blanketsucks/language/internal/diag"
	"github.com/blanketsucks/language/internal/token"
)

// Lexer is single-threaded, synchronous, and single-pass: once constructed
// it owns its working state and produces a consumed token list the parser
// only ever borrows by index (spec.md §5).
type Lexer struct {
	filename string
	src      []rune

	idx  int  // index of ch within src; -1 before the first advance
	ch   rune // current rune, 0 at EOF
	line int
	col  int
	eof  bool

	sink diag.Sink
}

// New constructs a lexer over source, attributing every span and diagnostic
// to filename, and reporting fatal errors through sink.
func New(filename, source string, sink diag.Sink) *Lexer {
	l := &Lexer{
		filename: filename,
		src:      []rune(source),
		idx:      -1,
		line:     1,
		sink:     sink,
	}
	l.advance()
	return l
}

// abortLex unwinds Lex after a fatal diagnostic has already been reported to
// sink. Production sinks (diag.DefaultSink) exit the process before this
// panic is ever raised; it only matters for non-exiting sinks such as
// diag.Recorder, used by tests.
type abortLex struct{}

func (l *Lexer) here() token.Location {
	return token.Location{Line: l.line, Column: l.col, Index: l.idx}
}

// spanFrom builds a span from start to end, computing the cached source line
// per spec.md §4.1: the substring starting at start.index-start.column
// (clamped to 0), with a leading newline stripped and everything from the
// next newline on dropped.
func (l *Lexer) spanFrom(start, end token.Location) token.Span {
	offset := start.Index - start.Column
	if offset < 0 {
		offset = 0
	}
	if offset > len(l.src) {
		offset = len(l.src)
	}

	line := string(l.src[offset:])
	line = strings.TrimPrefix(line, "\n")
	if i := strings.Index(line, "\n"); i >= 0 {
		line = line[:i]
	}

	return token.Span{Start: start, End: end, Line: line, Filename: l.filename}
}

func (l *Lexer) fatalAt(loc token.Location, message string) {
	l.sink.Error(l.spanFrom(loc, loc), message)
	panic(abortLex{})
}

// advance moves to the next rune. Index and column advance by one on every
// step, including reads of the EOF sentinel; a newline resets column to 1
// and increments line (spec.md §4.1's "Advance rule"). Index/column overflow
// are reported as fatal errors with an empty span at the current location.
func (l *Lexer) advance() {
	leavingNewline := l.idx >= 0 && l.ch == '\n'

	if l.idx == math.MaxInt {
		l.fatalAt(l.here(), "lexer index overflow")
	}
	l.idx++

	if l.idx >= len(l.src) {
		l.eof = true
		l.ch = 0
	} else {
		l.ch = l.src[l.idx]
	}

	if l.idx == 0 {
		l.col = 1
		return
	}
	if leavingNewline {
		l.line++
		l.col = 1
		return
	}
	if l.col == math.MaxInt {
		l.fatalAt(l.here(), "lexer column overflow")
	}
	l.col++
}

func (l *Lexer) skipWhitespace() {
	for !l.eof && unicode.IsSpace(l.ch) {
		l.advance()
	}
}

// skipLineComment discards a '#' comment up to (not including) the next
// newline. If EOF is reached first, the loop simply stops: next's loop then
// observes l.eof and returns the terminating EOF token rather than reading
// past it (spec.md §9's Open Question on this exact case).
func (l *Lexer) skipLineComment() {
	l.advance() // consume '#'
	for !l.eof && l.ch != '\n' {
		l.advance()
	}
}

func isIdentStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func (l *Lexer) lexIdentifier() token.Token {
	start := l.here()
	var sb strings.Builder
	for isIdentChar(l.ch) {
		sb.WriteRune(l.ch)
		l.advance()
	}
	lexeme := sb.String()
	return token.Token{Kind: token.Lookup(lexeme), Lexeme: lexeme, Span: l.spanFrom(start, l.here())}
}

func (l *Lexer) lexNumber() token.Token {
	start := l.here()
	var sb strings.Builder
	for isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.advance()
	}
	lexeme := sb.String()
	return token.Token{Kind: token.Number, Lexeme: lexeme, Span: l.spanFrom(start, l.here())}
}

func (l *Lexer) lexString() token.Token {
	start := l.here()
	l.advance() // consume opening quote

	var sb strings.Builder
	for l.ch != '"' {
		if l.eof {
			l.fatalAt(start, "unterminated string literal")
		}
		sb.WriteRune(l.ch)
		l.advance()
	}
	l.advance() // consume closing quote

	return token.Token{Kind: token.String, Lexeme: sb.String(), Span: l.spanFrom(start, l.here())}
}

func (l *Lexer) lexChar() token.Token {
	start := l.here()
	l.advance() // consume opening quote

	if l.eof {
		l.fatalAt(start, "unterminated character literal")
	}
	ch := l.ch
	l.advance()

	if l.ch != '\'' {
		l.fatalAt(start, "unterminated character literal")
	}
	l.advance() // consume closing quote

	return token.Token{Kind: token.Char, Lexeme: string(ch), Span: l.spanFrom(start, l.here())}
}

func (l *Lexer) lexSymbol() token.Token {
	start := l.here()
	ch := l.ch
	l.advance()

	pair := func(next rune, matched, otherwise token.Kind) token.Kind {
		if l.ch == next {
			l.advance()
			return matched
		}
		return otherwise
	}

	var kind token.Kind
	switch ch {
	case '+':
		switch {
		case l.ch == '+':
			l.advance()
			kind = token.PlusPlus
		case l.ch == '=':
			l.advance()
			kind = token.PlusEq
		default:
			kind = token.Plus
		}
	case '-':
		switch {
		case l.ch == '-':
			l.advance()
			kind = token.MinusMinus
		case l.ch == '=':
			l.advance()
			kind = token.MinusEq
		case l.ch == '>':
			l.advance()
			kind = token.Arrow
		default:
			kind = token.Minus
		}
	case '*':
		kind = pair('=', token.StarEq, token.Star)
	case '/':
		kind = pair('=', token.SlashEq, token.Slash)
	case '&':
		kind = pair('&', token.AmpAmp, token.Amp)
	case '|':
		kind = pair('|', token.PipePipe, token.Pipe)
	case '=':
		switch {
		case l.ch == '=':
			l.advance()
			kind = token.EqEq
		case l.ch == '>':
			l.advance()
			kind = token.FatArrow
		default:
			kind = token.Assign
		}
	case '<':
		switch {
		case l.ch == '=':
			l.advance()
			kind = token.LtEq
		case l.ch == '<':
			l.advance()
			kind = token.ShiftL
		default:
			kind = token.Lt
		}
	case '>':
		switch {
		case l.ch == '=':
			l.advance()
			kind = token.GtEq
		case l.ch == '>':
			l.advance()
			kind = token.ShiftR
		default:
			kind = token.Gt
		}
	case ':':
		kind = pair(':', token.DoubleColon, token.Colon)
	case '!':
		kind = pair('=', token.BangEq, token.Bang)
	case '%':
		kind = token.Percent
	case '^':
		kind = token.Caret
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case ';':
		kind = token.Semicolon
	case '?':
		kind = token.Question
	case '~':
		kind = token.Tilde
	default:
		l.fatalAt(start, "unexpected symbol "+strconv.QuoteRune(ch))
	}

	return token.Token{Kind: kind, Lexeme: string(l.src[start.Index:l.idx]), Span: l.spanFrom(start, l.here())}
}

func (l *Lexer) next() token.Token {
	for {
		l.skipWhitespace()
		if l.eof {
			loc := l.here()
			return token.Token{Kind: token.EOF, Span: l.spanFrom(loc, loc)}
		}

		switch {
		case isIdentStart(l.ch):
			return l.lexIdentifier()
		case isDigit(l.ch):
			return l.lexNumber()
		case l.ch == '"':
			return l.lexString()
		case l.ch == '\'':
			return l.lexChar()
		case l.ch == '#':
			l.skipLineComment()
			continue
		default:
			return l.lexSymbol()
		}
	}
}

// Lex consumes the entire source and returns the token stream, always
// terminated by an EOF token (spec.md §8's universal invariant).
func (l *Lexer) Lex() (tokens []token.Token) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(abortLex); ok {
				loc := l.here()
				tokens = append(tokens, token.Token{Kind: token.EOF, Span: l.spanFrom(loc, loc)})
				return
			}
			panic(r)
		}
	}()

	for {
		tok := l.next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}
