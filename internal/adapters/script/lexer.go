package script

import (
	"fmt"
	"io"
	"strconv"
	"text/scanner"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain/symbol"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokColon
	tokAt
	tokEquals
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokComma
	tokArrow
	tokInvalid
)

var tokenNames = map[tokenKind]string{
	tokEOF:      "end of file",
	tokIdent:    "identifier",
	tokString:   "string",
	tokColon:    "':'",
	tokAt:       "'@'",
	tokEquals:   "'='",
	tokLBrace:   "'{'",
	tokRBrace:   "'}'",
	tokLBracket: "'['",
	tokRBracket: "']'",
	tokComma:    "','",
	tokArrow:    "'->'",
	tokInvalid:  "invalid token",
}

func (k tokenKind) String() string {
	return tokenNames[k]
}

type token struct {
	kind tokenKind
	text string // identifier name or unquoted string value
	raw  string
	at   symbol.Location
}

// describe renders the token for "found ..." diagnostics.
func (t token) describe() string {
	switch t.kind {
	case tokIdent:
		return fmt.Sprintf("identifier %q", t.text)
	case tokString:
		return fmt.Sprintf("string %s", t.raw)
	case tokInvalid:
		return fmt.Sprintf("invalid token %q", t.raw)
	default:
		return t.kind.String()
	}
}

// lexer wraps text/scanner with '#' line comments and the two-character
// arrow token.
type lexer struct {
	s      scanner.Scanner
	source string
	errMsg string
	errAt  symbol.Location
}

func newLexer(r io.Reader, source string) *lexer {
	lx := &lexer{source: source}
	lx.s.Init(r)
	lx.s.Filename = source
	lx.s.Mode = scanner.ScanIdents | scanner.ScanStrings | scanner.ScanRawStrings
	lx.s.Error = func(s *scanner.Scanner, msg string) {
		if lx.errMsg == "" {
			lx.errMsg = msg
			lx.errAt = lx.location(s.Position)
		}
	}
	return lx
}

func (lx *lexer) location(p scanner.Position) symbol.Location {
	return symbol.Location{Source: lx.source, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func (lx *lexer) next() token {
	for {
		r := lx.s.Scan()
		at := lx.location(lx.s.Position)
		raw := lx.s.TokenText()

		switch r {
		case scanner.EOF:
			return token{kind: tokEOF, at: at}
		case '#':
			lx.skipLine()
			continue
		case scanner.Ident:
			return token{kind: tokIdent, text: raw, raw: raw, at: at}
		case scanner.String, scanner.RawString:
			text, err := strconv.Unquote(raw)
			if err != nil {
				return token{kind: tokInvalid, raw: raw, at: at}
			}
			return token{kind: tokString, text: text, raw: raw, at: at}
		case ':':
			return token{kind: tokColon, raw: raw, at: at}
		case '@':
			return token{kind: tokAt, raw: raw, at: at}
		case '=':
			return token{kind: tokEquals, raw: raw, at: at}
		case '{':
			return token{kind: tokLBrace, raw: raw, at: at}
		case '}':
			return token{kind: tokRBrace, raw: raw, at: at}
		case '[':
			return token{kind: tokLBracket, raw: raw, at: at}
		case ']':
			return token{kind: tokRBracket, raw: raw, at: at}
		case ',':
			return token{kind: tokComma, raw: raw, at: at}
		case '-':
			if lx.s.Peek() == '>' {
				lx.s.Next()
				return token{kind: tokArrow, raw: "->", at: at}
			}
			return token{kind: tokInvalid, raw: raw, at: at}
		default:
			return token{kind: tokInvalid, raw: raw, at: at}
		}
	}
}

func (lx *lexer) skipLine() {
	for {
		ch := lx.s.Next()
		if ch == '\n' || ch == scanner.EOF {
			return
		}
	}
}
