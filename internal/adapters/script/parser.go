// Package script implements ports.SyntaxSource for .gcs narrative script
// files.
//
// A file is a sequence of declarations and definitions. '#' starts a comment
// that runs to the end of the line.
//
//	:character alice { name: "Alice A.", mood: "calm" }
//	:act intro
//	:act left
//
//	intro = {
//	    @alice "Hello"
//	    @alice [
//	        "Go left" -> left
//	        "Stay" -> intro
//	    ]
//	}
//
// Strings use Go quoting rules (interpreted or raw). Commas between
// attributes and options are optional.
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/symbol"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/syntax"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/logging"
	"github.com/jsamuelsen11/game-narrative-script/internal/ports"
)

// Compile-time check that Parser implements ports.SyntaxSource.
var _ ports.SyntaxSource = (*Parser)(nil)

// Parser reads .gcs files. It holds no per-file state and is safe for
// concurrent use.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a Parser. A nil logger disables debug output.
func NewParser(logger *slog.Logger) *Parser {
	logger = logging.OrDiscard(logger)
	return &Parser{logger: logger}
}

// ParseFile reads and parses the file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) ([]syntax.Statement, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.SourceAccessError{Source: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.SourceAccessError{Source: path, Err: err}
	}
	defer f.Close()

	stmts, err := p.Parse(bufio.NewReader(f), path)
	if err != nil {
		return nil, err
	}

	p.logger.DebugContext(ctx, "parsed source",
		slog.String("source", path),
		slog.Int("statements", len(stmts)),
	)
	return stmts, nil
}

// Parse parses source text read from r. Parsing stops at the first grammar
// violation.
func (p *Parser) Parse(r io.Reader, source string) ([]syntax.Statement, error) {
	ps := &parseState{lx: newLexer(r, source)}
	ps.advance()
	return ps.file()
}

type parseState struct {
	lx  *lexer
	tok token
}

func (ps *parseState) advance() {
	ps.tok = ps.lx.next()
}

func (ps *parseState) mismatch(expected string) error {
	if ps.tok.kind == tokInvalid && ps.lx.errMsg != "" {
		return &domain.GrammarMismatchError{
			At:       ps.lx.errAt,
			Expected: expected,
			Found:    fmt.Sprintf("%s (%s)", ps.tok.describe(), ps.lx.errMsg),
		}
	}
	return &domain.GrammarMismatchError{At: ps.tok.at, Expected: expected, Found: ps.tok.describe()}
}

// expect consumes a token of the given kind and returns it.
func (ps *parseState) expect(kind tokenKind) (token, error) {
	if ps.tok.kind != kind {
		return token{}, ps.mismatch(kind.String())
	}
	t := ps.tok
	ps.advance()
	return t, nil
}

// skipComma consumes an optional separator.
func (ps *parseState) skipComma() {
	if ps.tok.kind == tokComma {
		ps.advance()
	}
}

func (ps *parseState) file() ([]syntax.Statement, error) {
	var stmts []syntax.Statement
	for ps.tok.kind != tokEOF {
		var (
			stmt syntax.Statement
			err  error
		)
		switch ps.tok.kind {
		case tokColon:
			stmt, err = ps.declaration()
		case tokIdent:
			stmt, err = ps.definition()
		default:
			err = ps.mismatch("declaration or definition")
		}
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// declaration := ':' atom name attributes?
func (ps *parseState) declaration() (*syntax.Declaration, error) {
	start := ps.tok.at
	ps.advance()

	atom, err := ps.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	name, err := ps.expect(tokIdent)
	if err != nil {
		return nil, err
	}

	decl := &syntax.Declaration{At: start, Atom: atom.text, Name: name.text}
	if ps.tok.kind == tokLBrace {
		if decl.Attributes, err = ps.attributes(); err != nil {
			return nil, err
		}
	}
	return decl, nil
}

// attributes := '{' (key ':' string ','?)* '}'
func (ps *parseState) attributes() ([]symbol.Attribute, error) {
	ps.advance()

	var attrs []symbol.Attribute
	for ps.tok.kind != tokRBrace {
		key, err := ps.expect(tokIdent)
		if err != nil {
			return nil, ps.mismatch("attribute key or '}'")
		}
		if _, err := ps.expect(tokColon); err != nil {
			return nil, err
		}
		value, err := ps.expect(tokString)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, symbol.Attribute{Key: key.text, Value: value.text})
		ps.skipComma()
	}
	ps.advance()
	return attrs, nil
}

// definition := name '=' '{' (dialogue | choice)* '}'
func (ps *parseState) definition() (*syntax.Definition, error) {
	name := ps.tok
	ps.advance()

	if _, err := ps.expect(tokEquals); err != nil {
		return nil, err
	}
	if _, err := ps.expect(tokLBrace); err != nil {
		return nil, err
	}

	def := &syntax.Definition{At: name.at, Name: name.text}
	for ps.tok.kind != tokRBrace {
		if ps.tok.kind != tokAt {
			return nil, ps.mismatch("'@' or '}'")
		}
		stmt, err := ps.line()
		if err != nil {
			return nil, err
		}
		def.Body = append(def.Body, stmt)
	}
	ps.advance()
	return def, nil
}

// line := '@' character (string | '[' options ']')
func (ps *parseState) line() (syntax.Statement, error) {
	start := ps.tok.at
	ps.advance()

	character, err := ps.expect(tokIdent)
	if err != nil {
		return nil, err
	}

	switch ps.tok.kind {
	case tokString:
		text := ps.tok.text
		ps.advance()
		return &syntax.DialogueLine{At: start, Character: character.text, Text: text}, nil
	case tokLBracket:
		options, err := ps.options()
		if err != nil {
			return nil, err
		}
		return &syntax.ChoiceMenu{At: start, Character: character.text, Options: options}, nil
	default:
		return nil, ps.mismatch("dialogue string or '['")
	}
}

// options := (string '->' target ','?)* ']'
func (ps *parseState) options() ([]syntax.Option, error) {
	ps.advance()

	var options []syntax.Option
	for ps.tok.kind != tokRBracket {
		text, err := ps.expect(tokString)
		if err != nil {
			return nil, ps.mismatch("choice text or ']'")
		}
		if _, err := ps.expect(tokArrow); err != nil {
			return nil, err
		}
		jump, err := ps.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		options = append(options, syntax.Option{At: text.at, Text: text.text, Jump: jump.text})
		ps.skipComma()
	}
	ps.advance()
	return options, nil
}
