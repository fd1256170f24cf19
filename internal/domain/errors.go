package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain/symbol"
)

// Sentinel errors for errors.Is() checking. Every typed error below unwraps
// to exactly one of these.
var (
	ErrSourceAccess    = errors.New("source access error")
	ErrGrammarMismatch = errors.New("grammar mismatch")
	ErrUnknownAtom     = errors.New("unknown atom")
	ErrRedeclared      = errors.New("symbol redeclared")
	ErrRedefined       = errors.New("symbol redefined")
	ErrUndeclared      = errors.New("symbol not declared")
	ErrUndefined       = errors.New("symbol not defined")
	ErrUnknownScene    = errors.New("unknown scene")
	ErrEncodeIO        = errors.New("encode failed")
	ErrDecodeIO        = errors.New("decode failed")

	// ErrChecksNotPassed is returned by every stage that requires a passed
	// validation when RunChecks has not succeeded.
	ErrChecksNotPassed = errors.New("checks have not passed, run checks before generating files")

	// ErrInvariant marks a broken internal invariant (a bug, not bad input).
	ErrInvariant = errors.New("invariant violation")
)

// SourceAccessError reports a source file that could not be opened or read.
type SourceAccessError struct {
	Source string
	Err    error
}

func (e *SourceAccessError) Error() string {
	return fmt.Sprintf("error accessing %q: %v", e.Source, e.Err)
}

func (e *SourceAccessError) Unwrap() []error {
	return []error{ErrSourceAccess, e.Err}
}

// GrammarMismatchError reports a token that does not fit the grammar at At.
type GrammarMismatchError struct {
	At       symbol.Location
	Expected string
	Found    string
}

func (e *GrammarMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.At, e.Expected, e.Found)
}

func (e *GrammarMismatchError) Unwrap() error {
	return ErrGrammarMismatch
}

// UnknownAtomError reports a declaration whose kind token is neither
// "character" nor "act".
type UnknownAtomError struct {
	Atom string
	At   symbol.Location
}

func (e *UnknownAtomError) Error() string {
	return fmt.Sprintf("%s: unknown atom %q", e.At, e.Atom)
}

func (e *UnknownAtomError) Unwrap() error {
	return ErrUnknownAtom
}

// RedeclaredError records a second declaration of an existing symbol.
// Original is the authoritative declaration; Conflict was discarded.
type RedeclaredError struct {
	Symbol   string
	Original symbol.Location
	Conflict symbol.Location
}

func (e *RedeclaredError) Error() string {
	return fmt.Sprintf("'%s' has more than one declaration at %s and %s", e.Symbol, e.Original, e.Conflict)
}

func (e *RedeclaredError) Unwrap() error {
	return ErrRedeclared
}

// RedefinedError records a second definition of an already defined name.
// Original is the retained definition; the body at Conflict was discarded.
type RedefinedError struct {
	Symbol   string
	Original symbol.Location
	Conflict symbol.Location
}

func (e *RedefinedError) Error() string {
	return fmt.Sprintf("'%s' has more than one definition at %s and %s", e.Symbol, e.Original, e.Conflict)
}

func (e *RedefinedError) Unwrap() error {
	return ErrRedefined
}

// UndeclaredSymbolError reports a referenced name that was never declared.
// At is the first place the name was referenced.
type UndeclaredSymbolError struct {
	Symbol string
	At     symbol.Location
}

func (e *UndeclaredSymbolError) Error() string {
	return fmt.Sprintf("%s: symbol %s is not declared", e.At, e.Symbol)
}

func (e *UndeclaredSymbolError) Unwrap() error {
	return ErrUndeclared
}

// UndefinedSymbolError reports an act that was declared but never defined.
type UndefinedSymbolError struct {
	Symbol     string
	DeclaredAt symbol.Location
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("%s: symbol %s is declared but not defined", e.DeclaredAt, e.Symbol)
}

func (e *UndefinedSymbolError) Unwrap() error {
	return ErrUndefined
}

// UnknownSceneError is returned by readers for an act absent from the index.
type UnknownSceneError struct {
	Act string
}

func (e *UnknownSceneError) Error() string {
	return fmt.Sprintf("an unknown scene: %q", e.Act)
}

func (e *UnknownSceneError) Unwrap() error {
	return ErrUnknownScene
}

// EncodeError wraps a serialization or write failure while generating the
// tree blob or index. Act is empty for failures not tied to a single act.
type EncodeError struct {
	Act  string
	Path string
	Op   string
	Err  error
}

func (e *EncodeError) Error() string {
	return ioErrorString("encode", e.Op, e.Path, e.Act, e.Err)
}

func (e *EncodeError) Unwrap() []error {
	return []error{ErrEncodeIO, e.Err}
}

// DecodeError wraps a read, decompression or decoding failure in a reader.
type DecodeError struct {
	Act  string
	Path string
	Op   string
	Err  error
}

func (e *DecodeError) Error() string {
	return ioErrorString("decode", e.Op, e.Path, e.Act, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecodeIO, e.Err}
}

func ioErrorString(stage, op, path, act string, err error) string {
	var b strings.Builder
	b.WriteString(stage)
	if op != "" {
		b.WriteString(" " + op)
	}
	if path != "" {
		fmt.Fprintf(&b, " %q", path)
	}
	if act != "" {
		fmt.Fprintf(&b, " (act %q)", act)
	}
	if err != nil {
		b.WriteString(": " + err.Error())
	}
	return b.String()
}

// Diagnostics is a batch of errors reported together, such as every failed
// check of a compilation run. Use errors.As on the batch to reach a specific
// typed error, or errors.Is to test for a sentinel.
type Diagnostics []error

// Error returns a compact summary: the first diagnostic and the number of
// remaining ones.
func (d Diagnostics) Error() string {
	switch len(d) {
	case 0:
		return "no diagnostics"
	case 1:
		return d[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", d[0].Error(), len(d)-1)
	}
}

// Unwrap exposes the individual diagnostics to errors.Is and errors.As.
func (d Diagnostics) Unwrap() []error {
	return d
}

// Count returns how many diagnostics match target via errors.Is.
func (d Diagnostics) Count(target error) int {
	n := 0
	for _, err := range d {
		if errors.Is(err, target) {
			n++
		}
	}
	return n
}

// Lines renders one diagnostic per line.
func (d Diagnostics) Lines() []string {
	lines := make([]string, len(d))
	for i, err := range d {
		lines[i] = err.Error()
	}
	return lines
}
