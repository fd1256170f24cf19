// Package resolver folds parsed source files into one global symbol table and
// definition table, records every conflict and unresolved reference, and
// validates the result before any artifact is generated.
//
// One Resolver is created per compilation run and owned by a single caller:
//
//	r := resolver.New(logger)
//	for _, f := range files {
//	    if err := r.Compile(f.Statements, f.Path); err != nil {
//	        // the rest of this file was skipped; keep going for diagnostics
//	    }
//	}
//	if err := r.RunChecks(); err != nil {
//	    return err // domain.Diagnostics
//	}
//	if err := r.Propagate(); err != nil {
//	    return err
//	}
//
// Declarations and definitions are decoupled: a body may reference a name
// declared in a file compiled earlier or later. Conflicts follow "first wins,
// keep scanning": the first declaration or definition of a name is kept and
// every later one is recorded, so a single run reports all of them.
package resolver

import (
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/narrative"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/symbol"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/syntax"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/logging"
	"github.com/jsamuelsen11/game-narrative-script/internal/ports"
)

// Compile-time check that Resolver satisfies ports.CompiledStory.
var _ ports.CompiledStory = (*Resolver)(nil)

// Resolver accumulates symbols and definitions across Compile calls. It is not
// safe for concurrent use.
type Resolver struct {
	symbols     map[string]*symbol.Symbol
	definitions *narrative.Table
	definedAt   map[string]symbol.Location

	// unresolved holds referenced names with no declaration yet, keyed to
	// the first place they were referenced.
	unresolved map[string]symbol.Location

	// conflicts holds Redeclared, Redefined and UnknownAtom errors in the
	// order they were found.
	conflicts []error

	checksPassed bool
	logger       *slog.Logger
}

// New creates an empty Resolver. A nil logger discards diagnostics output.
func New(logger *slog.Logger) *Resolver {
	logger = logging.OrDiscard(logger)
	return &Resolver{
		symbols:     make(map[string]*symbol.Symbol),
		definitions: narrative.NewTable(),
		definedAt:   make(map[string]symbol.Location),
		unresolved:  make(map[string]symbol.Location),
		logger:      logger,
	}
}

// Compile folds one file's statements into the shared state. source
// identifies the file in diagnostics.
//
// Symbol-level problems (redeclarations, redefinitions, unresolved names) are
// recorded and surface at RunChecks. An unknown declaration atom is also
// recorded, and additionally aborts the rest of this file: Compile returns
// the *domain.UnknownAtomError.
func (r *Resolver) Compile(stmts []syntax.Statement, source string) error {
	r.checksPassed = false

	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *syntax.Declaration:
			if err := r.declare(s, source); err != nil {
				return err
			}
		case *syntax.Definition:
			r.define(s, source)
		default:
			// Unknown statement kinds are skipped.
		}
	}
	return nil
}

func (r *Resolver) declare(d *syntax.Declaration, source string) error {
	at := locate(d.At, source)

	kind, ok := symbol.ParseKind(d.Atom)
	if !ok {
		err := &domain.UnknownAtomError{Atom: d.Atom, At: at}
		r.conflicts = append(r.conflicts, err)
		return err
	}

	if existing, found := r.symbols[d.Name]; found {
		r.conflicts = append(r.conflicts, &domain.RedeclaredError{
			Symbol:   d.Name,
			Original: existing.DeclaredAt,
			Conflict: at,
		})
		return nil
	}

	r.symbols[d.Name] = &symbol.Symbol{
		Name:       d.Name,
		Kind:       kind,
		DeclaredAt: at,
		Attributes: symbol.CloneAttributes(d.Attributes),
	}
	delete(r.unresolved, d.Name)
	return nil
}

func (r *Resolver) define(d *syntax.Definition, source string) {
	at := locate(d.At, source)
	r.reference(d.Name, at)

	if original, defined := r.definedAt[d.Name]; defined {
		r.conflicts = append(r.conflicts, &domain.RedefinedError{
			Symbol:   d.Name,
			Original: original,
			Conflict: at,
		})
		return
	}

	items := make([]narrative.Item, 0, len(d.Body))
	for _, stmt := range d.Body {
		switch s := stmt.(type) {
		case *syntax.DialogueLine:
			r.reference(s.Character, locate(s.At, source))
			items = append(items, narrative.NewDialogue(s.Character, s.Text))
		case *syntax.ChoiceMenu:
			r.reference(s.Character, locate(s.At, source))
			var choices []narrative.Choice
			for _, opt := range s.Options {
				r.reference(opt.Jump, locate(opt.At, source))
				choices = append(choices, narrative.Choice{Text: opt.Text, Jump: opt.Jump})
			}
			items = append(items, narrative.NewChoiceSet(s.Character, choices))
		default:
			// Unknown body statements are skipped.
		}
	}

	r.definitions.Insert(d.Name, items)
	r.definedAt[d.Name] = at
}

// reference adds name to the unresolved set unless it is already declared.
// The first reference location is kept for diagnostics.
func (r *Resolver) reference(name string, at symbol.Location) {
	if _, declared := r.symbols[name]; declared {
		return
	}
	if _, pending := r.unresolved[name]; !pending {
		r.unresolved[name] = at
	}
}

// locate fills in the source identity when the parser left it empty.
func locate(at symbol.Location, source string) symbol.Location {
	if at.Source == "" {
		at.Source = source
	}
	return at
}

// Symbol returns the symbol declared under name.
func (r *Resolver) Symbol(name string) (symbol.Symbol, bool) {
	s, ok := r.symbols[name]
	if !ok {
		return symbol.Symbol{}, false
	}
	return *s, true
}

// SymbolNames returns every declared name in ascending order.
func (r *Resolver) SymbolNames() []string {
	names := make([]string, 0, len(r.symbols))
	for name := range r.symbols {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Definitions returns the definition table. Callers must treat it as
// read-only once RunChecks has passed.
func (r *Resolver) Definitions() *narrative.Table {
	return r.definitions
}

// ChecksPassed reports whether the last RunChecks succeeded with no Compile
// call since.
func (r *Resolver) ChecksPassed() bool {
	return r.checksPassed
}
