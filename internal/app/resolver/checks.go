package resolver

import (
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/symbol"
)

// AreSymbolsDefined reports whether every referenced name has been declared.
// Each unresolved name is logged as an UndeclaredSymbolError.
func (r *Resolver) AreSymbolsDefined() bool {
	errs := r.undeclared()
	r.report("AreSymbolsDefined", errs)
	return len(errs) == 0
}

// IsErrorFree reports whether no redeclaration, redefinition or unknown atom
// was recorded. Each recorded conflict is logged.
func (r *Resolver) IsErrorFree() bool {
	r.report("IsErrorFree", r.conflicts)
	return len(r.conflicts) == 0
}

// AllActsDefined reports whether every declared act has a definition. Each
// missing one is logged as an UndefinedSymbolError.
func (r *Resolver) AllActsDefined() bool {
	errs := r.undefined()
	r.report("AllActsDefined", errs)
	return len(errs) == 0
}

// RunChecks evaluates all three predicates, always all three so one run
// reports every problem, and records the outcome. It returns nil when the
// compilation is valid and a domain.Diagnostics batch otherwise. Downstream
// stages (Propagate, encoding) refuse to run until RunChecks has passed.
func (r *Resolver) RunChecks() error {
	passed := [3]bool{
		r.AreSymbolsDefined(),
		r.IsErrorFree(),
		r.AllActsDefined(),
	}
	r.checksPassed = passed[0] && passed[1] && passed[2]
	if r.checksPassed {
		return nil
	}
	return r.Diagnostics()
}

// Diagnostics returns every current diagnostic without logging: undeclared
// symbols, then recorded conflicts, then undefined acts.
func (r *Resolver) Diagnostics() domain.Diagnostics {
	var diags domain.Diagnostics
	diags = append(diags, r.undeclared()...)
	diags = append(diags, r.conflicts...)
	diags = append(diags, r.undefined()...)
	return diags
}

func (r *Resolver) undeclared() []error {
	names := make([]string, 0, len(r.unresolved))
	for name := range r.unresolved {
		names = append(names, name)
	}
	slices.Sort(names)

	errs := make([]error, 0, len(names))
	for _, name := range names {
		errs = append(errs, &domain.UndeclaredSymbolError{Symbol: name, At: r.unresolved[name]})
	}
	return errs
}

func (r *Resolver) undefined() []error {
	var errs []error
	for _, name := range r.SymbolNames() {
		sym := r.symbols[name]
		if sym.Kind != symbol.KindAct || r.definitions.Has(name) {
			continue
		}
		errs = append(errs, &domain.UndefinedSymbolError{Symbol: name, DeclaredAt: sym.DeclaredAt})
	}
	return errs
}

func (r *Resolver) report(operation string, errs []error) {
	for _, err := range errs {
		r.logger.Error(err.Error(),
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
}
