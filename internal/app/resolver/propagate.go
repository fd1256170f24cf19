package resolver

import (
	"fmt"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
)

// Propagate copies each referenced character's attributes onto every
// narrative item mentioning it, and sets the item's display name from the
// character's "name" attribute (empty when absent).
//
// It requires a passed RunChecks and returns domain.ErrChecksNotPassed
// otherwise. After a passed validation every reference resolves, so a lookup
// miss is reported as domain.ErrInvariant. Running it twice is harmless.
func (r *Resolver) Propagate() error {
	if !r.checksPassed {
		return domain.ErrChecksNotPassed
	}

	for act, items := range r.definitions.All() {
		for i := range items {
			sym, ok := r.symbols[items[i].Character]
			if !ok {
				return fmt.Errorf("%w: act %q item %d references undeclared character %q",
					domain.ErrInvariant, act, i, items[i].Character)
			}
			items[i].Populate(sym.Attributes)
		}
	}
	return nil
}
