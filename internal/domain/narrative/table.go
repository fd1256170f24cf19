package narrative

import (
	"iter"
	"slices"
)

// Table maps act names to their ordered narrative items. Enumeration is
// always in ascending act-name order, which is also the on-disk block order.
// The zero value is ready to use.
type Table struct {
	acts map[string][]Item
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{acts: make(map[string][]Item)}
}

// Has reports whether act has a definition.
func (t *Table) Has(act string) bool {
	_, ok := t.acts[act]
	return ok
}

// Get returns the items of act. The slice is shared with the table.
func (t *Table) Get(act string) ([]Item, bool) {
	items, ok := t.acts[act]
	return items, ok
}

// Insert stores items for act unless act is already present. It reports
// whether the insert happened; the first definition always wins.
func (t *Table) Insert(act string, items []Item) bool {
	if t.acts == nil {
		t.acts = make(map[string][]Item)
	}
	if _, exists := t.acts[act]; exists {
		return false
	}
	if items == nil {
		items = []Item{}
	}
	t.acts[act] = items
	return true
}

// Len returns the number of defined acts.
func (t *Table) Len() int {
	return len(t.acts)
}

// Names returns the act names in ascending order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.acts))
	for name := range t.acts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All iterates acts in ascending name order. The yielded slices are shared
// with the table so callers may update items in place.
func (t *Table) All() iter.Seq2[string, []Item] {
	return func(yield func(string, []Item) bool) {
		for _, name := range t.Names() {
			if !yield(name, t.acts[name]) {
				return
			}
		}
	}
}
