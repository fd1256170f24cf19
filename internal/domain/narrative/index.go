package narrative

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Range is a half-open byte range [Start, End) of one compressed act block
// inside the tree blob. It is persisted as a two-element JSON array.
type Range struct {
	Start int64
	End   int64
}

// Len returns the number of compressed bytes in the range.
func (r Range) Len() int64 {
	return r.End - r.Start
}

// MarshalJSON encodes the range as [start, end].
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{r.Start, r.End})
}

// UnmarshalJSON decodes a [start, end] pair.
func (r *Range) UnmarshalJSON(data []byte) error {
	var pair [2]int64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("range must be a [start, end] pair: %w", err)
	}
	r.Start, r.End = pair[0], pair[1]
	return nil
}

// Index maps act names to their block in the tree blob.
type Index map[string]Range

// Names returns the indexed act names in ascending order.
func (x Index) Names() []string {
	names := make([]string, 0, len(x))
	for name := range x {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Size returns the blob size the index describes: the end of the last range
// in key order, or 0 for an empty index.
func (x Index) Size() int64 {
	var size int64
	for _, r := range x {
		size = max(size, r.End)
	}
	return size
}

// Validate checks that the ranges, enumerated in key order, partition
// [0, size) exactly: each range starts where the previous one ended, none is
// inverted, and the last one ends at size.
func (x Index) Validate(size int64) error {
	var next int64
	for _, name := range x.Names() {
		r := x[name]
		if r.Start != next {
			return fmt.Errorf("act %q starts at %d, want %d", name, r.Start, next)
		}
		if r.End < r.Start {
			return fmt.Errorf("act %q has inverted range [%d, %d)", name, r.Start, r.End)
		}
		next = r.End
	}
	if next != size {
		return fmt.Errorf("index covers %d bytes, blob has %d", next, size)
	}
	return nil
}
