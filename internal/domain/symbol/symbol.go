// Package symbol defines the entries of the global symbol table: named
// characters and acts together with where they were declared.
package symbol

import (
	"fmt"
	"strings"
)

// Kind is the declared kind of a symbol.
type Kind uint8

const (
	// KindCharacter is an actor with descriptive attributes.
	KindCharacter Kind = iota + 1
	// KindAct is a narrative unit that must also be defined.
	KindAct
)

// ParseKind maps a declaration atom to a Kind. A single leading ':' is
// accepted so both "act" and ":act" resolve. ok is false for any other atom.
func ParseKind(atom string) (Kind, bool) {
	switch strings.TrimPrefix(atom, ":") {
	case "character":
		return KindCharacter, true
	case "act":
		return KindAct, true
	default:
		return 0, false
	}
}

func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindAct:
		return "act"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Location identifies a position in a source file. Offset is the byte offset
// of the statement start; Line and Column are 1-based and only used for
// rendering.
type Location struct {
	Source string
	Offset int
	Line   int
	Column int
}

func (l Location) String() string {
	if l.Source == "" {
		return "<unknown>"
	}
	if l.Line == 0 {
		return fmt.Sprintf("%s@%d", l.Source, l.Offset)
	}
	return fmt.Sprintf("%s:%d:%d", l.Source, l.Line, l.Column)
}

// Attribute is one key/value pair attached to a symbol. Attribute lists keep
// authoring order.
type Attribute struct {
	Key   string `cbor:"1,keyasint"`
	Value string `cbor:"2,keyasint"`
}

// Symbol is a declared name.
type Symbol struct {
	Name       string
	Kind       Kind
	DeclaredAt Location
	Attributes []Attribute
}

// Lookup returns the value of the last attribute with the given key.
func (s *Symbol) Lookup(key string) (string, bool) {
	return LookupAttribute(s.Attributes, key)
}

// LookupAttribute returns the value of the last attribute named key in attrs.
func LookupAttribute(attrs []Attribute, key string) (string, bool) {
	value, found := "", false
	for _, a := range attrs {
		if a.Key == key {
			value, found = a.Value, true
		}
	}
	return value, found
}

// CloneAttributes returns an independent copy of attrs. A nil or empty input
// yields nil so unpopulated items compare equal.
func CloneAttributes(attrs []Attribute) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attribute, len(attrs))
	copy(out, attrs)
	return out
}
