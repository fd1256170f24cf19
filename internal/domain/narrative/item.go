// Package narrative defines the compiled content of an act: an ordered
// sequence of dialogue lines and choice menus, the ordered definition table
// keyed by act name, and the byte-range index into an encoded tree blob.
package narrative

import (
	"fmt"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain/symbol"
)

// Kind discriminates the two item variants.
type Kind uint8

const (
	// KindDialogue is a single line spoken by a character.
	KindDialogue Kind = iota + 1
	// KindChoiceSet is a menu of options offered by a character.
	KindChoiceSet
)

func (k Kind) String() string {
	switch k {
	case KindDialogue:
		return "dialogue"
	case KindChoiceSet:
		return "choice_set"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Choice is one option of a choice set. Jump names the act the option
// transitions to.
type Choice struct {
	Text string `cbor:"1,keyasint"`
	Jump string `cbor:"2,keyasint"`
}

// Item is one dialogue line or one choice menu. Kind selects which of Text
// (dialogue) or Choices (choice set) is meaningful; the other stays empty.
//
// DisplayName and Attributes are filled by attribute propagation after
// validation and are empty before that.
//
// The integer CBOR keys are part of the tree blob format. Never renumber
// them; add new fields with new keys.
type Item struct {
	Kind        Kind               `cbor:"1,keyasint"`
	Character   string             `cbor:"2,keyasint"`
	DisplayName string             `cbor:"3,keyasint,omitempty"`
	Text        string             `cbor:"4,keyasint,omitempty"`
	Choices     []Choice           `cbor:"5,keyasint,omitempty"`
	Attributes  []symbol.Attribute `cbor:"6,keyasint,omitempty"`
}

// NewDialogue returns an unpopulated dialogue item.
func NewDialogue(character, text string) Item {
	return Item{Kind: KindDialogue, Character: character, Text: text}
}

// NewChoiceSet returns an unpopulated choice set item.
func NewChoiceSet(character string, choices []Choice) Item {
	return Item{Kind: KindChoiceSet, Character: character, Choices: choices}
}

// IsDialogue reports whether the item is a dialogue line.
func (it *Item) IsDialogue() bool { return it.Kind == KindDialogue }

// IsChoiceSet reports whether the item is a choice menu.
func (it *Item) IsChoiceSet() bool { return it.Kind == KindChoiceSet }

// Populate copies attrs onto the item and derives DisplayName from the "name"
// attribute. Calling it again with the same attributes yields the same item.
func (it *Item) Populate(attrs []symbol.Attribute) {
	it.Attributes = symbol.CloneAttributes(attrs)
	it.DisplayName, _ = symbol.LookupAttribute(attrs, "name")
}

// Validate checks that the discriminant matches the populated fields.
func (it *Item) Validate() error {
	switch it.Kind {
	case KindDialogue:
		if len(it.Choices) != 0 {
			return fmt.Errorf("dialogue item for %q carries %d choices", it.Character, len(it.Choices))
		}
	case KindChoiceSet:
		if it.Text != "" {
			return fmt.Errorf("choice set for %q carries dialogue text", it.Character)
		}
	default:
		return fmt.Errorf("item for %q has invalid kind %s", it.Character, it.Kind)
	}
	return nil
}
