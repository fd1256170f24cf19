// Package syntax defines the statement nodes a parser hands to the resolver.
// A file parses to an ordered []Statement of top-level Declarations and
// Definitions; a Definition body is an ordered []Statement of DialogueLines
// and ChoiceMenus. Consumers must ignore statement types they do not know.
package syntax

import "github.com/jsamuelsen11/game-narrative-script/internal/domain/symbol"

// Statement is a typed parse node. Pos returns where the node starts.
type Statement interface {
	Pos() symbol.Location
}

// Declaration introduces a symbol: ":character alice { name: "Alice" }".
// Atom is the raw kind token, validated by the resolver.
type Declaration struct {
	At         symbol.Location
	Atom       string
	Name       string
	Attributes []symbol.Attribute
}

// Definition attaches an ordered body to a name: "intro = { ... }".
type Definition struct {
	At   symbol.Location
	Name string
	Body []Statement
}

// DialogueLine is one spoken line: `@alice "Hello"`.
type DialogueLine struct {
	At        symbol.Location
	Character string
	Text      string
}

// ChoiceMenu is a set of options offered by a character:
// `@alice [ "Go left" -> left ]`.
type ChoiceMenu struct {
	At        symbol.Location
	Character string
	Options   []Option
}

// Option is one (text, jump target) pair of a ChoiceMenu.
type Option struct {
	At   symbol.Location
	Text string
	Jump string
}

func (d *Declaration) Pos() symbol.Location  { return d.At }
func (d *Definition) Pos() symbol.Location   { return d.At }
func (d *DialogueLine) Pos() symbol.Location { return d.At }
func (c *ChoiceMenu) Pos() symbol.Location   { return c.At }
