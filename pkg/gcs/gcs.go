// Package gcs is the host-facing reader for compiled .gcs stories. A game
// engine opens the tree blob produced by gcsc once and then fetches acts by
// name as the player moves through the story.
//
//	w, err := gcs.Open("build/source.gcstree")
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//
//	items, err := w.Traverse("intro")
//	if errors.Is(err, gcs.ErrUnknownScene) {
//		// the act is not part of this story
//	}
//
// Only the index is held in memory. Each Traverse reads and decodes the
// block of one act.
package gcs

import (
	"sync"

	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/storyfile"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/narrative"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/symbol"
)

// Item is one dialogue line or choice menu of an act.
type Item = narrative.Item

// Choice is one option of a choice menu. Jump names the target act.
type Choice = narrative.Choice

// Attribute is one key/value pair copied from the speaking character.
type Attribute = symbol.Attribute

// Kind tells a dialogue line from a choice menu.
type Kind = narrative.Kind

// Item kinds.
const (
	KindDialogue  = narrative.KindDialogue
	KindChoiceSet = narrative.KindChoiceSet
)

// DefaultTreeName is the file name gcsc writes when no output is given.
const DefaultTreeName = narrative.DefaultTreeName

var (
	// ErrUnknownScene is matched by Traverse errors for an act that is not
	// part of the story.
	ErrUnknownScene = domain.ErrUnknownScene

	// ErrDecode is matched by errors from a blob or index that cannot be
	// read or decoded.
	ErrDecode = domain.ErrDecodeIO
)

// IndexPath returns the companion index path of a tree blob.
func IndexPath(treePath string) string {
	return narrative.IndexPath(treePath)
}

// Walker serves acts from one opened story. It is safe for concurrent use.
type Walker struct {
	mu     sync.Mutex
	reader *storyfile.Reader
}

// Open loads the index next to treePath and opens the blob. It fails if the
// index does not cover the blob exactly.
func Open(treePath string) (*Walker, error) {
	r, err := storyfile.Open(treePath)
	if err != nil {
		return nil, err
	}
	return &Walker{reader: r}, nil
}

// Traverse returns the items of act in script order.
func (w *Walker) Traverse(act string) ([]Item, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reader.Traverse(act)
}

// Acts returns every act name in ascending order.
func (w *Walker) Acts() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reader.Acts()
}

// Close releases the blob. Traverse fails after Close.
func (w *Walker) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reader.Close()
}
