package ports

import (
	"context"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain/narrative"
)

// CompiledStory is the validated output of a compilation run.
// Implemented by the resolver; consumed by the encoder.
type CompiledStory interface {
	// ChecksPassed reports whether validation succeeded. Encoders must refuse
	// to write anything when it is false.
	ChecksPassed() bool

	// Definitions returns the act table in key order.
	Definitions() *narrative.Table
}

// StoryEncoder writes a compiled story as a tree blob plus companion index.
type StoryEncoder interface {
	// Encode writes the tree blob to treePath and the index next to it.
	// Returns domain.ErrChecksNotPassed without touching storage when the
	// story was not validated, and a *domain.EncodeError on I/O failure.
	Encode(ctx context.Context, story CompiledStory, treePath string) (narrative.Index, error)
}

// ArtifactPublisher copies a generated tree blob and its index to shared
// storage.
type ArtifactPublisher interface {
	// Publish uploads the blob at treePath followed by its companion index.
	Publish(ctx context.Context, treePath string) error
}

// StoryReader resolves act names to their decoded items from a persisted
// artifact. Implementations own a single read cursor and are NOT safe for
// concurrent use; wrap them in a StoryService or guard them externally.
type StoryReader interface {
	// Traverse returns the items of act.
	// Returns a *domain.UnknownSceneError if act is not indexed and a
	// *domain.DecodeError if the block cannot be read or decoded.
	Traverse(act string) ([]narrative.Item, error)

	// Acts returns the indexed act names in ascending order.
	Acts() []string

	// Close releases the underlying handle.
	Close() error
}

// StoryService serves act lookups to inbound adapters.
// Implemented by the application layer; safe for concurrent use.
type StoryService interface {
	// Traverse returns the items of act.
	// Returns domain.ErrUnknownScene if the act is not part of the story.
	Traverse(ctx context.Context, act string) ([]narrative.Item, error)

	// ListActs returns every act name in ascending order.
	ListActs(ctx context.Context) []string
}
