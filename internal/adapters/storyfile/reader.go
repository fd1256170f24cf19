package storyfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/narrative"
	"github.com/jsamuelsen11/game-narrative-script/internal/ports"
)

// Compile-time check that Reader implements ports.StoryReader.
var _ ports.StoryReader = (*Reader)(nil)

// Reader serves single acts from a tree blob. The index is held in memory;
// each Traverse reads only the act's own block.
//
// A Reader shares one read cursor across calls and is not safe for
// concurrent use. Wrap it (see app.StoryService) to share it.
type Reader struct {
	src    io.ReadSeeker
	closer io.Closer
	index  narrative.Index
	path   string
}

// Open loads the companion index of treePath, opens the blob, and checks
// that the index ranges tile the blob exactly.
func Open(treePath string) (*Reader, error) {
	indexPath := narrative.IndexPath(treePath)
	index, err := loadIndex(indexPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(treePath)
	if err != nil {
		return nil, &domain.DecodeError{Path: treePath, Op: "open", Err: err}
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, &domain.DecodeError{Path: treePath, Op: "stat", Err: err}
	}
	if err := index.Validate(info.Size()); err != nil {
		_ = f.Close()
		return nil, &domain.DecodeError{Path: indexPath, Op: "validate index", Err: err}
	}

	r := NewReader(f, index, f)
	r.path = treePath
	return r, nil
}

func loadIndex(indexPath string) (narrative.Index, error) {
	f, err := os.Open(indexPath)
	if err != nil {
		return nil, &domain.DecodeError{Path: indexPath, Op: "open", Err: err}
	}
	defer f.Close()

	index, err := ReadIndex(f)
	if err != nil {
		return nil, &domain.DecodeError{Path: indexPath, Op: "read index", Err: err}
	}
	return index, nil
}

// NewReader serves acts from src using an already loaded index. closer is
// closed by Close and may be nil. The index is not validated; callers that
// know the blob size should call index.Validate first.
func NewReader(src io.ReadSeeker, index narrative.Index, closer io.Closer) *Reader {
	if index == nil {
		index = narrative.Index{}
	}
	return &Reader{src: src, closer: closer, index: index}
}

// Traverse returns the items of act exactly as they were encoded.
func (r *Reader) Traverse(act string) ([]narrative.Item, error) {
	rng, ok := r.index[act]
	if !ok {
		return nil, &domain.UnknownSceneError{Act: act}
	}
	if r.src == nil {
		return nil, &domain.DecodeError{Act: act, Path: r.path, Op: "read", Err: errors.New("reader is closed")}
	}

	if rng.Start < 0 || rng.Len() < 0 {
		return nil, &domain.DecodeError{
			Act:  act,
			Path: r.path,
			Op:   "read",
			Err:  fmt.Errorf("invalid block range [%d, %d)", rng.Start, rng.End),
		}
	}

	if _, err := r.src.Seek(rng.Start, io.SeekStart); err != nil {
		return nil, &domain.DecodeError{Act: act, Path: r.path, Op: "seek", Err: err}
	}
	block := make([]byte, rng.Len())
	if _, err := io.ReadFull(r.src, block); err != nil {
		return nil, &domain.DecodeError{Act: act, Path: r.path, Op: "read", Err: err}
	}

	items, err := decodeBlock(block)
	if err != nil {
		return nil, &domain.DecodeError{
			Act:  act,
			Path: r.path,
			Op:   "decode",
			Err:  fmt.Errorf("block [%d, %d): %w", rng.Start, rng.End, err),
		}
	}
	return items, nil
}

// Acts returns the indexed act names in ascending order.
func (r *Reader) Acts() []string {
	return r.index.Names()
}

// Index returns a copy of the loaded index.
func (r *Reader) Index() narrative.Index {
	out := make(narrative.Index, len(r.index))
	for name, rng := range r.index {
		out[name] = rng
	}
	return out
}

// Close releases the underlying blob. Further Traverse calls fail.
func (r *Reader) Close() error {
	r.src = nil
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}
