package storyfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/narrative"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/logging"
	"github.com/jsamuelsen11/game-narrative-script/internal/ports"
)

// Compile-time check that Encoder implements ports.StoryEncoder.
var _ ports.StoryEncoder = (*Encoder)(nil)

// Encoder writes tree blob / index pairs to the local filesystem.
// Concurrent encoders must not target the same output paths.
type Encoder struct {
	logger *slog.Logger
}

// NewEncoder creates an Encoder. A nil logger discards output.
func NewEncoder(logger *slog.Logger) *Encoder {
	logger = logging.OrDiscard(logger)
	return &Encoder{logger: logger}
}

// Encode writes every act of story to treePath, then the index to
// narrative.IndexPath(treePath), and fsyncs both.
//
// Nothing is created when the story has not passed validation. A failure
// part way through leaves whatever was already written in place: treat a
// failed encode as requiring a clean re-run.
func (e *Encoder) Encode(ctx context.Context, story ports.CompiledStory, treePath string) (narrative.Index, error) {
	if !story.ChecksPassed() {
		e.logger.ErrorContext(ctx, "refusing to generate story files",
			slog.String("operation", "Encode"),
			slog.String("tree_path", treePath),
			slog.Any("error", domain.ErrChecksNotPassed),
		)
		return nil, domain.ErrChecksNotPassed
	}

	// The blob and its index must be two distinct files.
	if filepath.Ext(treePath) == narrative.IndexExt {
		return nil, &domain.EncodeError{
			Path: treePath,
			Op:   "validate path",
			Err:  fmt.Errorf("tree path must not use the index extension %s", narrative.IndexExt),
		}
	}

	if dir := filepath.Dir(treePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &domain.EncodeError{Path: dir, Op: "mkdir", Err: err}
		}
	}

	index, size, err := e.writeTree(story.Definitions(), treePath)
	if err != nil {
		return nil, err
	}

	indexPath := narrative.IndexPath(treePath)
	if err := writeIndex(index, indexPath); err != nil {
		return nil, err
	}

	e.logger.InfoContext(ctx, "generated story files",
		slog.String("tree_path", treePath),
		slog.String("index_path", indexPath),
		slog.Int("acts", len(index)),
		slog.Int64("bytes", size),
	)
	return index, nil
}

// writeTree appends one compressed block per act in key order and records
// each block's byte range.
func (e *Encoder) writeTree(table *narrative.Table, treePath string) (narrative.Index, int64, error) {
	f, err := os.Create(treePath)
	if err != nil {
		return nil, 0, &domain.EncodeError{Path: treePath, Op: "create", Err: err}
	}

	index, size, err := writeBlocks(f, table, treePath)
	if err != nil {
		_ = f.Close()
		return nil, 0, err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return nil, 0, &domain.EncodeError{Path: treePath, Op: "sync", Err: err}
	}
	if err := f.Close(); err != nil {
		return nil, 0, &domain.EncodeError{Path: treePath, Op: "close", Err: err}
	}
	return index, size, nil
}

func writeBlocks(w io.Writer, table *narrative.Table, treePath string) (narrative.Index, int64, error) {
	index := make(narrative.Index, table.Len())
	var start int64
	for act, items := range table.All() {
		block, err := encodeBlock(items)
		if err != nil {
			return nil, 0, &domain.EncodeError{Act: act, Path: treePath, Op: "serialize", Err: err}
		}
		n, err := w.Write(block)
		if err != nil {
			return nil, 0, &domain.EncodeError{Act: act, Path: treePath, Op: "write", Err: err}
		}
		index[act] = narrative.Range{Start: start, End: start + int64(n)}
		start += int64(n)
	}
	return index, start, nil
}

func writeIndex(index narrative.Index, indexPath string) error {
	data, err := json.Marshal(index)
	if err != nil {
		return &domain.EncodeError{Path: indexPath, Op: "serialize index", Err: err}
	}

	f, err := os.Create(indexPath)
	if err != nil {
		return &domain.EncodeError{Path: indexPath, Op: "create", Err: err}
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return &domain.EncodeError{Path: indexPath, Op: "write", Err: err}
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return &domain.EncodeError{Path: indexPath, Op: "sync", Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.EncodeError{Path: indexPath, Op: "close", Err: err}
	}
	return nil
}

// ReadIndex decodes an index document.
func ReadIndex(r io.Reader) (narrative.Index, error) {
	var index narrative.Index
	if err := json.NewDecoder(r).Decode(&index); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	if index == nil {
		index = narrative.Index{}
	}
	return index, nil
}
