// Package storyfile persists compiled stories as a tree blob plus a JSON
// index and reads single acts back by seeking into the blob.
//
// The tree blob is the concatenation of one compressed block per act, in
// ascending act-name order, with no length prefixes. Each block is the
// deterministic CBOR encoding of the act's []narrative.Item compressed with
// the snappy block format. The index file maps each act to its [start, end)
// range of compressed bytes:
//
//	{"intro": [0, 57], "left": [57, 101]}
//
// The index lives next to the blob at narrative.IndexPath(treePath).
package storyfile

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/snappy"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain/narrative"
)

// maxBlockItems bounds decoded array lengths so a corrupt block cannot
// trigger a huge allocation.
const maxBlockItems = 1 << 20

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(fmt.Sprintf("storyfile: cbor encode mode: %v", err))
	}
	if decMode, err = (cbor.DecOptions{MaxArrayElements: maxBlockItems}).DecMode(); err != nil {
		panic(fmt.Sprintf("storyfile: cbor decode mode: %v", err))
	}
}

// encodeBlock serializes and compresses the items of one act.
func encodeBlock(items []narrative.Item) ([]byte, error) {
	if items == nil {
		items = []narrative.Item{}
	}
	raw, err := encMode.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}
	return snappy.Encode(nil, raw), nil
}

// decodeBlock reverses encodeBlock.
func decodeBlock(block []byte) ([]narrative.Item, error) {
	raw, err := snappy.Decode(nil, block)
	if err != nil {
		return nil, fmt.Errorf("decompress block: %w", err)
	}
	var items []narrative.Item
	if err := decMode.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	if items == nil {
		items = []narrative.Item{}
	}
	return items, nil
}
