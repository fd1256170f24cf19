package narrative

import (
	"path/filepath"
	"strings"
)

// Artifact naming. A compiled story is a tree blob plus a companion index
// stored at the same path with IndexExt.
const (
	TreeExt         = ".gcstree"
	IndexExt        = ".gcsindex"
	DefaultTreeName = "source" + TreeExt
)

// IndexPath derives the companion index path of a tree blob by replacing its
// extension (or appending one when there is none).
func IndexPath(treePath string) string {
	return strings.TrimSuffix(treePath, filepath.Ext(treePath)) + IndexExt
}
