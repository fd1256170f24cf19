package ports

import (
	"context"
	"io"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain/syntax"
)

// SyntaxSource turns source text into ordered statement nodes.
// Implemented by the syntax adapter; called by the build service.
// Implementations must be safe for concurrent use across different files.
type SyntaxSource interface {
	// ParseFile reads and parses the file at path. The path is used as the
	// source identity of every returned statement.
	// Returns a *domain.SourceAccessError if the file cannot be read and a
	// *domain.GrammarMismatchError on the first grammar violation.
	ParseFile(ctx context.Context, path string) ([]syntax.Statement, error)

	// Parse parses already opened source text identified by source.
	Parse(r io.Reader, source string) ([]syntax.Statement, error)
}
