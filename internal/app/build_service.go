// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/game-narrative-script/internal/app/fanout"
	"github.com/jsamuelsen11/game-narrative-script/internal/app/resolver"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/narrative"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/syntax"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/logging"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/telemetry"
	"github.com/jsamuelsen11/game-narrative-script/internal/ports"
)

// DefaultParseWorkers bounds concurrent source parsing when no explicit
// limit is configured.
const DefaultParseWorkers = 4

// ErrPublisherNotConfigured is returned when a build asks for publishing but
// the service has no ArtifactPublisher.
var ErrPublisherNotConfigured = errors.New("publish requested but no artifact publisher is configured")

// BuildRequest describes one compilation run.
type BuildRequest struct {
	// Sources are compiled in this order. Order decides which of two
	// conflicting declarations or definitions is kept.
	Sources []string

	// TreePath is where the tree blob is written. The index goes next to it.
	TreePath string

	// Publish uploads the generated pair after a successful encode.
	Publish bool
}

// BuildResult summarizes a successful build.
type BuildResult struct {
	TreePath  string
	IndexPath string
	Acts      []string
	Symbols   int
	Bytes     int64
	Published bool
}

// BuildService runs the compile pipeline: parse every source, fold the
// statements into one resolver, validate, propagate attributes, and encode.
type BuildService struct {
	parser    ports.SyntaxSource
	encoder   ports.StoryEncoder
	publisher ports.ArtifactPublisher
	metrics   *telemetry.Metrics
	workers   int
	logger    *slog.Logger
}

// BuildOption configures optional BuildService collaborators.
type BuildOption func(*BuildService)

// WithPublisher enables BuildRequest.Publish.
func WithPublisher(p ports.ArtifactPublisher) BuildOption {
	return func(s *BuildService) { s.publisher = p }
}

// WithBuildMetrics records compile and encode metrics.
func WithBuildMetrics(m *telemetry.Metrics) BuildOption {
	return func(s *BuildService) { s.metrics = m }
}

// WithParseWorkers bounds how many files are parsed at once. Values below 1
// fall back to DefaultParseWorkers.
func WithParseWorkers(n int) BuildOption {
	return func(s *BuildService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewBuildService creates a BuildService. A nil logger discards output.
func NewBuildService(parser ports.SyntaxSource, encoder ports.StoryEncoder, logger *slog.Logger, opts ...BuildOption) *BuildService {
	logger = logging.OrDiscard(logger)
	s := &BuildService{
		parser:  parser,
		encoder: encoder,
		workers: DefaultParseWorkers,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build compiles req.Sources into a tree blob and index at req.TreePath.
//
// Every source is parsed even when an earlier one fails so that one run
// reports every problem. Any parse failure or failed check returns a
// domain.Diagnostics and nothing is written.
func (s *BuildService) Build(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	if req.TreePath == "" {
		return nil, errors.New("build: tree path is required")
	}
	if req.Publish && s.publisher == nil {
		return nil, ErrPublisherNotConfigured
	}

	s.logger.InfoContext(ctx, "building story",
		slog.Int("sources", len(req.Sources)),
		slog.String("tree_path", req.TreePath),
	)

	parsed := fanout.Run(ctx, s.workers, req.Sources, s.parser.ParseFile)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build canceled: %w", err)
	}

	r, diags := s.compile(ctx, parsed)
	if checkErr := r.RunChecks(); checkErr != nil || len(diags) > 0 {
		diags = append(diags, r.Diagnostics()...)
		s.metrics.RecordCompile(ctx, len(req.Sources), len(diags))
		s.logger.ErrorContext(ctx, "compilation failed",
			slog.String("operation", "Build"),
			slog.Int("diagnostics", len(diags)),
		)
		return nil, diags
	}
	s.metrics.RecordCompile(ctx, len(req.Sources), 0)

	if err := r.Propagate(); err != nil {
		s.logger.ErrorContext(ctx, "failed to propagate attributes",
			slog.String("operation", "Build"),
			slog.Any("error", err),
		)
		return nil, err
	}

	index, err := s.encoder.Encode(ctx, r, req.TreePath)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode story",
			slog.String("operation", "Build"),
			slog.String("tree_path", req.TreePath),
			slog.Any("error", err),
		)
		return nil, err
	}
	s.metrics.RecordEncode(ctx, index.Size())

	result := &BuildResult{
		TreePath:  req.TreePath,
		IndexPath: narrative.IndexPath(req.TreePath),
		Acts:      index.Names(),
		Symbols:   len(r.SymbolNames()),
		Bytes:     index.Size(),
	}

	if req.Publish {
		if err := s.publisher.Publish(ctx, req.TreePath); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish story",
				slog.String("operation", "Build"),
				slog.String("tree_path", req.TreePath),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("publishing %s: %w", req.TreePath, err)
		}
		result.Published = true
	}

	s.logger.InfoContext(ctx, "story built",
		slog.Int("acts", len(result.Acts)),
		slog.Int("symbols", result.Symbols),
		slog.Int64("bytes", result.Bytes),
		slog.Bool("published", result.Published),
	)
	return result, nil
}

// compile folds parsed files into a fresh resolver in input order and
// collects parse failures.
func (s *BuildService) compile(ctx context.Context, parsed []fanout.Result[string, []syntax.Statement]) (*resolver.Resolver, domain.Diagnostics) {
	r := resolver.New(s.logger)

	var diags domain.Diagnostics
	for _, res := range parsed {
		if res.Err != nil {
			s.logger.ErrorContext(ctx, "failed to parse source",
				slog.String("operation", "Build"),
				slog.String("source", res.Input),
				slog.Any("error", res.Err),
			)
			diags = append(diags, res.Err)
			continue
		}
		// An unknown atom is recorded by the resolver and reported with the
		// other check failures; the rest of that file is skipped.
		if err := r.Compile(res.Value, res.Input); err != nil {
			s.logger.DebugContext(ctx, "source compilation stopped early",
				slog.String("source", res.Input),
				slog.Any("error", err),
			)
		}
	}
	return r, diags
}
