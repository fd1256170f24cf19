package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/narrative"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/logging"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/telemetry"
	"github.com/jsamuelsen11/game-narrative-script/internal/ports"
)

// Compile-time checks for the ports StoryService serves.
var (
	_ ports.StoryService  = (*StoryService)(nil)
	_ ports.HealthChecker = (*StoryService)(nil)
)

// StoryService implements ports.StoryService over a single StoryReader.
// Readers share one cursor, so every call is serialized.
type StoryService struct {
	mu      sync.Mutex
	reader  ports.StoryReader
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewStoryService creates a StoryService. metrics may be nil. A nil logger
// discards output.
func NewStoryService(reader ports.StoryReader, metrics *telemetry.Metrics, logger *slog.Logger) *StoryService {
	logger = logging.OrDiscard(logger)
	return &StoryService{
		reader:  reader,
		metrics: metrics,
		logger:  logger,
	}
}

// Traverse returns the items of act.
func (s *StoryService) Traverse(ctx context.Context, act string) ([]narrative.Item, error) {
	s.logger.DebugContext(ctx, "traversing act", slog.String("act", act))

	start := time.Now()
	s.mu.Lock()
	items, err := s.reader.Traverse(act)
	s.mu.Unlock()
	elapsed := time.Since(start)

	switch {
	case err == nil:
		s.metrics.RecordTraverse(ctx, elapsed, telemetry.ResultOK)
		return items, nil
	case errors.Is(err, domain.ErrUnknownScene):
		s.metrics.RecordTraverse(ctx, elapsed, telemetry.ResultUnknownScene)
		s.logger.WarnContext(ctx, "unknown act requested",
			slog.String("operation", "Traverse"),
			slog.String("act", act),
		)
		return nil, err
	default:
		s.metrics.RecordTraverse(ctx, elapsed, telemetry.ResultError)
		s.logger.ErrorContext(ctx, "failed to read act",
			slog.String("operation", "Traverse"),
			slog.String("act", act),
			slog.Any("error", err),
		)
		return nil, err
	}
}

// ListActs returns every act name in ascending order.
func (s *StoryService) ListActs(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reader.Acts()
}

// Name identifies the loaded story in readiness reports.
func (s *StoryService) Name() string {
	return "story"
}

// HealthCheck reads the first act, which exercises both the index and the
// blob handle. An empty story is healthy.
func (s *StoryService) HealthCheck(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acts := s.reader.Acts()
	if len(acts) == 0 {
		return nil
	}
	if _, err := s.reader.Traverse(acts[0]); err != nil {
		return fmt.Errorf("reading act %q: %w", acts[0], err)
	}
	return nil
}

// Close releases the underlying reader.
func (s *StoryService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reader.Close()
}
