// Package objectstore publishes generated story artifacts to S3-compatible
// storage and serves them back as random-access readers.
//
// A tree blob uploaded from build/source.gcstree with prefix "stories/" is
// stored under "stories/source.gcstree" and its index under
// "stories/source.gcsindex". Every request passes through a circuit breaker,
// an optional rate limiter, and a retry loop with exponential backoff.
//
//	store, err := objectstore.New(&cfg.ObjectStore, metrics, logger)
//	err = store.Publish(ctx, "build/source.gcstree")
//	reader, err := store.OpenReader(ctx, "stories/source.gcstree")
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/storyfile"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/narrative"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/config"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/logging"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/telemetry"
	"github.com/jsamuelsen11/game-narrative-script/internal/ports"
)

// ErrNotFound is returned when a key or the bucket does not exist.
var ErrNotFound = errors.New("object not found")

// Operation names used in spans and metrics.
const (
	opPut    = "put"
	opGet    = "get"
	opExists = "bucket_exists"
)

const (
	contentTypeTree  = "application/octet-stream"
	contentTypeIndex = "application/json"
)

// Compile-time interface checks.
var (
	_ ports.ArtifactPublisher = (*Store)(nil)
	_ ports.HealthChecker     = (*Store)(nil)
)

// Store reads and writes story artifacts in one bucket.
type Store struct {
	bucket  bucket
	prefix  string
	timeout time.Duration
	retry   retryPolicy
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a Store backed by a minio client. No request is made until
// the first call. If metrics is nil, metric recording is skipped.
func New(cfg *config.ObjectStoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Store, error) {
	b, err := newMinioBucket(cfg)
	if err != nil {
		return nil, err
	}
	return newStore(b, cfg, metrics, logger), nil
}

func newStore(b bucket, cfg *config.ObjectStoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	logger = logging.OrDiscard(logger)
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "object-store",
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A missing key is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Store{
		bucket:  b,
		prefix:  cfg.Prefix,
		timeout: cfg.Timeout,
		retry:   newRetryPolicy(cfg.Retry),
		limiter: limiter,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// Key returns the object key a local artifact is published under.
func (s *Store) Key(localPath string) string {
	return s.prefix + filepath.Base(localPath)
}

// Publish uploads the tree blob at treePath, then its companion index. The
// index goes last so that a reader never sees an index without its blob.
func (s *Store) Publish(ctx context.Context, treePath string) error {
	treeKey := s.Key(treePath)
	uploads := []struct {
		path, key, contentType string
	}{
		{treePath, treeKey, contentTypeTree},
		{narrative.IndexPath(treePath), narrative.IndexPath(treeKey), contentTypeIndex},
	}

	for _, u := range uploads {
		var size int64
		err := s.do(ctx, opPut, u.key, func(ctx context.Context) error {
			var err error
			size, err = s.bucket.putFile(ctx, u.key, u.path, u.contentType)
			return err
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to upload artifact",
				slog.String("operation", "Publish"),
				slog.String("path", u.path),
				slog.String("key", u.key),
				slog.Any("error", err),
			)
			return fmt.Errorf("uploading %s to %s: %w", u.path, u.key, err)
		}
		s.logger.InfoContext(ctx, "uploaded artifact",
			slog.String("bucket", s.bucket.name()),
			slog.String("key", u.key),
			slog.Int64("bytes", size),
		)
	}
	return nil
}

// OpenReader downloads the index of treeKey and opens the blob as a seekable
// remote handle. Blocks are fetched on demand by Traverse. The returned
// reader owns the handle and must be closed.
func (s *Store) OpenReader(ctx context.Context, treeKey string) (*storyfile.Reader, error) {
	indexKey := narrative.IndexPath(treeKey)

	var raw []byte
	err := s.do(ctx, opGet, indexKey, func(ctx context.Context) error {
		obj, _, err := s.bucket.open(ctx, indexKey)
		if err != nil {
			return err
		}
		defer obj.Close()
		raw, err = io.ReadAll(obj)
		return err
	})
	if err != nil {
		return nil, &domain.DecodeError{Path: indexKey, Op: "read index", Err: err}
	}
	index, err := storyfile.ReadIndex(bytes.NewReader(raw))
	if err != nil {
		return nil, &domain.DecodeError{Path: indexKey, Op: "read index", Err: err}
	}

	// The blob handle outlives this call, so it must not inherit the
	// caller's cancellation or the request timeout.
	var (
		blob object
		size int64
	)
	err = s.run(context.WithoutCancel(ctx), opGet, treeKey, 0, func(ctx context.Context) error {
		var err error
		blob, size, err = s.bucket.open(ctx, treeKey)
		return err
	})
	if err != nil {
		return nil, &domain.DecodeError{Path: treeKey, Op: "open", Err: err}
	}

	if err := index.Validate(size); err != nil {
		_ = blob.Close()
		return nil, &domain.DecodeError{Path: indexKey, Op: "validate index", Err: err}
	}

	s.logger.InfoContext(ctx, "opened remote story",
		slog.String("bucket", s.bucket.name()),
		slog.String("key", treeKey),
		slog.Int("acts", len(index)),
		slog.Int64("bytes", size),
	)
	return storyfile.NewReader(blob, index, blob), nil
}

// Name identifies the object store in readiness reports.
func (s *Store) Name() string {
	return "object-store"
}

// HealthCheck fails fast while the breaker is open, otherwise confirms the
// bucket exists.
func (s *Store) HealthCheck(ctx context.Context) error {
	if s.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("%s: failing (circuit breaker open)", s.Name())
	}

	var ok bool
	err := s.do(ctx, opExists, s.bucket.name(), func(ctx context.Context) error {
		var err error
		ok, err = s.bucket.exists(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name(), err)
	}
	if !ok {
		return fmt.Errorf("%s: %w: bucket %q", s.Name(), ErrNotFound, s.bucket.name())
	}
	return nil
}

// do runs fn with the configured request timeout.
func (s *Store) do(ctx context.Context, op, key string, fn func(context.Context) error) error {
	return s.run(ctx, op, key, s.timeout, fn)
}

// run executes fn inside a client span through the pipeline
// Circuit Breaker → Rate Limiter → Retry → fn, and records metrics. The
// breaker counts one failure per exhausted retry loop. A non-positive timeout
// leaves ctx unbounded.
func (s *Store) run(ctx context.Context, op, key string, timeout time.Duration, fn func(context.Context) error) error {
	start := time.Now()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ctx, span := otel.GetTracerProvider().Tracer("objectstore").Start(ctx, "objectstore."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("s3.bucket", s.bucket.name()),
			attribute.String("s3.key", key),
		),
	)
	defer span.End()

	_, err := s.breaker.Execute(func() (struct{}, error) {
		if err := s.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, s.withRetry(ctx, op, key, fn)
	})

	result := telemetry.ResultOK
	switch {
	case errors.Is(err, ErrNotFound):
		result = telemetry.ResultNotFound
	case err != nil:
		result = telemetry.ResultError
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.metrics.RecordObjectStore(ctx, op, time.Since(start), result)

	return err
}

// waitForRateLimit blocks until the limiter allows the request or ctx is
// done. Returns nil immediately when rate limiting is disabled.
func (s *Store) waitForRateLimit(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	return s.limiter.Wait(ctx)
}

// toUint32 clamps a non-negative int to uint32.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
