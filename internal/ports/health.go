package ports

import "context"

// HealthChecker is a dependency the story server needs to serve acts: the
// opened artifact itself, and the object store bucket when acts are read
// remotely.
type HealthChecker interface {
	// Name keys the checker in readiness reports ("story", "object-store").
	Name() string

	// HealthCheck returns nil when the dependency can serve a Traverse.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects the checkers consulted by GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and maps its name to the failure, or to
	// nil when it is healthy.
	CheckAll(ctx context.Context) map[string]error
}
