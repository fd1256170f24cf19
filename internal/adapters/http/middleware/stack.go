package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/game-narrative-script/internal/platform/telemetry"
)

// Stack returns the story server middleware in execution order, outermost
// first. Pass it to chi's Use so that the OpenTelemetry middleware can read
// the matched route pattern once the handler returns:
//
//	r.Use(middleware.Stack(logger, metrics, cfg.Server.RequestTimeout)...)
//
// Recovery sits outside Timeout so that panics raised in the timed handler
// goroutine still produce a 500.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	}
}
