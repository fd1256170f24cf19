// Package telemetry provides OpenTelemetry tracer and meter initialization
// with support for stdout (development) and OTLP/HTTP (production) exporters,
// plus the metric instruments shared by the compiler and the story server.
//
// Tracer initialization:
//
//	tp, err := telemetry.InitTracer(ctx, "gcs-server", telemetry.ExporterStdout, "")
//	defer tp.Shutdown(ctx)
//
// Meter initialization:
//
//	mp, err := telemetry.InitMeter(ctx, "gcs-server", telemetry.ExporterStdout, "")
//	defer mp.Shutdown(ctx)
//
// Pre-registered metrics:
//
//	metrics, err := telemetry.NewMetrics(mp)
//	metrics.RecordTraverse(ctx, elapsed, telemetry.ResultOK)
//
// A nil *Metrics is valid and records nothing.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
	// ExporterNone keeps the SDK providers but exports nothing. The compiler
	// CLI uses it so one-shot runs do not print telemetry.
	ExporterNone = "none"
)

// Result attribute values.
const (
	ResultOK           = "success"
	ResultError        = "error"
	ResultUnknownScene = "unknown_scene"
	ResultNotFound     = "not_found"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPStatus = attribute.Key("http.status_code")
	AttrOperation  = attribute.Key("gcs.operation")
	AttrResult     = attribute.Key("result")
)

// ErrUnsupportedExporter is returned for an exporter name other than the
// Exporter constants.
var ErrUnsupportedExporter = errors.New("unsupported telemetry exporter")

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter

	CompileFiles       metric.Int64Counter
	CompileDiagnostics metric.Int64Counter
	EncodeBytes        metric.Int64Histogram

	TraverseDuration metric.Float64Histogram

	ObjectStoreRequestDuration metric.Float64Histogram
	ObjectStoreRequestTotal    metric.Int64Counter
}

// InitTracer creates and registers a global TracerProvider.
//
// The exporter parameter selects the span exporter: "otlp" uses OTLP/HTTP
// with the given endpoint, "stdout" a pretty-printed stdout exporter, and
// "none" no exporter at all.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if exporter != ExporterNone {
		spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
		if err != nil {
			return nil, fmt.Errorf("creating span exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(spanExporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider. Exporter selection
// follows InitTracer.
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	if exporter != ExporterNone {
		metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
		if err != nil {
			return nil, fmt.Errorf("creating metric exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)))
	}

	mp := sdkmetric.NewMeterProvider(opts...)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics creates and registers all metric instruments using the given
// MeterProvider. The meter is scoped to the module path.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter("github.com/jsamuelsen11/game-narrative-script")

	var (
		m   Metrics
		err error
	)
	build := func(name string, create func() error) {
		if err != nil {
			return
		}
		if cerr := create(); cerr != nil {
			err = fmt.Errorf("creating %s: %w", name, cerr)
		}
	}

	build("http.server.request.duration", func() (e error) {
		m.ServerRequestDuration, e = meter.Float64Histogram("http.server.request.duration",
			metric.WithDescription("Duration of incoming HTTP requests"),
			metric.WithUnit("s"))
		return e
	})
	build("http.server.request.total", func() (e error) {
		m.ServerRequestTotal, e = meter.Int64Counter("http.server.request.total",
			metric.WithDescription("Total number of incoming HTTP requests"),
			metric.WithUnit("{request}"))
		return e
	})
	build("gcs.compile.files", func() (e error) {
		m.CompileFiles, e = meter.Int64Counter("gcs.compile.files",
			metric.WithDescription("Source files handed to the compiler"),
			metric.WithUnit("{file}"))
		return e
	})
	build("gcs.compile.diagnostics", func() (e error) {
		m.CompileDiagnostics, e = meter.Int64Counter("gcs.compile.diagnostics",
			metric.WithDescription("Diagnostics reported by failed compilations"),
			metric.WithUnit("{diagnostic}"))
		return e
	})
	build("gcs.encode.bytes", func() (e error) {
		m.EncodeBytes, e = meter.Int64Histogram("gcs.encode.bytes",
			metric.WithDescription("Size of generated tree blobs"),
			metric.WithUnit("By"))
		return e
	})
	build("gcs.story.traverse.duration", func() (e error) {
		m.TraverseDuration, e = meter.Float64Histogram("gcs.story.traverse.duration",
			metric.WithDescription("Duration of single act reads"),
			metric.WithUnit("s"))
		return e
	})
	build("gcs.objectstore.request.duration", func() (e error) {
		m.ObjectStoreRequestDuration, e = meter.Float64Histogram("gcs.objectstore.request.duration",
			metric.WithDescription("Duration of object store requests"),
			metric.WithUnit("s"))
		return e
	})
	build("gcs.objectstore.request.total", func() (e error) {
		m.ObjectStoreRequestTotal, e = meter.Int64Counter("gcs.objectstore.request.total",
			metric.WithDescription("Total number of object store requests"),
			metric.WithUnit("{request}"))
		return e
	})

	if err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordCompile counts one compilation run over files sources that produced
// diagnostics problems.
func (m *Metrics) RecordCompile(ctx context.Context, files, diagnostics int) {
	if m == nil {
		return
	}
	result := ResultOK
	if diagnostics > 0 {
		result = ResultError
	}
	attrs := metric.WithAttributes(AttrResult.String(result))
	m.CompileFiles.Add(ctx, int64(files), attrs)
	if diagnostics > 0 {
		m.CompileDiagnostics.Add(ctx, int64(diagnostics))
	}
}

// RecordEncode records the size of one generated blob.
func (m *Metrics) RecordEncode(ctx context.Context, bytes int64) {
	if m == nil {
		return
	}
	m.EncodeBytes.Record(ctx, bytes)
}

// RecordTraverse records one act read.
func (m *Metrics) RecordTraverse(ctx context.Context, elapsed time.Duration, result string) {
	if m == nil {
		return
	}
	m.TraverseDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(AttrResult.String(result)))
}

// RecordObjectStore records one object store request.
func (m *Metrics) RecordObjectStore(ctx context.Context, operation string, elapsed time.Duration, result string) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrOperation.String(operation),
		AttrResult.String(result),
	)
	m.ObjectStoreRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ObjectStoreRequestTotal.Add(ctx, 1, attrs)
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		return stdoutmetric.New()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

// hostPort extracts the host:port from a URL string
// (e.g., "http://otel-collector:4318" -> "otel-collector:4318").
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

// isHTTPS returns true if the endpoint URL uses the https scheme.
func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
