package tracing

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/viant/bookscan"

// Shutdown flushes and releases the installed provider.
type Shutdown func(ctx context.Context) error

// Init configures OpenTelemetry with the stdout exporter. If outputFile is empty the exporter
// writes to os.Stdout; otherwise spans are written to the specified file.
func Init(serviceName, serviceVersion, outputFile string) (Shutdown, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, err
		}
		w, closer = f, f
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, err
	}
	shutdown, err := installProvider(serviceName, serviceVersion, exporter)
	if err != nil || closer == nil {
		return shutdown, err
	}
	return func(ctx context.Context) error {
		err := shutdown(ctx)
		if cErr := closer.Close(); err == nil {
			err = cErr
		}
		return err
	}, nil
}

// InitWithExporter configures OpenTelemetry using the supplied SpanExporter (OTLP, in-memory, ...).
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) (Shutdown, error) {
	return installProvider(serviceName, serviceVersion, exporter)
}

var mux sync.Mutex

// installProvider registers exporter behind a new global provider; the latest installation wins.
func installProvider(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) (Shutdown, error) {
	if exporter == nil {
		return func(context.Context) error { return nil }, nil
	}
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	)
	mux.Lock()
	otel.SetTracerProvider(tp)
	mux.Unlock()
	return tp.Shutdown, nil
}

// Span wraps go.opentelemetry.io/otel/trace.Span so that callers do not import the upstream package.
type Span struct {
	span trace.Span
}

// WithAttributes attaches all provided attributes to the span.
func (s *Span) WithAttributes(attrs map[string]string) *Span {
	if s == nil || len(attrs) == 0 {
		return s
	}
	otelAttrs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		otelAttrs = append(otelAttrs, attribute.String(k, v))
	}
	s.span.SetAttributes(otelAttrs...)
	return s
}

// WithInt attaches a numeric attribute.
func (s *Span) WithInt(key string, value int64) *Span {
	if s == nil {
		return s
	}
	s.span.SetAttributes(attribute.Int64(key, value))
	return s
}

// SetStatus records an error status on the span, or OK when err is nil.
func (s *Span) SetStatus(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
		return
	}
	s.span.SetStatus(codes.Ok, "")
}

// StartSpan starts a child span; kind is one of SERVER, CLIENT, PRODUCER, CONSUMER, anything
// else maps to an internal span.
func StartSpan(ctx context.Context, name, kind string) (context.Context, *Span) {
	tracer := otel.Tracer(tracerName)

	var spanKind trace.SpanKind
	switch kind {
	case "SERVER":
		spanKind = trace.SpanKindServer
	case "CLIENT":
		spanKind = trace.SpanKindClient
	case "PRODUCER":
		spanKind = trace.SpanKindProducer
	case "CONSUMER":
		spanKind = trace.SpanKindConsumer
	default:
		spanKind = trace.SpanKindInternal
	}
	ctx, span := tracer.Start(ctx, name, trace.WithSpanKind(spanKind))
	return ctx, &Span{span: span}
}

// EndSpan finalises the span and records status depending on the provided error.
func EndSpan(sp *Span, err error) {
	if sp == nil {
		return
	}
	sp.SetStatus(err)
	sp.span.End()
}
