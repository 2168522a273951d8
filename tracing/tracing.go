package tracing

import (
	"context"
	"errors"
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
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/viant/cpusim"

// Init configures OpenTelemetry with the stdout exporter. If outputFile is
// empty traces are written to os.Stderr so that they never mix with the
// console stream. The first successful initialisation wins until Shutdown.
func Init(serviceName, serviceVersion, outputFile string) error {
	mux.Lock()
	defer mux.Unlock()
	if provider != nil {
		return nil
	}

	var w io.Writer = os.Stderr
	var closer io.Closer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		w, closer = f, f
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err == nil {
		err = installProvider(serviceName, serviceVersion, exporter)
	}
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return err
	}
	output = closer
	return nil
}

// InitWithExporter configures OpenTelemetry using the supplied SpanExporter.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	mux.Lock()
	defer mux.Unlock()
	if provider != nil || exporter == nil {
		return nil
	}
	return installProvider(serviceName, serviceVersion, exporter)
}

// Shutdown flushes pending spans, closes the trace output file and restores
// the no-op provider. It is safe to call when tracing was never initialised.
func Shutdown(ctx context.Context) error {
	mux.Lock()
	defer mux.Unlock()
	if provider == nil {
		return nil
	}
	err := provider.Shutdown(ctx)
	if output != nil {
		err = errors.Join(err, output.Close())
	}
	provider, output = nil, nil
	otel.SetTracerProvider(noop.NewTracerProvider())
	return err
}

var (
	mux      sync.Mutex
	provider *sdktrace.TracerProvider
	output   io.Closer
)

// installProvider must be called with mux held
func installProvider(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return err
	}

	provider = sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	return nil
}

// Span wraps an OpenTelemetry span
type Span struct {
	span trace.Span
}

// WithAttributes attaches string attributes to the span
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

// WithInt attaches an integer attribute to the span
func (s *Span) WithInt(key string, value int) *Span {
	if s == nil {
		return s
	}
	s.span.SetAttributes(attribute.Int(key, value))
	return s
}

// SetStatus records an error status on the span, or OK when err is nil
func (s *Span) SetStatus(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
}

// StartSpan starts a new internal span
func StartSpan(ctx context.Context, name string) (context.Context, *Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	tracer := otel.Tracer(instrumentationName)
	ctx, span := tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, &Span{span: span}
}

// EndSpan finalises the span and records status depending on err
func EndSpan(sp *Span, err error) {
	if sp == nil {
		return
	}
	sp.SetStatus(err)
	sp.span.End()
}
