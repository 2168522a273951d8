package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, InitWithExporter("cpusim", "0.0.1", exporter))
	t.Cleanup(func() { _ = Shutdown(context.Background()) })

	ctx, span := StartSpan(context.Background(), "queue.tick")
	span.WithAttributes(map[string]string{"running": "1B"}).WithInt("ready", 9)
	EndSpan(span, nil)

	_, failed := StartSpan(ctx, "command.execute")
	EndSpan(failed, errors.New("unknown command"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "queue.tick", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Equal(t, "command.execute", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Equal(t, spans[0].SpanContext.TraceID(), spans[1].Parent.TraceID())
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]string{"k": "v"}))
	EndSpan(span, nil)
}

func TestInit_OutputFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "trace.json")
	require.NoError(t, Init("cpusim", "0.0.1", outputFile))
	require.NoError(t, Init("cpusim", "0.0.1", filepath.Join(t.TempDir(), "ignored.json")))

	_, span := StartSpan(context.Background(), "queue.tick")
	EndSpan(span, nil)
	require.NoError(t, Shutdown(context.Background()))
	require.NoError(t, Shutdown(context.Background()))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "queue.tick")

	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, InitWithExporter("cpusim", "0.0.1", exporter))
	t.Cleanup(func() { _ = Shutdown(context.Background()) })
	_, span = StartSpan(context.Background(), "command.execute")
	EndSpan(span, nil)
	assert.Len(t, exporter.GetSpans(), 1)
}

func TestInit_InvalidOutputFile(t *testing.T) {
	err := Init("cpusim", "0.0.1", filepath.Join(t.TempDir(), "missing", "trace.json"))
	assert.Error(t, err)
	assert.NoError(t, Shutdown(context.Background()))
}
