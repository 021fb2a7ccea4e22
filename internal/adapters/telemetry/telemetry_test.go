package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/csspipe/internal/adapters/telemetry"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/csspipe/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := telemetry.Install(sr)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "lookup",
		ports.WithAttribute("hash", "ef46db3751d8e999"),
		ports.WithAttribute("memory", true),
	)
	span.SetAttribute("entries", 3)
	n, err := span.Write([]byte("note"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "lookup", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("hash", "ef46db3751d8e999"),
		attribute.Bool("memory", true),
		attribute.Int("entries", 3),
	}, spans[0].Attributes())
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "log", spans[0].Events()[0].Name)
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "dispatch")
	span.RecordError(nil)
	span.RecordError(errors.New("worker exited"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "worker exited", spans[0].Status().Description)
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	tracer.EmitPlan(t.Context(), []string{"a.css"})
	assert.Empty(t, sr.Ended())

	ctx, span := tracer.Start(t.Context(), "batch")
	tracer.EmitPlan(ctx, []string{"a.css", "b.css"})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "plan_emitted", spans[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(t.Context(), "anything", ports.WithAttribute("k", "v"))
	assert.Equal(t, t.Context(), ctx)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	n, err := span.Write([]byte("test log"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	span.End()
	tracer.EmitPlan(ctx, nil)
}

func TestLogBridge(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(mockLogger)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := tp.Tracer("test")

	mockLogger.EXPECT().Info(gomock.Cond(func(msg string) bool {
		return strings.HasPrefix(msg, "trace lookup ") && strings.Contains(msg, "tier=memory")
	})).Times(1)
	_, lookup := tracer.Start(t.Context(), "lookup")
	lookup.SetAttributes(attribute.String("tier", "memory"))
	lookup.End()

	mockLogger.EXPECT().Warn(gomock.Cond(func(msg string) bool {
		return strings.HasSuffix(msg, "failed: boom")
	})).Times(1)
	_, failed := tracer.Start(t.Context(), "dispatch")
	failed.SetStatus(codes.Error, "boom")
	failed.End()
}
