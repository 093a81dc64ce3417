package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/recheck/internal/adapters/telemetry"
	"go.trai.ch/recheck/internal/core/ports"
)

func newRecordedTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	return telemetry.NewOTelTracer("test"), recorder
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	_, span := tracer.Start(context.Background(), "check cat.clvm",
		ports.WithAttribute(ports.AttrPuzzle, "cat.clvm"),
		ports.WithAttribute("recheck.index", 3),
	)
	span.SetAttribute("recheck.status", "match")
	span.SetAttribute("recheck.size", int64(42))
	span.SetAttribute("recheck.passed", true)
	span.SetAttribute("recheck.ratio", 0.5)
	span.SetAttribute("recheck.names", []string{"a", "b"})
	span.SetAttribute("recheck.other", struct{ X int }{X: 1})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "check cat.clvm", ended[0].Name())

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "cat.clvm", attrs[ports.AttrPuzzle].AsString())
	assert.Equal(t, int64(3), attrs["recheck.index"].AsInt64())
	assert.Equal(t, "match", attrs["recheck.status"].AsString())
	assert.Equal(t, int64(42), attrs["recheck.size"].AsInt64())
	assert.True(t, attrs["recheck.passed"].AsBool())
	assert.InEpsilon(t, 0.5, attrs["recheck.ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, []string{"a", "b"}, attrs["recheck.names"].AsStringSlice())
	assert.Equal(t, "{1}", attrs["recheck.other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	_, span := tracer.Start(context.Background(), "check")
	span.RecordError(nil)
	span.RecordError(errors.New("boom"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	gotCtx, span := tracer.Start(ctx, "check")
	assert.Equal(t, ctx, gotCtx)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
