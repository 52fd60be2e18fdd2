package profiler_test

import (
	"context"
	"strings"
	"testing"

	"github.com/slip-lang/slip/lisp"
	"github.com/slip-lang/slip/lisp/x/profiler"
	"github.com/slip-lang/slip/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const testSlip = `
(define (sq x) (* x x))
(sq 3)
((lambda (y) (+ y 1)) 1)
`

func evalSource(t *testing.T, env *lisp.Env, src string) {
	t.Helper()
	forms, err := parser.Read("test.slip", strings.NewReader(src))
	require.NoError(t, err)
	for _, form := range forms {
		_, err := env.Eval(form)
		require.NoError(t, err)
	}
}

func TestNewOpenTelemetryAnnotator(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)

	env := lisp.NewEnv(nil)
	ppa := profiler.NewOpenTelemetryAnnotator(env.Runtime, context.Background())
	require.NoError(t, ppa.Enable())
	evalSource(t, env, testSlip)
	require.NoError(t, ppa.Complete())

	spans := exporter.GetSpans()
	require.Len(t, spans, 2, "one span per application")
	assert.Equal(t, "sq", spans[0].Name)
	assert.Equal(t, "lambda", spans[1].Name)
}

func TestNewOpenTelemetryAnnotatorNested(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)

	env := lisp.NewEnv(nil)
	ppa := profiler.NewOpenTelemetryAnnotator(env.Runtime, context.Background())
	require.NoError(t, ppa.Enable())
	evalSource(t, env, `
(define (fact n) (cond ((= n 0) 1) (else (* n (fact (- n 1))))))
(fact 3)
`)
	require.NoError(t, ppa.Complete())

	spans := exporter.GetSpans()
	require.Len(t, spans, 4, "one span per recursive application")
	for _, span := range spans {
		assert.Equal(t, "fact", span.Name)
	}
}

func TestNewOpenTelemetryAnnotatorSkip(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)

	env := lisp.NewEnv(nil)
	ppa := profiler.NewOpenTelemetryAnnotator(env.Runtime, context.Background(),
		profiler.WithSkipFilter(func(fun *lisp.Cell) bool {
			return fun.Proc != nil && fun.Proc.Name == ""
		}))
	require.NoError(t, ppa.Enable())
	evalSource(t, env, testSlip)
	require.NoError(t, ppa.Complete())

	spans := exporter.GetSpans()
	require.Len(t, spans, 1, "anonymous procedures are filtered")
	assert.Equal(t, "sq", spans[0].Name)
}

func TestAnnotatorDisabledRecordsNothing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)

	env := lisp.NewEnv(nil)
	ppa := profiler.NewOpenTelemetryAnnotator(env.Runtime, context.Background())
	env.Runtime.Profiler = ppa
	// Enable is never called.
	evalSource(t, env, testSlip)

	assert.Empty(t, exporter.GetSpans())
}
