package profiler_test

import (
	"context"
	"sync"
	"testing"

	"github.com/slip-lang/slip/lisp"
	"github.com/slip-lang/slip/lisp/x/profiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/trace"
)

// spanRecorder collects exported OpenCensus spans.
type spanRecorder struct {
	mu    sync.Mutex
	spans []*trace.SpanData
}

func (r *spanRecorder) ExportSpan(s *trace.SpanData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spans = append(r.spans, s)
}

func (r *spanRecorder) Spans() []*trace.SpanData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*trace.SpanData(nil), r.spans...)
}

func TestNewOpenCensusAnnotator(t *testing.T) {
	recorder := &spanRecorder{}
	trace.RegisterExporter(recorder)
	t.Cleanup(func() { trace.UnregisterExporter(recorder) })
	trace.ApplyConfig(trace.Config{DefaultSampler: trace.AlwaysSample()})

	env := lisp.NewEnv(nil)
	ppa := profiler.NewOpenCensusAnnotator(env.Runtime, context.Background())
	require.NoError(t, ppa.Enable())
	evalSource(t, env, testSlip)
	require.NoError(t, ppa.Complete())

	spans := recorder.Spans()
	require.Len(t, spans, 2, "one span per application")
	assert.Equal(t, "sq", spans[0].Name)
	assert.Equal(t, "lambda", spans[1].Name)
}

func TestOpenCensusAnnotatorRequiresContext(t *testing.T) {
	env := lisp.NewEnv(nil)
	ppa := profiler.NewOpenCensusAnnotator(env.Runtime, nil)
	assert.Error(t, ppa.Enable())
}
