package tracingweb_test

import (
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/wasmtel/tracingweb"
	"github.com/wasmtel/tracingweb/perftest"
	"github.com/wasmtel/tracingweb/tracingwebfakes"
)

func TestPerformanceLayer_SpanMeasure(t *testing.T) {
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec)

	layer.OnNewSpan(1, tracingweb.Metadata{Name: "load"})
	rec.Advance(50)
	layer.OnClose(1)

	entries := rec.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, perftest.Entry{Kind: "mark", Name: "load", Start: 0}, entries[0])
	assert.Equal(t, perftest.Entry{Kind: "measure", Name: "load", Start: 0, End: 50}, entries[1])
	assert.Zero(t, layer.ActiveSpans())
}

func TestPerformanceLayer_CloseWithoutRegistration(t *testing.T) {
	fake := &tracingwebfakes.FakePerformance{}
	layer := tracingweb.NewPerformanceLayer(fake)

	assert.NotPanics(t, func() { layer.OnClose(99) })

	// No capability call of any kind.
	assert.Empty(t, fake.Invocations())
}

func TestPerformanceLayer_DoubleClose(t *testing.T) {
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec)

	layer.OnNewSpan(7, tracingweb.Metadata{Name: "fetch"})
	rec.Advance(10)
	layer.OnClose(7)
	layer.OnClose(7)

	measures := 0
	for _, e := range rec.Entries() {
		if e.Kind == "measure" {
			measures++
		}
	}
	assert.Equal(t, 1, measures)
}

func TestPerformanceLayer_DuplicateID(t *testing.T) {
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec)

	layer.OnNewSpan(3, tracingweb.Metadata{Name: "first"})
	rec.Advance(5)
	// The duplicate must not displace the live entry.
	layer.OnNewSpan(3, tracingweb.Metadata{Name: "second"})
	rec.Advance(5)
	layer.OnClose(3)

	entries := rec.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, perftest.Entry{Kind: "measure", Name: "first", Start: 0, End: 10}, entries[1])
}

func TestPerformanceLayer_EventMark(t *testing.T) {
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec,
		tracingweb.WithDetailsFromFields(tracingweb.CompactFields()))

	rec.SetNow(12)
	layer.OnEvent(tracingweb.Event{
		Metadata: tracingweb.Metadata{Name: "cache miss", Target: "assets"},
		Fields:   []tracingweb.Field{attribute.Int("size", 2048)},
	})

	entries := rec.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, perftest.Entry{
		Kind:   "mark",
		Name:   "cache miss",
		Start:  12,
		Detail: "size=2048",
	}, entries[0])
}

func TestPerformanceLayer_EventFallsBackToTarget(t *testing.T) {
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec)

	layer.OnEvent(tracingweb.Event{Metadata: tracingweb.Metadata{Target: "assets"}})
	layer.OnEvent(tracingweb.Event{})

	entries := rec.Entries()
	// A fully anonymous event yields nothing; the named-by-target one
	// yields exactly one mark and never a measure.
	require.Len(t, entries, 1)
	assert.Equal(t, "mark", entries[0].Kind)
	assert.Equal(t, "assets", entries[0].Name)
}

func TestPerformanceLayer_TransitionMarks(t *testing.T) {
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec, tracingweb.TransitionMarks(true))

	layer.OnNewSpan(1, tracingweb.Metadata{Name: "load"})
	rec.Advance(5)
	layer.OnEnter(1)
	rec.Advance(5)
	layer.OnExit(1)
	rec.Advance(5)
	// A re-enter across a suspension point must not move the measure start.
	layer.OnEnter(1)
	rec.Advance(5)
	layer.OnClose(1)

	entries := rec.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, "load", entries[0].Name)
	assert.Equal(t, "load [1]: span-enter", entries[1].Name)
	assert.Equal(t, "load [1]: span-exit", entries[2].Name)
	assert.Equal(t, "load [1]: span-enter", entries[3].Name)
	assert.Equal(t, perftest.Entry{Kind: "measure", Name: "load", Start: 0, End: 20}, entries[4])
}

func TestPerformanceLayer_RegisterOnFirstEnter(t *testing.T) {
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec, tracingweb.RegisterOnFirstEnter(true))

	layer.OnNewSpan(1, tracingweb.Metadata{Name: "render"})
	// Setup time before first execution is excluded from the measure.
	rec.Advance(10)
	assert.Empty(t, rec.Entries())

	layer.OnEnter(1)
	rec.Advance(5)
	layer.OnClose(1)

	entries := rec.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, perftest.Entry{Kind: "mark", Name: "render", Start: 10}, entries[0])
	assert.Equal(t, perftest.Entry{Kind: "measure", Name: "render", Start: 10, End: 15}, entries[1])
}

func TestPerformanceLayer_NeverEnteredSpanEmitsNothing(t *testing.T) {
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec, tracingweb.RegisterOnFirstEnter(true))

	layer.OnNewSpan(1, tracingweb.Metadata{Name: "render"})
	layer.OnClose(1)

	assert.Empty(t, rec.Entries())
	assert.Zero(t, layer.ActiveSpans())
}

func TestPerformanceLayer_RecordFields(t *testing.T) {
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec,
		tracingweb.WithDetailsFromFields(tracingweb.CompactFields()))

	layer.OnNewSpan(1, tracingweb.Metadata{Name: "load"},
		attribute.String("phase", "start"), attribute.String("url", "/"))
	rec.Advance(30)
	// Recorded fields replace earlier values for the same key.
	layer.RecordFields(1, attribute.String("phase", "done"))
	layer.OnClose(1)

	entries := rec.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "phase=start url=/", entries[0].Detail)
	assert.Equal(t, "phase=done url=/", entries[1].Detail)
}

func TestPerformanceLayer_EmissionErrorsIgnored(t *testing.T) {
	fake := &tracingwebfakes.FakePerformance{}
	fake.MarkReturns(errors.New("timeline full"))
	fake.MeasureReturns(errors.New("timeline full"))
	layer := tracingweb.NewPerformanceLayer(fake)

	assert.NotPanics(t, func() {
		layer.OnNewSpan(1, tracingweb.Metadata{Name: "load"})
		layer.OnClose(1)
	})
	assert.Equal(t, 1, fake.MeasureCallCount())
	assert.Zero(t, layer.ActiveSpans())
}

func TestPerformanceLayer_UnnamedSpanLabel(t *testing.T) {
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec)

	layer.OnNewSpan(5, tracingweb.Metadata{})
	layer.OnClose(5)

	entries := rec.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "<unnamed_span>", entries[0].Name)
	assert.Equal(t, "<unnamed_span>", entries[1].Name)
}

func TestPerformanceLayer_AbandonedSpanStaysRegistered(t *testing.T) {
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec)

	layer.OnNewSpan(1, tracingweb.Metadata{Name: "a"})
	layer.OnNewSpan(2, tracingweb.Metadata{Name: "b"})
	layer.OnClose(1)

	// Span 2 never closes; its entry leaks by design and is observable.
	assert.Equal(t, 1, layer.ActiveSpans())
}

func TestPerformanceLayer_TimelineGolden(t *testing.T) {
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec,
		tracingweb.WithDetailsFromFields(tracingweb.CompactFields()),
		tracingweb.TransitionMarks(true))

	layer.OnNewSpan(1, tracingweb.Metadata{Name: "load"}, attribute.String("url", "/index.html"))
	rec.Advance(5)
	layer.OnEnter(1)
	rec.Advance(5)
	layer.OnEvent(tracingweb.Event{
		Metadata: tracingweb.Metadata{Name: "cache miss", Target: "assets"},
		Fields:   []tracingweb.Field{attribute.Int("size", 2048)},
	})
	rec.Advance(5)
	layer.OnExit(1)
	rec.Advance(5)
	layer.OnClose(1)

	snapshot, err := rec.Snapshot()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "timeline", snapshot)
}
