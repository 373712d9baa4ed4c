package tracingweb

import (
	"sync"
)

// LayerOption applies an option to the target LayerOptions struct.
type LayerOption interface {
	ApplyToLayer(target *LayerOptions)
}

// LayerOptions store options about a PerformanceLayer.
type LayerOptions struct {
	// Details renders the detail payload attached to marks and measures.
	// When nil, entries carry only a label and timestamps.
	Details FieldFormatter
	// TransitionMarks additionally emits a mark for every span enter,
	// exit and field-record transition. Additive; it does not move the
	// measure's start point.
	TransitionMarks bool
	// RegisterOnEnter delays span registration (the timing start and the
	// creation mark) from span creation until the first enter, excluding
	// setup time before first execution from the eventual measure. The
	// default registers at creation.
	RegisterOnEnter bool
}

func (o *LayerOptions) applyOptions(opts []LayerOption) *LayerOptions {
	for _, opt := range opts {
		opt.ApplyToLayer(o)
	}
	return o
}

// TransitionMarks is a LayerOption controlling LayerOptions.TransitionMarks.
type TransitionMarks bool

var _ LayerOption = TransitionMarks(false)

// ApplyToLayer implements LayerOption.
func (t TransitionMarks) ApplyToLayer(target *LayerOptions) { target.TransitionMarks = bool(t) }

// RegisterOnFirstEnter is a LayerOption controlling
// LayerOptions.RegisterOnEnter.
type RegisterOnFirstEnter bool

var _ LayerOption = RegisterOnFirstEnter(false)

// ApplyToLayer implements LayerOption.
func (r RegisterOnFirstEnter) ApplyToLayer(target *LayerOptions) { target.RegisterOnEnter = bool(r) }

// DetailsFromFields is a LayerOption controlling LayerOptions.Details.
type DetailsFromFields struct {
	Formatter FieldFormatter
}

var _ LayerOption = DetailsFromFields{}

// ApplyToLayer implements LayerOption.
func (d DetailsFromFields) ApplyToLayer(target *LayerOptions) { target.Details = d.Formatter }

// WithDetailsFromFields configures the formatter used to turn a span's or
// event's field set into the detail payload of the emitted timeline entry.
func WithDetailsFromFields(f FieldFormatter) LayerOption {
	return DetailsFromFields{Formatter: f}
}

// NewPerformanceLayer returns a Layer translating span lifecycle transitions
// and standalone events into Performance timeline marks and measures.
//
// By default a span is registered (its timing started and its creation mark
// emitted) when it is created, so the eventual measure includes setup time
// before first execution; see RegisterOnFirstEnter for the alternative.
func NewPerformanceLayer(perf Performance, opts ...LayerOption) *PerformanceLayer {
	o := (&LayerOptions{}).applyOptions(opts)
	return &PerformanceLayer{
		perf:            perf,
		details:         o.Details,
		transitionMarks: o.TransitionMarks,
		registerOnEnter: o.RegisterOnEnter,
		active:          make(map[uint64]*spanTiming),
	}
}

// PerformanceLayer emits Performance timeline entries for the span
// lifecycle: one mark at registration, optional marks per transition, and
// exactly one measure spanning registration-to-close.
//
// Malformed input (duplicate ids, close without registration) never panics;
// the affected emission is skipped so one bad record cannot abort event
// processing for unrelated spans.
type PerformanceLayer struct {
	perf            Performance
	details         FieldFormatter
	transitionMarks bool
	registerOnEnter bool

	mu     sync.Mutex
	active map[uint64]*spanTiming
}

var (
	_ Layer         = &PerformanceLayer{}
	_ FieldRecorder = &PerformanceLayer{}
)

// spanTiming is the per-span registry entry: created at registration, read
// at close to compute the elapsed duration, then discarded.
type spanTiming struct {
	name       string
	fields     []Field
	start      float64
	registered bool
}

// OnNewSpan implements Layer. A duplicate id leaves the live entry
// untouched.
func (l *PerformanceLayer) OnNewSpan(id uint64, meta Metadata, fields ...Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.active[id]; ok {
		return
	}
	st := &spanTiming{
		name:   meta.Name,
		fields: mergeFields(nil, fields),
	}
	l.active[id] = st
	if !l.registerOnEnter {
		l.register(st)
	}
}

// OnEnter implements Layer. Repeated enters do not restart the timing; only
// the first registration and the final close matter for the measure.
func (l *PerformanceLayer) OnEnter(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.active[id]
	if !ok {
		return
	}
	if !st.registered {
		l.register(st)
	}
	if l.transitionMarks {
		_ = l.perf.Mark(transitionLabel(st.name, id, "enter"), l.detail(st.fields))
	}
}

// OnExit implements Layer.
func (l *PerformanceLayer) OnExit(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.active[id]
	if !ok || !st.registered {
		return
	}
	if l.transitionMarks {
		_ = l.perf.Mark(transitionLabel(st.name, id, "exit"), l.detail(st.fields))
	}
}

// OnClose implements Layer. It emits the span's measure and removes the
// registry entry. Closing an unknown or never-registered id emits nothing.
func (l *PerformanceLayer) OnClose(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.active[id]
	if !ok {
		return
	}
	delete(l.active, id)
	if !st.registered {
		return
	}
	_ = l.perf.Measure(spanLabel(st.name), st.start, l.perf.Now(), l.detail(st.fields))
}

// OnEvent implements Layer. A standalone event yields zero-or-one mark,
// never a measure.
func (l *PerformanceLayer) OnEvent(ev Event) {
	label := eventLabel(ev)
	if len(label) == 0 {
		return
	}
	_ = l.perf.Mark(label, l.detail(ev.Fields))
}

// RecordFields implements FieldRecorder. Recorded fields join the span's
// accumulated field set, replacing earlier values for the same key.
func (l *PerformanceLayer) RecordFields(id uint64, fields ...Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.active[id]
	if !ok {
		return
	}
	st.fields = mergeFields(st.fields, fields)
	if l.transitionMarks && st.registered {
		_ = l.perf.Mark(transitionLabel(st.name, id, "record"), l.detail(st.fields))
	}
}

// ActiveSpans reports the number of live registry entries. Spans abandoned
// without a close hook stay registered for the remaining process lifetime;
// this gives hosts a way to observe such leaks.
func (l *PerformanceLayer) ActiveSpans() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.active)
}

// register stamps the timing start and emits the creation mark. Callers
// hold l.mu.
func (l *PerformanceLayer) register(st *spanTiming) {
	st.start = l.perf.Now()
	st.registered = true
	_ = l.perf.Mark(spanLabel(st.name), l.detail(st.fields))
}

func (l *PerformanceLayer) detail(fields []Field) string {
	if l.details == nil || len(fields) == 0 {
		return ""
	}
	s, err := l.details.FormatFields(fields)
	if err != nil {
		return ""
	}
	return s
}
