/*
Package tracingweb bridges structured tracing and logging to two
browser-hosted sinks: the developer-tools console and the Performance
timeline. It is meant for Go applications compiled for js/wasm that want
their existing instrumentation to produce readable console logs and timeline
marks/measures without re-instrumenting anything.

Two independent components do the work.

The ConsoleWriter adapts the incremental write contract used by formatting
layers onto the console's discrete logging methods. It buffers the bytes of
one record and, on flush, issues exactly one console call on the channel
matching the record's severity: console.error, console.warn, console.info or
console.debug (trace shares debug, anything unknown falls back to
console.log). NewConsoleCore packages the writer as a zapcore.Core, so a zap
or zapr/logr logger writes straight to the console.

The PerformanceLayer implements the Layer lifecycle contract: it records a
timing entry when a span is registered, emits a mark labeled with the span's
name, and on close emits a measure spanning registration-to-close. Standalone
events become single marks. Detail payloads are derived from the span's or
event's field set through a pluggable FieldFormatter; see CompactFields and
JSONFields. NewSpanProcessor adapts the layer to an OpenTelemetry
SpanProcessor, so spans started through any otel TracerProvider show up on
the timeline.

Everything is wired together by the NewBridge builder, the intended
composition root:

	bridge, err := tracingweb.NewBridge().
		WithPrettyLevel().
		WithDetailsFromFields(tracingweb.CompactFields()).
		InstallGlobally()
	if err != nil {
		panic(err)
	}
	log := bridge.Logger

	ctx, span := otel.Tracer("app").Start(context.Background(), "load")
	log.Info("loading", "assets", 42)
	span.End() // one measure named "load" appears on the timeline
	_ = ctx

All hooks run synchronously on the caller; the package spawns no background
work. Malformed lifecycle input (duplicate ids, close without registration)
is skipped rather than raised, because an observability bridge must stay
transparent to the pipeline feeding it. Spans abandoned without a close keep
their registry entry alive; PerformanceLayer.ActiveSpans exposes that count
so long-running hosts can watch for leaks.

Outside a browser runtime the capability constructors BrowserConsole and
BrowserPerformance fail with ErrConsoleUnavailable and
ErrPerformanceUnavailable respectively. Tests and examples substitute
WriterConsole, the perftest.Recorder, or the generated fakes in
tracingwebfakes.
*/
package tracingweb
