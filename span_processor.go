package tracingweb

import (
	"context"
	"encoding/binary"

	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// NewSpanProcessor adapts a Layer into an OpenTelemetry SpanProcessor, so
// otel-instrumented applications drive the layer without re-instrumenting.
//
// Span start maps to OnNewSpan followed by OnEnter (an otel span begins
// executing as soon as it is started; there are no suspension points to
// report). Span end records the final attribute set, then maps to OnExit
// and OnClose. The processor holds the Layer interface only.
func NewSpanProcessor(layer Layer) tracesdk.SpanProcessor {
	return &spanProcessor{layer: layer}
}

type spanProcessor struct {
	layer Layer
}

func (p *spanProcessor) OnStart(_ context.Context, s tracesdk.ReadWriteSpan) {
	id := spanKey(s.SpanContext().SpanID())
	p.layer.OnNewSpan(id, Metadata{Name: s.Name()}, s.Attributes()...)
	p.layer.OnEnter(id)
}

func (p *spanProcessor) OnEnd(s tracesdk.ReadOnlySpan) {
	id := spanKey(s.SpanContext().SpanID())
	if rec, ok := p.layer.(FieldRecorder); ok {
		rec.RecordFields(id, s.Attributes()...)
	}
	p.layer.OnExit(id)
	p.layer.OnClose(id)
}

func (p *spanProcessor) Shutdown(ctx context.Context) error { return ctx.Err() }

func (p *spanProcessor) ForceFlush(ctx context.Context) error { return ctx.Err() }

// spanKey folds an otel span id into the uint64 identifier space the Layer
// contract uses.
func spanKey(sid trace.SpanID) uint64 {
	return binary.BigEndian.Uint64(sid[:])
}
