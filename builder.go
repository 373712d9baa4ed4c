package tracingweb

import (
	"context"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/go-logr/zapr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewBridge returns a new *BridgeBuilder.
func NewBridge() *BridgeBuilder {
	return &BridgeBuilder{level: zapcore.DebugLevel}
}

// BridgeBuilder is an opinionated builder-pattern constructor for the whole
// browser-telemetry bridge: a logr.Logger whose records land in the console,
// a PerformanceLayer feeding the Performance timeline, and a TracerProvider
// that drives the layer from OpenTelemetry spans.
//
// It is the composition root; construct it once at process start and pass
// the result down. Nothing here is a global singleton.
type BridgeBuilder struct {
	console Console
	perf    Performance

	writerOpts []WriterOption
	layerOpts  []LayerOption
	eventMarks bool

	encoderCfg *zapcore.EncoderConfig
	level      zapcore.LevelEnabler
	fallback   bool

	exporters []tracesdk.SpanExporter
	errs      []error
	sync      bool
	tpOpts    []tracesdk.TracerProviderOption
	attrs     []attribute.KeyValue
}

// WithConsole supplies the console capability explicitly. By default
// BrowserConsole() is used.
//
// A call to this function overwrites any previous value.
func (b *BridgeBuilder) WithConsole(c Console) *BridgeBuilder {
	b.console = c
	return b
}

// WithPerformance supplies the Performance capability explicitly. By default
// BrowserPerformance() is used.
//
// A call to this function overwrites any previous value.
func (b *BridgeBuilder) WithPerformance(p Performance) *BridgeBuilder {
	b.perf = p
	return b
}

// WithPrettyLevel prefixes every console line with a bracketed severity
// label. If the encoder already renders the level, you probably want only
// one of the two.
func (b *BridgeBuilder) WithPrettyLevel() *BridgeBuilder {
	b.writerOpts = append(b.writerOpts, PrettyLevel(true))
	return b
}

// WithDetailsFromFields attaches detail payloads rendered by f to the
// emitted marks and measures. Without it, entries carry only a label and
// timestamps.
//
// A call to this function overwrites any previous value.
func (b *BridgeBuilder) WithDetailsFromFields(f FieldFormatter) *BridgeBuilder {
	b.layerOpts = append(b.layerOpts, WithDetailsFromFields(f))
	return b
}

// WithTransitionMarks emits an additional mark per span enter, exit and
// field-record transition, for fine-grained timeline visualization.
func (b *BridgeBuilder) WithTransitionMarks() *BridgeBuilder {
	b.layerOpts = append(b.layerOpts, TransitionMarks(true))
	return b
}

// RegisterOnFirstEnter starts span timing at the first enter instead of at
// creation, excluding setup time from the measure.
func (b *BridgeBuilder) RegisterOnFirstEnter() *BridgeBuilder {
	b.layerOpts = append(b.layerOpts, RegisterOnFirstEnter(true))
	return b
}

// WithEventMarks forwards every console log entry to the PerformanceLayer
// as a standalone event, yielding one timeline mark per log record.
func (b *BridgeBuilder) WithEventMarks() *BridgeBuilder {
	b.eventMarks = true
	return b
}

// WithEncoderConfig lets the user fine-tune how log records are rendered
// before they reach the console. The default is the development console
// encoder without timestamps, since the browser console stamps lines
// itself.
//
// A call to this function overwrites any previous value.
func (b *BridgeBuilder) WithEncoderConfig(cfg zapcore.EncoderConfig) *BridgeBuilder {
	b.encoderCfg = &cfg
	return b
}

// LogUpto specifies the most verbose level that is still emitted to the
// console. Defaults to debug.
//
// A call to this function overwrites any previous value.
func (b *BridgeBuilder) LogUpto(enab zapcore.LevelEnabler) *BridgeBuilder {
	b.level = enab
	return b
}

// FallbackToStderr makes Build tolerate a missing console capability by
// substituting a stderr logger (via stdr) for the console-backed one.
// Without this option a missing console fails Build, since it indicates the
// library is used outside a browser-like context.
func (b *BridgeBuilder) FallbackToStderr() *BridgeBuilder {
	b.fallback = true
	return b
}

// WithStdoutExporter additionally exports finished spans pretty-printed to
// os.Stdout, or to another writer via stdouttrace.WithWriter(w). Useful for
// debugging the bridge itself and for golden tests.
func (b *BridgeBuilder) WithStdoutExporter(opts ...stdouttrace.Option) *BridgeBuilder {
	defaultOpts := []stdouttrace.Option{
		stdouttrace.WithPrettyPrint(),
	}
	// Order the defaultOpts first, so opts can override them.
	opts = append(defaultOpts, opts...)
	exp, err := stdouttrace.New(opts...)
	b.exporters = append(b.exporters, exp)
	b.errs = append(b.errs, err)
	return b
}

// Synchronous makes the exporters registered with WithStdoutExporter export
// synchronously instead of batching. Useful for avoiding flakes in unit
// tests. DO NOT use in production.
func (b *BridgeBuilder) Synchronous() *BridgeBuilder {
	b.sync = true
	return b
}

// WithOptions allows configuring the underlying TracerProvider in various
// ways, for example tracesdk.WithSampler or tracesdk.WithIDGenerator.
//
// A call to this function appends to the list of previous values.
func (b *BridgeBuilder) WithOptions(opts ...tracesdk.TracerProviderOption) *BridgeBuilder {
	b.tpOpts = append(b.tpOpts, opts...)
	return b
}

// WithAttributes registers additional resource attributes for spans created
// through the bridge's TracerProvider.
//
// A call to this function appends to the list of previous values.
func (b *BridgeBuilder) WithAttributes(attrs ...attribute.KeyValue) *BridgeBuilder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// Build assembles the bridge. Missing capabilities surface here, once,
// rather than being silently swallowed later.
func (b *BridgeBuilder) Build() (*Bridge, error) {
	errs := b.errs

	console := b.console
	usingFallback := false
	if console == nil {
		var err error
		console, err = BrowserConsole()
		if err != nil {
			if !b.fallback {
				errs = append(errs, err)
			}
			usingFallback = b.fallback
		}
	}

	perf := b.perf
	if perf == nil {
		var err error
		perf, err = BrowserPerformance()
		if err != nil {
			errs = append(errs, err)
		}
	}

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}

	layer := NewPerformanceLayer(perf, b.layerOpts...)

	var logger logr.Logger
	var writer *ConsoleWriter
	if usingFallback {
		logger = stdr.New(log.New(os.Stderr, "", log.LstdFlags))
	} else {
		writer = MakeWebConsoleWriter(console, b.writerOpts...)

		cfg := b.encoderCfg
		if cfg == nil {
			c := zap.NewDevelopmentEncoderConfig()
			// The browser console timestamps every line on its own.
			c.TimeKey = ""
			cfg = &c
		}
		var eventLayer Layer
		if b.eventMarks {
			eventLayer = layer
		}
		core := NewConsoleCore(zapcore.NewConsoleEncoder(*cfg), writer, b.level, eventLayer)
		logger = zapr.NewLogger(zap.New(core))
	}

	// Record information about this application in a Resource. The default
	// attrs are ordered first, so b.attrs can override them.
	attrs := []attribute.KeyValue{
		semconv.ServiceName("tracingweb"),
	}
	attrs = append(attrs, b.attrs...)

	tpOpts := []tracesdk.TracerProviderOption{
		tracesdk.WithResource(resource.NewWithAttributes(semconv.SchemaURL, attrs...)),
		tracesdk.WithSpanProcessor(NewSpanProcessor(layer)),
	}
	for _, exporter := range b.exporters {
		if b.sync {
			tpOpts = append(tpOpts, tracesdk.WithSyncer(exporter))
			continue
		}
		tpOpts = append(tpOpts, tracesdk.WithBatcher(exporter))
	}
	tpOpts = append(tpOpts, b.tpOpts...)

	return &Bridge{
		Logger:         logger,
		Layer:          layer,
		TracerProvider: tracesdk.NewTracerProvider(tpOpts...),
		Writer:         writer,
	}, nil
}

// InstallGlobally builds the bridge and registers its TracerProvider
// globally using otel.SetTracerProvider.
func (b *BridgeBuilder) InstallGlobally() (*Bridge, error) {
	bridge, err := b.Build()
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(bridge.TracerProvider)
	return bridge, nil
}

// Bridge holds the assembled components: use Logger for console logging and
// TracerProvider (directly or via otel's global) for spans. Layer is
// exposed for hosts that dispatch lifecycle hooks themselves.
type Bridge struct {
	Logger         logr.Logger
	Layer          *PerformanceLayer
	TracerProvider TracerProvider
	// Writer is the console-backed record writer, nil when the stderr
	// fallback is active.
	Writer *ConsoleWriter
}

// Shutdown shuts the TracerProvider down, if it supports that.
func (b *Bridge) Shutdown(ctx context.Context) error {
	if s, ok := b.TracerProvider.(interface {
		Shutdown(ctx context.Context) error
	}); ok {
		return s.Shutdown(ctx)
	}
	return nil
}

// ForceFlush flushes the TracerProvider's exporters, if it supports that.
func (b *Bridge) ForceFlush(ctx context.Context) error {
	if f, ok := b.TracerProvider.(interface {
		ForceFlush(ctx context.Context) error
	}); ok {
		return f.ForceFlush(ctx)
	}
	return nil
}
