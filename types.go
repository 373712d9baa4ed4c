package tracingweb

import (
	"errors"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type (
	// TracerProvider is a symbolic link to trace.TracerProvider.
	TracerProvider = trace.TracerProvider
	// Span is a symbolic link to trace.Span.
	Span = trace.Span
	// Logger is a symbolic link to logr.Logger.
	Logger = logr.Logger
	// Field is a symbolic link to attribute.KeyValue. Fields are the
	// key/value data attached to spans and events by the host framework.
	Field = attribute.KeyValue
)

// Severity classifies one log record or event. It decides which console
// channel a flushed record is dispatched to.
//
// The numeric values line up with zapcore.Level for the levels both sides
// know about, which makes the zap adapter a plain conversion.
type Severity int8

const (
	// SeverityTrace is the most verbose severity. The browser console has
	// no dedicated trace channel, so it shares the debug channel.
	SeverityTrace Severity = iota - 2
	// SeverityDebug routes to console.debug.
	SeverityDebug
	// SeverityInfo routes to console.info.
	SeverityInfo
	// SeverityWarn routes to console.warn.
	SeverityWarn
	// SeverityError routes to console.error.
	SeverityError
)

// String returns the upper-case name of the severity, e.g. "WARN". Unknown
// severities stringify as "LOG", matching the console channel they fall
// back to.
func (s Severity) String() string {
	switch s {
	case SeverityTrace:
		return "TRACE"
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarn:
		return "WARN"
	case SeverityError:
		return "ERROR"
	}
	return "LOG"
}

// Metadata describes a span or event as declared at its instrumentation
// site. Name is the only field the layer requires; the rest is carried
// through for detail formatting.
type Metadata struct {
	Name     string
	Target   string
	Severity Severity
	File     string
	Line     int
}

// Event is a single point-in-time occurrence with a severity and field set,
// as opposed to a spanning interval.
type Event struct {
	Metadata Metadata
	Fields   []Field
}

// Layer receives span lifecycle transitions and standalone events from the
// host subscription framework. The host calls every hook synchronously on
// its own goroutine and holds a Layer reference, never a concrete type.
//
// Span identifiers are assigned and owned by the host; the layer never
// invents them.
type Layer interface {
	// OnNewSpan reports that a span was created, together with its
	// metadata and initial field set.
	OnNewSpan(id uint64, meta Metadata, fields ...Field)
	// OnEnter reports that the span began (or resumed) executing.
	OnEnter(id uint64)
	// OnExit reports that the span stopped (possibly temporarily)
	// executing, e.g. across a suspension point.
	OnExit(id uint64)
	// OnClose reports that the span ended for good.
	OnClose(id uint64)
	// OnEvent reports a standalone event.
	OnEvent(ev Event)
}

// FieldRecorder is an optional interface a Layer may implement to accept
// fields recorded after span creation. Hosts discover it with a type
// assertion; *PerformanceLayer implements it.
type FieldRecorder interface {
	RecordFields(id uint64, fields ...Field)
}

//counterfeiter:generate . Console

// Console is the minimal browser console capability this package emits
// through. Each method corresponds to one console channel and takes the
// fully-composed message as its single argument.
type Console interface {
	Error(msg string)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
	Log(msg string)
}

//counterfeiter:generate . Performance

// Performance is the minimal Performance-timeline capability this package
// emits through. Timestamps are DOMHighResTimeStamp-style milliseconds from
// a monotonic origin.
//
// An empty detail string means "no detail payload".
type Performance interface {
	Now() float64
	Mark(name string, detail string) error
	Measure(name string, start, end float64, detail string) error
}

var (
	// ErrRecordOpen is returned by ConsoleWriter.Open when a record is
	// already open. The writer is not reentrant; this indicates a bug in
	// the formatting layer driving it.
	ErrRecordOpen = errors.New("console writer: record already open")
	// ErrNoRecord is returned by ConsoleWriter.Write when no record is
	// open.
	ErrNoRecord = errors.New("console writer: no open record")
	// ErrConsoleUnavailable is returned by BrowserConsole when the hosting
	// environment exposes no console object.
	ErrConsoleUnavailable = errors.New("console capability unavailable")
	// ErrPerformanceUnavailable is returned by BrowserPerformance when the
	// hosting environment exposes no Performance API.
	ErrPerformanceUnavailable = errors.New("performance capability unavailable")
)
