package tracingweb

import (
	"bytes"
)

// WriterOption applies an option to the target WriterOptions struct.
type WriterOption interface {
	ApplyToWriter(target *WriterOptions)
}

// WriterOptions store options about a ConsoleWriter.
type WriterOptions struct {
	// PrettyLevel prefixes each flushed line with a bracketed,
	// severity-named label, e.g. "[WARN] ". Off by default.
	PrettyLevel bool
}

func (o *WriterOptions) applyOptions(opts []WriterOption) *WriterOptions {
	for _, opt := range opts {
		opt.ApplyToWriter(o)
	}
	return o
}

// PrettyLevel is a WriterOption controlling WriterOptions.PrettyLevel.
type PrettyLevel bool

var _ WriterOption = PrettyLevel(false)

// ApplyToWriter implements WriterOption.
func (p PrettyLevel) ApplyToWriter(target *WriterOptions) { target.PrettyLevel = bool(p) }

// MakeConsoleWriter returns a ConsoleWriter with the default configuration,
// i.e. no level annotation on the emitted messages.
//
// Prefer MakeWebConsoleWriter, which accepts options.
func MakeConsoleWriter(console Console) *ConsoleWriter {
	return MakeWebConsoleWriter(console)
}

// MakeWebConsoleWriter returns a ConsoleWriter emitting the written text to
// the given console. The console channel used on flush is sensitive to the
// severity the record is flushed with:
//
//	Severity  Channel
//	ERROR     console.error
//	WARN      console.warn
//	INFO      console.info
//	DEBUG     console.debug
//	TRACE     console.debug
//	other     console.log
//
// If the formatting layer already renders the level into the line, leave
// PrettyLevel off to avoid showing it twice.
func MakeWebConsoleWriter(console Console, opts ...WriterOption) *ConsoleWriter {
	o := (&WriterOptions{}).applyOptions(opts)
	return &ConsoleWriter{
		console: console,
		pretty:  o.PrettyLevel,
	}
}

// ConsoleWriter adapts an incremental, byte-oriented write contract onto the
// console's discrete per-call logging methods. The whole record is buffered
// until Flush, which guarantees exactly one console call per record and
// defers channel selection until the severity is known.
//
// One writer serves one formatting pass at a time; it is not reentrant and
// not safe for concurrent use.
type ConsoleWriter struct {
	console Console
	pretty  bool

	buf  bytes.Buffer
	open bool
}

// Open begins a new record. It returns ErrRecordOpen if a record is already
// open on this writer.
func (w *ConsoleWriter) Open() error {
	if w.open {
		return ErrRecordOpen
	}
	w.open = true
	return nil
}

// Write appends to the currently open record. It returns ErrNoRecord if no
// record is open. No length limit is enforced here.
func (w *ConsoleWriter) Write(p []byte) (int, error) {
	if !w.open {
		return 0, ErrNoRecord
	}
	return w.buf.Write(p)
}

// Flush dispatches the accumulated record to the console channel selected by
// severity, then resets the writer for the next record.
//
// Flushing without an open record is a no-op, not an error; the formatting
// layer may legitimately flush zero-length output.
func (w *ConsoleWriter) Flush(severity Severity) error {
	if !w.open {
		return nil
	}
	msg := w.buf.String()
	if w.pretty {
		msg = "[" + severity.String() + "] " + msg
	}
	w.buf.Reset()
	w.open = false

	switch severity {
	case SeverityError:
		w.console.Error(msg)
	case SeverityWarn:
		w.console.Warn(msg)
	case SeverityInfo:
		w.console.Info(msg)
	case SeverityDebug, SeverityTrace:
		// console.trace exists but logs at info level and dumps a stack,
		// which makes trace output needlessly loud; use debug instead.
		w.console.Debug(msg)
	default:
		w.console.Log(msg)
	}
	return nil
}
