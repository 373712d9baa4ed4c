package tracingweb

import (
	"bytes"
	"sort"

	"go.uber.org/zap/zapcore"
)

// NewConsoleCore returns a zapcore.Core that renders each log entry with enc
// and dispatches it through the given ConsoleWriter, routing on the entry's
// level. One log entry becomes exactly one console call.
//
// If layer is non-nil, every written entry is additionally forwarded to it
// as a standalone Event, which a PerformanceLayer turns into a timeline
// mark. Pass nil to skip event marks.
func NewConsoleCore(enc zapcore.Encoder, w *ConsoleWriter, enab zapcore.LevelEnabler, layer Layer) zapcore.Core {
	return &consoleCore{
		LevelEnabler: enab,
		enc:          enc,
		w:            w,
		layer:        layer,
	}
}

type consoleCore struct {
	zapcore.LevelEnabler
	enc   zapcore.Encoder
	w     *ConsoleWriter
	layer Layer
}

func (c *consoleCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.enc = c.enc.Clone()
	for i := range fields {
		fields[i].AddTo(clone.enc)
	}
	return &clone
}

func (c *consoleCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *consoleCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	defer buf.Free()

	if err := c.w.Open(); err != nil {
		return err
	}
	// The console adds its own line break per call.
	if _, err := c.w.Write(bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		return err
	}
	if err := c.w.Flush(severityFromZap(ent.Level)); err != nil {
		return err
	}

	if c.layer != nil {
		c.layer.OnEvent(eventFromEntry(ent, fields))
	}
	return nil
}

func (c *consoleCore) Sync() error { return nil }

// severityFromZap converts a zap level into a Severity. The numeric ranges
// line up for debug..error; zap's panic-ish levels all route to the error
// channel, and anything below debug counts as trace.
func severityFromZap(lvl zapcore.Level) Severity {
	switch {
	case lvl < zapcore.DebugLevel:
		return SeverityTrace
	case lvl > zapcore.ErrorLevel:
		return SeverityError
	default:
		return Severity(lvl)
	}
}

// eventFromEntry translates one log entry into an Event. The message names
// the event; the logger name plays the role of the target.
func eventFromEntry(ent zapcore.Entry, fields []zapcore.Field) Event {
	enc := zapcore.NewMapObjectEncoder()
	for i := range fields {
		fields[i].AddTo(enc)
	}
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]Field, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, anyField(k, enc.Fields[k]))
	}
	return Event{
		Metadata: Metadata{
			Name:     ent.Message,
			Target:   ent.LoggerName,
			Severity: severityFromZap(ent.Level),
			File:     ent.Caller.File,
			Line:     ent.Caller.Line,
		},
		Fields: attrs,
	}
}
