package tracingweb

import (
	"fmt"
	"io"
)

// WriterConsole adapts an io.Writer into a Console, writing every message as
// its own line. Channel information is erased; this is meant for development
// and examples outside a browser, not as a console replacement.
func WriterConsole(w io.Writer) Console {
	return &writerConsole{w: w}
}

type writerConsole struct {
	w io.Writer
}

func (c *writerConsole) emit(msg string) { fmt.Fprintln(c.w, msg) }

func (c *writerConsole) Error(msg string) { c.emit(msg) }
func (c *writerConsole) Warn(msg string)  { c.emit(msg) }
func (c *writerConsole) Info(msg string)  { c.emit(msg) }
func (c *writerConsole) Debug(msg string) { c.emit(msg) }
func (c *writerConsole) Log(msg string)   { c.emit(msg) }
