//go:build js && wasm

package tracingweb

import (
	"fmt"
	"syscall/js"
)

// BrowserConsole returns the Console backed by the global console object.
// It returns ErrConsoleUnavailable if the hosting environment does not
// expose one.
func BrowserConsole() (Console, error) {
	v := js.Global().Get("console")
	if v.IsUndefined() || v.IsNull() {
		return nil, fmt.Errorf("%w: globalThis.console is not defined", ErrConsoleUnavailable)
	}
	return &jsConsole{v: v}, nil
}

type jsConsole struct {
	v js.Value
}

// call invokes one console method, swallowing any exception thrown on the
// JS side. Console failures must never take down the tracing pipeline.
func (c *jsConsole) call(method, msg string) {
	defer func() {
		_ = recover()
	}()
	c.v.Call(method, msg)
}

func (c *jsConsole) Error(msg string) { c.call("error", msg) }
func (c *jsConsole) Warn(msg string)  { c.call("warn", msg) }
func (c *jsConsole) Info(msg string)  { c.call("info", msg) }
func (c *jsConsole) Debug(msg string) { c.call("debug", msg) }
func (c *jsConsole) Log(msg string)   { c.call("log", msg) }
