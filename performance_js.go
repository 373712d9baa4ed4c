//go:build js && wasm

package tracingweb

import (
	"fmt"
	"syscall/js"
)

// BrowserPerformance returns the Performance backed by the global
// performance object. It returns ErrPerformanceUnavailable if the hosting
// environment does not expose one.
func BrowserPerformance() (Performance, error) {
	v := js.Global().Get("performance")
	if v.IsUndefined() || v.IsNull() {
		return nil, fmt.Errorf("%w: globalThis.performance is not defined", ErrPerformanceUnavailable)
	}
	return &jsPerformance{v: v}, nil
}

type jsPerformance struct {
	v js.Value
}

func (p *jsPerformance) Now() float64 {
	return p.v.Call("now").Float()
}

func (p *jsPerformance) Mark(name, detail string) error {
	return jsTry(func() {
		if detail == "" {
			p.v.Call("mark", name)
			return
		}
		p.v.Call("mark", name, map[string]interface{}{
			"detail": detail,
		})
	})
}

func (p *jsPerformance) Measure(name string, start, end float64, detail string) error {
	return jsTry(func() {
		opts := map[string]interface{}{
			"start": start,
			"end":   end,
		}
		if detail != "" {
			opts["detail"] = detail
		}
		p.v.Call("measure", name, opts)
	})
}

// jsTry converts a JS exception raised by fn into an error. syscall/js
// surfaces exceptions as panics.
func jsTry(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("performance call failed: %v", r)
		}
	}()
	fn()
	return nil
}
