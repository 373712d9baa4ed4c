//go:build !(js && wasm)

package tracingweb

import "fmt"

// BrowserPerformance returns ErrPerformanceUnavailable on platforms without
// a browser Performance API. Tests and non-browser programs can substitute
// any Performance implementation, e.g. perftest.Recorder.
func BrowserPerformance() (Performance, error) {
	return nil, fmt.Errorf("%w: not running under js/wasm", ErrPerformanceUnavailable)
}
