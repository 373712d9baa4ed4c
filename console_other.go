//go:build !(js && wasm)

package tracingweb

import "fmt"

// BrowserConsole returns ErrConsoleUnavailable on platforms without a
// browser console. Use WriterConsole or BridgeBuilder.FallbackToStderr when
// running outside js/wasm.
func BrowserConsole() (Console, error) {
	return nil, fmt.Errorf("%w: not running under js/wasm", ErrConsoleUnavailable)
}
