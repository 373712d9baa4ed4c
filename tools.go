//go:build tools

package tracingweb

// Keep tool dependencies, used via go:generate, in go.mod.
import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
