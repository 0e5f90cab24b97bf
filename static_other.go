//go:build !arm && !arm64

package armcaps

// Non-ARM architectures: the package still compiles so that portable
// callers can link against it, but no capability is ever static and
// detection finds nothing, so every query answers false.
const (
	staticMask       = 0
	forceDynamicMask = 0
)
