//go:build arm

package armcaps

import "unsafe"

// On 32-bit ARM nothing is guaranteed by the architecture version the
// toolchain targets: NEON is optional on Armv7, so even the vector unit
// must be found dynamically.
const (
	staticMask       = 0
	forceDynamicMask = 0
)

// Compile-time guards. A negative array length rejects the build.
var (
	_ [unsafe.Sizeof(uintptr(0)) - 4]struct{}
	_ [4 - unsafe.Sizeof(uintptr(0))]struct{}
)
