//go:build arm64 && !darwin

package armcaps

import "unsafe"

// Armv8-A has Advanced SIMD as an architectural baseline, so NEON needs
// no detection on any arm64 target. Everything else is dynamic.
const (
	staticMask       = maskNEON
	forceDynamicMask = 0
)

// Compile-time guards. A negative array length rejects the build.
var (
	// arm64 is a 64-bit, little-endian-only port; the word size backs the
	// fixed layout shared with assembly.
	_ [unsafe.Sizeof(uintptr(0)) - 8]struct{}
	_ [8 - unsafe.Sizeof(uintptr(0))]struct{}
	// The baseline vector unit must be statically known on 64-bit.
	_ [staticMask&maskNEON - maskNEON]struct{}
)
