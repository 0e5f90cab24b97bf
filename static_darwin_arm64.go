//go:build darwin && arm64

package armcaps

import "unsafe"

// Every Apple arm64 CPU ships NEON, AES, PMULL and SHA-256, so those are
// the static floor for the whole darwin family (macOS, iOS and friends).
//
// aarch64 macOS hardware is also guaranteed SHA-512, but we deliberately
// leave it out of the static set: it is the only capability whose dynamic
// detection we can exercise on available test hardware, and statically
// proving it would make that path unreachable. Keep it dynamic.
const (
	minStaticFeatures = maskNEON | maskAES | maskSHA256 | maskPMULL

	staticMask       = minStaticFeatures
	forceDynamicMask = allMask &^ minStaticFeatures
)

// Compile-time guards. A negative array length rejects the build.
var (
	_ [unsafe.Sizeof(uintptr(0)) - 8]struct{}
	_ [8 - unsafe.Sizeof(uintptr(0))]struct{}
	// The baseline vector unit must be statically known on 64-bit.
	_ [staticMask&maskNEON - maskNEON]struct{}
	// Nothing beyond the floor may leak into the static set, otherwise
	// dynamic detection stops being uniform across the darwin targets.
	_ [staticMask - minStaticFeatures]struct{}
	_ [minStaticFeatures - staticMask]struct{}
)
