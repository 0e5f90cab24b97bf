//go:build windows && arm64

package armcaps

import "golang.org/x/sys/windows"

// detect queries processor features through the Win32 API. Windows on
// arm64 presupposes Armv8 with NEON, so the vector unit needs no query.
// PF_ARM_V8_CRYPTO covers AES, PMULL and SHA-256 as one unit; SHA-512
// has its own flag.
func detect() uint32 {
	caps := uint32(maskNEON)
	if windows.IsProcessorFeaturePresent(windows.PF_ARM_V8_CRYPTO_INSTRUCTIONS_AVAILABLE) {
		caps |= maskAES | maskPMULL | maskSHA256
	}
	if windows.IsProcessorFeaturePresent(windows.PF_ARM_SHA512_INSTRUCTIONS_AVAILABLE) {
		caps |= maskSHA512
	}
	return caps
}
