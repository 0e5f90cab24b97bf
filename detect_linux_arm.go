//go:build linux && arm

package armcaps

import "golang.org/x/sys/cpu"

// detect on 32-bit ARM only ever looks for the vector unit; the crypto
// extensions are not reachable from the 32-bit instruction encodings we
// dispatch on. HWCAP is the source, via x/sys/cpu.
func detect() uint32 {
	if cpu.ARM.HasNEON {
		return maskNEON
	}
	return 0
}
