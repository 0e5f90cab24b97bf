//go:build linux && arm64

package armcaps

import "golang.org/x/sys/cpu"

// detect derives the capability word from the kernel's HWCAP auxiliary
// vector, surfaced through x/sys/cpu. On environments where the auxiliary
// vector cannot be read (very old kernels, locked-down containers) every
// flag is simply false, so this degrades to the static set. Android is
// covered here too: its build constraint satisfies linux.
func detect() uint32 {
	var caps uint32
	if cpu.ARM64.HasASIMD {
		caps |= maskNEON
	}
	if cpu.ARM64.HasAES {
		caps |= maskAES
	}
	if cpu.ARM64.HasPMULL {
		caps |= maskPMULL
	}
	if cpu.ARM64.HasSHA2 {
		caps |= maskSHA256
	}
	if cpu.ARM64.HasSHA512 {
		caps |= maskSHA512
	}
	return caps
}
