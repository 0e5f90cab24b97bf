//go:build darwin && arm64

package armcaps

import (
	"bytes"

	"golang.org/x/sys/unix"
)

// Sysctl names are kept as NUL-terminated byte constants because the
// kernel interface is name-buffer based; sysctlEnabled validates the
// terminator before every query.
var sysctlSHA512 = []byte("hw.optional.armv8_2_sha512\x00")

// detect probes the capabilities that are not already static on the
// darwin family. That is only SHA-512; see static_darwin_arm64.go.
func detect() uint32 {
	var caps uint32
	if sysctlEnabled(sysctlSHA512) {
		caps |= maskSHA512
	}
	return caps
}

// sysctlEnabled reports whether the named hw.optional parameter is set.
// The name must end with exactly one NUL byte and contain no interior
// ones; malformed names are rejected before reaching the OS. Any error
// from the query, including an unexpected result size, reads as absent.
func sysctlEnabled(name []byte) bool {
	i := bytes.IndexByte(name, 0)
	if i < 0 || i != len(name)-1 {
		return false
	}
	v, err := unix.SysctlUint32(string(name[:i]))
	if err != nil {
		return false
	}
	return v != 0
}
