//go:build !(darwin && arm64) && !(linux && (arm || arm64)) && !(windows && arm64)

package armcaps

// detect on platforms without a usable query mechanism, including 32-bit
// ARM outside Linux and every non-ARM architecture: nothing is discovered
// dynamically and correctness rests entirely on the static set.
func detect() uint32 {
	return 0
}
