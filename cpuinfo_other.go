//go:build !linux

package armcaps

// CPUInfoFeatures returns the feature strings the kernel advertises in
// /proc/cpuinfo. Only Linux has cpuinfo; everywhere else the answer is
// always the same.
func CPUInfoFeatures() ([]string, error) {
	return nil, ErrNoCPUInfo
}
