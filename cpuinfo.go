//go:build linux

package armcaps

import (
	"bufio"
	"os"
	"strings"
)

const procCPUInfoPath = "/proc/cpuinfo"

// CPUInfoFeatures returns the feature strings the kernel advertises in
// /proc/cpuinfo — the "Features" line on arm/arm64, "flags" on x86.
// This is diagnostic data only: dispatch decisions go through
// [Feature.Available], which reads HWCAP, not cpuinfo.
func CPUInfoFeatures() ([]string, error) {
	return cpuInfoFeaturesFrom(procCPUInfoPath)
}

// cpuInfoFeaturesFrom parses the first Features/flags line of a
// cpuinfo-formatted file. Returns nil with no error when the file has no
// such line (some arm kernels omit it for unusual CPUs).
func cpuInfoFeaturesFrom(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "features", "flags":
			return strings.Fields(value), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, nil
}
