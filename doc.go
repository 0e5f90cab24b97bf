// Package armcaps detects ARM/AArch64 instruction-set extensions used by
// accelerated cryptographic routines and gates dispatch on them safely.
//
// Hand-optimized machine code for AES, GHASH (PMULL), SHA-256 and SHA-512
// assumes the corresponding extension is present; executing it on hardware
// that lacks the extension raises an illegal-instruction fault. armcaps
// combines what the compilation target guarantees with a one-time runtime
// query of the operating system, publishes the merged result exactly once
// per process, and answers availability questions from that result.
//
// # API Model
//
// Two calls cover dispatch:
//   - [Get] runs detection on first use and returns a [Caps] token proving
//     detection has completed
//   - [Feature.Available] answers one capability query against that token
//
// Detection cannot fail. Any quirk in the platform query — an unsupported
// call, an OS error, a malformed parameter name — makes the affected
// capability read as absent, which is always the safe choice for
// security-sensitive dispatch. There is no error channel and no way to
// re-run detection.
//
// # Quick Dispatch
//
// Pick an implementation on first use:
//
//	caps := armcaps.Get()
//	if armcaps.FeatureAES.Available(caps) && armcaps.FeaturePMULL.Available(caps) {
//	    return gcmAsm(key)
//	}
//	return gcmGeneric(key)
//
// # Composite Gates
//
// Validate a whole requirement set up front:
//
//	if err := armcaps.Require(armcaps.FeatureAES, armcaps.FeaturePMULL); err != nil {
//	    var ue *armcaps.UnavailableError
//	    if errors.As(err, &ue) {
//	        log.Fatalf("CPU not usable: %s", ue.Feature)
//	    }
//	    log.Fatal(err)
//	}
//
// # Diagnostics
//
// [Snapshot] returns a [Report] with the published word, the static
// subset and a per-feature breakdown; its String method prints a
// human-readable summary. On Linux, [CPUInfoFeatures] additionally
// surfaces the kernel's own /proc/cpuinfo feature strings.
//
// # Platform Backends
//
// The detector is chosen at build time, never at run time: sysctl on the
// darwin family, the HWCAP auxiliary vector on Linux and Android,
// IsProcessorFeaturePresent on Windows, and a fallback that reports
// nothing everywhere else. On non-ARM architectures the package compiles
// and every query answers false.
//
// # The Capability Word
//
// Results live in a single write-once 32-bit word whose bit layout is a
// frozen ABI shared with separately compiled assembly; those routines
// read the word directly, and must only run after their caller obtained
// a [Caps]. Compile-time assertions reject any configuration that would
// violate the layout (wrong word size, overlapping static and
// force-dynamic masks, missing vector-unit baseline on 64-bit).
package armcaps
