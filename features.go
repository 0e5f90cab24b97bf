package armcaps

import "fmt"

// Bit positions inside the capability word. The layout is a long-lived
// ABI shared with hand-written assembly routines that read the word
// directly; a bit must never be reassigned to a different capability.
const (
	maskNEON   = 1 << 0
	maskAES    = 1 << 2
	maskSHA256 = 1 << 4
	maskPMULL  = 1 << 5
	maskSHA512 = 1 << 6

	allMask = maskNEON | maskAES | maskSHA256 | maskPMULL | maskSHA512
)

// Feature represents an ARM instruction-set extension relevant to
// cryptographic acceleration, queryable via [Feature.Available].
type Feature int

const (
	// FeatureNEON is the Advanced SIMD (vector) unit; every Armv8-A CPU has it.
	FeatureNEON Feature = iota
	// FeatureAES covers the AESE/AESD/AESMC/AESIMC instructions.
	FeatureAES
	// FeaturePMULL is the 64x64 carryless multiply (polynomial multiply) used by GHASH.
	FeaturePMULL
	// FeatureSHA256 covers the SHA-256 instruction group.
	FeatureSHA256
	// FeatureSHA512 covers the SHA-512 instruction group (Armv8.2).
	FeatureSHA512
)

var featureMasks = map[Feature]uint32{
	FeatureNEON:   maskNEON,
	FeatureAES:    maskAES,
	FeaturePMULL:  maskPMULL,
	FeatureSHA256: maskSHA256,
	FeatureSHA512: maskSHA512,
}

var featureNames = map[Feature]string{
	FeatureNEON:   "neon",
	FeatureAES:    "aes",
	FeaturePMULL:  "pmull",
	FeatureSHA256: "sha256",
	FeatureSHA512: "sha512",
}

func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Feature(%d)", int(f))
}

// Mask returns the feature's bits inside the capability word.
// A feature whose capabilities are only ever introduced together may own
// more than one bit; such a group is all-or-nothing.
func (f Feature) Mask() uint32 {
	return featureMasks[f]
}

// Available reports whether the running CPU has the feature.
//
// Capabilities the compilation target already guarantees are answered
// from the compile-time static set without touching shared state; the rest is
// answered from the capability word published during [Get]. An unknown
// feature, like any detection failure, reads as unavailable.
func (f Feature) Available(c Caps) bool {
	m := f.Mask()
	if m == 0 {
		return false
	}
	if containsAll(staticMask, m) {
		return true
	}
	return containsAll(capWord(), m)
}

// containsAll reports whether every bit of mask is set in word.
// Partial containment of a multi-bit group is false.
func containsAll(word, mask uint32) bool {
	return mask == mask&word
}

// FeatureValues returns all known features in declaration order.
func FeatureValues() []Feature {
	return []Feature{FeatureNEON, FeatureAES, FeaturePMULL, FeatureSHA256, FeatureSHA512}
}

// FeatureNames returns the names of all known features in declaration order.
func FeatureNames() []string {
	values := FeatureValues()
	names := make([]string, 0, len(values))
	for _, f := range values {
		names = append(names, f.String())
	}
	return names
}
