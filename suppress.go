//go:build !armcaps_no_hw && !armcaps_no_neon

package armcaps

// suppressionMask removes bits from the detection result before the merge.
// It is zero in normal builds; the armcaps_no_hw and armcaps_no_neon build
// tags set it to simulate hardware without the optional extensions, making
// otherwise-unreachable fallback paths testable on real machines.
const suppressionMask = 0
