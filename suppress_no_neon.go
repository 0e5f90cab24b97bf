//go:build armcaps_no_neon && !armcaps_no_hw

package armcaps

// Simulate a CPU without the vector unit.
const suppressionMask = maskNEON
