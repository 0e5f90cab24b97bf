//go:build armcaps_no_hw && !armcaps_no_neon

package armcaps

// Simulate a CPU with the vector unit but none of the crypto extensions.
const suppressionMask = allMask &^ maskNEON
