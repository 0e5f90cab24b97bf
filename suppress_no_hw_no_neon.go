//go:build armcaps_no_hw && armcaps_no_neon

package armcaps

// Both simulations combined: nothing detected survives.
const suppressionMask = allMask
