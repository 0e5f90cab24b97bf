package armcaps

// Guards that hold for every compiled configuration. These are build-time
// assertions, not runtime checks: a configuration that violates the bit
// layout contract must fail to produce a binary at all. A negative array
// length rejects the build.
var (
	// A capability is either statically guaranteed or force-dynamic,
	// never both.
	_ [-(staticMask & forceDynamicMask)]struct{}
	// The static set cannot claim bits outside the known capability set.
	_ [-(staticMask &^ allMask)]struct{}
	// Suppression is test-only hardware simulation; it must never be able
	// to touch a bit the word layout does not define.
	_ [-(suppressionMask &^ allMask)]struct{}
)
