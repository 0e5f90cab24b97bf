package armcaps

import (
	"sync"
	"sync/atomic"
)

// armcapP is the process-wide capability word. It is written exactly once,
// by whichever caller of [Get] wins the initialization race, and after that
// write it is always a superset of staticMask.
//
// Assembly routines reference this symbol directly as ·armcapP(SB) instead
// of going through [Feature.Available]; any such routine must only be
// called after its caller obtained a [Caps], which guarantees the value it
// reads is final. The word starts at zero, so even an unsynchronized early
// read degrades to "no capabilities", never to a wrong superset.
var armcapP uint32

var initOnce sync.Once

// Caps is proof that capability detection has completed and that its
// result is visible to the holder. It carries no data; every value
// obtained from [Get] is equivalent, and copies are free.
type Caps struct {
	_ struct{}
}

// Get performs hardware capability detection on first use and returns a
// [Caps] token. It is safe to call from any number of goroutines;
// detection runs exactly once per process and concurrent callers block
// until the winner has published the capability word.
//
// Detection never fails: a platform query that errors simply leaves the
// corresponding capability unset.
func Get() Caps {
	initOnce.Do(func() {
		atomic.StoreUint32(&armcapP, mergeCaps(detect(), suppressionMask))
	})
	return Caps{}
}

// mergeCaps combines dynamically detected capabilities with the
// compile-time guaranteed set. The suppression mask can only remove
// detected bits, never static ones; it is nonzero only under the
// armcaps_no_hw / armcaps_no_neon build tags that simulate absent
// hardware to make fallback paths reachable in tests.
func mergeCaps(raw, suppress uint32) uint32 {
	return staticMask | (raw &^ suppress)
}

func capWord() uint32 {
	return atomic.LoadUint32(&armcapP)
}
