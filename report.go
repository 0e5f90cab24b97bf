package armcaps

import (
	"fmt"
	"strings"
)

// FeatureStatus is one feature's availability plus how it was decided.
type FeatureStatus struct {
	// Name is the feature's diagnostic name.
	Name string `json:"name"`
	// Available indicates whether the running CPU has the feature.
	Available bool `json:"available"`
	// Static is true when the compilation target already guarantees the
	// feature, so no runtime detection was involved.
	Static bool `json:"static"`
}

// Report captures the outcome of capability detection for diagnostics.
type Report struct {
	// Word is the published capability word, as assembly sees it.
	Word uint32 `json:"word"`
	// Static is the compile-time guaranteed subset of Word.
	Static uint32 `json:"static"`
	// Features lists the per-feature breakdown in declaration order.
	Features []FeatureStatus `json:"features"`
}

// Snapshot runs detection if needed and returns the full picture.
func Snapshot() Report {
	caps := Get()

	r := Report{
		Word:     capWord(),
		Static:   staticMask,
		Features: make([]FeatureStatus, 0, len(FeatureValues())),
	}
	for _, f := range FeatureValues() {
		m := f.Mask()
		r.Features = append(r.Features, FeatureStatus{
			Name:      f.String(),
			Available: f.Available(caps),
			Static:    m != 0 && containsAll(staticMask, m),
		})
	}
	return r
}

// String returns a human-readable summary of the report.
func (r Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Capability word: %#08x (static %#08x)\n", r.Word, r.Static)
	b.WriteString("\n")

	b.WriteString("Features:\n")
	for _, fs := range r.Features {
		status := "no"
		if fs.Available {
			status = "yes"
		}
		if fs.Static {
			status += " (static)"
		}
		fmt.Fprintf(&b, "  %-8s %s\n", fs.Name+":", status)
	}

	return b.String()
}
