package armcaps

import (
	"strings"
	"testing"
)

func TestSnapshot(t *testing.T) {
	r := Snapshot()

	if r.Word != capWord() {
		t.Errorf("Report.Word = %#x, want %#x", r.Word, capWord())
	}
	if r.Static != staticMask {
		t.Errorf("Report.Static = %#x, want %#x", r.Static, uint32(staticMask))
	}
	if len(r.Features) != len(FeatureValues()) {
		t.Fatalf("len(Report.Features) = %d, want %d", len(r.Features), len(FeatureValues()))
	}

	caps := Get()
	for i, f := range FeatureValues() {
		fs := r.Features[i]
		if fs.Name != f.String() {
			t.Errorf("Features[%d].Name = %q, want %q", i, fs.Name, f.String())
		}
		if fs.Available != f.Available(caps) {
			t.Errorf("Features[%d].Available = %v, want %v", i, fs.Available, f.Available(caps))
		}
		if fs.Static && !fs.Available {
			t.Errorf("Features[%d] (%s) static but not available", i, fs.Name)
		}
	}
}

func TestReportString(t *testing.T) {
	r := Snapshot()
	s := r.String()

	if !strings.Contains(s, "Capability word:") {
		t.Errorf("String() missing word header: %q", s)
	}
	for _, name := range FeatureNames() {
		if !strings.Contains(s, name+":") {
			t.Errorf("String() missing feature %q: %q", name, s)
		}
	}
}

func TestReportStringStaticAnnotation(t *testing.T) {
	r := Report{
		Word:   maskNEON | maskSHA512,
		Static: maskNEON,
		Features: []FeatureStatus{
			{Name: "neon", Available: true, Static: true},
			{Name: "sha512", Available: true, Static: false},
			{Name: "aes", Available: false, Static: false},
		},
	}
	s := r.String()

	if !strings.Contains(s, "neon:    yes (static)") {
		t.Errorf("String() missing static annotation: %q", s)
	}
	if !strings.Contains(s, "sha512:  yes\n") {
		t.Errorf("String() misrendered dynamic feature: %q", s)
	}
	if !strings.Contains(s, "aes:     no\n") {
		t.Errorf("String() misrendered absent feature: %q", s)
	}
}
