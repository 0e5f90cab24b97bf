package armcaps

import "testing"

// The bit positions are a frozen ABI shared with assembly. These values
// must never change.
func TestFeatureMaskABI(t *testing.T) {
	tests := []struct {
		feature Feature
		want    uint32
	}{
		{FeatureNEON, 1},
		{FeatureAES, 4},
		{FeatureSHA256, 16},
		{FeaturePMULL, 32},
		{FeatureSHA512, 64},
	}

	for _, tt := range tests {
		t.Run(tt.feature.String(), func(t *testing.T) {
			if got := tt.feature.Mask(); got != tt.want {
				t.Errorf("Mask() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFeatureString(t *testing.T) {
	tests := []struct {
		feature Feature
		want    string
	}{
		{FeatureNEON, "neon"},
		{FeatureAES, "aes"},
		{FeaturePMULL, "pmull"},
		{FeatureSHA256, "sha256"},
		{FeatureSHA512, "sha512"},
		{Feature(999), "Feature(999)"},
	}

	for _, tt := range tests {
		if got := tt.feature.String(); got != tt.want {
			t.Errorf("Feature(%d).String() = %q, want %q", int(tt.feature), got, tt.want)
		}
	}
}

func TestFeatureNamesMatchValues(t *testing.T) {
	values := FeatureValues()
	names := FeatureNames()
	if len(names) != len(values) {
		t.Fatalf("len(FeatureNames()) = %d, want %d", len(names), len(values))
	}
	for i, f := range values {
		if names[i] != f.String() {
			t.Errorf("FeatureNames()[%d] = %q, want %q", i, names[i], f.String())
		}
		if f.Mask() == 0 {
			t.Errorf("%s has zero mask", f)
		}
	}
}

func TestContainsAll(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		mask uint32
		want bool
	}{
		{"exact", maskAES, maskAES, true},
		{"superset word", allMask, maskAES, true},
		{"absent", maskNEON, maskAES, false},
		{"group fully present", maskAES | maskPMULL | maskNEON, maskAES | maskPMULL, true},
		{"group partially present is false", maskAES | maskNEON, maskAES | maskPMULL, false},
		{"empty mask", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsAll(tt.word, tt.mask); got != tt.want {
				t.Errorf("containsAll(%#x, %#x) = %v, want %v", tt.word, tt.mask, got, tt.want)
			}
		})
	}
}

func TestUnknownFeatureUnavailable(t *testing.T) {
	caps := Get()
	if Feature(999).Available(caps) {
		t.Error("unknown feature reported available")
	}
}
