//go:build darwin && arm64

package armcaps

import "testing"

func TestSysctlEnabledRejectsMalformedNames(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"missing terminator", []byte("hw.optional.armv8_2_sha512")},
		{"interior NUL", []byte("hw.optional\x00.armv8_2_sha512\x00")},
		{"only NUL", []byte("\x00\x00")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if sysctlEnabled(tt.input) {
				t.Errorf("sysctlEnabled(%q) = true, want rejection", tt.input)
			}
		})
	}
}

func TestSysctlEnabledUnknownName(t *testing.T) {
	// An unknown parameter must read as absent, not fault.
	if sysctlEnabled([]byte("hw.optional.armcaps_does_not_exist\x00")) {
		t.Error("unknown sysctl reported enabled")
	}
}

// On the darwin family only SHA-512 is ever probed, so the word is fully
// determined: the Apple static floor, plus the SHA-512 bit exactly when
// the OS reports the extension (and suppression does not remove it).
func TestDarwinWordShape(t *testing.T) {
	Get()

	want := uint32(minStaticFeatures)
	if sysctlEnabled(sysctlSHA512) {
		want |= maskSHA512 &^ suppressionMask
	}

	if word := capWord(); word != want {
		t.Fatalf("word %#x, want %#x", word, want)
	}
}
