package armcaps

import (
	"errors"
	"testing"
)

func TestUnavailableError(t *testing.T) {
	err := &UnavailableError{Feature: "sha512"}
	want := "capability sha512: not available on this CPU"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRequire(t *testing.T) {
	caps := Get()

	t.Run("empty requirement set passes", func(t *testing.T) {
		if err := Require(); err != nil {
			t.Errorf("Require() = %v, want nil", err)
		}
	})

	// Expectations depend on the host CPU, so derive them from Available
	// instead of hard-coding a platform.
	for _, f := range FeatureValues() {
		t.Run(f.String(), func(t *testing.T) {
			err := Require(f)
			if f.Available(caps) {
				if err != nil {
					t.Fatalf("Require(%s) = %v, want nil", f, err)
				}
				return
			}
			var ue *UnavailableError
			if !errors.As(err, &ue) {
				t.Fatalf("Require(%s) = %v, want *UnavailableError", f, err)
			}
			if ue.Feature != f.String() {
				t.Errorf("UnavailableError.Feature = %q, want %q", ue.Feature, f.String())
			}
		})
	}

	t.Run("first missing feature is reported", func(t *testing.T) {
		var missing []Feature
		for _, f := range FeatureValues() {
			if !f.Available(caps) {
				missing = append(missing, f)
			}
		}
		if len(missing) == 0 {
			t.Skip("every feature available on this host")
		}

		err := Require(missing...)
		var ue *UnavailableError
		if !errors.As(err, &ue) {
			t.Fatalf("Require() = %v, want *UnavailableError", err)
		}
		if ue.Feature != missing[0].String() {
			t.Errorf("UnavailableError.Feature = %q, want %q", ue.Feature, missing[0].String())
		}
	})
}
