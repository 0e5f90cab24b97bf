package armcaps

import (
	"errors"
	"fmt"
)

// ErrNoCPUInfo is returned when no cpuinfo source is available.
var ErrNoCPUInfo = errors.New("no cpuinfo source available")

// UnavailableError reports a required capability missing from the
// running CPU.
type UnavailableError struct {
	Feature string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("capability %s: not available on this CPU", e.Feature)
}

// Require validates that every listed feature is available and returns a
// *[UnavailableError] for the first one that is not, or nil if all are.
// It triggers detection if it has not run yet.
func Require(features ...Feature) error {
	caps := Get()
	for _, f := range features {
		if !f.Available(caps) {
			return &UnavailableError{Feature: f.String()}
		}
	}
	return nil
}
