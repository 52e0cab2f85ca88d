// SPDX-License-Identifier: MIT
// Package: peakfinder/synth
//
// errors.go - sentinel errors for the synth package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Generators attach the method name with synthErrorf.
//   • Invalid option VALUES panic in the WithX constructors instead.

package synth

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a non-positive sequence length or repetition count.
var ErrBadSize = errors.New("synth: invalid size/length")

// Method names used as error context.
const (
	MethodPulse = "Pulse"
	MethodChirp = "Chirp"
	MethodReps  = "Reps"
)

// synthErrorf returns "<method>: <message>: <err>", keeping err matchable.
func synthErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
