package escape

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultEscapeRadiusSquared = 4.0
	DefaultMaxIterations       = 1000
)

var (
	ErrInvalidEscapeRadius = errors.New("escape radius squared must be positive and finite")
	ErrNegativeIterations  = errors.New("max iterations must not be negative")
)

// Params are the rendering-quality knobs shared by every point of an image.
type Params struct {
	// EscapeRadiusSquared is the threshold on |z|^2 past which a point has diverged.
	EscapeRadiusSquared float64

	// MaxIterations caps the number of recurrence steps per point.
	MaxIterations int
}

// DefaultParams uses an escape radius of 2.
func DefaultParams() Params {
	return Params{
		EscapeRadiusSquared: DefaultEscapeRadiusSquared,
		MaxIterations:       DefaultMaxIterations,
	}
}

// Validate rejects escape radii that are not positive finite numbers and
// negative iteration caps.
func (p Params) Validate() error {
	if !(p.EscapeRadiusSquared > 0 && p.EscapeRadiusSquared <= math.MaxFloat64) {
		return fmt.Errorf("%w: got %v", ErrInvalidEscapeRadius, p.EscapeRadiusSquared)
	}
	if p.MaxIterations < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeIterations, p.MaxIterations)
	}

	return nil
}

// Evaluate returns the smoothed escape-time value of c.
func (p Params) Evaluate(c complex128) float64 {
	return Evaluate(p.EscapeRadiusSquared, p.MaxIterations, real(c), imag(c))
}
