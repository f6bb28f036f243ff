// Package escape computes smoothed escape-time values for the Mandelbrot
// recurrence z -> z^2 + c, starting from z = c.
package escape

import "math"

var invLog2 = 1.0 / math.Log(2.0)

// Evaluate iterates the recurrence for the point initialReal + initialImaginary*i
// until |z|^2 reaches escapeRadiusSquared or maxIterations steps have run, and
// returns the smoothed iteration count.
func Evaluate(escapeRadiusSquared float64, maxIterations int, initialReal, initialImaginary float64) float64 {
	iterations, modZ := Iterate(escapeRadiusSquared, maxIterations, initialReal, initialImaginary)

	return SmoothedCount(iterations, modZ)
}

// Iterate runs the recurrence and returns the raw iteration count along with
// the final |z|^2. The count is always between 0 and maxIterations.
func Iterate(escapeRadiusSquared float64, maxIterations int, initialReal, initialImaginary float64) (int, float64) {
	re := initialReal
	im := initialImaginary
	modZ := re*re + im*im

	iterations := 0
	for modZ < escapeRadiusSquared && iterations < maxIterations {
		newRe := re*re - im*im + initialReal
		im = 2.0*re*im + initialImaginary
		re = newRe

		modZ = re*re + im*im
		iterations++
	}

	return iterations, modZ
}

// SmoothedCount turns a discrete escape iteration into a continuous value
// using the normalized iteration count n - log2(log|z|).
//
// Orbits ending with |z| <= 1 return the raw count, since log(log|z|) is
// undefined below 1 and infinite at exactly 1. A squared modulus that
// overflowed to +Inf is treated as math.MaxFloat64.
func SmoothedCount(iterations int, finalModulusSquared float64) float64 {
	finalModulusSquared = math.Min(finalModulusSquared, math.MaxFloat64)

	finalModulus := math.Sqrt(finalModulusSquared)
	if finalModulus <= 1.0 {
		return float64(iterations)
	}

	return float64(iterations) - math.Log(math.Log(finalModulus))*invLog2
}
