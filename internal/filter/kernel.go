package filter

import "math"

// GaussianKernel1D generates a 1D Gaussian kernel for the given radius.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel has 2*ceil(radius)+1 taps and sigma = radius/3, so the kernel
// edge sits at three standard deviations.
//
// For radius <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel1D(radius float64) []float64 {
	if radius <= 0 {
		return []float64{1.0}
	}

	half := int(math.Ceil(radius))
	size := half*2 + 1
	sigma := radius / 3

	kernel := make([]float64, size)

	// Gaussian formula: G(x) = exp(-x²/(2σ²)) / (σ√(2π))
	// We skip the normalization constant since we'll normalize sum to 1
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0

	for i := 0; i < size; i++ {
		x := float64(i - half)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = val
		sum += val
	}

	invSum := 1.0 / sum
	for i := range kernel {
		kernel[i] *= invSum
	}

	return kernel
}

// Sharpen3x3 is the simple sharpen kernel.
var Sharpen3x3 = [9]float64{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}
