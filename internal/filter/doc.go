// Package filter provides the convolution and resampling primitives shared
// by the effect packages.
//
// This package contains:
//   - Gaussian kernel generation (sigma = radius/3, normalized)
//   - Separable Gaussian blur with edge replication
//   - Directional (motion) blur that discards out-of-bounds samples
//   - 3x3 kernel convolution over interior pixels
//   - Bilinear sampling at fractional coordinates
//
// Blur and convolution operate on R, G and B; alpha is copied unchanged.
// Every function allocates its output and never mutates its input.
package filter
