// Package fx provides the shared data model of a raster effects engine.
//
// # Overview
//
// fx is a Pure Go pixel-buffer processing core. It performs blend-mode
// compositing, parametric layer styles, lens-like distortions,
// convolution-based sharpening and histogram-driven tonal correction over a
// single data representation: a rectangular, row-major, straight-alpha
// RGBA8 [PixelBuffer].
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fx"
//	    "github.com/gogpu/fx/blend"
//	)
//
//	base, _ := fx.NewPixelBuffer(512, 512)
//	top, _ := fx.NewPixelBuffer(512, 512)
//
//	out, err := blend.Image(base, top, blend.Multiply, 1)
//
// # Architecture
//
// The library is organized into:
//   - Root package: PixelBuffer, color math, errors, logger, options
//   - Effects: blend, style, distort, sharpen, histogram, selective
//   - Primitives: curve (contours), internal/filter (convolution and
//     resampling), internal/edge (edge distance)
//
// Every operation is a synchronous function over buffers already in
// memory. Nothing is cached between calls and no package holds mutable
// state, so independent calls may run on separate goroutines. Operations
// that consume randomness (dissolve blending, glow noise, wave phases) take
// an injectable generator through [WithRand].
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees at the API surface, radians internally
package fx
