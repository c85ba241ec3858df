// Package histogram builds channel histograms and statistics and applies
// histogram-driven tonal corrections (auto levels, auto contrast and
// manual levels).
package histogram

import (
	"math"

	"github.com/gogpu/fx"
)

// Channel selects one histogram channel.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
	// Luminosity holds rounded BT.601 luma.
	Luminosity
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Luminosity:
		return "luminosity"
	default:
		return "invalid"
	}
}

// Histogram holds 256-bin counts for R, G, B and luminosity.
// It is immutable once built.
type Histogram struct {
	bins  [4][256]int
	total int
}

// Build counts every pixel of buf, including transparent ones.
func Build(buf *fx.PixelBuffer) *Histogram {
	h := &Histogram{}
	if buf == nil {
		return h
	}
	data := buf.Data()
	for i := 0; i+3 < len(data); i += 4 {
		r, g, b := data[i], data[i+1], data[i+2]
		h.bins[Red][r]++
		h.bins[Green][g]++
		h.bins[Blue][b]++
		h.bins[Luminosity][fx.Luma(r, g, b)]++
	}
	h.total = buf.Width() * buf.Height()
	return h
}

// Bins returns a copy of the counts for ch.
func (h *Histogram) Bins(ch Channel) [256]int {
	if ch > Luminosity {
		return [256]int{}
	}
	return h.bins[ch]
}

// Total returns the number of pixels counted.
func (h *Histogram) Total() int {
	return h.total
}

// Statistics computes the statistics of ch.
func (h *Histogram) Statistics(ch Channel) Statistics {
	return ComputeStatistics(h.Bins(ch), h.total)
}

// Statistics summarizes one histogram channel.
type Statistics struct {
	Mean   float64
	StdDev float64
	Median int
	Min    int
	Max    int

	// PixelCount is the number of pixels in the channel's bins.
	PixelCount int

	// ShadowClipping and HighlightClipping are the counts in bins 0 and
	// 255 as a percentage of the total pixel count.
	ShadowClipping    float64
	HighlightClipping float64
}

// ComputeStatistics summarizes bins. Mean and standard deviation are
// weighted by the populated bins; the median is the first bin at which
// the cumulative count reaches half the channel count. Clipping is
// measured against total, not the channel count.
func ComputeStatistics(bins [256]int, total int) Statistics {
	var s Statistics
	var sum float64
	s.Min = -1
	for i, n := range bins {
		if n == 0 {
			continue
		}
		if s.Min < 0 {
			s.Min = i
		}
		s.Max = i
		s.PixelCount += n
		sum += float64(i) * float64(n)
	}
	if s.PixelCount == 0 {
		return Statistics{}
	}

	count := float64(s.PixelCount)
	s.Mean = sum / count

	var variance float64
	cum := 0
	median := -1
	for i, n := range bins {
		if n == 0 {
			continue
		}
		d := float64(i) - s.Mean
		variance += float64(n) * d * d
		cum += n
		if median < 0 && 2*cum >= s.PixelCount {
			median = i
		}
	}
	s.StdDev = math.Sqrt(variance / count)
	s.Median = median

	if total > 0 {
		s.ShadowClipping = float64(bins[0]) / float64(total) * 100
		s.HighlightClipping = float64(bins[255]) / float64(total) * 100
	}
	return s
}
