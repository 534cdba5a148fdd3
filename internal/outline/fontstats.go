package outline

import "math"

// Fallback sizes used when no fonts have been observed: typical body text
// for the average, a typical title size for the largest.
const (
	fallbackAverageSize = 12.0
	fallbackLargestSize = 18.0
)

// FontStats is a frequency histogram of observed font sizes, rounded to
// one decimal place. It is scoped to a single document extraction and is
// never shared across documents.
type FontStats struct {
	sizes map[float64]int
}

func NewFontStats() *FontStats {
	return &FontStats{sizes: make(map[float64]int)}
}

// Observe records one occurrence of a font size. Non-positive sizes are
// malformed character data and are ignored.
func (s *FontStats) Observe(size float64) {
	if size <= 0 {
		return
	}
	s.sizes[round1(size)]++
}

// Empty reports whether no sizes have been observed.
func (s *FontStats) Empty() bool { return len(s.sizes) == 0 }

// Average returns the arithmetic mean of the distinct observed sizes.
// Frequencies are deliberately not weighted in: ten lines at 10pt and one
// at 30pt average to 20, which biases the short-line rule toward treating
// outlier large sizes as headings.
func (s *FontStats) Average() float64 {
	if len(s.sizes) == 0 {
		return fallbackAverageSize
	}
	var sum float64
	for size := range s.sizes {
		sum += size
	}
	return sum / float64(len(s.sizes))
}

// Largest returns the maximum observed distinct size.
func (s *FontStats) Largest() float64 {
	if len(s.sizes) == 0 {
		return fallbackLargestSize
	}
	largest := math.Inf(-1)
	for size := range s.sizes {
		if size > largest {
			largest = size
		}
	}
	return largest
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
