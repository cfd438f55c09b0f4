// Package sonar counts how often a depth sweep gets deeper.
//
// A sweep is an ordered list of measurements. Measurements are compared
// through trailing windows of a fixed size: with window 1 adjacent values are
// compared directly, with window 3 the sums of overlapping triples are.
package sonar

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
)

// Changes tallies how adjacent window sums relate to each other.
type Changes struct {
	Increases int
	Decreases int
	Unchanged int
}

// Total is the number of compared window pairs.
func (c Changes) Total() int {
	return c.Increases + c.Decreases + c.Unchanged
}

// ParseMeasurements parses one decimal integer per line. It stops at the first
// line that is not an integer.
func ParseMeasurements(lines []string) ([]int, error) {
	out := make([]int, 0, len(lines))
	for i, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, domain.NewParseError(i, line, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// CountIncreases returns how many window sums are strictly greater than the
// one before them.
func CountIncreases[T constraints.Integer](depths []T, window int) int {
	return Tally(depths, window).Increases
}

// Tally compares every pair of adjacent window sums. Two adjacent windows
// share window-1 values, so the comparison reduces to the values entering
// and leaving the window and never needs the sums themselves.
func Tally[T constraints.Integer](depths []T, window int) Changes {
	var c Changes
	if window < 1 || len(depths) <= window {
		return c
	}

	for i := 0; i+window < len(depths); i++ {
		in, out := depths[i+window], depths[i]
		switch {
		case in > out:
			c.Increases++
		case in < out:
			c.Decreases++
		default:
			c.Unchanged++
		}
	}
	return c
}

// WindowSums returns the sum of every full trailing window, in order.
func WindowSums[T constraints.Integer](depths []T, window int) []T {
	if window < 1 || len(depths) < window {
		return nil
	}

	sums := make([]T, 0, len(depths)-window+1)
	var sum T
	for i, d := range depths {
		sum += d
		if i >= window {
			sum -= depths[i-window]
		}
		if i >= window-1 {
			sums = append(sums, sum)
		}
	}
	return sums
}
