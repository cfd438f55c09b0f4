package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinDay  = 1
	MaxDay  = 25
	MinPart = 1
	MaxPart = 2
)

// PuzzleKey identifies one part of one day's puzzle.
type PuzzleKey struct {
	Day  int
	Part int
}

func (k PuzzleKey) String() string {
	return fmt.Sprintf("day %d part %d", k.Day, k.Part)
}

// Slug is a filesystem-friendly form of the key, e.g. "day01-part2".
func (k PuzzleKey) Slug() string {
	return fmt.Sprintf("day%02d-part%d", k.Day, k.Part)
}

// Validate reports whether the key is inside the calendar bounds.
func (k PuzzleKey) Validate() error {
	if k.Day < MinDay || k.Day > MaxDay {
		return fmt.Errorf("day %d out of range [%d,%d]: %w", k.Day, MinDay, MaxDay, ErrInvalidConfig)
	}
	if k.Part < MinPart || k.Part > MaxPart {
		return fmt.Errorf("part %d out of range [%d,%d]: %w", k.Part, MinPart, MaxPart, ErrInvalidConfig)
	}
	return nil
}

// ParsePuzzleKey accepts "DAY.PART" (e.g. "1.2") or "DAY/PART".
func ParsePuzzleKey(s string) (PuzzleKey, error) {
	in := strings.TrimSpace(s)
	sep := strings.IndexAny(in, "./")
	if sep < 0 {
		return PuzzleKey{}, fmt.Errorf("puzzle key %q: expected DAY.PART: %w", s, ErrInvalidConfig)
	}

	day, err := strconv.Atoi(in[:sep])
	if err != nil {
		return PuzzleKey{}, fmt.Errorf("puzzle key %q: bad day: %w", s, ErrInvalidConfig)
	}
	part, err := strconv.Atoi(in[sep+1:])
	if err != nil {
		return PuzzleKey{}, fmt.Errorf("puzzle key %q: bad part: %w", s, ErrInvalidConfig)
	}

	k := PuzzleKey{Day: day, Part: part}
	if err := k.Validate(); err != nil {
		return PuzzleKey{}, err
	}
	return k, nil
}

// Answer is what a solver produces: the numeric answer and how many input
// records it consumed.
type Answer struct {
	Value   int
	Records int
}
