// Package puzzles binds the puzzle solvers to their day and part.
package puzzles

import (
	"fmt"
	"sort"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
)

// Solver computes the answer of one puzzle part from raw input lines.
type Solver func(lines []string) (domain.Answer, error)

// Parser only checks that the input is well formed and reports how many
// records it holds.
type Parser func(lines []string) (int, error)

// Puzzle is one registered puzzle part.
type Puzzle struct {
	Key   domain.PuzzleKey
	Title string
	Solve Solver
	Parse Parser
}

// Registry holds puzzles by key.
type Registry struct {
	byKey map[domain.PuzzleKey]Puzzle
}

func NewRegistry() *Registry {
	return &Registry{byKey: map[domain.PuzzleKey]Puzzle{}}
}

// Register adds p. Keys must be valid and unique.
func (r *Registry) Register(p Puzzle) error {
	if err := p.Key.Validate(); err != nil {
		return &domain.OpError{Op: "puzzles.register", Kind: domain.KindInvalidConfig, Err: err}
	}
	if p.Solve == nil || p.Parse == nil {
		return &domain.OpError{
			Op:   "puzzles.register",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%s: solver and parser are required: %w", p.Key, domain.ErrInvalidConfig),
		}
	}
	if _, dup := r.byKey[p.Key]; dup {
		return &domain.OpError{
			Op:   "puzzles.register",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%s already registered: %w", p.Key, domain.ErrInvalidConfig),
		}
	}
	r.byKey[p.Key] = p
	return nil
}

// MustRegister is Register for static tables; it panics on error.
func (r *Registry) MustRegister(ps ...Puzzle) *Registry {
	for _, p := range ps {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Registry) Lookup(key domain.PuzzleKey) (Puzzle, error) {
	p, ok := r.byKey[key]
	if !ok {
		return Puzzle{}, &domain.OpError{
			Op:   "puzzles.lookup",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: %w", key, domain.ErrNotFound),
		}
	}
	return p, nil
}

// All returns every puzzle ordered by day, then part.
func (r *Registry) All() []Puzzle {
	out := make([]Puzzle, 0, len(r.byKey))
	for _, p := range r.byKey {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Key, out[j].Key
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.Part < b.Part
	})
	return out
}

// Day returns the registered parts of one day, in part order.
func (r *Registry) Day(day int) []Puzzle {
	var out []Puzzle
	for _, p := range r.All() {
		if p.Key.Day == day {
			out = append(out, p)
		}
	}
	return out
}

// Default returns a registry with every solved puzzle.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(sonarSweep()...)
	r.MustRegister(diveCourse()...)
	return r
}
