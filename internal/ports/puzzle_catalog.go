package ports

import (
	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
	"github.com/fawaz-alesayi/advent-of-crab/internal/puzzles"
)

// PuzzleCatalog resolves puzzle keys to solvers.
type PuzzleCatalog interface {
	Lookup(key domain.PuzzleKey) (puzzles.Puzzle, error)
	All() []puzzles.Puzzle
	Day(day int) []puzzles.Puzzle
}
