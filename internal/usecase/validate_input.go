package usecase

import (
	"context"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
	"github.com/fawaz-alesayi/advent-of-crab/internal/ports"
)

type ValidateInput struct {
	catalog ports.PuzzleCatalog
	lines   ports.LineLoader
}

func NewValidateInput(catalog ports.PuzzleCatalog, ll ports.LineLoader) *ValidateInput {
	return &ValidateInput{catalog: catalog, lines: ll}
}

// Execute parses an input file for a puzzle without solving it and returns
// the number of records it holds.
func (uc *ValidateInput) Execute(ctx context.Context, key domain.PuzzleKey, path string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	p, err := uc.catalog.Lookup(key)
	if err != nil {
		return 0, err
	}

	lines, err := uc.lines.LoadLines(path)
	if err != nil {
		return 0, err
	}

	n, err := p.Parse(lines)
	if err != nil {
		return 0, &domain.OpError{
			Op:   "usecase.validate",
			Kind: domain.ClassifyError(err),
			Path: path,
			Err:  err,
		}
	}
	return n, nil
}
