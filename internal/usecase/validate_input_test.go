package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
	"github.com/fawaz-alesayi/advent-of-crab/internal/puzzles"
)

func TestValidateInput_CountsRecords(t *testing.T) {
	uc := NewValidateInput(puzzles.Default(), fakeLines{"d2": course})

	n, err := uc.Execute(context.Background(), domain.PuzzleKey{Day: 2, Part: 1}, "d2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 6 {
		t.Fatalf("expected 6 records, got %d", n)
	}
}

func TestValidateInput_ParseError(t *testing.T) {
	uc := NewValidateInput(puzzles.Default(), fakeLines{"d1": {"182", "oops"}})

	_, err := uc.Execute(context.Background(), domain.PuzzleKey{Day: 1, Part: 2}, "d1")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !domain.IsKind(err, domain.KindParse) {
		t.Fatalf("expected KindParse, got %v", err)
	}
	var pe *domain.ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Fatalf("expected ParseError on line 2, got %v", err)
	}
}

func TestValidateInput_MissingFile(t *testing.T) {
	uc := NewValidateInput(puzzles.Default(), fakeLines{})

	_, err := uc.Execute(context.Background(), domain.PuzzleKey{Day: 1, Part: 1}, "nope")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestValidateInput_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewValidateInput(puzzles.Default(), fakeLines{"d2": course})
	_, err := uc.Execute(ctx, domain.PuzzleKey{Day: 2, Part: 1}, "d2")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
