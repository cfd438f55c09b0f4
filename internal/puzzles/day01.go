package puzzles

import (
	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
	"github.com/fawaz-alesayi/advent-of-crab/internal/sonar"
)

const sonarSweepTitle = "Sonar Sweep"

func sonarSweep() []Puzzle {
	return []Puzzle{
		{
			Key:   domain.PuzzleKey{Day: 1, Part: 1},
			Title: sonarSweepTitle,
			Solve: countIncreases(1),
			Parse: parseMeasurements,
		},
		{
			Key:   domain.PuzzleKey{Day: 1, Part: 2},
			Title: sonarSweepTitle,
			Solve: countIncreases(3),
			Parse: parseMeasurements,
		},
	}
}

func countIncreases(window int) Solver {
	return func(lines []string) (domain.Answer, error) {
		depths, err := sonar.ParseMeasurements(lines)
		if err != nil {
			return domain.Answer{}, err
		}
		return domain.Answer{
			Value:   sonar.CountIncreases(depths, window),
			Records: len(depths),
		}, nil
	}
}

func parseMeasurements(lines []string) (int, error) {
	depths, err := sonar.ParseMeasurements(lines)
	return len(depths), err
}
