package puzzles

import (
	"github.com/fawaz-alesayi/advent-of-crab/internal/dive"
	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
)

const diveTitle = "Dive!"

func diveCourse() []Puzzle {
	return []Puzzle{
		{
			Key:   domain.PuzzleKey{Day: 2, Part: 1},
			Title: diveTitle,
			Solve: navigate(dive.Position.Product),
			Parse: parseCommands,
		},
		{
			Key:   domain.PuzzleKey{Day: 2, Part: 2},
			Title: diveTitle,
			Solve: navigate(dive.Position.AimedProduct),
			Parse: parseCommands,
		},
	}
}

func navigate(answer func(dive.Position) int) Solver {
	return func(lines []string) (domain.Answer, error) {
		cmds, err := dive.ParseCommands(lines)
		if err != nil {
			return domain.Answer{}, err
		}
		pos, err := dive.Navigate(cmds)
		if err != nil {
			return domain.Answer{}, err
		}
		return domain.Answer{Value: answer(pos), Records: len(cmds)}, nil
	}
}

func parseCommands(lines []string) (int, error) {
	cmds, err := dive.ParseCommands(lines)
	return len(cmds), err
}
