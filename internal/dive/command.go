package dive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
)

// Direction is one of the three command kinds. The zero value is not a valid
// direction.
type Direction int

const (
	Forward Direction = iota + 1
	Up
	Down
)

var (
	ErrUnknownDirection = errors.New("unknown direction")
	ErrMalformedCommand = errors.New("malformed command")
	ErrNegativeUnits    = errors.New("negative units")
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps a direction keyword onto a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "forward":
		return Forward, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownDirection, s)
	}
}

// Command moves the submarine by Units in Direction.
type Command struct {
	Direction Direction
	Units     int
}

func (c Command) String() string {
	return fmt.Sprintf("%s %d", c.Direction, c.Units)
}

// ParseCommand parses "<direction> <units>". It is ParseCommands for a single
// line; errors report line 1.
func ParseCommand(line string) (Command, error) {
	return parseCommand(0, line)
}

// ParseCommands parses one command per line and stops at the first bad line.
func ParseCommands(lines []string) ([]Command, error) {
	out := make([]Command, 0, len(lines))
	for i, line := range lines {
		c, err := parseCommand(i, line)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseCommand(i int, line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Command{}, domain.NewParseError(i, line,
			fmt.Errorf("%w: want 2 fields, got %d", ErrMalformedCommand, len(fields)))
	}

	dir, err := ParseDirection(fields[0])
	if err != nil {
		return Command{}, domain.NewParseError(i, line, err)
	}

	units, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, domain.NewParseError(i, line, err)
	}
	if units < 0 {
		return Command{}, domain.NewParseError(i, line, ErrNegativeUnits)
	}

	return Command{Direction: dir, Units: units}, nil
}
