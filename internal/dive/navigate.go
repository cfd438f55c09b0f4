// Package dive pilots the submarine through a planned course.
package dive

import "fmt"

// Position is where a course ends up under both steering rules.
//
// Depth follows the simple rule where up and down move the submarine
// directly. AimedDepth follows the aim rule where up and down only turn the
// nose (Aim) and forward dives by Aim*Units. Horizontal is the same for both.
type Position struct {
	Horizontal int
	Depth      int
	Aim        int
	AimedDepth int
}

// Product is Horizontal multiplied by Depth.
func (p Position) Product() int {
	return p.Horizontal * p.Depth
}

// AimedProduct is Horizontal multiplied by AimedDepth.
func (p Position) AimedProduct() int {
	return p.Horizontal * p.AimedDepth
}

// Navigate applies every command in order, starting from the surface.
func Navigate(cmds []Command) (Position, error) {
	var p Position
	for i, c := range cmds {
		switch c.Direction {
		case Forward:
			p.Horizontal += c.Units
			p.AimedDepth += p.Aim * c.Units
		case Down:
			p.Depth += c.Units
			p.Aim += c.Units
		case Up:
			p.Depth -= c.Units
			p.Aim -= c.Units
		default:
			return Position{}, fmt.Errorf("command %d: %w %s", i+1, ErrUnknownDirection, c.Direction)
		}
	}
	return p, nil
}
