package compass

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection indicates a token that names no compass direction.
var ErrUnknownDirection = errors.New("compass: unknown direction")

// Direction is one of the four grid-aligned headings.
type Direction uint8

const (
	// North points to the previous row.
	North Direction = iota
	// East points to the next column.
	East
	// South points to the next row.
	South
	// West points to the previous column.
	West
)

// Count is the number of directions.
const Count = 4

// All returns every direction in declaration order: N, E, S, W.
func All() [Count]Direction {
	return [Count]Direction{North, East, South, West}
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return d <= West
}

// Opposite returns the reverse heading. Opposite(Opposite(d)) == d.
func (d Direction) Opposite() Direction {
	return (d + 2) % Count
}

// Clockwise returns the heading after a quarter turn right (N→E→S→W→N).
func (d Direction) Clockwise() Direction {
	return (d + 1) % Count
}

// CounterClockwise returns the heading after a quarter turn left.
func (d Direction) CounterClockwise() Direction {
	return (d + Count - 1) % Count
}

// Delta returns the column and row offsets of a single step in d.
// Rows grow southwards.
func (d Direction) Delta() (dCol, dRow int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// FromRelative maps a single relative-movement token to a direction:
// U or ^ is North, R or > is East, D or v is South, L or < is West.
// Any other rune yields (0, false).
func FromRelative(r rune) (Direction, bool) {
	switch r {
	case 'U', '^':
		return North, true
	case 'R', '>':
		return East, true
	case 'D', 'v':
		return South, true
	case 'L', '<':
		return West, true
	default:
		return 0, false
	}
}

// Parse reads a direction from its initial (N, E, S, W) or full name,
// ignoring case and surrounding whitespace.
func Parse(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
