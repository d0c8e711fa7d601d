// Package direction enumerates the four compass directions.
// They key the neighbours of a cell on a space-filling curve.
package direction

type D int

const (
	North D = iota
	East
	South
	West
)

// All lists the directions in compass (clockwise) order.
func All() [4]D {
	return [4]D{North, East, South, West}
}

// Opposite returns the reciprocal direction.
func (d D) Opposite() D {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

func (d D) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}
