package core

// Heading is one of the four cardinal directions a cycle or camera can face.
type Heading uint8

const (
	North Heading = iota
	South
	East
	West
)

// Headings lists every heading in declaration order.
var Headings = [4]Heading{North, South, East, West}

// LeftTurn returns the heading after a 90 degree counter-clockwise turn.
func (h Heading) LeftTurn() Heading {
	switch h {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

// RightTurn returns the heading after a 90 degree clockwise turn.
func (h Heading) RightTurn() Heading {
	switch h {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// Delta returns the (row, col) offset of one step along h.
func (h Heading) Delta() (int, int) {
	switch h {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Position addresses a grid cell.
type Position struct {
	Row int
	Col int
}

// Step returns the neighbouring position along h.
func (p Position) Step(h Heading) Position {
	dr, dc := h.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Camera is the viewpoint handed to the first-person renderer each frame.
type Camera struct {
	Position Position
	Heading  Heading
}
