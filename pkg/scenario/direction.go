package scenario

// Direction is one of the four compass moves.
type Direction string

const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
)

// Compass lists every direction in the order exits are reported.
var Compass = [...]Direction{North, East, South, West}

// ParseDirection matches a command token exactly. Case and surrounding
// whitespace are significant.
func ParseDirection(token string) (Direction, bool) {
	i := Direction(token).index()
	if i < 0 {
		return "", false
	}
	return Compass[i], true
}

func (d Direction) index() int {
	switch d {
	case North:
		return 0
	case East:
		return 1
	case South:
		return 2
	case West:
		return 3
	}
	return -1
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

func (d Direction) String() string {
	return string(d)
}
