package core

// Intent is one frame of player input, independent of the input backend
type Intent struct {
	Left, Right bool
	Up, Down    bool
	Ability     bool
}

// Axis returns the horizontal and vertical direction, each in {-1, 0, 1}
func (in Intent) Axis() (dx, dy float64) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}
