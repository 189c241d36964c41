package maze

import "fmt"

// Direction names one of the four orthogonal neighbours of a cell.
type Direction uint8

const (
	Up Direction = iota
	Left
	Right
	Down
)

// Directions lists the neighbours in the order the carver considers them
// before shuffling.
var Directions = [4]Direction{Up, Left, Right, Down}

// Step returns the coordinates one cell away from (row, col) in direction d.
func (d Direction) Step(row, col int) (int, int) {
	switch d {
	case Up:
		return row - 1, col
	case Left:
		return row, col - 1
	case Right:
		return row, col + 1
	default:
		return row + 1, col
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}
