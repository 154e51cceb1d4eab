package life

import "torus-life/internal/core"

const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// NextState applies B3/S23 to a single cell.
func NextState(cell uint8, liveNeighbors int) uint8 {
	switch cell {
	case Alive:
		if liveNeighbors == 2 || liveNeighbors == 3 {
			return Alive
		}
		return Dead
	case Dead:
		if liveNeighbors == 3 {
			return Alive
		}
		return Dead
	default:
		panic("life: cell value outside {0,1}")
	}
}

// CountNeighbors sums the eight toroidally wrapped neighbours of (x, y).
func CountNeighbors(src []uint8, w, h, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		row := core.Wrap(y+dy, h) * w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(src[row+core.Wrap(x+dx, w)])
		}
	}
	return n
}
