package rules

const (
	survivalMin   = 2
	survivalMax   = 3
	regenerations = 3
)

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

A live cell with two or three live neighbors survives, a dead cell with exactly
three live neighbors regenerates, every other cell is dead next generation.
*/
func NextState(alive bool, liveNeighbors int) bool {
	return survives(alive, liveNeighbors) || regenerates(alive, liveNeighbors)
}

func survives(alive bool, liveNeighbors int) bool {
	return alive && liveNeighbors >= survivalMin && liveNeighbors <= survivalMax
}

func regenerates(alive bool, liveNeighbors int) bool {
	return !alive && liveNeighbors == regenerations
}
