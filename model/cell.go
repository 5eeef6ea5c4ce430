package model

import "cmp"

// Coord is a position on the unbounded grid. It is also the lookup key for cells.
type Coord struct {
	X, Y int
}

// Compare orders coordinates by x, then y
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

// Neighbors returns the 8 coordinates of the Moore neighborhood around c
func (c Coord) Neighbors() []Coord {
	out := make([]Coord, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, Coord{X: c.X + dx, Y: c.Y + dy})
		}
	}
	return out
}

// Cell is an immutable grid position with its alive state.
//
// Identity is the coordinate only: two cells at the same position are Equal and
// share a Key regardless of state. Compare them with Equal, not ==.
type Cell struct {
	pos   Coord
	alive bool
}

// NewCell creates a cell at (x, y)
func NewCell(x, y int, alive bool) Cell {
	return Cell{pos: Coord{X: x, Y: y}, alive: alive}
}

func cellAt(pos Coord, alive bool) Cell {
	return Cell{pos: pos, alive: alive}
}

// Coordinate returns the position of the cell
func (c Cell) Coordinate() Coord {
	return c.pos
}

// Key returns the hash key of the cell, which ignores the alive state
func (c Cell) Key() Coord {
	return c.pos
}

func (c Cell) IsAlive() bool {
	return c.alive
}

func (c Cell) IsDead() bool {
	return !c.alive
}

// NeighborCoordinates returns the 8 positions adjacent to the cell
func (c Cell) NeighborCoordinates() []Coord {
	return c.pos.Neighbors()
}

// Equal reports whether both cells sit at the same coordinate
func (c Cell) Equal(o Cell) bool {
	return c.pos == o.pos
}

// Compare orders cells by coordinate
func (c Cell) Compare(o Cell) int {
	return c.pos.Compare(o.pos)
}

// String renders the cell the way the terminal display does
func (c Cell) String() string {
	if c.alive {
		return liveGlyph
	}
	return deadGlyph
}
