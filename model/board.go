package model

import "slices"

// Bounds is an inclusive rectangle of coordinates
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// Expand grows the rectangle by n in every direction
func (b Bounds) Expand(n int) Bounds {
	return Bounds{MinX: b.MinX - n, MaxX: b.MaxX + n, MinY: b.MinY - n, MaxY: b.MaxY + n}
}

// Area returns the number of coordinates inside the rectangle
func (b Bounds) Area() int {
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1)
}

// Board is an immutable snapshot of every tracked cell: the live cells plus a
// dead border at least one cell deep. Lookup by coordinate is O(1).
type Board struct {
	cells []Cell
	index map[Coord]Cell
	live  []Coord // sorted

	// bounding box of the live cells
	bounds      Bounds
	boundsValid bool
}

// NewBoard builds a board over cells. The border is the caller's job.
//
// previous, when non-nil, only sizes the index up front. A coordinate listed
// more than once keeps its last state.
func NewBoard(cells []Cell, previous *Board) *Board {
	size := len(cells)
	if previous != nil {
		size = max(size, len(previous.index))
	}

	b := &Board{
		cells: make([]Cell, 0, len(cells)),
		index: make(map[Coord]Cell, size),
	}

	slot := make(map[Coord]int, len(cells))
	for _, c := range cells {
		if i, ok := slot[c.pos]; ok {
			b.cells[i] = c
		} else {
			slot[c.pos] = len(b.cells)
			b.cells = append(b.cells, c)
		}
		b.index[c.pos] = c
	}

	for _, c := range b.cells {
		if c.alive {
			b.include(c.pos)
			b.live = append(b.live, c.pos)
		}
	}
	slices.SortFunc(b.live, Coord.Compare)

	return b
}

func (b *Board) include(p Coord) {
	if !b.boundsValid {
		b.bounds = Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
		b.boundsValid = true
		return
	}
	b.bounds.MinX = min(b.bounds.MinX, p.X)
	b.bounds.MaxX = max(b.bounds.MaxX, p.X)
	b.bounds.MinY = min(b.bounds.MinY, p.Y)
	b.bounds.MaxY = max(b.bounds.MaxY, p.Y)
}

// CellAt returns the tracked cell at (x, y). ok is false outside the tracked region.
func (b *Board) CellAt(x, y int) (Cell, bool) {
	c, ok := b.index[Coord{X: x, Y: y}]
	return c, ok
}

// LiveCells returns the live cells sorted by coordinate
func (b *Board) LiveCells() []Cell {
	out := make([]Cell, len(b.live))
	for i, p := range b.live {
		out[i] = cellAt(p, true)
	}
	return out
}

// DeadCells returns the tracked dead cells sorted by coordinate
func (b *Board) DeadCells() []Cell {
	out := make([]Cell, 0, len(b.cells)-len(b.live))
	for _, c := range b.cells {
		if c.IsDead() {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, Cell.Compare)
	return out
}

// AllCells returns a copy of every tracked cell
func (b *Board) AllCells() []Cell {
	return slices.Clone(b.cells)
}

// LiveCoordinates returns the live coordinates sorted ascending by (x, y)
func (b *Board) LiveCoordinates() []Coord {
	return slices.Clone(b.live)
}

// Population returns the number of live cells
func (b *Board) Population() int {
	return len(b.live)
}

// Len returns the number of tracked cells
func (b *Board) Len() int {
	return len(b.cells)
}

// Bounds returns the bounding box of the live cells. ok is false when nothing is alive.
func (b *Board) Bounds() (Bounds, bool) {
	return b.bounds, b.boundsValid
}

// Equal reports whether both boards hold the same live cells. Dead cells are ignored.
func (b *Board) Equal(o *Board) bool {
	if b == o {
		return true
	}
	if b == nil || o == nil {
		return false
	}
	return slices.Equal(b.live, o.live)
}
