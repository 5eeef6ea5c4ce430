package model

import (
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// minCellsPerWorker keeps small boards on the sequential path
const minCellsPerWorker = 256

// Generator builds boards: the initial one from a seed and each next generation.
//
// Workers > 1 fans the rule evaluation out over goroutines. The output is the
// same either way.
type Generator struct {
	Workers int
}

// InitialBoard marks every seed coordinate alive and pads each one with its dead neighbors
func (g Generator) InitialBoard(seed []Coord) *Board {
	live := make(map[Coord]struct{}, len(seed))
	cells := make([]Cell, 0, len(seed)*9)
	for _, p := range seed {
		if _, dup := live[p]; dup {
			continue
		}
		live[p] = struct{}{}
		cells = append(cells, cellAt(p, true))
	}

	padded := make(map[Coord]struct{}, len(seed)*8)
	for p := range live {
		for _, n := range p.Neighbors() {
			if _, ok := live[n]; ok {
				continue
			}
			if _, ok := padded[n]; ok {
				continue
			}
			padded[n] = struct{}{}
			cells = append(cells, cellAt(n, false))
		}
	}

	return NewBoard(cells, nil)
}

// NextGeneration recomputes every tracked cell of board, then adds dead cells
// so the new live bounding box keeps a one-cell dead ring around it
func (g Generator) NextGeneration(board *Board) *Board {
	next := g.recompute(board)

	var (
		bounds      Bounds
		boundsValid bool
	)
	for _, c := range next {
		if !c.alive {
			continue
		}
		if !boundsValid {
			bounds = Bounds{MinX: c.pos.X, MaxX: c.pos.X, MinY: c.pos.Y, MaxY: c.pos.Y}
			boundsValid = true
			continue
		}
		bounds.MinX = min(bounds.MinX, c.pos.X)
		bounds.MaxX = max(bounds.MaxX, c.pos.X)
		bounds.MinY = min(bounds.MinY, c.pos.Y)
		bounds.MaxY = max(bounds.MaxY, c.pos.Y)
	}

	// Nothing alive: the tracked region stops growing
	if !boundsValid {
		return NewBoard(next, board)
	}

	ring := bounds.Expand(1)
	for x := ring.MinX; x <= ring.MaxX; x++ {
		for y := ring.MinY; y <= ring.MaxY; y++ {
			if _, tracked := board.CellAt(x, y); tracked {
				continue
			}
			next = append(next, NewCell(x, y, false))
		}
	}

	return NewBoard(next, board)
}

// recompute applies the rule to every tracked cell, keeping the board's order
func (g Generator) recompute(board *Board) []Cell {
	var (
		cells = board.cells
		next  = make([]Cell, len(cells))
	)

	workers := min(g.Workers, len(cells)/minCellsPerWorker)
	if workers <= 1 {
		for i, c := range cells {
			next[i] = nextCell(board, c)
		}
		return next
	}

	var (
		eg             errgroup.Group
		cellsPerWorker = (len(cells) + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(cells))
		)
		if start >= len(cells) {
			break
		}

		eg.Go(func() error {
			for j := start; j < end; j++ {
				next[j] = nextCell(board, cells[j])
			}
			return nil
		})
	}

	// rule evaluation cannot fail
	_ = eg.Wait()

	return next
}

func nextCell(board *Board, c Cell) Cell {
	return cellAt(c.pos, rules.NextState(c.alive, board.LiveNeighbors(c.pos)))
}

// LiveNeighbors counts the live cells around p. Untracked neighbors count as dead.
func (b *Board) LiveNeighbors(p Coord) int {
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue // Skip the cell itself
			}
			if c, ok := b.index[Coord{X: p.X + dx, Y: p.Y + dy}]; ok && c.alive {
				count++
			}
		}
	}
	return count
}
