package model

import (
	"slices"
	"testing"
)

func TestInitialBoardPadding(t *testing.T) {
	board := Generator{}.InitialBoard([]Coord{{1, 0}})

	if board.Len() != 9 {
		t.Fatalf("got %d tracked cells, expected 9", board.Len())
	}

	var got []Coord
	for _, c := range board.AllCells() {
		got = append(got, c.Coordinate())
	}
	slices.SortFunc(got, Coord.Compare)
	want := []Coord{
		{0, -1}, {0, 0}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
		{2, -1}, {2, 0}, {2, 1},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, expected %v", got, want)
	}

	if live := board.LiveCoordinates(); !slices.Equal(live, []Coord{{1, 0}}) {
		t.Fatalf("got live %v, expected [(1,0)]", live)
	}
	if len(board.DeadCells()) != 8 {
		t.Fatalf("got %d dead cells, expected 8", len(board.DeadCells()))
	}

	c, ok := board.CellAt(1, 0)
	if !ok || !c.IsAlive() || c.Coordinate() != (Coord{1, 0}) {
		t.Fatalf("CellAt(1,0) = %v, %v", c, ok)
	}
	if _, ok := board.CellAt(5, 5); ok {
		t.Fatalf("CellAt outside the tracked region should be absent")
	}
}

func TestInitialBoardCollapsesDuplicates(t *testing.T) {
	board := Generator{}.InitialBoard([]Coord{{0, 0}, {0, 0}, {0, 1}})
	if board.Population() != 2 {
		t.Fatalf("got population %d, expected 2", board.Population())
	}
	// 3x4 block around the two cells
	if board.Len() != 12 {
		t.Fatalf("got %d tracked cells, expected 12", board.Len())
	}
}

func TestEmptyBoard(t *testing.T) {
	board := NewBoard(nil, nil)
	if board.Len() != 0 || len(board.LiveCells()) != 0 || len(board.DeadCells()) != 0 {
		t.Fatalf("expected an empty board")
	}
	if _, ok := board.Bounds(); ok {
		t.Fatalf("empty board should have no bounds")
	}
	if !board.Equal(Generator{}.InitialBoard(nil)) {
		t.Fatalf("empty boards should be equal")
	}
}

func TestBoardEqualIgnoresDeadCells(t *testing.T) {
	bare := NewBoard([]Cell{NewCell(0, 0, true)}, nil)
	padded := Generator{}.InitialBoard([]Coord{{0, 0}})
	other := Generator{}.InitialBoard([]Coord{{0, 1}})

	if !bare.Equal(bare) {
		t.Fatalf("Equal should be reflexive")
	}
	if !bare.Equal(padded) || !padded.Equal(bare) {
		t.Fatalf("boards with the same live cells should be equal both ways")
	}
	if bare.Equal(other) {
		t.Fatalf("boards with different live cells should differ")
	}
	if bare.Equal(nil) {
		t.Fatalf("board should not equal nil")
	}
}

func TestNewBoardIndexConsistency(t *testing.T) {
	previous := Generator{}.InitialBoard([]Coord{{5, 5}})
	board := NewBoard([]Cell{
		NewCell(0, 0, true),
		NewCell(0, 1, false),
		NewCell(0, 0, false),
	}, previous)

	if board.Len() != 2 {
		t.Fatalf("got %d cells, expected 2", board.Len())
	}
	if c, _ := board.CellAt(0, 0); c.IsAlive() {
		t.Fatalf("the last listed state should win")
	}
	if _, ok := board.CellAt(5, 5); ok {
		t.Fatalf("cells of the previous board must not leak into the index")
	}
	for _, c := range board.AllCells() {
		got, ok := board.CellAt(c.Coordinate().X, c.Coordinate().Y)
		if !ok || got != c {
			t.Fatalf("index out of sync for %v", c.Coordinate())
		}
	}
}

func TestBoardBounds(t *testing.T) {
	board := Generator{}.InitialBoard([]Coord{{1, 1}, {1, 2}, {1, 3}})
	bounds, ok := board.Bounds()
	if !ok {
		t.Fatalf("expected bounds")
	}
	if bounds != (Bounds{MinX: 1, MaxX: 1, MinY: 1, MaxY: 3}) {
		t.Fatalf("unexpected bounds %+v", bounds)
	}
	if bounds.Area() != 3 || bounds.Expand(1).Area() != 15 {
		t.Fatalf("unexpected areas %d, %d", bounds.Area(), bounds.Expand(1).Area())
	}
}
