package model

import (
	"errors"
	"slices"
	"testing"
)

func TestSimulationStable(t *testing.T) {
	sim := NewSimulation([]Coord{{1, 0}, {1, 1}, {1, 2}, {2, 2}}, Generator{})

	steps := [][]Coord{
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}, {2, 1}, {2, 2}},
		{{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 1}, {2, 2}},
	}
	for i, want := range steps {
		if err := sim.Step(); err != nil {
			t.Fatalf("step %d: unexpected error %v", i+1, err)
		}
		if got := sim.LiveCoordinates(); !slices.Equal(got, want) {
			t.Fatalf("step %d: got %v, expected %v", i+1, got, want)
		}
	}

	if err := sim.Step(); !errors.Is(err, ErrStable) {
		t.Fatalf("got %v, expected ErrStable", err)
	}
	if sim.Status() != Stable || sim.Generation() != 4 {
		t.Fatalf("got status %s at generation %d", sim.Status(), sim.Generation())
	}
}

func TestSimulationCycling(t *testing.T) {
	blinker := []Coord{{1, 1}, {1, 2}, {1, 3}}
	sim := NewSimulation(blinker, Generator{})

	if err := sim.Step(); err != nil {
		t.Fatalf("first step: unexpected error %v", err)
	}
	if got, want := sim.LiveCoordinates(), []Coord{{0, 2}, {1, 2}, {2, 2}}; !slices.Equal(got, want) {
		t.Fatalf("got %v, expected %v", got, want)
	}

	// back to the seed, which is the grandparent
	if err := sim.Step(); !errors.Is(err, ErrCycling) {
		t.Fatalf("second step: got %v, expected ErrCycling", err)
	}
	if got := sim.LiveCoordinates(); !slices.Equal(got, blinker) {
		t.Fatalf("got %v, expected %v", got, blinker)
	}

	if err := sim.Step(); !errors.Is(err, ErrCycling) {
		t.Fatalf("third step: got %v, expected ErrCycling", err)
	}
	if sim.Generation() != 2 {
		t.Fatalf("terminal simulation advanced to generation %d", sim.Generation())
	}
}

func TestSimulationEmptySeedIsStable(t *testing.T) {
	sim := NewSimulation(nil, Generator{})
	if sim.Status() != Running || sim.Err() != nil {
		t.Fatalf("new simulation should be running")
	}
	if err := sim.Step(); !errors.Is(err, ErrStable) {
		t.Fatalf("got %v, expected ErrStable", err)
	}
}

func TestSimulationBlockIsStable(t *testing.T) {
	sim := NewSimulation(mustPattern(t, "block"), Generator{})
	if err := sim.Step(); !errors.Is(err, ErrStable) {
		t.Fatalf("got %v, expected ErrStable", err)
	}
}

func TestSimulationGliderKeepsRunning(t *testing.T) {
	sim := NewSimulation(mustPattern(t, "glider"), Generator{Workers: 2})
	for i := range 40 {
		if err := sim.Step(); err != nil {
			t.Fatalf("step %d: unexpected error %v", i+1, err)
		}
	}
	if len(sim.LiveCoordinates()) != 5 {
		t.Fatalf("glider lost cells: %v", sim.LiveCoordinates())
	}
}
