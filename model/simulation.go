package model

import "github.com/pkg/errors"

var (
	// ErrStable is returned by Step when the new board equals the previous one
	ErrStable = errors.New("board is stable")
	// ErrCycling is returned by Step when the new board equals the one from two steps ago
	ErrCycling = errors.New("board is stuck in a two-generation cycle")
)

// Status is the state of a Simulation
type Status int

const (
	Running Status = iota
	Stable
	Cycling
)

func (s Status) String() string {
	switch s {
	case Stable:
		return "Stable"
	case Cycling:
		return "Cycling"
	default:
		return "Running"
	}
}

// Simulation keeps the current board and the two before it, which is all the
// history stability and cycle detection need.
//
// Only two-generation cycles are detected. Longer periods and gliders run forever.
type Simulation struct {
	gen Generator

	current     *Board
	parent      *Board
	grandparent *Board

	generation int
	status     Status
}

// NewSimulation seeds a simulation. Duplicate coordinates collapse.
func NewSimulation(seed []Coord, gen Generator) *Simulation {
	return &Simulation{
		gen:     gen,
		current: gen.InitialBoard(seed),
	}
}

// Step advances one generation.
//
// It returns ErrStable or ErrCycling once the board stops changing. The new
// board is still kept. Both are terminal: later calls return the same error
// without advancing.
func (s *Simulation) Step() error {
	if err := s.Err(); err != nil {
		return err
	}

	s.grandparent = s.parent
	s.parent = s.current
	s.current = s.gen.NextGeneration(s.parent)
	s.generation++

	switch {
	case s.parent.Equal(s.current):
		s.status = Stable
	case s.grandparent != nil && s.grandparent.Equal(s.current):
		s.status = Cycling
	}
	return s.Err()
}

// Err returns the terminal error, or nil while the simulation is running
func (s *Simulation) Err() error {
	switch s.status {
	case Stable:
		return ErrStable
	case Cycling:
		return ErrCycling
	default:
		return nil
	}
}

func (s *Simulation) Status() Status {
	return s.status
}

// Generation returns how many steps have been taken
func (s *Simulation) Generation() int {
	return s.generation
}

// Board returns the current board
func (s *Simulation) Board() *Board {
	return s.current
}

// LiveCoordinates returns the current live coordinates sorted by (x, y)
func (s *Simulation) LiveCoordinates() []Coord {
	return s.current.LiveCoordinates()
}
