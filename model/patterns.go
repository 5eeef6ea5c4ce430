package model

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

const PatternRandom = "random"

var patterns = map[string][]Coord{
	// vertical line of three, flips every generation
	"blinker": {{1, 1}, {1, 2}, {1, 3}},
	// drifts forever, never reported as stable or cycling
	"glider": {{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	// settles into a beehive after three generations
	"beehive-seed": {{1, 0}, {1, 1}, {1, 2}, {2, 2}},
	"block":        {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
}

// Pattern returns the seed coordinates of a named pattern
func Pattern(name string) ([]Coord, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Errorf("[Pattern] unknown pattern: %q", name)
	}
	return append([]Coord(nil), p...), nil
}

// PatternNames lists the named patterns, sorted
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RandomSeed draws count coordinates with both axes in 1..span. Repeats collapse.
func RandomSeed(rng *rand.Rand, count, span int) []Coord {
	if span <= 0 {
		return nil
	}
	seen := make(map[Coord]struct{}, count)
	out := make([]Coord, 0, count)
	for range count {
		p := Coord{X: 1 + rng.Intn(span), Y: 1 + rng.Intn(span)}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
