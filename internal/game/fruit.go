package game

import "gridsnake/internal/core"

// Spawner places fruit uniformly at random on grid-aligned cells. It does not
// avoid the snake; fruit may land on the body.
type Spawner struct {
	geo core.Geometry
	rng *core.RNG
}

// NewSpawner returns a Spawner drawing from rng.
func NewSpawner(geo core.Geometry, rng *core.RNG) *Spawner {
	return &Spawner{geo: geo, rng: rng}
}

// Next samples raw coordinates in [0, WindowSize) and aligns them down to the
// grid.
func (s *Spawner) Next() core.Cell {
	x := s.rng.IntN(s.geo.WindowSize)
	y := s.rng.IntN(s.geo.WindowSize)
	return s.geo.Align(x, y)
}
