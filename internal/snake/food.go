package snake

import "snake-u/internal/core"

// Spawner places food on a random grid-aligned interior cell.
type Spawner struct {
	rng      *core.RNG
	interior core.Rect
	block    int
}

// NewSpawner returns a Spawner drawing from rng.
func NewSpawner(rng *core.RNG, interior core.Rect, block int) *Spawner {
	return &Spawner{rng: rng, interior: interior, block: block}
}

// Place draws column and row independently and uniformly. It does not avoid
// cells the snake occupies.
func (s *Spawner) Place() core.Point {
	cols := s.interior.Dx() / s.block
	rows := s.interior.Dy() / s.block
	return core.Point{
		X: s.rng.IntN(cols)*s.block + s.interior.Min.X,
		Y: s.rng.IntN(rows)*s.block + s.interior.Min.Y,
	}
}
