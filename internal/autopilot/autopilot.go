// Package autopilot steers a snake without a player: move towards the food
// but avoid bumping into things.
package autopilot

import (
	"slices"

	"snake-u/internal/core"
	"snake-u/internal/snake"
)

const occupied = 1

// Pilot chooses headings for one game.
type Pilot struct {
	interior core.Rect
	block    int
	occ      *core.ByteGrid
	rng      *core.RNG
}

// New returns a pilot for games played under cfg. seed breaks ties between
// equally good fallback moves.
func New(cfg snake.Config, seed int64) *Pilot {
	in := cfg.Interior()
	return &Pilot{
		interior: in,
		block:    cfg.Block,
		occ:      core.NewByteGrid(in.Dx()/cfg.Block, in.Dy()/cfg.Block),
		rng:      core.NewRNG(seed),
	}
}

// Choose returns the heading to request for the next tick.
func (p *Pilot) Choose(st *snake.State) snake.Heading {
	p.mark(st.Snake)
	prev := st.Previous()
	head := st.Snake.Head

	for _, h := range p.candidates(head, st.Food) {
		if snake.Resolve(prev, h) != h {
			continue
		}
		if p.safe(head, h) {
			return h
		}
	}
	if prev == snake.HeadingNone {
		return snake.HeadingRight
	}
	return prev
}

// candidates orders the four headings: reduce the vertical distance first,
// then the horizontal one, then the remaining two in random order.
func (p *Pilot) candidates(head, food core.Point) []snake.Heading {
	out := make([]snake.Heading, 0, 4)
	switch {
	case food.Y > head.Y:
		out = append(out, snake.HeadingDown)
	case food.Y < head.Y:
		out = append(out, snake.HeadingUp)
	}
	switch {
	case food.X > head.X:
		out = append(out, snake.HeadingRight)
	case food.X < head.X:
		out = append(out, snake.HeadingLeft)
	}
	rest := make([]snake.Heading, 0, 4)
	for _, h := range [...]snake.Heading{snake.HeadingUp, snake.HeadingRight, snake.HeadingDown, snake.HeadingLeft} {
		if !slices.Contains(out, h) {
			rest = append(rest, h)
		}
	}
	if len(rest) > 1 && p.rng.Bool() {
		rest[0], rest[len(rest)-1] = rest[len(rest)-1], rest[0]
	}
	return append(out, rest...)
}

func (p *Pilot) mark(s *snake.Snake) {
	p.occ.Clear()
	for _, seg := range s.Body() {
		if x, y, ok := p.cell(seg); ok {
			p.occ.Set(x, y, occupied)
		}
	}
}

func (p *Pilot) safe(head core.Point, h snake.Heading) bool {
	dx, dy := h.Delta(p.block)
	x, y, ok := p.cell(head.Add(dx, dy))
	return ok && p.occ.At(x, y) != occupied
}

func (p *Pilot) cell(pt core.Point) (int, int, bool) {
	if !p.interior.Contains(pt) {
		return 0, 0, false
	}
	return (pt.X - p.interior.Min.X) / p.block, (pt.Y - p.interior.Min.Y) / p.block, true
}
