package snake

import (
	"fmt"

	"snake-u/internal/core"
)

// Config holds the fixed rules of a game: surface geometry, starting pose and
// the food seed.
type Config struct {
	Width  int
	Height int
	Block  int
	Margin int

	StartHead   core.Point
	StartLength int
	StartFood   core.Point

	Seed int64
}

// DefaultConfig returns the standard 1280x720 layout with 20px blocks.
func DefaultConfig() Config {
	return Config{
		Width:       1280,
		Height:      720,
		Block:       20,
		Margin:      20,
		StartHead:   core.Point{X: 300, Y: 340},
		StartLength: 4,
		StartFood:   core.Point{X: 980, Y: 340},
		Seed:        1,
	}
}

// Interior returns the playable rectangle inside the border margin.
func (c Config) Interior() core.Rect {
	return core.Inset(c.Width, c.Height, c.Margin)
}

// Cells returns the number of grid cells in the interior.
func (c Config) Cells() int {
	in := c.Interior()
	return (in.Dx() / c.Block) * (in.Dy() / c.Block)
}

// Validate reports configurations that cannot host a game.
func (c Config) Validate() error {
	if c.Block <= 0 {
		return fmt.Errorf("block size %d must be positive", c.Block)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin %d must not be negative", c.Margin)
	}
	in := c.Interior()
	if in.Dx() < c.Block || in.Dy() < c.Block {
		return fmt.Errorf("surface %dx%d leaves no interior for margin %d", c.Width, c.Height, c.Margin)
	}
	if c.StartLength < 1 {
		return fmt.Errorf("start length %d must be at least 1", c.StartLength)
	}
	if c.StartLength > c.Cells() {
		return fmt.Errorf("start length %d exceeds %d interior cells", c.StartLength, c.Cells())
	}
	if err := c.onGrid("start head", c.StartHead); err != nil {
		return err
	}
	return c.onGrid("start food", c.StartFood)
}

// onGrid reports points outside the interior or off the block grid.
func (c Config) onGrid(what string, p core.Point) error {
	in := c.Interior()
	if !in.Contains(p) {
		return fmt.Errorf("%s (%d,%d) outside interior %v", what, p.X, p.Y, in)
	}
	if (p.X-in.Min.X)%c.Block != 0 || (p.Y-in.Min.Y)%c.Block != 0 {
		return fmt.Errorf("%s (%d,%d) is not on the %dpx grid", what, p.X, p.Y, c.Block)
	}
	return nil
}
