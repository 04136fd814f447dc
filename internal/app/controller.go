package app

import (
	"fmt"
	"log"
	"time"

	"snake-u/internal/core"
	"snake-u/internal/input"
	"snake-u/internal/platform"
	"snake-u/internal/render"
	"snake-u/internal/snake"
)

// Controller runs one game on a platform: input every iteration, a tick of
// move, collide and draw whenever the fixed-step clock fires.
type Controller struct {
	plat     platform.Platform
	log      *log.Logger
	state    *snake.State
	mapper   input.Mapper
	clock    *core.FixedStep
	renderer *render.Renderer
	fb       *render.Framebuffer

	frames int
}

// New allocates the framebuffer, binds it to the platform display and
// prepares the initial game state.
func New(cfg *Config, rules snake.Config, plat platform.Platform, logger *log.Logger) (*Controller, error) {
	return newController(cfg, rules, plat, logger, time.Now)
}

func newController(cfg *Config, rules snake.Config, plat platform.Platform, logger *log.Logger, now func() time.Time) (*Controller, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("game rules: %w", err)
	}

	w, h := plat.BufferSize()
	logger.Printf("display buffer %dx%d (%d bytes)", w, h, 4*w*h)
	if w != rules.Width || h != rules.Height {
		return nil, fmt.Errorf("%w: display buffer %dx%d, game needs %dx%d", ErrAllocation, w, h, rules.Width, rules.Height)
	}
	fb, err := render.NewFramebuffer(w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	plat.SetBuffer(fb)
	if err := plat.Enable(); err != nil {
		return nil, fmt.Errorf("enable display: %w", err)
	}

	r := render.New(rules)
	r.Debug = cfg.Debug
	return &Controller{
		plat:     plat,
		log:      logger,
		state:    snake.New(rules),
		clock:    core.NewFixedStepClock(cfg.TPS, now),
		renderer: r,
		fb:       fb,
	}, nil
}

// State exposes the game state.
func (c *Controller) State() *snake.State { return c.state }

// Frames returns the number of ticks rendered.
func (c *Controller) Frames() int { return c.frames }

// Run drives the platform loop until the game ends, the platform stops or a
// fatal error occurs.
func (c *Controller) Run() error {
	return c.plat.Drive(c.Iterate)
}

// Iterate performs one outer loop iteration. It reports true once the loop
// should stop.
func (c *Controller) Iterate() (bool, error) {
	var fault error
	if err := c.mapper.Apply(c.plat.Poll(), &c.state.Requested); err != nil {
		c.log.Printf("fatal: %v", err)
		fault = fmt.Errorf("%w: %w", ErrInputDeviceFault, err)
	}

	if c.clock.ShouldStep() {
		if err := c.tick(); err != nil {
			return true, err
		}
	}

	if fault != nil {
		return true, fault
	}
	if c.state.GameOver {
		c.log.Printf("snake %s at (%d,%d) after %d ticks and %d turns, score %d",
			c.state.Last, c.state.Snake.Head.X, c.state.Snake.Head.Y, c.state.Ticks(), c.mapper.Edges, c.state.Score)
		return true, nil
	}
	return false, nil
}

func (c *Controller) tick() error {
	c.frames++
	c.renderer.Clear(c.fb)
	c.renderer.DrawBorder(c.fb)

	c.state.Tick()
	if c.state.Last == snake.OutcomeAte {
		c.log.Printf("score %d, length %d, food moved to (%d,%d)",
			c.state.Score, c.state.Snake.Length, c.state.Food.X, c.state.Food.Y)
	}

	c.renderer.DrawSnake(c.fb, c.state.Snake)
	c.renderer.DrawFood(c.fb, c.state.Food)
	c.renderer.DrawHUD(c.fb, c.state, c.frames)

	if err := c.plat.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}
