package snake

import (
	"snake-u/internal/core"
)

// State aggregates everything a game mutates. Only Tick and the input mapper
// (through Requested) write to it.
type State struct {
	cfg Config

	Snake *Snake
	Food  core.Point
	Score int
	// HighScore is carried for display parity and is never updated.
	HighScore int
	GameOver  bool

	// Requested is the heading asked for by input, consumed by Tick.
	Requested Heading
	// Last is the outcome of the most recent collision pass.
	Last Outcome

	prev     Heading
	ticks    int
	interior core.Rect
	spawner  *Spawner
}

// New builds the initial game state for cfg. cfg is assumed valid.
func New(cfg Config) *State {
	interior := cfg.Interior()
	return &State{
		cfg:       cfg,
		Snake:     NewSnake(cfg.StartHead, cfg.StartLength, cfg.Block, cfg.Cells()),
		Food:      cfg.StartFood,
		Requested: HeadingNone,
		prev:      HeadingNone,
		interior:  interior,
		spawner:   NewSpawner(core.NewRNG(cfg.Seed), interior, cfg.Block),
	}
}

// Config returns the rules the state was built with.
func (s *State) Config() Config { return s.cfg }

// Interior returns the playable rectangle.
func (s *State) Interior() core.Rect { return s.interior }

// Ticks returns the number of Tick calls so far.
func (s *State) Ticks() int { return s.ticks }

// Previous returns the heading of the last completed move.
func (s *State) Previous() Heading { return s.prev }

// Tick resolves the requested heading, moves the snake and runs the
// collision pass. It reports whether the game reached a terminal state.
// A None heading leaves the state as it is.
func (s *State) Tick() bool {
	if s.GameOver {
		return true
	}
	s.ticks++
	heading := Resolve(s.prev, s.Requested)
	s.Requested = heading
	s.Snake.Heading = heading
	if !s.Snake.Move(heading, s.cfg.Block) {
		s.Last = OutcomeNone
		return false
	}
	s.prev = heading

	s.Last = s.collide()
	s.GameOver = s.Last.Terminal()
	return s.GameOver
}
