package app

import (
	"errors"
	"flag"
	"io"
	"log"
	"testing"
	"time"

	"snake-u/internal/core"
	"snake-u/internal/input"
	"snake-u/internal/render"
	"snake-u/internal/snake"
)

type fakePlatform struct {
	w, h     int
	polls    []input.Poll
	fb       *render.Framebuffer
	enabled  bool
	presents int
	// iterations left before Running reports false; negative means forever.
	budget int
}

func newFakePlatform(polls ...input.Poll) *fakePlatform {
	return &fakePlatform{w: 1280, h: 720, polls: polls, budget: -1}
}

func (p *fakePlatform) BufferSize() (int, int) { return p.w, p.h }

func (p *fakePlatform) SetBuffer(fb *render.Framebuffer) { p.fb = fb }

func (p *fakePlatform) Enable() error { p.enabled = true; return nil }

func (p *fakePlatform) Close() error { return nil }

func (p *fakePlatform) Present() error {
	p.presents++
	return nil
}

func (p *fakePlatform) Poll() input.Poll {
	if len(p.polls) == 0 {
		return input.Poll{Status: input.StatusNoData}
	}
	next := p.polls[0]
	p.polls = p.polls[1:]
	return next
}

func (p *fakePlatform) Running() bool { return p.budget != 0 }

func (p *fakePlatform) Drive(iterate func() (bool, error)) error {
	for p.Running() {
		if p.budget > 0 {
			p.budget--
		}
		done, err := iterate()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return nil
}

// steppingClock advances by step on every read so each poll fires a tick.
func steppingClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func press(b input.Buttons) input.Poll {
	return input.Poll{Status: input.StatusSuccess, Trigger: b, Hold: b}
}

func TestControllerMovesRightThreeTicks(t *testing.T) {
	plat := newFakePlatform(press(input.ButtonRight))
	c, err := newController(NewConfig(), snake.DefaultConfig(), plat, quietLogger(), steppingClock(201*time.Millisecond))
	if err != nil {
		t.Fatalf("newController: %v", err)
	}
	if !plat.enabled || plat.fb == nil {
		t.Fatal("display was not bound and enabled")
	}

	for i := 0; i < 3; i++ {
		done, err := c.Iterate()
		if done || err != nil {
			t.Fatalf("iteration %d: done=%v err=%v", i, done, err)
		}
	}
	if got := c.State().Snake.Head; got != (core.Point{X: 360, Y: 340}) {
		t.Fatalf("head = %v, want (360,340)", got)
	}
	if plat.presents != 3 || c.Frames() != 3 {
		t.Fatalf("presents %d frames %d", plat.presents, c.Frames())
	}
	if got := plat.fb.At(365, 345); got != render.DefaultPalette().Head {
		t.Fatalf("head pixel = %v", got)
	}
}

func TestControllerPollsWithoutTicking(t *testing.T) {
	plat := newFakePlatform(press(input.ButtonUp))
	frozen := func() time.Time { return time.Unix(0, 0) }
	c, err := newController(NewConfig(), snake.DefaultConfig(), plat, quietLogger(), frozen)
	if err != nil {
		t.Fatalf("newController: %v", err)
	}
	if done, err := c.Iterate(); done || err != nil {
		t.Fatalf("done=%v err=%v", done, err)
	}
	if c.State().Requested != snake.HeadingUp {
		t.Fatalf("requested = %v", c.State().Requested)
	}
	if plat.presents != 0 || c.State().Snake.Head != snake.DefaultConfig().StartHead {
		t.Fatal("a tick ran without the clock firing")
	}
}

func TestControllerStopsOnGameOver(t *testing.T) {
	rules := snake.DefaultConfig()
	rules.StartHead = core.Point{X: 1240, Y: 340}
	plat := newFakePlatform(press(input.ButtonRight))
	c, err := newController(NewConfig(), rules, plat, quietLogger(), steppingClock(time.Second))
	if err != nil {
		t.Fatalf("newController: %v", err)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !c.State().GameOver || c.State().Last != snake.OutcomeWall {
		t.Fatalf("game over %v outcome %v", c.State().GameOver, c.State().Last)
	}
	if plat.presents != 1 {
		t.Fatalf("presents = %d, the final frame must still be shown", plat.presents)
	}
}

func TestControllerInputFaultIsFatal(t *testing.T) {
	plat := newFakePlatform(press(input.ButtonRight), input.Poll{Status: input.StatusDeviceError})
	c, err := newController(NewConfig(), snake.DefaultConfig(), plat, quietLogger(), steppingClock(201*time.Millisecond))
	if err != nil {
		t.Fatalf("newController: %v", err)
	}
	err = c.Run()
	if !errors.Is(err, ErrInputDeviceFault) || !errors.Is(err, input.ErrDisconnected) {
		t.Fatalf("err = %v, want input device fault", err)
	}
	if c.State().GameOver {
		t.Fatal("input fault must not be reported as game over")
	}
	if plat.presents != 2 {
		t.Fatalf("presents = %d, want the faulting iteration to finish its tick", plat.presents)
	}
}

func TestControllerStopsWithLifecycle(t *testing.T) {
	plat := newFakePlatform()
	plat.budget = 4
	c, err := newController(NewConfig(), snake.DefaultConfig(), plat, quietLogger(), steppingClock(201*time.Millisecond))
	if err != nil {
		t.Fatalf("newController: %v", err)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Frames() != 4 {
		t.Fatalf("frames = %d, want 4", c.Frames())
	}
}

func TestControllerAllocationFailure(t *testing.T) {
	plat := newFakePlatform()
	plat.w, plat.h = 0, 0
	if _, err := New(NewConfig(), snake.DefaultConfig(), plat, quietLogger()); !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation", err)
	}
	if plat.enabled {
		t.Fatal("display enabled after failed allocation")
	}

	plat.w, plat.h = 640, 480
	if _, err := New(NewConfig(), snake.DefaultConfig(), plat, quietLogger()); !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation for a mismatched buffer", err)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-backend", "term", "-tps", "8", "-seed", "7", "-debug"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Backend != "term" || cfg.TPS != 8 || cfg.Seed != 7 || !cfg.Debug {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.PollHz != 120 || cfg.Scale != 1 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}
