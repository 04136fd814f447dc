// Package term presents the game in a terminal through tcell. Each terminal
// cell shows two vertically stacked game blocks using a half-block glyph.
package term

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-u/internal/input"
	"snake-u/internal/platform"
	"snake-u/internal/render"
)

const upperHalf = '▀'

// Platform is the tcell backed platform.
type Platform struct {
	screen tcell.Screen
	log    *log.Logger

	w, h  int
	block int
	poll  time.Duration

	fb      *render.Framebuffer
	enabled bool
	running bool

	events chan tcell.Event
	done   chan struct{}
	closed bool
}

func init() {
	platform.Register("term", func(opts platform.Options) (platform.Platform, error) {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("terminal screen: %w", err)
		}
		return Open(screen, opts)
	})
}

// Open initializes screen and starts forwarding its events.
func Open(screen tcell.Screen, opts platform.Options) (*Platform, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	block := opts.Block
	if block <= 0 {
		block = 20
	}
	hz := opts.PollHz
	if hz <= 0 {
		hz = 120
	}
	p := &Platform{
		screen:  screen,
		log:     opts.Log(),
		w:       opts.Width,
		h:       opts.Height,
		block:   block,
		poll:    time.Second / time.Duration(hz),
		running: true,
		events:  make(chan tcell.Event, 64),
		done:    make(chan struct{}),
	}
	screen.HideCursor()
	go p.forward()
	return p, nil
}

// forward moves events from the screen to the channel Poll drains. PollEvent
// returns nil once the screen is finalized.
func (p *Platform) forward() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		case <-p.done:
			return
		}
	}
}

// BufferSize reports the logical surface size.
func (p *Platform) BufferSize() (int, int) { return p.w, p.h }

// SetBuffer binds the framebuffer shown by Present.
func (p *Platform) SetBuffer(fb *render.Framebuffer) { p.fb = fb }

// Enable clears the terminal.
func (p *Platform) Enable() error {
	if p.fb == nil {
		return errors.New("terminal: no buffer bound")
	}
	p.screen.Clear()
	p.enabled = true
	return nil
}

// Cells returns the terminal size needed to show the whole surface.
func (p *Platform) Cells() (cols, rows int) {
	return p.w / p.block, (p.h/p.block + 1) / 2
}

// Present samples the center pixel of every block and draws two blocks per
// terminal cell, then overlays the framebuffer text.
func (p *Platform) Present() error {
	if !p.enabled || p.fb == nil {
		return nil
	}
	cols, rows := p.Cells()
	half := p.block / 2
	for cy := 0; cy < rows; cy++ {
		topY := 2*cy*p.block + half
		botY := topY + p.block
		for cx := 0; cx < cols; cx++ {
			x := cx*p.block + half
			top := p.fb.At(x, topY)
			bot := p.fb.At(x, botY)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			p.screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}

	// A terminal cell is wider than a glyph, so runs on one row are packed
	// left to right with a one-cell gap instead of keeping their pixel columns.
	next := make(map[int]int)
	for _, run := range p.fb.Texts() {
		cy := run.Row * render.TextCellH / (2 * p.block)
		cx := max(run.Col*render.TextCellW/p.block, next[cy])
		bg := p.fb.At(cx*p.block+half, 2*cy*p.block+half)
		style := tcell.StyleDefault.
			Foreground(tcell.ColorWhite).
			Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
		for _, r := range run.Text {
			if cx >= cols {
				break
			}
			p.screen.SetContent(cx, cy, r, nil, style)
			cx++
		}
		next[cy] = cx + 1
	}
	p.screen.Show()
	return nil
}

// Poll drains pending terminal events without blocking.
func (p *Platform) Poll() input.Poll {
	res := input.Poll{Status: input.StatusNoData}
	for {
		select {
		case ev := <-p.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				// Terminals report no key releases: every press, auto-repeat
				// included, is an edge and Hold only mirrors it.
				if b, ok := p.key(ev); ok {
					res.Status = input.StatusSuccess
					res.Trigger |= b
					res.Hold |= b
				}
			case *tcell.EventResize:
				p.screen.Sync()
			case *tcell.EventError:
				return input.Poll{Status: input.StatusDeviceError, Err: ev}
			}
		default:
			return res
		}
	}
}

// key maps a key event to a direction, stopping the lifecycle on quit keys.
func (p *Platform) key(ev *tcell.EventKey) (input.Buttons, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.ButtonUp, true
	case tcell.KeyRight:
		return input.ButtonRight, true
	case tcell.KeyDown:
		return input.ButtonDown, true
	case tcell.KeyLeft:
		return input.ButtonLeft, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.running = false
		return 0, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return input.ButtonUp, true
		case 'd', 'l':
			return input.ButtonRight, true
		case 's', 'j':
			return input.ButtonDown, true
		case 'a', 'h':
			return input.ButtonLeft, true
		case 'q':
			p.running = false
		}
	}
	return 0, false
}

// Running reports false once a quit key was read.
func (p *Platform) Running() bool { return p.running }

// Drive polls at the configured rate until iterate finishes or the user quits.
func (p *Platform) Drive(iterate func() (bool, error)) error {
	ticker := time.NewTicker(p.poll)
	defer ticker.Stop()
	for p.Running() {
		done, err := iterate()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		<-ticker.C
	}
	p.log.Print("quit requested")
	return nil
}

// Close restores the terminal. It is safe to call more than once.
func (p *Platform) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.done)
	p.screen.Fini()
	return nil
}
