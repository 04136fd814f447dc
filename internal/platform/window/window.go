//go:build ebiten

// Package window presents the game in an ebiten window and reads the first
// standard gamepad, falling back to the arrow keys while no pad is attached.
package window

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snake-u/internal/input"
	"snake-u/internal/platform"
	"snake-u/internal/render"
)

// Platform adapts the game loop to the ebiten.Game interface. ebiten owns the
// outer loop; every Update is one iteration.
type Platform struct {
	log *log.Logger

	w, h  int
	scale int
	title string

	fb      *render.Framebuffer
	img     *ebiten.Image
	enabled bool
	dirty   bool
	running bool

	pad     ebiten.GamepadID
	hasPad  bool
	iterate func() (bool, error)
}

func init() {
	platform.Register("window", func(opts platform.Options) (platform.Platform, error) {
		return Open(opts)
	})
}

// Open configures the window. Nothing is shown until Drive starts ebiten.
func Open(opts platform.Options) (*Platform, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d is empty", opts.Width, opts.Height)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Platform{
		log:     opts.Log(),
		w:       opts.Width,
		h:       opts.Height,
		scale:   scale,
		title:   opts.Title,
		running: true,
	}, nil
}

// BufferSize reports the logical screen size.
func (p *Platform) BufferSize() (int, int) { return p.w, p.h }

// SetBuffer binds the framebuffer shown by Draw.
func (p *Platform) SetBuffer(fb *render.Framebuffer) { p.fb = fb }

// Enable sets up the window. The TV output is the only one enabled.
func (p *Platform) Enable() error {
	if p.fb == nil {
		return errors.New("window: no buffer bound")
	}
	ebiten.SetWindowTitle(p.title)
	ebiten.SetWindowSize(p.w*p.scale, p.h*p.scale)
	p.enabled = true
	return nil
}

// Present marks the framebuffer for upload on the next Draw.
func (p *Platform) Present() error {
	if !p.enabled {
		return nil
	}
	p.dirty = true
	return nil
}

// Poll samples the bound gamepad, or the keyboard when none is bound.
func (p *Platform) Poll() input.Poll {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		p.running = false
	}

	if p.hasPad && inpututil.IsGamepadJustDisconnected(p.pad) {
		return input.Poll{Status: input.StatusDeviceError, Err: fmt.Errorf("gamepad %d: %w", p.pad, input.ErrDisconnected)}
	}
	if !p.hasPad {
		for _, id := range inpututil.AppendJustConnectedGamepadIDs(nil) {
			if ebiten.IsStandardGamepadLayoutAvailable(id) {
				p.pad, p.hasPad = id, true
				p.log.Printf("using gamepad %d (%s)", id, ebiten.GamepadName(id))
				break
			}
		}
	}
	if p.hasPad {
		return p.pollPad()
	}
	return pollKeys()
}

var padButtons = [...]struct {
	button ebiten.StandardGamepadButton
	dir    input.Buttons
}{
	{ebiten.StandardGamepadButtonLeftTop, input.ButtonUp},
	{ebiten.StandardGamepadButtonLeftRight, input.ButtonRight},
	{ebiten.StandardGamepadButtonLeftBottom, input.ButtonDown},
	{ebiten.StandardGamepadButtonLeftLeft, input.ButtonLeft},
}

func (p *Platform) pollPad() input.Poll {
	res := input.Poll{Status: input.StatusSuccess}
	for _, b := range padButtons {
		if inpututil.IsStandardGamepadButtonJustPressed(p.pad, b.button) {
			res.Trigger |= b.dir
		}
		if ebiten.IsStandardGamepadButtonPressed(p.pad, b.button) {
			res.Hold |= b.dir
		}
	}
	return res
}

var arrowKeys = [...]struct {
	key ebiten.Key
	dir input.Buttons
}{
	{ebiten.KeyArrowUp, input.ButtonUp},
	{ebiten.KeyArrowRight, input.ButtonRight},
	{ebiten.KeyArrowDown, input.ButtonDown},
	{ebiten.KeyArrowLeft, input.ButtonLeft},
}

func pollKeys() input.Poll {
	res := input.Poll{Status: input.StatusSuccess}
	for _, k := range arrowKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			res.Trigger |= k.dir
		}
		if ebiten.IsKeyPressed(k.key) {
			res.Hold |= k.dir
		}
	}
	return res
}

// Running reports false once the player asked to quit.
func (p *Platform) Running() bool { return p.running }

// Drive hands control to ebiten until the game loop finishes.
func (p *Platform) Drive(iterate func() (bool, error)) error {
	p.iterate = iterate
	if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update runs one outer loop iteration.
func (p *Platform) Update() error {
	if !p.Running() || p.iterate == nil {
		return ebiten.Termination
	}
	done, err := p.iterate()
	if err != nil {
		return err
	}
	if done || !p.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw uploads the framebuffer when it changed and blits it.
func (p *Platform) Draw(screen *ebiten.Image) {
	if p.fb == nil {
		return
	}
	if p.img == nil {
		p.img = ebiten.NewImage(p.w, p.h)
		p.dirty = true
	}
	if p.dirty {
		p.img.WritePixels(p.fb.Image().Pix)
		p.dirty = false
	}
	screen.DrawImage(p.img, nil)
}

// Layout returns the logical screen size.
func (p *Platform) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.w, p.h
}

// Close frees the GPU image.
func (p *Platform) Close() error {
	if p.img != nil {
		p.img.Dispose()
		p.img = nil
	}
	p.fb = nil
	return nil
}
