package render

import (
	"fmt"
	"image/color"

	"snake-u/internal/core"
	"snake-u/internal/snake"
)

// Palette holds the colors of every drawn element.
type Palette struct {
	Background color.RGBA
	Border     color.RGBA
	Head       color.RGBA
	Body       color.RGBA
	Food       color.RGBA
	Text       color.RGBA
}

// DefaultPalette returns black background, gray border, green snake, red food.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{A: 255},
		Border:     color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 255},
		Head:       color.RGBA{G: 0x80, A: 255},
		Body:       color.RGBA{G: 0x80, A: 255},
		Food:       color.RGBA{R: 0xff, A: 255},
		Text:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 255},
	}
}

// HUD text columns on row 0, inside the top border band.
const (
	hudScoreCol   = 0
	hudHeadingCol = 16
	hudFrameCol   = 40
)

type inkSetter interface {
	SetInk(c color.Color)
}

// Renderer draws game state as flat blocks.
type Renderer struct {
	Palette Palette
	Block   int
	Margin  int
	// Debug adds the heading and a frame counter to the HUD.
	Debug bool
}

// New returns a renderer for the geometry in cfg.
func New(cfg snake.Config) *Renderer {
	return &Renderer{Palette: DefaultPalette(), Block: cfg.Block, Margin: cfg.Margin}
}

// Clear fills the surface with the background color.
func (r *Renderer) Clear(s Surface) {
	s.Clear(r.Palette.Background)
	if ink, ok := s.(inkSetter); ok {
		ink.SetInk(r.Palette.Text)
	}
}

// DrawBorder paints a Margin wide band along all four edges.
func (r *Renderer) DrawBorder(s Surface) {
	b := s.Bounds()
	w, h := b.Dx(), b.Dy()
	for x := 0; x < w; x++ {
		for y := 0; y < r.Margin; y++ {
			s.PutPixel(x, y, r.Palette.Border)
			s.PutPixel(x, h-r.Margin+y, r.Palette.Border)
		}
	}
	for x := 0; x < r.Margin; x++ {
		for y := 0; y < h; y++ {
			s.PutPixel(x, y, r.Palette.Border)
			s.PutPixel(w-r.Margin+x, y, r.Palette.Border)
		}
	}
}

// DrawBlock paints one block with its top-left corner at p.
func (r *Renderer) DrawBlock(s Surface, p core.Point, c color.RGBA) {
	for x := 0; x < r.Block; x++ {
		for y := 0; y < r.Block; y++ {
			s.PutPixel(p.X+x, p.Y+y, c)
		}
	}
}

// DrawSnake paints the head and every live body segment.
func (r *Renderer) DrawSnake(s Surface, sn *snake.Snake) {
	r.DrawBlock(s, sn.Head, r.Palette.Head)
	for _, seg := range sn.Body() {
		r.DrawBlock(s, seg, r.Palette.Body)
	}
}

// DrawFood paints the food block.
func (r *Renderer) DrawFood(s Surface, p core.Point) {
	r.DrawBlock(s, p, r.Palette.Food)
}

// DrawHUD writes the score and, in debug mode, the heading and frame count.
func (r *Renderer) DrawHUD(s Surface, st *snake.State, frame int) {
	s.PutText(hudScoreCol, 0, fmt.Sprintf("score: %d", st.Score))
	if !r.Debug {
		return
	}
	if st.Snake.Heading == snake.HeadingNone {
		s.PutText(hudHeadingCol, 0, "snake is not moving")
	} else {
		s.PutText(hudHeadingCol, 0, "snake is moving "+st.Snake.Heading.String())
	}
	s.PutText(hudFrameCol, 0, fmt.Sprintf("frame %d", frame))
}

// Frame draws a complete picture of st.
func (r *Renderer) Frame(s Surface, st *snake.State, frame int) {
	r.Clear(s)
	r.DrawBorder(s)
	r.DrawSnake(s, st.Snake)
	r.DrawFood(s, st.Food)
	r.DrawHUD(s, st, frame)
}
