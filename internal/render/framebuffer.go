package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text grid cell size in pixels, matching basicfont.Face7x13.
const (
	TextCellW = 7
	TextCellH = 13
)

// maxPixels caps framebuffer allocations.
const maxPixels = 8192 * 8192

// Surface is the pixel target the renderer draws on.
type Surface interface {
	Bounds() image.Rectangle
	Clear(c color.RGBA)
	PutPixel(x, y int, c color.RGBA)
	PutText(col, row int, s string)
}

// TextRun records one PutText call so text-cell backends can redraw it.
type TextRun struct {
	Col, Row int
	Text     string
}

// Framebuffer is a software RGBA surface.
type Framebuffer struct {
	img   *image.RGBA
	ink   *image.Uniform
	face  font.Face
	texts []TextRun
}

// NewFramebuffer allocates a w*h surface.
func NewFramebuffer(w, h int) (*Framebuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("framebuffer size %dx%d is empty", w, h)
	}
	if w*h > maxPixels {
		return nil, fmt.Errorf("framebuffer size %dx%d exceeds %d pixels", w, h, maxPixels)
	}
	return &Framebuffer{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		ink:  image.NewUniform(color.White),
		face: basicfont.Face7x13,
	}, nil
}

// Bounds returns the surface rectangle.
func (fb *Framebuffer) Bounds() image.Rectangle { return fb.img.Rect }

// Image exposes the backing image. Pix is tightly packed row-major RGBA.
func (fb *Framebuffer) Image() *image.RGBA { return fb.img }

// SetInk changes the text color.
func (fb *Framebuffer) SetInk(c color.Color) { fb.ink = image.NewUniform(c) }

// Clear fills the surface with c and forgets previous text.
func (fb *Framebuffer) Clear(c color.RGBA) {
	fillRGBA(fb.img.Pix, c)
	fb.texts = fb.texts[:0]
}

// PutPixel sets one pixel. Writes outside the surface are dropped.
func (fb *Framebuffer) PutPixel(x, y int, c color.RGBA) {
	fb.img.SetRGBA(x, y, c)
}

// At returns the pixel at (x, y).
func (fb *Framebuffer) At(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(fb.img.Rect) {
		return color.RGBA{}
	}
	return rgbaAt(fb.img.Pix, y*fb.img.Rect.Dx()+x)
}

// PutText draws s with its top-left corner at text cell (col, row).
func (fb *Framebuffer) PutText(col, row int, s string) {
	d := font.Drawer{
		Dst:  fb.img,
		Src:  fb.ink,
		Face: fb.face,
		Dot:  fixed.P(col*TextCellW, row*TextCellH+fb.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
	fb.texts = append(fb.texts, TextRun{Col: col, Row: row, Text: s})
}

// Texts returns the text drawn since the last Clear.
func (fb *Framebuffer) Texts() []TextRun { return fb.texts }
