//go:build ebiten

package window

import (
	"io"
	"log"
	"testing"

	"snake-u/internal/platform"
	"snake-u/internal/render"
)

func openTest(t *testing.T) *Platform {
	t.Helper()
	p, err := Open(platform.Options{
		Title:  "test",
		Width:  1280,
		Height: 720,
		Logger: log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return p
}

func TestOpenRejectsEmptySize(t *testing.T) {
	if _, err := Open(platform.Options{Width: 0, Height: 720}); err == nil {
		t.Fatal("zero width accepted")
	}
}

func TestOpenReportsLogicalSize(t *testing.T) {
	p := openTest(t)
	if w, h := p.BufferSize(); w != 1280 || h != 720 {
		t.Fatalf("buffer %dx%d", w, h)
	}
	if w, h := p.Layout(2560, 1440); w != 1280 || h != 720 {
		t.Fatalf("layout %dx%d", w, h)
	}
	if p.scale != 1 || !p.Running() {
		t.Fatalf("scale %d running %v", p.scale, p.Running())
	}
}

func TestPresentBeforeEnable(t *testing.T) {
	p := openTest(t)
	if err := p.Enable(); err == nil {
		t.Fatal("enable without a buffer succeeded")
	}
	fb, err := render.NewFramebuffer(1280, 720)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	p.SetBuffer(fb)
	if err := p.Present(); err != nil || p.dirty {
		t.Fatalf("present before enable: err %v dirty %v", err, p.dirty)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if p.fb != nil {
		t.Fatal("Close kept the framebuffer")
	}
}

func TestUpdateWithoutDriveTerminates(t *testing.T) {
	p := openTest(t)
	if err := p.Update(); err == nil {
		t.Fatal("Update without a loop body kept running")
	}
}
