// Package platform declares the services the game loop calls into and keeps
// a registry of backends that provide them.
package platform

import (
	"log"
	"sort"

	"snake-u/internal/input"
	"snake-u/internal/render"
)

// Display presents a framebuffer.
type Display interface {
	// BufferSize reports the surface size the display expects.
	BufferSize() (w, h int)
	// SetBuffer binds the framebuffer that Present shows.
	SetBuffer(fb *render.Framebuffer)
	// Enable makes the display visible.
	Enable() error
	// Present shows the bound framebuffer's current contents.
	Present() error
}

// Lifecycle reports whether the host wants the program to keep running.
type Lifecycle interface {
	Running() bool
}

// Platform bundles the collaborators of one backend.
type Platform interface {
	Display
	input.Source
	Lifecycle

	// Drive runs the outer loop, calling iterate once per iteration until it
	// reports done, returns an error, or the lifecycle stops.
	Drive(iterate func() (bool, error)) error
	// Close releases everything Open acquired.
	Close() error
}

// Options configures a backend.
type Options struct {
	Title  string
	Width  int
	Height int
	Block  int
	Scale  int
	PollHz int
	Logger *log.Logger
}

// Opener constructs a platform.
type Opener func(opts Options) (Platform, error)

var backends = map[string]Opener{}

// Register adds a backend under the provided name.
func Register(name string, open Opener) {
	if name == "" || open == nil {
		return
	}
	backends[name] = open
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Opener, bool) {
	open, ok := backends[name]
	return open, ok
}

// Names lists registered backends in sorted order.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Log returns the configured logger or the standard one.
func (o Options) Log() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}
