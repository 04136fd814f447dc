// Package input turns raw directional button edges into a requested heading.
package input

import (
	"errors"
	"fmt"

	"snake-u/internal/snake"
)

// Buttons is a bitmask of directional buttons.
type Buttons uint8

const (
	ButtonUp Buttons = 1 << iota
	ButtonRight
	ButtonDown
	ButtonLeft
)

// Status classifies the result of one poll.
type Status uint8

const (
	StatusSuccess Status = iota
	StatusNoData
	StatusDeviceError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNoData:
		return "no data"
	case StatusDeviceError:
		return "device error"
	}
	return "unknown"
}

// Poll is one sample from an input device. Trigger holds buttons pressed
// since the previous sample, Hold the buttons currently down.
type Poll struct {
	Status  Status
	Trigger Buttons
	Hold    Buttons
	Err     error
}

// Source is a non-blocking input device.
type Source interface {
	Poll() Poll
}

// ErrDisconnected is reported by sources whose device went away.
var ErrDisconnected = errors.New("controller disconnected")

// priority lists the buttons in the order they win when pressed together.
var priority = [...]struct {
	button  Buttons
	heading snake.Heading
}{
	{ButtonUp, snake.HeadingUp},
	{ButtonRight, snake.HeadingRight},
	{ButtonDown, snake.HeadingDown},
	{ButtonLeft, snake.HeadingLeft},
}

// HeadingFor returns the heading of the highest priority pressed edge.
func HeadingFor(trigger Buttons) (snake.Heading, bool) {
	for _, p := range priority {
		if trigger&p.button != 0 {
			return p.heading, true
		}
	}
	return snake.HeadingNone, false
}

// Mapper applies polls to a pending requested heading.
type Mapper struct {
	// Polls and Edges count successful samples and samples that changed the
	// request, for diagnostics.
	Polls int
	Edges int
}

// Apply updates *requested from p. A device error is returned wrapped and
// leaves *requested unchanged.
func (m *Mapper) Apply(p Poll, requested *snake.Heading) error {
	switch p.Status {
	case StatusSuccess:
		m.Polls++
		if h, ok := HeadingFor(p.Trigger); ok {
			*requested = h
			m.Edges++
		}
		return nil
	case StatusNoData:
		return nil
	case StatusDeviceError:
		if p.Err == nil {
			return fmt.Errorf("input device: %w", ErrDisconnected)
		}
		return fmt.Errorf("input device: %w", p.Err)
	}
	return fmt.Errorf("input device: unknown poll status %d", p.Status)
}
