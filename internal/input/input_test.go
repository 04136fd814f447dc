package input

import (
	"errors"
	"testing"

	"snake-u/internal/snake"
)

func TestHeadingPriority(t *testing.T) {
	cases := []struct {
		trigger Buttons
		want    snake.Heading
		ok      bool
	}{
		{0, snake.HeadingNone, false},
		{ButtonLeft, snake.HeadingLeft, true},
		{ButtonDown | ButtonLeft, snake.HeadingDown, true},
		{ButtonRight | ButtonDown | ButtonLeft, snake.HeadingRight, true},
		{ButtonUp | ButtonRight | ButtonDown | ButtonLeft, snake.HeadingUp, true},
	}
	for _, tc := range cases {
		got, ok := HeadingFor(tc.trigger)
		if got != tc.want || ok != tc.ok {
			t.Errorf("HeadingFor(%04b) = %v,%v want %v,%v", tc.trigger, got, ok, tc.want, tc.ok)
		}
	}
}

func TestApplySuccessAndNoData(t *testing.T) {
	var m Mapper
	req := snake.HeadingRight

	if err := m.Apply(Poll{Status: StatusNoData}, &req); err != nil || req != snake.HeadingRight {
		t.Fatalf("no data changed request to %v (err %v)", req, err)
	}
	if err := m.Apply(Poll{Status: StatusSuccess, Hold: ButtonUp}, &req); err != nil || req != snake.HeadingRight {
		t.Fatalf("held button without edge changed request to %v (err %v)", req, err)
	}
	if err := m.Apply(Poll{Status: StatusSuccess, Trigger: ButtonDown}, &req); err != nil || req != snake.HeadingDown {
		t.Fatalf("edge did not set request: %v (err %v)", req, err)
	}
	if m.Polls != 2 || m.Edges != 1 {
		t.Fatalf("polls %d edges %d", m.Polls, m.Edges)
	}
}

func TestApplyDeviceError(t *testing.T) {
	var m Mapper
	req := snake.HeadingUp

	err := m.Apply(Poll{Status: StatusDeviceError, Trigger: ButtonLeft}, &req)
	if !errors.Is(err, ErrDisconnected) {
		t.Fatalf("err = %v, want ErrDisconnected", err)
	}
	if req != snake.HeadingUp {
		t.Fatalf("device error changed request to %v", req)
	}

	cause := errors.New("bus reset")
	if err := m.Apply(Poll{Status: StatusDeviceError, Err: cause}, &req); !errors.Is(err, cause) {
		t.Fatalf("err = %v, want wrapped cause", err)
	}
}
