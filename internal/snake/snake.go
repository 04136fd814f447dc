package snake

import "snake-u/internal/core"

// Snake owns the head position, heading and the body history. The body is a
// fixed-capacity buffer allocated once; Length counts the head too, so the
// live segments are body[:Length-1] with index 0 right behind the head.
type Snake struct {
	Head    core.Point
	Heading Heading
	Length  int

	body []core.Point
}

// NewSnake places a snake at head with the body trailing to the left, one
// block per segment. capacity bounds the number of body segments.
func NewSnake(head core.Point, length, block, capacity int) *Snake {
	if length < 1 {
		length = 1
	}
	if capacity < length-1 {
		capacity = length - 1
	}
	s := &Snake{Head: head, Heading: HeadingNone, Length: length, body: make([]core.Point, capacity)}
	for i := 0; i < length-1; i++ {
		s.body[i] = core.Point{X: head.X - (i+1)*block, Y: head.Y}
	}
	return s
}

// Body returns the live body segments. The slice aliases internal storage.
func (s *Snake) Body() []core.Point { return s.body[:s.Length-1] }

// Capacity returns the maximum number of body segments.
func (s *Snake) Capacity() int { return len(s.body) }

// Move advances the head one block along h and shifts the body history so
// body[0] holds the previous head. It reports false, leaving the snake
// untouched, when h is None.
func (s *Snake) Move(h Heading, block int) bool {
	if h == HeadingNone {
		return false
	}
	prev := s.Head
	dx, dy := h.Delta(block)
	s.Head = s.Head.Add(dx, dy)
	s.Heading = h

	// O(length) shift; a ring buffer indexed from the head would avoid it.
	for i := s.Length - 2; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	if s.Length > 1 {
		s.body[0] = prev
	}
	return true
}

// Grow extends Length by one without writing a new body coordinate; the
// next Move fills the extra slot from the shift. It reports false when the
// body is at capacity.
func (s *Snake) Grow() bool {
	if s.Length-1 >= len(s.body) {
		return false
	}
	s.Length++
	return true
}

// BodyHit reports whether p overlaps a body segment.
func (s *Snake) BodyHit(p core.Point) bool {
	for _, seg := range s.Body() {
		if seg == p {
			return true
		}
	}
	return false
}
