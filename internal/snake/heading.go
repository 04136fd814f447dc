package snake

// Heading is the axis-aligned direction the snake is committed to.
type Heading uint8

const (
	HeadingUp Heading = iota
	HeadingRight
	HeadingDown
	HeadingLeft
	HeadingNone
)

// String returns a lowercase name for the heading.
func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingRight:
		return "right"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingNone:
		return "none"
	}
	return "unknown"
}

// Opposite returns the reverse heading. None is its own opposite.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingRight:
		return HeadingLeft
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	}
	return HeadingNone
}

// Delta returns the head displacement for one move of size block.
func (h Heading) Delta(block int) (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -block
	case HeadingRight:
		return block, 0
	case HeadingDown:
		return 0, block
	case HeadingLeft:
		return -block, 0
	}
	return 0, 0
}

// Resolve applies the anti-reversal rule: a request that reverses prev is
// replaced by prev. Before the first move (prev is None) a Left request is
// also refused, since the body trails to the left of the head.
func Resolve(prev, requested Heading) Heading {
	switch prev {
	case HeadingUp, HeadingRight, HeadingDown, HeadingLeft:
		if requested == prev.Opposite() {
			return prev
		}
	case HeadingNone:
		if requested == HeadingLeft {
			return prev
		}
	}
	return requested
}
