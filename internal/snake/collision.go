package snake

// Outcome is the verdict of one collision pass.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeAte
	OutcomeSelf
	OutcomeWall
)

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool { return o == OutcomeSelf || o == OutcomeWall }

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeAte:
		return "ate"
	case OutcomeSelf:
		return "hit itself"
	case OutcomeWall:
		return "hit the wall"
	}
	return "unknown"
}

// collide checks self, boundary and food in that order and applies scoring.
func (s *State) collide() Outcome {
	head := s.Snake.Head
	if s.Snake.BodyHit(head) {
		return OutcomeSelf
	}
	if !s.interior.Contains(head) {
		return OutcomeWall
	}
	if head == s.Food {
		s.Score++
		s.Snake.Grow()
		s.Food = s.spawner.Place()
		return OutcomeAte
	}
	return OutcomeNone
}
