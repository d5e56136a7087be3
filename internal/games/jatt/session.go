package jatt

// Phase is the top-level state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session tracks the phase and score of one attempt.
// Points can only be earned while playing, and the only way out of
// game over is a reset.
type Session struct {
	phase Phase
	score int
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the points earned so far.
func (s *Session) Score() int { return s.score }

// Playing reports whether the session is in progress.
func (s *Session) Playing() bool { return s.phase == PhasePlaying }

// Over reports whether the session has ended.
func (s *Session) Over() bool { return s.phase == PhaseGameOver }

// Award adds points while playing. It is a no-op after game over.
func (s *Session) Award(points int) {
	if s.phase != PhasePlaying {
		return
	}
	s.score += points
}

// End moves the session to game over. It reports whether the phase changed.
func (s *Session) End() bool {
	if s.phase == PhaseGameOver {
		return false
	}
	s.phase = PhaseGameOver
	return true
}

// Reset starts a fresh attempt.
func (s *Session) Reset() {
	s.phase = PhasePlaying
	s.score = 0
}
