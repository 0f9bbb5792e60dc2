package trivia

import "fmt"

// Phase is the session's lifecycle phase.
type Phase int

const (
	PhaseReady    Phase = iota // Not started; Start draws the questions
	PhasePlaying               // Serving questions
	PhasePaused                // Countdown frozen
	PhaseFinished              // Reward granted; only Reset leaves this phase
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
