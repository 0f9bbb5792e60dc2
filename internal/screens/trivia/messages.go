package trivia

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// tickMsg is delivered once a second for the countdown of one round.
type tickMsg struct {
	round int
}

// tickInterval is the countdown resolution.
const tickInterval = time.Second

func tickCmd(round int) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{round: round}
	})
}
