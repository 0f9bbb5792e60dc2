// Package trivia is the timed quiz screen.
package trivia

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/toyvox/internal/router"
	"github.com/abhisek/toyvox/internal/screen"
	"github.com/abhisek/toyvox/internal/screens/results"
	game "github.com/abhisek/toyvox/internal/trivia"
	"github.com/abhisek/toyvox/internal/ui/components"
	"github.com/abhisek/toyvox/internal/ui/layout"
)

// SessionFactory returns a fresh game in its ready phase.
type SessionFactory func() *game.Session

// TriviaScreen runs one game. It owns the countdown and resets the game
// when it leaves the stack.
type TriviaScreen struct {
	newSession SessionFactory
	session    *game.Session

	mc       components.MultiChoice
	feedback string
	errMsg   string
}

var _ screen.Screen = (*TriviaScreen)(nil)
var _ screen.KeyHintProvider = (*TriviaScreen)(nil)
var _ screen.Closer = (*TriviaScreen)(nil)

// New creates a TriviaScreen that plays a game from factory.
func New(factory SessionFactory) *TriviaScreen {
	return &TriviaScreen{
		newSession: factory,
		session:    factory(),
	}
}

func (s *TriviaScreen) Init() tea.Cmd {
	if err := s.session.Start(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	st := s.session.State()
	s.loadQuestion(st)
	return tickCmd(st.Round)
}

func (s *TriviaScreen) Title() string {
	return "Trivia"
}

func (s *TriviaScreen) KeyHints() []layout.KeyHint {
	st := s.session.State()
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case st.Phase == game.PhasePaused:
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
			{Key: "Esc", Description: "Quit game"},
		}
	case st.Answered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "P", Description: "Pause"},
			{Key: "Esc", Description: "Quit game"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓", Description: "Move"},
			{Key: "P", Description: "Pause"},
			{Key: "Esc", Description: "Quit game"},
		}
	}
}

// Close discards an unfinished game without granting anything.
func (s *TriviaScreen) Close() {
	s.session.Reset()
}

func (s *TriviaScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *TriviaScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	res := s.session.TickFor(msg.round)
	if !res.Applied {
		return s, nil
	}
	if res.TimedOut {
		s.mc.Reveal()
		s.feedback = "Time's up!"
		return s, nil
	}
	return s, tickCmd(msg.round)
}

func (s *TriviaScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.errMsg != "" {
		return s, nil
	}

	st := s.session.State()
	switch st.Phase {
	case game.PhasePaused:
		if key == "p" && s.session.Resume() {
			return s, tickCmd(s.session.State().Round)
		}
		return s, nil
	case game.PhasePlaying:
	default:
		return s, nil
	}

	if key == "p" {
		s.session.Pause()
		return s, nil
	}

	if st.Answered {
		switch key {
		case "enter", "space", "n":
			return s.advance()
		}
		return s, nil
	}

	s.mc, _ = s.mc.Update(msg)
	if !s.mc.Submitted {
		return s, nil
	}
	res, ok := s.session.Select(s.mc.ChosenIndex)
	if !ok {
		return s, nil
	}
	if res.Correct {
		s.feedback = "Correct!"
		if res.Streak > 1 {
			s.feedback = fmt.Sprintf("Correct! Streak x%d", res.Streak)
		}
	} else {
		s.feedback = "Not quite."
	}
	return s, nil
}

func (s *TriviaScreen) advance() (screen.Screen, tea.Cmd) {
	adv, ok := s.session.Next()
	if !ok {
		return s, nil
	}
	st := s.session.State()
	if adv.Finished {
		next := results.New(st, func() screen.Screen { return New(s.newSession) })
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	s.loadQuestion(st)
	return s, tickCmd(st.Round)
}

func (s *TriviaScreen) loadQuestion(st game.State) {
	if !st.HasQuestion {
		return
	}
	q := st.Question
	s.mc = components.NewMultiChoice(q.Prompt, q.Options[:], q.Correct)
	s.feedback = ""
}
