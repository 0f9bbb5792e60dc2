package trivia

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	game "github.com/abhisek/toyvox/internal/trivia"
	"github.com/abhisek/toyvox/internal/ui/components"
	"github.com/abhisek/toyvox/internal/ui/theme"
)

func (s *TriviaScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Could not start trivia: "+s.errMsg))
	}

	st := s.session.State()
	if !st.HasQuestion {
		return ""
	}

	cw := components.ContentWidth(width)
	inner := cw - 8 // card border and padding
	var b strings.Builder

	b.WriteString(renderInfoLine(st, inner))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", inner)))
	b.WriteString("\n\n")

	timer := components.Countdown(st.TimeRemaining, s.session.QuestionTime(), inner)
	b.WriteString(timer.View())
	b.WriteString("\n\n")

	b.WriteString(s.mc.View())
	b.WriteString("\n")

	switch {
	case st.Phase == game.PhasePaused:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("⏸  PAUSED"))
	case s.feedback != "":
		style := theme.Incorrect
		if st.Answered && !st.TimedOut && st.Selected == st.Question.Correct {
			style = theme.Correct
		}
		b.WriteString(style.Render(s.feedback))
		b.WriteString("  ")
		b.WriteString(theme.Hint.Render(nextHint(st)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.ArcadeCard(b.String(), cw))
}

func renderInfoLine(st game.State, cw int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Q %d/%d  %s", st.Number, st.Total, st.Question.Category.DisplayName()))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s %d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			st.Correct,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("🔥"),
			st.Streak,
		))

	pad := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func nextHint(st game.State) string {
	if st.Number == st.Total {
		return "Enter to see your reward"
	}
	return "Enter for the next question"
}
