// Package results shows the reward of a finished trivia game.
package results

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/toyvox/internal/rewards"
	"github.com/abhisek/toyvox/internal/router"
	"github.com/abhisek/toyvox/internal/screen"
	"github.com/abhisek/toyvox/internal/trivia"
	"github.com/abhisek/toyvox/internal/ui/components"
	"github.com/abhisek/toyvox/internal/ui/layout"
	"github.com/abhisek/toyvox/internal/ui/theme"
)

const (
	frameInterval = 120 * time.Millisecond
	animFrames    = 25
)

type frameMsg struct{}

// ResultsScreen displays the reward breakdown of a finished game.
type ResultsScreen struct {
	state     trivia.State
	reward    rewards.Reward
	playAgain func() screen.Screen
	frame     int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a finished game. playAgain builds the
// screen for another round; nil hides the option.
func New(st trivia.State, playAgain func() screen.Screen) *ResultsScreen {
	r := &ResultsScreen{state: st, playAgain: playAgain}
	if st.Reward != nil {
		r.reward = *st.Reward
	}
	return r
}

func (r *ResultsScreen) Init() tea.Cmd {
	return frameCmd()
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.playAgain == nil {
		return []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		r.frame++
		if r.frame < animFrames {
			return r, frameCmd()
		}
		return r, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if r.playAgain != nil {
				next := r.playAgain()
				return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		case "esc":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return r, nil
}

// Animating reports whether the celebration is still playing.
func (r *ResultsScreen) Animating() bool {
	return r.frame < animFrames
}

func (r *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string
	if r.Animating() {
		sections = append(sections, renderBurst(r.reward.Tier, r.frame, cw))
	}

	sections = append(sections, center.
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("%s %s!", r.reward.Tier.Icon(), r.reward.Tier.DisplayName())))

	sections = append(sections, center.
		Foreground(theme.Token).
		Bold(true).
		Render(fmt.Sprintf("● %d TOKENS", r.reward.Tokens)))

	sections = append(sections, center.Foreground(theme.Text).Render(r.reward.Message))
	if r.reward.Celebrate {
		sections = append(sections, center.
			Foreground(theme.Accent).
			Bold(true).
			Render("♪ TA-DA! ♪"))
	}

	sections = append(sections, renderBreakdown(r.state, r.reward, cw))
	card := components.ArcadeCard(strings.Join(sections, "\n\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderBreakdown(st trivia.State, rw rewards.Reward, cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	rows := []struct {
		name string
		val  string
	}{
		{"Correct answers", fmt.Sprintf("%d/%d", st.Correct, st.Total)},
		{"Best streak", fmt.Sprintf("%d", st.BestStreak)},
		{"Base", fmt.Sprintf("+%d", rw.BaseTokens)},
		{"Streak bonus", fmt.Sprintf("+%d", rw.StreakBonus)},
		{"Time bonus", fmt.Sprintf("+%d", rw.TimeBonus)},
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(cw-8, 40)))

	var lines []string
	lines = append(lines, divider)
	for _, row := range rows {
		name := label.Render(row.name)
		val := value.Render(row.val)
		pad := 40 - lipgloss.Width(name) - lipgloss.Width(val)
		if pad < 1 {
			pad = 1
		}
		lines = append(lines, name+strings.Repeat(" ", pad)+val)
	}
	lines = append(lines, divider)

	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
