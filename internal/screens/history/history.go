// Package history lists past trivia games, wheel spins and ledger moves.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/toyvox/internal/rewards"
	"github.com/abhisek/toyvox/internal/router"
	"github.com/abhisek/toyvox/internal/screen"
	"github.com/abhisek/toyvox/internal/store"
	"github.com/abhisek/toyvox/internal/ui/layout"
	"github.com/abhisek/toyvox/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Games  []store.TriviaEventRecord
	Spins  []store.SpinEventRecord
	Ledger []store.LedgerEventRecord
	Stats  store.ActivityStats
	Err    error
}

type tab int

const (
	tabGames tab = iota
	tabSpins
	tabLedger
	tabCount
)

func (t tab) label() string {
	switch t {
	case tabSpins:
		return "Spins"
	case tabLedger:
		return "Tokens"
	default:
		return "Trivia"
	}
}

// HistoryScreen displays the recorded activity.
type HistoryScreen struct {
	eventRepo    store.EventRepo
	data         historyLoadedMsg
	tab          tab
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		opts := store.QueryOpts{Limit: pageSize}

		var msg historyLoadedMsg
		var err error
		if msg.Games, err = s.eventRepo.QueryTriviaEvents(ctx, opts); err != nil {
			return historyLoadedMsg{Err: err}
		}
		if msg.Spins, err = s.eventRepo.QuerySpinEvents(ctx, opts); err != nil {
			return historyLoadedMsg{Err: err}
		}
		if msg.Ledger, err = s.eventRepo.QueryLedgerEvents(ctx, opts); err != nil {
			return historyLoadedMsg{Err: err}
		}
		if msg.Stats, err = s.eventRepo.ActivityStats(ctx); err != nil {
			return historyLoadedMsg{Err: err}
		}
		return msg
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.data = msg
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.tab = (s.tab + 1) % tabCount
			s.scrollOffset = 0
		case "shift+tab":
			s.tab = (s.tab - 1 + tabCount) % tabCount
			s.scrollOffset = 0
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.lines())-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderStats(s.data.Stats)))
	b.WriteString("\n\n")

	var tabs []string
	for t := tabGames; t < tabCount; t++ {
		if t == s.tab {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(t.label()))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.label()))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n")
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	lines := s.lines()
	if len(lines) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(emptyText(s.tab)))
		return b.String()
	}

	maxVisible := max(height-10, 3)
	end := min(s.scrollOffset+maxVisible, len(lines))
	for _, line := range lines[s.scrollOffset:end] {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	if end < len(lines) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(lines)-end)))
	}
	return b.String()
}

func renderStats(st store.ActivityStats) string {
	return fmt.Sprintf("%s   %s   %s",
		lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).
			Render(fmt.Sprintf("%d games", st.TriviaGames)),
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
			Render(fmt.Sprintf("%d spins", st.Spins)),
		lipgloss.NewStyle().Foreground(theme.Token).Bold(true).
			Render(fmt.Sprintf("best game %d", st.BestTriviaTokens)),
	)
}

func emptyText(t tab) string {
	switch t {
	case tabSpins:
		return "No spins yet. Try the prize wheel!"
	case tabLedger:
		return "No token activity yet"
	default:
		return "No games yet. Play some trivia!"
	}
}

// lines renders the rows of the current tab, newest first.
func (s *HistoryScreen) lines() []string {
	var out []string
	switch s.tab {
	case tabGames:
		for _, g := range s.data.Games {
			tier := rewards.Tier(g.Tier)
			line := fmt.Sprintf("%s  %d/%d correct  streak %d  +%d tokens  %s %s",
				g.Timestamp.Format("Jan 02 15:04"), g.Correct, g.Questions, g.Streak, g.Tokens,
				tier.Icon(), tier.DisplayName())
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if tier == rewards.TierBigWin {
				style = style.Foreground(theme.ArcadeYellow)
			}
			out = append(out, style.Render(line))
		}
	case tabSpins:
		for _, sp := range s.data.Spins {
			out = append(out, renderSpin(sp))
		}
	case tabLedger:
		for _, e := range s.data.Ledger {
			out = append(out, renderLedger(e))
		}
	}
	return out
}

func renderSpin(sp store.SpinEventRecord) string {
	when := sp.Timestamp.Format("Jan 02 15:04")
	switch {
	case sp.NewUnlock:
		return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
			Render(fmt.Sprintf("%s  ★ unlocked %s", when, sp.Label))
	case sp.CharacterID != "":
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s  %s (already owned)", when, sp.Label))
	case sp.TokensAwarded > 0:
		return lipgloss.NewStyle().Foreground(theme.Token).
			Render(fmt.Sprintf("%s  won %d tokens", when, sp.TokensAwarded))
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s  %s", when, sp.Label))
	}
}

func renderLedger(e store.LedgerEventRecord) string {
	when := e.Timestamp.Format("Jan 02 15:04")
	var what string
	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch e.Kind {
	case store.LedgerAdd:
		what = fmt.Sprintf("+%d", e.Amount)
		style = style.Foreground(theme.Success)
	case store.LedgerSpend:
		what = fmt.Sprintf("-%d", e.Amount)
		style = style.Foreground(theme.Accent)
	case store.LedgerUnlock:
		what = "unlock " + e.CharacterID
	case store.LedgerReset:
		what = "progress reset"
		style = style.Foreground(theme.Error)
	default:
		what = e.Kind
	}
	return style.Render(fmt.Sprintf("%s  %-20s balance %d", when, what, e.BalanceAfter))
}
