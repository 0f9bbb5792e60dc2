// Package home is the main menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/toyvox/internal/arcade"
	"github.com/abhisek/toyvox/internal/router"
	"github.com/abhisek/toyvox/internal/screen"
	"github.com/abhisek/toyvox/internal/screens/collection"
	"github.com/abhisek/toyvox/internal/screens/history"
	triviascreen "github.com/abhisek/toyvox/internal/screens/trivia"
	wheelscreen "github.com/abhisek/toyvox/internal/screens/wheel"
	"github.com/abhisek/toyvox/internal/trivia"
	"github.com/abhisek/toyvox/internal/ui/components"
	"github.com/abhisek/toyvox/internal/ui/layout"
	"github.com/abhisek/toyvox/internal/ui/theme"
	"github.com/abhisek/toyvox/internal/wheel"
)

const (
	itemTrivia = iota
	itemWheel
	itemCollection
	itemHistory
	itemReset
	itemExit
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	svc        *arcade.Services
	menu       components.Menu
	confirming bool
	note       string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *arcade.Services) *HomeScreen {
	h := &HomeScreen{svc: svc}

	items := make([]components.MenuItem, itemExit+1)
	items[itemTrivia] = components.MenuItem{Label: "TRIVIA", Action: func() tea.Cmd {
		s := triviascreen.New(func() *trivia.Session { return svc.NewTriviaSession() })
		return push(s)
	}}
	items[itemWheel] = components.MenuItem{Label: "PRIZE WHEEL", Action: func() tea.Cmd {
		return push(wheelscreen.New(svc.Wheel, svc.Ledger))
	}}
	items[itemCollection] = components.MenuItem{Label: "COLLECTION", Action: func() tea.Cmd {
		c := collection.New(svc.Catalog, svc.Ledger).WithCharacterTrivia(func(id string) screen.Screen {
			if !svc.HasCharacterTrivia(id) {
				return nil
			}
			return triviascreen.New(func() *trivia.Session {
				s, _ := svc.NewCharacterTriviaSession(id)
				return s
			})
		})
		return push(c)
	}}
	items[itemHistory] = components.MenuItem{
		Label:    "HISTORY",
		Disabled: svc.Events == nil,
		Action: func() tea.Cmd {
			return push(history.New(svc.Events))
		},
	}
	items[itemReset] = components.MenuItem{Label: "RESET PROGRESS", Action: func() tea.Cmd {
		h.confirming = true
		h.note = ""
		return nil
	}}
	items[itemExit] = components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
		return tea.Quit
	}}

	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset everything"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.confirming {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok {
			h.confirming = false
			if kmsg.String() == "y" {
				h.svc.Ledger.ResetProgress()
				h.svc.Wheel.Rebuild()
				h.note = "Progress reset. Fresh start!"
				h.svc.Log.Info().Msg("home: progress reset by player")
			}
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and gaps.
	termHeight := height + 8
	compact := termHeight < layout.CompactHeightThreshold || width < layout.CompactWidthThreshold

	cw := components.ContentWidth(width)
	p := h.svc.Progress()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(p.Tokens, p.Unlocked, p.Total, wheel.SpinCost), cw))
	}
	sections = append(sections, renderStatsBar(p.Tokens, p.Unlocked, p.Total, cw, compact))
	sections = append(sections, components.ArcadeMenu(h.menu.Labels(), h.menu.Selected, h.menu.DisabledSet(), cw))

	switch {
	case h.confirming:
		sections = append(sections, renderNote("Reset all tokens and characters? (y/n)",
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true), cw))
	case h.note != "":
		sections = append(sections, renderNote(h.note, lipgloss.NewStyle().Foreground(theme.Success), cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
