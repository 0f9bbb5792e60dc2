// Package collection shows which characters have been unlocked.
package collection

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/toyvox/internal/catalog"
	"github.com/abhisek/toyvox/internal/router"
	"github.com/abhisek/toyvox/internal/screen"
	"github.com/abhisek/toyvox/internal/ui/components"
	"github.com/abhisek/toyvox/internal/ui/layout"
	"github.com/abhisek/toyvox/internal/ui/theme"
)

// Unlocks answers whether a character is owned. *ledger.Ledger satisfies it.
type Unlocks interface {
	IsCharacterUnlocked(id string) bool
}

type tab int

const (
	tabAll tab = iota
	tabUnlocked
	tabLocked
	tabCount
)

func (t tab) label() string {
	switch t {
	case tabUnlocked:
		return "Unlocked"
	case tabLocked:
		return "Locked"
	default:
		return "All"
	}
}

// CharacterTrivia builds a trivia screen about one character, or returns
// nil when there are no questions about them.
type CharacterTrivia func(characterID string) screen.Screen

// CollectionScreen lists the catalog with owned characters highlighted.
// The top visible row is the selected one.
type CollectionScreen struct {
	cat          *catalog.Catalog
	unlocks      Unlocks
	tab          tab
	filter       components.TextInput
	scrollOffset int
	trivia       CharacterTrivia
	note         string
}

var _ screen.Screen = (*CollectionScreen)(nil)
var _ screen.KeyHintProvider = (*CollectionScreen)(nil)

// New creates a new CollectionScreen.
func New(cat *catalog.Catalog, unlocks Unlocks) *CollectionScreen {
	return &CollectionScreen{
		cat:     cat,
		unlocks: unlocks,
		filter:  components.NewTextInput("filter by name", 32),
	}
}

// WithCharacterTrivia enables the "t" key on owned characters.
func (s *CollectionScreen) WithCharacterTrivia(fn CharacterTrivia) *CollectionScreen {
	s.trivia = fn
	return s
}

func (s *CollectionScreen) Init() tea.Cmd {
	return nil
}

func (s *CollectionScreen) Title() string {
	return "Collection"
}

func (s *CollectionScreen) KeyHints() []layout.KeyHint {
	if s.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch"},
		{Key: "/", Description: "Filter"},
		{Key: "↑↓", Description: "Scroll"},
	}
	if s.trivia != nil {
		hints = append(hints, layout.KeyHint{Key: "t", Description: "Trivia"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *CollectionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.filter.Focused() {
			var cmd tea.Cmd
			s.filter, cmd = s.filter.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.filter.Focused() {
		switch kmsg.String() {
		case "esc":
			s.filter.Reset()
			s.filter.Blur()
		case "enter":
			s.filter.Blur()
		default:
			var cmd tea.Cmd
			s.filter, cmd = s.filter.Update(msg)
			s.scrollOffset = 0
			return s, cmd
		}
		return s, nil
	}

	s.note = ""
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "t":
		return s, s.launchTrivia()
	case "/":
		return s, s.filter.Focus()
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
		if s.scrollOffset < len(s.visible())-1 {
			s.scrollOffset++
		}
	}
	return s, nil
}

// launchTrivia pushes a trivia game about the selected character.
func (s *CollectionScreen) launchTrivia() tea.Cmd {
	c, ok := s.selected()
	if s.trivia == nil || !ok {
		return nil
	}
	if !s.unlocks.IsCharacterUnlocked(c.ID) {
		s.note = "Unlock this character to play their trivia."
		return nil
	}
	next := s.trivia(c.ID)
	if next == nil {
		s.note = fmt.Sprintf("No trivia about %s yet.", c.Name)
		return nil
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *CollectionScreen) selected() (catalog.Character, bool) {
	chars := s.visible()
	if s.scrollOffset >= len(chars) {
		return catalog.Character{}, false
	}
	return chars[s.scrollOffset], true
}

func (s *CollectionScreen) View(width, height int) string {
	var b strings.Builder

	owned := s.ownedCount()
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("\n★ %d / %d collected\n", owned, s.cat.Len())))
	b.WriteString("\n")

	var tabs []string
	for t := tabAll; t < tabCount; t++ {
		label := fmt.Sprintf("%s (%d)", t.label(), s.countFor(t))
		if t == s.tab {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n")

	if s.filter.Focused() || s.filter.Value() != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.filter.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	chars := s.visible()
	if len(chars) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(emptyText(s.tab)))
		return b.String()
	}

	maxVisible := max(height-12, 3)
	start := s.scrollOffset
	end := min(start+maxVisible, len(chars))

	for i, c := range chars[start:end] {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderCharacter(c, s.unlocks.IsCharacterUnlocked(c.ID), i == 0)))
		b.WriteString("\n")
	}

	if end < len(chars) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(chars)-end)))
	}
	if s.note != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.ArcadeYellow).
			Render(s.note))
	}
	return b.String()
}

func renderCharacter(c catalog.Character, owned, cursor bool) string {
	prefix := "  "
	if cursor {
		prefix = "▸ "
	}
	if !owned {
		return theme.Locked.Render(fmt.Sprintf("%s🔒 %-22s %-18s", prefix, "???", c.Franchise))
	}
	name := lipgloss.NewStyle().Foreground(theme.Hex(c.Color)).Bold(true).Render(fmt.Sprintf("%-22s", c.Name))
	franchise := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-18s", c.Franchise))
	return prefix + "★ " + name + " " + franchise
}

func emptyText(t tab) string {
	switch t {
	case tabUnlocked:
		return "Nothing collected yet. Spin the prize wheel!"
	case tabLocked:
		return "You've collected everyone!"
	default:
		return "No characters match"
	}
}

// visible returns the characters on the current tab that match the filter.
// Locked characters only match on franchise since their names stay hidden.
func (s *CollectionScreen) visible() []catalog.Character {
	q := strings.ToLower(strings.TrimSpace(s.filter.Value()))
	var out []catalog.Character
	for _, c := range s.cat.All() {
		owned := s.unlocks.IsCharacterUnlocked(c.ID)
		if !tabIncludes(s.tab, owned) {
			continue
		}
		if q != "" && !matches(c, owned, q) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c catalog.Character, owned bool, q string) bool {
	if strings.Contains(strings.ToLower(c.Franchise), q) {
		return true
	}
	return owned && strings.Contains(strings.ToLower(c.Name), q)
}

func tabIncludes(t tab, owned bool) bool {
	switch t {
	case tabUnlocked:
		return owned
	case tabLocked:
		return !owned
	default:
		return true
	}
}

func (s *CollectionScreen) countFor(t tab) int {
	n := 0
	for _, id := range s.cat.IDs() {
		if tabIncludes(t, s.unlocks.IsCharacterUnlocked(id)) {
			n++
		}
	}
	return n
}

func (s *CollectionScreen) ownedCount() int {
	return s.countFor(tabUnlocked)
}
