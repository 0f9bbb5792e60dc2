package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/toyvox/internal/ui/theme"
)

// Button is a coin-op button: it shows its token price and fires on Enter
// or Space while active.
type Button struct {
	Label   string
	Cost    int // 0 hides the price tag
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates an active button.
func NewButton(label string, cost int, onPress func() tea.Cmd) Button {
	return Button{Label: label, Cost: cost, Active: true, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !b.Active || b.OnPress == nil {
		return b, nil
	}
	if k := kmsg.String(); k == "enter" || k == "space" {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	text := b.Label
	if b.Cost > 0 {
		text = fmt.Sprintf("%s  ● %d", b.Label, b.Cost)
	}
	if !b.Active {
		return theme.ButtonInactive.Render(text)
	}
	return theme.ButtonActive.Render("▸ " + text)
}
