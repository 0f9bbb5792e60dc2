package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/toyvox/internal/screens/welcome"
	"github.com/abhisek/toyvox/internal/ui/theme"
)

// renderTitle returns the banner, compact on small terminals.
func renderTitle(cw int, compact bool) string {
	width := cw
	if compact {
		width = 0
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(width))
}

// renderStatsBar renders tokens and collection progress in a bordered box.
func renderStatsBar(tokens, unlocked, total, cw int, compact bool) string {
	tokenStyle := lipgloss.NewStyle().Foreground(theme.Token).Bold(true)
	starStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			tokenStyle.Render(fmt.Sprintf("●%d", tokens)),
			starStyle.Render(fmt.Sprintf("★%d/%d", unlocked, total)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			tokenStyle.Render(fmt.Sprintf("● %d TOKENS", tokens)),
			starStyle.Render(fmt.Sprintf("★ %d/%d COLLECTED", unlocked, total)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderNote renders a one-line message under the menu.
func renderNote(text string, fg lipgloss.Style, cw int) string {
	return fg.Width(cw).Align(lipgloss.Center).Render(text)
}
