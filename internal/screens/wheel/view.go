package wheel

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/toyvox/internal/ui/components"
	"github.com/abhisek/toyvox/internal/ui/theme"
	prize "github.com/abhisek/toyvox/internal/wheel"
)

const cellWidth = 18

// ring maps slot indexes to cells of a 3x3 grid, clockwise from the top
// left. The middle cell holds the spin button.
var ring = [prize.TableSize][2]int{
	{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}, {1, 0},
}

func (w *WheelScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var grid [3][3]string
	for i, out := range w.table {
		if i >= len(ring) {
			break
		}
		pos := ring[i]
		grid[pos[0]][pos[1]] = renderSlot(out, i == w.highlight && (w.spinning || w.result != nil))
	}
	grid[1][1] = w.renderHub()

	rows := make([]string, 3)
	for r := range grid {
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Center, grid[r][0], grid[r][1], grid[r][2])
	}
	wheel := lipgloss.JoinVertical(lipgloss.Center, rows...)

	sections := []string{wheel}

	balance := lipgloss.NewStyle().Foreground(theme.Token).Bold(true).
		Render(fmt.Sprintf("● %d tokens", w.wallet.Balance()))
	sections = append(sections, balance)

	switch {
	case w.notice != "":
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(w.notice))
	case w.result != nil:
		style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		if w.result.NewUnlock {
			style = style.Foreground(theme.ArcadeYellow)
		}
		sections = append(sections, style.Render(resultText(*w.result)))
	}

	content := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WheelScreen) renderHub() string {
	var inner string
	if w.spinning {
		inner = w.spinner.View() + " Spinning..."
	} else {
		inner = w.button.View()
	}
	return lipgloss.NewStyle().
		Width(cellWidth).
		Height(3).
		Align(lipgloss.Center, lipgloss.Center).
		Render(inner)
}

func renderSlot(out prize.Outcome, lit bool) string {
	fg := theme.Hex(out.Color)
	style := lipgloss.NewStyle().
		Width(cellWidth-2).
		Align(lipgloss.Center).
		Foreground(fg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg)
	if lit {
		style = style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(fg).
			Border(lipgloss.ThickBorder())
	}
	return style.Render(slotLabel(out))
}

func slotLabel(out prize.Outcome) string {
	label := out.Label
	if out.Kind == prize.CharacterPrize {
		label = "★ " + label
	}
	if runes := []rune(label); lipgloss.Width(label) > cellWidth-4 && len(runes) > cellWidth-5 {
		label = string(runes[:cellWidth-5]) + "…"
	}
	return label
}
