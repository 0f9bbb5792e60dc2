package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/toyvox/internal/ui/theme"
)

const bannerArt = `
████████╗ ██████╗ ██╗   ██╗██╗   ██╗ ██████╗ ██╗  ██╗
╚══██╔══╝██╔═══██╗╚██╗ ██╔╝██║   ██║██╔═══██╗╚██╗██╔╝
   ██║   ██║   ██║ ╚████╔╝ ██║   ██║██║   ██║ ╚███╔╝
   ██║   ██║   ██║  ╚██╔╝  ╚██╗ ██╔╝██║   ██║ ██╔██╗
   ██║   ╚██████╔╝   ██║    ╚████╔╝ ╚██████╔╝██╔╝ ██╗
   ╚═╝    ╚═════╝    ╚═╝     ╚═══╝   ╚═════╝ ╚═╝  ╚═╝`

const bannerCompact = "T · O · Y · V · O · X"

// bannerMinWidth is the narrowest terminal that fits the block letters.
const bannerMinWidth = 56

// RenderBanner returns the TOYVOX banner styled in the arcade yellow.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
