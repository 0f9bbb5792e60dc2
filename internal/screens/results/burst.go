package results

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/toyvox/internal/rewards"
	"github.com/abhisek/toyvox/internal/ui/theme"
)

var (
	confettiGlyphs = []string{"▪", "▴", "●", "◆", "✶"}
	sparkleGlyphs  = []string{"✦", "★", "·", "✧"}

	confettiColors = []color.Color{theme.ArcadeYellow, theme.ArcadeCyan, theme.Accent, theme.Primary, theme.Success}
	sparkleColors  = []color.Color{theme.Token, theme.Text}
)

const burstRows = 3

// renderBurst draws one frame of the celebration above the results. A big
// win gets multicolored confetti, anything else a few sparkles.
func renderBurst(tier rewards.Tier, frame, cw int) string {
	glyphs, colors, density := sparkleGlyphs, sparkleColors, 9
	if tier == rewards.TierBigWin {
		glyphs, colors, density = confettiGlyphs, confettiColors, 4
	}

	rows := make([]string, burstRows)
	for r := range rows {
		var b strings.Builder
		for c := 0; c < cw; c++ {
			// A cheap scatter that drifts a column per frame.
			h := (c*31 + r*17 + frame*7) % (density * 5)
			if h >= 5 {
				b.WriteByte(' ')
				continue
			}
			g := glyphs[(c+frame)%len(glyphs)]
			fg := colors[(c+r+frame)%len(colors)]
			b.WriteString(lipgloss.NewStyle().Foreground(fg).Render(g))
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}
