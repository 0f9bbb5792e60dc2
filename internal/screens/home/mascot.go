package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/toyvox/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes: full collection
	MascotBroke                            // Orange, worried: cannot afford a spin
)

const mascotIdle = `╭─────╮
│ ● ● │
│  ◡  │
│ ◆◆◆ │
╰─────╯`

const mascotCelebrating = `╭─────╮
│ ★ ★ │
│  ▽  │
│ ◆◆◆ │
╰─╥═╥─╯
  ╚═╝`

const mascotBroke = `╭─────╮
│ ● ● │ ?
│  ~  │
│ ◇◇◇ │
╰─────╯`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.ArcadeYellow
	case MascotBroke:
		art, fg = mascotBroke, theme.Accent
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}

// mascotFor picks the mascot from the player's progress.
func mascotFor(balance, unlocked, total, spinCost int) MascotVariant {
	switch {
	case total > 0 && unlocked >= total:
		return MascotCelebrating
	case balance < spinCost:
		return MascotBroke
	default:
		return MascotIdle
	}
}
