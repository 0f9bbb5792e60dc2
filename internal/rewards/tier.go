package rewards

// Tier is the presentation tier of a reward. It only drives how the result
// is celebrated; it never changes the amount granted.
type Tier string

const (
	TierModest   Tier = "modest"
	TierStandard Tier = "standard"
	TierBigWin   Tier = "big_win"
)

const (
	// BigWinThreshold: totals strictly above it are a big win.
	BigWinThreshold = 100

	// ModestThreshold: totals at or below it are modest.
	ModestThreshold = 50
)

// TierFor returns the tier for a token total.
func TierFor(tokens int) Tier {
	switch {
	case tokens > BigWinThreshold:
		return TierBigWin
	case tokens <= ModestThreshold:
		return TierModest
	default:
		return TierStandard
	}
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierModest:
		return "Nice try"
	case TierStandard:
		return "Great job"
	case TierBigWin:
		return "Big win"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the tier.
func (t Tier) Icon() string {
	switch t {
	case TierModest:
		return "✨"
	case TierStandard:
		return "🪙"
	case TierBigWin:
		return "🎉"
	default:
		return "✦"
	}
}
