// Package wheel implements the prize wheel: the outcome table and the
// spin state machine that charges, draws and resolves spins.
package wheel

import "github.com/abhisek/toyvox/internal/rewards"

const (
	// SpinCost is the token price of one spin.
	SpinCost = 10

	// TableSize is the number of outcomes on a built table.
	TableSize = 8

	// MaxCharacterSlots caps how many locked characters appear on the wheel.
	MaxCharacterSlots = 5
)

// Fixed token labels.
const (
	LabelJackpot  = "+50 Tokens"
	LabelBonus    = "+25 Tokens"
	LabelTryAgain = "Try Again"
	LabelFiller   = "+10 Tokens"
)

// Palette is the casino color ring characters are painted from, in order.
var Palette = [...]string{
	"#FFD700", // gold
	"#C0C0C0", // silver
	"#CD7F32", // bronze
	"#9B59B6", // purple
	"#3498DB", // blue
	"#2ECC71", // green
	"#E74C3C", // red
	"#E67E22", // orange
}

const (
	colorGold   = "#FFD700"
	colorSilver = "#C0C0C0"
	colorBronze = "#CD7F32"
	colorBlue   = "#3498DB"
)

// Kind classifies an outcome.
type Kind string

const (
	CharacterPrize Kind = "character"
	TokenPrize     Kind = "tokens"
	NoWin          Kind = "none"
)

// Outcome is one slot on the wheel.
type Outcome struct {
	Kind        Kind
	CharacterID string // CharacterPrize only
	Amount      int    // TokenPrize only
	Label       string
	Color       string
}

func characterOutcome(id, name string, i int) Outcome {
	return Outcome{
		Kind:        CharacterPrize,
		CharacterID: id,
		Label:       name,
		Color:       Palette[i%len(Palette)],
	}
}

func tokenOutcome(label, color string) Outcome {
	return Outcome{
		Kind:   TokenPrize,
		Amount: rewards.PrizeAmount(label),
		Label:  label,
		Color:  color,
	}
}

func noWinOutcome() Outcome {
	return Outcome{Kind: NoWin, Label: LabelTryAgain, Color: colorBlue}
}
