package wheel

import "github.com/abhisek/toyvox/internal/rng"

// Catalog is the character roster the table draws prizes from.
// *catalog.Catalog satisfies it.
type Catalog interface {
	IDs() []string
	Name(id string) string
}

// BuildTable lays out a fresh, shuffled wheel. Up to MaxCharacterSlots
// locked characters are taken in catalog order, followed by the jackpot,
// the bonus and one Try Again slot. The rest of the table is filled with
// +10 slots. A nil src uses rng.Default.
func BuildTable(cat Catalog, isUnlocked func(id string) bool, src rng.Source) []Outcome {
	table := make([]Outcome, 0, TableSize)

	for _, id := range cat.IDs() {
		if len(table) == MaxCharacterSlots {
			break
		}
		if isUnlocked != nil && isUnlocked(id) {
			continue
		}
		table = append(table, characterOutcome(id, cat.Name(id), len(table)))
	}

	table = append(table,
		tokenOutcome(LabelJackpot, colorGold),
		tokenOutcome(LabelBonus, colorSilver),
		noWinOutcome(),
	)
	for len(table) < TableSize {
		table = append(table, tokenOutcome(LabelFiller, colorBronze))
	}

	rng.Shuffle(table, src)
	return table
}
