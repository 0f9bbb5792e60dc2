package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriviaPerfectGame(t *testing.T) {
	r := Trivia(10, 10, 20)

	assert.Equal(t, 100, r.BaseTokens)
	assert.Equal(t, 50, r.StreakBonus)
	assert.Equal(t, 20, r.TimeBonus)
	assert.Equal(t, 170, r.Tokens)
	assert.Equal(t, TierBigWin, r.Tier)
	assert.True(t, r.Celebrate)
	assert.InDelta(t, 2.0, r.BonusMultiplier, 1e-9)
	assert.Equal(t, "Great job! You earned 170 tokens!", r.Message)
}

func TestTriviaFormula(t *testing.T) {
	tests := []struct {
		name                     string
		correct, streak, timeRem int
		want                     int
		tier                     Tier
	}{
		{"nothing", 0, 0, 0, 0, TierModest},
		{"odd streak floors", 1, 1, 0, 15, TierModest},
		{"time only", 0, 0, 7, 7, TierModest},
		{"exactly fifty is modest", 4, 2, 0, 50, TierModest},
		{"fifty one is standard", 4, 2, 1, 51, TierStandard},
		{"exactly hundred is standard", 8, 4, 0, 100, TierStandard},
		{"hundred one is big", 8, 4, 1, 101, TierBigWin},
		{"streak three", 5, 3, 19, 50 + 15 + 19, TierStandard},
		{"negative inputs", -3, -1, -5, 0, TierModest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Trivia(tt.correct, tt.streak, tt.timeRem)
			assert.Equal(t, tt.want, r.Tokens)
			assert.Equal(t, tt.tier, r.Tier)
			assert.Equal(t, r.BaseTokens+r.StreakBonus+r.TimeBonus, r.Tokens)
		})
	}
}

func TestTriviaIsDeterministic(t *testing.T) {
	assert.Equal(t, Trivia(6, 2, 9), Trivia(6, 2, 9))
}

func TestCelebrateThreshold(t *testing.T) {
	assert.False(t, Trivia(5, 0, 0).Celebrate)
	assert.True(t, Trivia(5, 0, 1).Celebrate)
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierModest, TierFor(-1))
	assert.Equal(t, TierModest, TierFor(50))
	assert.Equal(t, TierStandard, TierFor(51))
	assert.Equal(t, TierStandard, TierFor(100))
	assert.Equal(t, TierBigWin, TierFor(101))
}

func TestPrizeAmount(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"+50 Tokens", 50},
		{"+25 Tokens", 25},
		{"+10 Tokens", 10},
		{"Try Again", 0},
		{"", 0},
		{"Tokens +7 or 9", 7},
		{"+0 Tokens", 0},
		{"+99999999999999999999 Tokens", 0},
		{"ten tokens", 0},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, PrizeAmount(tt.label))
		})
	}
}

func TestTierDisplay(t *testing.T) {
	for _, tier := range []Tier{TierModest, TierStandard, TierBigWin} {
		assert.NotEmpty(t, tier.DisplayName())
		assert.NotEqual(t, "✦", tier.Icon())
	}
	assert.Equal(t, "odd", Tier("odd").DisplayName())
}
