// Package rewards converts game outcomes into token amounts. Everything
// here is pure: callers inject any randomness.
package rewards

import (
	"fmt"
	"math"
)

const (
	// BaseReward is the token value of one correct answer.
	BaseReward = 10

	// StreakMultiplier scales the final streak into a bonus.
	StreakMultiplier = 0.5

	// TimeBonusMultiplier scales the seconds left on the last question.
	TimeBonusMultiplier = 0.1

	// CelebrationThreshold: totals strictly above it get the celebration cue.
	CelebrationThreshold = 50
)

// Reward is the result of a finished trivia game.
type Reward struct {
	Tokens          int
	BaseTokens      int
	StreakBonus     int
	TimeBonus       int
	BonusMultiplier float64
	Tier            Tier
	Celebrate       bool
	Message         string
}

// Trivia computes the reward for a finished game:
//
//	tokens = correct*10 + floor(streak*0.5*10) + floor(timeRemaining*0.1*10)
//
// timeRemaining is the countdown on the last question when it was resolved,
// not a sum across questions. Negative inputs count as zero.
func Trivia(correct, streak, timeRemaining int) Reward {
	correct = max(correct, 0)
	streak = max(streak, 0)
	timeRemaining = max(timeRemaining, 0)

	base := correct * BaseReward
	// StreakMultiplier*BaseReward = 5 and TimeBonusMultiplier*BaseReward = 1;
	// the floors are computed on integers to stay exact.
	streakBonus := floorScaled(streak, StreakMultiplier*BaseReward)
	timeBonus := floorScaled(timeRemaining, TimeBonusMultiplier*BaseReward)
	total := base + streakBonus + timeBonus

	return Reward{
		Tokens:          total,
		BaseTokens:      base,
		StreakBonus:     streakBonus,
		TimeBonus:       timeBonus,
		BonusMultiplier: 1 + float64(streak)*0.1,
		Tier:            TierFor(total),
		Celebrate:       total > CelebrationThreshold,
		Message:         fmt.Sprintf("Great job! You earned %d tokens!", total),
	}
}

// floorScaled returns floor(n*factor). factor is rounded to tenths first so
// binary float error (0.1*10 = 1.0000000000000002) cannot leak into the floor.
func floorScaled(n int, factor float64) int {
	tenths := int(math.Round(factor * 10))
	return (n * tenths) / 10
}
