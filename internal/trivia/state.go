package trivia

import (
	"github.com/abhisek/toyvox/internal/questions"
	"github.com/abhisek/toyvox/internal/rewards"
)

// State is a snapshot of a session for rendering.
type State struct {
	Phase     Phase
	SessionID string

	// Round tags the current countdown. Hosts schedule ticks with it.
	Round int

	// Number is the 1-based position of Question; Total the game length.
	Number      int
	Total       int
	Question    questions.Question
	HasQuestion bool

	TimeRemaining int
	Selected      int // -1 when nothing was picked
	Answered      bool
	TimedOut      bool

	Correct    int
	Streak     int
	BestStreak int

	// Reward is set once the game has finished.
	Reward *rewards.Reward
}

// TickResult reports the effect of one countdown tick.
type TickResult struct {
	Round         int
	TimeRemaining int
	Applied       bool
	TimedOut      bool
}

// AnswerResult reports the outcome of a selection.
type AnswerResult struct {
	Selected     int
	Correct      bool
	CorrectIndex int
	Streak       int
}

// Advance reports what Next did. When Finished is set, Reward holds the
// tokens that were granted.
type Advance struct {
	Finished bool
	Index    int // 1-based number of the question now shown
	Reward   rewards.Reward
}
