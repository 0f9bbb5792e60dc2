package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressRepo is a small key-value table holding serialized progress
// records. One record per key; writes replace the whole value.
type ProgressRepo interface {
	// Get returns the stored value, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Ledger event kinds.
const (
	LedgerAdd    = "add"
	LedgerSpend  = "spend"
	LedgerUnlock = "unlock"
	LedgerReset  = "reset"
)

// LedgerEventData captures one ledger mutation.
type LedgerEventData struct {
	Kind         string
	Amount       int
	CharacterID  string
	BalanceAfter int
}

// LedgerEventRecord is a persisted ledger event.
type LedgerEventRecord struct {
	LedgerEventData
	Sequence  int64
	Timestamp time.Time
}

// SpinEventData captures one resolved wheel spin.
type SpinEventData struct {
	SpinID        string
	Slot          int
	OutcomeKind   string
	Label         string
	CharacterID   string
	TokensAwarded int
	NewUnlock     bool
	Cost          int
}

// SpinEventRecord is a persisted spin event.
type SpinEventRecord struct {
	SpinEventData
	Sequence  int64
	Timestamp time.Time
}

// TriviaEventData captures one finished trivia game.
type TriviaEventData struct {
	SessionID     string
	Questions     int
	Correct       int
	Streak        int
	TimeRemaining int
	Tokens        int
	Tier          string
}

// TriviaEventRecord is a persisted trivia event.
type TriviaEventRecord struct {
	TriviaEventData
	Sequence  int64
	Timestamp time.Time
}

// ActivityStats aggregates the event history.
type ActivityStats struct {
	Spins            int
	CharacterWins    int
	WheelTokens      int
	TriviaGames      int
	TriviaTokens     int
	BestTriviaTokens int
	TokensSpent      int
	Resets           int
}

// EventRepo provides append and query access to the activity history.
type EventRepo interface {
	AppendLedgerEvent(ctx context.Context, data LedgerEventData) error
	AppendSpinEvent(ctx context.Context, data SpinEventData) error
	AppendTriviaEvent(ctx context.Context, data TriviaEventData) error

	QueryLedgerEvents(ctx context.Context, opts QueryOpts) ([]LedgerEventRecord, error)
	QuerySpinEvents(ctx context.Context, opts QueryOpts) ([]SpinEventRecord, error)
	QueryTriviaEvents(ctx context.Context, opts QueryOpts) ([]TriviaEventRecord, error)

	// ActivityStats summarizes the whole history.
	ActivityStats(ctx context.Context) (ActivityStats, error)
}
