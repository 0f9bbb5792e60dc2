// Package ledger owns the token balance and the set of unlocked characters.
//
// Every mutation is written through to durable storage as a full snapshot.
// Storage problems never reach callers: a broken or missing record falls
// back to defaults, and failed writes are logged and dropped.
package ledger

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/toyvox/internal/observe"
	"github.com/abhisek/toyvox/internal/store"
)

const (
	// StartingTokens is the balance of a fresh install and after a reset.
	StartingTokens = 100

	// StorageKey is the key of the progress record.
	StorageKey = "voxTokenData"

	defaultPersistTimeout = 2 * time.Second
)

// KV is the durable storage the ledger writes its snapshot to.
// store.ProgressRepo satisfies it.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Recorder receives an event for every ledger mutation.
type Recorder interface {
	AppendLedgerEvent(ctx context.Context, data store.LedgerEventData) error
}

// Ledger is the token balance plus the unlocked character set.
// It is safe for concurrent use.
type Ledger struct {
	mu       sync.Mutex
	tokens   int
	unlocked map[string]struct{}

	kv             KV
	recorder       Recorder
	log            zerolog.Logger
	persistTimeout time.Duration
	hub            observe.Hub[Snapshot]
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used for storage warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Ledger) { l.log = log }
}

// WithRecorder attaches an event recorder.
func WithRecorder(r Recorder) Option {
	return func(l *Ledger) { l.recorder = r }
}

// WithPersistTimeout bounds each storage call.
func WithPersistTimeout(d time.Duration) Option {
	return func(l *Ledger) { l.persistTimeout = d }
}

// New creates a ledger and loads the stored snapshot from kv. A nil kv
// keeps the ledger in memory only.
func New(kv KV, opts ...Option) *Ledger {
	l := &Ledger{
		tokens:         StartingTokens,
		unlocked:       make(map[string]struct{}),
		kv:             kv,
		log:            zerolog.Nop(),
		persistTimeout: defaultPersistTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.load()
	return l
}

func (l *Ledger) load() {
	if l.kv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), l.persistTimeout)
	defer cancel()

	data, err := l.kv.Get(ctx, StorageKey)
	if err != nil {
		l.log.Warn().Err(err).Msg("ledger: read progress failed, using defaults")
		return
	}
	if data == nil {
		return
	}
	snap, err := decodeSnapshot(data)
	if err != nil {
		l.log.Warn().Err(err).Msg("ledger: stored progress is malformed, using defaults")
		return
	}

	l.tokens = snap.Tokens
	for _, id := range snap.UnlockedCharacters {
		l.unlocked[id] = struct{}{}
	}
	l.log.Debug().Int("tokens", l.tokens).Int("unlocked", len(l.unlocked)).Msg("ledger: progress loaded")
}

// AddTokens increases the balance by amount. Negative amounts are ignored.
func (l *Ledger) AddTokens(amount int) {
	if amount < 0 {
		l.log.Warn().Int("amount", amount).Msg("ledger: ignoring negative add")
		return
	}
	if amount == 0 {
		return
	}

	l.mu.Lock()
	l.tokens += amount
	snap := l.snapshotLocked()
	l.persistLocked(snap)
	l.mu.Unlock()

	l.record(store.LedgerEventData{Kind: store.LedgerAdd, Amount: amount, BalanceAfter: snap.Tokens})
	l.hub.Publish(snap)
}

// SpendTokens deducts amount if the balance covers it and reports whether
// it did. On false nothing changed and the caller must not proceed with the
// paid action.
func (l *Ledger) SpendTokens(amount int) bool {
	if amount < 0 {
		return false
	}

	l.mu.Lock()
	if l.tokens < amount {
		l.mu.Unlock()
		return false
	}
	if amount == 0 {
		l.mu.Unlock()
		return true
	}
	l.tokens -= amount
	snap := l.snapshotLocked()
	l.persistLocked(snap)
	l.mu.Unlock()

	l.record(store.LedgerEventData{Kind: store.LedgerSpend, Amount: amount, BalanceAfter: snap.Tokens})
	l.hub.Publish(snap)
	return true
}

// UnlockCharacter adds id to the unlocked set. It returns true when id was
// newly added and false when it was already unlocked (or empty).
func (l *Ledger) UnlockCharacter(id string) bool {
	if id == "" {
		return false
	}

	l.mu.Lock()
	if _, ok := l.unlocked[id]; ok {
		l.mu.Unlock()
		return false
	}
	l.unlocked[id] = struct{}{}
	snap := l.snapshotLocked()
	l.persistLocked(snap)
	l.mu.Unlock()

	l.record(store.LedgerEventData{Kind: store.LedgerUnlock, CharacterID: id, BalanceAfter: snap.Tokens})
	l.hub.Publish(snap)
	return true
}

// IsCharacterUnlocked reports whether id is unlocked.
func (l *Ledger) IsCharacterUnlocked(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.unlocked[id]
	return ok
}

// ResetProgress restores the starting balance, empties the unlocked set and
// erases the stored record. Both fields change together.
func (l *Ledger) ResetProgress() {
	l.mu.Lock()
	l.tokens = StartingTokens
	l.unlocked = make(map[string]struct{})
	snap := l.snapshotLocked()
	l.eraseLocked(snap)
	l.mu.Unlock()

	l.record(store.LedgerEventData{Kind: store.LedgerReset, BalanceAfter: snap.Tokens})
	l.hub.Publish(snap)
}

// Balance returns the current token balance.
func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tokens
}

// UnlockedCharacters returns the unlocked ids, sorted.
func (l *Ledger) UnlockedCharacters() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.unlockedLocked()
}

// Snapshot returns a copy of the current state.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Subscribe registers fn to receive the snapshot after every mutation.
func (l *Ledger) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return l.hub.Subscribe(fn)
}

func (l *Ledger) unlockedLocked() []string {
	ids := make([]string, 0, len(l.unlocked))
	for id := range l.unlocked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (l *Ledger) snapshotLocked() Snapshot {
	return Snapshot{Tokens: l.tokens, UnlockedCharacters: l.unlockedLocked()}
}

// persistLocked writes the full snapshot. Callers hold l.mu so writes land
// in mutation order.
func (l *Ledger) persistLocked(snap Snapshot) {
	if l.kv == nil {
		return
	}
	data, err := encodeSnapshot(snap)
	if err != nil {
		l.log.Error().Err(err).Msg("ledger: encode snapshot")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.persistTimeout)
	defer cancel()
	if err := l.kv.Put(ctx, StorageKey, data); err != nil {
		l.log.Warn().Err(err).Int("tokens", snap.Tokens).Msg("ledger: persist progress failed")
	}
}

// eraseLocked removes the stored record. If the delete fails, the default
// snapshot is written instead so the stored state still matches memory.
func (l *Ledger) eraseLocked(snap Snapshot) {
	if l.kv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), l.persistTimeout)
	defer cancel()
	if err := l.kv.Delete(ctx, StorageKey); err != nil {
		l.log.Warn().Err(err).Msg("ledger: erase progress failed, overwriting with defaults")
		l.persistLocked(snap)
	}
}

func (l *Ledger) record(data store.LedgerEventData) {
	if l.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), l.persistTimeout)
	defer cancel()
	if err := l.recorder.AppendLedgerEvent(ctx, data); err != nil {
		l.log.Warn().Err(err).Str("kind", data.Kind).Msg("ledger: record event failed")
	}
}
