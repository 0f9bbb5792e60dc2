package wheel

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/toyvox/internal/rng"
	"github.com/abhisek/toyvox/internal/store"
)

// State is the selector's spin state.
type State int

const (
	Idle State = iota
	Spinning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Wallet is the balance and unlock store a spin is paid from and paid
// into. *ledger.Ledger satisfies it.
type Wallet interface {
	SpendTokens(amount int) bool
	AddTokens(amount int)
	UnlockCharacter(id string) bool
	IsCharacterUnlocked(id string) bool
	UnlockedCharacters() []string
}

// Recorder receives one event per resolved spin.
type Recorder interface {
	AppendSpinEvent(ctx context.Context, data store.SpinEventData) error
}

// SpinTicket identifies an in-flight spin. The host hands it back to Stop
// once its animation has finished.
type SpinTicket struct {
	ID   string
	Slot int
}

// Resolution is the settled result of a spin.
type Resolution struct {
	Ticket        SpinTicket
	Outcome       Outcome
	NewUnlock     bool
	Duplicate     bool
	TokensAwarded int
}

// Selector is the wheel state machine. Spin charges SpinCost and picks a
// slot; Stop applies the prize and returns to Idle.
type Selector struct {
	mu       sync.Mutex
	wallet   Wallet
	cat      Catalog
	src      rng.Source
	recorder Recorder
	log      zerolog.Logger

	table    []Outcome
	builtFor string
	state    State
	pending  SpinTicket
}

// Option configures a Selector.
type Option func(*Selector)

// WithSource sets the randomness for shuffles and draws.
func WithSource(src rng.Source) Option {
	return func(s *Selector) { s.src = src }
}

// WithRecorder attaches a spin event recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Selector) { s.recorder = r }
}

// WithLogger sets the selector's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Selector) { s.log = log }
}

// NewSelector creates an idle selector with a freshly built table.
func NewSelector(w Wallet, cat Catalog, opts ...Option) *Selector {
	s := &Selector{
		wallet: w,
		cat:    cat,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = rng.Default()
	}
	s.rebuildLocked()
	return s
}

// Open is called when the wheel is shown. It reshuffles the table unless a
// spin is in flight, and returns the table.
func (s *Selector) Open() []Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Idle {
		s.rebuildLocked()
	}
	return slices.Clone(s.table)
}

// Rebuild reshuffles the table. It is a no-op while spinning.
func (s *Selector) Rebuild() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Idle {
		s.rebuildLocked()
	}
}

// Table returns the current outcomes. While Idle, a table built for an
// older unlocked set is rebuilt first.
func (s *Selector) Table() []Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()
	return slices.Clone(s.table)
}

// State returns the current spin state.
func (s *Selector) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Pending returns the in-flight ticket, if any.
func (s *Selector) Pending() (SpinTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending, s.state == Spinning
}

// Spin starts a spin. It returns false without charging when a spin is
// already in flight or the wallet cannot cover SpinCost.
func (s *Selector) Spin() (SpinTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Spinning {
		return SpinTicket{}, false
	}
	s.refreshLocked()
	if len(s.table) == 0 {
		panic("wheel: empty outcome table")
	}
	if !s.wallet.SpendTokens(SpinCost) {
		s.log.Debug().Msg("wheel: spin refused, insufficient tokens")
		return SpinTicket{}, false
	}

	s.pending = SpinTicket{
		ID:   uuid.New().String(),
		Slot: s.src.IntN(len(s.table)),
	}
	s.state = Spinning
	s.log.Debug().Str("spin", s.pending.ID).Int("slot", s.pending.Slot).Msg("wheel: spinning")
	return s.pending, true
}

// Stop resolves the spin identified by t and returns to Idle. Tickets from
// earlier spins, or calls while Idle, are ignored and report false.
func (s *Selector) Stop(t SpinTicket) (Resolution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Spinning || t.ID != s.pending.ID {
		return Resolution{}, false
	}
	return s.resolveLocked(), true
}

// Settle resolves the in-flight spin, if any, without waiting for the
// host's animation. Hosts call it when they are torn down mid-spin so a
// paid spin is never lost.
func (s *Selector) Settle() (Resolution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Spinning {
		return Resolution{}, false
	}
	return s.resolveLocked(), true
}

func (s *Selector) resolveLocked() Resolution {
	t := s.pending
	if t.Slot < 0 || t.Slot >= len(s.table) {
		panic(fmt.Sprintf("wheel: slot %d outside table of %d", t.Slot, len(s.table)))
	}
	out := s.table[t.Slot]
	res := Resolution{Ticket: t, Outcome: out}

	switch out.Kind {
	case CharacterPrize:
		if s.wallet.UnlockCharacter(out.CharacterID) {
			res.NewUnlock = true
		} else {
			res.Duplicate = true
		}
	case TokenPrize:
		if out.Amount > 0 {
			s.wallet.AddTokens(out.Amount)
			res.TokensAwarded = out.Amount
		}
	case NoWin:
	default:
		panic(fmt.Sprintf("wheel: unknown outcome kind %q", out.Kind))
	}

	s.state = Idle
	s.pending = SpinTicket{}
	s.log.Info().
		Str("spin", t.ID).
		Str("outcome", out.Label).
		Bool("new_unlock", res.NewUnlock).
		Int("tokens", res.TokensAwarded).
		Msg("wheel: spin resolved")
	s.record(res)
	return res
}

// refreshLocked rebuilds the table if the unlocked set moved since it was
// built. Never called mid-spin so the drawn slot stays valid.
func (s *Selector) refreshLocked() {
	if s.state != Idle {
		return
	}
	if s.table == nil || unlockedKey(s.wallet.UnlockedCharacters()) != s.builtFor {
		s.rebuildLocked()
	}
}

func (s *Selector) rebuildLocked() {
	s.builtFor = unlockedKey(s.wallet.UnlockedCharacters())
	s.table = BuildTable(s.cat, s.wallet.IsCharacterUnlocked, s.src)
}

func (s *Selector) record(res Resolution) {
	if s.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := s.recorder.AppendSpinEvent(ctx, store.SpinEventData{
		SpinID:        res.Ticket.ID,
		Slot:          res.Ticket.Slot,
		OutcomeKind:   string(res.Outcome.Kind),
		Label:         res.Outcome.Label,
		CharacterID:   res.Outcome.CharacterID,
		TokensAwarded: res.TokensAwarded,
		NewUnlock:     res.NewUnlock,
		Cost:          SpinCost,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("spin", res.Ticket.ID).Msg("wheel: record spin failed")
	}
}

func unlockedKey(ids []string) string {
	return strings.Join(ids, "\x00")
}
