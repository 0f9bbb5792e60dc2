// Package arcade wires the game services together for the TUI and the
// non-interactive commands.
package arcade

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abhisek/toyvox/internal/catalog"
	"github.com/abhisek/toyvox/internal/config"
	"github.com/abhisek/toyvox/internal/ledger"
	"github.com/abhisek/toyvox/internal/logging"
	"github.com/abhisek/toyvox/internal/questions"
	"github.com/abhisek/toyvox/internal/rng"
	"github.com/abhisek/toyvox/internal/store"
	"github.com/abhisek/toyvox/internal/trivia"
	"github.com/abhisek/toyvox/internal/wheel"
)

// ErrNoQuestions is returned when the category and difficulty filters leave
// nothing to ask.
var ErrNoQuestions = errors.New("no trivia questions match the configured category and difficulty")

// Services is everything a screen or command needs.
type Services struct {
	Ledger  *ledger.Ledger
	Catalog *catalog.Catalog
	Bank    *questions.Bank // after the configured filters
	Wheel   *wheel.Selector
	Events  store.EventRepo // nil when running without a store
	Log     zerolog.Logger

	// full is the unfiltered bank; character trivia ignores the filters.
	full       *questions.Bank
	triviaOpts []trivia.Option
}

// Options tunes Build.
type Options struct {
	// Source overrides the randomness of the wheel and trivia draws.
	Source rng.Source
}

// Build loads the data files named by cfg and connects the services to st.
// A nil st keeps all progress in memory.
func Build(cfg *config.Config, st *store.Store, log zerolog.Logger, opts Options) (*Services, error) {
	cat, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	full, err := loadBank(cfg.QuestionsFile)
	if err != nil {
		return nil, err
	}
	bank := full
	if f := (questions.Filter{Category: cfg.Category(), Difficulty: cfg.Difficulty()}); f != (questions.Filter{}) {
		bank = full.Filter(f)
		if bank.Len() == 0 {
			return nil, fmt.Errorf("%w: category=%q difficulty=%q", ErrNoQuestions, f.Category, f.Difficulty)
		}
	}

	src := opts.Source
	if src == nil {
		src = rng.Default()
	}

	svc := &Services{
		Catalog: cat,
		Bank:    bank,
		Log:     log,
		full:    full,
	}

	ledgerOpts := []ledger.Option{ledger.WithLogger(logging.Component(log, "ledger"))}
	wheelOpts := []wheel.Option{wheel.WithLogger(logging.Component(log, "wheel")), wheel.WithSource(src)}
	svc.triviaOpts = []trivia.Option{
		trivia.WithLogger(logging.Component(log, "trivia")),
		trivia.WithSource(src),
		trivia.WithQuestionCount(cfg.TriviaQuestions),
		trivia.WithQuestionTime(cfg.QuestionSeconds),
	}

	var kv ledger.KV
	if st != nil {
		events := st.EventRepo()
		svc.Events = events
		kv = st.ProgressRepo()
		ledgerOpts = append(ledgerOpts, ledger.WithRecorder(events))
		wheelOpts = append(wheelOpts, wheel.WithRecorder(events))
		svc.triviaOpts = append(svc.triviaOpts, trivia.WithRecorder(events))
	}

	svc.Ledger = ledger.New(kv, ledgerOpts...)
	svc.Wheel = wheel.NewSelector(svc.Ledger, cat, wheelOpts...)
	return svc, nil
}

// Progress is the player's standing against the catalog.
type Progress struct {
	Tokens   int
	Unlocked int // catalog characters owned
	Total    int
}

// Progress reads the ledger. Unlocked ids missing from the catalog are not
// counted.
func (s *Services) Progress() Progress {
	return ProgressOf(s.Ledger.Snapshot(), s.Catalog)
}

// ProgressOf computes Progress from a ledger snapshot.
func ProgressOf(snap ledger.Snapshot, cat *catalog.Catalog) Progress {
	p := Progress{Tokens: snap.Tokens, Total: cat.Len()}
	for _, id := range snap.UnlockedCharacters {
		if cat.Exists(id) {
			p.Unlocked++
		}
	}
	return p
}

// NewTriviaSession returns a fresh game paid into the ledger.
func (s *Services) NewTriviaSession() *trivia.Session {
	return trivia.NewSession(s.Bank, s.Ledger, s.triviaOpts...)
}

// HasCharacterTrivia reports whether any question is about characterID.
func (s *Services) HasCharacterTrivia(characterID string) bool {
	return len(s.full.ForCharacter(characterID)) > 0
}

// NewCharacterTriviaSession returns a game made of the questions about
// characterID. The second result is false when there are none.
func (s *Services) NewCharacterTriviaSession(characterID string) (*trivia.Session, bool) {
	qs := s.full.ForCharacter(characterID)
	if len(qs) == 0 {
		return nil, false
	}
	bank, err := questions.New(qs)
	if err != nil {
		s.Log.Warn().Err(err).Str("character", characterID).Msg("character trivia bank")
		return nil, false
	}
	return trivia.NewSession(bank, s.Ledger, s.triviaOpts...), true
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	c, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

func loadBank(path string) (*questions.Bank, error) {
	if path == "" {
		return questions.Default()
	}
	b, err := questions.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return b, nil
}
