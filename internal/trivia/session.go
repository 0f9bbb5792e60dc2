// Package trivia runs a timed multiple-choice game and turns the final
// score into tokens exactly once.
package trivia

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/toyvox/internal/questions"
	"github.com/abhisek/toyvox/internal/rewards"
	"github.com/abhisek/toyvox/internal/rng"
	"github.com/abhisek/toyvox/internal/store"
)

const (
	// TotalQuestions is the number of questions drawn per game.
	TotalQuestions = 10

	// QuestionTime is the countdown per question, in seconds.
	QuestionTime = 20
)

// ErrEmptyBank is returned by Start when there is nothing to ask.
var ErrEmptyBank = errors.New("trivia: question bank is empty")

// Bank supplies questions. *questions.Bank satisfies it.
type Bank interface {
	Sample(n int, src rng.Source) []questions.Question
}

// Wallet is credited with the game's reward.
type Wallet interface {
	AddTokens(amount int)
}

// Recorder receives one event per finished game.
type Recorder interface {
	AppendTriviaEvent(ctx context.Context, data store.TriviaEventData) error
}

// Session is one trivia game. It is driven entirely by its callers: the
// host delivers one TickFor per second and forwards answer and next
// intents. Each question, resume and reset starts a new round, and ticks
// tagged with an older round are discarded.
type Session struct {
	mu       sync.Mutex
	bank     Bank
	wallet   Wallet
	src      rng.Source
	recorder Recorder
	log      zerolog.Logger

	total        int
	questionTime int

	id            string
	phase         Phase
	questions     []questions.Question
	index         int
	round         int
	timeRemaining int
	selected      int
	answered      bool
	timedOut      bool
	correct       int
	streak        int
	bestStreak    int
	reward        *rewards.Reward
}

// Option configures a Session.
type Option func(*Session)

// WithSource sets the randomness used to draw questions.
func WithSource(src rng.Source) Option {
	return func(s *Session) { s.src = src }
}

// WithRecorder attaches a trivia event recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithLogger sets the session's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithQuestionCount overrides TotalQuestions.
func WithQuestionCount(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.total = n
		}
	}
}

// WithQuestionTime overrides QuestionTime.
func WithQuestionTime(seconds int) Option {
	return func(s *Session) {
		if seconds > 0 {
			s.questionTime = seconds
		}
	}
}

// NewSession creates a session in PhaseReady.
func NewSession(bank Bank, wallet Wallet, opts ...Option) *Session {
	s := &Session{
		bank:         bank,
		wallet:       wallet,
		log:          zerolog.Nop(),
		total:        TotalQuestions,
		questionTime: QuestionTime,
		selected:     -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = rng.Default()
	}
	return s
}

// Start draws the questions and serves the first one. It is a no-op
// outside PhaseReady. A bank smaller than the question count yields a
// shorter game; an empty bank is an error.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady {
		return nil
	}
	qs := s.bank.Sample(s.total, s.src)
	if len(qs) == 0 {
		return ErrEmptyBank
	}

	s.id = uuid.New().String()
	s.questions = qs
	s.phase = PhasePlaying
	s.loadLocked(0)
	s.log.Debug().Str("session", s.id).Int("questions", len(qs)).Msg("trivia: started")
	return nil
}

// QuestionTime is the countdown length of each question, in seconds.
func (s *Session) QuestionTime() int {
	return s.questionTime
}

// Tick advances the countdown of the current round by one second.
func (s *Session) Tick() TickResult {
	s.mu.Lock()
	round := s.round
	s.mu.Unlock()
	return s.TickFor(round)
}

// TickFor advances the countdown if round is still current. Ticks from an
// earlier question, a paused stretch or a previous game report
// Applied=false and change nothing. Reaching zero counts as a wrong answer.
func (s *Session) TickFor(round int) TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := TickResult{Round: s.round, TimeRemaining: s.timeRemaining}
	if s.phase != PhasePlaying || round != s.round || s.answered {
		return res
	}

	s.timeRemaining--
	res.Applied = true
	res.TimeRemaining = s.timeRemaining
	if s.timeRemaining <= 0 {
		s.timeRemaining = 0
		s.answered = true
		s.timedOut = true
		s.streak = 0
		res.TimedOut = true
		s.log.Debug().Int("question", s.index+1).Msg("trivia: time up")
	}
	return res
}

// Select answers the current question. Only the first answer counts: once
// the question is answered (or timed out) further calls return false.
func (s *Session) Select(index int) (AnswerResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhasePlaying || s.answered {
		return AnswerResult{}, false
	}
	if index < 0 || index >= questions.OptionCount {
		return AnswerResult{}, false
	}

	q := s.questions[s.index]
	s.selected = index
	s.answered = true
	correct := q.IsCorrect(index)
	if correct {
		s.correct++
		s.streak++
		s.bestStreak = max(s.bestStreak, s.streak)
	} else {
		s.streak = 0
	}

	return AnswerResult{
		Selected:     index,
		Correct:      correct,
		CorrectIndex: q.Correct,
		Streak:       s.streak,
	}, true
}

// Next moves past an answered question. On the last question it finishes
// the game and grants the reward. It returns false when the current
// question is still open or the session is not playing.
func (s *Session) Next() (Advance, bool) {
	s.mu.Lock()
	if s.phase != PhasePlaying || !s.answered {
		s.mu.Unlock()
		return Advance{}, false
	}
	if s.index+1 < len(s.questions) {
		s.loadLocked(s.index + 1)
		adv := Advance{Index: s.index + 1}
		s.mu.Unlock()
		return adv, true
	}
	s.mu.Unlock()

	reward, ok := s.Finish()
	if !ok {
		return Advance{}, false
	}
	return Advance{Finished: true, Index: len(s.questions), Reward: reward}, true
}

// Finish ends the game and credits the wallet. Only the first call from
// PhasePlaying or PhasePaused grants anything; later calls return false.
func (s *Session) Finish() (rewards.Reward, bool) {
	s.mu.Lock()
	if s.phase != PhasePlaying && s.phase != PhasePaused {
		s.mu.Unlock()
		return rewards.Reward{}, false
	}
	s.phase = PhaseFinished
	s.round++

	// The time bonus is what was left on the final question.
	reward := rewards.Trivia(s.correct, s.streak, s.timeRemaining)
	s.reward = &reward
	data := store.TriviaEventData{
		SessionID:     s.id,
		Questions:     len(s.questions),
		Correct:       s.correct,
		Streak:        s.streak,
		TimeRemaining: s.timeRemaining,
		Tokens:        reward.Tokens,
		Tier:          string(reward.Tier),
	}
	s.mu.Unlock()

	if s.wallet != nil && reward.Tokens > 0 {
		s.wallet.AddTokens(reward.Tokens)
	}
	s.log.Info().
		Str("session", data.SessionID).
		Int("correct", data.Correct).
		Int("tokens", reward.Tokens).
		Str("tier", string(reward.Tier)).
		Msg("trivia: finished")
	s.record(data)
	return reward, true
}

// Pause freezes the countdown. It reports whether the phase changed.
func (s *Session) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhasePlaying {
		return false
	}
	s.phase = PhasePaused
	s.round++
	return true
}

// Resume restarts the countdown under a new round.
func (s *Session) Resume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhasePaused {
		return false
	}
	s.phase = PhasePlaying
	s.round++
	return true
}

// Reset discards the game and returns to PhaseReady. Pending ticks become
// stale.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = ""
	s.phase = PhaseReady
	s.questions = nil
	s.index = 0
	s.round++
	s.timeRemaining = 0
	s.selected = -1
	s.answered = false
	s.timedOut = false
	s.correct = 0
	s.streak = 0
	s.bestStreak = 0
	s.reward = nil
}

// State returns a read-only view of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Phase:         s.phase,
		SessionID:     s.id,
		Round:         s.round,
		Total:         len(s.questions),
		TimeRemaining: s.timeRemaining,
		Selected:      s.selected,
		Answered:      s.answered,
		TimedOut:      s.timedOut,
		Correct:       s.correct,
		Streak:        s.streak,
		BestStreak:    s.bestStreak,
	}
	if len(s.questions) > 0 {
		st.Number = s.index + 1
		st.Question = s.questions[s.index]
		st.HasQuestion = true
	}
	if s.reward != nil {
		r := *s.reward
		st.Reward = &r
	}
	return st
}

// loadLocked serves question i with a fresh countdown and a new round.
func (s *Session) loadLocked(i int) {
	s.index = i
	s.round++
	s.timeRemaining = s.questionTime
	s.selected = -1
	s.answered = false
	s.timedOut = false
}

func (s *Session) record(data store.TriviaEventData) {
	if s.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.recorder.AppendTriviaEvent(ctx, data); err != nil {
		s.log.Warn().Err(err).Str("session", data.SessionID).Msg("trivia: record game failed")
	}
}
