package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "toyvox-test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"progresses", "ledger_events", "spin_events", "trivia_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestTablesFollowEntSchema(t *testing.T) {
	tables, err := Tables()
	require.NoError(t, err)
	require.Len(t, tables, 4)

	byName := map[string]*schema.Table{}
	for _, tbl := range tables {
		byName[tbl.Name] = tbl
	}

	ledger := byName[ledgerEventsTable]
	require.NotNil(t, ledger)
	var cols []string
	for _, c := range ledger.Columns {
		cols = append(cols, c.Name)
	}
	assert.Equal(t, []string{"id", "sequence", "timestamp", "kind", "amount", "character_id", "balance_after"}, cols)
	assert.True(t, ledger.Columns[0].Increment)
	assert.True(t, ledger.Columns[1].Unique, "sequence is unique")
	assert.Equal(t, field.TypeTime, ledger.Columns[2].Type)
	assert.Equal(t, 0, ledger.Columns[4].Default)

	var indexes []string
	for _, ix := range ledger.Indexes {
		indexes = append(indexes, ix.Name)
	}
	assert.ElementsMatch(t, []string{"ledger_event_timestamp", "ledger_event_kind"}, indexes)

	progress := byName[progressTable]
	require.NotNil(t, progress)
	assert.Equal(t, "key", progress.Columns[1].Name)
	assert.True(t, progress.Columns[1].Unique)
	assert.Nil(t, progress.Columns[3].Default, "time.Now default stays out of the DDL")

	spins := byName[spinEventsTable]
	require.NotNil(t, spins)
	assert.Equal(t, field.TypeBool, spins.Columns[len(spins.Columns)-2].Type)
}

func TestMigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	for i := 0; i < 2; i++ {
		s, err := Open(path)
		require.NoError(t, err, "open %d", i)
		require.NoError(t, s.Close())
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.ProgressRepo().Put(ctx, "k", []byte(`{"tokens":5}`)))
	require.NoError(t, s.EventRepo().AppendLedgerEvent(ctx, LedgerEventData{Kind: LedgerAdd, Amount: 5, BalanceAfter: 5}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.ProgressRepo().Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tokens":5}`, string(got))

	// The sequence continues rather than restarting.
	require.NoError(t, s.EventRepo().AppendLedgerEvent(ctx, LedgerEventData{Kind: LedgerAdd, Amount: 1, BalanceAfter: 6}))
	events, err := s.EventRepo().QueryLedgerEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(2), events[0].Sequence)
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "voxTokenData")
	require.NoError(t, err)
	assert.Nil(t, got, "absent key returns nil")

	require.NoError(t, repo.Put(ctx, "voxTokenData", []byte(`{"tokens":100,"unlockedCharacters":[]}`)))
	require.NoError(t, repo.Put(ctx, "voxTokenData", []byte(`{"tokens":90,"unlockedCharacters":["sonic001"]}`)))

	got, err = repo.Get(ctx, "voxTokenData")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tokens":90,"unlockedCharacters":["sonic001"]}`, string(got))

	require.NoError(t, repo.Delete(ctx, "voxTokenData"))
	require.NoError(t, repo.Delete(ctx, "voxTokenData"), "deleting twice is fine")

	got, err = repo.Get(ctx, "voxTokenData")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLedgerEvent(ctx, LedgerEventData{Kind: LedgerSpend, Amount: 10, BalanceAfter: 90}))
	require.NoError(t, repo.AppendSpinEvent(ctx, SpinEventData{
		SpinID: "spin-1", Slot: 3, OutcomeKind: "character", Label: "Sonic",
		CharacterID: "sonic001", NewUnlock: true, Cost: 10,
	}))
	require.NoError(t, repo.AppendTriviaEvent(ctx, TriviaEventData{
		SessionID: "sess-1", Questions: 10, Correct: 7, Streak: 3, TimeRemaining: 12, Tokens: 97, Tier: "standard",
	}))

	ledger, err := repo.QueryLedgerEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	spins, err := repo.QuerySpinEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	trivia, err := repo.QueryTriviaEvents(ctx, QueryOpts{})
	require.NoError(t, err)

	require.Len(t, ledger, 1)
	require.Len(t, spins, 1)
	require.Len(t, trivia, 1)
	assert.Less(t, ledger[0].Sequence, spins[0].Sequence)
	assert.Less(t, spins[0].Sequence, trivia[0].Sequence)

	assert.True(t, spins[0].NewUnlock)
	assert.Equal(t, "sonic001", spins[0].CharacterID)
	assert.Equal(t, 97, trivia[0].Tokens)
	assert.Equal(t, "standard", trivia[0].Tier)
}

func TestQueryOpts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo().(*eventRepo)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	repo.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.AppendLedgerEvent(ctx, LedgerEventData{Kind: LedgerAdd, Amount: i, BalanceAfter: 100 + i}))
	}

	all, err := repo.QueryLedgerEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, 5, all[0].Amount, "newest first")

	limited, err := repo.QueryLedgerEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)

	after, err := repo.QueryLedgerEvents(ctx, QueryOpts{After: 3})
	require.NoError(t, err)
	assert.Len(t, after, 2)

	before, err := repo.QueryLedgerEvents(ctx, QueryOpts{Before: 3})
	require.NoError(t, err)
	require.Len(t, before, 2)
	assert.Equal(t, 2, before[0].Amount)

	window, err := repo.QueryLedgerEvents(ctx, QueryOpts{
		From: base.Add(2 * time.Minute),
		To:   base.Add(3 * time.Minute),
	})
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, base.Add(3*time.Minute).UnixNano(), window[0].Timestamp.UnixNano())
}

func TestActivityStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	st, err := repo.ActivityStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, ActivityStats{}, st)

	require.NoError(t, repo.AppendLedgerEvent(ctx, LedgerEventData{Kind: LedgerSpend, Amount: 10, BalanceAfter: 90}))
	require.NoError(t, repo.AppendLedgerEvent(ctx, LedgerEventData{Kind: LedgerSpend, Amount: 10, BalanceAfter: 80}))
	require.NoError(t, repo.AppendLedgerEvent(ctx, LedgerEventData{Kind: LedgerReset, BalanceAfter: 100}))
	require.NoError(t, repo.AppendSpinEvent(ctx, SpinEventData{SpinID: "a", OutcomeKind: "tokens", Label: "+25 Tokens", TokensAwarded: 25, Cost: 10}))
	require.NoError(t, repo.AppendSpinEvent(ctx, SpinEventData{SpinID: "b", OutcomeKind: "character", Label: "Sonic", NewUnlock: true, Cost: 10}))
	require.NoError(t, repo.AppendTriviaEvent(ctx, TriviaEventData{SessionID: "x", Tokens: 40, Tier: "modest"}))
	require.NoError(t, repo.AppendTriviaEvent(ctx, TriviaEventData{SessionID: "y", Tokens: 170, Tier: "big_win"}))

	st, err = repo.ActivityStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, ActivityStats{
		Spins:            2,
		CharacterWins:    1,
		WheelTokens:      25,
		TriviaGames:      2,
		TriviaTokens:     210,
		BestTriviaTokens: 170,
		TokensSpent:      20,
		Resets:           1,
	}, st)
}

func TestDefaultDBPathHonorsEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("TOYVOX_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.DirExists(t, filepath.Dir(p))
}

func TestDefaultDBPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TOYVOX_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "toyvox", "toyvox.db"), got)
}
