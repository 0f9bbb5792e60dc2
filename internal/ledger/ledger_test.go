package ledger

import (
	"context"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/toyvox/internal/store"
)

// memKV is an in-memory KV with switchable failures.
type memKV struct {
	mu        sync.Mutex
	data      map[string][]byte
	getErr    error
	putErr    error
	deleteErr error
	puts      int
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *memKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.data, key)
	return nil
}

func (m *memKV) stored(t *testing.T) (Snapshot, bool) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[StorageKey]
	if !ok {
		return Snapshot{}, false
	}
	snap, err := decodeSnapshot(v)
	require.NoError(t, err)
	return snap, true
}

type mockRecorder struct {
	events []store.LedgerEventData
}

func (m *mockRecorder) AppendLedgerEvent(_ context.Context, data store.LedgerEventData) error {
	m.events = append(m.events, data)
	return nil
}

func TestNewDefaults(t *testing.T) {
	l := New(newMemKV())
	assert.Equal(t, StartingTokens, l.Balance())
	assert.Empty(t, l.UnlockedCharacters())
}

func TestLoadExistingSnapshot(t *testing.T) {
	kv := newMemKV()
	kv.data[StorageKey] = []byte(`{"tokens":42,"unlockedCharacters":["sonic001","shadow001","sonic001",""]}`)

	l := New(kv)
	assert.Equal(t, 42, l.Balance())
	assert.Equal(t, []string{"shadow001", "sonic001"}, l.UnlockedCharacters())
}

func TestLoadZeroBalanceIsKept(t *testing.T) {
	kv := newMemKV()
	kv.data[StorageKey] = []byte(`{"tokens":0,"unlockedCharacters":[]}`)

	l := New(kv)
	assert.Equal(t, 0, l.Balance())
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		getErr error
	}{
		{name: "not json", stored: `{tokens:`},
		{name: "wrong type", stored: `{"tokens":"lots"}`},
		{name: "negative", stored: `{"tokens":-5,"unlockedCharacters":["a"]}`},
		{name: "missing tokens", stored: `{"unlockedCharacters":["a"]}`},
		{name: "read error", getErr: errors.New("disk on fire")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemKV()
			if tt.stored != "" {
				kv.data[StorageKey] = []byte(tt.stored)
			}
			kv.getErr = tt.getErr

			l := New(kv)
			assert.Equal(t, StartingTokens, l.Balance())
			assert.Empty(t, l.UnlockedCharacters())
		})
	}
}

func TestAddTokensPersists(t *testing.T) {
	kv := newMemKV()
	l := New(kv)

	l.AddTokens(25)
	assert.Equal(t, 125, l.Balance())

	snap, ok := kv.stored(t)
	require.True(t, ok)
	assert.Equal(t, 125, snap.Tokens)
}

func TestAddTokensIgnoresNegativeAndZero(t *testing.T) {
	kv := newMemKV()
	l := New(kv)
	l.AddTokens(-10)
	l.AddTokens(0)
	assert.Equal(t, StartingTokens, l.Balance())
	assert.Equal(t, 0, kv.puts)
}

func TestSpendTokens(t *testing.T) {
	kv := newMemKV()
	l := New(kv)

	assert.True(t, l.SpendTokens(30))
	assert.Equal(t, 70, l.Balance())

	assert.False(t, l.SpendTokens(71), "spend beyond balance fails")
	assert.Equal(t, 70, l.Balance(), "failed spend leaves balance unchanged")

	assert.True(t, l.SpendTokens(70))
	assert.Equal(t, 0, l.Balance())

	assert.False(t, l.SpendTokens(-1))
	assert.True(t, l.SpendTokens(0))
	assert.Equal(t, 0, l.Balance())

	snap, ok := kv.stored(t)
	require.True(t, ok)
	assert.Equal(t, 0, snap.Tokens)
}

func TestSpinCostScenario(t *testing.T) {
	kv := newMemKV()
	kv.data[StorageKey] = []byte(`{"tokens":10,"unlockedCharacters":[]}`)
	l := New(kv)

	assert.True(t, l.SpendTokens(10))
	assert.Equal(t, 0, l.Balance())
	assert.False(t, l.SpendTokens(10))
	assert.Equal(t, 0, l.Balance())
}

func TestUnlockCharacterIdempotent(t *testing.T) {
	kv := newMemKV()
	l := New(kv)

	assert.True(t, l.UnlockCharacter("sonic001"))
	once := l.UnlockedCharacters()
	putsAfterFirst := kv.puts

	assert.False(t, l.UnlockCharacter("sonic001"))
	assert.Equal(t, once, l.UnlockedCharacters())
	assert.Equal(t, putsAfterFirst, kv.puts, "duplicate unlock does not write")

	assert.True(t, l.IsCharacterUnlocked("sonic001"))
	assert.False(t, l.IsCharacterUnlocked("shadow001"))
	assert.False(t, l.UnlockCharacter(""))
}

func TestResetProgress(t *testing.T) {
	kv := newMemKV()
	l := New(kv)
	l.AddTokens(500)
	l.UnlockCharacter("sonic001")
	l.UnlockCharacter("mario001")

	l.ResetProgress()

	assert.Equal(t, StartingTokens, l.Balance())
	assert.Empty(t, l.UnlockedCharacters())
	_, ok := kv.stored(t)
	assert.False(t, ok, "record erased")

	reloaded := New(kv)
	assert.Equal(t, DefaultSnapshot(), reloaded.Snapshot())
}

func TestResetProgressWhenDeleteFails(t *testing.T) {
	kv := newMemKV()
	l := New(kv)
	l.SpendTokens(50)
	l.UnlockCharacter("sonic001")

	kv.deleteErr = errors.New("read-only")
	l.ResetProgress()

	snap, ok := kv.stored(t)
	require.True(t, ok)
	assert.Equal(t, StartingTokens, snap.Tokens)
	assert.Empty(t, snap.UnlockedCharacters)
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	kv := newMemKV()
	l := New(kv)
	kv.putErr = errors.New("quota exceeded")

	l.AddTokens(5)
	assert.True(t, l.SpendTokens(20))
	assert.True(t, l.UnlockCharacter("luigi001"))

	assert.Equal(t, 85, l.Balance())
	assert.True(t, l.IsCharacterUnlocked("luigi001"))
}

func TestRoundTrip(t *testing.T) {
	kv := newMemKV()
	l := New(kv)
	l.SpendTokens(10)
	l.AddTokens(50)
	l.UnlockCharacter("woody001")
	l.UnlockCharacter("buzz001")

	reloaded := New(kv)
	assert.Equal(t, l.Snapshot(), reloaded.Snapshot())
}

func TestRoundTripThroughSQLite(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer st.Close()

	l := New(st.ProgressRepo(), WithRecorder(st.EventRepo()))
	l.SpendTokens(10)
	l.UnlockCharacter("olaf001")

	reloaded := New(st.ProgressRepo())
	assert.Equal(t, Snapshot{Tokens: 90, UnlockedCharacters: []string{"olaf001"}}, reloaded.Snapshot())

	events, err := st.EventRepo().QueryLedgerEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, store.LedgerUnlock, events[0].Kind)
	assert.Equal(t, store.LedgerSpend, events[1].Kind)
}

func TestBalanceReplayProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 22))
	for round := 0; round < 50; round++ {
		l := New(nil)
		expected := StartingTokens
		for i := 0; i < 200; i++ {
			amount := r.IntN(60)
			if r.IntN(2) == 0 {
				l.AddTokens(amount)
				expected += amount
				continue
			}
			before := l.Balance()
			ok := l.SpendTokens(amount)
			if amount > before {
				require.False(t, ok)
				require.Equal(t, before, l.Balance())
			} else {
				require.True(t, ok)
				expected -= amount
			}
			require.GreaterOrEqual(t, l.Balance(), 0)
		}
		assert.Equal(t, expected, l.Balance())
	}
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	l := New(nil)
	var got []Snapshot
	unsub := l.Subscribe(func(s Snapshot) { got = append(got, s) })

	l.AddTokens(5)
	l.SpendTokens(1000) // fails, no notification
	l.UnlockCharacter("groot001")
	l.UnlockCharacter("groot001") // duplicate, no notification
	unsub()
	l.AddTokens(1)

	require.Len(t, got, 2)
	assert.Equal(t, 105, got[0].Tokens)
	assert.Equal(t, []string{"groot001"}, got[1].UnlockedCharacters)
}

func TestRecorderEvents(t *testing.T) {
	rec := &mockRecorder{}
	l := New(nil, WithRecorder(rec))

	l.AddTokens(20)
	l.SpendTokens(10)
	l.SpendTokens(10_000)
	l.UnlockCharacter("sonic001")
	l.ResetProgress()

	require.Len(t, rec.events, 4)
	assert.Equal(t, store.LedgerEventData{Kind: store.LedgerAdd, Amount: 20, BalanceAfter: 120}, rec.events[0])
	assert.Equal(t, store.LedgerEventData{Kind: store.LedgerSpend, Amount: 10, BalanceAfter: 110}, rec.events[1])
	assert.Equal(t, store.LedgerEventData{Kind: store.LedgerUnlock, CharacterID: "sonic001", BalanceAfter: 110}, rec.events[2])
	assert.Equal(t, store.LedgerEventData{Kind: store.LedgerReset, BalanceAfter: StartingTokens}, rec.events[3])
}

func TestConcurrentSpendNeverOverdraws(t *testing.T) {
	l := New(newMemKV())
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.SpendTokens(10) {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, successes)
	assert.Equal(t, 0, l.Balance())
}
