package wheel

import (
	"testing"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/toyvox/internal/catalog"
	"github.com/abhisek/toyvox/internal/ledger"
	"github.com/abhisek/toyvox/internal/rng"
	"github.com/abhisek/toyvox/internal/router"
	prize "github.com/abhisek/toyvox/internal/wheel"
)

var space = tea.KeyPressMsg{Code: tea.KeySpace}

func newTestScreen(t *testing.T, seed uint64) (*WheelScreen, *ledger.Ledger) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	l := ledger.New(nil)
	sel := prize.NewSelector(l, cat, prize.WithSource(rng.NewSeeded(seed)))
	w := New(sel, l)
	w.Init()
	return w, l
}

// runSpin delivers every animation frame of the running spin.
func runSpin(w *WheelScreen) {
	for step := 0; step <= w.steps; step++ {
		w.Update(frameMsg{spinID: w.ticket.ID, step: step})
	}
}

func TestInitShowsTable(t *testing.T) {
	w, _ := newTestScreen(t, 1)
	require.Len(t, w.table, prize.TableSize)
	view := w.View(120, 40)
	assert.Contains(t, view, "SPIN  ● 10")
	assert.Contains(t, view, "100 tokens")
}

func TestSpinChargesAndResolves(t *testing.T) {
	w, l := newTestScreen(t, 2)

	_, cmd := w.Update(space)
	require.NotNil(t, cmd)
	assert.True(t, w.spinning)
	assert.Equal(t, ledger.StartingTokens-prize.SpinCost, l.Balance())
	assert.Equal(t, prize.Spinning, w.sel.State())

	// Keys other than Esc are ignored mid-spin.
	w.Update(space)
	assert.Equal(t, ledger.StartingTokens-prize.SpinCost, l.Balance())

	runSpin(w)
	assert.False(t, w.spinning)
	require.NotNil(t, w.result)
	assert.Equal(t, w.result.Ticket.Slot, w.highlight, "highlight lands on the drawn slot")
	assert.Equal(t, prize.Idle, w.sel.State())
	assert.Contains(t, w.View(120, 40), resultText(*w.result))

	want := ledger.StartingTokens - prize.SpinCost + w.result.TokensAwarded
	assert.Equal(t, want, l.Balance())
}

func TestStaleFramesIgnored(t *testing.T) {
	w, _ := newTestScreen(t, 3)
	w.Update(space)
	before := w.highlight

	_, cmd := w.Update(frameMsg{spinID: "old-spin", step: 0})
	assert.Nil(t, cmd)
	assert.Equal(t, before, w.highlight)
	assert.True(t, w.spinning)
}

func TestSpinRefusedWhenBroke(t *testing.T) {
	w, l := newTestScreen(t, 4)
	require.True(t, l.SpendTokens(l.Balance()-5))

	_, cmd := w.Update(space)
	assert.Nil(t, cmd)
	assert.False(t, w.spinning)
	assert.Equal(t, 5, l.Balance())
	assert.Contains(t, w.View(120, 40), "Not enough tokens")
}

func TestCloseSettlesPendingSpin(t *testing.T) {
	w, _ := newTestScreen(t, 5)
	w.Update(space)
	require.Equal(t, prize.Spinning, w.sel.State())

	w.Close()
	assert.Equal(t, prize.Idle, w.sel.State())
	assert.False(t, w.spinning)
	require.NotNil(t, w.result)

	// Frames still in flight do nothing afterwards.
	_, cmd := w.Update(frameMsg{spinID: w.ticket.ID, step: 1})
	assert.Nil(t, cmd)
}

func TestSpinnerTicksOnlyWhileSpinning(t *testing.T) {
	w, _ := newTestScreen(t, 6)
	_, cmd := w.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestEscPops(t *testing.T) {
	w, _ := newTestScreen(t, 7)
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestResultText(t *testing.T) {
	tests := []struct {
		name string
		res  prize.Resolution
		want string
	}{
		{"unlock", prize.Resolution{Outcome: prize.Outcome{Label: "Sonic"}, NewUnlock: true}, "You unlocked Sonic!"},
		{"duplicate", prize.Resolution{Outcome: prize.Outcome{Label: "Sonic"}, Duplicate: true}, "already in your collection"},
		{"tokens", prize.Resolution{TokensAwarded: 25}, "You won 25 tokens!"},
		{"nothing", prize.Resolution{}, "Try again"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, resultText(tt.res), tt.want)
		})
	}
}
