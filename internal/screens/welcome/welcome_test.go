package welcome

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/toyvox/internal/router"
	"github.com/abhisek/toyvox/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcome()
	assert.NotContains(t, w.View(80, 24), Tagline, "no banner at start")

	sendTicks(w, 5)
	assert.Equal(t, 500*time.Millisecond, w.elapsed)
	assert.NotContains(t, w.View(80, 24), Tagline)

	sendTicks(w, 10)
	assert.Equal(t, 1500*time.Millisecond, w.elapsed)
	view := w.View(80, 24)
	assert.Contains(t, view, Tagline)
	assert.Contains(t, view, "press any key")
}

func TestCompactBanner(t *testing.T) {
	assert.Contains(t, RenderBanner(40), "T · O · Y")
	assert.NotContains(t, RenderBanner(80), "T · O · Y")
}

func TestKeypressMidAnimationTransitions(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.NotNil(t, msg.Screen)
	assert.Equal(t, 1, *calls)
}

func TestNoAutoTransition(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 60)
	assert.Equal(t, 0, *calls)
	assert.Equal(t, totalDur, w.elapsed, "elapsed is capped")
}

func TestFactoryCalledOnce(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 45)
	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, *calls)

	assert.Nil(t, sendTicks(w, 1), "ticks stop after the handover")
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	assert.Empty(t, w.Title())
}
