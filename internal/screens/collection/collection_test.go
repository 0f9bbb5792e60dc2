package collection

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/toyvox/internal/catalog"
	"github.com/abhisek/toyvox/internal/ledger"
	"github.com/abhisek/toyvox/internal/router"
	"github.com/abhisek/toyvox/internal/screen"
)

func newTestScreen(t *testing.T, unlocked ...string) *CollectionScreen {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	l := ledger.New(nil)
	for _, id := range unlocked {
		require.True(t, l.UnlockCharacter(id))
	}
	return New(cat, l)
}

func TestCollectionCounts(t *testing.T) {
	s := newTestScreen(t, "sonic001", "shadow001")
	assert.Equal(t, 12, s.countFor(tabAll))
	assert.Equal(t, 2, s.countFor(tabUnlocked))
	assert.Equal(t, 10, s.countFor(tabLocked))
	assert.Contains(t, s.View(100, 40), "2 / 12 collected")
}

func TestCollectionTabs(t *testing.T) {
	s := newTestScreen(t, "sonic001")

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, tabUnlocked, s.tab)
	require.Len(t, s.visible(), 1)
	assert.Equal(t, "sonic001", s.visible()[0].ID)
	assert.Contains(t, s.View(100, 40), "Sonic")

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, tabLocked, s.tab)
	assert.Len(t, s.visible(), 11)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, tabUnlocked, s.tab)
}

func TestCollectionHidesLockedNames(t *testing.T) {
	s := newTestScreen(t)
	view := s.View(100, 40)
	assert.NotContains(t, view, "General Chungus")
	assert.Contains(t, view, "???")
}

func TestCollectionEmptyUnlockedTab(t *testing.T) {
	s := newTestScreen(t)
	s.tab = tabUnlocked
	assert.Contains(t, s.View(100, 40), "Nothing collected yet")
}

func TestCollectionFilter(t *testing.T) {
	s := newTestScreen(t, "sonic001")

	_, cmd := s.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	assert.NotNil(t, cmd)
	assert.True(t, s.filter.Focused())
	assert.Equal(t, "Enter", s.KeyHints()[0].Key)

	s.filter.Model.SetValue("sonic")
	got := s.visible()
	require.Len(t, got, 3, "every Sonic franchise character matches")

	// Names only match once unlocked.
	s.filter.Model.SetValue("shadow")
	assert.Empty(t, s.visible())
	s.filter.Model.SetValue("sonic")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, s.filter.Focused())
	assert.Equal(t, "sonic", s.filter.Value())

	s.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, s.filter.Focused())
	assert.Empty(t, s.filter.Value())
}

func TestCollectionScroll(t *testing.T) {
	s := newTestScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, s.scrollOffset)
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, s.scrollOffset)
}

func TestCollectionEscPops(t *testing.T) {
	s := newTestScreen(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

type stubScreen struct{ screen.Screen }

func selectCharacter(t *testing.T, s *CollectionScreen, id string) {
	t.Helper()
	for i, c := range s.visible() {
		if c.ID == id {
			s.scrollOffset = i
			return
		}
	}
	t.Fatalf("%s not visible", id)
}

func TestCollectionCharacterTrivia(t *testing.T) {
	var asked []string
	s := newTestScreen(t, "sonic001", "shadow001").WithCharacterTrivia(func(id string) screen.Screen {
		asked = append(asked, id)
		if id == "sonic001" {
			return stubScreen{}
		}
		return nil
	})
	assert.Equal(t, "t", s.KeyHints()[3].Key)

	selectCharacter(t, s, "sonic001")
	_, cmd := s.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, stubScreen{}, push.Screen)

	selectCharacter(t, s, "shadow001")
	_, cmd = s.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	assert.Nil(t, cmd)
	assert.Contains(t, s.View(100, 40), "No trivia about Shadow")

	selectCharacter(t, s, "tails001")
	_, cmd = s.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	assert.Nil(t, cmd)
	assert.Contains(t, s.View(100, 40), "Unlock this character")

	assert.Equal(t, []string{"sonic001", "shadow001"}, asked)
}

func TestCollectionTriviaKeyDisabledByDefault(t *testing.T) {
	s := newTestScreen(t, "sonic001")
	selectCharacter(t, s, "sonic001")
	_, cmd := s.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	assert.Nil(t, cmd)
	for _, h := range s.KeyHints() {
		assert.NotEqual(t, "t", h.Key)
	}
}
