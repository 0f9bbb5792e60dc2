package layout

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 40))
	assert.True(t, IsTooSmall(120, 23))
	assert.False(t, IsTooSmall(80, 24))
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 18, ContentHeight(24))
	assert.Equal(t, 0, ContentHeight(4))
}

func TestRenderHeaderShowsStats(t *testing.T) {
	h := RenderHeader("Prize Wheel", HeaderStats{Tokens: 90, Unlocked: 3, Total: 12}, 100)

	assert.Contains(t, h, "ToyVox")
	assert.Contains(t, h, "Prize Wheel")
	assert.Contains(t, h, "90")
	assert.Contains(t, h, "3/12")
	assert.Equal(t, HeaderHeight, lipgloss.Height(h))
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Home", HeaderStats{}, 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)

	frame := RenderFrame(header, "body", footer, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(frame))
	assert.Contains(t, frame, "body")
	assert.Contains(t, frame, "Back")
}
