// Package wheel is the prize wheel screen.
package wheel

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/toyvox/internal/router"
	"github.com/abhisek/toyvox/internal/screen"
	"github.com/abhisek/toyvox/internal/ui/components"
	"github.com/abhisek/toyvox/internal/ui/layout"
	"github.com/abhisek/toyvox/internal/ui/theme"
	prize "github.com/abhisek/toyvox/internal/wheel"
)

const (
	baseFrameDelay = 50 * time.Millisecond
	frameSlowdown  = 6 * time.Millisecond
	fullTurns      = 3
)

// frameMsg moves the highlight one slot. It carries the spin it animates
// so frames from an abandoned spin are dropped.
type frameMsg struct {
	spinID string
	step   int
}

// Balance reports the spendable tokens. *ledger.Ledger satisfies it.
type Balance interface {
	Balance() int
}

// WheelScreen shows the eight slots, runs the highlight animation and
// reports the prize.
type WheelScreen struct {
	sel    *prize.Selector
	wallet Balance

	table     []prize.Outcome
	highlight int
	ticket    prize.SpinTicket
	steps     int // total frames of the running animation
	spinning  bool

	spinner spinner.Model
	button  components.Button
	result  *prize.Resolution
	notice  string
}

var _ screen.Screen = (*WheelScreen)(nil)
var _ screen.KeyHintProvider = (*WheelScreen)(nil)
var _ screen.Closer = (*WheelScreen)(nil)

// New creates a WheelScreen over sel. wallet is only read for display.
func New(sel *prize.Selector, wallet Balance) *WheelScreen {
	w := &WheelScreen{
		sel:    sel,
		wallet: wallet,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.ArcadeYellow)),
		),
	}
	w.button = components.NewButton("SPIN", prize.SpinCost, func() tea.Cmd {
		return w.spin()
	})
	return w
}

func (w *WheelScreen) Init() tea.Cmd {
	w.table = w.sel.Open()
	return nil
}

func (w *WheelScreen) Title() string {
	return "Prize Wheel"
}

func (w *WheelScreen) KeyHints() []layout.KeyHint {
	if w.spinning {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Spin"},
		{Key: "Esc", Description: "Back"},
	}
}

// Close settles a spin that is still animating so the tokens already
// spent always buy a prize.
func (w *WheelScreen) Close() {
	if res, ok := w.sel.Settle(); ok {
		w.finish(res)
	}
}

func (w *WheelScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return w, w.handleFrame(msg)
	case spinner.TickMsg:
		if !w.spinning {
			return w, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd
	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if w.spinning {
			return w, nil
		}
		var cmd tea.Cmd
		w.button, cmd = w.button.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *WheelScreen) spin() tea.Cmd {
	ticket, ok := w.sel.Spin()
	if !ok {
		w.notice = fmt.Sprintf("Not enough tokens! A spin costs %d. Play trivia to earn more.", prize.SpinCost)
		return nil
	}
	w.table = w.sel.Table()
	w.ticket = ticket
	w.spinning = true
	w.result = nil
	w.notice = ""

	// Land on the drawn slot after a few full turns.
	n := len(w.table)
	w.steps = fullTurns*n + (ticket.Slot-w.highlight+n)%n
	return tea.Batch(w.spinner.Tick, frameCmd(ticket.ID, 0))
}

func (w *WheelScreen) handleFrame(msg frameMsg) tea.Cmd {
	if !w.spinning || msg.spinID != w.ticket.ID {
		return nil
	}
	if msg.step >= w.steps {
		if res, ok := w.sel.Stop(w.ticket); ok {
			w.finish(res)
		}
		return nil
	}
	w.highlight = (w.highlight + 1) % len(w.table)
	return frameCmd(msg.spinID, msg.step+1)
}

func (w *WheelScreen) finish(res prize.Resolution) {
	w.spinning = false
	w.highlight = res.Ticket.Slot
	w.result = &res
}

func frameCmd(spinID string, step int) tea.Cmd {
	delay := baseFrameDelay + time.Duration(step)*frameSlowdown
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return frameMsg{spinID: spinID, step: step}
	})
}

// resultText describes a resolution for the banner.
func resultText(res prize.Resolution) string {
	out := res.Outcome
	switch {
	case res.NewUnlock:
		return fmt.Sprintf("🎉 You unlocked %s!", out.Label)
	case res.Duplicate:
		return fmt.Sprintf("%s is already in your collection.", out.Label)
	case res.TokensAwarded > 0:
		return fmt.Sprintf("🪙 You won %d tokens!", res.TokensAwarded)
	default:
		return "No prize this time. Try again!"
	}
}
