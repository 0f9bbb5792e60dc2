// Package app hosts the Bubble Tea program: the screen router plus the
// header and footer around it.
package app

import (
	"fmt"
	"os"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/toyvox/internal/arcade"
	"github.com/abhisek/toyvox/internal/ledger"
	"github.com/abhisek/toyvox/internal/router"
	"github.com/abhisek/toyvox/internal/screen"
	"github.com/abhisek/toyvox/internal/screens/home"
	"github.com/abhisek/toyvox/internal/screens/welcome"
	"github.com/abhisek/toyvox/internal/ui/layout"
)

// Options configures Run.
type Options struct {
	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// hud is the header's view of the ledger. The ledger publishes from
// whichever goroutine mutated it, so the latest progress is kept in an
// atomic and read during View.
type hud struct {
	progress atomic.Pointer[arcade.Progress]
}

func (h *hud) set(p arcade.Progress) {
	h.progress.Store(&p)
}

func (h *hud) stats() layout.HeaderStats {
	p := h.progress.Load()
	if p == nil {
		return layout.HeaderStats{}
	}
	return layout.HeaderStats{Tokens: p.Tokens, Unlocked: p.Unlocked, Total: p.Total}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	hud    *hud
	width  int
	height int
}

// newAppModel creates the root model and subscribes its header to the
// ledger. The returned func ends the subscription.
func newAppModel(svc *arcade.Services, opts Options) (AppModel, func()) {
	h := &hud{}
	h.set(svc.Progress())
	unsubscribe := svc.Ledger.Subscribe(func(snap ledger.Snapshot) {
		h.set(arcade.ProgressOf(snap, svc.Catalog))
	})

	homeFactory := func() screen.Screen { return home.New(svc) }
	var first screen.Screen
	if opts.SkipWelcome {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}

	return AppModel{
		router: router.New(first),
		hud:    h,
	}, unsubscribe
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes the full frame as a string.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.hud.stats(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

// Run starts the Bubble Tea program and blocks until it exits. Screens
// still on the stack are closed afterwards so an in-flight spin is settled
// and an unfinished game is dropped.
func Run(svc *arcade.Services, opts Options) error {
	model, unsubscribe := newAppModel(svc, opts)
	defer unsubscribe()
	defer model.router.CloseAll()

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	svc.Log.Info().Msg("app: exited")
	return nil
}
