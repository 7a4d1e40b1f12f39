// Package app wires the screens, router, and profile into the root Bubble
// Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/homeworkgoat/goat/internal/content"
	"github.com/homeworkgoat/goat/internal/profile"
	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/router"
	"github.com/homeworkgoat/goat/internal/screen"
	"github.com/homeworkgoat/goat/internal/screens/home"
	"github.com/homeworkgoat/goat/internal/screens/welcome"
	"github.com/homeworkgoat/goat/internal/ui/layout"
)

// Options carries the app's dependencies. Generator may be nil when no LLM
// provider is configured; the quest board then hides AI generation.
type Options struct {
	Library   *content.Library
	Generator content.Generator
	Profile   *profile.Service
	Sink      quest.Sink
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	profile *profile.Service
	width   int
	height  int
}

// newAppModel creates a new AppModel. First-time players land on the
// welcome screen; returning players go straight home.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Library, opts.Generator, opts.Profile, opts.Sink)
	}

	var initial screen.Screen
	if opts.Profile.Profile().Name == "" {
		initial = welcome.New(opts.Profile, homeFactory)
	} else {
		initial = homeFactory()
	}

	return AppModel{
		router:  router.New(initial),
		profile: opts.Profile,
	}
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

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Screens own their esc behavior; the quest screen turns it into a
	// confirmation instead of an unconditional pop.
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	p := m.profile.Profile()
	header := layout.RenderHeader(title, p.Level(), p.TotalXP, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for its key hints, with a navigation
// default for screens that don't provide any.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints := hp.KeyHints()
		if len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
