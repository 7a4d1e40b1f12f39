// Package welcome shows the first-run screen: banner, mascot, and the
// player-name prompt. Once a name is saved the app boots straight to home.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/homeworkgoat/goat/internal/profile"
	"github.com/homeworkgoat/goat/internal/router"
	"github.com/homeworkgoat/goat/internal/screen"
	"github.com/homeworkgoat/goat/internal/ui/components"
	"github.com/homeworkgoat/goat/internal/ui/layout"
	"github.com/homeworkgoat/goat/internal/ui/theme"
)

const maxNameLength = 20

// WelcomeScreen greets a new player and asks for their name.
type WelcomeScreen struct {
	profileSvc  *profile.Service
	homeFactory func() screen.Screen
	input       components.TextInput
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// homeFactory once a name is entered.
func New(profileSvc *profile.Service, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		profileSvc:  profileSvc,
		homeFactory: homeFactory,
		input:       components.NewTextInput("What's your name?", maxNameLength),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Let's go!"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(w.input.Value())
		if name == "" {
			return w, nil
		}
		w.profileSvc.SetName(name)
		homeScreen := w.homeFactory()
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: homeScreen}
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Math quests with Gruff the goat!")
	sections = append(sections, tagline)
	sections = append(sections, "", "")

	prompt := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Tell Gruff your name to begin:")
	sections = append(sections, prompt)
	sections = append(sections, "")
	sections = append(sections, w.input.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
