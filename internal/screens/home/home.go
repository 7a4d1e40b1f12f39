// Package home is the main menu: mascot, level progress, and navigation
// into the quest board and stats.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/homeworkgoat/goat/internal/content"
	"github.com/homeworkgoat/goat/internal/profile"
	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/router"
	"github.com/homeworkgoat/goat/internal/screen"
	"github.com/homeworkgoat/goat/internal/screens/questboard"
	"github.com/homeworkgoat/goat/internal/screens/stats"
	"github.com/homeworkgoat/goat/internal/ui/components"
	"github.com/homeworkgoat/goat/internal/ui/theme"
)

// hotStreakThreshold puts Gruff in a celebrating mood.
const hotStreakThreshold = 5

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	profileSvc *profile.Service
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(lib *content.Library, generator content.Generator, profileSvc *profile.Service, sink quest.Sink) *HomeScreen {
	items := []components.MenuItem{
		{Label: "QUEST BOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: questboard.New(lib, generator, profileSvc, sink),
				}
			}
		}},
		{Label: "MY STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(profileSvc)}
			}
		}},
		{Label: "EXIT GAME", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		profileSvc: profileSvc,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	p := h.profileSvc.Profile()

	var sections []string

	greeting := "Welcome back!"
	if p.Name != "" {
		greeting = fmt.Sprintf("Welcome back, %s!", p.Name)
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(greeting))

	variant := MascotIdle
	if p.BestStreak >= hotStreakThreshold {
		variant = MascotCelebrating
	}
	sections = append(sections, RenderMascot(variant))

	sections = append(sections, renderLevelBar(&p, min(width-8, 50)))
	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderLevelBar shows the player's level and progress toward the next one.
func renderLevelBar(p *profile.Profile, width int) string {
	prog := p.Progress()
	percent := 0.0
	if prog.NeededForNextLevel > 0 {
		percent = float64(prog.CurrentIntoLevel) / float64(prog.NeededForNextLevel)
	}

	label := fmt.Sprintf("Level %d", p.Level())
	bar := components.NewProgressBar(label, percent, false, width)

	detail := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d / %d XP to next level", prog.CurrentIntoLevel, prog.NeededForNextLevel))

	return bar.View() + "\n" + detail
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
