// Package stats shows the player's lifetime progress: level, XP, per-skill
// accuracy, and quest totals.
package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/homeworkgoat/goat/internal/profile"
	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/router"
	"github.com/homeworkgoat/goat/internal/screen"
	"github.com/homeworkgoat/goat/internal/ui/components"
	"github.com/homeworkgoat/goat/internal/ui/layout"
	"github.com/homeworkgoat/goat/internal/ui/theme"
)

// StatsScreen displays the player's profile statistics.
type StatsScreen struct {
	profileSvc *profile.Service
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(profileSvc *profile.Service) *StatsScreen {
	return &StatsScreen{profileSvc: profileSvc}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "My Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	p := s.profileSvc.Profile()

	var b strings.Builder
	b.WriteString("\n")

	title := p.Name
	if title == "" {
		title = "Your stats"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		renderLevel(&p, min(width-8, 50))))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Quests done: %d        Best streak: %d        Hints used: %d",
		p.QuestsCompleted, p.BestStreak, p.HintsUsed)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skills")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(renderSkillRows(&p, width))

	return b.String()
}

// renderLevel shows the level header and XP progress bar.
func renderLevel(p *profile.Profile, width int) string {
	prog := p.Progress()
	percent := 0.0
	if prog.NeededForNextLevel > 0 {
		percent = float64(prog.CurrentIntoLevel) / float64(prog.NeededForNextLevel)
	}

	bar := components.NewProgressBar(fmt.Sprintf("Level %d", p.Level()), percent, false, width)
	detail := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d XP total   %d / %d XP to next level",
			p.TotalXP, prog.CurrentIntoLevel, prog.NeededForNextLevel))

	return bar.View() + "\n" + detail
}

// renderSkillRows lists per-skill accuracy in a fixed skill order.
func renderSkillRows(p *profile.Profile, width int) string {
	var b strings.Builder
	any := false

	for _, skill := range quest.AllSkills() {
		st, ok := p.Skills[skill]
		if !ok || st.Attempted == 0 {
			continue
		}
		any = true

		line := fmt.Sprintf("  %-16s %3d/%-3d correct    %.0f%%",
			skill.DisplayName(), st.Correct, st.Attempted, st.Accuracy()*100)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if st.Accuracy() >= 0.9 {
			style = style.Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if !any {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No questions answered yet. Go play a quest!"))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
