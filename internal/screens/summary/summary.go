// Package summary shows the result of a finished quest: score, accuracy,
// XP earned, and any level-up.
package summary

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

// SummaryScreen displays the quest summary.
type SummaryScreen struct {
	summary    quest.Summary
	message    string
	profileSvc *profile.Service
	leveledUp  bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. message is the quest's completion
// message; leveledUp flags that the reward pushed the player over a level
// boundary.
func New(summary quest.Summary, message string, profileSvc *profile.Service, leveledUp bool) *SummaryScreen {
	return &SummaryScreen{
		summary:    summary,
		message:    message,
		profileSvc: profileSvc,
		leveledUp:  leveledUp,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quest Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to quest board"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Pop both the summary and the quest screen to land back on
			// the quest board.
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			return s, tea.Sequence(pop, pop)
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quest complete!"))
	b.WriteString("\n\n")

	if s.message != "" {
		msgStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Align(lipgloss.Center).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			msgStyle.Render(s.message)))
		b.WriteString("\n\n")
	}

	// Duration.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	// Stats line.
	accuracy := fmt.Sprintf("%.0f%%", sum.Accuracy*100)
	statsLine := fmt.Sprintf("Score: %d/%d        Accuracy: %s        XP earned: %d",
		sum.Score, sum.Total, accuracy, sum.RewardXP)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if s.leveledUp {
		prof := s.profileSvc.Profile()
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("LEVEL UP!  You reached level %d!", prof.Level())))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		renderProgress(s.profileSvc, min(width-8, 50))))

	return b.String()
}

// renderProgress shows the XP bar toward the next level.
func renderProgress(svc *profile.Service, width int) string {
	p := svc.Profile()
	prog := p.Progress()

	percent := 0.0
	if prog.NeededForNextLevel > 0 {
		percent = float64(prog.CurrentIntoLevel) / float64(prog.NeededForNextLevel)
	}

	bar := components.NewProgressBar(fmt.Sprintf("Level %d", p.Level()), percent, false, width)
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
