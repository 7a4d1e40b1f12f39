package questscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/ui/theme"
)

func (s *QuestScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}

	switch s.session.Phase() {
	case quest.PhaseIntro:
		return s.renderIntro(width)
	case quest.PhaseQuestion:
		return s.renderQuestion(width)
	case quest.PhaseFeedback:
		return s.renderFeedback(width)
	}
	return ""
}

// renderIntro shows the quest narrative before the first question.
func (s *QuestScreen) renderIntro(width int) string {
	q := s.session.Quest()

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(q.Title))
	b.WriteString("\n\n")

	narrative := q.Narrative
	if narrative == "" {
		narrative = q.Description
	}
	if narrative != "" {
		narStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, narStyle.Render(narrative)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d questions  *  %d XP reward", s.session.Total(), q.RewardXP)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render("Press Enter when you're ready!"))

	return b.String()
}

// renderQuestion shows the active question with its choices.
func (s *QuestScreen) renderQuestion(width int) string {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return ""
	}

	var b strings.Builder

	// Progress info line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", q.Skill.DisplayName()))

	streakStr := ""
	if s.session.Streak() >= 2 {
		streakStr = fmt.Sprintf("  %s %d",
			lipgloss.NewStyle().Foreground(theme.Accent).Render("~"),
			s.session.Streak())
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d%s",
			s.session.Index()+1,
			s.session.Total(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			s.session.CorrectCount(),
			streakStr,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// Question prompt (centered).
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(s.renderChoices(q, width))

	if s.showHint {
		hint := s.session.HintText()
		if hint != "" {
			b.WriteString("\n\n")
			hintStyle := lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.Accent).
				Italic(true)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				hintStyle.Render("Hint: "+hint)))
		}
	}

	return b.String()
}

// renderChoices renders the answer choices.
func (s *QuestScreen) renderChoices(q quest.Question, width int) string {
	var b strings.Builder
	for i, choice := range q.Choices {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, choice)

		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter")
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback shows the result of the last answer.
func (s *QuestScreen) renderFeedback(width int) string {
	q, _ := s.session.CurrentQuestion()

	var b strings.Builder
	b.WriteString("\n\n")

	if s.session.LastCorrect() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(s.session.Feedback()))
		if s.session.Streak() >= 3 {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Render(fmt.Sprintf("%d in a row!", s.session.Streak())))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(s.session.Feedback()))
		if len(q.Choices) > 0 && q.CorrectIndex < len(q.Choices) {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("The answer was: %s", q.Choices[q.CorrectIndex])))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the leave-quest confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this quest?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("You won't earn the quest reward."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
