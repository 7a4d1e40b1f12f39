// Package questboard lists available quests and can commission a brand-new
// one from the LLM generator.
package questboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/homeworkgoat/goat/internal/content"
	"github.com/homeworkgoat/goat/internal/profile"
	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/router"
	"github.com/homeworkgoat/goat/internal/screen"
	questscreen "github.com/homeworkgoat/goat/internal/screens/questscreen"
	"github.com/homeworkgoat/goat/internal/ui/layout"
	"github.com/homeworkgoat/goat/internal/ui/theme"
)

const generateTimeout = 60 * time.Second

// questGeneratedMsg is sent when LLM quest generation finishes.
type questGeneratedMsg struct {
	Generated *content.GeneratedQuest
	Err       error
}

// QuestBoardScreen lists quests from the library.
type QuestBoardScreen struct {
	lib        *content.Library
	generator  content.Generator
	profileSvc *profile.Service
	sink       quest.Sink

	quests     []quest.Quest
	selected   int
	generating bool
	errMsg     string
}

var _ screen.Screen = (*QuestBoardScreen)(nil)
var _ screen.KeyHintProvider = (*QuestBoardScreen)(nil)

// New creates a new QuestBoardScreen.
func New(lib *content.Library, generator content.Generator, profileSvc *profile.Service, sink quest.Sink) *QuestBoardScreen {
	return &QuestBoardScreen{
		lib:        lib,
		generator:  generator,
		profileSvc: profileSvc,
		sink:       sink,
		quests:     lib.Quests(),
	}
}

func (q *QuestBoardScreen) Init() tea.Cmd {
	return nil
}

func (q *QuestBoardScreen) Title() string {
	return "Quest Board"
}

func (q *QuestBoardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Start quest"},
	}
	if q.generator != nil {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "New AI quest"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (q *QuestBoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questGeneratedMsg:
		q.generating = false
		if msg.Err != nil {
			q.errMsg = fmt.Sprintf("Quest generation failed: %v", msg.Err)
			return q, nil
		}
		q.lib.AddQuest(msg.Generated.Quest, msg.Generated.Questions)
		q.quests = q.lib.Quests()
		q.selected = len(q.quests) - 1
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuestBoardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.generating {
		return q, nil
	}
	q.errMsg = ""

	switch msg.String() {
	case "esc":
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if q.selected > 0 {
			q.selected--
		}
	case "down", "j":
		if q.selected < len(q.quests)-1 {
			q.selected++
		}
	case "enter":
		return q, q.startQuest()
	case "n", "N":
		if q.generator != nil {
			q.generating = true
			return q, q.generateQuest()
		}
	}
	return q, nil
}

// startQuest resolves the selected quest's questions and pushes the play
// screen.
func (q *QuestBoardScreen) startQuest() tea.Cmd {
	if q.selected < 0 || q.selected >= len(q.quests) {
		return nil
	}
	chosen := q.quests[q.selected]
	questions := q.lib.ResolveQuestions(chosen.QuestionIDs)
	if len(questions) == 0 {
		q.errMsg = "That quest has no playable questions."
		return nil
	}

	s := questscreen.New(chosen, questions, q.profileSvc, q.sink)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

// generateQuest asks the LLM for a fresh quest.
func (q *QuestBoardScreen) generateQuest() tea.Cmd {
	titles := make([]string, 0, len(q.quests))
	for _, qst := range q.quests {
		titles = append(titles, qst.Title)
	}
	prof := q.profileSvc.Profile()
	level := prof.Level()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		gen, err := q.generator.GenerateQuest(ctx, content.GenerateInput{
			PlayerLevel:    level,
			ExistingTitles: titles,
		})
		return questGeneratedMsg{Generated: gen, Err: err}
	}
}

func (q *QuestBoardScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Pick a quest, brave goat!"))
	b.WriteString("\n\n")

	completed := q.profileSvc.Profile()

	for i, qst := range q.quests {
		marker := "  "
		if i == q.selected {
			marker = "▸ "
		}
		check := "  "
		if completed.HasCompleted(qst.ID) {
			check = "✓ "
		}

		line := fmt.Sprintf("%s%s%s", marker, check, qst.Title)
		detail := fmt.Sprintf("    %s  (%d questions, %d XP)",
			qst.Description, len(qst.QuestionIDs), qst.RewardXP)

		if i == q.selected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	if q.generator != nil {
		b.WriteString("\n")
		if q.generating {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Accent).
				Render("  Gruff is dreaming up a new quest..."))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("  Press N for a brand-new AI quest"))
		}
		b.WriteString("\n")
	}

	if q.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + q.errMsg))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-8, 64)).Render(b.String()))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
