// Package questscreen plays one quest: intro narrative, questions with
// hints, per-answer feedback, and the hand-off to the summary screen.
package questscreen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/homeworkgoat/goat/internal/profile"
	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/router"
	"github.com/homeworkgoat/goat/internal/screen"
	"github.com/homeworkgoat/goat/internal/screens/summary"
	"github.com/homeworkgoat/goat/internal/ui/layout"
)

// QuestScreen drives a quest.Session from the keyboard.
type QuestScreen struct {
	session    *quest.Session
	profileSvc *profile.Service

	selected    int
	showHint    bool
	confirmQuit bool

	// levelBefore is captured at start so the summary can announce
	// a level-up.
	levelBefore int
}

var _ screen.Screen = (*QuestScreen)(nil)
var _ screen.KeyHintProvider = (*QuestScreen)(nil)

// New creates a QuestScreen for the given quest and its resolved questions.
func New(q quest.Quest, questions []quest.Question, profileSvc *profile.Service, sink quest.Sink) *QuestScreen {
	opts := []quest.Option{}
	if sink != nil {
		opts = append(opts, quest.WithSink(sink))
	}
	s := quest.NewSession(opts...)
	s.Start(q, questions)

	prof := profileSvc.Profile()
	return &QuestScreen{
		session:     s,
		profileSvc:  profileSvc,
		levelBefore: prof.Level(),
	}
}

func (s *QuestScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestScreen) Title() string {
	return s.session.Quest().Title
}

func (s *QuestScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quest"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.session.Phase() {
	case quest.PhaseIntro:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	case quest.PhaseQuestion:
		return []layout.KeyHint{
			{Key: "1-4/↑↓", Description: "Answer"},
			{Key: "H", Description: "Hint"},
			{Key: "Esc", Description: "Leave"},
		}
	case quest.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	}
	return nil
}

func (s *QuestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	return s.handleKey(kmsg)
}

func (s *QuestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.session.Abandon()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.session.Phase() {
	case quest.PhaseIntro:
		switch key {
		case "enter":
			s.session.BeginQuestions()
			s.selected = 0
			s.showHint = false
		case "esc":
			s.session.Abandon()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case quest.PhaseQuestion:
		return s.handleQuestionKey(key)

	case quest.PhaseFeedback:
		s.session.Advance()
		s.selected = 0
		s.showHint = false
		if s.session.Phase() == quest.PhaseComplete {
			return s, s.finish()
		}
	}

	return s, nil
}

func (s *QuestScreen) handleQuestionKey(key string) (screen.Screen, tea.Cmd) {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(q.Choices)-1 {
			s.selected++
		}
	case "enter":
		s.session.SubmitAnswer(s.selected)
	case "h", "H":
		s.session.RequestHint()
		s.showHint = true
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(q.Choices) {
			s.selected = idx
			s.session.SubmitAnswer(idx)
		}
	}
	return s, nil
}

// finish pushes the summary screen once the quest is complete.
func (s *QuestScreen) finish() tea.Cmd {
	sum := s.session.Summary()
	prof := s.profileSvc.Profile()
	levelAfter := prof.Level()
	sumScreen := summary.New(sum, s.session.Quest().CompletionMessage, s.profileSvc, levelAfter > s.levelBefore)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: sumScreen}
	}
}
