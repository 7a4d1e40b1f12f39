package questscreen

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/homeworkgoat/goat/internal/profile"
	"github.com/homeworkgoat/goat/internal/quest"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuest() (quest.Quest, []quest.Question) {
	questions := []quest.Question{
		{
			ID:           "q1",
			Prompt:       "What is 2 + 3?",
			Choices:      []string{"4", "5", "6", "7"},
			CorrectIndex: 1,
			Skill:        quest.SkillAddition,
			Difficulty:   quest.DifficultyEasy,
			Hint:         "Count up from 2.",
		},
		{
			ID:           "q2",
			Prompt:       "What is 10 - 4?",
			Choices:      []string{"5", "6", "7", "8"},
			CorrectIndex: 1,
			Skill:        quest.SkillSubtraction,
			Difficulty:   quest.DifficultyEasy,
		},
	}
	q := quest.Quest{
		ID:                "test-quest",
		Title:             "Test Quest",
		Narrative:         "Gruff needs your help!",
		QuestionIDs:       []string{"q1", "q2"},
		RewardXP:          40,
		CompletionMessage: "You did it!",
	}
	return q, questions
}

func newTestScreen(t *testing.T) *QuestScreen {
	t.Helper()
	q, questions := testQuest()
	svc := profile.NewService(nil)
	return New(q, questions, svc, nil)
}

func TestStartsInIntro(t *testing.T) {
	s := newTestScreen(t)
	if got := s.session.Phase(); got != quest.PhaseIntro {
		t.Fatalf("Phase = %v, want %v", got, quest.PhaseIntro)
	}
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty intro view")
	}
}

func TestEnterBeginsQuestions(t *testing.T) {
	s := newTestScreen(t)
	s.Update(specialKey(tea.KeyEnter))
	if got := s.session.Phase(); got != quest.PhaseQuestion {
		t.Fatalf("Phase = %v, want %v", got, quest.PhaseQuestion)
	}
}

func TestNumberKeySubmitsAnswer(t *testing.T) {
	s := newTestScreen(t)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('2'))
	if got := s.session.Phase(); got != quest.PhaseFeedback {
		t.Fatalf("Phase = %v, want %v", got, quest.PhaseFeedback)
	}
	if !s.session.LastCorrect() {
		t.Error("choice 2 should be correct")
	}
}

func TestArrowsAndEnterSubmit(t *testing.T) {
	s := newTestScreen(t)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))
	if got := s.session.Phase(); got != quest.PhaseFeedback {
		t.Fatalf("Phase = %v, want %v", got, quest.PhaseFeedback)
	}
	if !s.session.LastCorrect() {
		t.Error("second choice should be correct")
	}
}

func TestHintShownOnH(t *testing.T) {
	s := newTestScreen(t)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('h'))
	if s.session.HintsUsed() != 1 {
		t.Errorf("HintsUsed = %d, want 1", s.session.HintsUsed())
	}
	if !s.showHint {
		t.Error("expected hint to be visible")
	}
}

func TestCompletingQuestPushesSummary(t *testing.T) {
	s := newTestScreen(t)
	s.Update(specialKey(tea.KeyEnter))

	// Answer both questions, advancing through feedback.
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('2'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if got := s.session.Phase(); got != quest.PhaseComplete {
		t.Fatalf("Phase = %v, want %v", got, quest.PhaseComplete)
	}
	if cmd == nil {
		t.Fatal("expected a command pushing the summary screen")
	}
}

func TestEscShowsQuitConfirm(t *testing.T) {
	s := newTestScreen(t)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	// N resumes.
	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Error("expected confirmation dismissed")
	}
	if got := s.session.Phase(); got != quest.PhaseQuestion {
		t.Errorf("Phase = %v, want %v", got, quest.PhaseQuestion)
	}
}

func TestQuitConfirmAbandons(t *testing.T) {
	s := newTestScreen(t)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if got := s.session.Phase(); got != quest.PhaseIdle {
		t.Errorf("Phase = %v, want %v", got, quest.PhaseIdle)
	}
	if cmd == nil {
		t.Error("expected a pop command")
	}
}
