package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/homeworkgoat/goat/internal/profile"
	"github.com/homeworkgoat/goat/internal/quest"
)

func testSummary() quest.Summary {
	return quest.Summary{
		QuestID:  "test-quest",
		Title:    "Test Quest",
		Score:    4,
		Total:    5,
		Accuracy: 0.8,
		RewardXP: 50,
		Duration: 3 * time.Minute,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), "Well done!", profile.NewService(nil), false)
	if s.Title() != "Quest Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quest Complete")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), "Well done!", profile.NewService(nil), false)
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Well done!") {
		t.Error("expected completion message in view")
	}
}

func TestSummaryScreen_LevelUpCallout(t *testing.T) {
	s := New(testSummary(), "", profile.NewService(nil), true)
	view := s.View(80, 24)
	if !strings.Contains(view, "LEVEL UP") {
		t.Error("expected level-up callout in view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), "", profile.NewService(nil), false)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), "", profile.NewService(nil), false)
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
