package stats

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/homeworkgoat/goat/internal/profile"
	"github.com/homeworkgoat/goat/internal/quest"
)

func TestStatsScreen_EmptyProfile(t *testing.T) {
	s := New(profile.NewService(nil))
	view := s.View(80, 24)
	if !strings.Contains(view, "No questions answered yet") {
		t.Error("expected empty-state message")
	}
}

func TestStatsScreen_ShowsSkillRows(t *testing.T) {
	svc := profile.NewService(nil)
	svc.RecordAnswer(quest.SkillAddition, true)
	svc.RecordAnswer(quest.SkillAddition, true)
	svc.RecordAnswer(quest.SkillAddition, false)

	s := New(svc)
	view := s.View(80, 24)
	if !strings.Contains(view, "Addition") {
		t.Error("expected Addition row in view")
	}
	if !strings.Contains(view, "2/3") {
		t.Error("expected 2/3 correct in view")
	}
}

func TestStatsScreen_EscPops(t *testing.T) {
	s := New(profile.NewService(nil))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a pop command on Esc")
	}
}
