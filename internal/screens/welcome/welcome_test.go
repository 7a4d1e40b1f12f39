package welcome

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/homeworkgoat/goat/internal/profile"
	"github.com/homeworkgoat/goat/internal/router"
	"github.com/homeworkgoat/goat/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *profile.Service, *int) {
	callCount := 0
	svc := profile.NewService(nil)
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(svc, factory), svc, &callCount
}

func typeName(w *WelcomeScreen, name string) {
	for _, r := range name {
		w.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}

func TestEnterWithEmptyNameDoesNothing(t *testing.T) {
	w, _, callCount := newTestWelcome()
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command with an empty name")
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called, got %d", *callCount)
	}
}

func TestEnterWithNameReplacesScreen(t *testing.T) {
	w, svc, callCount := newTestWelcome()

	typeName(w, "Maya")
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after entering a name")
	}

	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
	if got := svc.Profile().Name; got != "Maya" {
		t.Errorf("profile name = %q, want %q", got, "Maya")
	}
}

func TestNameIsTrimmed(t *testing.T) {
	w, svc, _ := newTestWelcome()

	typeName(w, "  Sam  ")
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := svc.Profile().Name; got != "Sam" {
		t.Errorf("profile name = %q, want %q", got, "Sam")
	}
}
