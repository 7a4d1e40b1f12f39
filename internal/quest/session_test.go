package quest

import (
	"testing"
	"time"
)

// stubMessages is a deterministic MessageSource for assertions.
type stubMessages struct{}

func (stubMessages) Praise() string             { return "praise" }
func (stubMessages) Consolation() string        { return "consolation" }
func (stubMessages) DefaultHint(s Skill) string { return "default-hint:" + string(s) }

// captureSink records every emitted event.
type captureSink struct {
	events []Event
}

func (c *captureSink) Emit(e Event) { c.events = append(c.events, e) }

func (c *captureSink) named(name string) []Event {
	var out []Event
	for _, e := range c.events {
		if e.EventName() == name {
			out = append(out, e)
		}
	}
	return out
}

func testQuestions(n int) []Question {
	qs := make([]Question, 0, n)
	skills := AllSkills()
	for i := 0; i < n; i++ {
		qs = append(qs, Question{
			ID:           "q" + string(rune('1'+i)),
			Prompt:       "What is 2 + 2?",
			Choices:      []string{"3", "4", "5", "6"},
			CorrectIndex: 1,
			Skill:        skills[i%len(skills)],
			Difficulty:   DifficultyEasy,
			Hint:         "Count on your fingers.",
		})
	}
	return qs
}

func testQuest(n int) Quest {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = "q" + string(rune('1'+i))
	}
	return Quest{
		ID:                "meadow-math",
		Title:             "Meadow Math",
		Narrative:         "The goat is hungry for homework!",
		QuestionIDs:       ids,
		RewardXP:          50,
		CompletionMessage: "The goat is full!",
	}
}

func startedSession(t *testing.T, n int) (*Session, *captureSink) {
	t.Helper()
	sink := &captureSink{}
	s := NewSession(WithSink(sink), WithMessages(stubMessages{}))
	s.Start(testQuest(n), testQuestions(n))
	return s, sink
}

func TestStart_ResetsAndEnteresIntro(t *testing.T) {
	s, sink := startedSession(t, 3)

	if s.Phase() != PhaseIntro {
		t.Errorf("phase = %v, want intro", s.Phase())
	}
	if s.ID() == "" {
		t.Error("expected a session ID after Start")
	}
	if got := len(sink.named("quest_started")); got != 1 {
		t.Errorf("quest_started events = %d, want 1", got)
	}
}

func TestFullWalk_ThreeQuestions(t *testing.T) {
	s, _ := startedSession(t, 3)

	wantPhases := []Phase{PhaseQuestion, PhaseFeedback, PhaseQuestion, PhaseFeedback, PhaseQuestion, PhaseFeedback, PhaseComplete}
	var got []Phase

	s.BeginQuestions()
	got = append(got, s.Phase())
	for i := 0; i < 3; i++ {
		s.SubmitAnswer(0) // wrong on purpose; phase walk is what matters
		got = append(got, s.Phase())
		s.Advance()
		if s.Phase() != PhaseComplete {
			got = append(got, s.Phase())
		}
	}
	got = append(got, s.Phase())

	if len(got) != len(wantPhases) {
		t.Fatalf("phase walk length = %d, want %d (%v)", len(got), len(wantPhases), got)
	}
	for i := range got {
		if got[i] != wantPhases[i] {
			t.Errorf("phase[%d] = %v, want %v", i, got[i], wantPhases[i])
		}
	}

	if s.CorrectCount()+s.IncorrectCount() != 3 {
		t.Errorf("answered = %d, want 3", s.CorrectCount()+s.IncorrectCount())
	}
}

func TestSubmitAnswer_StreakAndMessages(t *testing.T) {
	s, _ := startedSession(t, 6)
	s.BeginQuestions()

	// Two correct: plain praise, streak 2.
	for i := 0; i < 2; i++ {
		s.SubmitAnswer(1)
		if s.Feedback() != "praise" {
			t.Errorf("feedback at streak %d = %q, want plain praise", s.Streak(), s.Feedback())
		}
		s.Advance()
	}

	// Third correct: streak 3 bonus appended.
	s.SubmitAnswer(1)
	if s.Streak() != 3 {
		t.Fatalf("streak = %d, want 3", s.Streak())
	}
	if s.Feedback() == "praise" {
		t.Error("expected streak bonus text appended at streak 3")
	}
	s.Advance()

	// An incorrect answer resets the streak and picks a consolation.
	s.SubmitAnswer(0)
	if s.Streak() != 0 {
		t.Errorf("streak after wrong answer = %d, want 0", s.Streak())
	}
	if s.Feedback() != "consolation" {
		t.Errorf("feedback = %q, want consolation", s.Feedback())
	}
}

func TestStreakBonus_Thresholds(t *testing.T) {
	tests := []struct {
		streak   int
		wantText bool
	}{
		{0, false},
		{2, false},
		{3, true},
		{4, true},
		{5, true},
		{12, true},
	}
	for _, tt := range tests {
		got := StreakBonus(tt.streak)
		if (got != "") != tt.wantText {
			t.Errorf("StreakBonus(%d) = %q, wantText=%t", tt.streak, got, tt.wantText)
		}
	}
	// 5+ gets the bigger bonus, distinct from the 3-streak text.
	if StreakBonus(3) == StreakBonus(5) {
		t.Error("expected distinct bonus text at streak 5")
	}
}

func TestSubmitAnswer_NoOpOutsideQuestionPhase(t *testing.T) {
	s, sink := startedSession(t, 2)

	// Still in intro: ignored.
	s.SubmitAnswer(1)
	if s.Phase() != PhaseIntro || s.CorrectCount() != 0 {
		t.Errorf("submit in intro mutated state: phase=%v correct=%d", s.Phase(), s.CorrectCount())
	}

	s.BeginQuestions()
	s.SubmitAnswer(1)
	streak := s.Streak()

	// In feedback: ignored.
	s.SubmitAnswer(1)
	if s.CorrectCount() != 1 || s.Streak() != streak {
		t.Errorf("double submit counted: correct=%d streak=%d", s.CorrectCount(), s.Streak())
	}
	if got := len(sink.named("question_answered")); got != 1 {
		t.Errorf("question_answered events = %d, want 1", got)
	}
}

func TestRequestHint_CountsAndRepeats(t *testing.T) {
	s, sink := startedSession(t, 2)
	s.BeginQuestions()

	first := s.RequestHint()
	second := s.RequestHint()

	if s.HintsUsed() != 2 {
		t.Errorf("hints used = %d, want 2", s.HintsUsed())
	}
	if first != second || first != "Count on your fingers." {
		t.Errorf("hint texts = %q / %q, want matching question hint", first, second)
	}
	if got := len(sink.named("hint_used")); got != 2 {
		t.Errorf("hint_used events = %d, want 2", got)
	}

	// HintText is display-only and never counts.
	_ = s.HintText()
	if s.HintsUsed() != 2 {
		t.Errorf("HintText incremented counter to %d", s.HintsUsed())
	}
}

func TestRequestHint_FallsBackToSkillDefault(t *testing.T) {
	qs := testQuestions(1)
	qs[0].Hint = ""
	qs[0].Skill = SkillDivision

	s := NewSession(WithMessages(stubMessages{}))
	s.Start(testQuest(1), qs)
	s.BeginQuestions()

	if got := s.RequestHint(); got != "default-hint:division" {
		t.Errorf("hint = %q, want skill default", got)
	}
}

func TestHintCounter_ResetsPerQuestion(t *testing.T) {
	s, _ := startedSession(t, 2)
	s.BeginQuestions()
	s.RequestHint()
	s.SubmitAnswer(1)
	s.Advance()

	if s.HintsUsed() != 0 {
		t.Errorf("hints used after advance = %d, want 0", s.HintsUsed())
	}
}

func TestAnsweredEvent_CarriesHintsUsed(t *testing.T) {
	s, sink := startedSession(t, 1)
	s.BeginQuestions()
	s.RequestHint()
	s.RequestHint()
	s.SubmitAnswer(1)

	evs := sink.named("question_answered")
	if len(evs) != 1 {
		t.Fatalf("question_answered events = %d, want 1", len(evs))
	}
	ev := evs[0].(QuestionAnswered)
	if ev.HintsUsed != 2 {
		t.Errorf("event HintsUsed = %d, want 2", ev.HintsUsed)
	}
	if ev.Attempt != 1 {
		t.Errorf("event Attempt = %d, want 1", ev.Attempt)
	}
	if !ev.Correct || ev.SelectedIndex != 1 || ev.CorrectIndex != 1 {
		t.Errorf("event answer fields = %+v", ev)
	}
}

func TestAbandon_NoOpFromIdleAndComplete(t *testing.T) {
	sink := &captureSink{}
	s := NewSession(WithSink(sink), WithMessages(stubMessages{}))

	s.Abandon() // idle
	if len(sink.events) != 0 {
		t.Errorf("abandon from idle emitted %d events", len(sink.events))
	}

	s.Start(testQuest(1), testQuestions(1))
	s.BeginQuestions()
	s.SubmitAnswer(1)
	s.Advance()
	if s.Phase() != PhaseComplete {
		t.Fatalf("phase = %v, want complete", s.Phase())
	}

	before := len(sink.events)
	s.Abandon() // complete
	if len(sink.events) != before {
		t.Error("abandon from complete emitted an event")
	}
	if s.Phase() != PhaseComplete {
		t.Errorf("abandon from complete changed phase to %v", s.Phase())
	}
}

func TestAbandon_FromQuestionEmitsOnce(t *testing.T) {
	s, sink := startedSession(t, 3)
	s.BeginQuestions()
	s.SubmitAnswer(1)
	s.Advance()

	s.Abandon()

	evs := sink.named("quest_abandoned")
	if len(evs) != 1 {
		t.Fatalf("quest_abandoned events = %d, want 1", len(evs))
	}
	ev := evs[0].(QuestAbandoned)
	if ev.Answered != 1 || ev.Total != 3 {
		t.Errorf("abandoned event = %+v, want Answered=1 Total=3", ev)
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("phase after abandon = %v, want idle", s.Phase())
	}
	if s.Streak() != 0 || s.CorrectCount() != 0 {
		t.Error("abandon did not reset counters")
	}
}

func TestCompletion_EndToEnd(t *testing.T) {
	s, sink := startedSession(t, 2)
	s.BeginQuestions()
	s.SubmitAnswer(1)
	s.Advance()
	s.SubmitAnswer(1)
	s.Advance()

	if s.Phase() != PhaseComplete {
		t.Fatalf("phase = %v, want complete", s.Phase())
	}
	if s.CorrectCount() != 2 || s.IncorrectCount() != 0 {
		t.Errorf("counts = %d/%d, want 2/0", s.CorrectCount(), s.IncorrectCount())
	}

	evs := sink.named("quest_completed")
	if len(evs) != 1 {
		t.Fatalf("quest_completed events = %d, want 1", len(evs))
	}
	ev := evs[0].(QuestCompleted)
	if ev.Score != 2 || ev.Total != 2 || ev.RewardXP != 50 {
		t.Errorf("completion event = %+v, want Score=2 Total=2 RewardXP=50", ev)
	}
}

func TestElapsedTime_UsesInjectedClock(t *testing.T) {
	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return current }

	sink := &captureSink{}
	s := NewSession(WithSink(sink), WithMessages(stubMessages{}), WithClock(clock))
	s.Start(testQuest(1), testQuestions(1))
	s.BeginQuestions()

	current = current.Add(1500 * time.Millisecond)
	s.SubmitAnswer(1)

	ev := sink.named("question_answered")[0].(QuestionAnswered)
	if ev.ElapsedMs != 1500 {
		t.Errorf("ElapsedMs = %d, want 1500", ev.ElapsedMs)
	}

	current = current.Add(10 * time.Second)
	s.Advance()

	done := sink.named("quest_completed")[0].(QuestCompleted)
	if done.ElapsedSecs != 11 {
		t.Errorf("ElapsedSecs = %d, want 11", done.ElapsedSecs)
	}
}

func TestStart_RunsOnPartiallyResolvedSubset(t *testing.T) {
	// Quest declares 4 IDs but the resolver only produced 2 questions; the
	// session runs on what it got.
	s, _ := startedSession(t, 0)
	s.Start(testQuest(4), testQuestions(2))

	if s.Total() != 2 {
		t.Fatalf("total = %d, want 2", s.Total())
	}
	s.BeginQuestions()
	s.SubmitAnswer(1)
	s.Advance()
	s.SubmitAnswer(0)
	s.Advance()
	if s.Phase() != PhaseComplete {
		t.Errorf("phase = %v, want complete", s.Phase())
	}
}

func TestBeginQuestions_NoOpOutsideIntro(t *testing.T) {
	s, _ := startedSession(t, 2)
	s.BeginQuestions()
	s.SubmitAnswer(1)

	s.BeginQuestions() // in feedback: ignored
	if s.Phase() != PhaseFeedback {
		t.Errorf("phase = %v, want feedback", s.Phase())
	}
}

func TestCurrentQuestion_EmptyAndComplete(t *testing.T) {
	s := NewSession()
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("idle session returned a question")
	}

	s.Start(testQuest(1), nil)
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("empty session returned a question")
	}
}

func TestTwoIndependentSessions(t *testing.T) {
	a, _ := startedSession(t, 2)
	b, _ := startedSession(t, 2)

	a.BeginQuestions()
	a.SubmitAnswer(1)

	if b.Phase() != PhaseIntro || b.CorrectCount() != 0 {
		t.Error("sessions share state")
	}
	if a.ID() == b.ID() {
		t.Error("sessions share an ID")
	}
}

func TestBeginQuestionsWithNoQuestionsStaysInIntro(t *testing.T) {
	sink := &captureSink{}
	s := NewSession(WithSink(sink), WithMessages(stubMessages{}))
	s.Start(testQuest(0), nil)

	s.BeginQuestions()
	if s.Phase() != PhaseIntro {
		t.Errorf("phase = %v, want intro", s.Phase())
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("empty session returned a question")
	}

	// Abandon is still the way out.
	s.Abandon()
	if s.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", s.Phase())
	}
	if got := len(sink.named("quest_abandoned")); got != 1 {
		t.Errorf("quest_abandoned events = %d, want 1", got)
	}
}
