package quest

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the session lifecycle phase.
type Phase int

const (
	PhaseIdle     Phase = iota // no quest loaded
	PhaseIntro                 // showing quest narrative
	PhaseQuestion              // waiting for an answer
	PhaseFeedback              // showing answer feedback
	PhaseComplete              // all questions answered
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseIntro:
		return "intro"
	case PhaseQuestion:
		return "question"
	case PhaseFeedback:
		return "feedback"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session runs one quest attempt. It owns all per-attempt state and emits
// lifecycle events to its Sink; it holds no references to analytics or
// persistence beyond that. The type carries no singleton assumption —
// callers may run any number of independent sessions, one goroutine each.
//
// Mutating calls made from a phase that does not permit them are silent
// no-ops: the UI gates input by phase, and a stray call (a double-submit
// from a double keypress, say) must not corrupt or crash the session.
type Session struct {
	id        string
	quest     Quest
	questions []Question

	phase    Phase
	index    int
	selected int
	correct  int
	wrong    int
	streak   int

	lastCorrect bool
	hintsUsed   int
	feedback    string

	startedAt         time.Time
	questionStartedAt time.Time

	sink     Sink
	messages MessageSource
	now      func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithSink sets the event sink.
func WithSink(s Sink) Option {
	return func(sess *Session) { sess.sink = s }
}

// WithMessages sets the feedback message source.
func WithMessages(m MessageSource) Option {
	return func(sess *Session) { sess.messages = m }
}

// WithClock sets the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(sess *Session) { sess.now = now }
}

// NewSession creates an idle session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		phase:    PhaseIdle,
		selected: -1,
		messages: NewStockMessages(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads a quest and its resolved questions, resets all counters, and
// moves to the intro phase. The question list is taken as-is: if the
// resolver dropped some IDs, the session runs on the subset. Starting over
// a live or completed session replaces it.
func (s *Session) Start(q Quest, questions []Question) {
	s.id = uuid.New().String()
	s.quest = q
	s.questions = questions
	s.phase = PhaseIntro
	s.index = 0
	s.selected = -1
	s.correct = 0
	s.wrong = 0
	s.streak = 0
	s.lastCorrect = false
	s.hintsUsed = 0
	s.feedback = ""
	s.startedAt = s.now()
	s.questionStartedAt = time.Time{}

	s.emit(QuestStarted{
		SessionID: s.id,
		QuestID:   q.ID,
		Title:     q.Title,
	})
}

// BeginQuestions moves from intro to the first question. No-op outside
// intro, and no-op when the resolver left no questions to run: the session
// stays in intro, where Abandon remains the exit.
func (s *Session) BeginQuestions() {
	if s.phase != PhaseIntro || len(s.questions) == 0 {
		return
	}
	s.phase = PhaseQuestion
	s.hintsUsed = 0
	s.questionStartedAt = s.now()
}

// SubmitAnswer records the player's choice for the current question and
// moves to feedback. No-op outside the question phase.
func (s *Session) SubmitAnswer(choiceIndex int) {
	if s.phase != PhaseQuestion {
		return
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return
	}

	isCorrect := choiceIndex == q.CorrectIndex
	elapsed := s.now().Sub(s.questionStartedAt)

	s.selected = choiceIndex
	s.lastCorrect = isCorrect
	if isCorrect {
		s.correct++
		s.streak++
		s.feedback = s.messages.Praise()
		if bonus := StreakBonus(s.streak); bonus != "" {
			s.feedback += " " + bonus
		}
	} else {
		s.wrong++
		s.streak = 0
		s.feedback = s.messages.Consolation()
	}
	s.phase = PhaseFeedback

	s.emit(QuestionAnswered{
		SessionID:     s.id,
		QuestID:       s.quest.ID,
		QuestionID:    q.ID,
		Skill:         q.Skill,
		Difficulty:    q.Difficulty,
		Correct:       isCorrect,
		SelectedIndex: choiceIndex,
		CorrectIndex:  q.CorrectIndex,
		ElapsedMs:     elapsed.Milliseconds(),
		HintsUsed:     s.hintsUsed,
		Attempt:       1,
	})
}

// RequestHint counts a hint request against the current question and returns
// the hint text. Valid while a question is shown or its feedback is up;
// returns "" otherwise. The counter is uncapped.
func (s *Session) RequestHint() string {
	if s.phase != PhaseQuestion && s.phase != PhaseFeedback {
		return ""
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return ""
	}
	s.hintsUsed++

	s.emit(HintUsed{
		SessionID:  s.id,
		QuestID:    s.quest.ID,
		QuestionID: q.ID,
		Skill:      q.Skill,
	})
	return s.hintFor(q)
}

// HintText returns the hint for the current question without counting a
// request. Display-only variant of RequestHint.
func (s *Session) HintText() string {
	q, ok := s.CurrentQuestion()
	if !ok {
		return ""
	}
	return s.hintFor(q)
}

func (s *Session) hintFor(q Question) string {
	if q.Hint != "" {
		return q.Hint
	}
	return s.messages.DefaultHint(q.Skill)
}

// Advance moves past feedback: to the next question if any remain, otherwise
// to completion. No-op outside the feedback phase. The caller persists the
// XP reward reported by the completion event; the session never touches a
// player profile itself.
func (s *Session) Advance() {
	if s.phase != PhaseFeedback {
		return
	}

	if s.index+1 < len(s.questions) {
		s.index++
		s.selected = -1
		s.feedback = ""
		s.hintsUsed = 0
		s.phase = PhaseQuestion
		s.questionStartedAt = s.now()
		return
	}

	elapsed := s.now().Sub(s.startedAt)
	s.phase = PhaseComplete

	s.emit(QuestCompleted{
		SessionID:   s.id,
		QuestID:     s.quest.ID,
		Title:       s.quest.Title,
		Score:       s.correct,
		Total:       len(s.questions),
		RewardXP:    s.quest.RewardXP,
		ElapsedSecs: int(elapsed.Seconds()),
	})
}

// Abandon ends a live session early and resets to idle. No-op from idle or
// complete, so no abandonment event fires for a session that never ran or
// already finished.
func (s *Session) Abandon() {
	switch s.phase {
	case PhaseIdle, PhaseComplete:
		return
	}

	ev := QuestAbandoned{
		SessionID: s.id,
		QuestID:   s.quest.ID,
		Title:     s.quest.Title,
		Answered:  s.correct + s.wrong,
		Total:     len(s.questions),
	}
	s.reset()
	s.emit(ev)
}

// reset restores idle-state defaults.
func (s *Session) reset() {
	s.id = ""
	s.quest = Quest{}
	s.questions = nil
	s.phase = PhaseIdle
	s.index = 0
	s.selected = -1
	s.correct = 0
	s.wrong = 0
	s.streak = 0
	s.lastCorrect = false
	s.hintsUsed = 0
	s.feedback = ""
	s.startedAt = time.Time{}
	s.questionStartedAt = time.Time{}
}

// CurrentQuestion returns the question at the current index, or false when
// the session is empty or complete.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.index < 0 || s.index >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.index], true
}

func (s *Session) emit(e Event) {
	if s.sink != nil {
		s.sink.Emit(e)
	}
}

// ID returns the session UUID, or "" when idle.
func (s *Session) ID() string { return s.id }

// Quest returns the quest being run.
func (s *Session) Quest() Quest { return s.quest }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the current question index.
func (s *Session) Index() int { return s.index }

// Total returns the number of resolved questions in this session.
func (s *Session) Total() int { return len(s.questions) }

// CorrectCount returns the number of correct answers so far.
func (s *Session) CorrectCount() int { return s.correct }

// IncorrectCount returns the number of incorrect answers so far.
func (s *Session) IncorrectCount() int { return s.wrong }

// Streak returns the current run of consecutive correct answers.
func (s *Session) Streak() int { return s.streak }

// HintsUsed returns the hint count for the current question.
func (s *Session) HintsUsed() int { return s.hintsUsed }

// SelectedIndex returns the last submitted choice, or -1.
func (s *Session) SelectedIndex() int { return s.selected }

// LastCorrect reports whether the most recent answer was correct.
func (s *Session) LastCorrect() bool { return s.lastCorrect }

// Feedback returns the message selected for the last answer.
func (s *Session) Feedback() string { return s.feedback }

// Summary describes a finished (or in-flight) session for display.
type Summary struct {
	QuestID  string
	Title    string
	Score    int
	Total    int
	Accuracy float64
	RewardXP int
	Duration time.Duration
}

// Summary builds a display summary from the current state.
func (s *Session) Summary() Summary {
	var accuracy float64
	answered := s.correct + s.wrong
	if answered > 0 {
		accuracy = float64(s.correct) / float64(answered)
	}
	var dur time.Duration
	if !s.startedAt.IsZero() {
		dur = s.now().Sub(s.startedAt)
	}
	return Summary{
		QuestID:  s.quest.ID,
		Title:    s.quest.Title,
		Score:    s.correct,
		Total:    len(s.questions),
		Accuracy: accuracy,
		RewardXP: s.quest.RewardXP,
		Duration: dur,
	}
}
