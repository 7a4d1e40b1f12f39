package quest

// Session lifecycle events. The session dispatches these to a Sink after the
// corresponding state transition has fully completed; a sink that needs to do
// I/O must hand the event off to its own goroutine rather than block the
// caller, and its failures never reach back into the session.

// Event is a session lifecycle event record.
type Event interface {
	// EventName returns the analytics name of the event.
	EventName() string
}

// QuestStarted is emitted once when a session starts.
type QuestStarted struct {
	SessionID string
	QuestID   string
	Title     string
}

func (QuestStarted) EventName() string { return "quest_started" }

// QuestionAnswered is emitted for every submitted answer.
type QuestionAnswered struct {
	SessionID     string
	QuestID       string
	QuestionID    string
	Skill         Skill
	Difficulty    Difficulty
	Correct       bool
	SelectedIndex int
	CorrectIndex  int
	ElapsedMs     int64

	// HintsUsed counts hints requested for this question before answering.
	HintsUsed int

	// Attempt is always 1; retries are not modeled.
	Attempt int
}

func (QuestionAnswered) EventName() string { return "question_answered" }

// HintUsed is emitted each time the player asks for a hint.
type HintUsed struct {
	SessionID  string
	QuestID    string
	QuestionID string
	Skill      Skill
}

func (HintUsed) EventName() string { return "hint_used" }

// QuestCompleted is emitted once when the last question's feedback is
// advanced past.
type QuestCompleted struct {
	SessionID   string
	QuestID     string
	Title       string
	Score       int
	Total       int
	RewardXP    int
	ElapsedSecs int
}

func (QuestCompleted) EventName() string { return "quest_completed" }

// QuestAbandoned is emitted when a live session is ended early.
type QuestAbandoned struct {
	SessionID string
	QuestID   string
	Title     string
	Answered  int
	Total     int
}

func (QuestAbandoned) EventName() string { return "quest_abandoned" }

// Sink receives session events.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) { f(e) }

// Sinks fans events out to multiple sinks in order.
type Sinks []Sink

// Emit dispatches e to every sink.
func (s Sinks) Emit(e Event) {
	for _, sink := range s {
		sink.Emit(e)
	}
}
