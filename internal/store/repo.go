package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SkillTally counts attempts and correct answers for one skill.
type SkillTally struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
}

// ProfileState is the serialized player profile carried inside snapshots.
type ProfileState struct {
	Name            string                `json:"name,omitempty"`
	TotalXP         int                   `json:"total_xp"`
	QuestsCompleted int                   `json:"quests_completed"`
	BestStreak      int                   `json:"best_streak"`
	HintsUsed       int                   `json:"hints_used"`
	Skills          map[string]SkillTally `json:"skills,omitempty"`
	CompletedQuests []string              `json:"completed_quests,omitempty"`
}

// SnapshotData captures the full player state at a point in time.
type SnapshotData struct {
	Version int           `json:"version"`
	Profile *ProfileState `json:"profile,omitempty"`
}

// Snapshot represents a point-in-time capture of player state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages player state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// QuestEventData captures a quest lifecycle transition.
type QuestEventData struct {
	SessionID    string
	QuestID      string
	Title        string
	Action       string // started, completed, abandoned
	Answered     int
	Score        int
	Total        int
	XPReward     int
	DurationSecs int
}

// AnswerEventData captures one submitted answer.
type AnswerEventData struct {
	SessionID     string
	QuestID       string
	QuestionID    string
	Skill         string
	Difficulty    string
	Correct       bool
	SelectedIndex int
	CorrectIndex  int
	ElapsedMs     int64
	HintsUsed     int
	Attempt       int
}

// HintEventData captures one hint request.
type HintEventData struct {
	SessionID  string
	QuestID    string
	QuestionID string
	Skill      string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event as returned by queries.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates LLM usage for one purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendQuestEvent records a quest lifecycle event.
	AppendQuestEvent(ctx context.Context, data QuestEventData) error

	// AppendAnswerEvent records a submitted answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendHintEvent records a hint request.
	AppendHintEvent(ctx context.Context, data HintEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SkillTallies aggregates answer events per skill. Unlike the profile
	// snapshot, the tallies are rebuilt from the full event log on every
	// call.
	SkillTallies(ctx context.Context) (map[string]SkillTally, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM request event by ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
