package analytics

import (
	"context"
	"sync"
	"testing"

	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/store"
)

// captureRepo records appended event data in memory.
type captureRepo struct {
	mu      sync.Mutex
	quests  []store.QuestEventData
	answers []store.AnswerEventData
	hints   []store.HintEventData
}

func (c *captureRepo) AppendQuestEvent(_ context.Context, data store.QuestEventData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quests = append(c.quests, data)
	return nil
}

func (c *captureRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.answers = append(c.answers, data)
	return nil
}

func (c *captureRepo) AppendHintEvent(_ context.Context, data store.HintEventData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hints = append(c.hints, data)
	return nil
}

func (c *captureRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (c *captureRepo) SkillTallies(_ context.Context) (map[string]store.SkillTally, error) {
	return nil, nil
}

func (c *captureRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (c *captureRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}

func (c *captureRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (c *captureRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func TestRecorderPersistsSessionEvents(t *testing.T) {
	repo := &captureRepo{}
	rec := NewRecorder(repo)

	rec.Emit(quest.QuestStarted{SessionID: "s1", QuestID: "meadow-of-sums", Title: "The Meadow of Sums"})
	rec.Emit(quest.QuestionAnswered{
		SessionID:  "s1",
		QuestID:    "meadow-of-sums",
		QuestionID: "add-e-1",
		Skill:      quest.SkillAddition,
		Difficulty: quest.DifficultyEasy,
		Correct:    true,
		HintsUsed:  1,
		Attempt:    1,
	})
	rec.Emit(quest.HintUsed{SessionID: "s1", QuestID: "meadow-of-sums", QuestionID: "add-e-1", Skill: quest.SkillAddition})
	rec.Emit(quest.QuestCompleted{SessionID: "s1", QuestID: "meadow-of-sums", Score: 4, Total: 4, RewardXP: 40, ElapsedSecs: 90})

	rec.Close()

	if len(repo.quests) != 2 {
		t.Fatalf("quest events = %d, want 2", len(repo.quests))
	}
	if repo.quests[0].Action != "started" {
		t.Errorf("first action = %q, want started", repo.quests[0].Action)
	}
	done := repo.quests[1]
	if done.Action != "completed" || done.Score != 4 || done.XPReward != 40 {
		t.Errorf("completed event = %+v", done)
	}

	if len(repo.answers) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answers))
	}
	ans := repo.answers[0]
	if ans.Skill != "addition" || !ans.Correct || ans.HintsUsed != 1 {
		t.Errorf("answer event = %+v", ans)
	}

	if len(repo.hints) != 1 {
		t.Fatalf("hint events = %d, want 1", len(repo.hints))
	}
}

func TestRecorderRecordsAbandon(t *testing.T) {
	repo := &captureRepo{}
	rec := NewRecorder(repo)

	rec.Emit(quest.QuestAbandoned{SessionID: "s1", QuestID: "q1", Answered: 2, Total: 5})
	rec.Close()

	if len(repo.quests) != 1 {
		t.Fatalf("quest events = %d, want 1", len(repo.quests))
	}
	got := repo.quests[0]
	if got.Action != "abandoned" || got.Answered != 2 || got.Total != 5 {
		t.Errorf("abandon event = %+v", got)
	}
}

func TestRecorderCloseDrainsBuffer(t *testing.T) {
	repo := &captureRepo{}
	rec := NewRecorder(repo)

	for i := 0; i < 20; i++ {
		rec.Emit(quest.HintUsed{SessionID: "s1", QuestID: "q1", QuestionID: "x", Skill: quest.SkillDivision})
	}
	rec.Close()

	if len(repo.hints) != 20 {
		t.Errorf("hint events = %d, want 20", len(repo.hints))
	}
}
