package profile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/store"
)

// fakeSnapshotRepo keeps snapshots in memory. Saves are signalled on saved
// so tests can wait for background persistence.
type fakeSnapshotRepo struct {
	mu    sync.Mutex
	snaps []*store.Snapshot
	saved chan struct{}
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.mu.Lock()
	f.snaps = append(f.snaps, snap)
	f.mu.Unlock()
	if f.saved != nil {
		f.saved <- struct{}{}
	}
	return nil
}

func (f *fakeSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.snaps) == 0 {
		return nil, nil
	}
	return f.snaps[len(f.snaps)-1], nil
}

func (f *fakeSnapshotRepo) Prune(_ context.Context, keep int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.snaps) > keep {
		f.snaps = f.snaps[len(f.snaps)-keep:]
	}
	return nil
}

func TestRecordAnswerTracksSkillsAndStreak(t *testing.T) {
	svc := NewService(nil)

	svc.RecordAnswer(quest.SkillAddition, true)
	svc.RecordAnswer(quest.SkillAddition, true)
	svc.RecordAnswer(quest.SkillAddition, false)
	svc.RecordAnswer(quest.SkillDivision, true)

	p := svc.Profile()
	add := p.Skills[quest.SkillAddition]
	if add.Attempted != 3 || add.Correct != 2 {
		t.Errorf("addition stats = %+v, want {3 2}", add)
	}
	if p.BestStreak != 2 {
		t.Errorf("best streak = %d, want 2", p.BestStreak)
	}

	// The wrong answer reset the run; one correct since then.
	svc.RecordAnswer(quest.SkillDivision, true)
	svc.RecordAnswer(quest.SkillDivision, true)
	if got := svc.Profile().BestStreak; got != 3 {
		t.Errorf("best streak after new run = %d, want 3", got)
	}
}

func TestCompleteQuestAwardsXPAndReportsLevels(t *testing.T) {
	svc := NewService(nil)

	// Level 2 starts at 100 XP.
	before, after := svc.CompleteQuest("meadow-of-sums", 120)
	if before != 1 || after != 2 {
		t.Errorf("levels = %d -> %d, want 1 -> 2", before, after)
	}

	p := svc.Profile()
	if p.TotalXP != 120 {
		t.Errorf("total XP = %d, want 120", p.TotalXP)
	}
	if p.QuestsCompleted != 1 {
		t.Errorf("quests completed = %d, want 1", p.QuestsCompleted)
	}
	if !p.HasCompleted("meadow-of-sums") {
		t.Error("expected quest marked completed")
	}

	// Replaying the same quest counts the run but not the ID twice.
	svc.CompleteQuest("meadow-of-sums", 40)
	p = svc.Profile()
	if p.QuestsCompleted != 2 {
		t.Errorf("quests completed = %d, want 2", p.QuestsCompleted)
	}
	if got := len(p.CompletedQuests); got != 1 {
		t.Errorf("completed quest IDs = %d, want 1", got)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	ctx := context.Background()

	svc := NewService(repo)
	svc.SetName("Maya")
	svc.RecordAnswer(quest.SkillMultiplication, true)
	svc.RecordAnswer(quest.SkillMultiplication, false)
	svc.RecordHint()
	svc.CompleteQuest("times-table-tower", 60)

	if err := svc.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	restored := NewService(repo)
	if err := restored.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	p := restored.Profile()
	if p.Name != "Maya" {
		t.Errorf("name = %q", p.Name)
	}
	if p.TotalXP != 60 {
		t.Errorf("total XP = %d, want 60", p.TotalXP)
	}
	if p.HintsUsed != 1 {
		t.Errorf("hints used = %d, want 1", p.HintsUsed)
	}
	mul := p.Skills[quest.SkillMultiplication]
	if mul.Attempted != 2 || mul.Correct != 1 {
		t.Errorf("multiplication stats = %+v, want {2 1}", mul)
	}
	if !p.HasCompleted("times-table-tower") {
		t.Error("expected completed quest to survive the round trip")
	}
}

func TestSetNamePersistsSnapshot(t *testing.T) {
	repo := &fakeSnapshotRepo{saved: make(chan struct{}, 4)}
	svc := NewService(repo)

	svc.SetName("Maya")

	select {
	case <-repo.saved:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a snapshot save after SetName")
	}

	// A fresh service sees the name without any quest having run.
	restored := NewService(repo)
	if err := restored.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := restored.Profile().Name; got != "Maya" {
		t.Errorf("name = %q, want %q", got, "Maya")
	}
}

func TestLoadWithNoSnapshotLeavesProfileEmpty(t *testing.T) {
	svc := NewService(&fakeSnapshotRepo{})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	p := svc.Profile()
	if p.TotalXP != 0 || p.Name != "" {
		t.Errorf("expected empty profile, got %+v", p)
	}
	if p.Level() != 1 {
		t.Errorf("level = %d, want 1", p.Level())
	}
}

func TestHookUpdatesProfileFromEvents(t *testing.T) {
	svc := NewService(nil)
	sink := svc.Hook()

	sink.Emit(quest.QuestStarted{SessionID: "s1", QuestID: "q1"})
	sink.Emit(quest.QuestionAnswered{Skill: quest.SkillAddition, Correct: true})
	sink.Emit(quest.QuestionAnswered{Skill: quest.SkillAddition, Correct: true})
	sink.Emit(quest.HintUsed{Skill: quest.SkillAddition})
	sink.Emit(quest.QuestCompleted{QuestID: "q1", RewardXP: 50, Score: 2, Total: 2})

	p := svc.Profile()
	if p.TotalXP != 50 {
		t.Errorf("total XP = %d, want 50", p.TotalXP)
	}
	if p.BestStreak != 2 {
		t.Errorf("best streak = %d, want 2", p.BestStreak)
	}
	if p.HintsUsed != 1 {
		t.Errorf("hints used = %d, want 1", p.HintsUsed)
	}
	if p.Skills[quest.SkillAddition].Attempted != 2 {
		t.Errorf("addition attempts = %d, want 2", p.Skills[quest.SkillAddition].Attempted)
	}
}

func TestHookResetsStreakAcrossQuests(t *testing.T) {
	svc := NewService(nil)
	sink := svc.Hook()

	sink.Emit(quest.QuestStarted{SessionID: "s1"})
	sink.Emit(quest.QuestionAnswered{Skill: quest.SkillAddition, Correct: true})
	sink.Emit(quest.QuestionAnswered{Skill: quest.SkillAddition, Correct: true})

	// A new quest starts a fresh run.
	sink.Emit(quest.QuestStarted{SessionID: "s2"})
	sink.Emit(quest.QuestionAnswered{Skill: quest.SkillAddition, Correct: true})

	if got := svc.Profile().BestStreak; got != 2 {
		t.Errorf("best streak = %d, want 2", got)
	}
}
