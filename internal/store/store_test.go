package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Profile: &ProfileState{
				Name:            "Maya",
				TotalXP:         250,
				QuestsCompleted: 2,
				BestStreak:      4,
				Skills: map[string]SkillTally{
					"addition": {Attempted: 6, Correct: 5},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Profile == nil {
		t.Fatal("expected profile in snapshot data")
	}
	if snap.Data.Profile.TotalXP != 250 {
		t.Errorf("total XP = %d, want 250", snap.Data.Profile.TotalXP)
	}
	if got := snap.Data.Profile.Skills["addition"].Correct; got != 5 {
		t.Errorf("addition correct = %d, want 5", got)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Purpose:      "quest-gen",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    1200,
			Success:      true,
			RequestBody:  "prompt",
			ResponseBody: `{"ok":true}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("events not in descending sequence order: %d, %d",
			events[0].Sequence, events[1].Sequence)
	}
	if events[0].InputTokens != 102 {
		t.Errorf("newest input tokens = %d, want 102", events[0].InputTokens)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event by ID")
	}
	if got.ResponseBody != `{"ok":true}` {
		t.Errorf("response body = %q", got.ResponseBody)
	}
}

func TestGetLLMEventNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	got, err := repo.GetLLMEvent(context.Background(), 9999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestSkillTalliesAggregateAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []struct {
		skill   string
		correct bool
	}{
		{"addition", true},
		{"addition", true},
		{"addition", false},
		{"division", true},
	}
	for i, a := range answers {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:    "sess-1",
			QuestID:      "quest-1",
			QuestionID:   "q1",
			Skill:        a.skill,
			Difficulty:   "easy",
			Correct:      a.correct,
			CorrectIndex: 1,
			Attempt:      1,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	tallies, err := repo.SkillTallies(ctx)
	if err != nil {
		t.Fatalf("tallies: %v", err)
	}
	if got := tallies["addition"]; got.Attempted != 3 || got.Correct != 2 {
		t.Errorf("addition tally = %+v, want {3 2}", got)
	}
	if got := tallies["division"]; got.Attempted != 1 || got.Correct != 1 {
		t.Errorf("division tally = %+v, want {1 1}", got)
	}
	if _, ok := tallies["word-problem"]; ok {
		t.Error("expected no tally for a skill with no answers")
	}
}

func TestQuestAndHintEventsPersist(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuestEvent(ctx, QuestEventData{
		SessionID:    "sess-1",
		QuestID:      "quest-1",
		Title:        "The Meadow of Sums",
		Action:       "completed",
		Score:        4,
		Total:        5,
		XPReward:     75,
		DurationSecs: 180,
	})
	if err != nil {
		t.Fatalf("append quest event: %v", err)
	}

	err = repo.AppendHintEvent(ctx, HintEventData{
		SessionID:  "sess-1",
		QuestID:    "quest-1",
		QuestionID: "q3",
		Skill:      "multiplication",
	})
	if err != nil {
		t.Fatalf("append hint event: %v", err)
	}

	questCount, err := s.Client().QuestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count quest events: %v", err)
	}
	if questCount != 1 {
		t.Errorf("quest events = %d, want 1", questCount)
	}

	hintCount, err := s.Client().HintEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count hint events: %v", err)
	}
	if hintCount != 1 {
		t.Errorf("hint events = %d, want 1", hintCount)
	}
}
