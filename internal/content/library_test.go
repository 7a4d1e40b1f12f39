package content

import (
	"testing"

	"github.com/homeworkgoat/goat/internal/quest"
)

func TestBuiltinBankIsWellFormed(t *testing.T) {
	lib := NewLibrary()

	seen := make(map[string]bool)
	for _, q := range builtinQuestions {
		if seen[q.ID] {
			t.Errorf("duplicate question ID %q", q.ID)
		}
		seen[q.ID] = true

		if len(q.Choices) != quest.ChoiceCount {
			t.Errorf("question %q has %d choices", q.ID, len(q.Choices))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
			t.Errorf("question %q correct index %d out of range", q.ID, q.CorrectIndex)
		}
		if !quest.KnownSkill(q.Skill) {
			t.Errorf("question %q has unknown skill %q", q.ID, q.Skill)
		}
		if !quest.KnownDifficulty(q.Difficulty) {
			t.Errorf("question %q has unknown difficulty %q", q.ID, q.Difficulty)
		}
		if q.Hint == "" {
			t.Errorf("question %q has no hint", q.ID)
		}
	}

	// Every built-in quest resolves all of its questions.
	for _, qst := range builtinQuests {
		resolved := lib.ResolveQuestions(qst.QuestionIDs)
		if len(resolved) != len(qst.QuestionIDs) {
			t.Errorf("quest %q resolved %d of %d questions",
				qst.ID, len(resolved), len(qst.QuestionIDs))
		}
		if qst.RewardXP <= 0 {
			t.Errorf("quest %q has non-positive reward", qst.ID)
		}
	}
}

func TestResolveQuestionsSkipsUnknownIDs(t *testing.T) {
	lib := NewLibrary()

	got := lib.ResolveQuestions([]string{"add-e-1", "no-such-question", "sub-e-1"})
	if len(got) != 2 {
		t.Fatalf("resolved %d questions, want 2", len(got))
	}
	if got[0].ID != "add-e-1" || got[1].ID != "sub-e-1" {
		t.Errorf("wrong questions or order: %q, %q", got[0].ID, got[1].ID)
	}
}

func TestQuestByID(t *testing.T) {
	lib := NewLibrary()

	q, ok := lib.QuestByID("meadow-of-sums")
	if !ok {
		t.Fatal("expected to find meadow-of-sums")
	}
	if q.Title != "The Meadow of Sums" {
		t.Errorf("title = %q", q.Title)
	}

	if _, ok := lib.QuestByID("nope"); ok {
		t.Error("expected lookup miss for unknown ID")
	}
}

func TestAddQuest(t *testing.T) {
	lib := NewLibrary()
	before := len(lib.Quests())

	newQ := quest.Question{
		ID:           "gen-1-q1",
		Prompt:       "What is 2 + 2?",
		Choices:      []string{"3", "4", "5", "6"},
		CorrectIndex: 1,
		Skill:        quest.SkillAddition,
		Difficulty:   quest.DifficultyEasy,
	}
	lib.AddQuest(quest.Quest{
		ID:          "gen-1",
		Title:       "The Tiny Test",
		QuestionIDs: []string{"gen-1-q1"},
		RewardXP:    10,
	}, []quest.Question{newQ})

	if got := len(lib.Quests()); got != before+1 {
		t.Errorf("quest count = %d, want %d", got, before+1)
	}
	resolved := lib.ResolveQuestions([]string{"gen-1-q1"})
	if len(resolved) != 1 || resolved[0].Prompt != "What is 2 + 2?" {
		t.Errorf("generated question not resolvable: %+v", resolved)
	}
}
