package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeworkgoat/goat/internal/llm"
	"github.com/homeworkgoat/goat/internal/quest"
)

func validQuestJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "The Waterfall of Halves",
		"description": "Split the waterfall's treasure fairly.",
		"narrative": "Gruff finds a waterfall that only parts for goats who can divide.",
		"completion_message": "The waterfall parts and Gruff trots through!",
		"reward_xp": 60,
		"questions": [
			{
				"prompt": "What is 16 / 2?",
				"choices": ["6", "7", "8", "9"],
				"correct_index": 2,
				"skill": "division",
				"difficulty": "easy",
				"hint": "Half of 16."
			},
			{
				"prompt": "What is 30 / 5?",
				"choices": ["5", "6", "7", "8"],
				"correct_index": 1,
				"skill": "division",
				"difficulty": "easy",
				"hint": "Count by fives up to 30."
			}
		]
	}`)
}

func TestGenerateQuest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	got, err := gen.GenerateQuest(context.Background(), GenerateInput{
		Skills:     []quest.Skill{quest.SkillDivision},
		Difficulty: quest.DifficultyEasy,
	})
	require.NoError(t, err)

	assert.Equal(t, "The Waterfall of Halves", got.Quest.Title)
	assert.Equal(t, 60, got.Quest.RewardXP)
	require.Len(t, got.Questions, 2)
	assert.Len(t, got.Quest.QuestionIDs, 2)

	// Question IDs are derived from the quest ID and resolvable in order.
	for i, q := range got.Questions {
		assert.Equal(t, got.Quest.QuestionIDs[i], q.ID)
		assert.Equal(t, quest.SkillDivision, q.Skill)
	}
}

func TestGenerateQuest_PromptCarriesInput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.GenerateQuest(context.Background(), GenerateInput{
		Skills:         []quest.Skill{quest.SkillMultiplication},
		Difficulty:     quest.DifficultyMedium,
		QuestionCount:  3,
		PlayerLevel:    4,
		ExistingTitles: []string{"The Meadow of Sums"},
	})
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Equal(t, QuestSchema, req.Schema)
	userMsg := req.Messages[0].Content
	assert.Contains(t, userMsg, "multiplication")
	assert.Contains(t, userMsg, "Difficulty: medium")
	assert.Contains(t, userMsg, "Number of questions: 3")
	assert.Contains(t, userMsg, "Player level: 4")
	assert.Contains(t, userMsg, "The Meadow of Sums")
}

func TestGenerateQuest_DefaultsApplied(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.GenerateQuest(context.Background(), GenerateInput{})
	require.NoError(t, err)

	userMsg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, userMsg, "Number of questions: 5")
	assert.Contains(t, userMsg, "Difficulty: easy")
	assert.Contains(t, userMsg, "word-problem")
}

func TestGenerateQuest_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.GenerateQuest(context.Background(), GenerateInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM generation failed")
}

func TestGenerateQuest_RejectsBadOutput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*questOutput)
		wantErr string
	}{
		{
			name:    "wrong choice count",
			mutate:  func(o *questOutput) { o.Questions[0].Choices = []string{"1", "2"} },
			wantErr: "choices",
		},
		{
			name:    "index out of range",
			mutate:  func(o *questOutput) { o.Questions[0].CorrectIndex = 4 },
			wantErr: "correct_index",
		},
		{
			name:    "unknown skill",
			mutate:  func(o *questOutput) { o.Questions[0].Skill = "calculus" },
			wantErr: "skill",
		},
		{
			name:    "unknown difficulty",
			mutate:  func(o *questOutput) { o.Questions[0].Difficulty = "impossible" },
			wantErr: "difficulty",
		},
		{
			name:    "zero reward",
			mutate:  func(o *questOutput) { o.RewardXP = 0 },
			wantErr: "reward_xp",
		},
		{
			name:    "empty title",
			mutate:  func(o *questOutput) { o.Title = "" },
			wantErr: "title",
		},
		{
			name:    "no questions",
			mutate:  func(o *questOutput) { o.Questions = nil },
			wantErr: "questions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out questOutput
			require.NoError(t, json.Unmarshal(validQuestJSON(), &out))
			tt.mutate(&out)
			raw, err := json.Marshal(out)
			require.NoError(t, err)

			mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
			gen := NewGenerator(mock, DefaultConfig())

			_, err = gen.GenerateQuest(context.Background(), GenerateInput{})
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Field, tt.wantErr)
		})
	}
}
