package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeworkgoat/goat/internal/llm"
	"github.com/homeworkgoat/goat/internal/quest"
)

// Generator produces themed quests using an LLM provider.
type Generator interface {
	// GenerateQuest produces a single validated quest with its questions.
	GenerateQuest(ctx context.Context, input GenerateInput) (*GeneratedQuest, error)
}

// GenerateInput holds all context needed to generate a quest.
type GenerateInput struct {
	// Skills to draw questions from. Empty means all skills.
	Skills []quest.Skill

	// Difficulty for the whole quest.
	Difficulty quest.Difficulty

	// QuestionCount is how many questions the quest should have.
	// Zero means the config default.
	QuestionCount int

	// PlayerLevel is included in the prompt for tone calibration.
	// Zero means unknown.
	PlayerLevel int

	// ExistingTitles are quest titles already in the catalog, used to
	// avoid duplicates.
	ExistingTitles []string
}

// GeneratedQuest is a validated quest together with its questions, ready to
// add to the Library.
type GeneratedQuest struct {
	Quest     quest.Quest
	Questions []quest.Question
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// DefaultQuestionCount is used when GenerateInput doesn't set one.
	DefaultQuestionCount int

	// MaxExistingTitles caps how many catalog titles go into the prompt.
	MaxExistingTitles int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:            2048,
		Temperature:          0.8,
		DefaultQuestionCount: 5,
		MaxExistingTitles:    10,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a new LLMGenerator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questOutput is the raw LLM response before validation.
type questOutput struct {
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Narrative         string           `json:"narrative"`
	CompletionMessage string           `json:"completion_message"`
	RewardXP          int              `json:"reward_xp"`
	Questions         []questionOutput `json:"questions"`
}

type questionOutput struct {
	Prompt       string   `json:"prompt"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correct_index"`
	Skill        string   `json:"skill"`
	Difficulty   string   `json:"difficulty"`
	Hint         string   `json:"hint"`
}

// GenerateQuest produces a single validated quest with its questions.
func (g *LLMGenerator) GenerateQuest(ctx context.Context, input GenerateInput) (*GeneratedQuest, error) {
	ctx = llm.WithPurpose(ctx, "quest-gen")

	if len(input.Skills) == 0 {
		input.Skills = defaultSkills()
	}
	if input.QuestionCount == 0 {
		input.QuestionCount = g.config.DefaultQuestionCount
	}
	if input.Difficulty == "" {
		input.Difficulty = quest.DifficultyEasy
	}

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	if err := validateQuestOutput(&raw); err != nil {
		return nil, err
	}

	questID := "gen-" + uuid.New().String()
	questions := make([]quest.Question, 0, len(raw.Questions))
	ids := make([]string, 0, len(raw.Questions))
	for i, rq := range raw.Questions {
		id := fmt.Sprintf("%s-q%d", questID, i+1)
		questions = append(questions, quest.Question{
			ID:           id,
			Prompt:       rq.Prompt,
			Choices:      rq.Choices,
			CorrectIndex: rq.CorrectIndex,
			Skill:        quest.Skill(rq.Skill),
			Difficulty:   quest.Difficulty(rq.Difficulty),
			Hint:         rq.Hint,
		})
		ids = append(ids, id)
	}

	return &GeneratedQuest{
		Quest: quest.Quest{
			ID:                questID,
			Title:             raw.Title,
			Description:       raw.Description,
			Narrative:         raw.Narrative,
			QuestionIDs:       ids,
			RewardXP:          raw.RewardXP,
			CompletionMessage: raw.CompletionMessage,
		},
		Questions: questions,
	}, nil
}
