package content

import (
	"fmt"

	"github.com/homeworkgoat/goat/internal/quest"
)

// ValidationError describes why a generated quest failed validation.
type ValidationError struct {
	Field   string // which part of the output failed
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid quest output: %s: %s", e.Field, e.Message)
}

// validateQuestOutput checks the structural invariants the JSON schema can't
// fully express. The schema constrains types and enums; this catches empty
// strings, wrong choice counts, and out-of-range indexes.
func validateQuestOutput(out *questOutput) error {
	if out.Title == "" {
		return &ValidationError{Field: "title", Message: "empty"}
	}
	if len(out.Title) > 80 {
		return &ValidationError{Field: "title", Message: "exceeds 80 characters"}
	}
	if out.CompletionMessage == "" {
		return &ValidationError{Field: "completion_message", Message: "empty"}
	}
	if out.RewardXP <= 0 {
		return &ValidationError{Field: "reward_xp", Message: "must be positive"}
	}
	if len(out.Questions) == 0 {
		return &ValidationError{Field: "questions", Message: "empty"}
	}

	for i, q := range out.Questions {
		field := fmt.Sprintf("questions[%d]", i)
		if q.Prompt == "" {
			return &ValidationError{Field: field + ".prompt", Message: "empty"}
		}
		if len(q.Prompt) > 500 {
			return &ValidationError{Field: field + ".prompt", Message: "exceeds 500 characters"}
		}
		if len(q.Choices) != quest.ChoiceCount {
			return &ValidationError{
				Field:   field + ".choices",
				Message: fmt.Sprintf("got %d choices, want %d", len(q.Choices), quest.ChoiceCount),
			}
		}
		for j, c := range q.Choices {
			if c == "" {
				return &ValidationError{
					Field:   fmt.Sprintf("%s.choices[%d]", field, j),
					Message: "empty",
				}
			}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= quest.ChoiceCount {
			return &ValidationError{Field: field + ".correct_index", Message: "out of range"}
		}
		if !quest.KnownSkill(quest.Skill(q.Skill)) {
			return &ValidationError{
				Field:   field + ".skill",
				Message: fmt.Sprintf("unknown skill %q", q.Skill),
			}
		}
		if !quest.KnownDifficulty(quest.Difficulty(q.Difficulty)) {
			return &ValidationError{
				Field:   field + ".difficulty",
				Message: fmt.Sprintf("unknown difficulty %q", q.Difficulty),
			}
		}
	}
	return nil
}
