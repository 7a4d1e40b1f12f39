package content

import "github.com/homeworkgoat/goat/internal/llm"

// QuestSchema defines the JSON schema for LLM quest generation responses.
var QuestSchema = &llm.Schema{
	Name:        "goat-quest",
	Description: "A themed math quest with a short story and multiple-choice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short, playful quest title, e.g. \"The Waterfall of Halves\"",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One-sentence summary shown in the quest list",
			},
			"narrative": map[string]any{
				"type":        "string",
				"description": "Two or three sentences of story that set up the quest, starring Gruff the goat",
			},
			"completion_message": map[string]any{
				"type":        "string",
				"description": "Celebratory message shown when the quest is finished",
			},
			"reward_xp": map[string]any{
				"type":        "integer",
				"minimum":     10,
				"maximum":     200,
				"description": "XP awarded for completing the quest",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text, plain ASCII, age-appropriate",
						},
						"choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 answer options",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct option",
						},
						"skill": map[string]any{
							"type":        "string",
							"enum":        []any{"addition", "subtraction", "multiplication", "division", "word-problem"},
							"description": "The math skill this question exercises",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium"},
							"description": "Question difficulty",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A short scaffolding hint. May be empty.",
						},
					},
					"required":             []any{"prompt", "choices", "correct_index", "skill", "difficulty", "hint"},
					"additionalProperties": false,
				},
				"description": "The quest's questions, in play order",
			},
		},
		"required":             []any{"title", "description", "narrative", "completion_message", "reward_xp", "questions"},
		"additionalProperties": false,
	},
}
