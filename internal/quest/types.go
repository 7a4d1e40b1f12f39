// Package quest holds the quest content model and the session state machine
// that runs one quest attempt from start to completion or abandonment.
package quest

// Skill is the math-operation category a question exercises.
type Skill string

const (
	SkillAddition       Skill = "addition"
	SkillSubtraction    Skill = "subtraction"
	SkillMultiplication Skill = "multiplication"
	SkillDivision       Skill = "division"
	SkillWordProblem    Skill = "word-problem"
)

// AllSkills returns every skill in display order.
func AllSkills() []Skill {
	return []Skill{
		SkillAddition,
		SkillSubtraction,
		SkillMultiplication,
		SkillDivision,
		SkillWordProblem,
	}
}

// KnownSkill reports whether s is one of the fixed skill tags.
func KnownSkill(s Skill) bool {
	switch s {
	case SkillAddition, SkillSubtraction, SkillMultiplication, SkillDivision, SkillWordProblem:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the skill.
func (s Skill) DisplayName() string {
	switch s {
	case SkillAddition:
		return "Addition"
	case SkillSubtraction:
		return "Subtraction"
	case SkillMultiplication:
		return "Multiplication"
	case SkillDivision:
		return "Division"
	case SkillWordProblem:
		return "Word Problems"
	default:
		return string(s)
	}
}

// Difficulty tags a question as easy or medium.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
)

// KnownDifficulty reports whether d is a valid difficulty tag.
func KnownDifficulty(d Difficulty) bool {
	return d == DifficultyEasy || d == DifficultyMedium
}

// ChoiceCount is the number of answer choices every question carries.
const ChoiceCount = 4

// Question is one multiple-choice math item. Immutable after creation.
type Question struct {
	// ID identifies the question within the content bank.
	ID string

	// Prompt is the question text shown to the player.
	Prompt string

	// Choices holds exactly 4 numeric answer options as display strings.
	Choices []string

	// CorrectIndex marks the correct entry in Choices.
	// Invariant: 0 <= CorrectIndex < len(Choices).
	CorrectIndex int

	// Skill is the math operation this question exercises.
	Skill Skill

	// Difficulty is easy or medium.
	Difficulty Difficulty

	// Hint is an optional nudge the player can ask for. When empty, the
	// session falls back to a per-skill strategy hint.
	Hint string
}

// Quest bundles a sequence of questions with narrative framing and an XP
// reward. Immutable after creation.
type Quest struct {
	ID          string
	Title       string
	Description string

	// Narrative is the story text shown on the intro screen.
	Narrative string

	// QuestionIDs is the ordered list of questions to run. IDs that fail to
	// resolve are dropped by the content resolver; the session runs on
	// whatever subset arrives.
	QuestionIDs []string

	// RewardXP is awarded on completion. Positive.
	RewardXP int

	// CompletionMessage is shown when the quest is finished.
	CompletionMessage string
}
