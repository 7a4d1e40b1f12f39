package content

import (
	"fmt"
	"strings"

	"github.com/homeworkgoat/goat/internal/quest"
)

const systemPrompt = `You are a storyteller and math tutor creating quests for a children's math game starring Gruff the goat. Players are children in grades 3-5.

Rules:
- Generate one themed quest: a short story plus a set of multiple-choice math questions that fit the theme.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use / for division and x for multiplication in question text.
- Every question has exactly 4 choices and exactly one correct answer. Distractors should reflect common mistakes, not random values.
- Arithmetic must be correct. Double-check every answer before including it.
- Keep the tone warm, playful, and encouraging. No violence, no scary content.
- Hints should nudge toward the method, never state the answer.
- Do not reuse any title from the "existing quests" list.`

// buildUserMessage constructs the user message from GenerateInput and Config
// limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	skills := make([]string, 0, len(input.Skills))
	for _, s := range input.Skills {
		skills = append(skills, string(s))
	}
	fmt.Fprintf(&b, "Skills to practice: %s\n", strings.Join(skills, ", "))
	fmt.Fprintf(&b, "Difficulty: %s\n", string(input.Difficulty))
	fmt.Fprintf(&b, "Number of questions: %d\n", input.QuestionCount)
	if input.PlayerLevel > 0 {
		fmt.Fprintf(&b, "Player level: %d\n", input.PlayerLevel)
	}

	b.WriteString("\nExisting quests (do not reuse these titles):\n")
	b.WriteString(buildTitleList(input.ExistingTitles, cfg.MaxExistingTitles))

	return b.String()
}

// buildTitleList formats existing titles for the prompt, respecting the max
// limit.
func buildTitleList(titles []string, max int) string {
	if len(titles) == 0 {
		return "None"
	}

	// Keep only the most recent N titles.
	if max > 0 && len(titles) > max {
		titles = titles[len(titles)-max:]
	}

	var b strings.Builder
	for i, t := range titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return strings.TrimRight(b.String(), "\n")
}

// defaultSkills is the skill mix used when the caller doesn't pick any.
func defaultSkills() []quest.Skill {
	return quest.AllSkills()
}
