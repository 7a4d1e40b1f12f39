// Package profile tracks the player: name, earned XP, level, and per-skill
// answer tallies. The profile is rebuilt from the latest snapshot on startup
// and persisted back after every finished or abandoned quest.
package profile

import (
	"github.com/homeworkgoat/goat/internal/leveling"
	"github.com/homeworkgoat/goat/internal/quest"
)

// SkillStats counts answers for one skill.
type SkillStats struct {
	Attempted int
	Correct   int
}

// Accuracy returns the fraction of correct answers, or 0 with no attempts.
func (s SkillStats) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

// Profile is the player's persistent state.
type Profile struct {
	Name            string
	TotalXP         int
	QuestsCompleted int
	BestStreak      int
	HintsUsed       int
	Skills          map[quest.Skill]SkillStats

	// CompletedQuests lists quest IDs finished at least once.
	CompletedQuests []string
}

// NewProfile returns an empty profile.
func NewProfile() Profile {
	return Profile{Skills: make(map[quest.Skill]SkillStats)}
}

// Level returns the player's current level derived from total XP.
func (p *Profile) Level() int {
	return leveling.LevelFromTotalXP(p.TotalXP)
}

// Progress returns XP progress within the current level.
func (p *Profile) Progress() leveling.Progress {
	return leveling.XPProgress(p.TotalXP)
}

// HasCompleted reports whether the quest has been finished before.
func (p *Profile) HasCompleted(questID string) bool {
	for _, id := range p.CompletedQuests {
		if id == questID {
			return true
		}
	}
	return false
}
