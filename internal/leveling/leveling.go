// Package leveling maps total experience points to player levels.
//
// The curve is quadratic: going from level L to L+1 costs 100*L XP, so the
// total XP needed to reach the start of level L is 50*L*(L-1). Both
// directions (XP → level, level → XP) have closed forms.
package leveling

import "math"

// XPRequiredForLevel returns the XP needed to go from level to level+1.
// Levels below 1 are treated as level 1.
func XPRequiredForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 100 * level
}

// CumulativeXPForLevel returns the total XP required to reach the start of
// the given level. CumulativeXPForLevel(1) == 0.
func CumulativeXPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 50 * level * (level - 1)
}

// LevelFromTotalXP returns the unique level L >= 1 such that
// CumulativeXPForLevel(L) <= totalXP < CumulativeXPForLevel(L+1).
// Negative input clamps to level 1 rather than erroring, matching the
// lenient contract of the rest of the progression code.
func LevelFromTotalXP(totalXP int) int {
	if totalXP <= 0 {
		return 1
	}

	// Invert 50*L*(L-1) <= xp: L is the floor of the positive root of
	// 50L^2 - 50L - xp = 0.
	level := int(math.Floor((1 + math.Sqrt(1+float64(totalXP)/12.5)) / 2))
	if level < 1 {
		level = 1
	}

	// Correct for float rounding at exact level boundaries.
	for CumulativeXPForLevel(level+1) <= totalXP {
		level++
	}
	for level > 1 && CumulativeXPForLevel(level) > totalXP {
		level--
	}
	return level
}

// Progress describes position within the current level.
type Progress struct {
	// CurrentIntoLevel is the XP earned since the start of the current level.
	CurrentIntoLevel int

	// NeededForNextLevel is the total XP the current level requires.
	NeededForNextLevel int
}

// XPProgress returns the player's progress within their current level.
// For all totalXP >= 0, 0 <= CurrentIntoLevel < NeededForNextLevel.
func XPProgress(totalXP int) Progress {
	if totalXP < 0 {
		totalXP = 0
	}
	level := LevelFromTotalXP(totalXP)
	return Progress{
		CurrentIntoLevel:   totalXP - CumulativeXPForLevel(level),
		NeededForNextLevel: XPRequiredForLevel(level),
	}
}
