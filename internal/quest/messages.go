package quest

import "math/rand/v2"

// MessageSource supplies the feedback strings the session shows after an
// answer. It is an interface so tests can substitute a deterministic stub;
// the stock implementation draws randomly from pools. Content here is data,
// not logic — pools can change without touching the state machine.
type MessageSource interface {
	// Praise returns an encouragement line for a correct answer.
	Praise() string

	// Consolation returns a gentle line for an incorrect answer.
	Consolation() string

	// DefaultHint returns the fallback hint for a skill, used when a
	// question carries no hint of its own.
	DefaultHint(skill Skill) string
}

// Streak thresholds at which extra praise is appended to feedback.
const (
	streakBonusAt      = 3
	streakSuperBonusAt = 5
)

// StreakBonus returns the extra praise line for the given streak, or ""
// below the first threshold.
func StreakBonus(streak int) string {
	switch {
	case streak >= streakSuperBonusAt:
		return "The goat is doing a happy dance — what a streak!"
	case streak >= streakBonusAt:
		return "That's 3 in a row!"
	default:
		return ""
	}
}

var praisePool = []string{
	"Great job!",
	"You got it!",
	"Baa-rilliant!",
	"Nice work, math whiz!",
	"The goat munched that homework right up!",
}

var consolationPool = []string{
	"Not quite — you'll get the next one!",
	"Good try! Even goats trip sometimes.",
	"Almost! Take your time on the next one.",
	"Keep going, you're learning!",
}

// defaultHints maps each skill to a generic strategy hint used when a
// question has none of its own.
var defaultHints = map[Skill]string{
	SkillAddition:       "Try counting up from the bigger number.",
	SkillSubtraction:    "Think about what you take away — counting back helps.",
	SkillMultiplication: "Picture equal groups and add them up.",
	SkillDivision:       "Think about sharing into equal groups.",
	SkillWordProblem:    "Read the story again and find the numbers that matter.",
}

// StockMessages is the default MessageSource, drawing from the built-in
// pools with math/rand/v2.
type StockMessages struct{}

// NewStockMessages returns the stock message source.
func NewStockMessages() StockMessages { return StockMessages{} }

func (StockMessages) Praise() string {
	return praisePool[rand.IntN(len(praisePool))]
}

func (StockMessages) Consolation() string {
	return consolationPool[rand.IntN(len(consolationPool))]
}

func (StockMessages) DefaultHint(skill Skill) string {
	if h, ok := defaultHints[skill]; ok {
		return h
	}
	return "Take it one step at a time."
}
