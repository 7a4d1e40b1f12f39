package content

import "github.com/homeworkgoat/goat/internal/quest"

// Built-in question bank. These ship with the game so a first run works
// offline, before any LLM-generated quests exist.
var builtinQuestions = []quest.Question{
	// Addition, easy.
	{
		ID:           "add-e-1",
		Prompt:       "Gruff the goat found 7 shiny pebbles and then 5 more. How many pebbles does he have?",
		Choices:      []string{"11", "12", "13", "10"},
		CorrectIndex: 1,
		Skill:        quest.SkillAddition,
		Difficulty:   quest.DifficultyEasy,
		Hint:         "Count up from 7: five more hops.",
	},
	{
		ID:           "add-e-2",
		Prompt:       "What is 23 + 14?",
		Choices:      []string{"36", "38", "37", "35"},
		CorrectIndex: 2,
		Skill:        quest.SkillAddition,
		Difficulty:   quest.DifficultyEasy,
		Hint:         "Add the tens first, then the ones.",
	},
	{
		ID:           "add-e-3",
		Prompt:       "What is 48 + 9?",
		Choices:      []string{"57", "56", "58", "55"},
		CorrectIndex: 0,
		Skill:        quest.SkillAddition,
		Difficulty:   quest.DifficultyEasy,
		Hint:         "48 + 10 would be 58. Take one away.",
	},
	// Addition, medium.
	{
		ID:           "add-m-1",
		Prompt:       "What is 345 + 278?",
		Choices:      []string{"613", "623", "633", "523"},
		CorrectIndex: 1,
		Skill:        quest.SkillAddition,
		Difficulty:   quest.DifficultyMedium,
		Hint:         "Add column by column and carry when a column passes 9.",
	},
	{
		ID:           "add-m-2",
		Prompt:       "What is 167 + 155?",
		Choices:      []string{"322", "312", "332", "302"},
		CorrectIndex: 0,
		Skill:        quest.SkillAddition,
		Difficulty:   quest.DifficultyMedium,
		Hint:         "7 + 5 makes 12, so carry a one to the tens.",
	},
	// Subtraction, easy.
	{
		ID:           "sub-e-1",
		Prompt:       "What is 15 - 6?",
		Choices:      []string{"8", "10", "9", "7"},
		CorrectIndex: 2,
		Skill:        quest.SkillSubtraction,
		Difficulty:   quest.DifficultyEasy,
		Hint:         "Count back 6 from 15.",
	},
	{
		ID:           "sub-e-2",
		Prompt:       "The goat herd had 20 carrots. They munched 8. How many are left?",
		Choices:      []string{"12", "13", "11", "14"},
		CorrectIndex: 0,
		Skill:        quest.SkillSubtraction,
		Difficulty:   quest.DifficultyEasy,
		Hint:         "20 take away 10 would be 10. They ate 2 fewer than that.",
	},
	// Subtraction, medium.
	{
		ID:           "sub-m-1",
		Prompt:       "What is 402 - 167?",
		Choices:      []string{"245", "235", "225", "335"},
		CorrectIndex: 1,
		Skill:        quest.SkillSubtraction,
		Difficulty:   quest.DifficultyMedium,
		Hint:         "You will need to borrow twice. Work right to left.",
	},
	{
		ID:           "sub-m-2",
		Prompt:       "What is 531 - 248?",
		Choices:      []string{"283", "293", "273", "383"},
		CorrectIndex: 0,
		Skill:        quest.SkillSubtraction,
		Difficulty:   quest.DifficultyMedium,
		Hint:         "Borrow from the tens when 1 is smaller than 8.",
	},
	// Multiplication, easy.
	{
		ID:           "mul-e-1",
		Prompt:       "What is 6 x 4?",
		Choices:      []string{"22", "26", "24", "28"},
		CorrectIndex: 2,
		Skill:        quest.SkillMultiplication,
		Difficulty:   quest.DifficultyEasy,
		Hint:         "Four groups of six. Skip count: 6, 12, 18...",
	},
	{
		ID:           "mul-e-2",
		Prompt:       "What is 7 x 5?",
		Choices:      []string{"35", "30", "40", "45"},
		CorrectIndex: 0,
		Skill:        quest.SkillMultiplication,
		Difficulty:   quest.DifficultyEasy,
		Hint:         "Count by fives seven times.",
	},
	// Multiplication, medium.
	{
		ID:           "mul-m-1",
		Prompt:       "What is 12 x 9?",
		Choices:      []string{"98", "108", "112", "118"},
		CorrectIndex: 1,
		Skill:        quest.SkillMultiplication,
		Difficulty:   quest.DifficultyMedium,
		Hint:         "12 x 10 is 120. Take away one 12.",
	},
	{
		ID:           "mul-m-2",
		Prompt:       "What is 25 x 4?",
		Choices:      []string{"90", "110", "120", "100"},
		CorrectIndex: 3,
		Skill:        quest.SkillMultiplication,
		Difficulty:   quest.DifficultyMedium,
		Hint:         "Two 25s make 50. Double that.",
	},
	// Division, easy.
	{
		ID:           "div-e-1",
		Prompt:       "What is 18 / 3?",
		Choices:      []string{"5", "6", "7", "8"},
		CorrectIndex: 1,
		Skill:        quest.SkillDivision,
		Difficulty:   quest.DifficultyEasy,
		Hint:         "How many threes fit in 18?",
	},
	{
		ID:           "div-e-2",
		Prompt:       "What is 24 / 4?",
		Choices:      []string{"6", "5", "8", "4"},
		CorrectIndex: 0,
		Skill:        quest.SkillDivision,
		Difficulty:   quest.DifficultyEasy,
		Hint:         "Think of the fours times table: 4 x ? = 24.",
	},
	// Division, medium.
	{
		ID:           "div-m-1",
		Prompt:       "What is 96 / 8?",
		Choices:      []string{"14", "11", "12", "13"},
		CorrectIndex: 2,
		Skill:        quest.SkillDivision,
		Difficulty:   quest.DifficultyMedium,
		Hint:         "80 / 8 is 10, and 16 / 8 is 2 more.",
	},
	// Word problems.
	{
		ID:           "word-e-1",
		Prompt:       "Three goats each carry 4 bags of oats across the bridge. How many bags cross in total?",
		Choices:      []string{"7", "12", "10", "16"},
		CorrectIndex: 1,
		Skill:        quest.SkillWordProblem,
		Difficulty:   quest.DifficultyEasy,
		Hint:         "Three groups of four bags. That is a multiplication.",
	},
	{
		ID:           "word-m-1",
		Prompt:       "A farmer shares 36 apples equally among 4 goats. Each goat eats 2 apples and saves the rest. How many does each goat save?",
		Choices:      []string{"9", "8", "6", "7"},
		CorrectIndex: 3,
		Skill:        quest.SkillWordProblem,
		Difficulty:   quest.DifficultyMedium,
		Hint:         "First divide 36 by 4, then subtract the 2 eaten.",
	},
	{
		ID:           "word-m-2",
		Prompt:       "Gruff climbs 15 steps, slides back 6, then climbs 8 more. What step is he on?",
		Choices:      []string{"17", "16", "18", "19"},
		CorrectIndex: 0,
		Skill:        quest.SkillWordProblem,
		Difficulty:   quest.DifficultyMedium,
		Hint:         "Do it in order: 15, minus 6, plus 8.",
	},
}

// Built-in quests assembled from the bank above.
var builtinQuests = []quest.Quest{
	{
		ID:          "meadow-of-sums",
		Title:       "The Meadow of Sums",
		Description: "Warm up with addition in the sunny meadow.",
		Narrative: "Gruff the goat trots into the meadow, where the wildflowers " +
			"only bloom for those who can add. Help him count his way through!",
		QuestionIDs:       []string{"add-e-1", "add-e-2", "add-e-3", "add-m-1"},
		RewardXP:          40,
		CompletionMessage: "The meadow blooms! Gruff munches a victory daisy.",
	},
	{
		ID:          "bridge-of-differences",
		Title:       "The Bridge of Differences",
		Description: "Cross the old bridge by solving subtraction riddles.",
		Narrative: "A grumpy troll guards the bridge and only lets goats pass " +
			"if they can take away exactly the right amount.",
		QuestionIDs:       []string{"sub-e-1", "sub-e-2", "sub-m-1", "sub-m-2"},
		RewardXP:          50,
		CompletionMessage: "The troll tips his hat. The bridge is yours!",
	},
	{
		ID:          "times-table-tower",
		Title:       "The Times Table Tower",
		Description: "Climb the tower one multiplication at a time.",
		Narrative: "Each floor of the tower is locked by a multiplication spell. " +
			"Answer well and the stairs appear.",
		QuestionIDs:       []string{"mul-e-1", "mul-e-2", "mul-m-1", "mul-m-2"},
		RewardXP:          60,
		CompletionMessage: "From the tower top, Gruff can see the whole kingdom!",
	},
	{
		ID:          "great-goat-feast",
		Title:       "The Great Goat Feast",
		Description: "Divide the harvest fairly and solve the feast-day puzzles.",
		Narrative: "The harvest is in and every goat wants a fair share. Only " +
			"careful dividing and sharp thinking will keep the feast merry.",
		QuestionIDs: []string{
			"div-e-1", "div-e-2", "div-m-1", "word-e-1", "word-m-1", "word-m-2",
		},
		RewardXP:          75,
		CompletionMessage: "The feast is served, and every goat gets a fair plate!",
	},
}
