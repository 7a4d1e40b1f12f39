package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/homeworkgoat/goat/internal/content"
	"github.com/homeworkgoat/goat/internal/llm"
	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/store"
	"github.com/spf13/cobra"
)

var questsCmd = &cobra.Command{
	Use:   "quests",
	Short: "List the built-in quests",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := content.NewLibrary()

		for _, q := range lib.Quests() {
			questions := lib.ResolveQuestions(q.QuestionIDs)
			fmt.Printf("%-24s  %-40s  %2d questions  %3d XP\n",
				q.ID, q.Title, len(questions), q.RewardXP)
		}
		return nil
	},
}

var questsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quest with the LLM and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("questions")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		skillNames, _ := cmd.Flags().GetStringSlice("skill")

		if difficulty != "" && !quest.KnownDifficulty(quest.Difficulty(difficulty)) {
			return fmt.Errorf("unknown difficulty %q (use easy or medium)", difficulty)
		}
		var skills []quest.Skill
		for _, name := range skillNames {
			sk := quest.Skill(name)
			if !quest.KnownSkill(sk) {
				return fmt.Errorf("unknown skill %q", name)
			}
			skills = append(skills, sk)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()

		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		lib := content.NewLibrary()
		var titles []string
		for _, q := range lib.Quests() {
			titles = append(titles, q.Title)
		}

		gen := content.NewGenerator(provider, content.DefaultConfig())
		result, err := gen.GenerateQuest(ctx, content.GenerateInput{
			Skills:         skills,
			Difficulty:     quest.Difficulty(difficulty),
			QuestionCount:  count,
			ExistingTitles: titles,
		})
		if err != nil {
			return fmt.Errorf("generate quest: %w", err)
		}

		q := result.Quest
		fmt.Printf("Title:       %s\n", q.Title)
		fmt.Printf("Description: %s\n", q.Description)
		fmt.Printf("Reward:      %d XP\n", q.RewardXP)
		fmt.Println()
		fmt.Println(q.Narrative)
		fmt.Println()
		fmt.Println(strings.Repeat("─", 60))

		for i, qs := range result.Questions {
			fmt.Printf("%d. [%s/%s] %s\n", i+1, qs.Skill, qs.Difficulty, qs.Prompt)
			for j, c := range qs.Choices {
				marker := " "
				if j == qs.CorrectIndex {
					marker = "*"
				}
				fmt.Printf("   %s %d) %s\n", marker, j+1, c)
			}
			if qs.Hint != "" {
				fmt.Printf("   hint: %s\n", qs.Hint)
			}
		}
		return nil
	},
}

func init() {
	questsGenerateCmd.Flags().IntP("questions", "q", 0, "Number of questions (default from generator config)")
	questsGenerateCmd.Flags().StringP("difficulty", "d", "", "Difficulty: easy or medium")
	questsGenerateCmd.Flags().StringSliceP("skill", "s", nil, "Skills to cover (repeatable; default all)")

	questsCmd.AddCommand(questsGenerateCmd)
}
