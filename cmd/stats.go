package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/homeworkgoat/goat/internal/profile"
	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show player statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		svc := profile.NewService(s.SnapshotRepo())
		if err := svc.Load(ctx); err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		p := svc.Profile()
		if p.Name == "" && p.TotalXP == 0 {
			fmt.Println("No player data yet. Run `goat` to start playing.")
			return nil
		}

		prog := p.Progress()
		fmt.Printf("Player:          %s\n", p.Name)
		fmt.Printf("Level:           %d  (%d/%d XP to next)\n",
			p.Level(), prog.CurrentIntoLevel, prog.NeededForNextLevel)
		fmt.Printf("Total XP:        %d\n", p.TotalXP)
		fmt.Printf("Quests done:     %d\n", p.QuestsCompleted)
		fmt.Printf("Best streak:     %d\n", p.BestStreak)
		fmt.Printf("Hints used:      %d\n", p.HintsUsed)

		// Skill numbers come from the event log rather than the snapshot,
		// so they survive snapshot pruning or loss.
		tallies, err := s.EventRepo().SkillTallies(ctx)
		if err != nil {
			return fmt.Errorf("skill tallies: %w", err)
		}

		fmt.Println()
		fmt.Println("Skills")
		fmt.Println(strings.Repeat("─", 48))
		for _, skill := range quest.AllSkills() {
			tally, ok := tallies[string(skill)]
			if !ok || tally.Attempted == 0 {
				continue
			}
			accuracy := float64(tally.Correct) / float64(tally.Attempted)
			fmt.Printf("%-16s  %4d/%-4d correct   %3.0f%%\n",
				skill.DisplayName(), tally.Correct, tally.Attempted, accuracy*100)
		}
		return nil
	},
}
