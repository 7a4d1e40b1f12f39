package cmd

import (
	"fmt"
	"os"

	"github.com/homeworkgoat/goat/internal/analytics"
	"github.com/homeworkgoat/goat/internal/app"
	"github.com/homeworkgoat/goat/internal/content"
	"github.com/homeworkgoat/goat/internal/llm"
	"github.com/homeworkgoat/goat/internal/profile"
	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	profileSvc := profile.NewService(st.SnapshotRepo())
	if err := profileSvc.Load(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not load profile:", err)
	}

	recorder := analytics.NewRecorder(st.EventRepo())
	defer recorder.Close()

	opts := app.Options{
		Library: content.NewLibrary(),
		Profile: profileSvc,
		Sink:    quest.Sinks{recorder, profileSvc.Hook()},
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI quest generation will be unavailable.")
	} else {
		opts.Generator = content.NewGenerator(provider, content.DefaultConfig())
	}

	if err := app.Run(opts); err != nil {
		return err
	}

	// Final snapshot so tallies from a quest that was still in progress at
	// quit survive the exit.
	if err := profileSvc.Save(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not save profile:", err)
	}
	return nil
}
