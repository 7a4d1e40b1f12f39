// Package analytics persists quest session events to the event store.
// The Recorder decouples the session from database writes: events go into
// a buffered channel and a single worker goroutine appends them, so the
// game loop never waits on SQLite.
package analytics

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/store"
)

const (
	bufferSize   = 64
	appendExpiry = 5 * time.Second
)

// Recorder implements quest.Sink by appending events to a store.EventRepo.
type Recorder struct {
	repo   store.EventRepo
	events chan quest.Event
	done   chan struct{}
}

// NewRecorder starts a Recorder writing to repo.
func NewRecorder(repo store.EventRepo) *Recorder {
	r := &Recorder{
		repo:   repo,
		events: make(chan quest.Event, bufferSize),
		done:   make(chan struct{}),
	}
	go r.run()
	return r
}

// Emit queues an event for persistence. If the buffer is full the event is
// dropped with a warning; losing an analytics row is better than freezing
// the game.
func (r *Recorder) Emit(ev quest.Event) {
	select {
	case r.events <- ev:
	default:
		fmt.Fprintf(os.Stderr, "Warning: event buffer full, dropping %s\n", ev.EventName())
	}
}

// Close drains pending events and stops the worker.
func (r *Recorder) Close() {
	close(r.events)
	<-r.done
}

func (r *Recorder) run() {
	defer close(r.done)
	for ev := range r.events {
		ctx, cancel := context.WithTimeout(context.Background(), appendExpiry)
		if err := r.append(ctx, ev); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not record %s: %v\n", ev.EventName(), err)
		}
		cancel()
	}
}

func (r *Recorder) append(ctx context.Context, ev quest.Event) error {
	switch e := ev.(type) {
	case quest.QuestStarted:
		return r.repo.AppendQuestEvent(ctx, store.QuestEventData{
			SessionID: e.SessionID,
			QuestID:   e.QuestID,
			Title:     e.Title,
			Action:    "started",
		})
	case quest.QuestionAnswered:
		return r.repo.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:     e.SessionID,
			QuestID:       e.QuestID,
			QuestionID:    e.QuestionID,
			Skill:         string(e.Skill),
			Difficulty:    string(e.Difficulty),
			Correct:       e.Correct,
			SelectedIndex: e.SelectedIndex,
			CorrectIndex:  e.CorrectIndex,
			ElapsedMs:     e.ElapsedMs,
			HintsUsed:     e.HintsUsed,
			Attempt:       e.Attempt,
		})
	case quest.HintUsed:
		return r.repo.AppendHintEvent(ctx, store.HintEventData{
			SessionID:  e.SessionID,
			QuestID:    e.QuestID,
			QuestionID: e.QuestionID,
			Skill:      string(e.Skill),
		})
	case quest.QuestCompleted:
		return r.repo.AppendQuestEvent(ctx, store.QuestEventData{
			SessionID:    e.SessionID,
			QuestID:      e.QuestID,
			Title:        e.Title,
			Action:       "completed",
			Score:        e.Score,
			Total:        e.Total,
			XPReward:     e.RewardXP,
			DurationSecs: e.ElapsedSecs,
		})
	case quest.QuestAbandoned:
		return r.repo.AppendQuestEvent(ctx, store.QuestEventData{
			SessionID: e.SessionID,
			QuestID:   e.QuestID,
			Title:     e.Title,
			Action:    "abandoned",
			Answered:  e.Answered,
			Total:     e.Total,
		})
	default:
		return nil
	}
}
