package profile

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/homeworkgoat/goat/internal/quest"
	"github.com/homeworkgoat/goat/internal/store"
)

// snapshotsToKeep bounds the snapshot history in the database.
const snapshotsToKeep = 10

// Service owns the in-memory profile and its snapshot persistence.
// All methods are safe for concurrent use.
type Service struct {
	mu        sync.Mutex
	profile   Profile
	snapshots store.SnapshotRepo

	// streak tracks the current correct-answer run across events,
	// feeding BestStreak.
	streak int

	// saveSeq numbers snapshots monotonically across runs.
	saveSeq int64
}

// NewService creates a Service with an empty profile. Call Load to restore
// persisted state.
func NewService(snapshots store.SnapshotRepo) *Service {
	return &Service{
		profile:   NewProfile(),
		snapshots: snapshots,
	}
}

// Load restores the profile from the latest snapshot, if any.
func (s *Service) Load(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}

	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if snap == nil || snap.Data.Profile == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ps := snap.Data.Profile
	p := NewProfile()
	p.Name = ps.Name
	p.TotalXP = ps.TotalXP
	p.QuestsCompleted = ps.QuestsCompleted
	p.BestStreak = ps.BestStreak
	p.HintsUsed = ps.HintsUsed
	p.CompletedQuests = append(p.CompletedQuests, ps.CompletedQuests...)
	for skill, tally := range ps.Skills {
		p.Skills[quest.Skill(skill)] = SkillStats{
			Attempted: tally.Attempted,
			Correct:   tally.Correct,
		}
	}
	s.profile = p
	s.saveSeq = snap.Sequence
	return nil
}

// Save writes the current profile as a new snapshot and prunes old ones.
func (s *Service) Save(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}

	s.mu.Lock()
	s.saveSeq++
	snap := &store.Snapshot{
		Sequence:  s.saveSeq,
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version: 1,
			Profile: s.snapshotState(),
		},
	}
	s.mu.Unlock()

	if err := s.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if err := s.snapshots.Prune(ctx, snapshotsToKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// snapshotState converts the profile to its serialized form.
// Caller must hold s.mu.
func (s *Service) snapshotState() *store.ProfileState {
	p := s.profile
	state := &store.ProfileState{
		Name:            p.Name,
		TotalXP:         p.TotalXP,
		QuestsCompleted: p.QuestsCompleted,
		BestStreak:      p.BestStreak,
		HintsUsed:       p.HintsUsed,
		Skills:          make(map[string]store.SkillTally, len(p.Skills)),
	}
	state.CompletedQuests = append(state.CompletedQuests, p.CompletedQuests...)
	for skill, stats := range p.Skills {
		state.Skills[string(skill)] = store.SkillTally{
			Attempted: stats.Attempted,
			Correct:   stats.Correct,
		}
	}
	return state
}

// Profile returns a copy of the current profile.
func (s *Service) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profile
	p.Skills = make(map[quest.Skill]SkillStats, len(s.profile.Skills))
	for k, v := range s.profile.Skills {
		p.Skills[k] = v
	}
	p.CompletedQuests = append([]string(nil), s.profile.CompletedQuests...)
	return p
}

// SetName updates the player's name and persists a snapshot right away, so
// a first-run player who quits without finishing a quest is not re-prompted
// on the next launch.
func (s *Service) SetName(name string) {
	s.mu.Lock()
	s.profile.Name = name
	s.mu.Unlock()
	s.persist()
}

// RecordAnswer tallies one answered question.
func (s *Service) RecordAnswer(skill quest.Skill, correct bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.profile.Skills[skill]
	stats.Attempted++
	if correct {
		stats.Correct++
		s.streak++
		if s.streak > s.profile.BestStreak {
			s.profile.BestStreak = s.streak
		}
	} else {
		s.streak = 0
	}
	s.profile.Skills[skill] = stats
}

// RecordHint tallies one hint request.
func (s *Service) RecordHint() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.HintsUsed++
}

// CompleteQuest awards XP for a finished quest and records the completion.
// Returns the player's level before and after the award so callers can
// announce level-ups.
func (s *Service) CompleteQuest(questID string, rewardXP int) (before, after int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before = s.profile.Level()
	s.profile.TotalXP += rewardXP
	s.profile.QuestsCompleted++
	if !s.profile.HasCompleted(questID) {
		s.profile.CompletedQuests = append(s.profile.CompletedQuests, questID)
	}
	after = s.profile.Level()
	return before, after
}

// Hook returns a quest.Sink that keeps the profile in sync with session
// events and persists a snapshot when a quest ends.
func (s *Service) Hook() quest.Sink {
	return quest.SinkFunc(s.handleEvent)
}

func (s *Service) handleEvent(ev quest.Event) {
	switch e := ev.(type) {
	case quest.QuestStarted:
		s.mu.Lock()
		s.streak = 0
		s.mu.Unlock()
	case quest.QuestionAnswered:
		s.RecordAnswer(e.Skill, e.Correct)
	case quest.HintUsed:
		s.RecordHint()
	case quest.QuestCompleted:
		s.CompleteQuest(e.QuestID, e.RewardXP)
		s.persist()
	case quest.QuestAbandoned:
		s.persist()
	}
}

// persist saves a snapshot in the background. Sinks must not block the
// session, and a failed save only costs recent progress.
func (s *Service) persist() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Save(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save profile: %v\n", err)
		}
	}()
}
