package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestID(data.QuestID).
		SetQuestionID(data.QuestionID).
		SetSkill(data.Skill).
		SetDifficulty(data.Difficulty).
		SetCorrect(data.Correct).
		SetSelectedIndex(data.SelectedIndex).
		SetCorrectIndex(data.CorrectIndex).
		SetElapsedMs(data.ElapsedMs).
		SetHintsUsed(data.HintsUsed).
		SetAttempt(data.Attempt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SkillTallies(ctx context.Context) (map[string]SkillTally, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skill tallies: %w", err)
	}

	tallies := make(map[string]SkillTally)
	for _, e := range events {
		t := tallies[e.Skill]
		t.Attempted++
		if e.Correct {
			t.Correct++
		}
		tallies[e.Skill] = t
	}
	return tallies, nil
}
