package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendQuestEvent(ctx context.Context, data QuestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuestEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestID(data.QuestID).
		SetTitle(data.Title).
		SetAction(data.Action).
		SetAnswered(data.Answered).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetXpReward(data.XPReward).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quest event: %w", err)
	}
	return nil
}
