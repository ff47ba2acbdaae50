package store

import (
	"context"
	"fmt"

	"github.com/abhisek/eduvoyager/ent"
	"github.com/abhisek/eduvoyager/ent/progressevent"
)

func (r *eventRepo) AppendProgressEvent(ctx context.Context, data ProgressEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProgressEvent.Create().
		SetSequence(seqNum).
		SetEmail(data.Email).
		SetAction(data.Action).
		SetNillableStepID(data.StepID).
		SetRoadmapTitle(data.RoadmapTitle).
		SetNsqfLevel(data.NSQFLevel).
		SetXpDelta(data.XPDelta).
		SetNillableBadgeID(data.BadgeID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryProgressEvents(ctx context.Context, opts QueryOpts) ([]ProgressEventRecord, error) {
	q := r.client.ProgressEvent.Query().
		Order(ent.Desc(progressevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(progressevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(progressevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(progressevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(progressevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress events: %w", err)
	}

	records := make([]ProgressEventRecord, 0, len(rows))
	for _, e := range rows {
		records = append(records, ProgressEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ProgressEventData: ProgressEventData{
				Email:        e.Email,
				Action:       e.Action,
				StepID:       e.StepID,
				RoadmapTitle: e.RoadmapTitle,
				NSQFLevel:    e.NsqfLevel,
				XPDelta:      e.XpDelta,
				BadgeID:      e.BadgeID,
			},
		})
	}
	return records, nil
}
