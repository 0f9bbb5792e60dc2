package store

import (
	"context"
	"fmt"
)

var spinEventColumns = eventColumns(
	"spin_id", "slot", "outcome_kind", "label", "character_id", "tokens_awarded", "new_unlock", "cost",
)

func (r *eventRepo) AppendSpinEvent(ctx context.Context, data SpinEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	err = r.insert(ctx, spinEventsTable, spinEventColumns,
		seqNum, r.timestamp(), data.SpinID, data.Slot, data.OutcomeKind, data.Label,
		data.CharacterID, data.TokensAwarded, data.NewUnlock, data.Cost)
	if err != nil {
		return fmt.Errorf("save spin event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySpinEvents(ctx context.Context, opts QueryOpts) ([]SpinEventRecord, error) {
	rows, err := r.selectEvents(ctx, spinEventsTable, opts, spinEventColumns...)
	if err != nil {
		return nil, fmt.Errorf("query spin events: %w", err)
	}
	defer rows.Close()

	var records []SpinEventRecord
	for rows.Next() {
		var rec SpinEventRecord
		if err := rows.Scan(&rec.Sequence, &rec.Timestamp, &rec.SpinID, &rec.Slot, &rec.OutcomeKind, &rec.Label,
			&rec.CharacterID, &rec.TokensAwarded, &rec.NewUnlock, &rec.Cost); err != nil {
			return nil, fmt.Errorf("scan spin event: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spin events: %w", err)
	}
	return records, nil
}
