package store

import (
	"context"
	"fmt"
)

var triviaEventColumns = eventColumns(
	"session_id", "questions", "correct", "streak", "time_remaining", "tokens", "tier",
)

func (r *eventRepo) AppendTriviaEvent(ctx context.Context, data TriviaEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	err = r.insert(ctx, triviaEventsTable, triviaEventColumns,
		seqNum, r.timestamp(), data.SessionID, data.Questions, data.Correct, data.Streak,
		data.TimeRemaining, data.Tokens, data.Tier)
	if err != nil {
		return fmt.Errorf("save trivia event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryTriviaEvents(ctx context.Context, opts QueryOpts) ([]TriviaEventRecord, error) {
	rows, err := r.selectEvents(ctx, triviaEventsTable, opts, triviaEventColumns...)
	if err != nil {
		return nil, fmt.Errorf("query trivia events: %w", err)
	}
	defer rows.Close()

	var records []TriviaEventRecord
	for rows.Next() {
		var rec TriviaEventRecord
		if err := rows.Scan(&rec.Sequence, &rec.Timestamp, &rec.SessionID, &rec.Questions, &rec.Correct,
			&rec.Streak, &rec.TimeRemaining, &rec.Tokens, &rec.Tier); err != nil {
			return nil, fmt.Errorf("scan trivia event: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trivia events: %w", err)
	}
	return records, nil
}
