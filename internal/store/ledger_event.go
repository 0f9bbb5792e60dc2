package store

import (
	"context"
	"fmt"
)

var ledgerEventColumns = eventColumns("kind", "amount", "character_id", "balance_after")

func (r *eventRepo) AppendLedgerEvent(ctx context.Context, data LedgerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	err = r.insert(ctx, ledgerEventsTable, ledgerEventColumns,
		seqNum, r.timestamp(), data.Kind, data.Amount, data.CharacterID, data.BalanceAfter)
	if err != nil {
		return fmt.Errorf("save ledger event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLedgerEvents(ctx context.Context, opts QueryOpts) ([]LedgerEventRecord, error) {
	rows, err := r.selectEvents(ctx, ledgerEventsTable, opts, ledgerEventColumns...)
	if err != nil {
		return nil, fmt.Errorf("query ledger events: %w", err)
	}
	defer rows.Close()

	var records []LedgerEventRecord
	for rows.Next() {
		var rec LedgerEventRecord
		if err := rows.Scan(&rec.Sequence, &rec.Timestamp, &rec.Kind, &rec.Amount, &rec.CharacterID, &rec.BalanceAfter); err != nil {
			return nil, fmt.Errorf("scan ledger event: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger events: %w", err)
	}
	return records, nil
}
