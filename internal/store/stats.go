package store

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) ActivityStats(ctx context.Context) (ActivityStats, error) {
	var st ActivityStats
	b := builder()

	spins := b.Select(entsql.Count("*"), entsql.Sum("new_unlock"), entsql.Sum("tokens_awarded")).
		From(b.Table(spinEventsTable))
	if err := r.scanInts(ctx, spins, &st.Spins, &st.CharacterWins, &st.WheelTokens); err != nil {
		return st, fmt.Errorf("spin stats: %w", err)
	}

	trivia := b.Select(entsql.Count("*"), entsql.Sum("tokens"), entsql.Max("tokens")).
		From(b.Table(triviaEventsTable))
	if err := r.scanInts(ctx, trivia, &st.TriviaGames, &st.TriviaTokens, &st.BestTriviaTokens); err != nil {
		return st, fmt.Errorf("trivia stats: %w", err)
	}

	spent := b.Select(entsql.Sum("amount")).
		From(b.Table(ledgerEventsTable)).
		Where(entsql.EQ("kind", LedgerSpend))
	if err := r.scanInts(ctx, spent, &st.TokensSpent); err != nil {
		return st, fmt.Errorf("ledger stats: %w", err)
	}

	resets := b.Select(entsql.Count("*")).
		From(b.Table(ledgerEventsTable)).
		Where(entsql.EQ("kind", LedgerReset))
	if err := r.scanInts(ctx, resets, &st.Resets); err != nil {
		return st, fmt.Errorf("ledger stats: %w", err)
	}

	return st, nil
}

// scanInts runs an aggregate query returning one row. NULL aggregates over
// empty tables read as 0.
func (r *eventRepo) scanInts(ctx context.Context, sel *entsql.Selector, dest ...*int) error {
	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	vals := make([]sql.NullInt64, len(dest))
	ptrs := make([]any, len(dest))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return err
	}
	for i, v := range vals {
		*dest[i] = int(v.Int64)
	}
	return rows.Err()
}
