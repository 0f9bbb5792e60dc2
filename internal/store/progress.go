package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// progressRepo implements ProgressRepo on the progresses table.
type progressRepo struct {
	drv *entsql.Driver
}

func (r *progressRepo) Get(ctx context.Context, key string) ([]byte, error) {
	b := builder()
	query, args := b.Select("value").
		From(b.Table(progressTable)).
		Where(entsql.EQ("key", key)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("get progress %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get progress %q: %w", key, err)
		}
		return nil, nil
	}
	var value []byte
	if err := rows.Scan(&value); err != nil {
		return nil, fmt.Errorf("scan progress %q: %w", key, err)
	}
	return value, nil
}

func (r *progressRepo) Put(ctx context.Context, key string, value []byte) error {
	query, args := builder().Insert(progressTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("put progress %q: %w", key, err)
	}
	return nil
}

func (r *progressRepo) Delete(ctx context.Context, key string) error {
	query, args := builder().Delete(progressTable).
		Where(entsql.EQ("key", key)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete progress %q: %w", key, err)
	}
	return nil
}
