package store

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const preferencesTable = "preferences"

// PreferenceRepo is a string-keyed store of raw JSON preference values.
type PreferenceRepo struct {
	drv *entsql.Driver
}

// All returns every stored preference.
func (r *PreferenceRepo) All(ctx context.Context) (map[string]string, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("key", "value").
		From(entsql.Table(preferencesTable)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		out[key] = value
	}
	return out, rows.Err()
}

// Set upserts value under key. Last write wins.
func (r *PreferenceRepo) Set(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save preference %q: %w", key, err)
	}
	return nil
}

// Delete removes the given keys. Missing keys are ignored.
func (r *PreferenceRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	vals := make([]driver.Value, len(keys))
	for i, k := range keys {
		vals[i] = k
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Delete(preferencesTable).
		Where(entsql.InValues("key", vals...)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete preferences: %w", err)
	}
	return nil
}
