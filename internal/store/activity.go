package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const activitiesTable = "activities"

var activityColumns = []string{
	"id", "sequence", "kind", "subject_id", "minutes", "score", "topics", "completed_at",
}

// activityRepo implements ActivityRepo backed by the global sequence counter.
type activityRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *activityRepo) Record(ctx context.Context, a ActivityRecord) (ActivityRecord, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return a, fmt.Errorf("next sequence: %w", err)
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CompletedAt.IsZero() {
		a.CompletedAt = time.Now()
	}
	if a.Topics == nil {
		a.Topics = []string{}
	}
	a.Sequence = seqNum

	topics, err := json.Marshal(a.Topics)
	if err != nil {
		return a, fmt.Errorf("marshal topics: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(activitiesTable).
		Columns(activityColumns...).
		Values(a.ID, a.Sequence, string(a.Kind), a.SubjectID, a.Minutes, a.Score,
			string(topics), a.CompletedAt.UnixMilli()).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return a, fmt.Errorf("save activity: %w", err)
	}
	return a, nil
}

func (r *activityRepo) Recent(ctx context.Context, n int) ([]ActivityRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(activityColumns...).
		From(entsql.Table(activitiesTable)).
		OrderBy(entsql.Desc("sequence"))
	if n > 0 {
		sel.Limit(n)
	}
	query, args := sel.Query()
	return r.query(ctx, query, args)
}

func (r *activityRepo) Between(ctx context.Context, from, to time.Time) ([]ActivityRecord, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(activityColumns...).
		From(entsql.Table(activitiesTable)).
		Where(entsql.And(
			entsql.GTE("completed_at", from.UnixMilli()),
			entsql.LT("completed_at", to.UnixMilli()),
		)).
		OrderBy("completed_at").
		Query()
	return r.query(ctx, query, args)
}

func (r *activityRepo) All(ctx context.Context) ([]ActivityRecord, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(activityColumns...).
		From(entsql.Table(activitiesTable)).
		OrderBy("sequence").
		Query()
	return r.query(ctx, query, args)
}

func (r *activityRepo) query(ctx context.Context, query string, args []any) ([]ActivityRecord, error) {
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var out []ActivityRecord
	for rows.Next() {
		var (
			a         ActivityRecord
			kind      string
			topics    string
			completed int64
		)
		if err := rows.Scan(&a.ID, &a.Sequence, &kind, &a.SubjectID, &a.Minutes, &a.Score,
			&topics, &completed); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Kind = ActivityKind(kind)
		a.CompletedAt = time.UnixMilli(completed)
		if err := json.Unmarshal([]byte(topics), &a.Topics); err != nil {
			return nil, fmt.Errorf("unmarshal topics for %s: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
