// Package actionlog implements the per-principal action log using PostgreSQL.
// Each (principal, log kind, question) triple owns exactly one row holding an
// ordered timestamp array, so recording and undoing are single-row upserts on
// the primary key.
package actionlog

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/qreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// Repo provides action log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new action log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// clock_timestamp keeps entries recorded inside one transaction distinct.
const recordSQL = `
INSERT INTO action_logs (principal_kind, principal_id, log_kind, question_id, timestamps, updated_at)
VALUES ($1, $2, $3, $4, ARRAY[clock_timestamp()], clock_timestamp())
ON CONFLICT (principal_kind, principal_id, log_kind, question_id)
DO UPDATE SET
    timestamps = array_append(action_logs.timestamps, clock_timestamp()),
    updated_at = clock_timestamp()
RETURNING cardinality(timestamps)`

const deleteLastSQL = `
DELETE FROM action_logs
WHERE principal_kind = $1 AND principal_id = $2 AND log_kind = $3 AND question_id = $4
  AND cardinality(timestamps) <= 1`

const trimLastSQL = `
UPDATE action_logs
SET timestamps = trim_array(timestamps, 1), updated_at = clock_timestamp()
WHERE principal_kind = $1 AND principal_id = $2 AND log_kind = $3 AND question_id = $4`

const getSQL = `
SELECT question_id, timestamps
FROM action_logs
WHERE principal_kind = $1 AND principal_id = $2 AND log_kind = $3 AND question_id = $4`

// listByPeriodSQL keeps only the timestamps inside [from, to) and drops entries
// with none left. Array order is preserved through WITH ORDINALITY.
const listByPeriodSQL = `
SELECT a.question_id, w.ts AS timestamps
FROM action_logs a
CROSS JOIN LATERAL (
    SELECT array_agg(u.t ORDER BY u.ord) AS ts
    FROM unnest(a.timestamps) WITH ORDINALITY AS u(t, ord)
    WHERE u.t >= $4 AND u.t < $5
) w
WHERE a.principal_kind = $1 AND a.principal_id = $2 AND a.log_kind = $3
  AND w.ts IS NOT NULL
ORDER BY a.question_id`

type entryRow struct {
	QuestionID uuid.UUID   `db:"question_id"`
	Timestamps []time.Time `db:"timestamps"`
}

func (r entryRow) toDomain(p domain.Principal, kind domain.LogKind) domain.ActionLogEntry {
	return domain.ActionLogEntry{
		Principal:  p,
		Kind:       kind,
		QuestionID: r.QuestionID,
		Timestamps: r.Timestamps,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Record appends the current time to the entry for (p, kind, questionID),
// creating the entry when absent. Returns the new number of timestamps.
func (r *Repo) Record(ctx context.Context, p domain.Principal, kind domain.LogKind, questionID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	err := q.QueryRow(ctx, recordSQL, string(p.Kind), p.ID, string(kind), questionID).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "action_log", questionID)
	}

	return n, nil
}

// UndoLast removes the most recent timestamp from the entry for
// (p, kind, questionID) and deletes the entry once it is empty.
// A missing entry is not an error; removed reports whether anything changed.
func (r *Repo) UndoLast(ctx context.Context, p domain.Principal, kind domain.LogKind, questionID uuid.UUID) (removed bool, err error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	args := []any{string(p.Kind), p.ID, string(kind), questionID}

	tag, err := q.Exec(ctx, deleteLastSQL, args...)
	if err != nil {
		return false, postgres.MapError(err, "action_log", questionID)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	tag, err = q.Exec(ctx, trimLastSQL, args...)
	if err != nil {
		return false, postgres.MapError(err, "action_log", questionID)
	}

	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the entry for (p, kind, questionID) or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, p domain.Principal, kind domain.LogKind, questionID uuid.UUID) (domain.ActionLogEntry, error) {
	var row entryRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getSQL,
		string(p.Kind), p.ID, string(kind), questionID)
	if err != nil {
		return domain.ActionLogEntry{}, postgres.MapError(err, "action_log", questionID)
	}

	return row.toDomain(p, kind), nil
}

// ListByPeriod returns the principal's entries of one kind restricted to
// timestamps within [from, to).
func (r *Repo) ListByPeriod(ctx context.Context, p domain.Principal, kind domain.LogKind, from, to time.Time) ([]domain.ActionLogEntry, error) {
	var rows []entryRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByPeriodSQL,
		string(p.Kind), p.ID, string(kind), from, to)
	if err != nil {
		return nil, fmt.Errorf("list action logs by period: %w", err)
	}

	entries := make([]domain.ActionLogEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain(p, kind)
	}
	return entries, nil
}
