// Package paper implements paper persistence, the exclusive claim primitive and
// the approved-counter maintenance using PostgreSQL.
package paper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/qreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// Repo provides paper persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new paper repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var paperColumns = []string{
	"id", "title", "source_url", "capacity", "claimed_by", "claimed_at",
	"approved_count", "created_at", "updated_at",
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// claimSQL is the exclusive claim: the row only changes while unclaimed.
const claimSQL = `
UPDATE papers
SET claimed_by = $2, claimed_at = $3, updated_at = $3
WHERE id = $1 AND claimed_by IS NULL`

const countUnfinishedClaimsSQL = `
SELECT count(*)
FROM papers p
WHERE p.claimed_by = $1
  AND (SELECT count(*) FROM questions q WHERE q.paper_id = p.id) < p.capacity`

const recountSQL = `
SELECT p.id AS paper_id,
       p.approved_count AS stored,
       count(q.id) FILTER (WHERE q.status = 'APPROVED') AS recounted
FROM papers p
LEFT JOIN questions q ON q.paper_id = p.id
GROUP BY p.id, p.approved_count
HAVING p.approved_count <> count(q.id) FILTER (WHERE q.status = 'APPROVED')
ORDER BY p.id`

type paperRow struct {
	ID            uuid.UUID  `db:"id"`
	Title         string     `db:"title"`
	SourceURL     string     `db:"source_url"`
	Capacity      int        `db:"capacity"`
	ClaimedBy     *uuid.UUID `db:"claimed_by"`
	ClaimedAt     *time.Time `db:"claimed_at"`
	ApprovedCount int        `db:"approved_count"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func (r paperRow) toDomain() domain.Paper {
	return domain.Paper{
		ID:            r.ID,
		Title:         r.Title,
		SourceURL:     r.SourceURL,
		Capacity:      r.Capacity,
		ClaimedBy:     r.ClaimedBy,
		ClaimedAt:     r.ClaimedAt,
		ApprovedCount: r.ApprovedCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type driftRow struct {
	PaperID   uuid.UUID `db:"paper_id"`
	Stored    int       `db:"stored"`
	Recounted int       `db:"recounted"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a paper by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Paper, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns a paper and locks its row until the transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Paper, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (domain.Paper, error) {
	b := postgres.Builder().
		Select(paperColumns...).
		From("papers").
		Where(squirrel.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return domain.Paper{}, fmt.Errorf("build select paper: %w", err)
	}

	var row paperRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.Paper{}, postgres.MapError(err, "paper", id)
	}

	return row.toDomain(), nil
}

// CountUnfinishedClaims counts papers claimed by the user that still hold
// fewer questions than their capacity.
func (r *Repo) CountUnfinishedClaims(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countUnfinishedClaimsSQL, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unfinished claims: %w", err)
	}
	return n, nil
}

// CountQuestions returns how many questions belong to the paper.
func (r *Repo) CountQuestions(ctx context.Context, paperID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From("questions").
		Where(squirrel.Eq{"paper_id": paperID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count questions: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// CountApproved returns how many of the paper's questions are APPROVED.
func (r *Repo) CountApproved(ctx context.Context, paperID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From("questions").
		Where(squirrel.Eq{"paper_id": paperID, "status": string(domain.QuestionStatusApproved)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count approved: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count approved: %w", err)
	}
	return n, nil
}

// FindCountDrift returns every paper whose stored approved counter differs
// from a full recount of its APPROVED questions. Rows are not locked; the
// result is a candidate list to be rechecked under GetByIDForUpdate.
func (r *Repo) FindCountDrift(ctx context.Context) ([]domain.CountDrift, error) {
	var rows []driftRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, recountSQL); err != nil {
		return nil, fmt.Errorf("recount approved questions: %w", err)
	}

	drift := make([]domain.CountDrift, len(rows))
	for i, row := range rows {
		drift[i] = domain.CountDrift{PaperID: row.PaperID, Stored: row.Stored, Recounted: row.Recounted}
	}
	return drift, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new unclaimed paper.
func (r *Repo) Create(ctx context.Context, p domain.Paper) (domain.Paper, error) {
	sql, args, err := postgres.Builder().
		Insert("papers").
		Columns("id", "title", "source_url", "capacity", "created_at", "updated_at").
		Values(p.ID, p.Title, p.SourceURL, p.Capacity, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING " + strings.Join(paperColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Paper{}, fmt.Errorf("build insert paper: %w", err)
	}

	var row paperRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.Paper{}, postgres.MapError(err, "paper", p.ID)
	}

	return row.toDomain(), nil
}

// ClaimIfUnclaimed sets claimed_by to userID only while the paper is unclaimed.
// It is one conditional UPDATE, so concurrent callers cannot both win.
// Reports false when the condition did not hold (lost race or unknown paper).
func (r *Repo) ClaimIfUnclaimed(ctx context.Context, paperID, userID uuid.UUID, at time.Time) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, claimSQL, paperID, userID, at)
	if err != nil {
		return false, postgres.MapError(err, "paper", paperID)
	}
	return tag.RowsAffected() == 1, nil
}

// AdjustApprovedCount adds delta to the paper's approved counter in place.
func (r *Repo) AdjustApprovedCount(ctx context.Context, paperID uuid.UUID, delta int) error {
	sql, args, err := postgres.Builder().
		Update("papers").
		Set("approved_count", squirrel.Expr("approved_count + ?", delta)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": paperID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update approved_count: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "paper", paperID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("paper %s: %w", paperID, domain.ErrNotFound)
	}
	return nil
}

// SetApprovedCount overwrites the approved counter. Used only by reconciliation.
func (r *Repo) SetApprovedCount(ctx context.Context, paperID uuid.UUID, n int) error {
	sql, args, err := postgres.Builder().
		Update("papers").
		Set("approved_count", n).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": paperID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set approved_count: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "paper", paperID)
	}
	return nil
}
