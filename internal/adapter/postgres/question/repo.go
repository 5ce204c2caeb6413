// Package question implements question persistence using PostgreSQL.
// Status writes are only issued by the review workflow, under a row lock
// taken with GetByIDForUpdate or LockPending.
package question

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

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new question repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var questionColumns = []string{
	"id", "paper_id", "owner_id", "reviewer_id", "status", "difficulty", "body",
	"image_urls", "reviewer_comment", "owner_comment", "created_at", "updated_at",
}

var returningAll = "RETURNING " + strings.Join(questionColumns, ", ")

type questionRow struct {
	ID              uuid.UUID  `db:"id"`
	PaperID         uuid.UUID  `db:"paper_id"`
	OwnerID         uuid.UUID  `db:"owner_id"`
	ReviewerID      *uuid.UUID `db:"reviewer_id"`
	Status          string     `db:"status"`
	Difficulty      int16      `db:"difficulty"`
	Body            string     `db:"body"`
	ImageURLs       []string   `db:"image_urls"`
	ReviewerComment *string    `db:"reviewer_comment"`
	OwnerComment    *string    `db:"owner_comment"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (r questionRow) toDomain() domain.Question {
	urls := r.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	return domain.Question{
		ID:              r.ID,
		PaperID:         r.PaperID,
		OwnerID:         r.OwnerID,
		ReviewerID:      r.ReviewerID,
		Status:          domain.QuestionStatus(r.Status),
		Difficulty:      domain.Difficulty(r.Difficulty),
		Body:            r.Body,
		ImageURLs:       urls,
		ReviewerComment: r.ReviewerComment,
		OwnerComment:    r.OwnerComment,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toDomainList(rows []questionRow) []domain.Question {
	out := make([]domain.Question, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a question by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Question, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns a question and locks its row until the transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Question, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (domain.Question, error) {
	b := postgres.Builder().
		Select(questionColumns...).
		From("questions").
		Where(squirrel.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return domain.Question{}, fmt.Errorf("build select question: %w", err)
	}

	var row questionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.Question{}, postgres.MapError(err, "question", id)
	}

	return row.toDomain(), nil
}

// LockPending returns the questions among ids that are currently PENDING and
// locks them. Rows are locked in id order so concurrent bulk calls over
// overlapping sets cannot deadlock.
func (r *Repo) LockPending(ctx context.Context, ids []uuid.UUID) ([]domain.Question, error) {
	if len(ids) == 0 {
		return []domain.Question{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(questionColumns...).
		From("questions").
		Where(squirrel.Eq{"id": ids, "status": string(domain.QuestionStatusPending)}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lock pending questions: %w", err)
	}

	var rows []questionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("lock pending questions: %w", err)
	}

	return toDomainList(rows), nil
}

// ListByPaper returns all questions of a paper, oldest first.
func (r *Repo) ListByPaper(ctx context.Context, paperID uuid.UUID) ([]domain.Question, error) {
	sql, args, err := postgres.Builder().
		Select(questionColumns...).
		From("questions").
		Where(squirrel.Eq{"paper_id": paperID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list questions: %w", err)
	}

	var rows []questionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list questions by paper: %w", err)
	}

	return toDomainList(rows), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new question.
func (r *Repo) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	urls := q.ImageURLs
	if urls == nil {
		urls = []string{}
	}

	sql, args, err := postgres.Builder().
		Insert("questions").
		Columns("id", "paper_id", "owner_id", "status", "difficulty", "body", "image_urls", "created_at", "updated_at").
		Values(q.ID, q.PaperID, q.OwnerID, string(q.Status), int16(q.Difficulty), q.Body, urls, q.CreatedAt, q.UpdatedAt).
		Suffix(returningAll).
		ToSql()
	if err != nil {
		return domain.Question{}, fmt.Errorf("build insert question: %w", err)
	}

	var row questionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.Question{}, postgres.MapError(err, "question", q.ID)
	}

	return row.toDomain(), nil
}

// UpdateContent overwrites the editable content of a question.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, body string, difficulty domain.Difficulty, imageURLs []string) (domain.Question, error) {
	if imageURLs == nil {
		imageURLs = []string{}
	}

	sql, args, err := postgres.Builder().
		Update("questions").
		Set("body", body).
		Set("difficulty", int16(difficulty)).
		Set("image_urls", imageURLs).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningAll).
		ToSql()
	if err != nil {
		return domain.Question{}, fmt.Errorf("build update question content: %w", err)
	}

	var row questionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.Question{}, postgres.MapError(err, "question", id)
	}

	return row.toDomain(), nil
}

// UpdateStatus writes the workflow fields of a single question.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, upd domain.StatusUpdate) (domain.Question, error) {
	sql, args, err := postgres.Builder().
		Update("questions").
		Set("status", string(upd.Status)).
		Set("reviewer_id", upd.ReviewerID).
		Set("reviewer_comment", upd.ReviewerComment).
		Set("owner_comment", upd.OwnerComment).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningAll).
		ToSql()
	if err != nil {
		return domain.Question{}, fmt.Errorf("build update question status: %w", err)
	}

	var row questionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.Question{}, postgres.MapError(err, "question", id)
	}

	return row.toDomain(), nil
}

// ApproveMany moves every listed question to APPROVED with the given reviewer
// in one statement, clearing both comments, and returns the number of rows
// changed.
func (r *Repo) ApproveMany(ctx context.Context, ids []uuid.UUID, reviewerID uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := postgres.Builder().
		Update("questions").
		Set("status", string(domain.QuestionStatusApproved)).
		Set("reviewer_id", reviewerID).
		Set("reviewer_comment", nil).
		Set("owner_comment", nil).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build approve questions: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("approve questions: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// Delete removes a question row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete("questions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete question: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "question", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
