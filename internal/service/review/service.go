// Package review runs the question review workflow. Every status change and
// its side effects on the paper counter, the action logs and the earnings
// ledger commit together or not at all.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
	"github.com/heartmarshall/qreview-backend/internal/service/ledger"
)

type questionRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Question, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, upd domain.StatusUpdate) (domain.Question, error)
	LockPending(ctx context.Context, ids []uuid.UUID) ([]domain.Question, error)
	ApproveMany(ctx context.Context, ids []uuid.UUID, reviewerID uuid.UUID) (int, error)
}

type paperCounter interface {
	AdjustApprovedCount(ctx context.Context, paperID uuid.UUID, delta int) error
}

type actionLog interface {
	Record(ctx context.Context, p domain.Principal, kind domain.LogKind, questionID uuid.UUID) (int, error)
	UndoLast(ctx context.Context, p domain.Principal, kind domain.LogKind, questionID uuid.UUID) (bool, error)
	ListByPeriod(ctx context.Context, p domain.Principal, kind domain.LogKind, from, to time.Time) ([]domain.ActionLogEntry, error)
}

type earnings interface {
	Credit(ctx context.Context, p ledger.Posting) error
	Debit(ctx context.Context, p ledger.Posting) error
}

type confirmer interface {
	Confirm(ctx context.Context, q domain.Question) error
}

type idempotencyStore interface {
	Get(ctx context.Context, key string) (domain.IdempotencyRecord, bool, error)
	Save(ctx context.Context, key string, rec domain.IdempotencyRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options holds the workflow parameters taken from configuration.
type Options struct {
	Rates       domain.PayoutRates
	BulkMaxSize int
}

// Service runs review transitions and bulk approvals.
type Service struct {
	questions   questionRepo
	papers      paperCounter
	logs        actionLog
	earnings    earnings
	confirmer   confirmer
	idempotency idempotencyStore
	tx          txManager
	log         *slog.Logger
	opts        Options
}

// NewService creates a new review service. confirmer and idem may be nil:
// without a confirmer every finalisation fails, without idem bulk approvals
// ignore idempotency keys.
func NewService(
	log *slog.Logger,
	questions questionRepo,
	papers paperCounter,
	logs actionLog,
	earnings earnings,
	confirmer confirmer,
	idem idempotencyStore,
	tx txManager,
	opts Options,
) *Service {
	return &Service{
		questions:   questions,
		papers:      papers,
		logs:        logs,
		earnings:    earnings,
		confirmer:   confirmer,
		idempotency: idem,
		tx:          tx,
		log:         log.With("service", "review"),
		opts:        opts,
	}
}
