// Package paper manages source papers and the claim allocator that hands
// them out to creators.
package paper

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

type paperRepo interface {
	Create(ctx context.Context, p domain.Paper) (domain.Paper, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Paper, error)
	CountUnfinishedClaims(ctx context.Context, userID uuid.UUID) (int, error)
	ClaimIfUnclaimed(ctx context.Context, paperID, userID uuid.UUID, at time.Time) (bool, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Paper, error)
	CountApproved(ctx context.Context, paperID uuid.UUID) (int, error)
	FindCountDrift(ctx context.Context) ([]domain.CountDrift, error)
	SetApprovedCount(ctx context.Context, paperID uuid.UUID, n int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides paper management and claim allocation.
type Service struct {
	papers          paperRepo
	tx              txManager
	log             *slog.Logger
	maxActiveClaims int
}

// NewService creates a new paper service. maxActiveClaims is the number of
// unfinished papers a creator may hold at once.
func NewService(log *slog.Logger, papers paperRepo, tx txManager, maxActiveClaims int) *Service {
	return &Service{
		papers:          papers,
		tx:              tx,
		log:             log.With("service", "paper"),
		maxActiveClaims: maxActiveClaims,
	}
}
