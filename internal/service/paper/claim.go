package paper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// Claim assigns an unclaimed paper to the calling creator.
//
// The active-claim limit is checked before the claim and the two steps are not
// atomic together: concurrent claims by the same creator may overshoot the
// limit by one. The claim itself is a single conditional update, so for any
// paper exactly one caller wins and every other caller gets ErrConflict.
func (s *Service) Claim(ctx context.Context, paperID uuid.UUID) (domain.Paper, error) {
	actor, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return domain.Paper{}, domain.ErrUnauthorized
	}
	if !actor.Is(domain.PrincipalCreator) {
		return domain.Paper{}, domain.ErrForbidden
	}
	if paperID == uuid.Nil {
		return domain.Paper{}, domain.NewValidationError("paper_id", "required")
	}

	active, err := s.papers.CountUnfinishedClaims(ctx, actor.ID)
	if err != nil {
		return domain.Paper{}, fmt.Errorf("count active claims: %w", err)
	}
	if active >= s.maxActiveClaims {
		return domain.Paper{}, fmt.Errorf("%d unfinished claims (max %d): %w",
			active, s.maxActiveClaims, domain.ErrLimitExceeded)
	}

	won, err := s.papers.ClaimIfUnclaimed(ctx, paperID, actor.ID, time.Now().UTC())
	if err != nil {
		return domain.Paper{}, fmt.Errorf("claim paper: %w", err)
	}

	claimed, err := s.papers.GetByID(ctx, paperID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Paper{}, err
		}
		return domain.Paper{}, fmt.Errorf("get claimed paper: %w", err)
	}
	if !won {
		return domain.Paper{}, fmt.Errorf("paper %s already claimed: %w", paperID, domain.ErrConflict)
	}

	s.log.InfoContext(ctx, "paper claimed",
		slog.String("user_id", actor.ID.String()),
		slog.String("paper_id", paperID.String()),
	)

	return claimed, nil
}
