package paper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// CreatePaper registers a new unclaimed paper. Admin only.
func (s *Service) CreatePaper(ctx context.Context, input CreatePaperInput) (domain.Paper, error) {
	actor, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return domain.Paper{}, domain.ErrUnauthorized
	}
	if !actor.Is(domain.PrincipalAdmin) {
		return domain.Paper{}, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return domain.Paper{}, err
	}

	now := time.Now().UTC()
	created, err := s.papers.Create(ctx, domain.Paper{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(input.Title),
		SourceURL: input.SourceURL,
		Capacity:  input.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.Paper{}, fmt.Errorf("create paper: %w", err)
	}

	s.log.InfoContext(ctx, "paper created",
		slog.String("admin_id", actor.ID.String()),
		slog.String("paper_id", created.ID.String()),
		slog.Int("capacity", created.Capacity),
	)

	return created, nil
}

// GetPaper returns a paper by ID.
func (s *Service) GetPaper(ctx context.Context, paperID uuid.UUID) (domain.Paper, error) {
	if _, ok := domain.PrincipalFromCtx(ctx); !ok {
		return domain.Paper{}, domain.ErrUnauthorized
	}

	p, err := s.papers.GetByID(ctx, paperID)
	if err != nil {
		return domain.Paper{}, fmt.Errorf("get paper: %w", err)
	}
	return p, nil
}
