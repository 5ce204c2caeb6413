package question

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// GetQuestion returns a question. Creators only see their own questions.
func (s *Service) GetQuestion(ctx context.Context, questionID uuid.UUID) (domain.Question, error) {
	actor, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return domain.Question{}, domain.ErrUnauthorized
	}

	q, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return domain.Question{}, fmt.Errorf("get question: %w", err)
	}

	// Hide other creators' questions behind NotFound.
	if actor.Is(domain.PrincipalCreator) && actor != q.Owner() {
		return domain.Question{}, fmt.Errorf("question %s: %w", questionID, domain.ErrNotFound)
	}
	return q, nil
}
