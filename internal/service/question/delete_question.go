package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// DeleteQuestion removes a question. Owners and admins may delete questions
// that have not been approved. Referenced assets are removed after the commit
// on a best-effort basis.
func (s *Service) DeleteQuestion(ctx context.Context, questionID uuid.UUID) error {
	actor, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var images []string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, err := s.questions.GetByIDForUpdate(txCtx, questionID)
		if err != nil {
			return fmt.Errorf("get question: %w", err)
		}
		if actor != q.Owner() && !actor.Is(domain.PrincipalAdmin) {
			return domain.ErrForbidden
		}
		if q.Status == domain.QuestionStatusApproved || q.Status == domain.QuestionStatusFinalised {
			return fmt.Errorf("question %s is %s: %w", q.ID, q.Status, domain.ErrConflict)
		}

		if err := s.questions.Delete(txCtx, q.ID); err != nil {
			return fmt.Errorf("delete question: %w", err)
		}
		images = q.ImageURLs
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "question deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("question_id", questionID.String()),
	)

	if s.assets == nil {
		return nil
	}
	for _, u := range images {
		if rmErr := s.assets.Remove(ctx, u); rmErr != nil {
			s.log.WarnContext(ctx, "asset cleanup failed",
				slog.String("question_id", questionID.String()),
				slog.String("url", u),
				slog.String("error", rmErr.Error()),
			)
		}
	}

	return nil
}
