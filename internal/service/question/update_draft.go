package question

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// UpdateDraft edits the content of a question the caller owns. Only DRAFT
// and REJECTED questions are editable.
func (s *Service) UpdateDraft(ctx context.Context, input UpdateDraftInput) (domain.Question, error) {
	actor, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return domain.Question{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Question{}, err
	}

	var updated domain.Question
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, err := s.questions.GetByIDForUpdate(txCtx, input.QuestionID)
		if err != nil {
			return fmt.Errorf("get question: %w", err)
		}
		if actor != q.Owner() {
			return domain.ErrForbidden
		}
		if !q.Status.Editable() {
			return fmt.Errorf("question %s is %s: %w", q.ID, q.Status, domain.ErrConflict)
		}

		body, difficulty, images := q.Body, q.Difficulty, q.ImageURLs
		if input.Body != nil {
			body = strings.TrimSpace(*input.Body)
		}
		if input.Difficulty != nil {
			difficulty = *input.Difficulty
		}
		if input.ImageURLs != nil {
			images = input.ImageURLs
		}

		updated, err = s.questions.UpdateContent(txCtx, q.ID, body, difficulty, images)
		if err != nil {
			return fmt.Errorf("update question: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Question{}, err
	}

	return updated, nil
}
