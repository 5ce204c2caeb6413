package question

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// CreateQuestion drafts a new question on a paper the caller has claimed.
func (s *Service) CreateQuestion(ctx context.Context, input CreateQuestionInput) (domain.Question, error) {
	actor, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return domain.Question{}, domain.ErrUnauthorized
	}
	if !actor.Is(domain.PrincipalCreator) {
		return domain.Question{}, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return domain.Question{}, err
	}

	var created domain.Question
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The paper lock serialises concurrent drafts against the capacity check.
		paper, err := s.papers.GetByIDForUpdate(txCtx, input.PaperID)
		if err != nil {
			return fmt.Errorf("lock paper: %w", err)
		}
		if !paper.IsClaimedBy(actor.ID) {
			return fmt.Errorf("paper %s is not claimed by caller: %w", paper.ID, domain.ErrForbidden)
		}

		count, err := s.papers.CountQuestions(txCtx, paper.ID)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		if count >= paper.Capacity {
			return fmt.Errorf("paper %s holds %d of %d questions: %w",
				paper.ID, count, paper.Capacity, domain.ErrLimitExceeded)
		}

		now := time.Now().UTC()
		created, err = s.questions.Create(txCtx, domain.Question{
			ID:         uuid.New(),
			PaperID:    paper.ID,
			OwnerID:    actor.ID,
			Status:     domain.QuestionStatusDraft,
			Difficulty: input.Difficulty,
			Body:       strings.TrimSpace(input.Body),
			ImageURLs:  input.ImageURLs,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("create question: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Question{}, err
	}

	s.log.InfoContext(ctx, "question created",
		slog.String("user_id", actor.ID.String()),
		slog.String("question_id", created.ID.String()),
		slog.String("paper_id", created.PaperID.String()),
	)

	return created, nil
}
