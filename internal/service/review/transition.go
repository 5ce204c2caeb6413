package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// Transition moves a question along one edge of the workflow on behalf of the
// authenticated principal.
//
// The question row is locked for the whole unit, so transitions of one
// question are totally ordered. Any failing step, including the external
// finalisation confirmation, rolls back every write.
func (s *Service) Transition(ctx context.Context, input TransitionInput) (domain.Question, error) {
	actor, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return domain.Question{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Question{}, err
	}

	var (
		before, after  domain.Question
		action         domain.TransitionAction
		falseRejection bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		before, err = s.questions.GetByIDForUpdate(txCtx, input.QuestionID)
		if err != nil {
			return fmt.Errorf("get question: %w", err)
		}

		action, err = domain.ResolveTransition(before.Status, input.Target)
		if err != nil {
			return err
		}
		if err := authorize(actor, action, before); err != nil {
			return err
		}

		reason := strings.TrimSpace(input.Reason)
		if action.RequiresReason() && reason == "" {
			return domain.NewValidationError("reason", "required")
		}

		after, falseRejection, err = s.apply(txCtx, actor, action, before, reason, trimOrNil(input.OwnerComment))
		return err
	})
	if err != nil {
		return domain.Question{}, err
	}

	s.log.InfoContext(ctx, "question transitioned",
		slog.String("question_id", after.ID.String()),
		slog.String("actor", actor.String()),
		slog.String("action", action.String()),
		slog.String("from", before.Status.String()),
		slog.String("to", after.Status.String()),
		slog.Bool("false_rejection", falseRejection),
	)

	return after, nil
}

func authorize(actor domain.Principal, action domain.TransitionAction, q domain.Question) error {
	if !actor.Is(action.RequiredRole()) {
		return fmt.Errorf("%s requires role %s: %w", action, action.RequiredRole(), domain.ErrForbidden)
	}
	if actor.Is(domain.PrincipalCreator) && actor != q.Owner() {
		return fmt.Errorf("question %s is owned by another creator: %w", q.ID, domain.ErrForbidden)
	}
	return nil
}

// apply performs every write of one transition. The caller holds the row lock.
func (s *Service) apply(
	ctx context.Context,
	actor domain.Principal,
	action domain.TransitionAction,
	q domain.Question,
	reason string,
	ownerComment *string,
) (domain.Question, bool, error) {
	upd := domain.StatusUpdate{
		Status:          q.Status,
		ReviewerID:      q.ReviewerID,
		ReviewerComment: q.ReviewerComment,
		OwnerComment:    q.OwnerComment,
	}
	falseRejection := false

	switch action {
	case domain.ActionSubmit:
		upd.Status = domain.QuestionStatusPending
		upd.OwnerComment = ownerComment

	case domain.ActionResubmit:
		upd.Status = domain.QuestionStatusPending
		upd.OwnerComment = ownerComment
		if ownerComment != nil && *ownerComment == domain.NoCorrectionsRequired {
			// A contested rejection does not count against the owner.
			if _, err := s.logs.UndoLast(ctx, q.Owner(), domain.LogKindQuestionRejected, q.ID); err != nil {
				return domain.Question{}, false, fmt.Errorf("undo owner rejection: %w", err)
			}
		}

	case domain.ActionAccept:
		var err error
		if falseRejection, err = s.applyApproval(ctx, s.earnings, actor, q); err != nil {
			return domain.Question{}, false, err
		}
		upd.Status = domain.QuestionStatusApproved
		upd.ReviewerID = &actor.ID
		upd.ReviewerComment = optional(reason)
		upd.OwnerComment = nil

	case domain.ActionDecline, domain.ActionDemote:
		if err := s.applyRejection(ctx, s.earnings, actor, q); err != nil {
			return domain.Question{}, false, err
		}
		upd.Status = domain.QuestionStatusRejected
		upd.ReviewerID = &actor.ID
		upd.ReviewerComment = &reason
		upd.OwnerComment = nil

	case domain.ActionFinalise:
		upd.Status = domain.QuestionStatusFinalised
	}

	updated, err := s.questions.UpdateStatus(ctx, q.ID, upd)
	if err != nil {
		return domain.Question{}, false, fmt.Errorf("update status: %w", err)
	}

	if delta := action.ApprovedDelta(); delta != 0 {
		if err := s.papers.AdjustApprovedCount(ctx, q.PaperID, delta); err != nil {
			return domain.Question{}, false, fmt.Errorf("adjust approved count: %w", err)
		}
	}

	// Confirmation runs after every local write of the unit.
	if action == domain.ActionFinalise {
		if err := s.confirm(ctx, updated); err != nil {
			return domain.Question{}, false, err
		}
	}

	return updated, falseRejection, nil
}

func (s *Service) confirm(ctx context.Context, q domain.Question) error {
	if s.confirmer == nil {
		return fmt.Errorf("finalisation confirmer not configured: %w", domain.ErrExternalDependency)
	}
	if err := s.confirmer.Confirm(ctx, q); err != nil {
		if errors.Is(err, domain.ErrExternalDependency) {
			return fmt.Errorf("confirm finalisation: %w", err)
		}
		return fmt.Errorf("confirm finalisation: %w: %w", domain.ErrExternalDependency, err)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
