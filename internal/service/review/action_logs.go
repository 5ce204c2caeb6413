package review

import (
	"context"
	"fmt"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// ListActionLogs returns the principal's log entries of one kind, each
// restricted to the timestamps inside the window. Principals may read their
// own logs; admins may read anyone's.
func (s *Service) ListActionLogs(ctx context.Context, input ListActionLogsInput) ([]domain.ActionLogEntry, error) {
	actor, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if actor != input.Principal && !actor.Is(domain.PrincipalAdmin) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.logs.ListByPeriod(ctx, input.Principal, input.Kind, input.From.UTC(), input.To.UTC())
	if err != nil {
		return nil, fmt.Errorf("list action logs: %w", err)
	}
	return entries, nil
}
