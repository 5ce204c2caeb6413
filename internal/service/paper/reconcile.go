package paper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ReconcileResult reports approved-counter drift found by a recount.
type ReconcileResult struct {
	Drifted  int
	Repaired int
}

// ReconcileApprovedCounts recounts APPROVED questions per paper and compares
// the result with the stored counters.
//
// The scan itself takes no locks. With repair set, each drifted paper is fixed
// in its own transaction: the paper row is locked, that paper is recounted,
// and the counter is written only if it still differs. Transitions update the
// question before they touch the paper row, so a recount taken under the row
// lock cannot miss an increment that commits afterwards.
func (s *Service) ReconcileApprovedCounts(ctx context.Context, repair bool) (ReconcileResult, error) {
	drift, err := s.papers.FindCountDrift(ctx)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("find drift: %w", err)
	}

	result := ReconcileResult{Drifted: len(drift)}
	for _, d := range drift {
		s.log.WarnContext(ctx, "approved count drift",
			slog.String("paper_id", d.PaperID.String()),
			slog.Int("stored", d.Stored),
			slog.Int("recounted", d.Recounted),
		)
		if !repair {
			continue
		}

		written, err := s.repairCount(ctx, d.PaperID)
		if err != nil {
			return result, fmt.Errorf("repair paper %s: %w", d.PaperID, err)
		}
		if written {
			result.Repaired++
		}
	}

	s.log.InfoContext(ctx, "approved counts reconciled",
		slog.Int("drifted", result.Drifted),
		slog.Int("repaired", result.Repaired),
	)

	return result, nil
}

// repairCount reports false when the drift had already cleared by the time
// the row lock was taken.
func (s *Service) repairCount(ctx context.Context, paperID uuid.UUID) (bool, error) {
	var written bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.papers.GetByIDForUpdate(txCtx, paperID)
		if err != nil {
			return fmt.Errorf("lock paper: %w", err)
		}

		n, err := s.papers.CountApproved(txCtx, paperID)
		if err != nil {
			return fmt.Errorf("recount: %w", err)
		}
		if n == p.ApprovedCount {
			return nil
		}

		if err := s.papers.SetApprovedCount(txCtx, paperID, n); err != nil {
			return err
		}
		written = true
		return nil
	})
	return written, err
}
