package review

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// BulkApprove approves every PENDING question among input.QuestionIDs in one
// unit. IDs that are unknown or not PENDING are skipped. The paper counters
// get one aggregated update per paper.
//
// With an idempotency key and a configured store, a repeated call with the
// same key and the same IDs returns the first result without touching the
// data store; the same key with different IDs fails with ErrConflict.
//
// The key is not reserved before the unit runs. Two concurrent first calls
// with one key both miss the lookup: the second waits on the question row
// locks, finds nothing PENDING and returns an empty result instead of a
// replay. Nothing is applied twice, and the store keeps the first result, so
// later retries replay it.
//
// Ledger postings of the batch are applied in account order after every
// question has been handled.
func (s *Service) BulkApprove(ctx context.Context, input BulkApproveInput) (BulkApproveResult, error) {
	actor, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return BulkApproveResult{}, domain.ErrUnauthorized
	}
	if !actor.Is(domain.PrincipalReviewer) {
		return BulkApproveResult{}, domain.ErrForbidden
	}

	if err := input.Validate(s.opts.BulkMaxSize); err != nil {
		return BulkApproveResult{}, err
	}

	ids := dedupe(input.QuestionIDs)

	var idemKey, reqHash string
	if input.IdempotencyKey != "" && s.idempotency != nil {
		idemKey = fmt.Sprintf("bulk-approve:%s:%s", actor.ID, input.IdempotencyKey)
		reqHash = hashIDs(ids)

		cached, replay, err := s.lookup(ctx, idemKey, reqHash)
		if err != nil {
			return BulkApproveResult{}, err
		}
		if replay {
			return cached, nil
		}
	}

	result := BulkApproveResult{QuestionIDs: []uuid.UUID{}}
	falseRejections := 0
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		pending, err := s.questions.LockPending(txCtx, ids)
		if err != nil {
			return fmt.Errorf("lock pending questions: %w", err)
		}
		if len(pending) == 0 {
			return nil
		}

		approved := make([]uuid.UUID, len(pending))
		perPaper := make(map[uuid.UUID]int)
		for i, q := range pending {
			approved[i] = q.ID
			perPaper[q.PaperID]++
		}

		postings := &postingBatch{}
		for _, q := range pending {
			corrected, err := s.applyApproval(txCtx, postings, actor, q)
			if err != nil {
				return fmt.Errorf("question %s: %w", q.ID, err)
			}
			if corrected {
				falseRejections++
			}
		}
		if err := postings.flush(txCtx, s.earnings); err != nil {
			return err
		}

		n, err := s.questions.ApproveMany(txCtx, approved, actor.ID)
		if err != nil {
			return fmt.Errorf("approve questions: %w", err)
		}
		if n != len(approved) {
			return fmt.Errorf("approved %d of %d locked questions: %w", n, len(approved), domain.ErrConflict)
		}

		papers := make([]uuid.UUID, 0, len(perPaper))
		for id := range perPaper {
			papers = append(papers, id)
		}
		slices.SortFunc(papers, compareUUID)
		for _, paperID := range papers {
			if err := s.papers.AdjustApprovedCount(txCtx, paperID, perPaper[paperID]); err != nil {
				return fmt.Errorf("adjust approved count: %w", err)
			}
		}

		result.Transitioned = len(approved)
		result.QuestionIDs = approved
		return nil
	})
	if err != nil {
		return BulkApproveResult{}, err
	}

	s.log.InfoContext(ctx, "bulk approve committed",
		slog.String("reviewer_id", actor.ID.String()),
		slog.Int("requested", len(ids)),
		slog.Int("transitioned", result.Transitioned),
		slog.Int("false_rejections", falseRejections),
	)

	if idemKey != "" {
		s.remember(ctx, idemKey, reqHash, result)
	}

	return result, nil
}

// lookup returns a cached result for key. A store failure is logged and
// treated as a miss.
func (s *Service) lookup(ctx context.Context, key, reqHash string) (BulkApproveResult, bool, error) {
	rec, found, err := s.idempotency.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "idempotency lookup failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return BulkApproveResult{}, false, nil
	}
	if !found {
		return BulkApproveResult{}, false, nil
	}
	if rec.RequestHash != reqHash {
		return BulkApproveResult{}, false, fmt.Errorf("idempotency key reused with a different request: %w", domain.ErrConflict)
	}

	var cached BulkApproveResult
	if err := json.Unmarshal(rec.Payload, &cached); err != nil {
		s.log.WarnContext(ctx, "idempotency record unreadable",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return BulkApproveResult{}, false, nil
	}
	cached.Replayed = true
	return cached, true, nil
}

func (s *Service) remember(ctx context.Context, key, reqHash string, result BulkApproveResult) {
	payload, err := json.Marshal(result)
	if err == nil {
		err = s.idempotency.Save(ctx, key, domain.IdempotencyRecord{RequestHash: reqHash, Payload: payload})
	}
	if err != nil {
		s.log.WarnContext(ctx, "idempotency save failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// dedupe returns the distinct IDs in ascending order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	out := slices.Clone(ids)
	slices.SortFunc(out, compareUUID)
	return slices.Compact(out)
}

func compareUUID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// hashIDs fingerprints a sorted ID set.
func hashIDs(ids []uuid.UUID) string {
	h := sha256.New()
	for _, id := range ids {
		h.Write(id[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
