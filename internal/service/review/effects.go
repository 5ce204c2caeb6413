package review

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/qreview-backend/internal/domain"
	"github.com/heartmarshall/qreview-backend/internal/service/ledger"
)

// applyApproval records the logs and ledger movements of one question moving
// into APPROVED. q is the question as it was before the status write.
// It reports whether a false rejection was corrected.
func (s *Service) applyApproval(ctx context.Context, post earnings, reviewer domain.Principal, q domain.Question) (bool, error) {
	owner := q.Owner()
	falseRejection := false

	if prior, ok := q.PriorReviewer(); ok && q.ContestsRejection() {
		if _, err := s.logs.Record(ctx, prior, domain.LogKindFalseRejection, q.ID); err != nil {
			return false, fmt.Errorf("record false rejection: %w", err)
		}
		err := post.Credit(ctx, ledger.Posting{
			Principal:   owner,
			Amount:      s.opts.Rates.FalseRejectionCompensation,
			Description: "false rejection compensation",
			QuestionID:  &q.ID,
		})
		if err != nil {
			return false, fmt.Errorf("credit compensation: %w", err)
		}
		falseRejection = true
	}

	if _, err := s.logs.Record(ctx, reviewer, domain.LogKindAccepted, q.ID); err != nil {
		return false, fmt.Errorf("record accepted: %w", err)
	}
	if _, err := s.logs.Record(ctx, owner, domain.LogKindQuestionApproved, q.ID); err != nil {
		return false, fmt.Errorf("record question approved: %w", err)
	}

	err := post.Credit(ctx, ledger.Posting{
		Principal:   owner,
		Amount:      s.opts.Rates.ApprovalAmount(q.Difficulty),
		Description: "question approved",
		QuestionID:  &q.ID,
	})
	if err != nil {
		return false, fmt.Errorf("credit approval: %w", err)
	}
	if err := s.creditReviewFee(ctx, post, reviewer, q); err != nil {
		return false, err
	}

	return falseRejection, nil
}

// applyRejection records the logs and ledger movements of one question moving
// into REJECTED.
func (s *Service) applyRejection(ctx context.Context, post earnings, reviewer domain.Principal, q domain.Question) error {
	owner := q.Owner()

	if _, err := s.logs.Record(ctx, reviewer, domain.LogKindRejected, q.ID); err != nil {
		return fmt.Errorf("record rejected: %w", err)
	}
	if _, err := s.logs.Record(ctx, owner, domain.LogKindQuestionRejected, q.ID); err != nil {
		return fmt.Errorf("record question rejected: %w", err)
	}

	err := post.Debit(ctx, ledger.Posting{
		Principal:   owner,
		Amount:      s.opts.Rates.RejectionPenalty,
		Description: "question rejected",
		QuestionID:  &q.ID,
	})
	if err != nil {
		return fmt.Errorf("debit rejection penalty: %w", err)
	}
	return s.creditReviewFee(ctx, post, reviewer, q)
}

func (s *Service) creditReviewFee(ctx context.Context, post earnings, reviewer domain.Principal, q domain.Question) error {
	err := post.Credit(ctx, ledger.Posting{
		Principal:   reviewer,
		Amount:      s.opts.Rates.ReviewFee,
		Description: "review fee",
		QuestionID:  &q.ID,
	})
	if err != nil {
		return fmt.Errorf("credit review fee: %w", err)
	}
	return nil
}

// postingBatch buffers ledger postings so a multi-question unit can apply them
// in one global account order. Accounts are row-locked on first touch; two
// batches that lock in the same order cannot deadlock each other.
type postingBatch struct {
	entries []batchEntry
}

type batchEntry struct {
	posting ledger.Posting
	debit   bool
}

func (b *postingBatch) Credit(_ context.Context, p ledger.Posting) error {
	b.entries = append(b.entries, batchEntry{posting: p})
	return nil
}

func (b *postingBatch) Debit(_ context.Context, p ledger.Posting) error {
	b.entries = append(b.entries, batchEntry{posting: p, debit: true})
	return nil
}

// flush applies the buffered postings ordered by principal kind, then id.
// Postings to the same account keep their recorded order. CREATOR sorts
// before REVIEWER, the same order a single transition posts in.
func (b *postingBatch) flush(ctx context.Context, to earnings) error {
	slices.SortStableFunc(b.entries, func(x, y batchEntry) int {
		return comparePrincipal(x.posting.Principal, y.posting.Principal)
	})
	for _, e := range b.entries {
		var err error
		if e.debit {
			err = to.Debit(ctx, e.posting)
		} else {
			err = to.Credit(ctx, e.posting)
		}
		if err != nil {
			return fmt.Errorf("post %s to %s %s: %w", e.posting.Description, e.posting.Principal.Kind, e.posting.Principal.ID, err)
		}
	}
	return nil
}

func comparePrincipal(a, b domain.Principal) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	return compareUUID(a.ID, b.ID)
}
