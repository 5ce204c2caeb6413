package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// Credit adds the amount to the principal's lifetime earnings and balance.
// A zero amount is a no-op. Runs inside the caller's transaction when one is
// present.
func (s *Service) Credit(ctx context.Context, p Posting) error {
	return s.post(ctx, p, domain.TxKindCredit)
}

// Debit subtracts the amount from the principal's lifetime earnings and
// balance. The balance may go negative.
func (s *Service) Debit(ctx context.Context, p Posting) error {
	return s.post(ctx, p, domain.TxKindDebit)
}

func (s *Service) post(ctx context.Context, p Posting, kind domain.TxKind) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Amount.IsZero() {
		return nil
	}

	signed := p.Amount
	if kind == domain.TxKindDebit {
		signed = signed.Neg()
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ledger.Apply(txCtx, p.Principal, signed, signed); err != nil {
			return fmt.Errorf("apply %s: %w", kind, err)
		}

		err := s.ledger.AppendTransaction(txCtx, domain.LedgerTransaction{
			ID:          uuid.New(),
			Principal:   p.Principal,
			Amount:      signed,
			Kind:        kind,
			Description: p.Description,
			QuestionID:  p.QuestionID,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("append %s transaction: %w", kind, err)
		}
		return nil
	})
}
