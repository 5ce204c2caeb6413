package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// Payout pays part of a principal's balance out. Only admins may record
// payouts. Lifetime earnings are unaffected.
func (s *Service) Payout(ctx context.Context, input PayoutInput) (domain.LedgerAccount, error) {
	actor, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return domain.LedgerAccount{}, domain.ErrUnauthorized
	}
	if !actor.Is(domain.PrincipalAdmin) {
		return domain.LedgerAccount{}, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return domain.LedgerAccount{}, err
	}

	var account domain.LedgerAccount
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.ledger.GetAccountForUpdate(txCtx, input.Principal)
		if err != nil {
			return fmt.Errorf("lock account: %w", err)
		}
		if input.Amount.GreaterThan(current.Balance) {
			return domain.NewValidationError("amount",
				fmt.Sprintf("exceeds balance %s", current.Balance.StringFixed(2)))
		}

		debit := input.Amount.Neg()
		account, err = s.ledger.Apply(txCtx, input.Principal, decimal.Zero, debit)
		if err != nil {
			return fmt.Errorf("apply payout: %w", err)
		}

		description := "payout"
		if input.Note != "" {
			description = "payout: " + input.Note
		}
		err = s.ledger.AppendTransaction(txCtx, domain.LedgerTransaction{
			ID:          uuid.New(),
			Principal:   input.Principal,
			Amount:      debit,
			Kind:        domain.TxKindPayout,
			Description: description,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("append payout transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.LedgerAccount{}, err
	}

	s.log.InfoContext(ctx, "payout recorded",
		slog.String("admin_id", actor.ID.String()),
		slog.String("principal", input.Principal.String()),
		slog.String("amount", input.Amount.String()),
	)

	return account, nil
}
