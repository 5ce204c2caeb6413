package ledger

import (
	"context"
	"fmt"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// GetAccount returns the account of p. Principals other than p itself need
// the admin role.
func (s *Service) GetAccount(ctx context.Context, p domain.Principal) (domain.LedgerAccount, error) {
	if err := s.authorizeRead(ctx, p); err != nil {
		return domain.LedgerAccount{}, err
	}

	account, err := s.ledger.GetAccount(ctx, p)
	if err != nil {
		return domain.LedgerAccount{}, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

// TransactionPage is one page of a principal's transactions.
type TransactionPage struct {
	Items []domain.LedgerTransaction
	Total int
}

// ListTransactions returns p's transactions, newest first.
func (s *Service) ListTransactions(ctx context.Context, p domain.Principal, input ListTransactionsInput) (TransactionPage, error) {
	if err := s.authorizeRead(ctx, p); err != nil {
		return TransactionPage{}, err
	}
	if err := input.Validate(); err != nil {
		return TransactionPage{}, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}

	items, total, err := s.ledger.ListTransactions(ctx, p, limit, input.Offset)
	if err != nil {
		return TransactionPage{}, fmt.Errorf("list transactions: %w", err)
	}
	return TransactionPage{Items: items, Total: total}, nil
}

func (s *Service) authorizeRead(ctx context.Context, p domain.Principal) error {
	actor, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if actor != p && !actor.Is(domain.PrincipalAdmin) {
		return domain.ErrForbidden
	}
	return nil
}
