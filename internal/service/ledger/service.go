// Package ledger keeps the per-principal earnings accounts. Every movement
// updates the account totals and appends a transaction row in the same unit.
package ledger

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

type ledgerRepo interface {
	Apply(ctx context.Context, p domain.Principal, lifetimeDelta, balanceDelta decimal.Decimal) (domain.LedgerAccount, error)
	AppendTransaction(ctx context.Context, tx domain.LedgerTransaction) error
	GetAccount(ctx context.Context, p domain.Principal) (domain.LedgerAccount, error)
	GetAccountForUpdate(ctx context.Context, p domain.Principal) (domain.LedgerAccount, error)
	ListTransactions(ctx context.Context, p domain.Principal, limit, offset int) ([]domain.LedgerTransaction, int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Service provides earnings ledger operations.
type Service struct {
	ledger ledgerRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new ledger service.
func NewService(log *slog.Logger, ledger ledgerRepo, tx txManager) *Service {
	return &Service{
		ledger: ledger,
		tx:     tx,
		log:    log.With("service", "ledger"),
	}
}
