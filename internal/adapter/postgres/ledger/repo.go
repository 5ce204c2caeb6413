// Package ledger implements earnings accounts and their append-only
// transaction history using PostgreSQL.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/qreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ledger repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// applySQL creates the account on first reference and adds the deltas atomically.
const applySQL = `
INSERT INTO ledger_accounts (principal_kind, principal_id, lifetime_earnings, balance, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (principal_kind, principal_id) DO UPDATE SET
    lifetime_earnings = ledger_accounts.lifetime_earnings + EXCLUDED.lifetime_earnings,
    balance           = ledger_accounts.balance + EXCLUDED.balance,
    updated_at        = EXCLUDED.updated_at
RETURNING lifetime_earnings, balance, updated_at`

var accountColumns = []string{"lifetime_earnings", "balance", "updated_at"}

var transactionColumns = []string{
	"id", "principal_kind", "principal_id", "amount", "kind", "description", "question_id", "created_at",
}

type accountRow struct {
	LifetimeEarnings decimal.Decimal `db:"lifetime_earnings"`
	Balance          decimal.Decimal `db:"balance"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func (r accountRow) toDomain(p domain.Principal) domain.LedgerAccount {
	return domain.LedgerAccount{
		Principal:        p,
		LifetimeEarnings: r.LifetimeEarnings,
		Balance:          r.Balance,
		UpdatedAt:        r.UpdatedAt,
	}
}

type transactionRow struct {
	ID            uuid.UUID       `db:"id"`
	PrincipalKind string          `db:"principal_kind"`
	PrincipalID   uuid.UUID       `db:"principal_id"`
	Amount        decimal.Decimal `db:"amount"`
	Kind          string          `db:"kind"`
	Description   string          `db:"description"`
	QuestionID    *uuid.UUID      `db:"question_id"`
	CreatedAt     time.Time       `db:"created_at"`
}

func (r transactionRow) toDomain() domain.LedgerTransaction {
	return domain.LedgerTransaction{
		ID:          r.ID,
		Principal:   domain.Principal{Kind: domain.PrincipalKind(r.PrincipalKind), ID: r.PrincipalID},
		Amount:      r.Amount,
		Kind:        domain.TxKind(r.Kind),
		Description: r.Description,
		QuestionID:  r.QuestionID,
		CreatedAt:   r.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Apply adds the deltas to the principal's account, creating it when absent,
// and returns the resulting account.
func (r *Repo) Apply(ctx context.Context, p domain.Principal, lifetimeDelta, balanceDelta decimal.Decimal) (domain.LedgerAccount, error) {
	var row accountRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, applySQL,
		string(p.Kind), p.ID, lifetimeDelta, balanceDelta)
	if err != nil {
		return domain.LedgerAccount{}, postgres.MapError(err, "ledger_account", p)
	}

	return row.toDomain(p), nil
}

// AppendTransaction inserts one transaction record. The account must exist.
func (r *Repo) AppendTransaction(ctx context.Context, tx domain.LedgerTransaction) error {
	sql, args, err := postgres.Builder().
		Insert("ledger_transactions").
		Columns(transactionColumns...).
		Values(tx.ID, string(tx.Principal.Kind), tx.Principal.ID, tx.Amount, string(tx.Kind),
			tx.Description, tx.QuestionID, tx.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert ledger_transaction: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "ledger_transaction", tx.ID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetAccount returns the principal's account. Unknown principals get a
// zero-balance account instead of an error.
func (r *Repo) GetAccount(ctx context.Context, p domain.Principal) (domain.LedgerAccount, error) {
	return r.getAccount(ctx, p, false)
}

// GetAccountForUpdate is GetAccount with a row lock. Must be called inside a
// transaction.
func (r *Repo) GetAccountForUpdate(ctx context.Context, p domain.Principal) (domain.LedgerAccount, error) {
	return r.getAccount(ctx, p, true)
}

func (r *Repo) getAccount(ctx context.Context, p domain.Principal, lock bool) (domain.LedgerAccount, error) {
	b := postgres.Builder().
		Select(accountColumns...).
		From("ledger_accounts").
		Where("principal_kind = ? AND principal_id = ?", string(p.Kind), p.ID)
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return domain.LedgerAccount{}, fmt.Errorf("build select ledger_account: %w", err)
	}

	var row accountRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.EmptyAccount(p), nil
		}
		return domain.LedgerAccount{}, postgres.MapError(err, "ledger_account", p)
	}

	return row.toDomain(p), nil
}

// ListTransactions returns the principal's transactions, newest first, and the
// total number of transactions.
func (r *Repo) ListTransactions(ctx context.Context, p domain.Principal, limit, offset int) ([]domain.LedgerTransaction, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From("ledger_transactions").
		Where("principal_kind = ? AND principal_id = ?", string(p.Kind), p.ID).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count ledger_transactions: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ledger_transactions: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select(transactionColumns...).
		From("ledger_transactions").
		Where("principal_kind = ? AND principal_id = ?", string(p.Kind), p.ID).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build select ledger_transactions: %w", err)
	}

	var rows []transactionRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list ledger_transactions: %w", err)
	}

	txs := make([]domain.LedgerTransaction, len(rows))
	for i, row := range rows {
		txs[i] = row.toDomain()
	}
	return txs, total, nil
}
