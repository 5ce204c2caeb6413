package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerAccount is the running earnings balance of a principal.
type LedgerAccount struct {
	Principal        Principal
	LifetimeEarnings decimal.Decimal
	Balance          decimal.Decimal
	UpdatedAt        time.Time
}

// EmptyAccount returns the zero-balance account every principal starts with.
func EmptyAccount(p Principal) LedgerAccount {
	return LedgerAccount{
		Principal:        p,
		LifetimeEarnings: decimal.Zero,
		Balance:          decimal.Zero,
	}
}

// LedgerTransaction is one append-only movement on an account. Amount is signed:
// credits are positive, debits and payouts negative.
type LedgerTransaction struct {
	ID          uuid.UUID
	Principal   Principal
	Amount      decimal.Decimal
	Kind        TxKind
	Description string
	QuestionID  *uuid.UUID
	CreatedAt   time.Time
}

// PayoutRates holds the fixed amounts applied by review transitions.
type PayoutRates struct {
	Approval                   map[Difficulty]decimal.Decimal
	ReviewFee                  decimal.Decimal
	RejectionPenalty           decimal.Decimal
	FalseRejectionCompensation decimal.Decimal
}

// ApprovalAmount returns the owner credit for approving a question of the given tier.
// Unknown tiers earn nothing.
func (r PayoutRates) ApprovalAmount(d Difficulty) decimal.Decimal {
	if amt, ok := r.Approval[d]; ok {
		return amt
	}
	return decimal.Zero
}
