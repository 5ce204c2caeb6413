package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// Posting describes one credit or debit. Amount is always given as a
// non-negative magnitude; the direction comes from the operation.
type Posting struct {
	Principal   domain.Principal
	Amount      decimal.Decimal
	Description string
	QuestionID  *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (p Posting) Validate() error {
	var errs []domain.FieldError

	if p.Principal.IsZero() || !p.Principal.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "principal", Message: "required"})
	}
	if p.Amount.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must not be negative"})
	}
	if len(p.Description) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PayoutInput holds the parameters for paying out part of a balance.
type PayoutInput struct {
	Principal domain.Principal
	Amount    decimal.Decimal
	Note      string
}

// Validate checks all fields and collects all errors.
func (i PayoutInput) Validate() error {
	var errs []domain.FieldError

	if i.Principal.IsZero() || !i.Principal.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "principal", Message: "required"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if len(i.Note) > 500 {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTransactionsInput holds paging parameters for ListTransactions.
type ListTransactionsInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListTransactionsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
