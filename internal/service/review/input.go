package review

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

const (
	MaxCommentLength        = 2000
	MaxIdempotencyKeyLength = 200
	MaxLogWindow            = 366 * 24 * time.Hour
)

// TransitionInput holds the parameters for moving a question to a new status.
type TransitionInput struct {
	QuestionID   uuid.UUID
	Target       domain.QuestionStatus
	Reason       string  // reviewer comment; required for rejections
	OwnerComment *string // owner comment on (re)submission
}

// Validate checks all fields and collects all errors.
func (i TransitionInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if !i.Target.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target", Message: fmt.Sprintf("unknown status %q", i.Target)})
	}
	if len(i.Reason) > MaxCommentLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: fmt.Sprintf("max %d characters", MaxCommentLength)})
	}
	if i.OwnerComment != nil && len(*i.OwnerComment) > MaxCommentLength {
		errs = append(errs, domain.FieldError{Field: "owner_comment", Message: fmt.Sprintf("max %d characters", MaxCommentLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BulkApproveInput holds the parameters for approving many questions at once.
type BulkApproveInput struct {
	QuestionIDs    []uuid.UUID
	IdempotencyKey string
}

// Validate checks all fields and collects all errors. maxSize bounds the
// number of IDs.
func (i BulkApproveInput) Validate(maxSize int) error {
	var errs []domain.FieldError

	if len(i.QuestionIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "question_ids", Message: "required"})
	}
	if len(i.QuestionIDs) > maxSize {
		errs = append(errs, domain.FieldError{Field: "question_ids", Message: fmt.Sprintf("max %d items", maxSize)})
	}
	for idx, id := range i.QuestionIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("question_ids[%d]", idx), Message: "required"})
		}
	}
	if len(i.IdempotencyKey) > MaxIdempotencyKeyLength {
		errs = append(errs, domain.FieldError{Field: "idempotency_key", Message: fmt.Sprintf("max %d characters", MaxIdempotencyKeyLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListActionLogsInput selects one principal's log entries of one kind within
// the half-open window [From, To).
type ListActionLogsInput struct {
	Principal domain.Principal
	Kind      domain.LogKind
	From      time.Time
	To        time.Time
}

// Validate checks all fields and collects all errors.
func (i ListActionLogsInput) Validate() error {
	var errs []domain.FieldError

	if i.Principal.IsZero() || !i.Principal.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "principal", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: fmt.Sprintf("unknown log kind %q", i.Kind)})
	}
	if i.From.IsZero() || i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "period", Message: "from and to are required"})
	} else if !i.From.Before(i.To) {
		errs = append(errs, domain.FieldError{Field: "period", Message: "from must be before to"})
	} else if i.To.Sub(i.From) > MaxLogWindow {
		errs = append(errs, domain.FieldError{Field: "period", Message: "max one year"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
