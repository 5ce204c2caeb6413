package review

import "github.com/google/uuid"

// BulkApproveResult reports the outcome of a bulk approval. Replayed is set
// when the result was served from the idempotency store.
type BulkApproveResult struct {
	Transitioned int         `json:"transitioned"`
	QuestionIDs  []uuid.UUID `json:"question_ids"`
	Replayed     bool        `json:"-"`
}
