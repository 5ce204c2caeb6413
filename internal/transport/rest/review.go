package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
	"github.com/heartmarshall/qreview-backend/internal/service/review"
)

// IdempotencyKeyHeader may carry the bulk approval key instead of the body.
const IdempotencyKeyHeader = "Idempotency-Key"

// ReplayedHeader is set on bulk approval responses served from the
// idempotency store.
const ReplayedHeader = "Idempotent-Replayed"

type reviewService interface {
	Transition(ctx context.Context, input review.TransitionInput) (domain.Question, error)
	BulkApprove(ctx context.Context, input review.BulkApproveInput) (review.BulkApproveResult, error)
	ListActionLogs(ctx context.Context, input review.ListActionLogsInput) ([]domain.ActionLogEntry, error)
}

// ReviewHandler serves status transitions and action log queries.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type transitionRequest struct {
	Target       string  `json:"target"`
	Reason       string  `json:"reason"`
	OwnerComment *string `json:"owner_comment"`
}

// Transition handles POST /questions/{questionID}/transitions.
func (h *ReviewHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "questionID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req transitionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q, err := h.svc.Transition(r.Context(), review.TransitionInput{
		QuestionID:   id,
		Target:       domain.QuestionStatus(req.Target),
		Reason:       req.Reason,
		OwnerComment: req.OwnerComment,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(q))
}

type bulkApproveRequest struct {
	QuestionIDs    []uuid.UUID `json:"question_ids"`
	IdempotencyKey string      `json:"idempotency_key"`
}

// BulkApprove handles POST /questions/bulk-approve. The idempotency key may be
// sent in the body or the Idempotency-Key header; the body wins.
func (h *ReviewHandler) BulkApprove(w http.ResponseWriter, r *http.Request) {
	var req bulkApproveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = r.Header.Get(IdempotencyKeyHeader)
	}

	res, err := h.svc.BulkApprove(r.Context(), review.BulkApproveInput{
		QuestionIDs:    req.QuestionIDs,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if res.Replayed {
		w.Header().Set(ReplayedHeader, "true")
	}
	if res.QuestionIDs == nil {
		res.QuestionIDs = []uuid.UUID{}
	}
	writeJSON(w, http.StatusOK, res)
}

// ListActionLogs handles GET /action-logs?kind=&from=&to=[&principal_kind=&principal_id=].
// Without a principal in the query the caller's own log is listed.
func (h *ReviewHandler) ListActionLogs(w http.ResponseWriter, r *http.Request) {
	input, err := parseActionLogQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.ListActionLogs(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toActionLogResponses(entries))
}

func parseActionLogQuery(r *http.Request) (review.ListActionLogsInput, error) {
	q := r.URL.Query()
	var errs []domain.FieldError

	input := review.ListActionLogsInput{Kind: domain.LogKind(q.Get("kind"))}

	if kind, id := q.Get("principal_kind"), q.Get("principal_id"); kind != "" || id != "" {
		pid, err := uuid.Parse(id)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "principal_id", Message: "must be a UUID"})
		}
		input.Principal = domain.Principal{Kind: domain.PrincipalKind(kind), ID: pid}
	} else if actor, ok := domain.PrincipalFromCtx(r.Context()); ok {
		input.Principal = actor
	} else {
		return input, domain.ErrUnauthorized
	}

	for _, f := range []struct {
		name string
		dst  *time.Time
	}{{"from", &input.From}, {"to", &input.To}} {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "must be RFC 3339"})
			continue
		}
		*f.dst = t
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}
