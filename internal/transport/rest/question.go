package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
	"github.com/heartmarshall/qreview-backend/internal/service/question"
)

type questionService interface {
	CreateQuestion(ctx context.Context, input question.CreateQuestionInput) (domain.Question, error)
	GetQuestion(ctx context.Context, questionID uuid.UUID) (domain.Question, error)
	UpdateDraft(ctx context.Context, input question.UpdateDraftInput) (domain.Question, error)
	DeleteQuestion(ctx context.Context, questionID uuid.UUID) error
}

// QuestionHandler serves question content endpoints. Status changes go
// through ReviewHandler.
type QuestionHandler struct {
	svc questionService
	log *slog.Logger
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(svc questionService, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{svc: svc, log: logger.With("handler", "question")}
}

type createQuestionRequest struct {
	PaperID    uuid.UUID `json:"paper_id"`
	Body       string    `json:"body"`
	Difficulty int       `json:"difficulty"`
	ImageURLs  []string  `json:"image_urls"`
}

type updateQuestionRequest struct {
	Body       *string  `json:"body"`
	Difficulty *int     `json:"difficulty"`
	ImageURLs  []string `json:"image_urls"`
}

// Create handles POST /questions.
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q, err := h.svc.CreateQuestion(r.Context(), question.CreateQuestionInput{
		PaperID:    req.PaperID,
		Body:       req.Body,
		Difficulty: domain.Difficulty(req.Difficulty),
		ImageURLs:  req.ImageURLs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQuestionResponse(q))
}

// Get handles GET /questions/{questionID}.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "questionID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q, err := h.svc.GetQuestion(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(q))
}

// Update handles PATCH /questions/{questionID}. Absent fields are kept; an
// empty image_urls array clears the images.
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "questionID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateQuestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := question.UpdateDraftInput{
		QuestionID: id,
		Body:       req.Body,
		ImageURLs:  req.ImageURLs,
	}
	if req.Difficulty != nil {
		d := domain.Difficulty(*req.Difficulty)
		input.Difficulty = &d
	}

	q, err := h.svc.UpdateDraft(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(q))
}

// Delete handles DELETE /questions/{questionID}.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "questionID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
