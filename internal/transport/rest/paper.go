package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
	"github.com/heartmarshall/qreview-backend/internal/service/paper"
)

type paperService interface {
	CreatePaper(ctx context.Context, input paper.CreatePaperInput) (domain.Paper, error)
	GetPaper(ctx context.Context, paperID uuid.UUID) (domain.Paper, error)
	Claim(ctx context.Context, paperID uuid.UUID) (domain.Paper, error)
}

// PaperHandler serves paper endpoints.
type PaperHandler struct {
	svc paperService
	log *slog.Logger
}

// NewPaperHandler creates a PaperHandler.
func NewPaperHandler(svc paperService, logger *slog.Logger) *PaperHandler {
	return &PaperHandler{svc: svc, log: logger.With("handler", "paper")}
}

type createPaperRequest struct {
	Title     string `json:"title"`
	SourceURL string `json:"source_url"`
	Capacity  int    `json:"capacity"`
}

// Create handles POST /papers.
func (h *PaperHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPaperRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.CreatePaper(r.Context(), paper.CreatePaperInput{
		Title:     req.Title,
		SourceURL: req.SourceURL,
		Capacity:  req.Capacity,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPaperResponse(p))
}

// Get handles GET /papers/{paperID}.
func (h *PaperHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "paperID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetPaper(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPaperResponse(p))
}

// Claim handles POST /papers/{paperID}/claim.
func (h *PaperHandler) Claim(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "paperID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.Claim(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPaperResponse(p))
}
