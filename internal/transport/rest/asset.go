package rest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

type assetUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
}

// AssetHandler accepts question images and returns their reference URL.
type AssetHandler struct {
	store    assetUploader
	maxBytes int64
	log      *slog.Logger
}

// NewAssetHandler creates an AssetHandler. A nil store disables uploads.
func NewAssetHandler(store assetUploader, maxBytes int64, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{store: store, maxBytes: maxBytes, log: logger.With("handler", "asset")}
}

type uploadResponse struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Upload handles POST /assets with a multipart "file" part.
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	actor, ok := domain.PrincipalFromCtx(r.Context())
	if !ok {
		handleError(w, r, h.log, domain.ErrUnauthorized)
		return
	}
	if !actor.Is(domain.PrincipalCreator) && !actor.Is(domain.PrincipalAdmin) {
		handleError(w, r, h.log, domain.ErrForbidden)
		return
	}
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "ASSETS_DISABLED", "asset storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "TOO_LARGE", "file too large")
			return
		}
		handleError(w, r, h.log, domain.NewValidationError("file", "multipart file part required"))
		return
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		handleError(w, r, h.log, domain.NewValidationError("file", "unreadable"))
		return
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !allowedImageTypes[contentType] {
		handleError(w, r, h.log, domain.NewValidationError("file", "must be a png, jpeg, gif or webp image"))
		return
	}

	url, err := h.store.Upload(r.Context(), header.Filename, io.MultiReader(bytes.NewReader(head), file), header.Size, contentType)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "asset uploaded",
		slog.String("principal_id", actor.ID.String()),
		slog.String("content_type", contentType),
		slog.Int64("size", header.Size),
	)
	writeJSON(w, http.StatusCreated, uploadResponse{URL: url, ContentType: contentType, Size: header.Size})
}
