package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/qreview-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Paper    *PaperHandler
	Question *QuestionHandler
	Review   *ReviewHandler
	Ledger   *LedgerHandler
	Asset    *AssetHandler
}

// NewRouter mounts all routes. Probes skip api, which carries authentication
// and rate limiting in that order.
func NewRouter(h Handlers, logger *slog.Logger, api ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Group(func(r chi.Router) {
		r.Use(api...)

		r.Route("/papers", func(r chi.Router) {
			r.Post("/", h.Paper.Create)
			r.Get("/{paperID}", h.Paper.Get)
			r.Post("/{paperID}/claim", h.Paper.Claim)
		})

		r.Route("/questions", func(r chi.Router) {
			r.Post("/", h.Question.Create)
			r.Post("/bulk-approve", h.Review.BulkApprove)
			r.Get("/{questionID}", h.Question.Get)
			r.Patch("/{questionID}", h.Question.Update)
			r.Delete("/{questionID}", h.Question.Delete)
			r.Post("/{questionID}/transitions", h.Review.Transition)
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Get("/me", h.Ledger.Me)
			r.Get("/me/transactions", h.Ledger.MyTransactions)
			r.Get("/{kind}/{userID}", h.Ledger.Get)
			r.Post("/{kind}/{userID}/payout", h.Ledger.Payout)
		})

		r.Get("/action-logs", h.Review.ListActionLogs)
		r.Post("/assets", h.Asset.Upload)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}
