package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/qreview-backend/internal/domain"
	"github.com/heartmarshall/qreview-backend/internal/service/ledger"
)

type ledgerService interface {
	GetAccount(ctx context.Context, p domain.Principal) (domain.LedgerAccount, error)
	ListTransactions(ctx context.Context, p domain.Principal, input ledger.ListTransactionsInput) (ledger.TransactionPage, error)
	Payout(ctx context.Context, input ledger.PayoutInput) (domain.LedgerAccount, error)
}

// LedgerHandler serves earnings endpoints.
type LedgerHandler struct {
	svc ledgerService
	log *slog.Logger
}

// NewLedgerHandler creates a LedgerHandler.
func NewLedgerHandler(svc ledgerService, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{svc: svc, log: logger.With("handler", "ledger")}
}

// Me handles GET /ledger/me.
func (h *LedgerHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := domain.PrincipalFromCtx(r.Context())
	if !ok {
		handleError(w, r, h.log, domain.ErrUnauthorized)
		return
	}
	h.writeAccount(w, r, actor)
}

// Get handles GET /ledger/{kind}/{userID}.
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := pathPrincipal(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeAccount(w, r, p)
}

func (h *LedgerHandler) writeAccount(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	account, err := h.svc.GetAccount(r.Context(), p)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// MyTransactions handles GET /ledger/me/transactions?limit=&offset=.
func (h *LedgerHandler) MyTransactions(w http.ResponseWriter, r *http.Request) {
	actor, ok := domain.PrincipalFromCtx(r.Context())
	if !ok {
		handleError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListTransactions(r.Context(), actor, ledger.ListTransactionsInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionPage(page))
}

type payoutRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

// Payout handles POST /ledger/{kind}/{userID}/payout.
func (h *LedgerHandler) Payout(w http.ResponseWriter, r *http.Request) {
	p, err := pathPrincipal(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req payoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	account, err := h.svc.Payout(r.Context(), ledger.PayoutInput{
		Principal: p,
		Amount:    req.Amount,
		Note:      req.Note,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func pathPrincipal(r *http.Request) (domain.Principal, error) {
	id, err := pathUUID(r, "userID")
	if err != nil {
		return domain.Principal{}, err
	}
	return domain.NewPrincipal(domain.PrincipalKind(chiParamUpper(r, "kind")), id)
}
