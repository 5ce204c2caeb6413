package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/qreview-backend/internal/domain"
	"github.com/heartmarshall/qreview-backend/internal/service/ledger"
)

type paperResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	SourceURL     string     `json:"source_url"`
	Capacity      int        `json:"capacity"`
	ClaimedBy     *uuid.UUID `json:"claimed_by,omitempty"`
	ClaimedAt     *time.Time `json:"claimed_at,omitempty"`
	ApprovedCount int        `json:"approved_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toPaperResponse(p domain.Paper) paperResponse {
	return paperResponse{
		ID:            p.ID,
		Title:         p.Title,
		SourceURL:     p.SourceURL,
		Capacity:      p.Capacity,
		ClaimedBy:     p.ClaimedBy,
		ClaimedAt:     p.ClaimedAt,
		ApprovedCount: p.ApprovedCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type questionResponse struct {
	ID              uuid.UUID  `json:"id"`
	PaperID         uuid.UUID  `json:"paper_id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	ReviewerID      *uuid.UUID `json:"reviewer_id,omitempty"`
	Status          string     `json:"status"`
	Difficulty      int        `json:"difficulty"`
	Body            string     `json:"body"`
	ImageURLs       []string   `json:"image_urls"`
	ReviewerComment *string    `json:"reviewer_comment,omitempty"`
	OwnerComment    *string    `json:"owner_comment,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toQuestionResponse(q domain.Question) questionResponse {
	images := q.ImageURLs
	if images == nil {
		images = []string{}
	}
	return questionResponse{
		ID:              q.ID,
		PaperID:         q.PaperID,
		OwnerID:         q.OwnerID,
		ReviewerID:      q.ReviewerID,
		Status:          string(q.Status),
		Difficulty:      int(q.Difficulty),
		Body:            q.Body,
		ImageURLs:       images,
		ReviewerComment: q.ReviewerComment,
		OwnerComment:    q.OwnerComment,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

type principalResponse struct {
	Kind string    `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

func toPrincipalResponse(p domain.Principal) principalResponse {
	return principalResponse{Kind: string(p.Kind), ID: p.ID}
}

type accountResponse struct {
	Principal        principalResponse `json:"principal"`
	Balance          decimal.Decimal   `json:"balance"`
	LifetimeEarnings decimal.Decimal   `json:"lifetime_earnings"`
	UpdatedAt        *time.Time        `json:"updated_at,omitempty"`
}

func toAccountResponse(a domain.LedgerAccount) accountResponse {
	resp := accountResponse{
		Principal:        toPrincipalResponse(a.Principal),
		Balance:          a.Balance,
		LifetimeEarnings: a.LifetimeEarnings,
	}
	if !a.UpdatedAt.IsZero() {
		resp.UpdatedAt = &a.UpdatedAt
	}
	return resp
}

type transactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	Description string          `json:"description,omitempty"`
	QuestionID  *uuid.UUID      `json:"question_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type transactionPageResponse struct {
	Items []transactionResponse `json:"items"`
	Total int                   `json:"total"`
}

func toTransactionPage(p ledger.TransactionPage) transactionPageResponse {
	items := make([]transactionResponse, 0, len(p.Items))
	for _, tx := range p.Items {
		items = append(items, transactionResponse{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Kind:        string(tx.Kind),
			Description: tx.Description,
			QuestionID:  tx.QuestionID,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return transactionPageResponse{Items: items, Total: p.Total}
}

type actionLogResponse struct {
	Principal  principalResponse `json:"principal"`
	Kind       string            `json:"kind"`
	QuestionID uuid.UUID         `json:"question_id"`
	Count      int               `json:"count"`
	Timestamps []time.Time       `json:"timestamps"`
}

func toActionLogResponses(entries []domain.ActionLogEntry) []actionLogResponse {
	out := make([]actionLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, actionLogResponse{
			Principal:  toPrincipalResponse(e.Principal),
			Kind:       string(e.Kind),
			QuestionID: e.QuestionID,
			Count:      e.Count(),
			Timestamps: e.Timestamps,
		})
	}
	return out
}
