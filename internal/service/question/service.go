// Package question handles authoring of questions outside the review
// workflow: drafting, editing, deleting and reading.
package question

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

type questionRepo interface {
	Create(ctx context.Context, q domain.Question) (domain.Question, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Question, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Question, error)
	UpdateContent(ctx context.Context, id uuid.UUID, body string, difficulty domain.Difficulty, imageURLs []string) (domain.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paperRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Paper, error)
	CountQuestions(ctx context.Context, paperID uuid.UUID) (int, error)
}

type assetStore interface {
	Remove(ctx context.Context, url string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxBodyLength = 5000
	MaxImages     = 10
)

// Service provides question authoring operations.
type Service struct {
	questions questionRepo
	papers    paperRepo
	assets    assetStore
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new question service. assets may be nil when no
// asset store is configured.
func NewService(
	log *slog.Logger,
	questions questionRepo,
	papers paperRepo,
	assets assetStore,
	tx txManager,
) *Service {
	return &Service{
		questions: questions,
		papers:    papers,
		assets:    assets,
		tx:        tx,
		log:       log.With("service", "question"),
	}
}
