package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPaper creates an unclaimed paper with the given capacity.
func SeedPaper(t *testing.T, pool *pgxpool.Pool, capacity int) domain.Paper {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	paper := domain.Paper{
		ID:        uuid.New(),
		Title:     "Paper " + uniqueSuffix(),
		SourceURL: "https://papers.example.com/" + uniqueSuffix() + ".pdf",
		Capacity:  capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO papers (id, title, source_url, capacity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		paper.ID, paper.Title, paper.SourceURL, paper.Capacity, paper.CreatedAt, paper.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPaper insert: %v", err)
	}

	return paper
}

// SeedClaimedPaper creates a paper already claimed by the given creator.
func SeedClaimedPaper(t *testing.T, pool *pgxpool.Pool, capacity int, creatorID uuid.UUID) domain.Paper {
	t.Helper()

	paper := SeedPaper(t, pool, capacity)
	now := time.Now().UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`UPDATE papers SET claimed_by = $2, claimed_at = $3 WHERE id = $1`,
		paper.ID, creatorID, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClaimedPaper claim: %v", err)
	}

	paper.ClaimedBy = &creatorID
	paper.ClaimedAt = &now
	return paper
}

// SeedQuestion creates a question in the given status. Approved questions
// also bump the paper's approved counter so the counter stays consistent.
func SeedQuestion(
	t *testing.T,
	pool *pgxpool.Pool,
	paperID, ownerID uuid.UUID,
	status domain.QuestionStatus,
	difficulty domain.Difficulty,
) domain.Question {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	q := domain.Question{
		ID:         uuid.New(),
		PaperID:    paperID,
		OwnerID:    ownerID,
		Status:     status,
		Difficulty: difficulty,
		Body:       "What does figure " + uniqueSuffix() + " show?",
		ImageURLs:  []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO questions (id, paper_id, owner_id, status, difficulty, body, image_urls, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		q.ID, q.PaperID, q.OwnerID, string(q.Status), int(q.Difficulty), q.Body, q.ImageURLs, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion insert: %v", err)
	}

	if status == domain.QuestionStatusApproved {
		_, err = pool.Exec(ctx,
			`UPDATE papers SET approved_count = approved_count + 1 WHERE id = $1`, paperID)
		if err != nil {
			t.Fatalf("testhelper: SeedQuestion bump approved_count: %v", err)
		}
	}

	return q
}

// ApprovedCount reads the stored approved counter of a paper.
func ApprovedCount(t *testing.T, pool *pgxpool.Pool, paperID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT approved_count FROM papers WHERE id = $1`, paperID).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: ApprovedCount: %v", err)
	}
	return n
}

// QuestionStatus reads the stored status of a question.
func QuestionStatus(t *testing.T, pool *pgxpool.Pool, questionID uuid.UUID) domain.QuestionStatus {
	t.Helper()

	var s string
	err := pool.QueryRow(context.Background(),
		`SELECT status FROM questions WHERE id = $1`, questionID).Scan(&s)
	if err != nil {
		t.Fatalf("testhelper: QuestionStatus: %v", err)
	}
	return domain.QuestionStatus(s)
}
