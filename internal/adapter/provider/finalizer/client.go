// Package finalizer confirms question finalisation with the external
// publishing endpoint. Calls go through a circuit breaker so a failing
// endpoint is not hammered by every finalise request.
package finalizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/heartmarshall/qreview-backend/internal/config"
	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// Client posts finalisation confirmations to a fixed URL.
type Client struct {
	url        string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *slog.Logger
}

// New creates a Client from configuration.
func New(cfg config.FinalizeConfig, logger *slog.Logger) *Client {
	log := logger.With("adapter", "finalizer")

	settings := gobreaker.Settings{
		Name:        "finalizer",
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.BreakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
		log:        log,
	}
}

type confirmRequest struct {
	QuestionID uuid.UUID `json:"question_id"`
	PaperID    uuid.UUID `json:"paper_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Difficulty int       `json:"difficulty"`
	Status     string    `json:"status"`
	At         time.Time `json:"at"`
}

// Confirm reports q as finalised. Any non-2xx answer, transport failure or
// open breaker is returned wrapped in domain.ErrExternalDependency.
func (c *Client) Confirm(ctx context.Context, q domain.Question) error {
	body, err := json.Marshal(confirmRequest{
		QuestionID: q.ID,
		PaperID:    q.PaperID,
		OwnerID:    q.OwnerID,
		Difficulty: int(q.Difficulty),
		Status:     string(q.Status),
		At:         time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("finalizer: encode request: %w", err)
	}

	_, err = c.breaker.Execute(func() (any, error) {
		return nil, c.post(ctx, body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.WarnContext(ctx, "finalizer unavailable", slog.String("question_id", q.ID.String()))
		} else {
			c.log.ErrorContext(ctx, "finalizer request failed",
				slog.String("question_id", q.ID.String()),
				slog.String("error", err.Error()),
			)
		}
		return fmt.Errorf("finalizer: %w: %w", domain.ErrExternalDependency, err)
	}

	c.log.DebugContext(ctx, "finalisation confirmed", slog.String("question_id", q.ID.String()))
	return nil
}

func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

// State returns the current breaker state name.
func (c *Client) State() string {
	return c.breaker.State().String()
}
