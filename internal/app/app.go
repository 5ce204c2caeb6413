package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/qreview-backend/internal/adapter/postgres"
	actionlogrepo "github.com/heartmarshall/qreview-backend/internal/adapter/postgres/actionlog"
	ledgerrepo "github.com/heartmarshall/qreview-backend/internal/adapter/postgres/ledger"
	paperrepo "github.com/heartmarshall/qreview-backend/internal/adapter/postgres/paper"
	questionrepo "github.com/heartmarshall/qreview-backend/internal/adapter/postgres/question"
	"github.com/heartmarshall/qreview-backend/internal/adapter/provider/finalizer"
	"github.com/heartmarshall/qreview-backend/internal/adapter/redis/idempotency"
	"github.com/heartmarshall/qreview-backend/internal/adapter/storage/minio"
	"github.com/heartmarshall/qreview-backend/internal/auth"
	"github.com/heartmarshall/qreview-backend/internal/config"
	"github.com/heartmarshall/qreview-backend/internal/domain"
	"github.com/heartmarshall/qreview-backend/internal/service/ledger"
	"github.com/heartmarshall/qreview-backend/internal/service/paper"
	"github.com/heartmarshall/qreview-backend/internal/service/question"
	"github.com/heartmarshall/qreview-backend/internal/service/review"
	"github.com/heartmarshall/qreview-backend/internal/transport/middleware"
	"github.com/heartmarshall/qreview-backend/internal/transport/rest"
)

// Optional collaborators are held behind these interfaces so that a disabled
// component stays a true nil for the services.
type (
	idempotencyStore interface {
		Get(ctx context.Context, key string) (domain.IdempotencyRecord, bool, error)
		Save(ctx context.Context, key string, rec domain.IdempotencyRecord) error
	}
	assetStore interface {
		Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
		Remove(ctx context.Context, url string) error
	}
	confirmer interface {
		Confirm(ctx context.Context, q domain.Question) error
	}
)

// Run loads configuration, wires every component and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	health := rest.NewHealthHandler(pool, Version)

	var idem idempotencyStore
	if cfg.Redis.Enabled() {
		store, err := idempotency.New(ctx, cfg.Redis.URL, cfg.Redis.IdempotencyTTL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer store.Close()
		idem = store
		health.WithComponent("redis", store)
		logger.Info("bulk approval idempotency enabled", slog.Duration("ttl", cfg.Redis.IdempotencyTTL))
	} else {
		logger.Warn("redis not configured, bulk approval idempotency keys are ignored")
	}

	var assets assetStore
	if cfg.Assets.Enabled() {
		store, err := minio.New(ctx, cfg.Assets, logger)
		if err != nil {
			return fmt.Errorf("connect to asset store: %w", err)
		}
		assets = store
		health.WithComponent("assets", store)
	} else {
		logger.Warn("asset store not configured, uploads are disabled")
	}

	var confirm confirmer
	if cfg.Finalize.URL != "" {
		confirm = finalizer.New(cfg.Finalize, logger)
	} else {
		logger.Warn("finalize url not configured, finalisation will fail")
	}

	txm := postgres.NewTxManager(pool)
	questions := questionrepo.New(pool)
	papers := paperrepo.New(pool)
	logs := actionlogrepo.New(pool)
	accounts := ledgerrepo.New(pool)

	ledgerSvc := ledger.NewService(logger, accounts, txm)
	paperSvc := paper.NewService(logger, papers, txm, cfg.Review.MaxActiveClaims)
	questionSvc := question.NewService(logger, questions, papers, assets, txm)
	reviewSvc := review.NewService(logger, questions, papers, logs, ledgerSvc, confirm, idem, txm, review.Options{
		Rates:       cfg.Review.Rates,
		BulkMaxSize: cfg.Review.BulkMaxSize,
	})

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	handler := rest.NewRouter(rest.Handlers{
		Health:   health,
		Paper:    rest.NewPaperHandler(paperSvc, logger),
		Question: rest.NewQuestionHandler(questionSvc, logger),
		Review:   rest.NewReviewHandler(reviewSvc, logger),
		Ledger:   rest.NewLedgerHandler(ledgerSvc, logger),
		Asset:    rest.NewAssetHandler(assets, cfg.Server.MaxUploadBytes, logger),
	}, logger,
		middleware.Auth(jwtManager),
		limiter.Limit(cfg.Server.RateLimitPerMin),
	)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
