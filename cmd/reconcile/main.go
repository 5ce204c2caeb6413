// Command reconcile recounts approved questions per paper and reports papers
// whose stored counter drifted. With -repair the counters are overwritten.
// It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = no drift or repaired, 1 = error, 2 = drift found without -repair.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/qreview-backend/internal/adapter/postgres"
	paperrepo "github.com/heartmarshall/qreview-backend/internal/adapter/postgres/paper"
	"github.com/heartmarshall/qreview-backend/internal/app"
	"github.com/heartmarshall/qreview-backend/internal/config"
	"github.com/heartmarshall/qreview-backend/internal/service/paper"
)

func main() {
	repair := flag.Bool("repair", false, "overwrite drifted counters with the recount")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := paper.NewService(logger, paperrepo.New(pool), postgres.NewTxManager(pool), cfg.Review.MaxActiveClaims)

	result, err := svc.ReconcileApprovedCounts(ctx, *repair)
	if err != nil {
		logger.Error("reconcile failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	if result.Drifted > result.Repaired {
		pool.Close()
		os.Exit(2)
	}
}
