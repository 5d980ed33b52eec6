// cmd/assistant/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"shopping-assistant/internal/assistant/handlers"
	"shopping-assistant/internal/assistant/parser"
	"shopping-assistant/internal/catalog"
	"shopping-assistant/internal/common/clock"
	"shopping-assistant/internal/common/config"
	"shopping-assistant/internal/common/database"
	"shopping-assistant/internal/common/logger"
)

var demoQueries = []string{
	"Find a floral skirt under $140 in size S. Is it in stock, and can I apply a discount code 'SAVE10'?",
	"I need white sneakers (size 8) for under $80 that can arrive by Monday.",
	"I found a 'casual denim jacket' at $79 on StoreA. Any better deals?",
	"I want to buy a cocktail dress from StoreB, but only if returns are hassle-free. Do they accept returns?",
}

func main() {
	interactive := flag.Bool("i", false, "read further queries from stdin after the demo set")
	seed := flag.Int64("seed", 0, "shipping estimator seed (0 = time-based)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting shopping assistant",
		zap.String("environment", cfg.App.Environment),
		zap.String("catalogBackend", cfg.Catalog.Backend),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{Addr: cfg.Metrics.Address, Handler: mux}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				zapLog.Error("metrics server failed", zap.Error(err))
			}
		}()
		zapLog.Info("metrics endpoint listening", zap.String("address", cfg.Metrics.Address))
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))
	clk := clock.RealClock{}

	cat, cleanup, err := buildCatalog(ctx, cfg, clk, rng, log)
	if err != nil {
		zapLog.Fatal("catalog init failed", zap.Error(err))
	}
	defer cleanup()

	dispatcher := handlers.NewDispatcher(parser.New(clk, log), cat, log)

	fmt.Println("=== Shopping Assistant Demo ===")
	for _, query := range demoQueries {
		runQuery(ctx, dispatcher, zapLog, query)
	}

	if *interactive {
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Print("\n> ")
		for scanner.Scan() {
			query := strings.TrimSpace(scanner.Text())
			if query == "" || ctx.Err() != nil {
				break
			}
			runQuery(ctx, dispatcher, zapLog, query)
			fmt.Print("\n> ")
		}
	}

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			zapLog.Warn("metrics server shutdown failed", zap.Error(err))
		}
	}
}

func runQuery(ctx context.Context, dispatcher *handlers.Dispatcher, zapLog *zap.Logger, query string) {
	fmt.Printf("\nUser: %s\n", query)
	response, err := dispatcher.HandleQuery(ctx, query)
	if err != nil {
		zapLog.Error("query failed", zap.String("query", query), zap.Error(err))
		fmt.Println("Assistant: Sorry, something went wrong handling that query.")
		return
	}
	fmt.Printf("Assistant: %s\n", response)
	fmt.Println(strings.Repeat("-", 80))
}

func buildCatalog(ctx context.Context, cfg *config.Config, clk clock.Clock, rng *rand.Rand, log logger.Logger) (catalog.Catalog, func(), error) {
	cleanup := func() {}

	var cat catalog.Catalog
	switch cfg.Catalog.Backend {
	case "postgres":
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return nil, cleanup, err
		}
		if err := pg.Ping(ctx); err != nil {
			pg.Close()
			return nil, cleanup, err
		}
		cat = catalog.NewPostgresCatalog(pg.DB, cfg.Assistant.Shipping, clk, rng, log)
		cleanup = func() { pg.Close() }
	default:
		if cfg.Catalog.FixturePath != "" {
			fixture, err := catalog.LoadFixture(cfg.Catalog.FixturePath)
			if err != nil {
				return nil, cleanup, err
			}
			cat = catalog.NewMemoryStoreFromFixture(fixture, cfg.Assistant.Shipping, clk, rng, log)
		} else {
			cat = catalog.NewMemoryStore(cfg.Assistant.Shipping, clk, rng, log)
		}
	}

	if cfg.Catalog.CacheEnabled {
		rc, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return nil, cleanup, err
		}
		if err := rc.Ping(ctx); err != nil {
			// Degrade to the uncached catalog when redis is unreachable.
			log.Warn("redis unreachable, catalog cache disabled", map[string]interface{}{
				"address": cfg.Database.Redis.Address,
				"error":   err.Error(),
			})
			rc.Close()
			return cat, cleanup, nil
		}
		inner := cleanup
		cleanup = func() {
			rc.Close()
			inner()
		}
		ttl := time.Duration(cfg.Catalog.CacheTTL) * time.Second
		cat = catalog.NewCachedCatalog(cat, rc.Client, ttl, log)
	}

	return cat, cleanup, nil
}
