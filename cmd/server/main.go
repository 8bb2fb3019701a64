package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-builder/adapters/http"
	"github.com/khoahotran/portfolio-builder/adapters/persistence"
	"github.com/khoahotran/portfolio-builder/internal/application/seed"
	portfolioUC "github.com/khoahotran/portfolio-builder/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio-builder/internal/config"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
	"github.com/khoahotran/portfolio-builder/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start Portfolio Builder API Server...", zap.String("storage_driver", cfg.Storage.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Fatal("cannot init tracer", err)
	}
	defer shutdownTracing(context.Background())

	// Storage
	kv, err := persistence.NewKeyValue(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot open storage", err, zap.String("driver", cfg.Storage.Driver))
	}
	defer kv.Close()
	repo := persistence.NewSnapshotRepo(kv, cfg.Storage.Key, appLogger)

	opts := []portfolioUC.Option{
		portfolioUC.WithSeeder(seed.Seeder{Templates: seed.SampleTemplates(), Copies: cfg.Seed.Copies}),
		portfolioUC.WithSeedOnEmpty(cfg.Seed.Enabled),
	}

	// Events are optional
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		opts = append(opts, portfolioUC.WithPublisher(kafkaClient))
	}

	store := portfolioUC.NewStore(repo, appLogger, opts...)
	if err := store.Initialize(ctx); err != nil {
		appLogger.Fatal("cannot initialize portfolio store", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(httpAdapter.NewPortfolioHandler(store, appLogger), appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port), zap.Int("portfolios", store.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
