package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/adapters/event"
	"github.com/khoahotran/portfolio-builder/adapters/media_storage"
	"github.com/khoahotran/portfolio-builder/adapters/persistence"
	"github.com/khoahotran/portfolio-builder/internal/application/usecase/backup"
	"github.com/khoahotran/portfolio-builder/internal/config"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
	"github.com/khoahotran/portfolio-builder/pkg/tracing"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio Builder Worker...")

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("worker needs KAFKA_BROKERS", errors.New("no brokers configured"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg, appLogger, "portfolio-worker")
	if err != nil {
		appLogger.Fatal("cannot init tracer", err)
	}
	defer shutdownTracing(context.Background())

	// Storage
	kv, err := persistence.NewKeyValue(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot open storage", err)
	}
	defer kv.Close()
	repo := persistence.NewSnapshotRepo(kv, cfg.Storage.Key, appLogger)

	// Cloudinary Uploader
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	backupUC := backup.NewBackupUseCase(repo, uploader, appLogger, backup.WithRetain(cfg.Backup.Retain))

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPortfolioEvents,
		GroupID:  "portfolio-backup-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicPortfolioEvents))
	newEventLoop(consumer, backupUC, appLogger).run(ctx)
	appLogger.Info("Worker stopped")
}
