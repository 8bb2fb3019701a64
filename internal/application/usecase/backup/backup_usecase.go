package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/internal/application/service"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

const Folder = "backups/portfolios"

type Result struct {
	URL      string
	PublicID string
	Count    int
}

// BackupUseCase copies the stored portfolio snapshot to remote storage.
// With a retain limit it deletes the oldest backups it uploaded itself once
// more than that many exist.
type BackupUseCase struct {
	repo     portfolio.Repository
	uploader service.Uploader
	logger   logger.Logger
	now      func() time.Time

	mu       sync.Mutex
	retain   int
	uploaded []string
}

type Option func(*BackupUseCase)

// WithRetain keeps at most n backups from this process. Zero keeps all.
func WithRetain(n int) Option {
	return func(uc *BackupUseCase) { uc.retain = n }
}

func NewBackupUseCase(repo portfolio.Repository, uploader service.Uploader, log logger.Logger, opts ...Option) *BackupUseCase {
	uc := &BackupUseCase{
		repo:     repo,
		uploader: uploader,
		logger:   log,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *BackupUseCase) Execute(ctx context.Context) (Result, error) {
	uc.logger.Info("Starting portfolio backup...")

	list, err := uc.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, portfolio.ErrSnapshotNotFound) {
			return Result{}, apperror.NewNotFound("snapshot", "portfolios")
		}
		uc.logger.Error("Failed to load portfolios for backup", err)
		return Result{}, apperror.NewStorage("failed to load portfolios", err)
	}

	payload, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return Result{}, apperror.NewInternal("failed to encode backup", err)
	}

	timestamp := uc.now().Format("2006-01-02_15-04-05")
	publicID := fmt.Sprintf("portfolios-%s.json", timestamp)

	uploadURL, err := uc.uploader.Upload(ctx, bytes.NewReader(payload), Folder, publicID)
	if err != nil {
		uc.logger.Error("Failed to upload backup to Cloudinary", err)
		return Result{}, apperror.NewStorage("failed to upload backup", err)
	}

	uc.logger.Info("Portfolio backup completed and uploaded successfully",
		zap.String("url", uploadURL),
		zap.String("public_id", publicID),
		zap.Int("count", len(list)),
	)
	uc.prune(ctx, path.Join(Folder, publicID))
	return Result{URL: uploadURL, PublicID: publicID, Count: len(list)}, nil
}

// prune records the new backup and deletes the oldest ones past the retain
// limit. Failed deletes are logged and not retried.
func (uc *BackupUseCase) prune(ctx context.Context, fullID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.uploaded = append(uc.uploaded, fullID)
	if uc.retain <= 0 {
		return
	}
	for len(uc.uploaded) > uc.retain {
		oldest := uc.uploaded[0]
		uc.uploaded = uc.uploaded[1:]
		if err := uc.uploader.Delete(ctx, oldest); err != nil {
			uc.logger.Warn("Failed to delete old backup", zap.String("public_id", oldest), zap.Error(err))
			continue
		}
		uc.logger.Info("Old backup deleted", zap.String("public_id", oldest))
	}
}
