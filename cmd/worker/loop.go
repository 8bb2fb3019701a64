package main

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/internal/application/service"
	"github.com/khoahotran/portfolio-builder/internal/application/usecase/backup"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type backupRunner interface {
	Execute(ctx context.Context) (backup.Result, error)
}

// eventLoop backs up the snapshot once per portfolio event. Broker and
// backup failures pause the loop with exponential backoff; a success resets
// the delay.
type eventLoop struct {
	reader messageReader
	backup backupRunner
	logger logger.Logger
	pause  backoff.BackOff
}

func newEventLoop(reader messageReader, runner backupRunner, log logger.Logger) *eventLoop {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	return &eventLoop{reader: reader, backup: runner, logger: log, pause: b}
}

func (l *eventLoop) run(ctx context.Context) {
	l.pause.Reset()
	for {
		msg, err := l.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			l.logger.Error("Failed to read message from Kafka", err)
			if !l.wait(ctx) {
				return
			}
			continue
		}

		if err := l.handle(ctx, msg); err != nil {
			l.logger.Error("Failed to back up portfolios", err, zap.Int64("offset", msg.Offset))
			if !l.wait(ctx) {
				return
			}
			continue
		}
		l.pause.Reset()
		l.commit(ctx, msg)
	}
}

func (l *eventLoop) handle(ctx context.Context, msg kafka.Message) error {
	var payload service.PortfolioEvent
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		l.logger.Warn("Failed to unmarshal event, skipping", zap.Error(err), zap.Int64("offset", msg.Offset))
		return nil
	}

	l.logger.Info("Processing event",
		zap.String("event_type", payload.EventType),
		zap.String("portfolio_id", payload.PortfolioID),
	)
	if _, err := l.backup.Execute(ctx); err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return err
	}
	return nil
}

func (l *eventLoop) commit(ctx context.Context, msg kafka.Message) {
	if err := l.reader.CommitMessages(ctx, msg); err != nil {
		l.logger.Error("Failed to commit message", err)
	}
}

// wait sleeps for the next backoff interval. It returns false when the
// context ends first.
func (l *eventLoop) wait(ctx context.Context) bool {
	d := l.pause.NextBackOff()
	if d == backoff.Stop {
		d = time.Second
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
