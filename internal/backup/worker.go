package backup

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fintrack/internal/logger"
)

// Backuper is the part of Service the worker drives.
type Backuper interface {
	CreateBackup(name string) (*Info, error)
	Cleanup(keep int) (int, error)
}

// Worker takes periodic backups: one at startup, one per interval followed
// by a cleanup, and a final one at shutdown.
type Worker struct {
	backups    Backuper
	interval   time.Duration
	retryDelay time.Duration
	keep       int
	now        func() time.Time
	log        *zap.SugaredLogger
}

// NewWorker creates an auto-backup worker.
func NewWorker(backups Backuper, interval, retryDelay time.Duration, keep int) *Worker {
	return &Worker{
		backups:    backups,
		interval:   interval,
		retryDelay: retryDelay,
		keep:       keep,
		now:        time.Now,
		log:        logger.Named("auto-backup"),
	}
}

// Run blocks until ctx is cancelled. Failures are logged and retried after
// the retry delay; Run itself never fails.
func (w *Worker) Run(ctx context.Context) error {
	w.log.Infow("auto backup started", "interval", w.interval, "keep", w.keep)

	next := w.interval
	if err := w.backup("startup"); err != nil {
		next = w.retryDelay
	}
	timer := time.NewTimer(next)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("auto backup stopping, creating final backup")
			_ = w.backup("shutdown")
			return nil
		case <-timer.C:
			next = w.interval
			if err := w.backup("auto"); err != nil {
				next = w.retryDelay
			} else if _, err := w.backups.Cleanup(w.keep); err != nil {
				w.log.Errorw("failed to clean up old backups", "error", err)
			}
			timer.Reset(next)
		}
	}
}

func (w *Worker) backup(prefix string) error {
	info, err := w.backups.CreateBackup(prefix + "_" + w.now().UTC().Format(timestampLayout))
	if err != nil {
		w.log.Errorw("auto backup failed", "prefix", prefix, "error", err)
		return err
	}
	w.log.Infow("auto backup created", "file", info.FileName)
	return nil
}
