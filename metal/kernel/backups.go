package kernel

import (
	"context"
	"log/slog"

	"github.com/ImRehmankhan/nextcodehub/database/backup"
	"github.com/ImRehmankhan/nextcodehub/metal/env"
)

// BackupRunner owns the optional cron backup routine. A nil scheduler means
// backups were not configured.
type BackupRunner struct {
	scheduler *backup.Scheduler
	cancel    context.CancelFunc
}

func MakeBackups(environment *env.Environment) *BackupRunner {
	if !environment.Backup.IsEnabled() {
		return &BackupRunner{}
	}

	scheduler, err := backup.NewScheduler(environment)
	if err != nil {
		panic("backups: invalid configuration: " + err.Error())
	}

	return &BackupRunner{scheduler: scheduler}
}

func (b *BackupRunner) Start() {
	if b == nil || b.scheduler == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	if err := b.scheduler.Start(ctx); err != nil {
		slog.Error("failed to start backup scheduler", "err", err)
		cancel()

		return
	}

	slog.Info("backup scheduler started")
}

func (b *BackupRunner) Stop() {
	if b == nil || b.scheduler == nil {
		return
	}

	if b.cancel != nil {
		b.cancel()
	}

	b.scheduler.Stop()
}
