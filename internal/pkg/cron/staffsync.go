package cron

import (
	"context"
	"log/slog"
	"time"
)

// StaffSyncer re-pulls the staff roster from the external HR platforms.
type StaffSyncer interface {
	SyncAll(ctx context.Context) (upserted int, err error)
}

type StaffSyncJobs struct {
	syncer   StaffSyncer
	interval time.Duration
}

func NewStaffSyncJobs(syncer StaffSyncer, interval time.Duration) *StaffSyncJobs {
	return &StaffSyncJobs{syncer: syncer, interval: interval}
}

func (j *StaffSyncJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("staff_hr_resync", j.interval, j.Resync)
}

// Resync pulls both platform rosters and upserts them. The webhook handlers
// keep staff current in between runs; this job catches dropped deliveries.
func (j *StaffSyncJobs) Resync(ctx context.Context) error {
	slog.Info("Cron: Starting staff HR re-sync job")

	upserted, err := j.syncer.SyncAll(ctx)
	if err != nil {
		return err
	}

	slog.Info("Cron: Staff HR re-sync completed", "upserted", upserted)
	return nil
}
