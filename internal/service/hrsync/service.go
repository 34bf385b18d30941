package hrsync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/facilops/facil-backend-go/internal/domain/staff"
	"github.com/facilops/facil-backend-go/internal/pkg/hrsync"
)

// PayrollLister is the read side of the payroll platform client.
type PayrollLister interface {
	ListEmployees(ctx context.Context) ([]hrsync.EmployeeRecord, error)
}

// TimeclockLister is the read side of the time-tracking platform client.
type TimeclockLister interface {
	ListWorkers(ctx context.Context) ([]hrsync.EmployeeRecord, error)
}

// Service reconciles the staff roster with the two external HR platforms.
// Webhook events apply single upserts; SyncAll re-pulls both rosters to catch
// dropped deliveries. Both paths reduce to the same keyed upsert, so replays
// and overlapping runs converge on the same rows.
type Service struct {
	staffRepo staff.Repository
	payroll   PayrollLister
	timeclock TimeclockLister
}

func NewService(staffRepo staff.Repository, payroll PayrollLister, timeclock TimeclockLister) *Service {
	return &Service{
		staffRepo: staffRepo,
		payroll:   payroll,
		timeclock: timeclock,
	}
}

// ApplyPayrollEvent upserts the staff row carried by a payroll webhook event.
func (s *Service) ApplyPayrollEvent(ctx context.Context, payload hrsync.PayrollWebhookPayload) (staff.Staff, bool, error) {
	return s.upsert(ctx, staff.SourcePayroll, hrsync.EmployeeRecord{
		ExternalRef: payload.Employee.ID,
		FullName:    payload.Employee.Name,
		Active:      payload.Employee.Status == "active",
	})
}

// ApplyTimeclockEvent upserts the staff row carried by a timeclock webhook
// event.
func (s *Service) ApplyTimeclockEvent(ctx context.Context, payload hrsync.TimeclockWebhookPayload) (staff.Staff, bool, error) {
	return s.upsert(ctx, staff.SourceTimeclock, hrsync.EmployeeRecord{
		ExternalRef: payload.Worker.WorkerID,
		FullName:    payload.Worker.Name,
		Active:      payload.Worker.Enabled,
	})
}

// SyncAll implements cron.StaffSyncer. A failure on one platform does not
// block the other; the first error is reported after both were attempted.
func (s *Service) SyncAll(ctx context.Context) (int, error) {
	var firstErr error
	upserted := 0

	employees, err := s.payroll.ListEmployees(ctx)
	if err != nil {
		firstErr = fmt.Errorf("payroll roster pull failed: %w", err)
		slog.Error("Staff sync: payroll roster pull failed", "error", err)
	} else {
		n, err := s.upsertBatch(ctx, staff.SourcePayroll, employees)
		upserted += n
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	workers, err := s.timeclock.ListWorkers(ctx)
	if err != nil {
		if firstErr == nil {
			firstErr = fmt.Errorf("timeclock roster pull failed: %w", err)
		}
		slog.Error("Staff sync: timeclock roster pull failed", "error", err)
	} else {
		n, err := s.upsertBatch(ctx, staff.SourceTimeclock, workers)
		upserted += n
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return upserted, firstErr
}

func (s *Service) upsertBatch(ctx context.Context, source staff.SyncSource, records []hrsync.EmployeeRecord) (int, error) {
	upserted := 0
	for _, rec := range records {
		if _, _, err := s.upsert(ctx, source, rec); err != nil {
			return upserted, err
		}
		upserted++
	}
	return upserted, nil
}

func (s *Service) upsert(ctx context.Context, source staff.SyncSource, rec hrsync.EmployeeRecord) (staff.Staff, bool, error) {
	req := staff.SyncUpsertRequest{
		Source:      source,
		ExternalRef: rec.ExternalRef,
		FullName:    rec.FullName,
		Active:      rec.Active,
	}
	if err := req.Validate(); err != nil {
		return staff.Staff{}, false, err
	}

	st, created, err := s.staffRepo.UpsertFromSync(ctx, req)
	if err != nil {
		return staff.Staff{}, false, err
	}
	if created {
		slog.Info("Staff sync: new staff member", "source", source, "external_ref", rec.ExternalRef)
	}
	return st, created, nil
}
