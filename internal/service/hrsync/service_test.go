package hrsync

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/facilops/facil-backend-go/internal/domain/staff"
	"github.com/facilops/facil-backend-go/internal/pkg/hrsync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	byRef map[string]staff.Staff
	seq   int
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{byRef: make(map[string]staff.Staff)}
}

func refKey(source staff.SyncSource, ref string) string {
	return string(source) + "|" + ref
}

func (f *fakeStaffRepo) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	return s, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (f *fakeStaffRepo) GetByExternalRef(ctx context.Context, source staff.SyncSource, ref string) (staff.Staff, error) {
	s, ok := f.byRef[refKey(source, ref)]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return s, nil
}

func (f *fakeStaffRepo) List(ctx context.Context, filter staff.StaffFilter) ([]staff.Staff, int64, error) {
	return nil, 0, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.Staff, error) {
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (f *fakeStaffRepo) UpsertFromSync(ctx context.Context, req staff.SyncUpsertRequest) (staff.Staff, bool, error) {
	key := refKey(req.Source, req.ExternalRef)

	status := staff.StatusActive
	if !req.Active {
		status = staff.StatusInactive
	}

	if existing, ok := f.byRef[key]; ok {
		existing.FullName = req.FullName
		existing.Status = status
		f.byRef[key] = existing
		return existing, false, nil
	}

	f.seq++
	created := staff.Staff{
		ID:       fmt.Sprintf("staff-%d", f.seq),
		FullName: req.FullName,
		Status:   status,
	}
	if req.Source == staff.SourcePayroll {
		created.PayrollRef = &req.ExternalRef
	} else {
		created.TimeclockRef = &req.ExternalRef
	}
	f.byRef[key] = created
	return created, true, nil
}

func (f *fakeStaffRepo) SoftDelete(ctx context.Context, id string) error {
	return nil
}

type staticPayroll struct {
	records []hrsync.EmployeeRecord
	err     error
}

func (s *staticPayroll) ListEmployees(ctx context.Context) ([]hrsync.EmployeeRecord, error) {
	return s.records, s.err
}

type staticTimeclock struct {
	records []hrsync.EmployeeRecord
	err     error
}

func (s *staticTimeclock) ListWorkers(ctx context.Context) ([]hrsync.EmployeeRecord, error) {
	return s.records, s.err
}

func TestSyncAll_UpsertsBothPlatforms(t *testing.T) {
	repo := newFakeStaffRepo()
	svc := NewService(repo,
		&staticPayroll{records: []hrsync.EmployeeRecord{
			{ExternalRef: "emp-1", FullName: "Ana Souza", Active: true},
			{ExternalRef: "emp-2", FullName: "Bruno Lima", Active: false},
		}},
		&staticTimeclock{records: []hrsync.EmployeeRecord{
			{ExternalRef: "wk-9", FullName: "Carla Dias", Active: true},
		}},
	)

	upserted, err := svc.SyncAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, upserted)

	inactive, err := repo.GetByExternalRef(context.Background(), staff.SourcePayroll, "emp-2")
	require.NoError(t, err)
	assert.Equal(t, staff.StatusInactive, inactive.Status)
}

func TestSyncAll_Replay_ConvergesOnOneRow(t *testing.T) {
	repo := newFakeStaffRepo()
	svc := NewService(repo,
		&staticPayroll{records: []hrsync.EmployeeRecord{
			{ExternalRef: "emp-1", FullName: "Ana Souza", Active: true},
		}},
		&staticTimeclock{},
	)

	_, err := svc.SyncAll(context.Background())
	require.NoError(t, err)
	_, err = svc.SyncAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, repo.byRef, 1)
}

func TestSyncAll_OnePlatformFailing_OtherStillSyncs(t *testing.T) {
	repo := newFakeStaffRepo()
	svc := NewService(repo,
		&staticPayroll{err: errors.New("boom")},
		&staticTimeclock{records: []hrsync.EmployeeRecord{
			{ExternalRef: "wk-9", FullName: "Carla Dias", Active: true},
		}},
	)

	upserted, err := svc.SyncAll(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, upserted)

	_, err = repo.GetByExternalRef(context.Background(), staff.SourceTimeclock, "wk-9")
	assert.NoError(t, err)
}

func TestApplyPayrollEvent_UpsertAndUpdate(t *testing.T) {
	repo := newFakeStaffRepo()
	svc := NewService(repo, &staticPayroll{}, &staticTimeclock{})

	var payload hrsync.PayrollWebhookPayload
	payload.Event = hrsync.WebhookEventEmployeeCreated
	payload.Employee.ID = "emp-7"
	payload.Employee.Name = "Diego Alves"
	payload.Employee.Status = "active"

	st, created, err := svc.ApplyPayrollEvent(context.Background(), payload)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, staff.StatusActive, st.Status)

	payload.Event = hrsync.WebhookEventEmployeeUpdated
	payload.Employee.Status = "terminated"

	st, created, err = svc.ApplyPayrollEvent(context.Background(), payload)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, staff.StatusInactive, st.Status)
	assert.Len(t, repo.byRef, 1)
}

func TestApplyTimeclockEvent_MissingRefRejected(t *testing.T) {
	repo := newFakeStaffRepo()
	svc := NewService(repo, &staticPayroll{}, &staticTimeclock{})

	var payload hrsync.TimeclockWebhookPayload
	payload.Event = hrsync.WebhookEventWorkerChanged
	payload.Worker.Name = "No Ref"

	_, _, err := svc.ApplyTimeclockEvent(context.Background(), payload)
	assert.Error(t, err)
	assert.Empty(t, repo.byRef)
}
