package roster

import (
	"context"
	"testing"
	"time"

	"github.com/facilops/facil-backend-go/internal/domain/post"
	"github.com/facilops/facil-backend-go/internal/domain/roster"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostRepo struct {
	posts       map[string]post.ServicePost
	activeStaff map[string]int
}

func (f *fakePostRepo) Create(ctx context.Context, p post.ServicePost) (post.ServicePost, error) {
	f.posts[p.ID] = p
	return p, nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id string) (post.ServicePost, error) {
	p, ok := f.posts[id]
	if !ok {
		return post.ServicePost{}, post.ErrPostNotFound
	}
	return p, nil
}

func (f *fakePostRepo) List(ctx context.Context, filter post.PostFilter) ([]post.ServicePost, int64, error) {
	return nil, 0, nil
}

func (f *fakePostRepo) Update(ctx context.Context, req post.UpdatePostRequest) (post.ServicePost, error) {
	return post.ServicePost{}, nil
}

func (f *fakePostRepo) SoftDelete(ctx context.Context, id string) error {
	return nil
}

func (f *fakePostRepo) CountActiveStaff(ctx context.Context, postID string) (int, error) {
	return f.activeStaff[postID], nil
}

type fakeScheduleRepo struct {
	schedules  map[string]roster.MonthlySchedule
	upsertHits int
}

func scheduleKey(postID string, year, month int) string {
	return postID + "|" + time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, s roster.MonthlySchedule) (roster.MonthlySchedule, error) {
	f.upsertHits++
	s.ID = "sched-" + scheduleKey(s.PostID, s.Year, s.Month)
	f.schedules[scheduleKey(s.PostID, s.Year, s.Month)] = s
	return s, nil
}

func (f *fakeScheduleRepo) GetByPostAndMonth(ctx context.Context, postID string, year, month int) (roster.MonthlySchedule, error) {
	s, ok := f.schedules[scheduleKey(postID, year, month)]
	if !ok {
		return roster.MonthlySchedule{}, roster.ErrScheduleNotFound
	}
	return s, nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, postID string, year, month int) error {
	key := scheduleKey(postID, year, month)
	if _, ok := f.schedules[key]; !ok {
		return roster.ErrScheduleNotFound
	}
	delete(f.schedules, key)
	return nil
}

type fakeMarkingRepo struct {
	vacancies map[string]roster.VacancyRecord
	presences map[string]roster.PresenceConfirmation
}

func newFakeMarkingRepo() *fakeMarkingRepo {
	return &fakeMarkingRepo{
		vacancies: make(map[string]roster.VacancyRecord),
		presences: make(map[string]roster.PresenceConfirmation),
	}
}

func markKey(postID string, date time.Time) string {
	return postID + "|" + date.Format("2006-01-02")
}

func (f *fakeMarkingRepo) InsertVacancy(ctx context.Context, rec roster.VacancyRecord) error {
	key := markKey(rec.PostID, rec.Date)
	if _, exists := f.vacancies[key]; exists {
		return nil
	}
	f.vacancies[key] = rec
	return nil
}

func (f *fakeMarkingRepo) DeleteVacancy(ctx context.Context, postID string, date time.Time) error {
	delete(f.vacancies, markKey(postID, date))
	return nil
}

func (f *fakeMarkingRepo) ListVacancies(ctx context.Context, postID string, from, to time.Time) ([]roster.VacancyRecord, error) {
	var out []roster.VacancyRecord
	for _, v := range f.vacancies {
		if v.PostID == postID && !v.Date.Before(from) && !v.Date.After(to) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeMarkingRepo) UpsertPresence(ctx context.Context, pc roster.PresenceConfirmation) error {
	key := markKey(pc.PostID, pc.Date)
	if _, exists := f.presences[key]; exists {
		return nil
	}
	f.presences[key] = pc
	return nil
}

func (f *fakeMarkingRepo) DeletePresence(ctx context.Context, postID string, date time.Time) error {
	delete(f.presences, markKey(postID, date))
	return nil
}

func (f *fakeMarkingRepo) ListPresences(ctx context.Context, postID string, from, to time.Time) ([]roster.PresenceConfirmation, error) {
	var out []roster.PresenceConfirmation
	for _, p := range f.presences {
		if p.PostID == postID && !p.Date.Before(from) && !p.Date.After(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestService(posts *fakePostRepo, schedules *fakeScheduleRepo, markings *fakeMarkingRepo) *rosterServiceImpl {
	return &rosterServiceImpl{
		postRepo:     posts,
		scheduleRepo: schedules,
		markingRepo:  markings,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}
}

func anchorDate(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestGenerate_RotatingPostFullyStaffed(t *testing.T) {
	posts := &fakePostRepo{
		posts: map[string]post.ServicePost{
			"post-1": {ID: "post-1", StaffingPolicy: "12x36", PlannedHeadcount: 1},
		},
		activeStaff: map[string]int{"post-1": 4},
	}
	schedules := &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}
	svc := newTestService(posts, schedules, newFakeMarkingRepo())

	resp, err := svc.Generate(context.Background(), roster.GenerateScheduleRequest{
		PostID: "post-1", Month: 1, Year: 2025,
	})
	require.NoError(t, err)

	assert.Len(t, resp.WorkDays, 31)
	assert.Equal(t, "2025-01-01", resp.WorkDays[0])
	assert.Equal(t, "2025-01-31", resp.WorkDays[30])
	assert.Equal(t, 1, schedules.upsertHits)
}

func TestGenerate_RotatingPostUnderstaffedRejected(t *testing.T) {
	posts := &fakePostRepo{
		posts: map[string]post.ServicePost{
			"post-1": {ID: "post-1", StaffingPolicy: "12x36", PlannedHeadcount: 1},
		},
		activeStaff: map[string]int{"post-1": 3},
	}
	schedules := &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}
	svc := newTestService(posts, schedules, newFakeMarkingRepo())

	_, err := svc.Generate(context.Background(), roster.GenerateScheduleRequest{
		PostID: "post-1", Month: 1, Year: 2025,
	})
	assert.ErrorIs(t, err, roster.ErrVacantPost)
	assert.Zero(t, schedules.upsertHits, "a rejected generation must not write")
}

func TestGenerate_WeekdayPostPartialStillGenerates(t *testing.T) {
	posts := &fakePostRepo{
		posts: map[string]post.ServicePost{
			"post-1": {ID: "post-1", StaffingPolicy: "5x2", PlannedHeadcount: 3},
		},
		activeStaff: map[string]int{"post-1": 1},
	}
	schedules := &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}
	svc := newTestService(posts, schedules, newFakeMarkingRepo())

	resp, err := svc.Generate(context.Background(), roster.GenerateScheduleRequest{
		PostID: "post-1", Month: 1, Year: 2025,
	})
	require.NoError(t, err)
	assert.Len(t, resp.WorkDays, 23)
	assert.NotContains(t, resp.WorkDays, "2025-01-04") // Saturday
	assert.NotContains(t, resp.WorkDays, "2025-01-05") // Sunday
}

func TestGenerate_Regeneration_Overwrites(t *testing.T) {
	posts := &fakePostRepo{
		posts: map[string]post.ServicePost{
			"post-1": {
				ID: "post-1", StaffingPolicy: "4x2", PlannedHeadcount: 1,
				CycleAnchorDate: anchorDate(2025, time.January, 1),
			},
		},
		activeStaff: map[string]int{"post-1": 1},
	}
	schedules := &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}
	svc := newTestService(posts, schedules, newFakeMarkingRepo())

	req := roster.GenerateScheduleRequest{PostID: "post-1", Month: 1, Year: 2025}

	first, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.WorkDays, second.WorkDays, "regeneration must be deterministic")
	assert.Len(t, schedules.schedules, 1, "regeneration overwrites, never appends")
}

func TestConfirmPresence_Idempotent(t *testing.T) {
	posts := &fakePostRepo{
		posts:       map[string]post.ServicePost{"post-1": {ID: "post-1", StaffingPolicy: "5x2"}},
		activeStaff: map[string]int{},
	}
	markings := newFakeMarkingRepo()
	svc := newTestService(posts, &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}, markings)

	req := roster.ConfirmPresenceRequest{PostID: "post-1", Date: "2025-01-15"}

	first, err := svc.ConfirmPresence(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.ConfirmPresence(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, markings.presences, 1)
}

func TestMarkVacant_Idempotent(t *testing.T) {
	posts := &fakePostRepo{
		posts:       map[string]post.ServicePost{"post-1": {ID: "post-1", StaffingPolicy: "5x2"}},
		activeStaff: map[string]int{},
	}
	markings := newFakeMarkingRepo()
	svc := newTestService(posts, &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}, markings)

	req := roster.MarkVacantRequest{PostID: "post-1", Date: "2025-01-15", ReasonCode: "ferias"}

	_, err := svc.MarkVacant(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.MarkVacant(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, markings.vacancies, 1)
}

func TestMarkVacant_RequiresReason(t *testing.T) {
	posts := &fakePostRepo{
		posts:       map[string]post.ServicePost{"post-1": {ID: "post-1", StaffingPolicy: "5x2"}},
		activeStaff: map[string]int{},
	}
	markings := newFakeMarkingRepo()
	svc := newTestService(posts, &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}, markings)

	_, err := svc.MarkVacant(context.Background(), roster.MarkVacantRequest{
		PostID: "post-1", Date: "2025-01-15",
	})
	assert.ErrorIs(t, err, roster.ErrReasonRequired)
	assert.Empty(t, markings.vacancies)
}

func TestDayMarkings_RequireValidDate(t *testing.T) {
	posts := &fakePostRepo{
		posts:       map[string]post.ServicePost{"post-1": {ID: "post-1", StaffingPolicy: "5x2"}},
		activeStaff: map[string]int{},
	}
	markings := newFakeMarkingRepo()
	svc := newTestService(posts, &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}, markings)

	ctx := context.Background()

	for _, date := range []string{"", "15/01/2025", "2025-13-40"} {
		_, err := svc.ConfirmPresence(ctx, roster.ConfirmPresenceRequest{
			PostID: "post-1", Date: date,
		})
		assert.ErrorIs(t, err, roster.ErrMarkingDateRequired, "ConfirmPresence(%q)", date)

		_, err = svc.MarkVacant(ctx, roster.MarkVacantRequest{
			PostID: "post-1", Date: date, ReasonCode: "ferias",
		})
		assert.ErrorIs(t, err, roster.ErrMarkingDateRequired, "MarkVacant(%q)", date)
	}

	assert.Empty(t, markings.vacancies)
	assert.Empty(t, markings.presences)
}

func TestDayMarkings_MutuallyExclusive(t *testing.T) {
	posts := &fakePostRepo{
		posts:       map[string]post.ServicePost{"post-1": {ID: "post-1", StaffingPolicy: "5x2"}},
		activeStaff: map[string]int{},
	}
	markings := newFakeMarkingRepo()
	svc := newTestService(posts, &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}, markings)

	ctx := context.Background()

	_, err := svc.MarkVacant(ctx, roster.MarkVacantRequest{
		PostID: "post-1", Date: "2025-01-15", ReasonCode: "atestado",
	})
	require.NoError(t, err)

	_, err = svc.ConfirmPresence(ctx, roster.ConfirmPresenceRequest{
		PostID: "post-1", Date: "2025-01-15",
	})
	require.NoError(t, err)

	assert.Empty(t, markings.vacancies, "presence confirmation evicts the vacancy record")
	assert.Len(t, markings.presences, 1)

	_, err = svc.MarkVacant(ctx, roster.MarkVacantRequest{
		PostID: "post-1", Date: "2025-01-15", ReasonCode: "atestado",
	})
	require.NoError(t, err)

	assert.Empty(t, markings.presences, "marking vacant evicts the presence confirmation")
	assert.Len(t, markings.vacancies, 1)
}

func TestGetCalendar_MergedView(t *testing.T) {
	posts := &fakePostRepo{
		posts: map[string]post.ServicePost{
			"post-1": {ID: "post-1", StaffingPolicy: "5x2", PlannedHeadcount: 1},
		},
		activeStaff: map[string]int{"post-1": 1},
	}
	schedules := &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}
	markings := newFakeMarkingRepo()
	svc := newTestService(posts, schedules, markings)

	ctx := context.Background()

	_, err := svc.Generate(ctx, roster.GenerateScheduleRequest{PostID: "post-1", Month: 1, Year: 2025})
	require.NoError(t, err)

	// Jan 15 2025 is a Wednesday; Jan 16 a Thursday; Jan 4 a Saturday.
	_, err = svc.MarkVacant(ctx, roster.MarkVacantRequest{
		PostID: "post-1", Date: "2025-01-15", ReasonCode: "ferias",
	})
	require.NoError(t, err)
	_, err = svc.ConfirmPresence(ctx, roster.ConfirmPresenceRequest{
		PostID: "post-1", Date: "2025-01-16",
	})
	require.NoError(t, err)

	cal, err := svc.GetCalendar(ctx, "post-1", 2025, 1)
	require.NoError(t, err)
	require.Len(t, cal.Days, 31)

	byDate := make(map[string]roster.CalendarDay, len(cal.Days))
	for _, d := range cal.Days {
		byDate[d.Date] = d
	}

	vacant := byDate["2025-01-15"]
	assert.Equal(t, string(roster.DayVacant), vacant.State)
	assert.True(t, vacant.Scheduled)
	require.NotNil(t, vacant.ReasonCode)
	assert.Equal(t, "ferias", *vacant.ReasonCode)

	assert.Equal(t, string(roster.DayPresenceConfirmed), byDate["2025-01-16"].State)

	plain := byDate["2025-01-17"]
	assert.Equal(t, string(roster.DayScheduled), plain.State)
	assert.True(t, plain.Scheduled)

	weekend := byDate["2025-01-04"]
	assert.Equal(t, string(roster.DayUnmarked), weekend.State)
	assert.False(t, weekend.Scheduled)
}

func TestGetCalendar_NoScheduleStillShowsMarkings(t *testing.T) {
	posts := &fakePostRepo{
		posts:       map[string]post.ServicePost{"post-1": {ID: "post-1", StaffingPolicy: "5x2"}},
		activeStaff: map[string]int{},
	}
	markings := newFakeMarkingRepo()
	svc := newTestService(posts, &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}, markings)

	ctx := context.Background()
	_, err := svc.ConfirmPresence(ctx, roster.ConfirmPresenceRequest{
		PostID: "post-1", Date: "2025-02-10",
	})
	require.NoError(t, err)

	cal, err := svc.GetCalendar(ctx, "post-1", 2025, 2)
	require.NoError(t, err)
	require.Len(t, cal.Days, 28)

	for _, d := range cal.Days {
		if d.Date == "2025-02-10" {
			assert.Equal(t, string(roster.DayPresenceConfirmed), d.State)
			assert.False(t, d.Scheduled)
		} else {
			assert.Equal(t, string(roster.DayUnmarked), d.State)
		}
	}
}

func TestClearSchedule(t *testing.T) {
	posts := &fakePostRepo{
		posts: map[string]post.ServicePost{
			"post-1": {ID: "post-1", StaffingPolicy: "12x36"},
		},
		activeStaff: map[string]int{"post-1": 4},
	}
	schedules := &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}
	svc := newTestService(posts, schedules, newFakeMarkingRepo())

	ctx := context.Background()
	_, err := svc.Generate(ctx, roster.GenerateScheduleRequest{PostID: "post-1", Month: 3, Year: 2025})
	require.NoError(t, err)

	require.NoError(t, svc.ClearSchedule(ctx, "post-1", 2025, 3))
	assert.ErrorIs(t, svc.ClearSchedule(ctx, "post-1", 2025, 3), roster.ErrScheduleNotFound)

	_, err = svc.GetSchedule(ctx, "post-1", 2025, 3)
	assert.ErrorIs(t, err, roster.ErrScheduleNotFound)
}

func TestGenerate_UnknownPost(t *testing.T) {
	posts := &fakePostRepo{posts: map[string]post.ServicePost{}, activeStaff: map[string]int{}}
	svc := newTestService(posts, &fakeScheduleRepo{schedules: make(map[string]roster.MonthlySchedule)}, newFakeMarkingRepo())

	_, err := svc.Generate(context.Background(), roster.GenerateScheduleRequest{
		PostID: "missing", Month: 1, Year: 2025,
	})
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}
