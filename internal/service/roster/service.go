package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/facilops/facil-backend-go/internal/domain/post"
	"github.com/facilops/facil-backend-go/internal/domain/roster"
	"github.com/facilops/facil-backend-go/internal/pkg/database"
	"github.com/facilops/facil-backend-go/internal/pkg/validator"
	"github.com/facilops/facil-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type rosterServiceImpl struct {
	db           *database.DB
	postRepo     post.Repository
	scheduleRepo roster.ScheduleRepository
	markingRepo  roster.DayMarkingRepository
	withTx       func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewRosterService(
	db *database.DB,
	postRepo post.Repository,
	scheduleRepo roster.ScheduleRepository,
	markingRepo roster.DayMarkingRepository,
) roster.Service {
	return &rosterServiceImpl{
		db:           db,
		postRepo:     postRepo,
		scheduleRepo: scheduleRepo,
		markingRepo:  markingRepo,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Generate implements roster.Service. The occupancy check runs before any
// write so a rejected generation leaves no trace in storage.
func (s *rosterServiceImpl) Generate(ctx context.Context, req roster.GenerateScheduleRequest) (roster.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.ScheduleResponse{}, err
	}

	sp, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return roster.ScheduleResponse{}, err
	}

	assigned, err := s.postRepo.CountActiveStaff(ctx, req.PostID)
	if err != nil {
		return roster.ScheduleResponse{}, fmt.Errorf("failed to count active staff: %w", err)
	}
	occupancy := post.Classify(sp.StaffingPolicy, sp.PlannedHeadcount, assigned)

	workDays, err := roster.GenerateWorkDays(sp.StaffingPolicy, sp.CycleAnchorDate, req.Year, req.Month, occupancy)
	if err != nil {
		return roster.ScheduleResponse{}, err
	}

	schedule, err := s.scheduleRepo.Upsert(ctx, roster.MonthlySchedule{
		PostID:   req.PostID,
		Month:    req.Month,
		Year:     req.Year,
		WorkDays: workDays,
	})
	if err != nil {
		return roster.ScheduleResponse{}, err
	}

	return mapScheduleToResponse(schedule), nil
}

// GetSchedule implements roster.Service.
func (s *rosterServiceImpl) GetSchedule(ctx context.Context, postID string, year, month int) (roster.ScheduleResponse, error) {
	schedule, err := s.scheduleRepo.GetByPostAndMonth(ctx, postID, year, month)
	if err != nil {
		return roster.ScheduleResponse{}, err
	}
	return mapScheduleToResponse(schedule), nil
}

// ClearSchedule implements roster.Service.
func (s *rosterServiceImpl) ClearSchedule(ctx context.Context, postID string, year, month int) error {
	return s.scheduleRepo.Delete(ctx, postID, year, month)
}

// ConfirmPresence implements roster.Service. Evicting the vacancy record and
// writing the confirmation happen in one transaction so the two overlays can
// never both hold a row for the same date.
func (s *rosterServiceImpl) ConfirmPresence(ctx context.Context, req roster.ConfirmPresenceRequest) (roster.DayMarkingResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.DayMarkingResponse{}, err
	}
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return roster.DayMarkingResponse{}, roster.ErrMarkingDateRequired
	}

	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		return roster.DayMarkingResponse{}, err
	}

	err := s.withTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.markingRepo.DeleteVacancy(txCtx, req.PostID, date); err != nil {
			return err
		}
		return s.markingRepo.UpsertPresence(txCtx, roster.PresenceConfirmation{
			PostID: req.PostID,
			Date:   date,
		})
	})
	if err != nil {
		return roster.DayMarkingResponse{}, err
	}

	return roster.DayMarkingResponse{
		PostID: req.PostID,
		Date:   req.Date,
		State:  string(roster.DayPresenceConfirmed),
	}, nil
}

// MarkVacant implements roster.Service. The mirror image of ConfirmPresence:
// the vacancy insert and the presence eviction share a transaction.
func (s *rosterServiceImpl) MarkVacant(ctx context.Context, req roster.MarkVacantRequest) (roster.DayMarkingResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.DayMarkingResponse{}, err
	}
	if validator.IsEmpty(req.ReasonCode) {
		return roster.DayMarkingResponse{}, roster.ErrReasonRequired
	}
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return roster.DayMarkingResponse{}, roster.ErrMarkingDateRequired
	}

	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		return roster.DayMarkingResponse{}, err
	}

	err := s.withTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.markingRepo.DeletePresence(txCtx, req.PostID, date); err != nil {
			return err
		}
		return s.markingRepo.InsertVacancy(txCtx, roster.VacancyRecord{
			PostID:     req.PostID,
			Date:       date,
			ReasonCode: req.ReasonCode,
			StaffID:    req.StaffID,
		})
	})
	if err != nil {
		return roster.DayMarkingResponse{}, err
	}

	return roster.DayMarkingResponse{
		PostID:     req.PostID,
		Date:       req.Date,
		State:      string(roster.DayVacant),
		ReasonCode: &req.ReasonCode,
		StaffID:    req.StaffID,
	}, nil
}

// GetCalendar implements roster.Service. It merges the generated schedule
// with both day-marking overlays into one per-date view. A marking wins over
// the plain schedule; an unmarked unscheduled day stays unmarked.
func (s *rosterServiceImpl) GetCalendar(ctx context.Context, postID string, year, month int) (roster.CalendarResponse, error) {
	if month < 1 || month > 12 {
		return roster.CalendarResponse{}, roster.ErrInvalidMonth
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return roster.CalendarResponse{}, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	daysInMonth := last.Day()

	scheduled := make(map[string]bool, daysInMonth)
	schedule, err := s.scheduleRepo.GetByPostAndMonth(ctx, postID, year, month)
	if err != nil && err != roster.ErrScheduleNotFound {
		return roster.CalendarResponse{}, err
	}
	for _, d := range schedule.WorkDays {
		scheduled[d.Format("2006-01-02")] = true
	}

	vacancies, err := s.markingRepo.ListVacancies(ctx, postID, first, last)
	if err != nil {
		return roster.CalendarResponse{}, err
	}
	vacantByDate := make(map[string]roster.VacancyRecord, len(vacancies))
	for _, v := range vacancies {
		vacantByDate[v.Date.Format("2006-01-02")] = v
	}

	presences, err := s.markingRepo.ListPresences(ctx, postID, first, last)
	if err != nil {
		return roster.CalendarResponse{}, err
	}
	presentByDate := make(map[string]bool, len(presences))
	for _, p := range presences {
		presentByDate[p.Date.Format("2006-01-02")] = true
	}

	days := make([]roster.CalendarDay, 0, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		key := first.AddDate(0, 0, i).Format("2006-01-02")

		day := roster.CalendarDay{
			Date:      key,
			Scheduled: scheduled[key],
			State:     string(roster.DayUnmarked),
		}
		switch {
		case presentByDate[key]:
			day.State = string(roster.DayPresenceConfirmed)
		case vacantByDate[key].PostID != "":
			v := vacantByDate[key]
			day.State = string(roster.DayVacant)
			day.ReasonCode = &v.ReasonCode
			day.StaffID = v.StaffID
		case scheduled[key]:
			day.State = string(roster.DayScheduled)
		}
		days = append(days, day)
	}

	return roster.CalendarResponse{
		PostID: postID,
		Month:  month,
		Year:   year,
		Days:   days,
	}, nil
}

func mapScheduleToResponse(schedule roster.MonthlySchedule) roster.ScheduleResponse {
	workDays := make([]string, 0, len(schedule.WorkDays))
	for _, d := range schedule.WorkDays {
		workDays = append(workDays, d.Format("2006-01-02"))
	}

	return roster.ScheduleResponse{
		ID:        schedule.ID,
		PostID:    schedule.PostID,
		Month:     schedule.Month,
		Year:      schedule.Year,
		WorkDays:  workDays,
		CreatedAt: schedule.CreatedAt.Format(time.RFC3339),
		UpdatedAt: schedule.UpdatedAt.Format(time.RFC3339),
	}
}
