package roster

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	// Upsert writes the generated work-day set keyed on (post, month, year).
	// A conflicting row is overwritten, never appended to.
	Upsert(ctx context.Context, schedule MonthlySchedule) (MonthlySchedule, error)
	GetByPostAndMonth(ctx context.Context, postID string, year, month int) (MonthlySchedule, error)
	Delete(ctx context.Context, postID string, year, month int) error
}

type DayMarkingRepository interface {
	// InsertVacancy inserts a vacancy record for (post, date). A duplicate
	// key is not an error: the desired end state already holds.
	InsertVacancy(ctx context.Context, record VacancyRecord) error
	DeleteVacancy(ctx context.Context, postID string, date time.Time) error
	ListVacancies(ctx context.Context, postID string, from, to time.Time) ([]VacancyRecord, error)

	// UpsertPresence inserts a presence confirmation for (post, date),
	// ignoring a duplicate.
	UpsertPresence(ctx context.Context, confirmation PresenceConfirmation) error
	DeletePresence(ctx context.Context, postID string, date time.Time) error
	ListPresences(ctx context.Context, postID string, from, to time.Time) ([]PresenceConfirmation, error)
}

type Service interface {
	Generate(ctx context.Context, req GenerateScheduleRequest) (ScheduleResponse, error)
	GetSchedule(ctx context.Context, postID string, year, month int) (ScheduleResponse, error)
	ClearSchedule(ctx context.Context, postID string, year, month int) error

	ConfirmPresence(ctx context.Context, req ConfirmPresenceRequest) (DayMarkingResponse, error)
	MarkVacant(ctx context.Context, req MarkVacantRequest) (DayMarkingResponse, error)

	GetCalendar(ctx context.Context, postID string, year, month int) (CalendarResponse, error)
}
