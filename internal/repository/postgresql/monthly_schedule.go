package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/facilops/facil-backend-go/internal/domain/roster"
	"github.com/facilops/facil-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) roster.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// Upsert implements roster.ScheduleRepository. The unique key on
// (post_id, month, year) makes regeneration overwrite, never append.
func (r *scheduleRepositoryImpl) Upsert(ctx context.Context, schedule roster.MonthlySchedule) (roster.MonthlySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_schedules (id, post_id, month, year, work_days, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (post_id, month, year)
		DO UPDATE SET work_days = EXCLUDED.work_days, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	workDays := make([]time.Time, len(schedule.WorkDays))
	copy(workDays, schedule.WorkDays)

	err := q.QueryRow(ctx, query,
		schedule.PostID, schedule.Month, schedule.Year, workDays,
	).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)

	if err != nil {
		return roster.MonthlySchedule{}, fmt.Errorf("failed to upsert monthly schedule: %w", err)
	}

	return schedule, nil
}

// GetByPostAndMonth implements roster.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByPostAndMonth(ctx context.Context, postID string, year, month int) (roster.MonthlySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, post_id, month, year, work_days, created_at, updated_at
		FROM monthly_schedules
		WHERE post_id = $1 AND year = $2 AND month = $3
	`

	var schedule roster.MonthlySchedule
	err := q.QueryRow(ctx, query, postID, year, month).Scan(
		&schedule.ID, &schedule.PostID, &schedule.Month, &schedule.Year,
		&schedule.WorkDays, &schedule.CreatedAt, &schedule.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return roster.MonthlySchedule{}, roster.ErrScheduleNotFound
		}
		return roster.MonthlySchedule{}, fmt.Errorf("failed to get monthly schedule: %w", err)
	}

	return schedule, nil
}

// Delete implements roster.ScheduleRepository.
func (r *scheduleRepositoryImpl) Delete(ctx context.Context, postID string, year, month int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM monthly_schedules
		WHERE post_id = $1 AND year = $2 AND month = $3
	`
	commandTag, err := q.Exec(ctx, query, postID, year, month)
	if err != nil {
		return fmt.Errorf("failed to delete monthly schedule: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return roster.ErrScheduleNotFound
	}
	return nil
}
