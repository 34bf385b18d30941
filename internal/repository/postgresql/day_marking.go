package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/facilops/facil-backend-go/internal/domain/roster"
	"github.com/facilops/facil-backend-go/internal/pkg/database"
)

type dayMarkingRepositoryImpl struct {
	db *database.DB
}

func NewDayMarkingRepository(db *database.DB) roster.DayMarkingRepository {
	return &dayMarkingRepositoryImpl{db: db}
}

// InsertVacancy implements roster.DayMarkingRepository. A duplicate (post,
// date) insert is swallowed: the desired end state already holds.
func (r *dayMarkingRepositoryImpl) InsertVacancy(ctx context.Context, record roster.VacancyRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacancy_records (id, post_id, date, reason_code, staff_id, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		ON CONFLICT (post_id, date) DO NOTHING
	`
	_, err := q.Exec(ctx, query, record.PostID, record.Date, record.ReasonCode, record.StaffID)
	if err != nil {
		return fmt.Errorf("failed to insert vacancy record: %w", err)
	}
	return nil
}

// DeleteVacancy implements roster.DayMarkingRepository. Deleting a record
// that does not exist is not an error; the operations must stay idempotent.
func (r *dayMarkingRepositoryImpl) DeleteVacancy(ctx context.Context, postID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM vacancy_records
		WHERE post_id = $1 AND date = $2
	`
	if _, err := q.Exec(ctx, query, postID, date); err != nil {
		return fmt.Errorf("failed to delete vacancy record: %w", err)
	}
	return nil
}

// ListVacancies implements roster.DayMarkingRepository.
func (r *dayMarkingRepositoryImpl) ListVacancies(ctx context.Context, postID string, from, to time.Time) ([]roster.VacancyRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, post_id, date, reason_code, staff_id, created_at
		FROM vacancy_records
		WHERE post_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`
	rows, err := q.Query(ctx, query, postID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacancy records: %w", err)
	}
	defer rows.Close()

	var records []roster.VacancyRecord
	for rows.Next() {
		var rec roster.VacancyRecord
		if err := rows.Scan(&rec.ID, &rec.PostID, &rec.Date, &rec.ReasonCode, &rec.StaffID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vacancy record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vacancy records: %w", err)
	}

	return records, nil
}

// UpsertPresence implements roster.DayMarkingRepository.
func (r *dayMarkingRepositoryImpl) UpsertPresence(ctx context.Context, confirmation roster.PresenceConfirmation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO presence_confirmations (id, post_id, date, created_at)
		VALUES (uuidv7(), $1, $2, NOW())
		ON CONFLICT (post_id, date) DO NOTHING
	`
	if _, err := q.Exec(ctx, query, confirmation.PostID, confirmation.Date); err != nil {
		return fmt.Errorf("failed to upsert presence confirmation: %w", err)
	}
	return nil
}

// DeletePresence implements roster.DayMarkingRepository.
func (r *dayMarkingRepositoryImpl) DeletePresence(ctx context.Context, postID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM presence_confirmations
		WHERE post_id = $1 AND date = $2
	`
	if _, err := q.Exec(ctx, query, postID, date); err != nil {
		return fmt.Errorf("failed to delete presence confirmation: %w", err)
	}
	return nil
}

// ListPresences implements roster.DayMarkingRepository.
func (r *dayMarkingRepositoryImpl) ListPresences(ctx context.Context, postID string, from, to time.Time) ([]roster.PresenceConfirmation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, post_id, date, created_at
		FROM presence_confirmations
		WHERE post_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`
	rows, err := q.Query(ctx, query, postID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query presence confirmations: %w", err)
	}
	defer rows.Close()

	var confirmations []roster.PresenceConfirmation
	for rows.Next() {
		var pc roster.PresenceConfirmation
		if err := rows.Scan(&pc.ID, &pc.PostID, &pc.Date, &pc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan presence confirmation: %w", err)
		}
		confirmations = append(confirmations, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating presence confirmations: %w", err)
	}

	return confirmations, nil
}
