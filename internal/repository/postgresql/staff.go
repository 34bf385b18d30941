package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/facilops/facil-backend-go/internal/domain/staff"
	"github.com/facilops/facil-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.Repository {
	return &staffRepositoryImpl{db: db}
}

// Create implements staff.Repository.
func (s *staffRepositoryImpl) Create(ctx context.Context, st staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO staff (
			id, full_name, status, post_id, payroll_ref, timeclock_ref, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		st.FullName, st.Status, st.PostID, st.PayrollRef, st.TimeclockRef,
	).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)

	if err != nil {
		return staff.Staff{}, err
	}

	return st, nil
}

// GetByID implements staff.Repository.
func (s *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, s.db)
	query := `
		SELECT id, full_name, status, post_id, payroll_ref, timeclock_ref, created_at, updated_at
		FROM staff
		WHERE id = $1 AND deleted_at IS NULL
	`

	var st staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&st.ID, &st.FullName, &st.Status, &st.PostID, &st.PayrollRef, &st.TimeclockRef,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return st, nil
}

// GetByExternalRef implements staff.Repository.
func (s *staffRepositoryImpl) GetByExternalRef(ctx context.Context, source staff.SyncSource, ref string) (staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	column := "payroll_ref"
	if source == staff.SourceTimeclock {
		column = "timeclock_ref"
	}

	query := fmt.Sprintf(`
		SELECT id, full_name, status, post_id, payroll_ref, timeclock_ref, created_at, updated_at
		FROM staff
		WHERE %s = $1 AND deleted_at IS NULL
	`, column)

	var st staff.Staff
	err := q.QueryRow(ctx, query, ref).Scan(
		&st.ID, &st.FullName, &st.Status, &st.PostID, &st.PayrollRef, &st.TimeclockRef,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff member by external ref: %w", err)
	}

	return st, nil
}

// List implements staff.Repository.
func (s *staffRepositoryImpl) List(ctx context.Context, filter staff.StaffFilter) ([]staff.Staff, int64, error) {
	q := GetQuerier(ctx, s.db)

	baseWhere := "deleted_at IS NULL"
	args := []interface{}{}
	argIdx := 1

	if filter.PostID != nil && *filter.PostID != "" {
		baseWhere += fmt.Sprintf(" AND post_id = $%d", argIdx)
		args = append(args, *filter.PostID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Name != nil && *filter.Name != "" {
		baseWhere += fmt.Sprintf(" AND full_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM staff WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT id, full_name, status, post_id, payroll_ref, timeclock_ref, created_at, updated_at
		FROM staff
		WHERE %s
		ORDER BY full_name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var members []staff.Staff
	for rows.Next() {
		var st staff.Staff
		if err := rows.Scan(
			&st.ID, &st.FullName, &st.Status, &st.PostID, &st.PayrollRef, &st.TimeclockRef,
			&st.CreatedAt, &st.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, st)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating staff rows: %w", err)
	}

	return members, total, nil
}

// Update implements staff.Repository.
func (s *staffRepositoryImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.FullName != nil {
		updates = append(updates, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.PostID != nil {
		updates = append(updates, fmt.Sprintf("post_id = $%d", argIdx))
		args = append(args, *req.PostID)
		argIdx++
	}
	if req.ClearPost {
		updates = append(updates, "post_id = NULL")
	}

	if len(updates) == 0 {
		return staff.Staff{}, fmt.Errorf("no updatable fields provided for staff update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)

	query := "UPDATE staff SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL RETURNING id, full_name, status, post_id, payroll_ref, timeclock_ref, created_at, updated_at", argIdx)

	var st staff.Staff
	err := q.QueryRow(ctx, query, args...).Scan(
		&st.ID, &st.FullName, &st.Status, &st.PostID, &st.PayrollRef, &st.TimeclockRef,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to update staff member: %w", err)
	}

	return st, nil
}

// UpsertFromSync implements staff.Repository.
func (s *staffRepositoryImpl) UpsertFromSync(ctx context.Context, req staff.SyncUpsertRequest) (staff.Staff, bool, error) {
	q := GetQuerier(ctx, s.db)

	column := "payroll_ref"
	if req.Source == staff.SourceTimeclock {
		column = "timeclock_ref"
	}

	status := staff.StatusActive
	if !req.Active {
		status = staff.StatusInactive
	}

	// ON CONFLICT keys on the provider reference column so repeated webhook
	// deliveries and the cron re-sync converge on one row.
	query := fmt.Sprintf(`
		INSERT INTO staff (id, full_name, status, %s, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		ON CONFLICT (%s) WHERE deleted_at IS NULL
		DO UPDATE SET full_name = EXCLUDED.full_name, status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, full_name, status, post_id, payroll_ref, timeclock_ref, created_at, updated_at,
			(xmax = 0) AS inserted
	`, column, column)

	var st staff.Staff
	var inserted bool
	err := q.QueryRow(ctx, query, req.FullName, status, req.ExternalRef).Scan(
		&st.ID, &st.FullName, &st.Status, &st.PostID, &st.PayrollRef, &st.TimeclockRef,
		&st.CreatedAt, &st.UpdatedAt, &inserted,
	)
	if err != nil {
		return staff.Staff{}, false, fmt.Errorf("failed to upsert staff from sync: %w", err)
	}

	return st, inserted, nil
}

// SoftDelete implements staff.Repository.
func (s *staffRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)
	query := `
		UPDATE staff
		SET deleted_at = NOW(), post_id = NULL
		WHERE id = $1 AND deleted_at IS NULL
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete staff member: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return staff.ErrStaffNotFound
	}
	return nil
}
