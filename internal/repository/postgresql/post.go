package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/facilops/facil-backend-go/internal/domain/post"
	"github.com/facilops/facil-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type postRepositoryImpl struct {
	db *database.DB
}

func NewPostRepository(db *database.DB) post.Repository {
	return &postRepositoryImpl{db: db}
}

// Create implements post.Repository.
func (p *postRepositoryImpl) Create(ctx context.Context, sp post.ServicePost) (post.ServicePost, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO service_posts (
			id, site_id, name, staffing_policy, planned_headcount, cycle_anchor_date, active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sp.SiteID, sp.Name, sp.StaffingPolicy, sp.PlannedHeadcount, sp.CycleAnchorDate, sp.Active,
	).Scan(&sp.ID, &sp.CreatedAt, &sp.UpdatedAt)

	if err != nil {
		return post.ServicePost{}, err
	}

	return sp, nil
}

// GetByID implements post.Repository.
func (p *postRepositoryImpl) GetByID(ctx context.Context, id string) (post.ServicePost, error) {
	q := GetQuerier(ctx, p.db)
	query := `
		SELECT id, site_id, name, staffing_policy, planned_headcount, cycle_anchor_date, active, created_at, updated_at
		FROM service_posts
		WHERE id = $1 AND deleted_at IS NULL
	`

	var sp post.ServicePost
	err := q.QueryRow(ctx, query, id).Scan(
		&sp.ID, &sp.SiteID, &sp.Name, &sp.StaffingPolicy, &sp.PlannedHeadcount,
		&sp.CycleAnchorDate, &sp.Active, &sp.CreatedAt, &sp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return post.ServicePost{}, post.ErrPostNotFound
		}
		return post.ServicePost{}, fmt.Errorf("failed to get service post: %w", err)
	}

	return sp, nil
}

// List implements post.Repository.
func (p *postRepositoryImpl) List(ctx context.Context, filter post.PostFilter) ([]post.ServicePost, int64, error) {
	q := GetQuerier(ctx, p.db)

	// Build WHERE with parameterized args
	baseWhere := "deleted_at IS NULL"
	args := []interface{}{}
	argIdx := 1

	if filter.SiteID != nil && *filter.SiteID != "" {
		baseWhere += fmt.Sprintf(" AND site_id = $%d", argIdx)
		args = append(args, *filter.SiteID)
		argIdx++
	}
	if filter.Name != nil && *filter.Name != "" {
		baseWhere += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.Active != nil {
		baseWhere += fmt.Sprintf(" AND active = $%d", argIdx)
		args = append(args, *filter.Active)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM service_posts WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count service posts: %w", err)
	}

	orderByField := "name"
	switch filter.SortBy {
	case "created_at":
		orderByField = "created_at"
	case "updated_at":
		orderByField = "updated_at"
	}
	sortOrder := "ASC"
	if strings.ToLower(filter.SortOrder) == "desc" {
		sortOrder = "DESC"
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT id, site_id, name, staffing_policy, planned_headcount, cycle_anchor_date, active, created_at, updated_at
		FROM service_posts
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query service posts: %w", err)
	}
	defer rows.Close()

	var posts []post.ServicePost
	for rows.Next() {
		var sp post.ServicePost
		if err := rows.Scan(
			&sp.ID, &sp.SiteID, &sp.Name, &sp.StaffingPolicy, &sp.PlannedHeadcount,
			&sp.CycleAnchorDate, &sp.Active, &sp.CreatedAt, &sp.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan service post: %w", err)
		}
		posts = append(posts, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating service posts: %w", err)
	}

	return posts, total, nil
}

// Update implements post.Repository.
func (p *postRepositoryImpl) Update(ctx context.Context, req post.UpdatePostRequest) (post.ServicePost, error) {
	q := GetQuerier(ctx, p.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.StaffingPolicy != nil {
		updates = append(updates, fmt.Sprintf("staffing_policy = $%d", argIdx))
		args = append(args, *req.StaffingPolicy)
		argIdx++
	}
	if req.PlannedHeadcount != nil {
		updates = append(updates, fmt.Sprintf("planned_headcount = $%d", argIdx))
		args = append(args, *req.PlannedHeadcount)
		argIdx++
	}
	if req.CycleAnchorDate != nil {
		anchor, err := time.Parse("2006-01-02", *req.CycleAnchorDate)
		if err != nil {
			return post.ServicePost{}, post.ErrInvalidRequestData
		}
		updates = append(updates, fmt.Sprintf("cycle_anchor_date = $%d", argIdx))
		args = append(args, anchor)
		argIdx++
	}
	if req.Active != nil {
		updates = append(updates, fmt.Sprintf("active = $%d", argIdx))
		args = append(args, *req.Active)
		argIdx++
	}

	if len(updates) == 0 {
		return post.ServicePost{}, fmt.Errorf("no updatable fields provided for service post update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)

	query := "UPDATE service_posts SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL RETURNING id, site_id, name, staffing_policy, planned_headcount, cycle_anchor_date, active, created_at, updated_at", argIdx)

	var sp post.ServicePost
	err := q.QueryRow(ctx, query, args...).Scan(
		&sp.ID, &sp.SiteID, &sp.Name, &sp.StaffingPolicy, &sp.PlannedHeadcount,
		&sp.CycleAnchorDate, &sp.Active, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return post.ServicePost{}, post.ErrPostNotFound
		}
		return post.ServicePost{}, fmt.Errorf("failed to update service post: %w", err)
	}

	return sp, nil
}

// SoftDelete implements post.Repository.
func (p *postRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)
	query := `
		UPDATE service_posts
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete service post: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return post.ErrPostAlreadyDeleted
	}
	return nil
}

// CountActiveStaff implements post.Repository.
func (p *postRepositoryImpl) CountActiveStaff(ctx context.Context, postID string) (int, error) {
	q := GetQuerier(ctx, p.db)
	query := `
		SELECT COUNT(*)
		FROM staff
		WHERE post_id = $1 AND status = 'active' AND deleted_at IS NULL
	`

	var count int
	if err := q.QueryRow(ctx, query, postID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active staff: %w", err)
	}
	return count, nil
}
