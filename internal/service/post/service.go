package post

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/facilops/facil-backend-go/internal/domain/post"
	"github.com/facilops/facil-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

type postServiceImpl struct {
	db       *database.DB
	postRepo post.Repository
}

func NewPostService(db *database.DB, postRepo post.Repository) post.Service {
	return &postServiceImpl{
		db:       db,
		postRepo: postRepo,
	}
}

// Create implements post.Service.
func (s *postServiceImpl) Create(ctx context.Context, req post.CreatePostRequest) (post.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return post.PostResponse{}, err
	}

	planned := 1
	if req.PlannedHeadcount != nil {
		planned = *req.PlannedHeadcount
	}

	var anchor *time.Time
	if req.CycleAnchorDate != nil {
		t, err := time.Parse("2006-01-02", *req.CycleAnchorDate)
		if err != nil {
			return post.PostResponse{}, post.ErrInvalidRequestData
		}
		anchor = &t
	}

	sp := post.ServicePost{
		SiteID:           req.SiteID,
		Name:             req.Name,
		StaffingPolicy:   req.StaffingPolicy,
		PlannedHeadcount: planned,
		CycleAnchorDate:  anchor,
		Active:           true,
	}

	created, err := s.postRepo.Create(ctx, sp)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return post.PostResponse{}, post.ErrPostNameExists
		}
		return post.PostResponse{}, fmt.Errorf("failed to create service post: %w", err)
	}

	return mapPostToResponse(created), nil
}

// Get implements post.Service.
func (s *postServiceImpl) Get(ctx context.Context, id string) (post.PostResponse, error) {
	sp, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return post.PostResponse{}, err
	}
	return mapPostToResponse(sp), nil
}

// List implements post.Service.
func (s *postServiceImpl) List(ctx context.Context, filter post.PostFilter) (post.ListPostsResponse, error) {
	if err := filter.Validate(); err != nil {
		return post.ListPostsResponse{}, err
	}

	posts, total, err := s.postRepo.List(ctx, filter)
	if err != nil {
		return post.ListPostsResponse{}, fmt.Errorf("failed to list service posts: %w", err)
	}

	responses := make([]post.PostResponse, 0, len(posts))
	for _, sp := range posts {
		responses = append(responses, mapPostToResponse(sp))
	}

	return post.ListPostsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Posts:      responses,
	}, nil
}

// Update implements post.Service.
func (s *postServiceImpl) Update(ctx context.Context, req post.UpdatePostRequest) (post.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return post.PostResponse{}, err
	}

	updated, err := s.postRepo.Update(ctx, req)
	if err != nil {
		return post.PostResponse{}, err
	}

	return mapPostToResponse(updated), nil
}

// Delete implements post.Service.
func (s *postServiceImpl) Delete(ctx context.Context, id string) error {
	return s.postRepo.SoftDelete(ctx, id)
}

// GetOccupancy implements post.Service. Occupancy is derived from the live
// assignment count on every call, never stored.
func (s *postServiceImpl) GetOccupancy(ctx context.Context, id string) (post.OccupancyResponse, error) {
	sp, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return post.OccupancyResponse{}, err
	}

	assigned, err := s.postRepo.CountActiveStaff(ctx, id)
	if err != nil {
		return post.OccupancyResponse{}, fmt.Errorf("failed to count active staff: %w", err)
	}

	return post.OccupancyResponse{
		PostID:            sp.ID,
		State:             string(post.Classify(sp.StaffingPolicy, sp.PlannedHeadcount, assigned)),
		RequiredHeadcount: post.RequiredHeadcount(sp.StaffingPolicy, sp.PlannedHeadcount),
		AssignedHeadcount: assigned,
	}, nil
}

func mapPostToResponse(sp post.ServicePost) post.PostResponse {
	resp := post.PostResponse{
		ID:               sp.ID,
		SiteID:           sp.SiteID,
		Name:             sp.Name,
		StaffingPolicy:   sp.StaffingPolicy,
		PlannedHeadcount: sp.PlannedHeadcount,
		Active:           sp.Active,
		CreatedAt:        sp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        sp.UpdatedAt.Format(time.RFC3339),
	}
	if sp.CycleAnchorDate != nil {
		anchor := sp.CycleAnchorDate.Format("2006-01-02")
		resp.CycleAnchorDate = &anchor
	}
	return resp
}
