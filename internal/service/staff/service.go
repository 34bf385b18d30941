package staff

import (
	"context"
	"log/slog"
	"time"

	"github.com/facilops/facil-backend-go/internal/domain/post"
	"github.com/facilops/facil-backend-go/internal/domain/staff"
	"github.com/facilops/facil-backend-go/internal/pkg/database"
	"github.com/facilops/facil-backend-go/internal/pkg/sse"
)

type staffServiceImpl struct {
	db        *database.DB
	staffRepo staff.Repository
	postRepo  post.Repository
	hub       *sse.Hub
}

func NewStaffService(
	db *database.DB,
	staffRepo staff.Repository,
	postRepo post.Repository,
	hub *sse.Hub,
) staff.Service {
	return &staffServiceImpl{
		db:        db,
		staffRepo: staffRepo,
		postRepo:  postRepo,
		hub:       hub,
	}
}

// Create implements staff.Service.
func (s *staffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	if req.PostID != nil {
		if _, err := s.postRepo.GetByID(ctx, *req.PostID); err != nil {
			return staff.StaffResponse{}, err
		}
	}

	created, err := s.staffRepo.Create(ctx, staff.Staff{
		FullName:     req.FullName,
		Status:       staff.Status(req.Status),
		PostID:       req.PostID,
		PayrollRef:   req.PayrollRef,
		TimeclockRef: req.TimeclockRef,
	})
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if created.PostID != nil {
		go s.notifyOccupancyChanged(*created.PostID)
	}

	return mapStaffToResponse(created), nil
}

// Get implements staff.Service.
func (s *staffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	st, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return mapStaffToResponse(st), nil
}

// List implements staff.Service.
func (s *staffServiceImpl) List(ctx context.Context, filter staff.StaffFilter) (staff.ListStaffResponse, error) {
	if err := filter.Validate(); err != nil {
		return staff.ListStaffResponse{}, err
	}

	members, total, err := s.staffRepo.List(ctx, filter)
	if err != nil {
		return staff.ListStaffResponse{}, err
	}

	responses := make([]staff.StaffResponse, 0, len(members))
	for _, st := range members {
		responses = append(responses, mapStaffToResponse(st))
	}

	return staff.ListStaffResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Staff:      responses,
	}, nil
}

// Update implements staff.Service. Assignment changes affect the occupancy of
// both the previous and the new post, so both get a push.
func (s *staffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	if req.PostID != nil {
		if _, err := s.postRepo.GetByID(ctx, *req.PostID); err != nil {
			return staff.StaffResponse{}, err
		}
	}

	before, err := s.staffRepo.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	updated, err := s.staffRepo.Update(ctx, req)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	for _, postID := range affectedPosts(before, updated) {
		go s.notifyOccupancyChanged(postID)
	}

	return mapStaffToResponse(updated), nil
}

// Delete implements staff.Service.
func (s *staffServiceImpl) Delete(ctx context.Context, id string) error {
	st, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.staffRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	if st.PostID != nil {
		go s.notifyOccupancyChanged(*st.PostID)
	}

	return nil
}

// affectedPosts collects the distinct post IDs whose occupancy may have
// changed between two versions of a staff row.
func affectedPosts(before, after staff.Staff) []string {
	posts := make([]string, 0, 2)
	if before.PostID != nil {
		posts = append(posts, *before.PostID)
	}
	if after.PostID != nil && (before.PostID == nil || *after.PostID != *before.PostID) {
		posts = append(posts, *after.PostID)
	}
	return posts
}

// notifyOccupancyChanged recomputes occupancy for a post and pushes it to
// calendar subscribers. Failures are logged and dropped: the push is an
// optimization, not the source of truth.
func (s *staffServiceImpl) notifyOccupancyChanged(postID string) {
	// Nobody watching the post means nothing to push; skip the lookups.
	if s.hub.SubscriberCount(postID) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sp, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		slog.Warn("occupancy push skipped: post lookup failed", "post_id", postID, "error", err)
		return
	}
	assigned, err := s.postRepo.CountActiveStaff(ctx, postID)
	if err != nil {
		slog.Warn("occupancy push skipped: staff count failed", "post_id", postID, "error", err)
		return
	}

	s.hub.Publish(postID, sse.Event{
		PostID: postID,
		Event:  "occupancy_changed",
		Data: post.OccupancyResponse{
			PostID:            sp.ID,
			State:             string(post.Classify(sp.StaffingPolicy, sp.PlannedHeadcount, assigned)),
			RequiredHeadcount: post.RequiredHeadcount(sp.StaffingPolicy, sp.PlannedHeadcount),
			AssignedHeadcount: assigned,
		},
	})
}

func mapStaffToResponse(st staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		ID:           st.ID,
		FullName:     st.FullName,
		Status:       string(st.Status),
		PostID:       st.PostID,
		PayrollRef:   st.PayrollRef,
		TimeclockRef: st.TimeclockRef,
		CreatedAt:    st.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    st.UpdatedAt.Format(time.RFC3339),
	}
}
