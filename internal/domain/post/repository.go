package post

import "context"

type Repository interface {
	Create(ctx context.Context, p ServicePost) (ServicePost, error)
	GetByID(ctx context.Context, id string) (ServicePost, error)
	List(ctx context.Context, filter PostFilter) ([]ServicePost, int64, error)
	Update(ctx context.Context, req UpdatePostRequest) (ServicePost, error)
	SoftDelete(ctx context.Context, id string) error
	// CountActiveStaff is the live assignment count the occupancy
	// classification is computed from.
	CountActiveStaff(ctx context.Context, postID string) (int, error)
}

type Service interface {
	Create(ctx context.Context, req CreatePostRequest) (PostResponse, error)
	Get(ctx context.Context, id string) (PostResponse, error)
	List(ctx context.Context, filter PostFilter) (ListPostsResponse, error)
	Update(ctx context.Context, req UpdatePostRequest) (PostResponse, error)
	Delete(ctx context.Context, id string) error
	GetOccupancy(ctx context.Context, id string) (OccupancyResponse, error)
}
