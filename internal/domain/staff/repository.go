package staff

import "context"

type Repository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	GetByExternalRef(ctx context.Context, source SyncSource, ref string) (Staff, error)
	List(ctx context.Context, filter StaffFilter) ([]Staff, int64, error)
	Update(ctx context.Context, req UpdateStaffRequest) (Staff, error)
	// UpsertFromSync inserts or updates a staff row keyed on the external
	// reference of the given source. Returns the row and whether it was
	// newly created.
	UpsertFromSync(ctx context.Context, req SyncUpsertRequest) (Staff, bool, error)
	SoftDelete(ctx context.Context, id string) error
}

type Service interface {
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	Get(ctx context.Context, id string) (StaffResponse, error)
	List(ctx context.Context, filter StaffFilter) (ListStaffResponse, error)
	Update(ctx context.Context, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, id string) error
}
