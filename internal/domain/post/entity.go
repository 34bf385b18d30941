package post

import "time"

// ServicePost is one staffed position at a site. The staffing policy is a
// cycle descriptor string ("12x36", "5x2", or any "<work>x<rest>" pair).
type ServicePost struct {
	ID               string
	SiteID           string
	Name             string
	StaffingPolicy   string
	PlannedHeadcount int
	// CycleAnchorDate fixes the start of the work/rest cycle for generic
	// descriptors. Unused for "5x2" and "12x36".
	CycleAnchorDate *time.Time
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// PolicyRotating1236 is the 4-person rotating relief policy. Its required
// headcount is fixed and its occupancy domain is binary (vacant/full).
const PolicyRotating1236 = "12x36"

// PolicyWeekdays52 schedules Monday through Friday, not a rolling 5-on/2-off.
const PolicyWeekdays52 = "5x2"

// Occupancy is the coverage classification of a post.
type Occupancy struct {
	PostID            string
	State             OccupancyState
	RequiredHeadcount int
	AssignedHeadcount int
}
