package post

// OccupancyState is derived from required vs. actual headcount, never stored.
type OccupancyState string

const (
	OccupancyVacant  OccupancyState = "vacant"
	OccupancyPartial OccupancyState = "partial"
	OccupancyFull    OccupancyState = "full"
)

// RequiredHeadcount derives the headcount a post needs. A 12x36 rotation
// always takes four people regardless of the stored planned headcount.
func RequiredHeadcount(policy string, plannedHeadcount int) int {
	if policy == PolicyRotating1236 {
		return 4
	}
	if plannedHeadcount < 1 {
		return 1
	}
	return plannedHeadcount
}

// Classify returns the occupancy state of a post given its staffing policy,
// planned headcount and the count of currently active assigned staff.
//
// For 12x36 the state is binary: partial relief coverage is not meaningful
// for a rotating 4-person cycle, so anything below full headcount is vacant.
func Classify(policy string, plannedHeadcount, activeAssigned int) OccupancyState {
	required := RequiredHeadcount(policy, plannedHeadcount)

	if policy == PolicyRotating1236 {
		if activeAssigned >= required {
			return OccupancyFull
		}
		return OccupancyVacant
	}

	switch {
	case activeAssigned == 0:
		return OccupancyVacant
	case activeAssigned >= required:
		return OccupancyFull
	default:
		return OccupancyPartial
	}
}
