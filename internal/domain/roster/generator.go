package roster

import (
	"time"

	"github.com/facilops/facil-backend-go/internal/domain/post"
)

// GenerateWorkDays computes the scheduled work dates of one month for a post.
//
// Policy handling:
//   - "5x2" is a fixed Monday-Friday week, not a rolling 5-on/2-off cycle.
//   - "12x36" covers every day of the month: the four-person rotation keeps
//     the post staffed daily even though no individual works daily.
//   - Any other <work>x<rest> pair repeats with period work+rest, anchored at
//     the post's persisted cycle anchor date. The anchor is required so that
//     regenerating on a different calendar day yields the same schedule.
//
// Generation is refused for a vacant post; a schedule is meaningless with no
// one assigned.
func GenerateWorkDays(policy string, anchor *time.Time, year, month int, occupancy post.OccupancyState) ([]time.Time, error) {
	if !validMonth(month) {
		return nil, ErrInvalidMonth
	}
	if occupancy == post.OccupancyVacant {
		return nil, ErrVacantPost
	}

	cycle, err := ParseCycle(policy)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	switch {
	case cycle.WorkDays == 5 && cycle.RestDays == 2:
		return weekdaysOf(first, daysInMonth), nil
	case cycle.WorkDays == 12 && cycle.RestDays == 36:
		return allDaysOf(first, daysInMonth), nil
	default:
		if anchor == nil {
			return nil, ErrAnchorRequired
		}
		return cyclicDaysOf(first, daysInMonth, cycle, *anchor), nil
	}
}

func weekdaysOf(first time.Time, daysInMonth int) []time.Time {
	days := make([]time.Time, 0, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		d := first.AddDate(0, 0, i)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, d)
		}
	}
	return days
}

func allDaysOf(first time.Time, daysInMonth int) []time.Time {
	days := make([]time.Time, 0, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}

func cyclicDaysOf(first time.Time, daysInMonth int, cycle Cycle, anchor time.Time) []time.Time {
	anchorDay := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	period := cycle.Length()

	days := make([]time.Time, 0, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		d := first.AddDate(0, 0, i)
		offset := daysBetween(anchorDay, d) % period
		if offset < 0 {
			offset += period
		}
		if offset < cycle.WorkDays {
			days = append(days, d)
		}
	}
	return days
}

// daysBetween counts whole days from a to b; negative when b precedes a.
// Both inputs are UTC midnights, so the division is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

func validMonth(m int) bool {
	return m >= 1 && m <= 12
}
