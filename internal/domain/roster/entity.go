package roster

import "time"

// MonthlySchedule is the generated set of work dates for one post in one
// month. At most one row exists per (post, month, year); regeneration
// overwrites the work-day set.
type MonthlySchedule struct {
	ID        string
	PostID    string
	Month     int // 1-12
	Year      int
	WorkDays  []time.Time // ascending, date-only
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VacancyRecord marks a post as uncovered on one date. At most one record
// exists per (post, date).
type VacancyRecord struct {
	ID         string
	PostID     string
	Date       time.Time
	ReasonCode string
	StaffID    *string // absent staff member, when known
	CreatedAt  time.Time
}

// PresenceConfirmation marks a post as covered on one date. Confirming
// presence evicts any vacancy record for the same date, and vice versa.
type PresenceConfirmation struct {
	ID        string
	PostID    string
	Date      time.Time
	CreatedAt time.Time
}

// DayState is the merged per-date disposition rendered on the calendar.
type DayState string

const (
	DayUnmarked          DayState = "unmarked"
	DayScheduled         DayState = "scheduled"
	DayPresenceConfirmed DayState = "presence-confirmed"
	DayVacant            DayState = "vacant"
)
