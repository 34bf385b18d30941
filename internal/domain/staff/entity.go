package staff

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
}

// Staff is one employee. PayrollRef and TimeclockRef are the identifiers the
// two external HR platforms know this person by; sync upserts key on them.
type Staff struct {
	ID           string
	FullName     string
	Status       Status
	PostID       *string
	PayrollRef   *string
	TimeclockRef *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// SyncSource names which external platform produced an upsert.
type SyncSource string

const (
	SourcePayroll   SyncSource = "payroll"
	SourceTimeclock SyncSource = "timeclock"
)
