package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUIDv7 validation. Storage generates all row IDs with uuidv7(), so
// anything of another version cannot reference a row.
func IsValidUUID(s string) bool {
	// uuid.Parse also accepts urn: and undashed forms; only the canonical
	// 36-character form is valid here.
	if len(s) != 36 {
		return false
	}
	id, err := uuid.Parse(s)
	return err == nil && id.Version() == 7
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Cycle descriptor: "<work>x<rest>" with positive integers, e.g. "12x36" or "5x2".
var cycleRegex = regexp.MustCompile(`^[1-9][0-9]*x[1-9][0-9]*$`)

func IsValidCycleDescriptor(s string) bool {
	return cycleRegex.MatchString(s)
}

// Reason codes are short lowercase slugs, e.g. "ferias", "atestado", "falta".
var reasonCodeRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]{1,39}$`)

func IsValidReasonCode(s string) bool {
	return reasonCodeRegex.MatchString(s)
}

// Month validation (1-12)
func IsValidMonth(m int) bool {
	return m >= 1 && m <= 12
}

// Year validation, kept to a sane operational window
func IsValidYear(y int) bool {
	return y >= 2000 && y <= 2100
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
