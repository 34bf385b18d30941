package roster

import (
	"strconv"
	"strings"
)

// Cycle is a parsed "<work>x<rest>" descriptor.
type Cycle struct {
	WorkDays int
	RestDays int
}

// Length is the full period of the repeating cycle.
func (c Cycle) Length() int {
	return c.WorkDays + c.RestDays
}

// ParseCycle parses a cycle descriptor such as "12x36" or "5x2". Both parts
// must be positive integers.
func ParseCycle(policy string) (Cycle, error) {
	parts := strings.SplitN(strings.TrimSpace(policy), "x", 2)
	if len(parts) != 2 {
		return Cycle{}, ErrInvalidCycle
	}

	work, err := strconv.Atoi(parts[0])
	if err != nil || work < 1 {
		return Cycle{}, ErrInvalidCycle
	}
	rest, err := strconv.Atoi(parts[1])
	if err != nil || rest < 1 {
		return Cycle{}, ErrInvalidCycle
	}

	return Cycle{WorkDays: work, RestDays: rest}, nil
}
