package roster

import (
	"errors"
	"testing"
	"time"

	"github.com/facilops/facil-backend-go/internal/domain/post"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateWorkDays_Weekdays52(t *testing.T) {
	// January 2025: 31 days starting on a Wednesday. The expected set is
	// enumerated, not derived from a formula.
	days, err := GenerateWorkDays("5x2", nil, 2025, 1, post.OccupancyPartial)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	weekends := map[int]bool{4: true, 5: true, 11: true, 12: true, 18: true, 19: true, 25: true, 26: true}
	var expected []time.Time
	for d := 1; d <= 31; d++ {
		if !weekends[d] {
			expected = append(expected, date(2025, time.January, d))
		}
	}

	if len(days) != 23 {
		t.Fatalf("got %d work days, want 23", len(days))
	}
	for i, d := range days {
		if !d.Equal(expected[i]) {
			t.Errorf("days[%d] = %v, want %v", i, d, expected[i])
		}
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("days[%d] = %v falls on a weekend", i, d)
		}
	}
}

func TestGenerateWorkDays_Rotating1236(t *testing.T) {
	// 12x36 covers the post every single day of the month.
	cases := []struct {
		year, month, want int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29},
		{2025, 4, 30},
	}
	for _, c := range cases {
		days, err := GenerateWorkDays("12x36", nil, c.year, c.month, post.OccupancyFull)
		if err != nil {
			t.Fatalf("GenerateWorkDays(12x36, %d-%02d): %v", c.year, c.month, err)
		}
		if len(days) != c.want {
			t.Errorf("%d-%02d: got %d days, want %d", c.year, c.month, len(days), c.want)
		}
		for i, d := range days {
			if d.Day() != i+1 {
				t.Errorf("%d-%02d: days[%d].Day() = %d, want %d", c.year, c.month, i, d.Day(), i+1)
			}
		}
	}
}

func TestGenerateWorkDays_VacantPostRejected(t *testing.T) {
	for _, policy := range []string{"5x2", "12x36", "4x2"} {
		anchor := date(2025, time.January, 1)
		_, err := GenerateWorkDays(policy, &anchor, 2025, 1, post.OccupancyVacant)
		if !errors.Is(err, ErrVacantPost) {
			t.Errorf("GenerateWorkDays(%q, vacant) err = %v, want ErrVacantPost", policy, err)
		}
	}
}

func TestGenerateWorkDays_GenericCycleAnchored(t *testing.T) {
	// 4 on / 2 off anchored at the first of the month: blocks of four work
	// days separated by two rest days, wrapping at day 31.
	anchor := date(2025, time.January, 1)
	days, err := GenerateWorkDays("4x2", &anchor, 2025, 1, post.OccupancyFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var want []time.Time
	for _, d := range []int{1, 2, 3, 4, 7, 8, 9, 10, 13, 14, 15, 16, 19, 20, 21, 22, 25, 26, 27, 28, 31} {
		want = append(want, date(2025, time.January, d))
	}
	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d", len(days), len(want))
	}
	for i := range want {
		if !days[i].Equal(want[i]) {
			t.Errorf("days[%d] = %v, want %v", i, days[i], want[i])
		}
	}
}

func TestGenerateWorkDays_AnchorAfterMonth(t *testing.T) {
	// The cycle extends backwards from the anchor: a 1x1 cycle anchored in
	// February still alternates correctly across January.
	anchor := date(2025, time.February, 3)
	days, err := GenerateWorkDays("1x1", &anchor, 2025, 1, post.OccupancyFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range days {
		diff := int(anchor.Sub(d) / (24 * time.Hour))
		if diff%2 != 0 {
			t.Errorf("%v included but is an odd distance (%d) from the anchor", d, diff)
		}
	}
	// Even distances land on the even days of January: 2, 4, ..., 30.
	if len(days) != 15 {
		t.Errorf("got %d days, want 15", len(days))
	}
}

func TestGenerateWorkDays_PureAcrossCalls(t *testing.T) {
	// Same inputs produce the same schedule regardless of when generation
	// runs; the anchor, not the current day, fixes the cycle position.
	anchor := date(2024, time.June, 15)
	first, err := GenerateWorkDays("6x3", &anchor, 2025, 3, post.OccupancyFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := GenerateWorkDays("6x3", &anchor, 2025, 3, post.OccupancyFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("run mismatch at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGenerateWorkDays_GenericWithoutAnchor(t *testing.T) {
	_, err := GenerateWorkDays("4x2", nil, 2025, 1, post.OccupancyFull)
	if !errors.Is(err, ErrAnchorRequired) {
		t.Errorf("err = %v, want ErrAnchorRequired", err)
	}
}

func TestGenerateWorkDays_InvalidInputs(t *testing.T) {
	if _, err := GenerateWorkDays("notacycle", nil, 2025, 1, post.OccupancyFull); !errors.Is(err, ErrInvalidCycle) {
		t.Errorf("err = %v, want ErrInvalidCycle", err)
	}
	if _, err := GenerateWorkDays("5x2", nil, 2025, 13, post.OccupancyFull); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("err = %v, want ErrInvalidMonth", err)
	}
	if _, err := GenerateWorkDays("5x2", nil, 2025, 0, post.OccupancyFull); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("err = %v, want ErrInvalidMonth", err)
	}
}

func TestGenerateWorkDays_Ascending(t *testing.T) {
	anchor := date(2025, time.January, 10)
	for _, policy := range []string{"5x2", "12x36", "4x2"} {
		days, err := GenerateWorkDays(policy, &anchor, 2025, 1, post.OccupancyFull)
		if err != nil {
			t.Fatalf("GenerateWorkDays(%q): %v", policy, err)
		}
		for i := 1; i < len(days); i++ {
			if !days[i-1].Before(days[i]) {
				t.Errorf("%q: days not strictly ascending at %d", policy, i)
			}
		}
	}
}
