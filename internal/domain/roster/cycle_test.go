package roster

import (
	"errors"
	"testing"
)

func TestParseCycle(t *testing.T) {
	cases := []struct {
		input   string
		want    Cycle
		wantErr bool
	}{
		{"12x36", Cycle{12, 36}, false},
		{"5x2", Cycle{5, 2}, false},
		{"4x2", Cycle{4, 2}, false},
		{" 24x48 ", Cycle{24, 48}, false},
		{"", Cycle{}, true},
		{"12", Cycle{}, true},
		{"x36", Cycle{}, true},
		{"12x", Cycle{}, true},
		{"0x2", Cycle{}, true},
		{"5x0", Cycle{}, true},
		{"-1x2", Cycle{}, true},
		{"axb", Cycle{}, true},
	}
	for _, c := range cases {
		got, err := ParseCycle(c.input)
		if c.wantErr {
			if !errors.Is(err, ErrInvalidCycle) {
				t.Errorf("ParseCycle(%q) err = %v, want ErrInvalidCycle", c.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCycle(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseCycle(%q) = %+v, want %+v", c.input, got, c.want)
		}
	}
}

func TestCycleLength(t *testing.T) {
	if got := (Cycle{12, 36}).Length(); got != 48 {
		t.Errorf("Length() = %d, want 48", got)
	}
	if got := (Cycle{5, 2}).Length(); got != 7 {
		t.Errorf("Length() = %d, want 7", got)
	}
}
