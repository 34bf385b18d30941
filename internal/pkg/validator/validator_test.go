package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidCycleDescriptor(t *testing.T) {
	valid := []string{"12x36", "5x2", "4x2", "24x48", "1x1"}
	invalid := []string{"", "x", "12x", "x36", "0x2", "5x0", "12X36", "12x36x1", "abc", "5 x 2"}
	for _, s := range valid {
		if !IsValidCycleDescriptor(s) {
			t.Errorf("IsValidCycleDescriptor(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidCycleDescriptor(s) {
			t.Errorf("IsValidCycleDescriptor(%q) = true, want false", s)
		}
	}
}

func TestIsValidReasonCode(t *testing.T) {
	valid := []string{"ferias", "atestado", "falta_justificada", "no-show"}
	invalid := []string{"", "F", "Ferias", "1abc", "has space", "x"}
	for _, s := range valid {
		if !IsValidReasonCode(s) {
			t.Errorf("IsValidReasonCode(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidReasonCode(s) {
			t.Errorf("IsValidReasonCode(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	for m := 1; m <= 12; m++ {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = false, want true", m)
		}
	}
	for _, m := range []int{0, 13, -1, 100} {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = true, want false", m)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}
