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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateRange(t *testing.T) {
	if _, _, ok := IsValidDateRange("2024-01-01", "2024-01-31"); !ok {
		t.Errorf("IsValidDateRange(2024-01-01, 2024-01-31) = false, want true")
	}
	// Single-day ranges are allowed.
	if _, _, ok := IsValidDateRange("2024-01-01", "2024-01-01"); !ok {
		t.Errorf("IsValidDateRange(same day) = false, want true")
	}
	if _, _, ok := IsValidDateRange("2024-01-31", "2024-01-01"); ok {
		t.Errorf("IsValidDateRange(inverted) = true, want false")
	}
	if _, _, ok := IsValidDateRange("", "2024-01-01"); ok {
		t.Errorf("IsValidDateRange(empty start) = true, want false")
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP-0042", "1001", "bandidos-07"}
	invalid := []string{"", "A", "-EMP", "EMP 0042", "EMP_0042"}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}
