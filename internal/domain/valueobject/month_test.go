// Package valueobject holds small immutable domain values.
package valueobject

import "testing"

func TestValidMonth(t *testing.T) {
	valid := []int{1, 6, 12}
	for _, m := range valid {
		if !ValidMonth(m) {
			t.Errorf("expected month %d to be valid", m)
		}
	}

	invalid := []int{0, 13, -1}
	for _, m := range invalid {
		if ValidMonth(m) {
			t.Errorf("expected month %d to be invalid", m)
		}
	}
}

func TestMonthName(t *testing.T) {
	t.Run("returns the English name", func(t *testing.T) {
		if got := MonthName(1); got != "January" {
			t.Errorf("expected 'January', got %q", got)
		}
		if got := MonthName(12); got != "December" {
			t.Errorf("expected 'December', got %q", got)
		}
	})

	t.Run("returns empty for out-of-range months", func(t *testing.T) {
		if got := MonthName(0); got != "" {
			t.Errorf("expected empty name, got %q", got)
		}
		if got := MonthName(13); got != "" {
			t.Errorf("expected empty name, got %q", got)
		}
	})
}

func TestMonthNameES(t *testing.T) {
	if got := MonthNameES(1); got != "Enero" {
		t.Errorf("expected 'Enero', got %q", got)
	}
	if got := MonthNameES(13); got != "" {
		t.Errorf("expected empty name, got %q", got)
	}
}
