package fireplan

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-7-1")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.July || d.Day() != 1 {
		t.Errorf("ParseDate(2026-7-1) = %s", d)
	}

	today, err := ParseDate("0d")
	if err != nil {
		t.Fatalf("ParseDate(0d) error = %v", err)
	}
	if today != Today() {
		t.Errorf("ParseDate(0d) = %s, want today", today)
	}

	if _, err := ParseDate("yesterday"); err == nil {
		t.Error("ParseDate accepted garbage")
	}
}

func TestDate_Add(t *testing.T) {
	d := NewDate(2026, time.December, 31).Add(1)
	if d != NewDate(2027, time.January, 1) {
		t.Errorf("Add(1) across year end = %s", d)
	}
}

func TestDate_Normalization(t *testing.T) {
	// day 0 normalizes to the last day of the previous month
	d := NewDate(2026, time.March, 0)
	if d != NewDate(2026, time.February, 28) {
		t.Errorf("NewDate(2026, March, 0) = %s, want 2026-02-28", d)
	}
}
