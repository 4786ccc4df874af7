package puzzle

import (
	"testing"
	"time"
)

func TestDateAndNumberOnAgree(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	n := NumberOn(day)
	if n != 1360 {
		t.Fatalf("expected puzzle 1360 on %s, got %d", day.Format(dateLayout), n)
	}
	if got := Date(n); !got.Equal(day) {
		t.Fatalf("expected %s, got %s", day, got)
	}
	if NumberOn(Epoch) != 0 {
		t.Fatalf("expected epoch to be puzzle 0")
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 4, 0, 0, time.UTC)
	cases := map[string]string{
		"":           "2025-03-10",
		"2025-03-01": "2025-03-01",
		"yesterday":  "2025-03-09",
	}
	for input, want := range cases {
		got, err := ParseDate(input, now)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if FormatDate(got) != want {
			t.Fatalf("parse %q: expected %s, got %s", input, want, FormatDate(got))
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("qwerty", time.Now()); err == nil {
		t.Fatalf("expected error for garbage date")
	}
}

func TestFormatDateZero(t *testing.T) {
	if FormatDate(time.Time{}) != "" {
		t.Fatalf("expected empty string for zero time")
	}
}
