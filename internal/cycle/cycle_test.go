package cycle

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestKey(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{date(2024, time.March, 15), "2024-03"},
		{date(2024, time.December, 31), "2024-12"},
		{date(2025, time.January, 1), "2025-01"},
	}
	for _, c := range cases {
		if got := Key(c.in); got != c.want {
			t.Errorf("Key(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSameMonth(t *testing.T) {
	if !SameMonth(date(2024, time.March, 1), date(2024, time.March, 31)) {
		t.Error("expected same month for two March 2024 dates")
	}
	if SameMonth(date(2024, time.February, 10), date(2024, time.March, 1)) {
		t.Error("expected different months for Feb and Mar")
	}
	// Same month number, different year.
	if SameMonth(date(2023, time.March, 15), date(2024, time.March, 15)) {
		t.Error("expected different cycles across years")
	}
}

func TestWindow(t *testing.T) {
	start, end := Window(date(2024, time.February, 15))
	if start.Day() != 1 || start.Month() != time.February {
		t.Errorf("unexpected window start: %v", start)
	}
	// 2024 is a leap year.
	if end.Day() != 29 || end.Month() != time.February {
		t.Errorf("unexpected window end: %v", end)
	}
	if !end.After(start) {
		t.Error("window end should be after start")
	}
}

func TestAddIsIdempotent(t *testing.T) {
	keys := Add(nil, "2024-03")
	keys = Add(keys, "2024-03")
	if len(keys) != 1 {
		t.Fatalf("expected 1 key after duplicate add, got %d", len(keys))
	}
	keys = Add(keys, "2024-04")
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
}

func TestAddDoesNotMutateInput(t *testing.T) {
	orig := []string{"2024-01"}
	_ = Add(orig, "2024-02")
	if len(orig) != 1 {
		t.Errorf("input slice was mutated: %v", orig)
	}
}

func TestRemove(t *testing.T) {
	keys := []string{"2024-01", "2024-02", "2024-03"}
	got := Remove(keys, "2024-02")
	if len(got) != 2 || Contains(got, "2024-02") {
		t.Errorf("unexpected result: %v", got)
	}
	// Removing an absent key is a no-op.
	got = Remove(got, "2024-12")
	if len(got) != 2 {
		t.Errorf("remove of absent key changed the set: %v", got)
	}
}
