package datemath

import "testing"

func TestIsLeap(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{1900, false},
		{1904, true},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
	}
	for _, c := range cases {
		if got := IsLeap(c.year); got != c.want {
			t.Errorf("IsLeap(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}

func TestWeekday(t *testing.T) {
	cases := []struct {
		year, month, day int
		want             int
	}{
		{2024, 1, 1, 0},  // Monday
		{2024, 1, 7, 6},  // Sunday
		{2013, 6, 1, 5},  // Saturday
		{1970, 1, 1, 3},  // Thursday
		{2000, 2, 29, 1}, // Tuesday
	}
	for _, c := range cases {
		if got := Weekday(c.year, c.month, c.day); got != c.want {
			t.Errorf("Weekday(%d, %d, %d) = %d, want %d", c.year, c.month, c.day, got, c.want)
		}
	}
}

func TestOrdinalRoundTrip(t *testing.T) {
	dates := []struct{ year, month, day int }{
		{1, 1, 1},
		{1900, 2, 28},
		{1904, 2, 29},
		{1970, 1, 1},
		{2000, 12, 31},
		{2024, 7, 15},
	}
	for _, d := range dates {
		n := Ordinal(d.year, d.month, d.day)
		y, m, day := FromOrdinal(n)
		if y != d.year || m != d.month || day != d.day {
			t.Errorf("FromOrdinal(Ordinal(%v)) = %d-%d-%d", d, y, m, day)
		}
	}
	if got := Ordinal(1, 1, 1); got != 1 {
		t.Errorf("Ordinal(1, 1, 1) = %d, want 1", got)
	}
}

func TestYearDay(t *testing.T) {
	if got := YearDay(2024, 3, 1); got != 61 {
		t.Errorf("YearDay(2024, 3, 1) = %d, want 61", got)
	}
	if got := YearDay(2023, 3, 1); got != 60 {
		t.Errorf("YearDay(2023, 3, 1) = %d, want 60", got)
	}
	if got := YearDay(2023, 12, 31); got != 365 {
		t.Errorf("YearDay(2023, 12, 31) = %d, want 365", got)
	}
}

func TestWeekBasedYearDay(t *testing.T) {
	// 2024-01-01 is a Monday, so %W week 1 starts on day 1.
	if got := WeekBasedYearDay(2024, 1, 0, true); got != 1 {
		t.Errorf("week 1 Monday of 2024 = day %d, want 1", got)
	}
	// Week 2 Monday is January 8.
	if got := WeekBasedYearDay(2024, 2, 0, true); got != 8 {
		t.Errorf("week 2 Monday of 2024 = day %d, want 8", got)
	}
	// With Sunday-based weeks (%U), week 1 of 2024 starts Sunday January 7.
	if got := WeekBasedYearDay(2024, 1, 6, false); got != 7 {
		t.Errorf("week 1 Sunday of 2024 = day %d, want 7", got)
	}
}
