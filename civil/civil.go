// Package civil converts the captures of a successful pattern match into a
// normalized calendar/time tuple. It reproduces the classic strptime
// derivation rules: century pivots for two-digit years, 12-hour clock
// folding, week-based day-of-year computation and the leap-year fallback for
// year-less February 29.
package civil

import (
	"fmt"
	"strconv"
	"strings"

	"simpledate/internal/datemath"
	"simpledate/locale"
)

// Default years assumed when no year is captured. The leap sentinel is used
// during the computation for a year-less February 29 and then swapped back,
// so that such dates still sort before year-less March dates. The swap only
// works because the sentinels compare in that order.
const (
	defaultYear      = 1900
	leapSentinelYear = 1904
)

// Tuple is a normalized calendar/time reading. Weekday is 0=Monday, ...,
// 6=Sunday. At most one of ZoneName and HasOffset is set; both clear means
// the input carried no timezone token.
type Tuple struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Weekday              int
	YearDay              int

	ZoneName  string
	Offset    int // seconds east of UTC, meaningful only if HasOffset
	HasOffset bool
}

// Extract derives a Tuple and the fractional seconds (in microseconds) from
// match captures. A nil table uses the English defaults.
//
// Name captures that are not present in the table (possible with the
// permissive %!b-style directives) return an error; the caller treats it
// like a failed match and tries the next pattern.
func Extract(caps map[string]string, tab *locale.Table) (Tuple, int, error) {
	if tab == nil {
		tab = locale.English
	}

	var (
		t                Tuple
		yearSet          bool
		micros           int
		weekday          = -1
		yearDay          = -1
		weekOfYear       = -1
		weekStartsMonday bool
	)
	t.Month, t.Day = 1, 1

	for key, val := range caps {
		switch key {
		case "y":
			// POSIX pivot: 00-68 are 2000s, 69-99 are 1900s.
			v := atoi(val)
			if v <= 68 {
				v += 2000
			} else {
				v += 1900
			}
			t.Year, yearSet = v, true
		case "g":
			// Alternate pivot at 50.
			v := atoi(val)
			if v < 50 {
				v += 2000
			} else {
				v += 1900
			}
			t.Year, yearSet = v, true
		case "Y":
			t.Year, yearSet = atoi(val), true
		case "m":
			t.Month = atoi(val)
		case "B", "b":
			m, ok := tab.MonthIndex(val)
			if !ok {
				return Tuple{}, 0, fmt.Errorf("unknown month name %q", val)
			}
			t.Month = m
		case "d":
			t.Day = atoi(strings.TrimSpace(val))
		case "H":
			t.Hour = atoi(val)
		case "I":
			t.Hour = hour12(atoi(val), caps["p"], tab)
		case "p":
			// Consumed together with I.
		case "M":
			t.Minute = atoi(val)
		case "S":
			t.Second = atoi(val)
		case "f":
			// Right-pad to microsecond width.
			micros = atoi(val + strings.Repeat("0", 6-len(val)))
		case "A", "a":
			w, ok := tab.WeekdayIndex(val)
			if !ok {
				return Tuple{}, 0, fmt.Errorf("unknown weekday name %q", val)
			}
			weekday = w
		case "w":
			// Directive numbering is Sunday=0; fold to Monday=0.
			v := atoi(val)
			if v == 0 {
				weekday = 6
			} else {
				weekday = v - 1
			}
		case "j":
			yearDay = atoi(val)
		case "U":
			weekOfYear = atoi(val)
			weekStartsMonday = false
		case "W":
			weekOfYear = atoi(val)
			weekStartsMonday = true
		case "z":
			t.Offset = parseOffset(val)
			t.HasOffset = true
		case "Z":
			t.ZoneName = val
		}
	}

	leapFix := false
	if !yearSet {
		if t.Month == 2 && t.Day == 29 {
			t.Year = leapSentinelYear
			leapFix = true
		} else {
			t.Year = defaultYear
		}
	}

	if yearDay == -1 && weekOfYear != -1 && weekday != -1 {
		yearDay = datemath.WeekBasedYearDay(t.Year, weekOfYear, weekday, weekStartsMonday)
	}

	if yearDay == -1 {
		if t.Month < 1 || t.Month > 12 || t.Day < 1 || t.Day > datemath.DaysInMonth(t.Year, t.Month) {
			return Tuple{}, 0, fmt.Errorf("day %d is out of range for %04d-%02d", t.Day, t.Year, t.Month)
		}
		yearDay = datemath.YearDay(t.Year, t.Month, t.Day)
	} else {
		// A directly captured day of the year is authoritative; recompute
		// the calendar date from it.
		t.Year, t.Month, t.Day = datemath.FromOrdinal(yearDay - 1 + datemath.Ordinal(t.Year, 1, 1))
	}
	if weekday == -1 {
		weekday = datemath.Weekday(t.Year, t.Month, t.Day)
	}
	t.Weekday = weekday
	t.YearDay = yearDay

	if leapFix {
		// The computation needed a leap year; the reported year stays the
		// regular no-year default so ordering against other year-less dates
		// is preserved.
		t.Year = defaultYear
	}

	return t, micros, nil
}

// hour12 folds a 12-hour clock reading and an optional AM/PM marker into a
// 24-hour value. A missing or unknown marker behaves like AM.
func hour12(hour int, marker string, tab *locale.Table) int {
	pm, ok := tab.IsPM(marker)
	if !ok || !pm {
		if hour == 12 {
			return 0 // 12 midnight
		}
		return hour
	}
	if hour != 12 {
		return hour + 12
	}
	return hour // 12 noon
}

// parseOffset converts a captured ±HHMM or ±HH:MM style offset into signed
// seconds east of UTC.
func parseOffset(val string) int {
	sign := 1
	if val[0] == '-' {
		sign = -1
	}
	digits := make([]byte, 0, 4)
	for i := 1; i < len(val); i++ {
		if val[i] >= '0' && val[i] <= '9' {
			digits = append(digits, val[i])
		}
	}
	h := atoi(string(digits[:2]))
	m := atoi(string(digits[2:]))
	return sign * (h*3600 + m*60)
}

// atoi is used on text already constrained by the matcher's digit ranges; a
// failure means the matcher and extractor disagree, which cannot happen for
// templates built by the pattern compiler.
func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("capture %q is not numeric", s))
	}
	return v
}
