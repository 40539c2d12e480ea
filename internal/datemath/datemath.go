// Package datemath implements the proleptic Gregorian calendar arithmetic
// needed to normalize parsed time tuples: leap years, ordinal days, weekday
// of a date and the week-based day-of-year derivation.
package datemath

// IsLeap determines if the year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a given month for a specific year.
func DaysInMonth(year, month int) int {
	if month == 2 {
		if IsLeap(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

// Weekday calculates the day of the week for a given date,
// where 0=Monday, 1=Tuesday, ..., 6=Sunday.
func Weekday(year, month, day int) int {
	// Zeller's Congruence algorithm adjustment for Gregorian calendar
	if month < 3 {
		month += 12
		year -= 1
	}
	k := year % 100
	j := year / 100
	h := (day + ((13 * (month + 1)) / 5) + k + (k / 4) + (j / 4) + (5 * j)) % 7
	// Zeller yields Saturday=0; shift so that Monday=0, ..., Sunday=6.
	return (h + 5) % 7
}

// YearDay returns the 1-based day of the year for the given date.
func YearDay(year, month, day int) int {
	yd := day
	for m := 1; m < month; m++ {
		yd += DaysInMonth(year, m)
	}
	return yd
}

const (
	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1
)

// Ordinal returns the proleptic Gregorian ordinal of the date, where
// January 1 of year 1 has ordinal 1.
func Ordinal(year, month, day int) int {
	y := year - 1
	return 365*y + y/4 - y/100 + y/400 + YearDay(year, month, day)
}

// FromOrdinal is the inverse of Ordinal. Ordinals before year 1 are not
// supported.
func FromOrdinal(n int) (year, month, day int) {
	n-- // zero-based days since January 1 of year 1
	year = 1

	n400 := n / daysPer400Years
	n -= n400 * daysPer400Years
	year += 400 * n400

	n100 := n / daysPer100Years
	if n100 == 4 {
		// Last day of a 400-year cycle, e.g. Dec 31 2000.
		n100 = 3
	}
	n -= n100 * daysPer100Years
	year += 100 * n100

	n4 := n / daysPer4Years
	n -= n4 * daysPer4Years
	year += 4 * n4

	n1 := n / 365
	if n1 == 4 {
		// Last day of a leap year.
		n1 = 3
	}
	n -= n1 * 365
	year += n1

	month = 1
	for n >= DaysInMonth(year, month) {
		n -= DaysInMonth(year, month)
		month++
	}
	return year, month, n + 1
}

// WeekBasedYearDay derives the day of the year from a week-of-year number and
// a weekday, following the ANSI C interpretation of the %U and %W directives.
// weekday is 0=Monday, ..., 6=Sunday. If weekStartsMonday is false, weeks are
// counted from Sunday instead. Week 0 is the partial week before the first
// week-start of the year, so the result may be zero or negative; callers are
// expected to normalize through FromOrdinal.
func WeekBasedYearDay(year, week, weekday int, weekStartsMonday bool) int {
	firstWeekday := Weekday(year, 1, 1)
	if !weekStartsMonday {
		// Shift the view so that Sunday=0.
		firstWeekday = (firstWeekday + 1) % 7
		weekday = (weekday + 1) % 7
	}
	if week == 0 {
		return 1 + weekday - firstWeekday
	}
	week0Length := (7 - firstWeekday) % 7
	daysToWeek := week0Length + 7*(week-1)
	return 1 + daysToWeek + weekday
}
