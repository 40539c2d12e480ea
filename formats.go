package simpledate

// AddTimezone appends an optional timezone token to each format: a zone
// name, a ±HHMM offset or a ±HH:MM offset, separated by optional
// whitespace.
func AddTimezone(formats ...string) []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = f + " ?{%Z|%z|%:}?"
	}
	return out
}

// DefaultFormat is the display template used when none was recovered from
// the input.
const DefaultFormat = "%Y-%m-%d %H:%M:%S.%f %Z"

// Format sets for parsing. Each format accepts the listed fields with the
// optional tails omitted, plus an optional timezone token.
var (
	// ISO8601 covers "2013-06-01 12:30:56.123" down to a bare year, with
	// either a space or a "T" before the time.
	ISO8601 = AddTimezone("%Y{-%m{-%d{{ |T}%H:%M{:%S{.%f}?}?}?}?}?")

	// ISO8601T is ISO8601 restricted to the "T" separator.
	ISO8601T = AddTimezone("%Y{-%m{-%d{T%H:%M{:%S{.%f}?}?}?}?}?")

	// RFC2822 covers the date format of email headers, with permissive
	// separators so folded whitespace still matches.
	RFC2822 = AddTimezone("{%a,%! }?%d %b %Y %H:%M{:%S}?")

	// Email is an alias for RFC2822.
	Email = RFC2822

	// MonthFirst covers the US convention, month before day.
	MonthFirst = AddTimezone("%m/%d/{%Y|%y}{ %H:%M{:%S{.%f}?}?}?")

	// DayFirst covers the day-before-month convention.
	DayFirst = AddTimezone("%d/%m/{%Y|%y}{ %H:%M{:%S{.%f}?}?}?")
)

// DefaultFormats is the parse order used when no formats are given: ISO
// 8601 first, then email dates.
var DefaultFormats = combine(ISO8601, RFC2822)

func combine(sets ...[]string) []string {
	var out []string
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}
