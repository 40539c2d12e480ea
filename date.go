// Package simpledate parses dates whose format and timezone are not known
// in advance. A parser tries an ordered list of format templates, recovers
// the exact variant of the format that matched, and resolves timezone names
// or offsets found in the input against the IANA database, reporting
// ambiguity instead of guessing.
package simpledate

import (
	"strings"
	"time"

	"simpledate/locale"
	"simpledate/pattern"
	"simpledate/tzsearch"
)

// Date is an instant localized in a timezone rule, together with the
// display format it was read with (or should be written with).
type Date struct {
	time   time.Time
	rule   tzsearch.Rule
	format string
	tab    *locale.Table
}

// NewDate builds a Date for an instant in the given zone. An empty format
// selects DefaultFormat.
func NewDate(t time.Time, rule tzsearch.Rule, format string) (Date, error) {
	if format == "" {
		format = DefaultFormat
	}
	local, err := rule.FromUTC(t.UTC())
	if err != nil {
		return Date{}, err
	}
	return Date{time: local, rule: rule, format: format}, nil
}

// Time returns the localized instant.
func (d Date) Time() time.Time { return d.time }

// Rule returns the timezone rule the date is bound to.
func (d Date) Rule() tzsearch.Rule { return d.rule }

// Format returns the display template.
func (d Date) Format() string { return d.format }

// String renders the date through its display template.
func (d Date) String() string {
	s, err := pattern.Format(d.format, d.time, d.tab)
	if err != nil {
		// The format was validated when the date was built.
		return d.time.String()
	}
	return s
}

// UTC returns the date converted to UTC, keeping the display format.
func (d Date) UTC() Date {
	return Date{
		time:   d.time.UTC(),
		rule:   tzsearch.ByLocation(time.UTC),
		format: d.format,
		tab:    d.tab,
	}
}

// Convert returns the date in another zone, keeping the display format.
// Converting out of a single-instant zone is always possible; converting
// into one fails unless the instant is the one it was resolved for.
func (d Date) Convert(rule tzsearch.Rule) (Date, error) {
	local, err := rule.FromUTC(d.time.UTC())
	if err != nil {
		return Date{}, err
	}
	return Date{time: local, rule: rule, format: d.format, tab: d.tab}, nil
}

// Compare orders dates by instant; dates at the same instant are ordered by
// their rendered text, so distinct readings never compare equal by
// accident.
func (d Date) Compare(other Date) int {
	if c := d.time.Compare(other.time); c != 0 {
		return c
	}
	return strings.Compare(d.String(), other.String())
}

// Equal reports whether both dates denote the same instant.
func (d Date) Equal(other Date) bool {
	return d.time.Equal(other.time)
}

// Before reports whether d's instant precedes other's.
func (d Date) Before(other Date) bool {
	return d.time.Before(other.time)
}

// After reports whether d's instant follows other's.
func (d Date) After(other Date) bool {
	return d.time.After(other.time)
}
