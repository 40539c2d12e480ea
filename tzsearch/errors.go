package tzsearch

import (
	"fmt"
	"strings"
	"time"
)

// searchContext records the inputs of a search so error diagnostics carry
// everything needed to reproduce the failure.
type searchContext struct {
	Specifiers []Specifier
	Instant    time.Time
	Hint       DSTHint
	Countries  []string
	TakeFirst  bool
}

func (c searchContext) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "specifiers=%v", c.Specifiers)
	if !c.Instant.IsZero() {
		fmt.Fprintf(&b, ", instant=%s", c.Instant.Format("2006-01-02 15:04:05.000000"))
	}
	if len(c.Countries) > 0 {
		fmt.Fprintf(&b, ", countries=%v", c.Countries)
	}
	if c.TakeFirst {
		b.WriteString(", take-first")
	}
	return b.String()
}

// NoTimezoneFoundError reports that no candidate survived the search.
type NoTimezoneFoundError struct {
	searchContext
}

func (e *NoTimezoneFoundError) Error() string {
	return fmt.Sprintf("no timezone found (%s)", e.searchContext)
}

// AmbiguousTimezoneError reports that the surviving candidates disagree on
// the UTC offset at the instant under consideration. Distinct holds one
// candidate per distinct offset.
type AmbiguousTimezoneError struct {
	Distinct []Rule
	searchContext
}

func (e *AmbiguousTimezoneError) Error() string {
	names := make([]string, len(e.Distinct))
	for i, r := range e.Distinct {
		names[i] = r.String()
	}
	return fmt.Sprintf("%d distinct timezones found: %s (%s)",
		len(e.Distinct), strings.Join(names, "; "), e.searchContext)
}

// UnsupportedSpecifierError reports a specifier that carries no usable
// variant (the zero Specifier).
type UnsupportedSpecifierError struct {
	Specifier Specifier
}

func (e *UnsupportedSpecifierError) Error() string {
	return fmt.Sprintf("cannot expand timezone specifier %v", e.Specifier)
}

// InvalidOffsetError reports a fixed offset that is not a whole number of
// minutes.
type InvalidOffsetError struct {
	Offset time.Duration
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("offset %s is not a whole number of minutes", e.Offset)
}

// MissingInstantError reports an operation that needs an instant to compare
// or resolve zones but was not given one.
type MissingInstantError struct {
	Reason string
}

func (e *MissingInstantError) Error() string {
	return "instant required: " + e.Reason
}

// UnknownCountryError reports a country code absent from the country index.
type UnknownCountryError struct {
	Code string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country code %q", e.Code)
}

// SingleInstantMisuseError reports use of a single-instant timezone at a
// different instant than the one it was resolved for.
type SingleInstantMisuseError struct {
	Zone      string
	Bound     time.Time
	Offending time.Time
}

func (e *SingleInstantMisuseError) Error() string {
	return fmt.Sprintf("timezone %s is defined only for %s, used at %s",
		e.Zone, e.Bound.Format(time.RFC3339Nano), e.Offending.Format(time.RFC3339Nano))
}
