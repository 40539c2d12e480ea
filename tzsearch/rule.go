package tzsearch

import (
	"fmt"
	"time"
)

// DSTHint steers zone resolution when a civil reading falls inside a
// transition overlap and is valid on both sides. The zero value prefers
// standard time.
type DSTHint int8

const (
	PreferStandard DSTHint = iota
	PreferDaylight
)

// Rule is a timezone: it maps between civil readings and instants and
// reports the offset and display name in effect.
//
// Operations that take a civil reading receive it as a time.Time whose wall
// clock fields carry the reading; the value's own location is ignored.
// Plain zone rules never fail these operations; the error returns exist for
// single-instant rules, which reject readings outside the instant they were
// resolved for.
type Rule interface {
	// String returns the zone identifier, e.g. "Europe/London".
	String() string

	// OffsetAt returns the UTC offset in effect at the civil reading.
	OffsetAt(civil time.Time) (time.Duration, error)

	// NameAt returns the display name in effect at the civil reading,
	// e.g. "BST". Zones without a name report a ±HHMM rendering of the
	// offset.
	NameAt(civil time.Time, hint DSTHint) (string, error)

	// Localize interprets the civil reading as an instant in the zone.
	Localize(civil time.Time, hint DSTHint) (time.Time, error)

	// FromUTC converts a UTC instant into the zone.
	FromUTC(utc time.Time) (time.Time, error)
}

// onWall rebuilds t's wall clock fields in loc.
func onWall(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// offsetName renders an offset as ±HHMM.
func offsetName(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign, d = "-", -d
	}
	d = d.Round(time.Minute)
	return fmt.Sprintf("%s%02d%02d", sign, int(d.Hours()), int(d.Minutes())%60)
}

// LocationRule adapts a *time.Location to the Rule interface.
type LocationRule struct {
	name string
	loc  *time.Location
}

// ByLocation wraps loc as a rule named after it.
func ByLocation(loc *time.Location) LocationRule {
	return LocationRule{name: loc.String(), loc: loc}
}

// Fixed returns a rule for a constant offset from UTC, named ±HHMM.
func Fixed(offset time.Duration) LocationRule {
	name := offsetName(offset)
	return LocationRule{name: name, loc: time.FixedZone(name, int(offset/time.Second))}
}

// Location returns the underlying *time.Location.
func (r LocationRule) Location() *time.Location { return r.loc }

func (r LocationRule) String() string { return r.name }

func (r LocationRule) OffsetAt(civil time.Time) (time.Duration, error) {
	_, off := r.interp(civil, PreferStandard).Zone()
	return time.Duration(off) * time.Second, nil
}

func (r LocationRule) NameAt(civil time.Time, hint DSTHint) (string, error) {
	name, off := r.interp(civil, hint).Zone()
	if name == "" || name[0] == '+' || name[0] == '-' {
		return offsetName(time.Duration(off) * time.Second), nil
	}
	return name, nil
}

func (r LocationRule) Localize(civil time.Time, hint DSTHint) (time.Time, error) {
	return r.interp(civil, hint), nil
}

func (r LocationRule) FromUTC(utc time.Time) (time.Time, error) {
	return utc.In(r.loc), nil
}

// transitionProbes covers the DST deltas in real zone data.
var transitionProbes = []time.Duration{30 * time.Minute, time.Hour, 2 * time.Hour}

// interp resolves the civil reading to an instant in the rule's zone. A
// reading inside a transition overlap exists twice; the hint selects which
// side to take.
func (r LocationRule) interp(civil time.Time, hint DSTHint) time.Time {
	at := onWall(civil, r.loc)
	_, off := at.Zone()
	for _, delta := range transitionProbes {
		var cand time.Time
		if hint == PreferDaylight {
			// The daylight interpretation of an ambiguous reading is the
			// earlier instant, on the larger offset.
			cand = at.Add(-delta)
		} else {
			cand = at.Add(delta)
		}
		_, o := cand.Zone()
		shift := time.Duration(o-off) * time.Second
		if (hint == PreferDaylight && shift == delta) || (hint != PreferDaylight && shift == -delta) {
			return cand
		}
	}
	return at
}
