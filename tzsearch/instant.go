package tzsearch

import (
	"time"
)

// SingleInstantTz is a timezone that is only known to be correct at the one
// instant it was resolved for. Every operation re-checks the instant and
// fails with SingleInstantMisuseError for any other one; arithmetic on a
// value carrying such a zone surfaces the mistake instead of silently using
// a possibly wrong offset.
type SingleInstantTz struct {
	source string
	fixed  *time.Location
	// bound is the resolved instant normalized to UTC at microsecond
	// granularity.
	bound time.Time
}

// BindInstant resolves r's offset and display name at the civil reading and
// freezes them into a single-instant zone.
func BindInstant(r Rule, civil time.Time, hint DSTHint) (*SingleInstantTz, error) {
	off, err := r.OffsetAt(civil)
	if err != nil {
		return nil, err
	}
	name, err := r.NameAt(civil, hint)
	if err != nil {
		return nil, err
	}
	fixed := time.FixedZone(name, int(off/time.Second))
	return &SingleInstantTz{
		source: r.String(),
		fixed:  fixed,
		bound:  onWall(civil, fixed).UTC().Truncate(time.Microsecond),
	}, nil
}

// Source returns the identifier of the zone the instant was resolved from.
func (s *SingleInstantTz) Source() string { return s.source }

// Bound returns the UTC instant the zone is valid for.
func (s *SingleInstantTz) Bound() time.Time { return s.bound }

func (s *SingleInstantTz) String() string {
	return s.fixed.String()
}

// check compares the civil reading against the bound instant in UTC at
// microsecond granularity.
func (s *SingleInstantTz) check(civil time.Time) error {
	at := onWall(civil, s.fixed).UTC().Truncate(time.Microsecond)
	if !at.Equal(s.bound) {
		return &SingleInstantMisuseError{
			Zone:      s.fixed.String(),
			Bound:     s.bound,
			Offending: at,
		}
	}
	return nil
}

func (s *SingleInstantTz) OffsetAt(civil time.Time) (time.Duration, error) {
	if err := s.check(civil); err != nil {
		return 0, err
	}
	_, off := onWall(civil, s.fixed).Zone()
	return time.Duration(off) * time.Second, nil
}

func (s *SingleInstantTz) NameAt(civil time.Time, hint DSTHint) (string, error) {
	if err := s.check(civil); err != nil {
		return "", err
	}
	return s.fixed.String(), nil
}

func (s *SingleInstantTz) Localize(civil time.Time, hint DSTHint) (time.Time, error) {
	if err := s.check(civil); err != nil {
		return time.Time{}, err
	}
	return onWall(civil, s.fixed), nil
}

func (s *SingleInstantTz) FromUTC(utc time.Time) (time.Time, error) {
	if !utc.UTC().Truncate(time.Microsecond).Equal(s.bound) {
		return time.Time{}, &SingleInstantMisuseError{
			Zone:      s.fixed.String(),
			Bound:     s.bound,
			Offending: utc.UTC().Truncate(time.Microsecond),
		}
	}
	return utc.In(s.fixed), nil
}
