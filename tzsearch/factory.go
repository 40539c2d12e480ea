package tzsearch

import (
	"iter"
	"strings"
	"time"

	"github.com/pkg/errors"

	"simpledate/internal/mru"
)

// Database supplies timezone rules by identifier.
type Database interface {
	// Lookup resolves a zone identifier. Unknown identifiers return an
	// error.
	Lookup(name string) (Rule, error)
	// Zones returns the database's full zone set.
	Zones() []Rule
}

// CountryIndex maps ISO 3166 country codes to zone identifiers.
type CountryIndex interface {
	// CountryZones returns the zone identifiers assigned to code, or an
	// UnknownCountryError.
	CountryZones(code string) ([]string, error)
}

// Options configures a Factory. The zero value uses the database's full
// zone set and the process-local zone.
type Options struct {
	// Zones restricts the default candidate pool to these identifiers.
	Zones []string
	// Countries restricts the default candidate pool to zones of these
	// country codes. Requires a database implementing CountryIndex.
	Countries []string
	// Local overrides the zone used by LocaleDefault specifiers. Defaults
	// to the process-local zone.
	Local Rule
	// Trace, if set, receives diagnostic messages during expansion.
	Trace func(format string, args ...any)
}

// Factory resolves timezone specifiers against a database. The candidate
// pool is kept in most-recently-matched order so repeated searches for the
// same display names scan fewer zones.
//
// A Factory is not safe for concurrent use.
type Factory struct {
	db    Database
	local Rule
	zones *mru.Index[Rule]
	trace func(format string, args ...any)
}

// NewFactory builds a factory over db.
func NewFactory(db Database, opts Options) (*Factory, error) {
	pool := db.Zones()
	if len(opts.Zones) > 0 {
		pool = make([]Rule, 0, len(opts.Zones))
		for _, name := range opts.Zones {
			r, err := db.Lookup(name)
			if err != nil {
				return nil, errors.Wrapf(err, "building candidate pool")
			}
			pool = append(pool, r)
		}
	}
	if len(opts.Countries) > 0 {
		allowed, err := countryZoneNames(db, opts.Countries)
		if err != nil {
			return nil, err
		}
		kept := pool[:0:0]
		for _, r := range pool {
			if allowed[r.String()] {
				kept = append(kept, r)
			}
		}
		pool = kept
	}
	local := opts.Local
	if local == nil {
		local = ByLocation(time.Local)
	}
	f := &Factory{db: db, local: local, zones: mru.New(pool), trace: opts.Trace}
	return f, nil
}

// Local returns the zone used by LocaleDefault specifiers.
func (f *Factory) Local() Rule { return f.local }

func (f *Factory) tracef(format string, args ...any) {
	if f.trace != nil {
		f.trace(format, args...)
	}
}

func countryZoneNames(db Database, codes []string) (map[string]bool, error) {
	idx, ok := db.(CountryIndex)
	if !ok {
		return nil, &UnknownCountryError{Code: strings.Join(codes, ",")}
	}
	names := make(map[string]bool)
	for _, code := range codes {
		zones, err := idx.CountryZones(code)
		if err != nil {
			return nil, err
		}
		for _, z := range zones {
			names[z] = true
		}
	}
	return names, nil
}

// countryPool resolves the countries' zones into rules, preserving the
// order of the country list and of each country's zone list. The order
// matters under take-first searches: earlier countries win.
func (f *Factory) countryPool(codes []string) ([]Rule, error) {
	idx, ok := f.db.(CountryIndex)
	if !ok {
		return nil, &UnknownCountryError{Code: strings.Join(codes, ",")}
	}
	var (
		pool []Rule
		seen = make(map[string]bool)
	)
	for _, code := range codes {
		zones, err := idx.CountryZones(code)
		if err != nil {
			return nil, err
		}
		for _, name := range zones {
			if seen[name] {
				continue
			}
			seen[name] = true
			r, err := f.db.Lookup(name)
			if err != nil {
				continue // table and rule data out of step
			}
			pool = append(pool, r)
		}
	}
	return pool, nil
}

// Expand lazily yields the candidate zones matching any of the specifiers.
// A nil known pool means unconstrained; candidates then come from the
// database. A non-nil pool restricts the yield to its members. Duplicates
// are possible; callers that materialize the sequence deduplicate.
//
// instant carries the civil reading display names are compared at; the zero
// time means no instant is available, which makes display-name scans fail
// with MissingInstantError.
func (f *Factory) Expand(specs []Specifier, known []Rule, instant time.Time, hint DSTHint) iter.Seq2[Rule, error] {
	return func(yield func(Rule, error) bool) {
		for _, s := range specs {
			if !f.expandOne(s, known, instant, hint, yield) {
				return
			}
		}
	}
}

func (f *Factory) expandOne(s Specifier, known []Rule, instant time.Time, hint DSTHint, yield func(Rule, error) bool) bool {
	switch s.kind {
	case localeSpec:
		f.tracef("expanding locale default %s", f.local)
		return f.yieldKnown(f.local, known, yield)

	case ruleSpec:
		f.tracef("expanding rule %s", s.rule)
		return f.yieldKnown(s.rule, known, yield)

	case offsetSpec:
		if s.offset%time.Minute != 0 {
			return yield(nil, &InvalidOffsetError{Offset: s.offset})
		}
		f.tracef("expanding offset %s", offsetName(s.offset))
		return f.yieldKnown(Fixed(s.offset), known, yield)

	case nameSpec:
		return f.expandName(s.name, known, instant, hint, yield)

	case groupSpec:
		for _, m := range s.group {
			if !f.expandOne(m, known, instant, hint, yield) {
				return false
			}
		}
		return true

	default:
		return yield(nil, &UnsupportedSpecifierError{Specifier: s})
	}
}

// expandName resolves a name specifier: direct lookup first, then a scan of
// the pool for zones whose display name at the instant matches.
func (f *Factory) expandName(name string, known []Rule, instant time.Time, hint DSTHint, yield func(Rule, error) bool) bool {
	direct, err := f.db.Lookup(name)
	if err == nil {
		f.tracef("direct lookup resolved %s", name)
		if !f.yieldKnown(direct, known, yield) {
			return false
		}
		// A full identifier resolves one zone; without an instant display
		// names cannot be compared, so the scan is skipped either way.
		if strings.Contains(name, "/") || instant.IsZero() {
			return true
		}
	} else if instant.IsZero() {
		return yield(nil, &MissingInstantError{
			Reason: "resolving display name " + name,
		})
	}

	pool := known
	fromIndex := pool == nil
	if fromIndex {
		pool = append([]Rule(nil), f.zones.Items()...)
	}
	f.tracef("scanning %d zones for display name %s", len(pool), name)
	for i, r := range pool {
		if direct != nil && r.String() == direct.String() {
			continue // already yielded by the direct lookup
		}
		zname, err := r.NameAt(instant, hint)
		if err != nil {
			continue // single-instant rule outside its instant
		}
		if zname == name {
			if !yield(r, nil) {
				// The consumer stopped on this candidate; move it to the
				// front so later scans find it sooner.
				if fromIndex {
					f.zones.Promote(i)
				}
				return false
			}
		}
	}
	return true
}

// yieldKnown yields r unless a constraining pool excludes it.
func (f *Factory) yieldKnown(r Rule, known []Rule, yield func(Rule, error) bool) bool {
	if known != nil && !containsRule(known, r) {
		return true
	}
	return yield(r, nil)
}

func containsRule(pool []Rule, r Rule) bool {
	for _, p := range pool {
		if p.String() == r.String() {
			return true
		}
	}
	return false
}
