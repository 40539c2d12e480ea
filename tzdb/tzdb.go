// Package tzdb supplies timezone rules from the IANA time zone database.
//
// Zone rules come from the Go runtime's copy of the database, embedded into
// the binary via time/tzdata so behavior does not depend on the host's
// zoneinfo installation. The zone list and the country index come from an
// embedded zone1970.tab snapshot; Update loads a fresher table, for example
// one fetched with the ianadist subpackage.
package tzdb

import (
	"bytes"
	_ "embed"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/pkg/errors"

	"simpledate/tzsearch"
)

//go:embed zone1970.tab
var embeddedZoneTab []byte

// Database resolves zone names against the runtime's IANA data and serves
// the country index from a zone table. It implements tzsearch.Database and
// tzsearch.CountryIndex.
//
// Lookups are cached; the cache and the table are guarded by one lock, so a
// Database may be shared between goroutines.
type Database struct {
	mu        sync.Mutex
	entries   []ZoneTabEntry
	byCountry map[string][]string
	rules     map[string]tzsearch.Rule
}

// Open returns a database over the embedded zone table.
func Open() (*Database, error) {
	entries, err := ParseZoneTab(bytes.NewReader(embeddedZoneTab))
	if err != nil {
		return nil, errors.Wrap(err, "embedded zone table")
	}
	db := &Database{rules: make(map[string]tzsearch.Rule)}
	db.install(entries)
	return db, nil
}

// Update replaces the zone table, for example with one parsed from a newer
// IANA release.
func (db *Database) Update(entries []ZoneTabEntry) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.install(entries)
}

func (db *Database) install(entries []ZoneTabEntry) {
	byCountry := make(map[string][]string)
	for _, e := range entries {
		for _, code := range e.Codes {
			byCountry[code] = append(byCountry[code], e.Name)
		}
	}
	db.entries = entries
	db.byCountry = byCountry
}

// Lookup resolves a zone identifier, or the abbreviations "UTC", "GMT" and
// the like that the runtime database itself resolves.
func (db *Database) Lookup(name string) (tzsearch.Rule, error) {
	db.mu.Lock()
	if r, ok := db.rules[name]; ok {
		db.mu.Unlock()
		return r, nil
	}
	db.mu.Unlock()

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "lookup %q", name)
	}
	r := tzsearch.ByLocation(loc)

	db.mu.Lock()
	db.rules[name] = r
	db.mu.Unlock()
	return r, nil
}

// Zones returns a rule for every zone in the table. Zones whose rules fail
// to load are skipped; the table and the runtime data can disagree when one
// of them is newer.
func (db *Database) Zones() []tzsearch.Rule {
	db.mu.Lock()
	entries := db.entries
	db.mu.Unlock()

	rules := make([]tzsearch.Rule, 0, len(entries))
	for _, e := range entries {
		r, err := db.Lookup(e.Name)
		if err != nil {
			continue
		}
		rules = append(rules, r)
	}
	return rules
}

// ZoneNames returns the zone identifiers in the table, in table order.
func (db *Database) ZoneNames() []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	names := make([]string, len(db.entries))
	for i, e := range db.entries {
		names[i] = e.Name
	}
	return names
}

// CountryZones returns the zone identifiers overlapping the country, in
// table order (most populous first).
func (db *Database) CountryZones(code string) ([]string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	zones, ok := db.byCountry[strings.ToUpper(code)]
	if !ok {
		return nil, &tzsearch.UnknownCountryError{Code: code}
	}
	return append([]string(nil), zones...), nil
}

// Countries returns the known country codes, unordered.
func (db *Database) Countries() []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	codes := make([]string, 0, len(db.byCountry))
	for code := range db.byCountry {
		codes = append(codes, code)
	}
	return codes
}
