package simpledate

import (
	"sort"
	"time"

	"simpledate/tzdb"
)

// Prefer returns the database's country codes reordered so the given codes
// come first, in the given order. The remainder is sorted for determinism.
func Prefer(db *tzdb.Database, codes ...string) []string {
	preferred := make(map[string]bool, len(codes))
	for _, c := range codes {
		preferred[c] = true
	}
	rest := make([]string, 0)
	for _, c := range db.Countries() {
		if !preferred[c] {
			rest = append(rest, c)
		}
	}
	sort.Strings(rest)
	return append(append([]string(nil), codes...), rest...)
}

// Exclude returns the database's country codes without the given ones,
// sorted.
func Exclude(db *tzdb.Database, codes ...string) []string {
	excluded := make(map[string]bool, len(codes))
	for _, c := range codes {
		excluded[c] = true
	}
	out := make([]string, 0)
	for _, c := range db.Countries() {
		if !excluded[c] {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

// BestGuessUTC parses text with aggressive defaults and returns the instant
// in UTC. It is for disposable scripts, not for code that cares about
// correctness: formats are tried US-first and the first plausible zone
// wins, so "EST" quietly means the US east coast rather than an error
// about Australia.
func BestGuessUTC(text string) (time.Time, error) {
	db, err := tzdb.Open()
	if err != nil {
		return time.Time{}, err
	}

	attempts := [][]string{
		combine(MonthFirst, ISO8601, RFC2822),
		combine(DayFirst, ISO8601, RFC2822),
	}
	countries := Prefer(db, "US", "GB")

	var lastErr error
	for _, formats := range attempts {
		p, err := NewParser(Options{Formats: formats, Database: db})
		if err != nil {
			return time.Time{}, err
		}
		d, err := p.Parse(text, ParseOptions{
			Countries: countries,
			TakeFirst: true,
		})
		if err != nil {
			lastErr = err
			continue
		}
		return d.Time().UTC(), nil
	}
	return time.Time{}, lastErr
}
