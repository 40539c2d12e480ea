package tzsearch

import (
	"time"
)

// SearchOptions qualifies a Search call. The zero value searches without an
// instant, which only works when the specifiers resolve to a single zone
// without comparing display names or offsets.
type SearchOptions struct {
	// Instant is the civil reading the search is resolving a zone for.
	// The zero time means no instant is available.
	Instant time.Time
	// Hint selects the interpretation of readings inside a transition
	// overlap.
	Hint DSTHint
	// Countries restricts the starting candidate pool to zones of these
	// country codes.
	Countries []string
	// TakeFirst stops at the first surviving candidate instead of checking
	// the full pool for ambiguity.
	TakeFirst bool
}

// Search resolves a conjunction of specifiers to a single timezone bound to
// the search instant. Each specifier narrows the candidate pool left by the
// previous one; AnyOf members contribute alternatives within one step.
//
// When the surviving candidates are plural they are reduced to one per
// distinct UTC offset at the instant. A single distinct offset resolves to
// a single-instant zone, valid only at that instant. Multiple distinct
// offsets are an AmbiguousTimezoneError, an empty pool a
// NoTimezoneFoundError.
func (f *Factory) Search(specs []Specifier, opts SearchOptions) (Rule, error) {
	ctx := searchContext{
		Specifiers: specs,
		Instant:    opts.Instant,
		Hint:       opts.Hint,
		Countries:  opts.Countries,
		TakeFirst:  opts.TakeFirst,
	}

	var known []Rule
	if len(opts.Countries) > 0 {
		pool, err := f.countryPool(opts.Countries)
		if err != nil {
			return nil, err
		}
		if pool == nil {
			pool = []Rule{}
		}
		known = pool
	}

	narrowed := known != nil
	for i, s := range specs {
		seq := f.Expand([]Specifier{s}, known, opts.Instant, opts.Hint)
		if opts.TakeFirst && i == len(specs)-1 {
			// The final step stays lazy; the first candidate wins.
			for r, err := range seq {
				if err != nil {
					return nil, err
				}
				return f.bind(r, opts, ctx)
			}
			return nil, &NoTimezoneFoundError{ctx}
		}
		var next []Rule
		for r, err := range seq {
			if err != nil {
				return nil, err
			}
			if !containsRule(next, r) {
				next = append(next, r)
			}
		}
		if next == nil {
			next = []Rule{}
		}
		known = next
		narrowed = true
	}

	if !narrowed {
		// No specifier and no country filter: every zone is a candidate.
		known = append([]Rule(nil), f.zones.Items()...)
	}

	switch len(known) {
	case 0:
		return nil, &NoTimezoneFoundError{ctx}
	case 1:
		if opts.TakeFirst {
			return f.bind(known[0], opts, ctx)
		}
		return known[0], nil
	}

	if opts.TakeFirst {
		return f.bind(known[0], opts, ctx)
	}

	distinct, err := distinctByOffset(known, opts.Instant)
	if err != nil {
		return nil, err
	}
	if len(distinct) == 1 {
		return f.bind(distinct[0], opts, ctx)
	}
	return nil, &AmbiguousTimezoneError{Distinct: distinct, searchContext: ctx}
}

// bind wraps the winning candidate as a single-instant zone. Candidates
// chosen from a plural pool (or under take-first) are only known to be
// right at the search instant.
func (f *Factory) bind(r Rule, opts SearchOptions, ctx searchContext) (Rule, error) {
	if opts.Instant.IsZero() {
		return nil, &MissingInstantError{Reason: "binding " + r.String()}
	}
	return BindInstant(r, opts.Instant, opts.Hint)
}

// distinctByOffset keeps the first candidate for each distinct UTC offset
// at the instant. Comparing offsets needs an instant; plural candidates
// without one fail with MissingInstantError.
func distinctByOffset(cands []Rule, instant time.Time) ([]Rule, error) {
	if instant.IsZero() {
		return nil, &MissingInstantError{Reason: "comparing multiple candidate zones"}
	}
	var distinct []Rule
	seen := make(map[time.Duration]bool)
	for _, r := range cands {
		off, err := r.OffsetAt(instant)
		if err != nil {
			continue // single-instant rule outside its instant
		}
		if !seen[off] {
			seen[off] = true
			distinct = append(distinct, r)
		}
	}
	return distinct, nil
}
