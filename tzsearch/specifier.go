package tzsearch

import (
	"fmt"
	"strings"
	"time"
)

type specKind uint8

const (
	invalidSpec specKind = iota
	localeSpec
	nameSpec
	offsetSpec
	ruleSpec
	groupSpec
)

// Specifier describes one constraint on the timezone being resolved. The
// zero value is invalid and fails expansion with UnsupportedSpecifierError.
type Specifier struct {
	kind   specKind
	name   string
	offset time.Duration
	rule   Rule
	group  []Specifier
}

// LocaleDefault selects the process-local zone configured on the factory.
func LocaleDefault() Specifier {
	return Specifier{kind: localeSpec}
}

// Name selects zones by identifier or display name. Identifiers resolve by
// direct lookup; display names like "EST" resolve by scanning the candidate
// pool at a given instant.
func Name(name string) Specifier {
	return Specifier{kind: nameSpec, name: name}
}

// Offset selects the fixed-offset zone at the given distance from UTC. The
// offset must be a whole number of minutes.
func Offset(offset time.Duration) Specifier {
	return Specifier{kind: offsetSpec, offset: offset}
}

// OffsetMinutes selects the fixed-offset zone at the given number of
// minutes east of UTC.
func OffsetMinutes(minutes int) Specifier {
	return Specifier{kind: offsetSpec, offset: time.Duration(minutes) * time.Minute}
}

// ByRule selects exactly the given rule.
func ByRule(r Rule) Specifier {
	return Specifier{kind: ruleSpec, rule: r}
}

// AnyOf matches a zone satisfying any member. Members expand in order, so
// earlier members are preferred under take-first searches.
func AnyOf(specs ...Specifier) Specifier {
	return Specifier{kind: groupSpec, group: specs}
}

func (s Specifier) String() string {
	switch s.kind {
	case localeSpec:
		return "<locale>"
	case nameSpec:
		return s.name
	case offsetSpec:
		return offsetName(s.offset)
	case ruleSpec:
		return s.rule.String()
	case groupSpec:
		parts := make([]string, len(s.group))
		for i, m := range s.group {
			parts[i] = m.String()
		}
		return "(" + strings.Join(parts, "|") + ")"
	default:
		return fmt.Sprintf("<invalid specifier %d>", s.kind)
	}
}
