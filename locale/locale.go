// Package locale supplies the name tables used by textual pattern
// directives: weekday and month names, AM/PM markers and the composite
// date/time formats of a locale.
//
// Tables are read-only after construction and may be shared freely across
// goroutines.
package locale

import (
	"regexp"
	"sort"
	"strings"
)

// Table holds the names of one locale. Weekdays are Monday-first, months
// January-first, matching the numbering produced by the extractor.
type Table struct {
	WeekdayFull [7]string
	WeekdayAbbr [7]string
	MonthFull   [12]string
	MonthAbbr   [12]string
	AmPm        [2]string

	// Composite formats, in the pattern grammar. DateTime backs %c,
	// Date backs %x and Time backs %X.
	DateTime string
	Date     string
	Time     string
}

// English is the default table.
var English = &Table{
	WeekdayFull: [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	WeekdayAbbr: [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	MonthFull: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthAbbr: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	AmPm:      [2]string{"AM", "PM"},
	DateTime:  "%a %b %d %H:%M:%S %Y",
	Date:      "%m/%d/%y",
	Time:      "%H:%M:%S",
}

// Alternation builds a regular expression alternation over the given names,
// longest first so that a name is never shadowed by one of its own prefixes.
// Empty names are skipped. An empty result means no name was usable.
func Alternation(names []string) string {
	sorted := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			sorted = append(sorted, n)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	for i, n := range sorted {
		sorted[i] = regexp.QuoteMeta(n)
	}
	return strings.Join(sorted, "|")
}

func indexFold(names []string, s string) (int, bool) {
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i, true
		}
	}
	return 0, false
}

// WeekdayIndex resolves a full or abbreviated weekday name to 0=Monday, ...,
// 6=Sunday, ignoring case.
func (t *Table) WeekdayIndex(name string) (int, bool) {
	if i, ok := indexFold(t.WeekdayFull[:], name); ok {
		return i, true
	}
	return indexFold(t.WeekdayAbbr[:], name)
}

// MonthIndex resolves a full or abbreviated month name to 1..12, ignoring
// case.
func (t *Table) MonthIndex(name string) (int, bool) {
	if i, ok := indexFold(t.MonthFull[:], name); ok {
		return i + 1, true
	}
	if i, ok := indexFold(t.MonthAbbr[:], name); ok {
		return i + 1, true
	}
	return 0, false
}

// IsPM reports whether the given marker is the PM marker. A marker that is
// neither AM nor PM reports ok=false.
func (t *Table) IsPM(marker string) (pm, ok bool) {
	if strings.EqualFold(marker, t.AmPm[1]) {
		return true, true
	}
	if strings.EqualFold(marker, t.AmPm[0]) {
		return false, true
	}
	return false, false
}
