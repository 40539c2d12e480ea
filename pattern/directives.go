package pattern

import (
	"fmt"

	"simpledate/locale"
)

// Numeric directives expand to digit-range expressions so that a match never
// needs post-validation of the range. The leading " [1-9]" arm of %d admits
// the blank-padded day ANSI C produces for %c.
var numericDirectives = map[byte]string{
	'd': `3[0-1]|[1-2]\d|0[1-9]|[1-9]| [1-9]`,
	'f': `[0-9]{1,6}`,
	'H': `2[0-3]|[0-1]\d|\d`,
	'I': `1[0-2]|0[1-9]|[1-9]`,
	'j': `36[0-6]|3[0-5]\d|[1-2]\d\d|0[1-9]\d|00[1-9]|[1-9]\d|0[1-9]|[1-9]`,
	'm': `1[0-2]|0[1-9]|[1-9]`,
	'M': `[0-5]\d|\d`,
	'S': `6[0-1]|[0-5]\d|\d`,
	'U': `5[0-3]|[0-4]\d|\d`,
	'W': `5[0-3]|[0-4]\d|\d`,
	'w': `[0-6]`,
	'y': `\d\d`,
	'g': `\d\d`,
	'Y': `\d\d\d\d`,
	'z': `[+-]\d\d[0-5]\d`,
}

// zoneNamePattern matches either a region/city identifier or an abbreviation
// of at least three letters. Unlike the other textual directives it is not a
// closed list; resolution of the captured name happens downstream.
const zoneNamePattern = `[A-Z][A-Za-z_]+(?:/[A-Z][A-Za-z_]+)+|[A-Z]{3,}`

// textualDirectives are the directives backed by locale name tables. They
// are the ones that accept the permissive %!x form.
func textualDirective(c byte, tab *locale.Table) (string, bool) {
	switch c {
	case 'a':
		return locale.Alternation(tab.WeekdayAbbr[:]), true
	case 'A':
		return locale.Alternation(tab.WeekdayFull[:]), true
	case 'b':
		return locale.Alternation(tab.MonthAbbr[:]), true
	case 'B':
		return locale.Alternation(tab.MonthFull[:]), true
	case 'p':
		return locale.Alternation(tab.AmPm[:]), true
	case 'Z':
		return zoneNamePattern, true
	}
	return "", false
}

// compositeDirective resolves %c, %x and %X to the locale's composite
// format in the pattern grammar.
func compositeDirective(c byte, tab *locale.Table) (string, bool) {
	switch c {
	case 'c':
		return tab.DateTime, true
	case 'x':
		return tab.Date, true
	case 'X':
		return tab.Time, true
	}
	return "", false
}

func groupName(id int) string {
	return fmt.Sprintf("G%d", id)
}
