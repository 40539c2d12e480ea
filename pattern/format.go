package pattern

import (
	"fmt"
	"strings"
	"time"

	"simpledate/locale"
)

// Format renders t through a display template in the pattern grammar. It is
// the inverse of matching: the canonical templates produced by Reconstruct
// render back to the text they matched. Escaped grammar characters (%%, %{,
// %}, %|, %?) render as the bare character.
func Format(tmpl string, t time.Time, tab *locale.Table) (string, error) {
	if tab == nil {
		tab = locale.English
	}
	var b strings.Builder
	if err := format(&b, tmpl, t, tab); err != nil {
		return "", err
	}
	return b.String(), nil
}

func format(b *strings.Builder, tmpl string, t time.Time, tab *locale.Table) error {
	for i := 0; i < len(tmpl); {
		if tmpl[i] != '%' {
			b.WriteByte(tmpl[i])
			i++
			continue
		}
		if i+1 >= len(tmpl) {
			return &UnknownDirectiveError{Pattern: tmpl, Directive: "%"}
		}
		ch := tmpl[i+1]
		switch ch {
		case '%', '{', '}', '|', '?':
			b.WriteByte(ch)
		case 'Y':
			fmt.Fprintf(b, "%04d", t.Year())
		case 'y', 'g':
			fmt.Fprintf(b, "%02d", t.Year()%100)
		case 'm':
			fmt.Fprintf(b, "%02d", int(t.Month()))
		case 'd':
			fmt.Fprintf(b, "%02d", t.Day())
		case 'j':
			fmt.Fprintf(b, "%03d", t.YearDay())
		case 'H':
			fmt.Fprintf(b, "%02d", t.Hour())
		case 'I':
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			fmt.Fprintf(b, "%02d", h)
		case 'M':
			fmt.Fprintf(b, "%02d", t.Minute())
		case 'S':
			fmt.Fprintf(b, "%02d", t.Second())
		case 'f':
			fmt.Fprintf(b, "%06d", t.Nanosecond()/1000)
		case 'a':
			b.WriteString(tab.WeekdayAbbr[mondayFirst(t.Weekday())])
		case 'A':
			b.WriteString(tab.WeekdayFull[mondayFirst(t.Weekday())])
		case 'b':
			b.WriteString(tab.MonthAbbr[int(t.Month())-1])
		case 'B':
			b.WriteString(tab.MonthFull[int(t.Month())-1])
		case 'p':
			if t.Hour() < 12 {
				b.WriteString(tab.AmPm[0])
			} else {
				b.WriteString(tab.AmPm[1])
			}
		case 'w':
			fmt.Fprintf(b, "%d", int(t.Weekday()))
		case 'U':
			fmt.Fprintf(b, "%02d", (t.YearDay()+6-int(t.Weekday()))/7)
		case 'W':
			fmt.Fprintf(b, "%02d", (t.YearDay()+6-mondayFirst(t.Weekday()))/7)
		case 'z':
			b.WriteString(offsetString(t, ""))
		case ':':
			b.WriteString(offsetString(t, ":"))
		case 'Z':
			name, _ := t.Zone()
			if name == "" || name[0] == '+' || name[0] == '-' {
				name = offsetString(t, "")
			}
			b.WriteString(name)
		case 'c':
			if err := format(b, tab.DateTime, t, tab); err != nil {
				return err
			}
		case 'x':
			if err := format(b, tab.Date, t, tab); err != nil {
				return err
			}
		case 'X':
			if err := format(b, tab.Time, t, tab); err != nil {
				return err
			}
		default:
			return &UnknownDirectiveError{Pattern: tmpl, Directive: "%" + string(ch)}
		}
		i += 2
	}
	return nil
}

// mondayFirst converts time.Weekday (Sunday=0) to the table numbering
// (Monday=0).
func mondayFirst(w time.Weekday) int {
	return (int(w) + 6) % 7
}

func offsetString(t time.Time, sep string) string {
	_, secs := t.Zone()
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("%s%02d%s%02d", sign, secs/3600, sep, (secs%3600)/60)
}
