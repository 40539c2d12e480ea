package tzdb

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ZoneTabEntry is one row of a zone1970.tab file: a zone name and the
// ISO 3166 country codes whose territory overlaps it.
type ZoneTabEntry struct {
	Codes []string
	Name  string
}

// tabParseError reports the offending line of a malformed zone table.
type tabParseError struct {
	lineNumber int
	line       string
	err        error
}

func (e *tabParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.lineNumber, e.line, e.err)
}

// ParseZoneTab parses the zone1970.tab format distributed with the IANA
// time zone database: tab-separated columns of country codes, coordinates,
// zone name and an optional comment, with '#' comment lines.
func ParseZoneTab(r io.Reader) ([]ZoneTabEntry, error) {
	var (
		entries    []ZoneTabEntry
		lineNumber int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, &tabParseError{lineNumber, line, fmt.Errorf("expected at least 3 columns, got %d", len(fields))}
		}
		codes := strings.Split(fields[0], ",")
		if len(codes) == 0 || codes[0] == "" {
			return nil, &tabParseError{lineNumber, line, fmt.Errorf("empty country code column")}
		}
		if fields[2] == "" {
			return nil, &tabParseError{lineNumber, line, fmt.Errorf("empty zone name column")}
		}
		entries = append(entries, ZoneTabEntry{Codes: codes, Name: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no zone entries found")
	}
	return entries, nil
}
