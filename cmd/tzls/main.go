// Command tzls lists the timezones known to the database, optionally
// restricted to a country, with the display name and UTC offset in effect
// at a given instant.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"simpledate/tzdb"
	"simpledate/tzdb/ianadist"
	"simpledate/tzsearch"
)

var (
	countryFlag = flag.String("country", "", "only zones of this ISO country code")
	atFlag      = flag.String("at", "", "instant to report names and offsets for (RFC 3339), default now")
	updateFlag  = flag.Bool("update", false, "fetch the latest zone table from IANA first")
)

func main() {
	flag.Parse()

	db, err := tzdb.Open()
	if err != nil {
		fmt.Println("opening database:", err)
		os.Exit(1)
	}

	if *updateFlag {
		release, _, err := ianadist.Latest(context.Background(), "")
		if err != nil {
			fmt.Println("fetching IANA release:", err)
			os.Exit(1)
		}
		entries, err := tzdb.ParseZoneTab(bytes.NewReader(release.ZoneTab))
		if err != nil {
			fmt.Println("parsing zone table:", err)
			os.Exit(1)
		}
		db.Update(entries)
		fmt.Println("zone table updated to", release.Version)
	}

	at := time.Now()
	if *atFlag != "" {
		at, err = time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			fmt.Println("parsing -at:", err)
			os.Exit(1)
		}
	}

	names := db.ZoneNames()
	if *countryFlag != "" {
		names, err = db.CountryZones(*countryFlag)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	for _, name := range names {
		r, err := db.Lookup(name)
		if err != nil {
			fmt.Printf("%-34s (no rule data: %v)\n", name, err)
			continue
		}
		display, err := r.NameAt(at, tzsearch.PreferStandard)
		if err != nil {
			fmt.Printf("%-34s (%v)\n", name, err)
			continue
		}
		off, err := r.OffsetAt(at)
		if err != nil {
			fmt.Printf("%-34s (%v)\n", name, err)
			continue
		}
		fmt.Printf("%-34s %-6s UTC%+03d:%02d\n",
			name, display, int(off.Hours()), absMinutes(off))
	}
}

func absMinutes(d time.Duration) int {
	m := int(d.Minutes()) % 60
	if m < 0 {
		m = -m
	}
	return m
}
