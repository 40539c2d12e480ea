package simpledate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpledate/tzdb"
	"simpledate/tzsearch"
)

func testParser(t *testing.T, opts Options) *Parser {
	t.Helper()
	if opts.Database == nil {
		db, err := tzdb.Open()
		require.NoError(t, err)
		opts.Database = db
	}
	p, err := NewParser(opts)
	require.NoError(t, err)
	return p
}

func TestParseISOWithZoneName(t *testing.T) {
	p := testParser(t, Options{})
	d, err := p.Parse("2013-06-01 12:30:56.123456 Europe/London", ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Europe/London", d.Rule().String())
	assert.Equal(t, "%Y-%m-%d %H:%M:%S.%f %Z", d.Format())

	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	want := time.Date(2013, 6, 1, 12, 30, 56, 123456000, london)
	assert.True(t, d.Time().Equal(want), "got %v, want %v", d.Time(), want)

	// The display name at that instant is BST, so rendering does not
	// reproduce the identifier.
	assert.Equal(t, "2013-06-01 12:30:56.123456 BST", d.String())
}

func TestParseOffset(t *testing.T) {
	p := testParser(t, Options{})
	d, err := p.Parse("2013-06-01 12:30 +0545", ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, "+0545", d.Rule().String())
	want := time.Date(2013, 6, 1, 12, 30, 0, 0, time.FixedZone("+0545", 5*3600+45*60))
	assert.True(t, d.Time().Equal(want), "got %v, want %v", d.Time(), want)
}

func TestParseNoZoneUsesLocal(t *testing.T) {
	p := testParser(t, Options{Local: tzsearch.ByLocation(time.UTC)})
	d, err := p.Parse("2013-06-01", ParseOptions{})
	require.NoError(t, err)

	want := time.Date(2013, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, d.Time().Equal(want), "got %v, want %v", d.Time(), want)
}

func TestParsePartialRoundTrip(t *testing.T) {
	p := testParser(t, Options{Local: tzsearch.ByLocation(time.UTC)})
	for _, input := range []string{"2013-06", "2013-06-01", "2013-06-01 12:30"} {
		d, err := p.Parse(input, ParseOptions{})
		require.NoError(t, err, input)
		// The recovered format renders the date back to the input.
		assert.Equal(t, input, d.String())
	}
}

func TestParseAbbreviationAmbiguous(t *testing.T) {
	// CST is Chinese, US central and Cuban time at three distinct offsets.
	p := testParser(t, Options{})
	_, err := p.Parse("2013-01-01 12:00 CST", ParseOptions{})

	var ambiguous *tzsearch.AmbiguousTimezoneError
	require.ErrorAs(t, err, &ambiguous)
	assert.GreaterOrEqual(t, len(ambiguous.Distinct), 2)
}

func TestParseAbbreviationNarrowedByCountry(t *testing.T) {
	p := testParser(t, Options{})
	d, err := p.Parse("2013-01-01 12:00 CST", ParseOptions{Countries: []string{"US"}})
	require.NoError(t, err)

	bound, ok := d.Rule().(*tzsearch.SingleInstantTz)
	require.True(t, ok, "expected a single-instant zone, got %T", d.Rule())

	want := time.Date(2013, 1, 1, 18, 0, 0, 0, time.UTC)
	assert.True(t, d.Time().Equal(want), "got %v, want %v", d.Time(), want)

	// The zone is valid only at the parsed instant.
	_, err = bound.OffsetAt(want.Add(time.Hour))
	var misuse *tzsearch.SingleInstantMisuseError
	require.ErrorAs(t, err, &misuse)
}

func TestParseUnknownZonePropagates(t *testing.T) {
	p := testParser(t, Options{})
	_, err := p.Parse("2013-06-01 12:00 XYZ", ParseOptions{})

	var notFound *tzsearch.NoTimezoneFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestParseNoPatternMatched(t *testing.T) {
	p := testParser(t, Options{})
	_, err := p.Parse("not a date", ParseOptions{})

	var noMatch *NoPatternMatchedError
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, "not a date", noMatch.Input)
}

func TestParseImpossibleReadingSkipsFormat(t *testing.T) {
	p := testParser(t, Options{
		Formats: combine(MonthFirst, DayFirst),
		Local:   tzsearch.ByLocation(time.UTC),
	})

	// 2/30/2013 matches the month-first shape but February has no day 30;
	// the reading is discarded like a non-match instead of being reported.
	_, err := p.Parse("2/30/2013", ParseOptions{})
	var noMatch *NoPatternMatchedError
	require.ErrorAs(t, err, &noMatch)

	// 31/1/2013 only makes sense day-first and resolves that way.
	d, err := p.Parse("31/1/2013", ParseOptions{})
	require.NoError(t, err)
	want := time.Date(2013, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, d.Time().Equal(want), "got %v, want %v", d.Time(), want)
}

func TestParsePromotesFormat(t *testing.T) {
	p := testParser(t, Options{
		Formats: []string{"%Y-%m-%d", "%d %b %Y"},
		Local:   tzsearch.ByLocation(time.UTC),
	})
	_, err := p.Parse("9 Aug 2013", ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, "%d %b %Y", p.formats.Items()[0])
}

func TestParseRFC2822(t *testing.T) {
	p := testParser(t, Options{})
	d, err := p.Parse("Fri, 09 Aug 2013 10:22:00 -0500", ParseOptions{})
	require.NoError(t, err)
	want := time.Date(2013, 8, 9, 15, 22, 0, 0, time.UTC)
	assert.True(t, d.Time().Equal(want), "got %v, want %v", d.Time().UTC(), want)
}

func TestDateConversions(t *testing.T) {
	db, err := tzdb.Open()
	require.NoError(t, err)
	london, err := db.Lookup("Europe/London")
	require.NoError(t, err)

	at := time.Date(2013, 6, 1, 11, 30, 0, 0, time.UTC)
	d, err := NewDate(at, london, "")
	require.NoError(t, err)

	// Same instant, different wall clocks.
	utc := d.UTC()
	assert.True(t, utc.Equal(d))
	assert.Equal(t, 12, d.Time().Hour())
	assert.Equal(t, 11, utc.Time().Hour())

	paris, err := db.Lookup("Europe/Paris")
	require.NoError(t, err)
	converted, err := d.Convert(paris)
	require.NoError(t, err)
	assert.True(t, converted.Equal(d))
	assert.Equal(t, 13, converted.Time().Hour())
}

func TestDateCompare(t *testing.T) {
	db, err := tzdb.Open()
	require.NoError(t, err)
	utcRule, err := db.Lookup("UTC")
	require.NoError(t, err)

	early, err := NewDate(time.Date(2013, 6, 1, 0, 0, 0, 0, time.UTC), utcRule, "")
	require.NoError(t, err)
	late, err := NewDate(time.Date(2013, 6, 2, 0, 0, 0, 0, time.UTC), utcRule, "")
	require.NoError(t, err)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.Negative(t, early.Compare(late))
	assert.Zero(t, early.Compare(early))
}

func TestBestGuessUTC(t *testing.T) {
	got, err := BestGuessUTC("1/6/2013 12:00 EST")
	require.NoError(t, err)

	// Month-first and the US reading of EST win.
	want := time.Date(2013, 1, 6, 17, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}

func TestPreferExclude(t *testing.T) {
	db, err := tzdb.Open()
	require.NoError(t, err)

	preferred := Prefer(db, "AU", "US")
	require.GreaterOrEqual(t, len(preferred), 2)
	assert.Equal(t, []string{"AU", "US"}, preferred[:2])

	for _, c := range Exclude(db, "US") {
		assert.NotEqual(t, "US", c)
	}
}
