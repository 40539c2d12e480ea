package simpledate

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"simpledate/civil"
	"simpledate/internal/mru"
	"simpledate/locale"
	"simpledate/pattern"
	"simpledate/tzsearch"
)

// NoPatternMatchedError reports that no format template matched the input.
type NoPatternMatchedError struct {
	Input   string
	Formats []string
}

func (e *NoPatternMatchedError) Error() string {
	return fmt.Sprintf("no format matched %q (%d formats tried)", e.Input, len(e.Formats))
}

// Options configures a Parser. The zero value is not usable on its own: a
// Database is required. Everything else has defaults.
type Options struct {
	// Formats are tried in order (most recently successful first after
	// warm-up). Defaults to DefaultFormats.
	Formats []string
	// Locale supplies weekday, month and AM/PM names. Defaults to the
	// English tables.
	Locale *locale.Table
	// Database supplies timezone rules, typically *tzdb.Database.
	Database tzsearch.Database
	// Countries restricts the zone candidate pool for all parses.
	Countries []string
	// Local overrides the zone used when the input carries no timezone
	// token and the caller gives no constraint.
	Local tzsearch.Rule
	// Trace, if set, receives diagnostic messages.
	Trace func(format string, args ...any)
}

// ParseOptions qualifies a single Parse call.
type ParseOptions struct {
	// Zones are caller-side timezone constraints, conjoined with whatever
	// timezone token the input carries.
	Zones []tzsearch.Specifier
	// Countries restricts the zone candidate pool for this parse.
	Countries []string
	// Hint selects the interpretation of readings inside a transition
	// overlap.
	Hint tzsearch.DSTHint
	// TakeFirst accepts the first candidate zone instead of checking for
	// ambiguity.
	TakeFirst bool
}

// Parser parses dates against an ordered list of format templates. After a
// successful parse the matching format moves to the front of the order, so
// inputs arriving in one format stop paying for the formats before it.
//
// A Parser is not safe for concurrent use; the underlying template compiler
// is, so parsers sharing a compiler stay cheap.
type Parser struct {
	compiler *pattern.Compiler
	factory  *tzsearch.Factory
	formats  *mru.Index[string]
	tab      *locale.Table
	trace    func(format string, args ...any)
}

// NewParser builds a parser over the given database.
func NewParser(opts Options) (*Parser, error) {
	if opts.Database == nil {
		return nil, errors.New("no timezone database given")
	}
	tab := opts.Locale
	if tab == nil {
		tab = locale.English
	}
	formats := opts.Formats
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	factory, err := tzsearch.NewFactory(opts.Database, tzsearch.Options{
		Countries: opts.Countries,
		Local:     opts.Local,
		Trace:     opts.Trace,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building timezone factory")
	}
	return &Parser{
		compiler: pattern.NewCompiler(tab),
		factory:  factory,
		formats:  mru.New(formats),
		tab:      tab,
		trace:    opts.Trace,
	}, nil
}

func (p *Parser) tracef(format string, args ...any) {
	if p.trace != nil {
		p.trace(format, args...)
	}
}

// Parse reads text against the parser's formats. Formats that fail to
// match, or match but yield an impossible reading (like a day out of range
// for its month), are skipped; any other failure is the answer and is
// returned at once. The returned date carries the reconstructed variant of
// the matching format as its display template.
func (p *Parser) Parse(text string, opts ParseOptions) (Date, error) {
	for i, format := range p.formats.Items() {
		tmpl, err := p.compiler.Compile(format)
		if err != nil {
			return Date{}, errors.Wrapf(err, "format %q", format)
		}
		caps, ok := tmpl.Match(text)
		if !ok {
			continue
		}
		tuple, micros, err := civil.Extract(caps, p.tab)
		if err != nil {
			p.tracef("format %q matched %q but: %v", format, text, err)
			continue
		}

		d, err := p.resolve(tuple, micros, tmpl.Reconstruct(caps), opts)
		if err != nil {
			return Date{}, errors.Wrapf(err, "parsing %q", text)
		}
		p.formats.Promote(i)
		return d, nil
	}
	return Date{}, &NoPatternMatchedError{Input: text, Formats: p.formats.Items()}
}

// resolve turns an extracted reading into a localized Date.
func (p *Parser) resolve(tuple civil.Tuple, micros int, format string, opts ParseOptions) (Date, error) {
	civilTime := time.Date(tuple.Year, time.Month(tuple.Month), tuple.Day,
		tuple.Hour, tuple.Minute, tuple.Second, micros*1000, time.UTC)

	specs := append([]tzsearch.Specifier(nil), opts.Zones...)
	switch {
	case tuple.HasOffset:
		specs = append(specs, tzsearch.Offset(time.Duration(tuple.Offset)*time.Second))
	case tuple.ZoneName != "":
		specs = append(specs, tzsearch.Name(tuple.ZoneName))
	}
	if len(specs) == 0 {
		specs = append(specs, tzsearch.LocaleDefault())
	}

	rule, err := p.factory.Search(specs, tzsearch.SearchOptions{
		Instant:   civilTime,
		Hint:      opts.Hint,
		Countries: opts.Countries,
		TakeFirst: opts.TakeFirst,
	})
	if err != nil {
		return Date{}, err
	}

	local, err := rule.Localize(civilTime, opts.Hint)
	if err != nil {
		return Date{}, err
	}
	if format == "" {
		format = DefaultFormat
	}
	return Date{time: local, rule: rule, format: format, tab: p.tab}, nil
}
