package pattern

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	loc := time.FixedZone("BST", 3600)
	at := time.Date(2013, 8, 9, 22, 22, 0, 123000*1000, loc)

	cases := []struct {
		tmpl string
		want string
	}{
		{"%Y-%m-%d %H:%M:%S", "2013-08-09 22:22:00"},
		{"%Y-%m-%d %H:%M:%S.%f %Z", "2013-08-09 22:22:00.123000 BST"},
		{"%d %b %y", "09 Aug 13"},
		{"%A, %I:%M %p", "Friday, 10:22 PM"},
		{"%j", "221"},
		{"%z", "+0100"},
		{"%:", "+01:00"},
		{"%%=%%", "%=%"},
		{"%{%|%}%?", "{|}?"},
		{"%a %b %d %H:%M:%S %Y", "Fri Aug 09 22:22:00 2013"},
		{"%c", "Fri Aug 09 22:22:00 2013"},
	}
	for _, c := range cases {
		t.Run(c.tmpl, func(t *testing.T) {
			got, err := Format(c.tmpl, at, nil)
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			if got != c.want {
				t.Errorf("Format(%q) = %q, want %q", c.tmpl, got, c.want)
			}
		})
	}
}

func TestFormatNegativeOffset(t *testing.T) {
	loc := time.FixedZone("", -(3*3600 + 30*60))
	at := time.Date(2013, 1, 1, 0, 0, 0, 0, loc)
	got, err := Format("%z %:", at, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "-0330 -03:30" {
		t.Errorf("got %q, want %q", got, "-0330 -03:30")
	}
}

func TestFormatUnknownDirective(t *testing.T) {
	if _, err := Format("%q", time.Now(), nil); err == nil {
		t.Error("expected error for unknown directive")
	}
}

// A reconstructed template renders back to text the template matches.
func TestFormatMatchInverse(t *testing.T) {
	tmpl := mustCompile(t, "%Y-%m-%dT%H:%M:%S%z")
	at := time.Date(2020, 2, 29, 13, 5, 6, 0, time.FixedZone("", 5*3600+45*60))
	text, err := Format(tmpl.Pattern, at, nil)
	if err != nil {
		t.Fatal(err)
	}
	if text != "2020-02-29T13:05:06+0545" {
		t.Fatalf("Format = %q", text)
	}
	if _, ok := tmpl.Match(text); !ok {
		t.Errorf("template does not match its own rendering %q", text)
	}
}
