package pattern

import (
	"regexp"
	"strings"
)

// Template is a compiled pattern: a matcher plus the reconstruction map that
// regenerates the canonical format text from a match. Templates are
// immutable once built and safe for concurrent use.
type Template struct {
	// Pattern is the source text the template was compiled from.
	Pattern string

	re      *regexp.Regexp
	rebuild map[string]string
}

// Captures maps a field tag (d, m, Y, Z, z, ...) or a group marker (G1, G2,
// ...) to the text it matched. A marker that was taken is present with an
// empty value; an untaken branch is absent.
type Captures map[string]string

// Match matches input against the template. The whole input must be
// consumed; trailing text is a match failure.
func (t *Template) Match(input string) (Captures, bool) {
	idx := t.re.FindStringSubmatchIndex(input)
	if idx == nil {
		return nil, false
	}
	caps := make(Captures)
	for i, name := range t.re.SubexpNames() {
		if name == "" {
			continue
		}
		if idx[2*i] >= 0 {
			caps[name] = input[idx[2*i]:idx[2*i+1]]
		}
	}
	return caps, true
}

// Reconstruct regenerates the canonical format text for a successful match:
// the template with every taken branch inlined and every untaken branch
// removed. Matching the original input against the reconstructed format
// succeeds and yields the same captures.
func (t *Template) Reconstruct(caps Captures) string {
	var b strings.Builder
	t.expand(&b, t.rebuild[groupName(0)], caps)
	return b.String()
}

func (t *Template) expand(b *strings.Builder, s string, caps Captures) {
	for i := 0; i < len(s); {
		if s[i] != '%' || i+1 >= len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}
		if s[i+1] == 'G' {
			// Group reference %Gn%: inline the branch if its marker was
			// taken, else nothing.
			end := strings.IndexByte(s[i+2:], '%')
			if end >= 0 {
				name := s[i+1 : i+2+end]
				if _, taken := caps[name]; taken {
					t.expand(b, t.rebuild[name], caps)
				}
				i += end + 3
				continue
			}
		}
		// Ordinary directive or escape: copy as-is.
		b.WriteString(s[i : i+2])
		i += 2
	}
}
