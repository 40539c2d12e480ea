// Package pattern compiles the extended date template grammar into a matcher
// and a reconstruction template.
//
// The grammar extends the classic strptime directives:
//
//   - %x           a registered directive (numeric field, textual field,
//     composite locale format, or UTC offset)
//   - %!x          permissive form: a textual field matches any word run,
//     a separator matches any non-word run
//   - {A|B|C}      a group of alternatives; groups nest
//   - tok? or {}?  optionality for the preceding token or group
//   - %% %{ %} %| %?  escapes for the grammar characters
//
// Every group and alternative receives an integer id and a zero-width marker
// capture, so a successful match records which branches were taken. The
// reconstruction template replays those markers to regenerate the canonical
// format text that matched the input (see Template.Reconstruct).
package pattern

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"simpledate/locale"
)

// frag is one compiled unit: the regular expression source for matching and
// the template text it contributes to reconstruction.
type frag struct {
	re  string
	txt string
}

type openGroup struct {
	altIDs []int    // marker id of each alternative, in order
	done   [][]frag // completed alternatives
	cur    []frag   // fragments of the alternative being built
}

type compiler struct {
	src     string
	tab     *locale.Table
	nextID  int
	rebuild map[string]string
	stack   []*openGroup
	root    []frag
}

// Compile compiles a pattern against the given locale table. A nil table
// uses the English defaults.
func Compile(patternText string, tab *locale.Table) (*Template, error) {
	if tab == nil {
		tab = locale.English
	}
	c := &compiler{
		src:     patternText,
		tab:     tab,
		nextID:  1,
		rebuild: make(map[string]string),
	}
	if err := c.run(patternText); err != nil {
		return nil, err
	}
	if len(c.stack) != 0 {
		return nil, &UnbalancedGroupError{Pattern: patternText}
	}

	var re, txt strings.Builder
	for _, f := range c.root {
		re.WriteString(f.re)
		txt.WriteString(f.txt)
	}
	c.rebuild[groupName(0)] = txt.String()

	compiled, err := regexp.Compile(`(?i)\A(?:` + re.String() + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", patternText, err)
	}
	return &Template{
		Pattern: patternText,
		re:      compiled,
		rebuild: c.rebuild,
	}, nil
}

func (c *compiler) newID() int {
	id := c.nextID
	c.nextID++
	return id
}

func (c *compiler) append(f frag) {
	if n := len(c.stack); n > 0 {
		g := c.stack[n-1]
		g.cur = append(g.cur, f)
		return
	}
	c.root = append(c.root, f)
}

// last returns the fragment the trailing ? would wrap, or nil.
func (c *compiler) last() *frag {
	if n := len(c.stack); n > 0 {
		g := c.stack[n-1]
		if len(g.cur) == 0 {
			return nil
		}
		return &g.cur[len(g.cur)-1]
	}
	if len(c.root) == 0 {
		return nil
	}
	return &c.root[len(c.root)-1]
}

// run compiles s, appending fragments to the current scope. Composite
// directives re-enter run with the locale's format text.
func (c *compiler) run(s string) error {
	for i := 0; i < len(s); {
		switch s[i] {
		case '%':
			n, err := c.directive(s[i:])
			if err != nil {
				return err
			}
			i += n
		case '{':
			id := c.newID()
			c.stack = append(c.stack, &openGroup{altIDs: []int{id}})
			i++
		case '|':
			if len(c.stack) == 0 {
				return &DanglingAlternativeError{Pattern: c.src}
			}
			g := c.stack[len(c.stack)-1]
			g.done = append(g.done, g.cur)
			g.cur = nil
			g.altIDs = append(g.altIDs, c.newID())
			i++
		case '}':
			if len(c.stack) == 0 {
				return &UnbalancedGroupError{Pattern: c.src}
			}
			g := c.stack[len(c.stack)-1]
			c.stack = c.stack[:len(c.stack)-1]
			g.done = append(g.done, g.cur)
			c.append(closeGroup(g, c.rebuild))
			i++
		case '?':
			f := c.last()
			if f == nil {
				// Nothing to make optional; a leading ? is a literal.
				c.append(frag{re: regexp.QuoteMeta("?"), txt: "?"})
				i++
				continue
			}
			id := c.newID()
			name := groupName(id)
			c.rebuild[name] = f.txt
			*f = frag{
				re:  `((?P<` + name + `>)` + f.re + `)?`,
				txt: "%" + name + "%",
			}
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if unicode.IsSpace(r) {
				j := i
				for j < len(s) {
					rr, sz := utf8.DecodeRuneInString(s[j:])
					if !unicode.IsSpace(rr) {
						break
					}
					j += sz
				}
				// Whitespace in the pattern matches any whitespace run.
				c.append(frag{re: `\s+`, txt: s[i:j]})
				i = j
				continue
			}
			c.append(frag{re: regexp.QuoteMeta(string(r)), txt: string(r)})
			i += size
		}
	}
	return nil
}

// closeGroup assembles the alternatives of g into a single fragment and
// records each alternative's reconstruction text under its marker id.
func closeGroup(g *openGroup, rebuild map[string]string) frag {
	var alts []string
	var ref strings.Builder
	for i, fs := range g.done {
		name := groupName(g.altIDs[i])
		var re, txt strings.Builder
		re.WriteString(`(?P<` + name + `>)`)
		for _, f := range fs {
			re.WriteString(f.re)
			txt.WriteString(f.txt)
		}
		rebuild[name] = txt.String()
		alts = append(alts, re.String())
		ref.WriteString("%" + name + "%")
	}
	return frag{
		re:  "(" + strings.Join(alts, "|") + ")",
		txt: ref.String(),
	}
}

// directive compiles the %-construct at the start of s and returns how many
// bytes it consumed.
func (c *compiler) directive(s string) (int, error) {
	if len(s) < 2 {
		return 0, &UnknownDirectiveError{Pattern: c.src, Directive: "%"}
	}
	ch := s[1]
	switch ch {
	case '%':
		c.append(frag{re: "%", txt: "%%"})
		return 2, nil
	case '{', '}', '|', '?':
		c.append(frag{re: regexp.QuoteMeta(string(ch)), txt: "%" + string(ch)})
		return 2, nil
	case ':':
		c.append(frag{re: `(?P<z>[+-]\d\d:[0-5]\d)`, txt: "%:"})
		return 2, nil
	case '!':
		if len(s) < 3 {
			return 0, &UnknownDirectiveError{Pattern: c.src, Directive: "%!"}
		}
		p := s[2]
		if _, ok := textualDirective(p, c.tab); ok {
			// Permissive textual field: any word run, same capture tag.
			c.append(frag{re: `(?P<` + string(p) + `>\w+)`, txt: "%" + string(p)})
			return 3, nil
		}
		if isLetterOrDigit(p) {
			return 0, &UnknownDirectiveError{Pattern: c.src, Directive: "%!" + string(p)}
		}
		// Permissive separator: any non-word run. The reconstruction keeps
		// only the separator itself.
		c.append(frag{re: `\W+`, txt: string(p)})
		return 3, nil
	}
	if expr, ok := numericDirectives[ch]; ok {
		c.append(frag{re: `(?P<` + string(ch) + `>` + expr + `)`, txt: "%" + string(ch)})
		return 2, nil
	}
	if expr, ok := textualDirective(ch, c.tab); ok {
		c.append(frag{re: `(?P<` + string(ch) + `>` + expr + `)`, txt: "%" + string(ch)})
		return 2, nil
	}
	if composite, ok := compositeDirective(ch, c.tab); ok {
		if err := c.run(composite); err != nil {
			return 0, err
		}
		return 2, nil
	}
	return 0, &UnknownDirectiveError{Pattern: c.src, Directive: "%" + string(ch)}
}

func isLetterOrDigit(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
