package bashconf

import (
	"io"
	"regexp"
	"strings"

	"github.com/gopasspw/gopass/pkg/debug"
)

var reComment = regexp.MustCompile(`^(\s*)#(.*)$`)

// ParseConfig will try to parse a shell-style config from the given
// io.Reader. It never fails. Lines with unrecognized syntax are preserved
// verbatim as opaque comment records.
func ParseConfig(r io.Reader) *Config {
	c := New()

	buf, err := io.ReadAll(r)
	if err != nil {
		debug.Log("failed to read config: %s", err)

		return c
	}

	c.ParseString(string(buf))

	return c
}

// ParseString rebuilds the whole model from content. Any previously parsed
// or programmatically added state is discarded. There is no incremental
// mode.
//
// Content is split on '\n', so a file ending in a newline produces a
// trailing blank record and the rendered output reproduces the input
// byte-for-byte.
func (c *Config) ParseString(content string) {
	c.lines = make([]line, 0, 128)
	c.vars = make(map[string]*Variable, 42)

	for i, raw := range strings.Split(content, "\n") {
		c.addParsedLine(parseLine(raw, i+1))
	}

	debug.V(3).Log("parsed %d lines, %d variables", len(c.lines), len(c.vars))
}

// addParsedLine appends a freshly parsed record. A repeated assignment of
// the same name wins over the earlier one; the earlier record is dropped
// from the ordered sequence so the name index and the sequence stay in
// step, with at most one entry per name.
func (c *Config) addParsedLine(ln line) {
	v, ok := ln.(*Variable)
	if !ok {
		c.lines = append(c.lines, ln)

		return
	}

	if old, present := c.vars[v.Name]; present {
		debug.V(2).Log("duplicate assignment of %q on line %d (first on line %d)", v.Name, v.LineNumber, old.LineNumber)
		c.removeRecord(old)
	}

	c.vars[v.Name] = v
	c.lines = append(c.lines, v)
}

// parseLine classifies a single physical line. Every line is representable:
// blank lines and standalone comments get their own record types and
// anything that matches no assignment pattern degrades to an opaque,
// verbatim comment record.
func parseLine(raw string, num int) line {
	if strings.TrimSpace(raw) == "" {
		return &blankLine{lineNumber: num}
	}

	if m := reComment.FindStringSubmatch(raw); m != nil {
		return &commentLine{content: strings.TrimSpace(m[2]), raw: raw, lineNumber: num}
	}

	if v, ok := parseVariableLine(raw, num); ok {
		return v
	}

	debug.V(3).Log("no pattern matched line %d: %q", num, raw)

	return &commentLine{content: unparsedTag + raw, raw: raw, lineNumber: num}
}

// parseVariableLine tries the four assignment patterns in their fixed order
// and builds a Variable from the first match.
func parseVariableLine(raw string, num int) (*Variable, bool) {
	for _, p := range stylePatterns {
		m := p.re.FindStringSubmatchIndex(raw)
		if m == nil {
			continue
		}

		ws := raw[m[2]:m[3]]
		name := raw[m[4]:m[5]]
		value := raw[m[6]:m[7]]

		// The lazy value group stops at the first '#' even when it sits
		// inside quotes, so comment extraction scans the whole remaining
		// tail with quote tracking instead of trusting the pattern split.
		var comment string
		if tail := strings.TrimRight(raw[m[6]:], " \t"); strings.Contains(tail, "#") {
			value, comment, _ = splitValueComment(tail)
		} else if m[8] >= 0 {
			comment = strings.TrimSpace(strings.TrimPrefix(raw[m[8]:m[9]], "#"))
		}

		quote, unquoted := extractQuotes(value)

		debug.V(3).Log("line %d: %s-style %s=%q (quote %q, comment %q)", num, p.style, name, unquoted, quote, comment)

		return &Variable{
			Name:       name,
			Value:      unquoted,
			Style:      p.style,
			Quote:      quote,
			Comment:    comment,
			LeadingWS:  ws,
			LineNumber: num,
			raw:        raw,
		}, true
	}

	return nil, false
}
