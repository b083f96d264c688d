package bashconf

import (
	"fmt"
	"strings"
)

// unparsedTag prefixes the content of comment records that preserve lines
// the classifier did not understand.
const unparsedTag = "UNPARSED: "

// line is one physical line of a config file. Concrete types are Variable,
// commentLine and blankLine.
type line interface {
	render() string
}

// Variable represents a single assignment line.
//
// Value holds the semantic value without any surrounding quotes. Quote
// holds the original quote marker (empty, `'`, `"`, or a rare two-character
// nested marker) so the line can be reproduced exactly. LeadingWS is the
// verbatim indentation of the original line.
//
// LineNumber is the original 1-based line number, or 0 for variables added
// programmatically that have not been written to a file yet.
type Variable struct {
	Name       string
	Value      string
	Style      Style
	Quote      string
	Comment    string
	LeadingWS  string
	LineNumber int

	raw string
}

func (v *Variable) render() string {
	value := v.Value
	if v.Quote != "" {
		value = v.Quote + value + v.Quote
	}

	comment := ""
	if v.Comment != "" {
		comment = "  # " + v.Comment
	}

	return fmt.Sprintf("%s%s%s%s%s%s", v.LeadingWS, v.Style.prefix(), v.Name, v.Style.separator(), value, comment)
}

// commentLine is a standalone comment, or an unrecognized line kept
// verbatim so no input is ever lost.
type commentLine struct {
	content    string
	raw        string
	lineNumber int
}

func (c *commentLine) render() string {
	return strings.TrimRight(c.raw, " \t\r\n")
}

// unparsed reports whether this record preserves a line the classifier
// did not understand.
func (c *commentLine) unparsed() bool {
	return strings.HasPrefix(c.content, unparsedTag)
}

// blankLine is an originally empty or whitespace-only line. It always
// renders as a fully empty line.
type blankLine struct {
	lineNumber int
}

func (b *blankLine) render() string {
	return ""
}
