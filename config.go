package bashconf

import (
	"slices"
	"strings"

	"github.com/gopasspw/gopass/pkg/debug"
)

// Config represents a single shell-style configuration file, e.g. one of
// the files under /etc/sysconfig or a .bashrc-like snippet.
//
// Config keeps an ordered sequence of typed line records (assignments,
// comments, blank lines) plus a name index into the assignment records.
// Both views share the same record objects, so in-place updates through
// Set are visible everywhere. Untouched lines reproduce byte-for-byte on
// render; only explicitly modified lines change.
//
// Fields:
// - path: file this config is bound to, if any
// - noWrites: if true, prevents persisting changes to disk (useful for tests)
// - lines: ordered line records in file order
// - vars: name index pointing into the same Variable records as lines
//
// Note: Config is not thread-safe. Concurrent access from multiple
// goroutines is not supported. Callers must provide synchronization if
// needed; independent instances can be used in parallel freely.
//
// Typical Usage:
//
//	cfg, err := LoadConfig("/etc/sysconfig/network")
//	if err != nil { ... }
//	value, ok := cfg.Get("HOSTNAME")
//	cfg.Set("HOSTNAME", "mars", WithQuote(`"`))
//	if err := cfg.Save(); err != nil { ... }
type Config struct {
	path     string
	noWrites bool
	lines    []line
	vars     map[string]*Variable
}

// New returns an empty config that is not bound to any file.
func New() *Config {
	return &Config{
		lines: make([]line, 0, 128),
		vars:  make(map[string]*Variable, 42),
	}
}

// Path returns the file this config is bound to, or the empty string.
func (c *Config) Path() string {
	return c.path
}

// IsEmpty returns true if the config has no lines at all.
//
// This is used to distinguish between "not yet loaded" and "loaded but
// empty file".
func (c *Config) IsEmpty() bool {
	if c == nil || c.vars == nil {
		return true
	}

	return len(c.lines) == 0
}

// Len returns the number of line records, assignments and otherwise.
// Positions passed to AddCommentAt and AddBlankLineAt refer to this range.
func (c *Config) Len() int {
	return len(c.lines)
}

// Get returns the unquoted value of the named variable.
//
// Returns (value, true) if the variable is set, ("", false) otherwise.
// Names are case-sensitive, as in the shell.
func (c *Config) Get(name string) (string, bool) {
	v, found := c.vars[name]
	if !found {
		return "", false
	}

	return v.Value, true
}

// GetDefault returns the unquoted value of the named variable, or def if
// it is not set.
func (c *Config) GetDefault(name, def string) string {
	if v, found := c.Get(name); found {
		return v
	}

	return def
}

// IsSet returns true if the variable exists, even with an empty value.
func (c *Config) IsSet(name string) bool {
	_, present := c.vars[name]

	return present
}

// Var returns the full record of the named variable for callers that need
// more than the value, e.g. the declaration style or the inline comment.
// The record is shared with the config; do not mutate it concurrently.
func (c *Config) Var(name string) (*Variable, bool) {
	v, found := c.vars[name]

	return v, found
}

type setOpts struct {
	style      Style
	quote      string
	comment    string
	hasComment bool
}

// SetOption customizes a single Set call.
type SetOption func(*setOpts)

// WithStyle selects the declaration style for the assignment. The default
// is StyleBash.
func WithStyle(s Style) SetOption {
	return func(o *setOpts) {
		o.style = s
	}
}

// WithQuote sets the quote marker to wrap the value in. An empty marker
// keeps the marker the variable already has.
func WithQuote(q string) SetOption {
	return func(o *setOpts) {
		o.quote = q
	}
}

// WithComment sets the inline comment of the assignment. Without this
// option an existing comment is kept; an empty text clears it.
func WithComment(text string) SetOption {
	return func(o *setOpts) {
		o.comment = text
		o.hasComment = true
	}
}

// Set updates or adds a variable.
//
// Behavior:
// - If the name exists, the record is updated in place and keeps its
//   position in the file. The quote marker is kept unless WithQuote gives
//   a non-empty one, the comment is kept unless WithComment is supplied.
// - If the name does not exist, a new record is appended at the end with
//   line number 0.
// - The style is always written, defaulting to StyleBash.
//
// Set never validates the name; use ValidName before calling Set when the
// name comes from untrusted input.
func (c *Config) Set(name, value string, opts ...SetOption) {
	o := setOpts{style: StyleBash}
	for _, opt := range opts {
		opt(&o)
	}

	if c.vars == nil {
		c.vars = make(map[string]*Variable, 16)
	}

	if v, present := c.vars[name]; present {
		v.Value = value
		v.Style = o.style
		if o.quote != "" {
			v.Quote = o.quote
		}
		if o.hasComment {
			v.Comment = o.comment
		}

		debug.V(3).Log("updated %q to %q", name, value)

		return
	}

	v := &Variable{
		Name:    name,
		Value:   value,
		Style:   o.style,
		Quote:   o.quote,
		Comment: o.comment,
	}
	c.vars[name] = v
	c.lines = append(c.lines, v)

	debug.V(3).Log("added %q = %q", name, value)
}

// Remove deletes a variable from the config.
//
// The record is removed from both the ordered sequence and the name index.
// Returns whether the variable existed.
func (c *Config) Remove(name string) bool {
	v, present := c.vars[name]
	if !present {
		return false
	}

	delete(c.vars, name)
	c.removeRecord(v)

	debug.V(3).Log("removed %q", name)

	return true
}

func (c *Config) removeRecord(target line) {
	c.lines = slices.DeleteFunc(c.lines, func(ln line) bool {
		return ln == target
	})
}

// AddComment appends a standalone comment line at the end of the file.
func (c *Config) AddComment(text string) {
	c.AddCommentAt(len(c.lines), text)
}

// AddCommentAt inserts a standalone comment line at the given position in
// the line sequence. Out-of-range positions are clamped.
func (c *Config) AddCommentAt(pos int, text string) {
	c.insertRecord(pos, &commentLine{content: text, raw: "# " + text})
}

// AddBlankLine appends an empty line at the end of the file.
func (c *Config) AddBlankLine() {
	c.AddBlankLineAt(len(c.lines))
}

// AddBlankLineAt inserts an empty line at the given position in the line
// sequence. Out-of-range positions are clamped.
func (c *Config) AddBlankLineAt(pos int) {
	c.insertRecord(pos, &blankLine{})
}

func (c *Config) insertRecord(pos int, ln line) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(c.lines) {
		pos = len(c.lines)
	}

	c.lines = slices.Insert(c.lines, pos, ln)
}

// AllVariables returns a snapshot of all variable names mapped to their
// unquoted values. Mutating the returned map does not affect the config.
func (c *Config) AllVariables() map[string]string {
	out := make(map[string]string, len(c.vars))
	for name, v := range c.vars {
		out[name] = v.Value
	}

	return out
}

// String renders the whole document, joining all line records with
// newlines in file order. It implements fmt.Stringer and produces exactly
// the text Save writes to disk.
func (c *Config) String() string {
	parts := make([]string, len(c.lines))
	for i, ln := range c.lines {
		parts[i] = ln.render()
	}

	return strings.Join(parts, "\n")
}
