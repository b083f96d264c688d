package bashconf

import "regexp"

// Style identifies the syntax used to declare a variable.
type Style int

const (
	// StyleBash is a plain `VAR=value` assignment.
	StyleBash Style = iota
	// StyleExport is `export VAR=value`.
	StyleExport
	// StyleDeclare is `declare -x VAR=value`.
	StyleDeclare
	// StyleSetenv is the csh/tcsh `setenv VAR value` form.
	StyleSetenv
)

// String implements fmt.Stringer.
func (s Style) String() string {
	switch s {
	case StyleBash:
		return "bash"
	case StyleExport:
		return "export"
	case StyleDeclare:
		return "declare"
	case StyleSetenv:
		return "setenv"
	default:
		return "unknown"
	}
}

// prefix returns the keyword(s) leading a declaration in this style,
// including the trailing space. Plain assignments have no prefix.
func (s Style) prefix() string {
	switch s {
	case StyleExport:
		return "export "
	case StyleDeclare:
		return "declare -x "
	case StyleSetenv:
		return "setenv "
	default:
		return ""
	}
}

// separator returns the token between name and value.
func (s Style) separator() string {
	if s == StyleSetenv {
		return " "
	}

	return "="
}

var (
	// Plain bash assignments additionally allow dots in the name.
	reBash    = regexp.MustCompile(`^(\s*)([A-Za-z_][A-Za-z0-9_.]*)\s*=\s*(.*?)\s*(#.*)?$`)
	reExport  = regexp.MustCompile(`^(\s*)export\s+([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.*?)\s*(#.*)?$`)
	reDeclare = regexp.MustCompile(`^(\s*)declare\s+-x\s+([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.*?)\s*(#.*)?$`)
	reSetenv  = regexp.MustCompile(`^(\s*)setenv\s+([A-Za-z_][A-Za-z0-9_]*)\s+(.*?)\s*(#.*)?$`)
)

// stylePatterns lists the recognized assignment patterns in the order they
// are tried. The order is fixed so classification stays reproducible.
var stylePatterns = []struct {
	style Style
	re    *regexp.Regexp
}{
	{StyleBash, reBash},
	{StyleExport, reExport},
	{StyleDeclare, reDeclare},
	{StyleSetenv, reSetenv},
}
