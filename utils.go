package bashconf

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

// Newly authored names must not contain dots, even though the bash-style
// line pattern accepts them when parsing existing files.
var reValidName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether name is acceptable for a newly authored
// variable. The check is advisory: Set accepts any name so that files with
// unusual but working names can still be edited programmatically.
func ValidName(name string) bool {
	return reValidName.MatchString(name)
}

// extractQuotes determines the quote marker enclosing value and returns the
// marker together with the unquoted content. At most one quote layer is
// stripped. Rare nested markers like `'"value"'` are handled as a
// single-pass special form, not by recursion.
func extractQuotes(value string) (string, string) {
	if value == "" {
		return "", ""
	}

	if len(value) >= 2 && strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") {
		return "'", value[1 : len(value)-1]
	}

	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return `"`, value[1 : len(value)-1]
	}

	if len(value) >= 4 {
		if (strings.HasPrefix(value, `'"`) && strings.HasSuffix(value, `"'`)) ||
			(strings.HasPrefix(value, `"'`) && strings.HasSuffix(value, `'"`)) {
			return value[:2], value[2 : len(value)-2]
		}
	}

	return "", value
}

// splitValueComment scans value for the first '#' that is not protected by
// quoting and splits the string there. A backslash escapes exactly the next
// character. Single quotes toggle only outside double quotes and vice
// versa. Quote parity is stateful, which is why this is a hand-written
// scanner and not part of the line patterns.
//
// When no unquoted '#' exists the full input is returned as the value and
// found is false.
func splitValueComment(value string) (string, string, bool) {
	var inSingle, inDouble, escaped bool

	for i, r := range value {
		if escaped {
			escaped = false

			continue
		}

		switch r {
		case '\\':
			escaped = true
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '#':
			if !inSingle && !inDouble {
				return strings.TrimRight(value[:i], " \t"), strings.TrimSpace(value[i+1:]), true
			}
		}
	}

	return value, "", false
}

// globMatch matches a file base name against a glob pattern.
func globMatch(pattern, name string) (bool, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return false, err
	}

	return g.Match(name), nil
}
