// Package bashconf implements a round-trip preserving parser and editor for
// shell-style configuration files such as /etc/sysconfig/* or .bashrc-like
// snippets. Files are parsed into a sequence of typed line records
// (assignments, comments, blank lines) that can be read and modified
// programmatically and serialized back to text. Untouched lines are
// reproduced byte-for-byte; only explicitly modified lines change.
//
// The package targets the restricted syntax used by simple sysconfig-style
// files: one assignment per line, with an optional export, declare -x or
// setenv prefix and an optional trailing comment. It is not a full POSIX
// shell parser; arithmetic expansion, command substitution, arrays and
// here-documents are out of scope. Lines the parser does not understand
// are preserved verbatim and excluded from lookups, so editing a file
// never loses data.
//
// # Recognized styles
//
// Four declaration styles are recognized and preserved:
//
//   - bash:    VAR=value
//   - export:  export VAR=value
//   - declare: declare -x VAR=value
//   - setenv:  setenv VAR value
//
// Values may be unquoted, single-quoted or double-quoted; the original
// quote marker is kept for exact reserialization. Trailing comments are
// split from values with full quote tracking, so VAR="a#b" keeps its value
// intact while VAR=value # note yields the comment "note".
//
// # Usage
//
// Load a file, edit it and write it back:
//
//	cfg, err := bashconf.LoadConfig("/etc/sysconfig/network")
//	if err != nil {
//		return err
//	}
//	if v, ok := cfg.Get("HOSTNAME"); ok {
//		fmt.Println("hostname:", v)
//	}
//	cfg.Set("NETWORKING", "yes", bashconf.WithComment("managed"))
//	if err := cfg.Save(); err != nil {
//		return err
//	}
//
// A missing file yields an empty config bound to the path, so the same
// code path creates new files. Save writes a .bak copy of an existing
// file before overwriting it.
//
// Whole directories of config files can be handled with LoadDir, which
// matches file names against a glob pattern and offers lookups across all
// loaded files.
//
// Note: For tests users will want to set Dir.NoWrites to avoid
// overwriting real configs; all Save operations honor it.
package bashconf
