package bashconf

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/gopasspw/gopass/pkg/debug"
)

// LoadConfig tries to load a shell-style config file from the given path.
//
// Behavior:
// - A missing file is not an error and yields an empty config bound to the
//   path, ready to be populated and saved.
// - Content that is not valid UTF-8 is decoded as Latin-1 before parsing.
// - Parsing itself never fails; see ParseConfig.
func LoadConfig(fn string) (*Config, error) {
	c := New()
	c.path = fn

	buf, err := os.ReadFile(fn)
	if err != nil {
		if os.IsNotExist(err) {
			debug.V(1).Log("config %s does not exist, starting empty", fn)

			return c, nil
		}

		return nil, fmt.Errorf("failed to read config from %s: %w", fn, err)
	}

	c.ParseString(decode(buf))

	debug.V(1).Log("loaded config from %s (%d lines)", fn, len(c.lines))

	return c, nil
}

// decode interprets buf as UTF-8 and falls back to Latin-1, where every
// byte maps to the code point of the same value.
func decode(buf []byte) string {
	if utf8.Valid(buf) {
		return string(buf)
	}

	debug.V(1).Log("content is not valid UTF-8, decoding as Latin-1")

	rs := make([]rune, len(buf))
	for i, b := range buf {
		rs[i] = rune(b)
	}

	return string(rs)
}

// Save writes the rendered document back to the file it was loaded from.
//
// Returns ErrNoFilePath if the config is not bound to a file; use SaveAs
// to supply an explicit destination.
func (c *Config) Save() error {
	if c.path == "" {
		return ErrNoFilePath
	}

	return c.SaveAs(c.path)
}

// SaveAs writes the rendered document to fn and binds the config to it.
//
// Behavior:
// - An existing file is copied to fn.bak first. Backup failures are logged
//   but do not abort the save.
// - Missing parent directories are created.
// - With noWrites set nothing is written (e.g. for tests).
func (c *Config) SaveAs(fn string) error {
	if c.noWrites {
		debug.V(3).Log("not writing changes to %s (noWrites set)", fn)

		return nil
	}

	if err := backupFile(fn); err != nil {
		debug.Log("failed to create backup of %s: %s", fn, err)
	}

	if err := os.MkdirAll(filepath.Dir(fn), 0o700); err != nil {
		return fmt.Errorf("failed to create directory %q for %q: %w", filepath.Dir(fn), fn, err)
	}

	if err := os.WriteFile(fn, []byte(c.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", fn, err)
	}

	c.path = fn

	debug.V(1).Log("wrote config to %s", fn)

	return nil
}

// backupFile copies fn to fn.bak. A missing fn is not an error.
func backupFile(fn string) error {
	buf, err := os.ReadFile(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	return os.WriteFile(fn+".bak", buf, 0o600)
}
