package bashconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopasspw/gopass/pkg/appdir"
	"github.com/gopasspw/gopass/pkg/debug"
	"github.com/gopasspw/gopass/pkg/set"
)

// DefaultPattern matches every regular file in a directory.
const DefaultPattern = "*"

// Dir manages all shell-style config files in one directory, e.g.
// /etc/sysconfig, with a unified lookup across them.
//
// Each file is backed by its own Config. Lookups that span files visit
// them in sorted base-name order, so the first file (alphabetically) that
// defines a variable wins.
//
// Fields:
// - path: the directory all files live in
// - pattern: glob pattern the base names were matched against
// - configs: base name to parsed Config
// - NoWrites: if true, SaveAll does not touch the disk
//
// Usage:
//
//	d, err := LoadDir("/etc/sysconfig", "*")
//	if err != nil { ... }
//	value, file, ok := d.Get("NETWORKING")
//	d.SetIn("network", "NETWORKING", "yes")
//	if err := d.SaveAll(); err != nil { ... }
type Dir struct {
	path    string
	pattern string
	configs map[string]*Config

	NoWrites bool
}

// LoadDir loads every file in dir whose base name matches the glob
// pattern. An empty pattern means DefaultPattern. Subdirectories are
// skipped. A missing directory is not an error and yields an empty Dir.
func LoadDir(dir, pattern string) (*Dir, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	d := &Dir{
		path:    dir,
		pattern: pattern,
		configs: make(map[string]*Config, 16),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			debug.V(1).Log("directory %s does not exist, starting empty", dir)

			return d, nil
		}

		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ok, err := globMatch(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if !ok {
			debug.V(3).Log("skipping %s, does not match %q", name, pattern)

			continue
		}

		c, err := LoadConfig(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		d.configs[name] = c

		debug.V(1).Log("loaded %s from %s", name, dir)
	}

	return d, nil
}

// Files returns the sorted base names of all loaded files.
func (d *Dir) Files() []string {
	files := make([]string, 0, len(d.configs))
	for name := range d.configs {
		files = append(files, name)
	}

	return set.Sorted(files)
}

// Config returns the model for a single file by base name.
func (d *Dir) Config(file string) (*Config, bool) {
	c, found := d.configs[file]

	return c, found
}

// Get returns the value of name from the first file, in sorted base-name
// order, that defines it, along with the file it came from.
func (d *Dir) Get(name string) (string, string, bool) {
	for _, f := range d.Files() {
		if v, found := d.configs[f].Get(name); found {
			return v, f, true
		}
	}

	debug.V(3).Log("no value for %s found in %s", name, d.path)

	return "", "", false
}

// Keys returns a sorted list of all variable names across all files.
func (d *Dir) Keys() []string {
	keys := make([]string, 0, 128)
	for _, c := range d.configs {
		for k := range c.vars {
			keys = append(keys, k)
		}
	}

	return set.Sorted(keys)
}

// List returns all keys matching the given prefix. The prefix can be
// empty, then this is identical to Keys().
func (d *Dir) List(prefix string) []string {
	return set.SortedFiltered(d.Keys(), func(k string) bool {
		return strings.HasPrefix(k, prefix)
	})
}

// SetIn sets name in the given file, creating an empty model bound to the
// right path first if the file is not loaded yet.
func (d *Dir) SetIn(file, name, value string, opts ...SetOption) {
	c, found := d.configs[file]
	if !found {
		c = New()
		c.path = filepath.Join(d.path, file)
		d.configs[file] = c

		debug.V(2).Log("created new config for %s", c.path)
	}

	c.Set(name, value, opts...)
}

// SaveAll persists every loaded file. The first failure aborts.
func (d *Dir) SaveAll() error {
	for _, f := range d.Files() {
		c := d.configs[f]
		c.noWrites = d.NoWrites
		if err := c.Save(); err != nil {
			return fmt.Errorf("failed to save %s: %w", f, err)
		}
	}

	return nil
}

// UserConfigFile returns the default per-user config location for app,
// $XDG_CONFIG_HOME/<app>/env on most systems.
func UserConfigFile(app string) string {
	return filepath.Join(appdir.New(app).UserConfig(), "env")
}

// LoadUserConfig loads the per-user config for app. When none exists yet
// the returned config is empty and bound to the default location, so a
// later Save creates it.
func LoadUserConfig(app string) (*Config, error) {
	return LoadConfig(UserConfigFile(app))
}
