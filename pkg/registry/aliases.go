// pkg/registry/aliases.go
package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// AliasEntry is a single aliases/<name>.toml file: one canonical package
// name mapped to what each backend calls it.
//
//	name = "sqlite3"
//
//	[backends]
//	apt = "libsqlite3-dev"
//	dnf = "sqlite-devel"
//	brew = "sqlite"
type AliasEntry struct {
	Name     string            `toml:"name"`
	Backends map[string]string `toml:"backends"`
}

// Aliases provides lookup into a directory of alias tables. Lookups are
// best-effort: a package without a table simply keeps its name.
type Aliases struct {
	dir string
}

// NewAliases creates an alias lookup over the given directory.
func NewAliases(dir string) *Aliases {
	return &Aliases{dir: dir}
}

// Resolve maps a canonical package name to the backend-specific name,
// e.g. Resolve("sqlite3", "apt") -> "libsqlite3-dev". When no alias applies
// the name is returned verbatim.
func (a *Aliases) Resolve(name, backend string) string {
	entry, err := a.Load(name)
	if err != nil {
		return name
	}

	aliased, ok := entry.Backends[backend]
	if !ok || aliased == "" {
		return name
	}
	return aliased
}

// Load reads and parses aliases/<name>.toml.
func (a *Aliases) Load(name string) (*AliasEntry, error) {
	if a.dir == "" {
		return nil, fmt.Errorf("aliases: no alias directory configured")
	}

	path := filepath.Join(a.dir, name+".toml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("aliases: no table for package %q", name)
		}
		return nil, fmt.Errorf("aliases: reading %s: %w", path, err)
	}

	var entry AliasEntry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("aliases: failed to parse %s: %w", path, err)
	}

	return &entry, nil
}
