// pkg/backend/load.go
package backend

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/upm-tools/upm/pkg/core"
)

// descriptorFile is the on-disk form of a user-supplied descriptor. The
// backend's name comes from the file name, e.g. managers/yay.toml:
//
//	executable = "yay"
//	privilege = false
//	substitution = "all"
//
//	[actions]
//	install = "yay -S --noconfirm {pkg}"
//	remove = "yay -R --noconfirm {pkg}"
//	update = "yay -Syu --noconfirm"
type descriptorFile struct {
	Executable   string            `toml:"executable"`
	Privilege    bool              `toml:"privilege"`
	Substitution string            `toml:"substitution"`
	Actions      map[string]string `toml:"actions"`
}

// LoadDir reads every *.toml descriptor in dir. A missing dir yields no
// descriptors; a malformed file is a configuration error.
func LoadDir(dir string) ([]Descriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading manager dir: %w", err)
	}

	var descriptors []Descriptor
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		name := strings.TrimSuffix(entry.Name(), ".toml")

		d, err := loadFile(name, path)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}

	return descriptors, nil
}

func loadFile(name, path string) (Descriptor, error) {
	var file descriptorFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Descriptor{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	d := Descriptor{
		Name:       name,
		Executable: file.Executable,
		Privilege:  file.Privilege,
		Actions:    make(map[core.Action]Template, len(file.Actions)),
	}

	switch file.Substitution {
	case "", "all":
		d.Substitution = AllPackages
	case "per-package":
		d.Substitution = PerPackage
	default:
		return Descriptor{}, fmt.Errorf("%s: unknown substitution policy %q", path, file.Substitution)
	}

	for actionName, command := range file.Actions {
		action, err := core.ParseAction(actionName)
		if err != nil {
			return Descriptor{}, fmt.Errorf("%s: %w", path, err)
		}
		d.Actions[action] = parseTemplate(command)
	}

	if err := d.Validate(); err != nil {
		return Descriptor{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// parseTemplate splits a whitespace-separated command string into a
// template. Arity is inferred from the placeholder: templates without one
// are package-less.
func parseTemplate(command string) Template {
	argv := strings.Fields(command)
	t := Template{Argv: argv, Arity: ArityNone}
	for _, arg := range argv {
		if arg == Placeholder {
			t.Arity = ArityMany
			break
		}
	}
	return t
}
