// pkg/backend/descriptor.go
package backend

import (
	"fmt"

	"github.com/upm-tools/upm/pkg/core"
)

// Placeholder marks the position in a command template where package names
// are substituted.
const Placeholder = "{pkg}"

// Arity describes how many package names a command template accepts.
type Arity int

const (
	// ArityNone means the template takes no package names (update, list)
	ArityNone Arity = iota
	// ArityOne means the template accepts exactly one name per invocation
	ArityOne
	// ArityMany means the template accepts any number of names
	ArityMany
)

func (a Arity) String() string {
	switch a {
	case ArityNone:
		return "none"
	case ArityOne:
		return "one"
	case ArityMany:
		return "many"
	}
	return "unknown"
}

// Substitution is a per-backend policy for intents carrying several package
// names: some managers want them all on one invocation, others one at a time.
type Substitution int

const (
	// AllPackages substitutes every name into a single invocation
	AllPackages Substitution = iota
	// PerPackage produces one invocation per package name
	PerPackage
)

func (s Substitution) String() string {
	if s == PerPackage {
		return "per-package"
	}
	return "all"
}

// Template is the argument vector for one action, with at most one
// Placeholder token where package names are spliced in.
type Template struct {
	Argv  []string
	Arity Arity
}

// Expand instantiates the template with the given package names. The caller
// is responsible for honoring the template's arity; Expand just splices.
func (t Template) Expand(packages []string) []string {
	argv := make([]string, 0, len(t.Argv)+len(packages))
	for _, arg := range t.Argv {
		if arg == Placeholder {
			argv = append(argv, packages...)
			continue
		}
		argv = append(argv, arg)
	}
	return argv
}

func (t Template) placeholderCount() int {
	n := 0
	for _, arg := range t.Argv {
		if arg == Placeholder {
			n++
		}
	}
	return n
}

// Descriptor is a declarative, data-only definition of one package manager.
// Descriptors are owned by the registry and read-only after initialization.
type Descriptor struct {
	// Name uniquely identifies the backend within the registry
	Name string
	// Executable is the program looked up on PATH; may differ from Name
	// (e.g. name "pip", executable "pip3")
	Executable string
	// Actions maps each supported action to its command template; an
	// absent key marks the action unsupported for this backend
	Actions map[core.Action]Template
	// Privilege marks backends whose mutating actions need elevation
	Privilege bool
	// Substitution picks the fan-out policy for multi-package intents
	Substitution Substitution
}

// Supports reports whether the backend defines the given action.
func (d *Descriptor) Supports(action core.Action) bool {
	_, ok := d.Actions[action]
	return ok
}

// Validate checks the descriptor for configuration defects. A failing
// descriptor aborts registry initialization; this is never a runtime
// condition.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("descriptor has empty name")
	}
	if d.Executable == "" {
		return fmt.Errorf("backend %q: empty executable", d.Name)
	}
	if len(d.Actions) == 0 {
		return fmt.Errorf("backend %q: no actions defined", d.Name)
	}

	for action, tmpl := range d.Actions {
		if _, err := core.ParseAction(string(action)); err != nil {
			return fmt.Errorf("backend %q: %w", d.Name, err)
		}
		if len(tmpl.Argv) == 0 {
			return fmt.Errorf("backend %q: action %q has empty template", d.Name, action)
		}
		if tmpl.Argv[0] == Placeholder {
			return fmt.Errorf("backend %q: action %q: placeholder cannot be argv[0]", d.Name, action)
		}

		n := tmpl.placeholderCount()
		switch tmpl.Arity {
		case ArityNone:
			if n != 0 {
				return fmt.Errorf("backend %q: action %q: package-less template contains %s", d.Name, action, Placeholder)
			}
		case ArityOne, ArityMany:
			if n != 1 {
				return fmt.Errorf("backend %q: action %q: template needs exactly one %s, has %d", d.Name, action, Placeholder, n)
			}
		default:
			return fmt.Errorf("backend %q: action %q: invalid arity %d", d.Name, action, tmpl.Arity)
		}
	}

	return nil
}
