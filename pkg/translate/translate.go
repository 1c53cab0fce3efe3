// pkg/translate/translate.go

// Package translate turns a normalized intent into concrete commands, one or
// more per active backend that defines the intent's action. It is a pure
// function over its inputs: no host state is consulted, which keeps it
// testable against arbitrary active sets.
package translate

import (
	"github.com/upm-tools/upm/pkg/backend"
	"github.com/upm-tools/upm/pkg/core"
)

// Resolver maps a canonical package name to a backend-specific one. A nil
// Resolver passes names through verbatim.
type Resolver func(name, backendName string) string

// Translate produces the commands for an intent across the active backends,
// in active-set order. Backends that do not define the action contribute
// nothing; an empty result is a normal "unsupported" outcome, not an error.
func Translate(intent core.Intent, active []backend.Descriptor, resolve Resolver) []core.Command {
	var commands []core.Command

	for i := range active {
		d := &active[i]
		tmpl, ok := d.Actions[intent.Action]
		if !ok {
			continue
		}

		names := resolveAll(intent.Packages, d.Name, resolve)

		switch {
		case tmpl.Arity == backend.ArityNone:
			commands = append(commands, command(d, intent.Action, tmpl.Expand(nil)))

		case tmpl.Arity == backend.ArityOne || d.Substitution == backend.PerPackage:
			// one invocation per package, input order
			for _, name := range names {
				commands = append(commands, command(d, intent.Action, tmpl.Expand([]string{name})))
			}

		default:
			commands = append(commands, command(d, intent.Action, tmpl.Expand(names)))
		}
	}

	return commands
}

func command(d *backend.Descriptor, action core.Action, argv []string) core.Command {
	return core.Command{
		Backend:   d.Name,
		Action:    action,
		Argv:      argv,
		Privilege: d.Privilege,
	}
}

func resolveAll(packages []string, backendName string, resolve Resolver) []string {
	if resolve == nil {
		return packages
	}
	resolved := make([]string, len(packages))
	for i, name := range packages {
		resolved[i] = resolve(name, backendName)
	}
	return resolved
}
