// pkg/core/intent.go
package core

import "fmt"

// Intent is a normalized user request: one Action plus zero or more package
// name tokens. Names are opaque to the core; they are passed to backends
// verbatim unless an alias table says otherwise.
type Intent struct {
	Action   Action
	Packages []string
}

// NewIntent builds an Intent and validates it.
func NewIntent(action Action, packages []string) (Intent, error) {
	in := Intent{Action: action, Packages: packages}
	if err := in.Validate(); err != nil {
		return Intent{}, err
	}
	return in, nil
}

// Validate checks the action/arity pairing. Package names themselves are not
// validated against any naming scheme.
func (in Intent) Validate() error {
	if _, err := ParseAction(string(in.Action)); err != nil {
		return err
	}
	if in.Action.TakesPackages() && len(in.Packages) == 0 {
		return fmt.Errorf("action %q requires at least one package name", in.Action)
	}
	if !in.Action.TakesPackages() && len(in.Packages) > 0 {
		return fmt.Errorf("action %q does not take package names", in.Action)
	}
	for _, p := range in.Packages {
		if p == "" {
			return fmt.Errorf("empty package name")
		}
	}
	return nil
}
