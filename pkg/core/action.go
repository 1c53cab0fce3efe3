// pkg/core/action.go
package core

import (
	"fmt"
	"strings"
)

// Action is one of the fixed operations upm understands. The vocabulary is
// closed: adding an action means touching every backend descriptor, so it is
// a code change, not configuration.
type Action string

const (
	// ActionInstall installs one or more packages
	ActionInstall Action = "install"
	// ActionRemove removes one or more packages
	ActionRemove Action = "remove"
	// ActionUpdate upgrades all installed packages
	ActionUpdate Action = "update"
	// ActionSearch searches the backend's repositories
	ActionSearch Action = "search"
	// ActionList lists installed packages
	ActionList Action = "list"
)

// Actions is the full vocabulary in presentation order.
var Actions = []Action{
	ActionInstall,
	ActionRemove,
	ActionUpdate,
	ActionSearch,
	ActionList,
}

// ParseAction converts a user-supplied string into an Action.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Actions {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action: %q", s)
}

// Mutating reports whether the action changes the host's installed set.
// Only mutating actions are run with elevated privileges.
func (a Action) Mutating() bool {
	switch a {
	case ActionInstall, ActionRemove, ActionUpdate:
		return true
	}
	return false
}

// TakesPackages reports whether the action accepts package-name arguments.
// Update and List are inherently package-less.
func (a Action) TakesPackages() bool {
	switch a {
	case ActionUpdate, ActionList:
		return false
	}
	return true
}

func (a Action) String() string {
	return string(a)
}
