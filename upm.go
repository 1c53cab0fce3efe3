// upm.go
package upm

import (
	"context"
	"fmt"

	"github.com/upm-tools/upm/pkg/backend"
	"github.com/upm-tools/upm/pkg/core"
	"github.com/upm-tools/upm/pkg/dispatch"
	"github.com/upm-tools/upm/pkg/platform"
	"github.com/upm-tools/upm/pkg/registry"
	"github.com/upm-tools/upm/pkg/translate"
)

// Re-export core types for convenience
type (
	Action     = core.Action
	Intent     = core.Intent
	Command    = core.Command
	Result     = core.Result
	ResultSet  = core.ResultSet
	Outcome    = core.Outcome
	Config     = core.Config
	Descriptor = backend.Descriptor
)

// Re-export action constants
const (
	ActionInstall = core.ActionInstall
	ActionRemove  = core.ActionRemove
	ActionUpdate  = core.ActionUpdate
	ActionSearch  = core.ActionSearch
	ActionList    = core.ActionList
)

// Re-export outcome constants
const (
	OutcomeSuccess       = core.OutcomeSuccess
	OutcomeExitFailure   = core.OutcomeExitFailure
	OutcomeLaunchFailure = core.OutcomeLaunchFailure
	OutcomeUnsupported   = core.OutcomeUnsupported
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Manager is the unified frontend over every package manager found on the
// host. The active backend set is probed once at construction and stays
// fixed for the Manager's lifetime; a fresh process re-probes.
type Manager struct {
	config     *core.Config
	registry   *registry.Registry
	aliases    *registry.Aliases
	platform   *platform.Platform
	active     []backend.Descriptor
	dispatcher *dispatch.Dispatcher
}

// NewManager builds the registry from the built-in table plus any
// user-supplied descriptors, probes the host, and wires up the dispatcher.
func NewManager(config *core.Config) (*Manager, error) {
	if config == nil {
		config = core.DefaultConfig()
	}

	descriptors := backend.Builtins()
	if config.ManagerDir != "" {
		extra, err := backend.LoadDir(config.ManagerDir)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, extra...)
	}

	reg, err := registry.New(descriptors)
	if err != nil {
		return nil, err
	}

	return New(config, reg)
}

// New builds a Manager over an explicit registry. Tests use this to drive
// arbitrary descriptor sets without touching the real host configuration.
func New(config *core.Config, reg *registry.Registry) (*Manager, error) {
	if config == nil {
		config = core.DefaultConfig()
	}

	plat := platform.Detect(reg)

	for _, name := range append(append([]string{}, config.Managers...), config.ExcludeManagers...) {
		if _, ok := reg.Get(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
		}
	}
	active := filterActive(plat.Active, config.Managers, config.ExcludeManagers)

	maxParallel := config.MaxParallel
	if !config.Parallel {
		maxParallel = 1
	}

	config.Logger.Debug().
		Strs("active", names(active)).
		Str("platform", plat.OS+"/"+plat.Arch).
		Msg("probed backends")

	return &Manager{
		config:     config,
		registry:   reg,
		aliases:    registry.NewAliases(config.ResolveAliasDir()),
		platform:   plat,
		active:     active,
		dispatcher: dispatch.New(config.SudoCommand, maxParallel, config.Logger),
	}, nil
}

// Run translates the intent against the active backend set and executes the
// resulting commands. The returned set holds one entry per contributing
// backend in active-set order: executed results for backends that define the
// action, unsupported markers for the rest. An all-unsupported (or empty)
// set means no capable backend; that is a reportable outcome, not an error.
func (m *Manager) Run(ctx context.Context, intent core.Intent) (*core.ResultSet, error) {
	if err := intent.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIntent, err)
	}

	commands := translate.Translate(intent, m.active, m.aliases.Resolve)

	executed, err := m.dispatcher.Execute(ctx, commands)
	if err != nil {
		return executed, err
	}

	return m.annotate(intent, executed), nil
}

// annotate interleaves unsupported markers for active backends that
// contributed no command, preserving active-set order.
func (m *Manager) annotate(intent core.Intent, executed *core.ResultSet) *core.ResultSet {
	out := &core.ResultSet{}
	j := 0

	for i := range m.active {
		d := &m.active[i]
		if !d.Supports(intent.Action) {
			out.Results = append(out.Results, core.Result{
				Backend: d.Name,
				Action:  intent.Action,
				Outcome: core.OutcomeUnsupported,
			})
			continue
		}
		for j < len(executed.Results) && executed.Results[j].Backend == d.Name {
			out.Results = append(out.Results, executed.Results[j])
			j++
		}
	}

	return out
}

// Active returns the probed (and filtered) backend descriptors for this run.
func (m *Manager) Active() []backend.Descriptor {
	out := make([]backend.Descriptor, len(m.active))
	copy(out, m.active)
	return out
}

// Registry returns the full descriptor registry.
func (m *Manager) Registry() *registry.Registry {
	return m.registry
}

// Platform returns the host snapshot taken at construction.
func (m *Manager) Platform() *platform.Platform {
	return m.platform
}

func filterActive(active []backend.Descriptor, only, exclude []string) []backend.Descriptor {
	keep := make([]backend.Descriptor, 0, len(active))
	for _, d := range active {
		if len(only) > 0 && !contains(only, d.Name) {
			continue
		}
		if contains(exclude, d.Name) {
			continue
		}
		keep = append(keep, d)
	}
	return keep
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func names(descriptors []backend.Descriptor) []string {
	out := make([]string, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.Name
	}
	return out
}
