// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"

	"github.com/upm-tools/upm/pkg/backend"
	"github.com/upm-tools/upm/pkg/registry"
)

// Platform is a snapshot of the host taken once per run: OS, architecture
// and the backends whose executables resolved on PATH. It is read-only after
// Detect and safe to share across concurrent dispatches.
type Platform struct {
	OS     string // linux, darwin, windows
	Arch   string // amd64, arm64, 386, arm
	Active []backend.Descriptor
}

// Detect probes the registry against the current host. Probing is a
// resolve-only check; no backend is ever executed. An unresolvable
// executable silently excludes its backend, and an empty active set is a
// valid outcome.
func Detect(reg *registry.Registry) *Platform {
	return &Platform{
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
		Active: Probe(reg.All()),
	}
}

// Probe returns the subset of descriptors whose executable resolves on the
// current PATH, preserving input order. Calling it twice against the same
// host state yields the same set.
func Probe(descriptors []backend.Descriptor) []backend.Descriptor {
	active := make([]backend.Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if commandExists(d.Executable) {
			active = append(active, d)
		}
	}
	return active
}

// ActiveNames returns the names of the active backends in probe order.
func (p *Platform) ActiveNames() []string {
	names := make([]string, len(p.Active))
	for i, d := range p.Active {
		names[i] = d.Name
	}
	return names
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (active: %v)", p.OS, p.Arch, p.ActiveNames())
}
