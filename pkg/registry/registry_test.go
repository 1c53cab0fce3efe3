// pkg/registry/registry_test.go
package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upm-tools/upm/pkg/backend"
	"github.com/upm-tools/upm/pkg/core"
)

func descriptor(name string) backend.Descriptor {
	return backend.Descriptor{
		Name:       name,
		Executable: name,
		Actions: map[core.Action]backend.Template{
			core.ActionInstall: {
				Argv:  []string{name, "install", backend.Placeholder},
				Arity: backend.ArityMany,
			},
		},
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New([]backend.Descriptor{descriptor("apt"), descriptor("apt")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestNewRejectsInvalidDescriptor(t *testing.T) {
	bad := descriptor("apt")
	bad.Executable = ""
	_, err := New([]backend.Descriptor{bad})
	assert.Error(t, err)
}

func TestRegistryPreservesOrder(t *testing.T) {
	reg, err := New([]backend.Descriptor{
		descriptor("pacman"), descriptor("npm"), descriptor("pip"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"pacman", "npm", "pip"}, reg.Names())
	assert.Equal(t, 3, reg.Len())
}

func TestRegistryGet(t *testing.T) {
	reg, err := New([]backend.Descriptor{descriptor("npm")})
	require.NoError(t, err)

	d, ok := reg.Get("npm")
	assert.True(t, ok)
	assert.Equal(t, "npm", d.Name)

	_, ok = reg.Get("pacman")
	assert.False(t, ok)
}

func TestRegistryHoldsBuiltins(t *testing.T) {
	reg, err := New(backend.Builtins())
	require.NoError(t, err)
	assert.Greater(t, reg.Len(), 0)
}

func TestAllReturnsCopy(t *testing.T) {
	reg, err := New([]backend.Descriptor{descriptor("npm")})
	require.NoError(t, err)

	all := reg.All()
	all[0].Name = "tampered"

	d, ok := reg.Get("npm")
	require.True(t, ok)
	assert.Equal(t, "npm", d.Name)
}
