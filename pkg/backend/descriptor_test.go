// pkg/backend/descriptor_test.go
package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upm-tools/upm/pkg/core"
)

func validDescriptor() Descriptor {
	return Descriptor{
		Name:       "fake",
		Executable: "fakepkg",
		Actions: map[core.Action]Template{
			core.ActionInstall: {Argv: []string{"fakepkg", "add", Placeholder}, Arity: ArityMany},
			core.ActionUpdate:  {Argv: []string{"fakepkg", "upgrade"}, Arity: ArityNone},
		},
	}
}

func TestDescriptorValidate(t *testing.T) {
	valid := validDescriptor()
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Descriptor)
	}{
		{"empty name", func(d *Descriptor) { d.Name = "" }},
		{"empty executable", func(d *Descriptor) { d.Executable = "" }},
		{"no actions", func(d *Descriptor) { d.Actions = nil }},
		{"empty template", func(d *Descriptor) {
			d.Actions[core.ActionRemove] = Template{Arity: ArityNone}
		}},
		{"placeholder as argv0", func(d *Descriptor) {
			d.Actions[core.ActionRemove] = Template{Argv: []string{Placeholder, "del"}, Arity: ArityOne}
		}},
		{"package-less template with placeholder", func(d *Descriptor) {
			d.Actions[core.ActionList] = Template{Argv: []string{"fakepkg", "ls", Placeholder}, Arity: ArityNone}
		}},
		{"package template without placeholder", func(d *Descriptor) {
			d.Actions[core.ActionRemove] = Template{Argv: []string{"fakepkg", "del"}, Arity: ArityMany}
		}},
		{"two placeholders", func(d *Descriptor) {
			d.Actions[core.ActionRemove] = Template{Argv: []string{"fakepkg", Placeholder, Placeholder}, Arity: ArityMany}
		}},
		{"unknown action", func(d *Descriptor) {
			d.Actions[core.Action("frobnicate")] = Template{Argv: []string{"fakepkg", "x"}, Arity: ArityNone}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDescriptor()
			tt.mutate(&d)
			assert.Error(t, d.Validate())
		})
	}
}

func TestTemplateExpand(t *testing.T) {
	tmpl := Template{Argv: []string{"pm", "install", "-y", Placeholder}, Arity: ArityMany}

	assert.Equal(t,
		[]string{"pm", "install", "-y", "a", "b"},
		tmpl.Expand([]string{"a", "b"}))

	assert.Equal(t,
		[]string{"pm", "install", "-y"},
		tmpl.Expand(nil))

	noPkg := Template{Argv: []string{"pm", "upgrade"}, Arity: ArityNone}
	assert.Equal(t, []string{"pm", "upgrade"}, noPkg.Expand([]string{"ignored"}))
}

func TestDescriptorSupports(t *testing.T) {
	d := validDescriptor()
	assert.True(t, d.Supports(core.ActionInstall))
	assert.False(t, d.Supports(core.ActionSearch))
}

func TestBuiltinsAreValidAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Builtins() {
		require.NoError(t, d.Validate(), "builtin %q", d.Name)
		assert.False(t, seen[d.Name], "duplicate builtin name %q", d.Name)
		seen[d.Name] = true
	}
}

func TestBuiltinsReturnFreshCopies(t *testing.T) {
	first := Builtins()
	first[0].Actions[core.ActionInstall] = Template{Argv: []string{"tampered"}, Arity: ArityNone}

	second := Builtins()
	assert.NotEqual(t, []string{"tampered"}, second[0].Actions[core.ActionInstall].Argv)
}
