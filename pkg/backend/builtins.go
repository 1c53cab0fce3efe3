// pkg/backend/builtins.go
package backend

import "github.com/upm-tools/upm/pkg/core"

// Builtins returns the compiled-in descriptor table. Each call returns fresh
// copies so callers can never mutate the source table.
//
// The table is a closed set on purpose: adding a manager here is a reviewed
// change, while ad-hoc managers can be supplied through LoadDir.
func Builtins() []Descriptor {
	return []Descriptor{
		{
			Name:       "apt",
			Executable: "apt",
			Privilege:  true,
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"apt", "install", "-y", Placeholder}, Arity: ArityMany},
				core.ActionRemove:  {Argv: []string{"apt", "remove", "-y", Placeholder}, Arity: ArityMany},
				core.ActionUpdate:  {Argv: []string{"apt", "upgrade", "-y"}, Arity: ArityNone},
				core.ActionSearch:  {Argv: []string{"apt", "search", Placeholder}, Arity: ArityMany},
				core.ActionList:    {Argv: []string{"apt", "list", "--installed"}, Arity: ArityNone},
			},
		},
		{
			Name:       "dnf",
			Executable: "dnf",
			Privilege:  true,
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"dnf", "install", "-y", Placeholder}, Arity: ArityMany},
				core.ActionRemove:  {Argv: []string{"dnf", "remove", "-y", Placeholder}, Arity: ArityMany},
				core.ActionUpdate:  {Argv: []string{"dnf", "upgrade", "-y"}, Arity: ArityNone},
				core.ActionSearch:  {Argv: []string{"dnf", "search", Placeholder}, Arity: ArityMany},
				core.ActionList:    {Argv: []string{"dnf", "list", "--installed"}, Arity: ArityNone},
			},
		},
		{
			Name:       "pacman",
			Executable: "pacman",
			Privilege:  true,
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"pacman", "-S", "--noconfirm", Placeholder}, Arity: ArityMany},
				core.ActionRemove:  {Argv: []string{"pacman", "-R", "--noconfirm", Placeholder}, Arity: ArityMany},
				core.ActionUpdate:  {Argv: []string{"pacman", "-Syu", "--noconfirm"}, Arity: ArityNone},
				core.ActionSearch:  {Argv: []string{"pacman", "-Ss", Placeholder}, Arity: ArityMany},
				core.ActionList:    {Argv: []string{"pacman", "-Q"}, Arity: ArityNone},
			},
		},
		{
			Name:       "zypper",
			Executable: "zypper",
			Privilege:  true,
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"zypper", "--non-interactive", "install", Placeholder}, Arity: ArityMany},
				core.ActionRemove:  {Argv: []string{"zypper", "--non-interactive", "remove", Placeholder}, Arity: ArityMany},
				core.ActionUpdate:  {Argv: []string{"zypper", "--non-interactive", "update"}, Arity: ArityNone},
				core.ActionSearch:  {Argv: []string{"zypper", "search", Placeholder}, Arity: ArityMany},
				core.ActionList:    {Argv: []string{"zypper", "search", "--installed-only"}, Arity: ArityNone},
			},
		},
		{
			Name:       "apk",
			Executable: "apk",
			Privilege:  true,
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"apk", "add", Placeholder}, Arity: ArityMany},
				core.ActionRemove:  {Argv: []string{"apk", "del", Placeholder}, Arity: ArityMany},
				core.ActionUpdate:  {Argv: []string{"apk", "upgrade"}, Arity: ArityNone},
				core.ActionSearch:  {Argv: []string{"apk", "search", Placeholder}, Arity: ArityMany},
				core.ActionList:    {Argv: []string{"apk", "info"}, Arity: ArityNone},
			},
		},
		{
			Name:       "brew",
			Executable: "brew",
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"brew", "install", Placeholder}, Arity: ArityMany},
				core.ActionRemove:  {Argv: []string{"brew", "uninstall", Placeholder}, Arity: ArityMany},
				core.ActionUpdate:  {Argv: []string{"brew", "upgrade"}, Arity: ArityNone},
				core.ActionSearch:  {Argv: []string{"brew", "search", Placeholder}, Arity: ArityMany},
				core.ActionList:    {Argv: []string{"brew", "list"}, Arity: ArityNone},
			},
		},
		{
			Name:       "nix",
			Executable: "nix-env",
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"nix-env", "-i", Placeholder}, Arity: ArityMany},
				core.ActionRemove:  {Argv: []string{"nix-env", "-e", Placeholder}, Arity: ArityMany},
				core.ActionUpdate:  {Argv: []string{"nix-env", "-u"}, Arity: ArityNone},
				core.ActionSearch:  {Argv: []string{"nix-env", "-qa", Placeholder}, Arity: ArityMany},
				core.ActionList:    {Argv: []string{"nix-env", "-q"}, Arity: ArityNone},
			},
		},
		{
			Name:       "choco",
			Executable: "choco",
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"choco", "install", "-y", Placeholder}, Arity: ArityMany},
				core.ActionRemove:  {Argv: []string{"choco", "uninstall", "-y", Placeholder}, Arity: ArityMany},
				core.ActionUpdate:  {Argv: []string{"choco", "upgrade", "all", "-y"}, Arity: ArityNone},
				core.ActionSearch:  {Argv: []string{"choco", "search", Placeholder}, Arity: ArityOne},
				core.ActionList:    {Argv: []string{"choco", "list"}, Arity: ArityNone},
			},
		},
		{
			// winget refuses multi-package invocations, so everything
			// fans out one package at a time
			Name:         "winget",
			Executable:   "winget",
			Substitution: PerPackage,
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"winget", "install", "--silent", Placeholder}, Arity: ArityOne},
				core.ActionRemove:  {Argv: []string{"winget", "uninstall", Placeholder}, Arity: ArityOne},
				core.ActionUpdate:  {Argv: []string{"winget", "upgrade", "--all"}, Arity: ArityNone},
				core.ActionSearch:  {Argv: []string{"winget", "search", Placeholder}, Arity: ArityOne},
				core.ActionList:    {Argv: []string{"winget", "list"}, Arity: ArityNone},
			},
		},
		{
			Name:       "npm",
			Executable: "npm",
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"npm", "install", "-g", Placeholder}, Arity: ArityMany},
				core.ActionRemove:  {Argv: []string{"npm", "uninstall", "-g", Placeholder}, Arity: ArityMany},
				core.ActionUpdate:  {Argv: []string{"npm", "update", "-g"}, Arity: ArityNone},
				core.ActionSearch:  {Argv: []string{"npm", "search", Placeholder}, Arity: ArityMany},
				core.ActionList:    {Argv: []string{"npm", "ls", "-g", "--depth=0"}, Arity: ArityNone},
			},
		},
		{
			// pip dropped `pip search` when PyPI turned the XML-RPC API
			// off, so Search is marked unsupported here
			Name:       "pip",
			Executable: "pip3",
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"pip3", "install", Placeholder}, Arity: ArityMany},
				core.ActionRemove:  {Argv: []string{"pip3", "uninstall", "-y", Placeholder}, Arity: ArityMany},
				core.ActionList:    {Argv: []string{"pip3", "list"}, Arity: ArityNone},
			},
		},
		{
			Name:         "cargo",
			Executable:   "cargo",
			Substitution: PerPackage,
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"cargo", "install", Placeholder}, Arity: ArityOne},
				core.ActionRemove:  {Argv: []string{"cargo", "uninstall", Placeholder}, Arity: ArityOne},
				core.ActionSearch:  {Argv: []string{"cargo", "search", Placeholder}, Arity: ArityOne},
				core.ActionList:    {Argv: []string{"cargo", "install", "--list"}, Arity: ArityNone},
			},
		},
		{
			Name:       "gem",
			Executable: "gem",
			Actions: map[core.Action]Template{
				core.ActionInstall: {Argv: []string{"gem", "install", Placeholder}, Arity: ArityMany},
				core.ActionRemove:  {Argv: []string{"gem", "uninstall", Placeholder}, Arity: ArityMany},
				core.ActionUpdate:  {Argv: []string{"gem", "update"}, Arity: ArityNone},
				core.ActionSearch:  {Argv: []string{"gem", "search", Placeholder}, Arity: ArityMany},
				core.ActionList:    {Argv: []string{"gem", "list"}, Arity: ArityNone},
			},
		},
	}
}
