// internal/cli/search.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/upm-tools/upm/pkg/core"
)

var searchCmd = &cobra.Command{
	Use:     "search [term...]",
	Aliases: []string{"query"},
	Short:   "Search for packages across active managers",
	Long: `Search every active package manager's repositories. Results are
reported per manager; same-named packages in different ecosystems are
independent hits, never merged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntent(core.ActionSearch, args)
	},
}
