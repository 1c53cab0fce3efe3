// internal/cli/remove.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/upm-tools/upm/pkg/core"
)

var removeCmd = &cobra.Command{
	Use:     "remove [package...]",
	Aliases: []string{"uninstall"},
	Short:   "Remove one or more packages",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntent(core.ActionRemove, args)
	},
}
