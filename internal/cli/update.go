// internal/cli/update.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/upm-tools/upm/pkg/core"
)

var updateCmd = &cobra.Command{
	Use:     "update",
	Aliases: []string{"upgrade"},
	Short:   "Upgrade installed packages on every active manager",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntent(core.ActionUpdate, nil)
	},
}
