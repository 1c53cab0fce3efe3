// internal/cli/list.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/upm-tools/upm/pkg/core"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages per active manager",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntent(core.ActionList, nil)
	},
}
