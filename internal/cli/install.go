// internal/cli/install.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/upm-tools/upm/pkg/core"
)

var installCmd = &cobra.Command{
	Use:   "install [package...]",
	Short: "Install one or more packages",
	Long: `Install packages through every active package manager that supports
installation (or the ones selected with --manager).

Examples:
  upm install wget
  upm install wget --manager=brew
  upm install python3 nodejs --exclude-manager=npm`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntent(core.ActionInstall, args)
	},
}
