// internal/cli/sync.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/upm-tools/upm/pkg/index"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Update the shared package alias tables",
	Long: `Fetch the latest alias tables (canonical package name to what each
manager calls it) into the local cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return index.Sync(config.CachePath)
	},
}
