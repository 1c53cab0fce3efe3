// internal/cli/managers.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	upm "github.com/upm-tools/upm"
)

var managersCmd = &cobra.Command{
	Use:   "managers",
	Short: "List known package managers and whether they are present",
	RunE:  runManagers,
}

func runManagers(cmd *cobra.Command, args []string) error {
	manager, err := upm.NewManager(config)
	if err != nil {
		return err
	}

	plat := manager.Platform()
	fmt.Printf("Platform: %s/%s\n\n", plat.OS, plat.Arch)

	active := make(map[string]bool)
	for _, d := range manager.Active() {
		active[d.Name] = true
	}

	fmt.Println("Known package managers:")
	for _, d := range manager.Registry().All() {
		marker := " "
		if active[d.Name] {
			marker = "*"
		}
		fmt.Printf("  %s %-8s (%s)\n", marker, d.Name, d.Executable)
	}
	fmt.Println("\n* = present on this host")

	return nil
}
