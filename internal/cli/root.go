// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/upm-tools/upm/pkg/core"
)

var (
	cfgFile  string
	managers []string
	excludes []string
	debug    bool
	config   *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "upm",
	Short: "Unified Package Manager",
	Long: `upm - Unified Package Manager

One vocabulary of actions (install, remove, update, search, list) over
every package manager installed on this host. upm detects which managers
are present and drives each of them with its own command syntax.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/upm/config.yaml)")
	rootCmd.PersistentFlags().StringSliceVarP(&managers, "manager", "m", nil, "restrict to these package managers")
	rootCmd.PersistentFlags().StringSliceVar(&excludes, "exclude-manager", nil, "package managers to skip")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(managersCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if len(managers) > 0 {
		config.Managers = managers
	}
	if len(excludes) > 0 {
		config.ExcludeManagers = excludes
	}
	if debug {
		config.Debug = true
	}

	level := zerolog.WarnLevel
	if config.Debug {
		level = zerolog.DebugLevel
	}
	config.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
