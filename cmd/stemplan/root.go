// Root command for the stemplan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orthoplan/stemplan/internal/paths"
)

// Exit codes. Usage errors come from cobra argument handling, config
// errors from the configuration load, runtime errors from the engine
// or the session store.
const (
	exitSuccess      = 0
	exitUsageError   = 2
	exitConfigError  = 3
	exitRuntimeError = 4
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagMeshDir   string
	flagJSON      bool
)

// Config values loaded from config.yaml. Set by PersistentPreRunE so
// all subcommands can use them.
var (
	configDataDir        string
	configMeshDir        string
	configDefaultProduct string
)

var rootCmd = &cobra.Command{
	Use:     "stemplan",
	Short:   "Stemplan resolves implant labels and composes placement frames",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(exitConfigError)
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(exitConfigError)
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configMeshDir = cfg.GetString(cfgKeyMeshDir)
		configDefaultProduct = cfg.GetString(cfgKeyDefaultProduct)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.stemplan-db)")
	rootCmd.PersistentFlags().StringVar(&flagMeshDir, "mesh-dir", "", "mesh resource directory")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(stemsCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(similarCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sessionCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence --config-dir flag > STEMPLAN_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory path following the
// precedence --data-dir flag > config.yaml data_dir > STEMPLAN_DATA_DIR
// env > default $(CWD)/.stemplan-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveMeshDir returns the mesh resource directory following the
// precedence --mesh-dir flag > config.yaml mesh_dir > STEMPLAN_MESH_DIR
// env > default.
func resolveMeshDir() (string, error) {
	return paths.ResolveMeshDir(flagMeshDir, configMeshDir)
}
