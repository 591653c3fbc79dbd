// Root command and directory resolution for the acctrack CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/kridsada-n/acctrack/internal/paths"
	"github.com/kridsada-n/acctrack/pkg/acctrack"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagListen    string
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configListen  string
	configBackend string
)

var rootCmd = &cobra.Command{
	Use:     "acctrack",
	Short:   "Acctrack is a local bookkeeping data service",
	Version: acctrack.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configListen = cfg.GetString(cfgKeyListen)
		configBackend = cfg.GetString(cfgKeyBackend)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "storage directory (default: platform data dir)")
	rootCmd.PersistentFlags().StringVar(&flagListen, "listen", "", "listen address for serve (default: 127.0.0.1:8317)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(probeCmd)
}

// resolveDataDir returns the default storage directory with precedence:
// --data-dir flag > config.yaml data_dir > ACCTRACK_DATA_DIR env >
// platform default. A saved databasePath in the storage settings still
// overrides this at serve time.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory with precedence:
// --config-dir flag > ACCTRACK_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveListen returns the façade listen address with precedence:
// --listen flag > config.yaml listen > default.
func resolveListen() string {
	if flagListen != "" {
		return flagListen
	}
	if configListen != "" {
		return configListen
	}
	return defaultListen
}
