package cmd

import (
	"fmt"
	"os"

	"profilekit/config"
	"profilekit/core"
	"profilekit/database"
	"profilekit/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile           string
	dbPath            string // Bound to --dbpath flag
	appLogPathFlag    string
	accessLogPathFlag string
	logLevelFlag      string
)

var rootCmd = &cobra.Command{
	Use:   "profilekit",
	Short: "Manage listener communication profiles",
	Long: `profilekit keeps a catalog of communication profiles. Every profile can be
read and edited through the base view; Http profiles additionally carry request
headers, URLs, cookies and message templates reachable through the Http view.

Run 'profilekit server' to expose the catalog over the REST API, or use the
'profile' commands to work on the database directly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(cfgFile, config.Overrides{
			DBPath:        dbPath,
			AppLogPath:    appLogPathFlag,
			AccessLogPath: accessLogPathFlag,
			LogLevel:      logLevelFlag,
		}); err != nil {
			return fmt.Errorf("failed to initialize config in PersistentPreRunE: %w", err)
		}
		return nil
	},
}

// openProfileService opens the configured SQLite database, seeds the default
// profiles when enabled and returns a service over it. The caller closes the
// returned closer.
func openProfileService() (*core.ProfileService, func(), error) {
	path := config.AppConfig.Database.Path
	if path == "" {
		logger.Error("Database path is empty after checking flag and config! Falling back to 'profiles.db' in CWD.")
		path = "profiles.db"
	}

	logger.Info("Opening profile database at '%s'", path)
	db, err := database.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database at %s: %w", path, err)
	}
	store := database.NewProfileStore(db)

	if config.AppConfig.Database.SeedDefaults {
		n, err := database.SeedDefaultProfiles(store)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("seeding default profiles: %w", err)
		}
		if n > 0 {
			logger.Info("Seeded %d default profile(s)", n)
		}
	}

	return core.NewProfileService(store, metricsIfEnabled()), func() { db.Close() }, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/profilekit/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "dbpath", "", "path to SQLite database file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&appLogPathFlag, "app-log", "", "path for the application log file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&accessLogPathFlag, "access-log", "", "path for the HTTP access log file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: DEBUG, INFO, WARN, ERROR (overrides config/default)")
}
