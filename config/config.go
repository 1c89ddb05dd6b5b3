package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"profilekit/logger"

	"github.com/spf13/viper"
)

type DefaultPaths struct {
	ConfigDir     string
	LogPathApp    string
	LogPathAccess string
	DBPath        string
	LogLevel      string
}

type Configuration struct {
	Database struct {
		Path         string `mapstructure:"path"`
		SeedDefaults bool   `mapstructure:"seed_defaults"`
	} `mapstructure:"database"`
	Server struct {
		Port          string `mapstructure:"port"`
		CompressLevel int    `mapstructure:"compress_level"`
	} `mapstructure:"server"`
	Logging struct {
		Level         string `mapstructure:"level"`
		AppLogPath    string `mapstructure:"app_log_path"`
		AccessLogPath string `mapstructure:"access_log_path"`
	} `mapstructure:"logging"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"metrics"`
}

// Overrides carries persistent flag values. Empty fields leave the file,
// environment or default value in place.
type Overrides struct {
	DBPath        string
	AppLogPath    string
	AccessLogPath string
	LogLevel      string
}

var AppConfig Configuration

func ExpandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func GetDefaultConfigPaths() DefaultPaths {
	var paths DefaultPaths
	userConfigDirBase, err := os.UserConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not get user config dir: %v. Using current directory.\n", err)
		userConfigDirBase = "."
	}

	paths.ConfigDir = filepath.Join(userConfigDirBase, "profilekit")
	logDir := filepath.Join(paths.ConfigDir, "logs")

	paths.LogPathApp = filepath.Join(logDir, "app.log")
	paths.LogPathAccess = filepath.Join(logDir, "access.log")
	paths.DBPath = filepath.Join(paths.ConfigDir, "profiles.db")
	paths.LogLevel = "INFO"
	return paths
}

// Load resolves the configuration from defaults, the config file, PROFILEKIT_*
// environment variables and flag overrides, in increasing precedence.
func Load(cfgFile string, flags Overrides) (Configuration, string, error) {
	var cfg Configuration
	v := viper.New()

	defaults := GetDefaultConfigPaths()
	v.SetDefault("database.path", defaults.DBPath)
	v.SetDefault("database.seed_defaults", true)
	v.SetDefault("server.port", "8780")
	v.SetDefault("server.compress_level", 5)
	v.SetDefault("logging.level", defaults.LogLevel)
	v.SetDefault("logging.app_log_path", defaults.LogPathApp)
	v.SetDefault("logging.access_log_path", defaults.LogPathAccess)
	v.SetDefault("metrics.enabled", true)

	if cfgFile != "" {
		expandedCfgFile, err := ExpandTilde(cfgFile)
		if err != nil {
			expandedCfgFile = cfgFile
		}
		v.SetConfigFile(expandedCfgFile)
		v.SetConfigType("yaml")
	} else {
		v.AddConfigPath(defaults.ConfigDir)
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PROFILEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configUsed := "Using default/environment configuration."
	if err := v.ReadInConfig(); err == nil {
		configUsed = fmt.Sprintf("Using config file: %s", v.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
		return cfg, "", fmt.Errorf("reading config file: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, "", fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if flags.DBPath != "" {
		cfg.Database.Path = flags.DBPath
	}
	if flags.AppLogPath != "" {
		cfg.Logging.AppLogPath = flags.AppLogPath
	}
	if flags.AccessLogPath != "" {
		cfg.Logging.AccessLogPath = flags.AccessLogPath
	}
	if flags.LogLevel != "" {
		cfg.Logging.Level = flags.LogLevel
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)

	for _, p := range []*string{&cfg.Database.Path, &cfg.Logging.AppLogPath, &cfg.Logging.AccessLogPath} {
		expanded, err := ExpandTilde(*p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not expand tilde in '%s': %v.\n", *p, err)
			continue
		}
		*p = expanded
	}

	if cfg.Server.CompressLevel < 1 || cfg.Server.CompressLevel > 9 {
		return cfg, "", fmt.Errorf("server.compress_level must be between 1 and 9, got %d", cfg.Server.CompressLevel)
	}
	return cfg, configUsed, nil
}

// Init loads the configuration into AppConfig and re-initializes the global
// loggers with the resolved paths and level.
func Init(cfgFile string, flags Overrides) error {
	cfg, configUsed, err := Load(cfgFile, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: %v\n", err)
		return err
	}
	AppConfig = cfg

	if err := logger.InitGlobalLoggers(AppConfig.Logging.AppLogPath, AppConfig.Logging.AccessLogPath, AppConfig.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize global loggers with final config: %w", err)
	}

	logger.Info(configUsed)
	if flags != (Overrides{}) {
		logger.Info("Command line flags may have overridden config file/defaults.")
	}
	logger.Debug("Final AppConfig Initialized: %+v", AppConfig)
	return nil
}
