package adapter

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Storage    StorageConfig    `mapstructure:"storage"`
	Collection CollectionConfig `mapstructure:"collection"`
	Profile    ProfileConfig    `mapstructure:"profile"`
	UI         UIConfig         `mapstructure:"ui"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// StorageConfig holds the progression database location.
// An empty path keeps everything in memory.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// CollectionConfig points at the collection snapshot exported by the inventory
type CollectionConfig struct {
	Snapshot string `mapstructure:"snapshot"` // .json, .yaml or .yml
	Watch    bool   `mapstructure:"watch"`    // re-evaluate in the TUI when the file changes
}

// ProfileConfig selects which stored progression/profile document to use
type ProfileConfig struct {
	ID string `mapstructure:"id"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultTab string `mapstructure:"default_tab"` // region, national, vault, type
	ShowLocked bool   `mapstructure:"show_locked"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: filepath.Join(defaultDataPath(), "dextrack.db"),
		},
		Collection: CollectionConfig{
			Snapshot: filepath.Join(defaultDataPath(), "collection.json"),
			Watch:    true,
		},
		Profile: ProfileConfig{
			ID: "local",
		},
		UI: UIConfig{
			DefaultTab: "region",
			ShowLocked: true,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "dextrack.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "dextrack")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "dextrack")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "dextrack")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "dextrack")
	}
}

// ConfigDir returns the directory SaveConfig writes to
func ConfigDir() string {
	return defaultConfigPath()
}

// LoadConfig loads configuration from path, or from config.yaml in the default
// search paths when path is empty. Each call uses a fresh viper instance.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}
	return LoadConfigFrom(v)
}

// LoadConfigFrom reads configuration through v. Search paths (or an explicit
// config file) must already be set on v.
func LoadConfigFrom(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	// SetConfigName clears a file set with SetConfigFile
	if explicit := v.ConfigFileUsed(); explicit == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	} else if _, err := os.Stat(explicit); err != nil {
		return nil, errors.Wrapf(err, "config file %s", explicit)
	}

	// Environment variable overrides, e.g. DEXTRACK_STORAGE_PATH
	v.SetEnvPrefix("DEXTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "error reading config file")
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "error parsing config")
	}

	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Collection.Snapshot = expandHome(cfg.Collection.Snapshot)
	cfg.Logging.File = expandHome(cfg.Logging.File)
	return cfg, nil
}

// bindEnv registers every key so AutomaticEnv overrides work with Unmarshal
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"storage.path",
		"collection.snapshot",
		"collection.watch",
		"profile.id",
		"ui.default_tab",
		"ui.show_locked",
		"logging.file",
		"logging.level",
	} {
		_ = v.BindEnv(key)
	}
}

// SaveConfig saves the configuration to config.yaml in dir (ConfigDir() when empty)
func SaveConfig(v *viper.Viper, cfg *Config, dir string) error {
	if dir == "" {
		dir = defaultConfigPath()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("collection.snapshot", cfg.Collection.Snapshot)
	v.Set("collection.watch", cfg.Collection.Watch)
	v.Set("profile.id", cfg.Profile.ID)
	v.Set("ui.default_tab", cfg.UI.DefaultTab)
	v.Set("ui.show_locked", cfg.UI.ShowLocked)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
