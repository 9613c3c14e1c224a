package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mmcdole/dextrack/internal/adapter"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialise configuration",
	Long: `Configuration sources (in order of precedence):
1. Command line flags (--db, --snapshot, --profile, --log-level)
2. Environment variables (DEXTRACK_* prefix, e.g. DEXTRACK_STORAGE_PATH)
3. config.yaml in ~/.config/dextrack or the working directory
4. Default values`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(configView(cfg))
		if err != nil {
			return err
		}
		cmd.Print(string(out))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dir, _ := cmd.Flags().GetString("dir")
		if err := adapter.SaveConfig(viper.New(), cfg, dir); err != nil {
			return err
		}
		if dir == "" {
			dir = adapter.ConfigDir()
		}
		pterm.Success.Printf("Wrote %s/config.yaml\n", dir)
		return nil
	},
}

// configView mirrors the YAML layout of config.yaml
func configView(cfg *adapter.Config) map[string]any {
	return map[string]any{
		"storage":    map[string]any{"path": cfg.Storage.Path},
		"collection": map[string]any{"snapshot": cfg.Collection.Snapshot, "watch": cfg.Collection.Watch},
		"profile":    map[string]any{"id": cfg.Profile.ID},
		"ui":         map[string]any{"default_tab": cfg.UI.DefaultTab, "show_locked": cfg.UI.ShowLocked},
		"logging":    map[string]any{"file": cfg.Logging.File, "level": cfg.Logging.Level},
	}
}

func init() {
	configInitCmd.Flags().String("dir", "", "Directory to write config.yaml to (default ~/.config/dextrack)")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
