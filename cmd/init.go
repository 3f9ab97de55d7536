package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zhubert/qrpack/internal/config"
	"github.com/zhubert/qrpack/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Edit the settings file interactively",
	Long: `Walks through the settings (theme, asset and output directories, canvas
size and notifications) and writes them to the settings file. Existing values
are used as the defaults.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := settingsPath()
	if err != nil {
		return fmt.Errorf("error locating config: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if cfg.Theme != "" {
		ui.SetThemeByName(cfg.Theme)
	}

	s := ui.SettingsFrom(cfg)
	if err := ui.NewSettingsForm(s).Run(); err != nil {
		return fmt.Errorf("settings form: %w", err)
	}
	if err := saveSettings(cfg, s, path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved settings to %s\n", path)
	return nil
}

// saveSettings applies the form values and writes cfg to path.
func saveSettings(cfg *config.Config, s *ui.Settings, path string) error {
	if err := s.Apply(cfg); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return cfg.Save(path)
}
