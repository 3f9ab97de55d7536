package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/qrpack/internal/app"
	"github.com/zhubert/qrpack/internal/config"
	"github.com/zhubert/qrpack/internal/logger"
	"github.com/zhubert/qrpack/internal/storage"
)

var (
	configPath            string
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "qrpack",
	Short: "Pack proxy configs and URLs into printable QR codes",
	Long: `qrpack turns a list of proxy configs (vless://, vmess://, ss://, trojan://,
hysteria2://) or a single URL into QR code images. Configs are packed into as
few codes as possible; each page can be copied to the clipboard or saved as
PNG, and a whole set can be saved as one ZIP.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default ~/.qrpack/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging to "+logger.DefaultLogPath+" (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("qrpack %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("qrpack %s\n", version)
}

// settingsPath returns --config or the default settings file.
func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// loadConfig reads and validates the settings.
func loadConfig() (*config.Config, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, fmt.Errorf("error locating config: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// openStore opens the state file. A corrupt file yields an empty store and
// a logged warning rather than an error.
func openStore(cfg *config.Config) *storage.FileStore {
	store, err := storage.Open(cfg.StatePath)
	if err != nil {
		logger.Warn("Storage: ignoring unreadable %s: %v", cfg.StatePath, err)
	}
	return store
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	m := app.New(cfg, version, openStore(cfg))
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
