package cli

import (
	"github.com/mtpbwy/enginepatch/internal/branding"
	"github.com/mtpbwy/enginepatch/internal/config"
	"github.com/mtpbwy/enginepatch/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagPlugin   string
	flagGameDir  string
	flagSettings string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` applies graphics and performance tweaks to a game's INI configuration.
Tweaks are declared in a settings file and written with an atomic replace, so
the game never sees a half-written file and keys it owns are left alone.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		return logging.Setup(logging.Options{
			Level:  config.Get(config.KeyLogLevel),
			ToFile: config.GetBool(config.KeyLogToFile),
			Dir:    config.LogDir(),
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPlugin, "plugin", "", "Game plugin to use (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagGameDir, "game-dir", "", "Game config directory (default from config, then the plugin)")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Settings file (default from config)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	defer logging.Close()
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}
