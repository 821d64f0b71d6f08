package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mtpbwy/enginepatch/internal/logging"
	"github.com/mtpbwy/enginepatch/internal/plugin"
	"github.com/mtpbwy/enginepatch/internal/settings"
	"github.com/mtpbwy/enginepatch/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reinstall the tweaks whenever the settings file changes",
	Long: `Apply the settings once, then keep watching the settings file and apply
it again after every save. Invalid edits are logged and skipped. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := activePlugin()
		if err != nil {
			return err
		}
		dir := gameDir(p)
		path := settingsPath()
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating settings directory: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl-C to stop)\n", path)
		w := &watch.Watcher{
			Path: path,
			Log:  logging.ForPlugin(p.Info().Name),
			Apply: func(s settings.ModSettings) error {
				return p.Install(plugin.InstallRequest{GameDir: dir, Settings: s})
			},
		}
		return w.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
