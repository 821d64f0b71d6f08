package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mtpbwy/enginepatch/internal/config"
	"github.com/mtpbwy/enginepatch/internal/patch"
	"github.com/mtpbwy/enginepatch/internal/platform"
	"github.com/mtpbwy/enginepatch/internal/plugin"
	"github.com/mtpbwy/enginepatch/internal/settings"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the game and settings",
	Long:  `Check that the plugin loads, the game config directory is writable, and both the game config and the settings file parse.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Plugin check:")
		p, err := activePlugin()
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return errors.New("doctor found problems")
		}
		info := p.Info()
		fmt.Fprintf(out, "  [ OK ] %s %s\n", info.DisplayName, info.Version)

		failed := 0
		failed += checkGameDir(out, p)
		failed += checkSettingsFile(out, settingsPath())

		fmt.Fprintln(out, "Log check:")
		fmt.Fprintf(out, "  [INFO] logs are written to %s\n", config.LogDir())

		if failed > 0 {
			return fmt.Errorf("doctor found %d problem(s)", failed)
		}
		return nil
	},
}

func checkGameDir(out io.Writer, p plugin.Plugin) int {
	dir := gameDir(p)
	fmt.Fprintln(out, "Game check:")

	info, err := os.Stat(dir)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found (set it with `config set %s <dir>`)\n", dir, config.KeyGameDir)
		return 1
	}
	if !info.IsDir() {
		fmt.Fprintf(out, "  [FAIL] %s is not a directory\n", dir)
		return 1
	}
	if err := platform.CheckWritable(dir); err != nil {
		fmt.Fprintf(out, "  [FAIL] %s is not writable: %v\n", dir, err)
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] %s is writable\n", dir)

	target := p.ConfigFile(dir)
	if !p.IsModInstalled(dir) {
		fmt.Fprintf(out, "  [INFO] %s not present yet\n", target)
		return 0
	}
	if _, err := patch.Read(target); err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] %s parses\n", target)
	return 0
}

func checkSettingsFile(out io.Writer, path string) int {
	fmt.Fprintln(out, "Settings check:")

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(out, "  [INFO] %s not present, defaults apply\n", path)
		return 0
	}
	result, err := settings.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return 1
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  [FAIL] %s: %s\n", issue.Path, issue.Message)
		}
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] %s is valid\n", path)
	return 0
}
