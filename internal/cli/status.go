package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(pathCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active plugin and whether its tweaks are installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := activePlugin()
		if err != nil {
			return err
		}
		info := p.Info()
		dir := gameDir(p)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Plugin:    %s %s\n", info.DisplayName, info.Version)
		fmt.Fprintf(out, "Game dir:  %s\n", dir)
		fmt.Fprintf(out, "Config:    %s\n", p.ConfigFile(dir))
		fmt.Fprintf(out, "Installed: %s\n", yesNo(p.IsModInstalled(dir)))

		path := settingsPath()
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(out, "Settings:  %s (missing, defaults apply)\n", path)
		} else {
			fmt.Fprintf(out, "Settings:  %s\n", path)
		}
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved game config directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := activePlugin()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), gameDir(p))
		return nil
	},
}
