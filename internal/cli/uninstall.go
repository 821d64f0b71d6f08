package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the tweaked config file",
	Long:  `Delete the game's tweaked config file. The game recreates it with defaults on the next start.`,
	Args:  cobra.NoArgs,
	RunE:  runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	p, err := activePlugin()
	if err != nil {
		return err
	}
	dir := gameDir(p)
	if err := p.Uninstall(dir); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", p.ConfigFile(dir))
	return nil
}
