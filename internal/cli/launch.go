package cli

import (
	"fmt"

	"github.com/mtpbwy/enginepatch/internal/plugin"
	"github.com/spf13/cobra"
)

var savesOpen bool

func init() {
	savesCmd.Flags().BoolVar(&savesOpen, "open", false, "Open the save directory in the file browser")
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(savesCmd)
}

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Start the game",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := activePlugin()
		if err != nil {
			return err
		}
		if err := p.LaunchGame(gameDir(p)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Launching %s\n", p.Info().DisplayName)
		return nil
	},
}

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Show where the game keeps its save files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := activePlugin()
		if err != nil {
			return err
		}
		loc, ok := p.(plugin.SaveLocator)
		if !ok {
			return fmt.Errorf("%s does not know where its saves are", p.Info().DisplayName)
		}

		out := cmd.OutOrStdout()
		if !loc.DoesSaveDirectoryExist() {
			fmt.Fprintf(out, "%s (not found)\n", loc.SaveDirectory())
			return nil
		}
		fmt.Fprintln(out, loc.SaveDirectory())
		if savesOpen {
			return loc.OpenGameSaveLocation()
		}
		return nil
	},
}
