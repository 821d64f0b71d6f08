package cli

import (
	"fmt"

	"github.com/mtpbwy/enginepatch/internal/plugin"
	"github.com/spf13/cobra"
)

var (
	installTemplate  string
	installBuildOnly bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Apply the configured tweaks to the game",
	Long: `Translate the settings file into INI patches and apply them to the game's
config file. Keys the settings do not manage are kept. With --template, the
template's keys are merged in first. With --build-only, the template itself is
patched and the game directory is not touched.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installTemplate, "template", "", "Base INI whose keys are merged before the settings")
	installCmd.Flags().BoolVar(&installBuildOnly, "build-only", false, "Patch the template instead of the game config")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	p, err := activePlugin()
	if err != nil {
		return err
	}
	s, err := loadSettings()
	if err != nil {
		return err
	}

	req := plugin.InstallRequest{
		Settings:     s,
		TemplatePath: installTemplate,
		BuildOnly:    installBuildOnly,
	}
	if !installBuildOnly {
		req.GameDir = gameDir(p)
	}
	if err := p.Install(req); err != nil {
		return err
	}

	if installBuildOnly {
		fmt.Fprintf(cmd.OutOrStdout(), "Built %s\n", installTemplate)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Installed %s tweaks into %s\n", p.Info().DisplayName, p.ConfigFile(req.GameDir))
	return nil
}
