package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mtpbwy/enginepatch/internal/patch"
	"github.com/mtpbwy/enginepatch/internal/settings"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var settingsInitForce bool

func init() {
	settingsInitCmd.Flags().BoolVar(&settingsInitForce, "force", false, "Overwrite an existing settings file")
	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsValidateCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsPlanCmd)
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage the tweak settings file",
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settingsPath()
		if _, err := os.Stat(path); err == nil && !settingsInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := settings.Save(path, settings.Default()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var settingsValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a settings file against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settingsPath()
		if len(args) == 1 {
			path = args[0]
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Settings validation: %s\n", path)

		result, err := settings.ValidateFile(path)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return fmt.Errorf("settings validation failed: %w", err)
		}
		if result.Valid {
			fmt.Fprintln(out, "  [ OK ] Valid settings")
			return nil
		}
		for _, issue := range result.Issues {
			loc := issue.Path
			if loc == "" {
				loc = "/"
			}
			fmt.Fprintf(out, "  [FAIL] %s: %s\n", loc, issue.Message)
		}
		return fmt.Errorf("settings validation failed with %d issue(s)", len(result.Issues))
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings, defaults included",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshaling settings: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var settingsPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the INI operations the settings translate to",
	Long: `Print the batch that install would apply, in the same YAML format that
the apply command reads.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			var invalid *settings.InvalidError
			if errors.As(err, &invalid) {
				return fmt.Errorf("%w (run settings validate for details)", err)
			}
			return err
		}
		data, err := patch.MarshalBatch(settings.Translate(s))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
