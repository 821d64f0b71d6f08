package cli

import (
	"fmt"

	"github.com/mtpbwy/enginepatch/internal/logging"
	"github.com/mtpbwy/enginepatch/internal/patch"
	"github.com/mtpbwy/enginepatch/internal/plugin"
	"github.com/mtpbwy/enginepatch/internal/settings"
	"github.com/spf13/cobra"
)

var (
	targetFile  string
	applyDryRun bool
	showAll     bool
)

func init() {
	for _, c := range []*cobra.Command{applyCmd, getCmd, showCmd} {
		c.Flags().StringVar(&targetFile, "file", "", "INI file to operate on (default: the plugin's config file)")
	}
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Print the patched file instead of writing it")
	showCmd.Flags().BoolVar(&showAll, "all", false, "Print the whole file, not just the managed keys")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(showCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply <batch.yaml>",
	Short: "Apply a batch of INI operations",
	Long: `Apply a YAML batch of set/remove/line operations to an INI file in one atomic write.
Keys starting with ; # + - . ! are raw lines to the parser; add those with line.

  operations:
    - set:    {section: SystemSettings, key: r.Fog, value: "0"}
    - remove: {section: SystemSettings, key: r.PoolSize}
    - line:   {section: Core.System, text: "+Paths=../../../Pal/Content"}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, err := patch.LoadBatchFile(args[0])
		if err != nil {
			return err
		}
		p, err := activePlugin()
		if err != nil {
			return err
		}
		path := resolveTarget(p)
		engine := patch.New(logging.ForPlugin(p.Info().Name))

		if applyDryRun {
			out, err := engine.Preview(path, batch)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}

		if err := engine.Apply(path, batch); err != nil {
			return err
		}
		sets, removes := batch.Counts()
		fmt.Fprintf(cmd.OutOrStdout(), "Applied %d set(s) and %d remove(s) to %s\n", sets, removes, path)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <section> <key>",
	Short: "Print one value from the INI file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := activePlugin()
		if err != nil {
			return err
		}
		path := resolveTarget(p)
		doc, err := patch.Read(path)
		if err != nil {
			return err
		}
		value, ok := doc.GetValue(args[0], args[1])
		if !ok {
			return fmt.Errorf("[%s] %s is not set in %s", args[0], args[1], path)
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the managed keys and their current values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := activePlugin()
		if err != nil {
			return err
		}
		doc, err := patch.Read(resolveTarget(p))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if showAll {
			_, err = out.Write(doc.Serialize())
			return err
		}

		fmt.Fprintf(out, "[%s]\n", settings.Section)
		for _, key := range settings.ManagedKeys() {
			value, ok := doc.GetValue(settings.Section, key)
			if !ok {
				value = "(unset)"
			}
			fmt.Fprintf(out, "  %-40s %s\n", key, value)
		}
		return nil
	},
}

func resolveTarget(p plugin.Plugin) string {
	if targetFile != "" {
		return targetFile
	}
	return p.ConfigFile(gameDir(p))
}
