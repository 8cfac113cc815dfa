package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/recomp/internal/config"
	"github.com/conneroisu/recomp/internal/errors"
	"github.com/conneroisu/recomp/internal/logging"
	"github.com/conneroisu/recomp/internal/scaffolding"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:     "gen <type> <name> [directory]",
	Aliases: []string{"g"},
	Short:   "Generate artifact scaffolding",
	Long: `Generate the directory and files for a React artifact.

The name is a hyphenated lowercase token sequence; recomp derives the
PascalCase identifier from it. Hook names may be given with or without
the use- prefix.

Generated files (all selected by default):
  main source file                       always
  <Name>.types.ts type declarations      --no-types to skip
  <Name>.module.css stylesheet           components only, --no-css to skip
  index.ts barrel                        --no-index to skip

Examples:
  recomp gen component user-profile              # src/components/UserProfile
  recomp gen component nav-menu web/ui           # web/ui/NavMenu
  recomp gen context user-settings               # src/contexts/UserSettingsContext
  recomp gen hook use-debounce                   # src/hooks/Debounce
  recomp gen component button --no-css           # skip the CSS module
  recomp gen hook use-toggle --dry-run           # preview without writing`,
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.PersistentFlags().Bool("no-types", false, "Skip the companion types file")
	genCmd.PersistentFlags().Bool("no-css", false, "Skip the CSS module (components only)")
	genCmd.PersistentFlags().Bool("no-index", false, "Skip the barrel index file")
	genCmd.PersistentFlags().Bool("no-all", false, "Skip all optional files")
	genCmd.PersistentFlags().Bool("dry-run", false, "Preview without writing files")

	viper.BindPFlag("no-types", genCmd.PersistentFlags().Lookup("no-types"))
	viper.BindPFlag("no-css", genCmd.PersistentFlags().Lookup("no-css"))
	viper.BindPFlag("no-index", genCmd.PersistentFlags().Lookup("no-index"))
	viper.BindPFlag("no-all", genCmd.PersistentFlags().Lookup("no-all"))
	viper.BindPFlag("dry-run", genCmd.PersistentFlags().Lookup("dry-run"))
}

// runGen handles gen invocations that did not match an artifact subcommand.
func runGen(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.ErrMissingKind
	}

	return errors.NewUnknownKind(args[0])
}

// artifactArgs validates the "<name> [directory]" argument pair shared by
// the artifact subcommands.
func artifactArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.ErrMissingName
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts at most 2 args, received %d", len(args))
	}

	return nil
}

// runGenerate is the generation path shared by the artifact subcommands.
func runGenerate(cmd *cobra.Command, kind scaffolding.Kind, args []string) error {
	ctx := context.Background()
	settings := config.Load()
	logger := logging.NewLogger(&logging.LoggerConfig{Level: settings.LogLevel}).
		With("kind", kind.String())

	baseDir := ""
	if len(args) > 1 {
		baseDir = args[1]
	}

	plan, err := scaffolding.NewPlan(kind, args[0], baseDir, settings.Selection())
	if err != nil {
		return err
	}

	logger.Debug(ctx, "plan resolved",
		"name", plan.RawName(),
		"directory", plan.TargetDir(),
		"files", len(plan.Files()))

	if settings.DryRun {
		printDryRun(cmd, plan)
		return nil
	}

	files, err := scaffolding.NewGenerator(afero.NewOsFs()).Generate(plan)
	if err != nil {
		return err
	}

	logger.Debug(ctx, "artifact generated", "directory", plan.TargetDir(), "files", len(files))

	out := cmd.OutOrStdout()
	for _, file := range files {
		fmt.Fprintf(out, "%s %s\n",
			color.New(color.FgGreen).Sprint("✓ Created"),
			filepath.Join(plan.TargetDir(), file.Path))
	}
	fmt.Fprintf(out, "\nGenerated %s %s (%d files)\n", plan.Kind(), plan.DirName(), len(files))

	return nil
}

// printDryRun previews the plan without touching the filesystem.
func printDryRun(cmd *cobra.Command, plan *scaffolding.Plan) {
	out := cmd.OutOrStdout()
	files := plan.Files()

	fmt.Fprintf(out, "Generating %s %s into %s\n", plan.Kind(), plan.DirName(), plan.TargetDir())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Files to create:")
	for _, file := range files {
		fmt.Fprintf(out, "  %s\n", filepath.Join(plan.TargetDir(), file.Path))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "(dry-run mode - no files written)")
	fmt.Fprintln(out)
	for _, file := range files {
		fmt.Fprintf(out, "--- %s ---\n", file.Path)
		fmt.Fprintln(out, file.Content)
	}
}
