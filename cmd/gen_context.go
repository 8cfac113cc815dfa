package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/recomp/internal/scaffolding"
)

// contextCmd represents the gen context command
var contextCmd = &cobra.Command{
	Use:   "context <name> [directory]",
	Short: "Generate a context directory",
	Long: `Generate a React context directory from a hyphenated name.

The directory is named after the PascalCase form of the name with a
Context suffix. The main source file defines the state shape, the
context object, a provider component, and a consumer hook that throws
when used outside the provider.

Examples:
  recomp gen context user-settings               # src/contexts/UserSettingsContext
  recomp gen context theme web/state             # web/state/ThemeContext
  recomp gen context auth --no-types             # declare types inline`,
	Args: artifactArgs,
	RunE: runContext,
}

func init() {
	genCmd.AddCommand(contextCmd)
}

func runContext(cmd *cobra.Command, args []string) error {
	return runGenerate(cmd, scaffolding.KindContext, args)
}
