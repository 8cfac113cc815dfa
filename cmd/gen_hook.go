package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/recomp/internal/scaffolding"
)

// hookCmd represents the gen hook command
var hookCmd = &cobra.Command{
	Use:   "hook <name> [directory]",
	Short: "Generate a hook directory",
	Long: `Generate a React hook directory from a hyphenated name.

The use- prefix is optional: "use-debounce" and "debounce" both
generate src/hooks/Debounce containing useDebounce.ts. Hooks have no
stylesheet, so --no-css has no effect here.

Examples:
  recomp gen hook use-debounce                   # src/hooks/Debounce
  recomp gen hook toggle                         # src/hooks/Toggle
  recomp gen hook use-local-storage lib/hooks    # lib/hooks/LocalStorage`,
	Args: artifactArgs,
	RunE: runHook,
}

func init() {
	genCmd.AddCommand(hookCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	return runGenerate(cmd, scaffolding.KindHook, args)
}
