package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/recomp/internal/scaffolding"
)

// componentCmd represents the gen component command
var componentCmd = &cobra.Command{
	Use:   "component <name> [directory]",
	Short: "Generate a component directory",
	Long: `Generate a React component directory from a hyphenated name.

The directory is named after the PascalCase form of the name and holds
the component source plus the selected optional files.

Examples:
  recomp gen component user-profile              # src/components/UserProfile
  recomp gen component nav-menu web/ui           # web/ui/NavMenu
  recomp gen component button --no-css           # skip the CSS module
  recomp gen component card --no-all             # main source file only`,
	Args: artifactArgs,
	RunE: runComponent,
}

func init() {
	genCmd.AddCommand(componentCmd)
}

func runComponent(cmd *cobra.Command, args []string) error {
	return runGenerate(cmd, scaffolding.KindComponent, args)
}
