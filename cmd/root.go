package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/recomp/internal/errors"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recomp",
	Short: "Scaffolding generator for React components, contexts, and hooks",
	Long: `Recomp generates the directory a React artifact needs from a single
hyphenated name: the main source file plus, by default, a companion types
file, a barrel index, and (for components) a CSS module.

Artifact Kinds:
  component    src/components/<Name>/
  context      src/contexts/<Name>Context/
  hook         src/hooks/<Name>/

Quick Start:
  recomp gen component user-profile    Generate src/components/UserProfile
  recomp gen context user-settings     Generate src/contexts/UserSettingsContext
  recomp gen hook use-debounce         Generate src/hooks/Debounce
  recomp list                          Show the supported artifact kinds

Command Aliases (for faster typing):
  gen (g), list (l)

Documentation: https://github.com/conneroisu/recomp`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and reports any failure on stderr. Usage
// mistakes additionally print the failed command's usage text; runtime
// failures such as an existing target directory do not.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint("Error:"), err)
	if errors.IsUsage(err) {
		fmt.Fprintln(os.Stderr)
		fmt.Fprint(os.Stderr, cmd.UsageString())
	}

	return err
}

// runRoot handles invocations that did not name a known command.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.ErrMissingCommand
	}

	return errors.NewUnknownCommand(args[0])
}

func init() {
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}
