package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/recomp/internal/scaffolding"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List supported artifact kinds",
	Long: `List the supported artifact kinds with their default directories and
the files a default run generates. File layouts are shown for the name
"user-profile".

Examples:
  recomp list                     # List kinds in table format
  recomp list -f json             # Output as JSON (short flag)`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFormat string

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "Output format (text, json)")
	AddFlagValidation(listCmd, "format", func(format string) error {
		return ValidateFormat(format, []string{"text", "json"})
	})
}

// kindListing describes one artifact kind for list output.
type kindListing struct {
	Kind      string   `json:"kind"`
	Directory string   `json:"directory"`
	Files     []string `json:"files"`
}

func runList(cmd *cobra.Command, args []string) error {
	listings, err := buildListings()
	if err != nil {
		return err
	}

	switch listFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(listings)
	case "text":
		printListings(cmd, listings)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", listFormat)
	}
}

// buildListings resolves a default plan per kind for the sample name.
func buildListings() ([]kindListing, error) {
	kinds := scaffolding.Kinds()
	listings := make([]kindListing, 0, len(kinds))

	for _, kind := range kinds {
		plan, err := scaffolding.NewPlan(kind, "user-profile", "", scaffolding.DefaultSelection())
		if err != nil {
			return nil, err
		}

		files := plan.Files()
		paths := make([]string, 0, len(files))
		for _, file := range files {
			paths = append(paths, file.Path)
		}

		listings = append(listings, kindListing{
			Kind:      kind.String(),
			Directory: plan.TargetDir(),
			Files:     paths,
		})
	}

	return listings, nil
}

func printListings(cmd *cobra.Command, listings []kindListing) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, `Supported artifact kinds, shown for the name "user-profile":`)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tTARGET\tFILES")
	for _, listing := range listings {
		fmt.Fprintf(w, "%s\t%s\t%s\n", listing.Kind, listing.Directory, strings.Join(listing.Files, ", "))
	}
	w.Flush()
}
