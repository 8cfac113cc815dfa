// Package cmd provides the command-line interface for recomp.
//
// This package implements all CLI commands using the Cobra framework,
// providing the generation workflow for React component, context, and
// hook scaffolding.
//
// # Available Commands
//
//   - gen: Generate an artifact directory from a hyphenated name
//   - list: List the supported artifact kinds and their file layouts
//   - version: Show version information
//
// # Command Examples
//
//	// Generate a component under src/components/UserProfile
//	recomp gen component user-profile
//
//	// Generate a context under a custom base directory
//	recomp gen context user-settings web/state
//
//	// Generate a hook without the companion types file
//	recomp gen hook use-debounce --no-types
//
//	// Preview the files a run would write
//	recomp gen component nav-menu --dry-run
//
//	// List kinds with JSON output
//	recomp list --format json
//
// # Error Handling
//
// All commands report errors with a clear message and a non-zero exit
// code. Usage mistakes (an unknown command, an unknown artifact type, a
// missing name) additionally print the relevant usage text; conflicts
// such as an already existing target directory do not.
//
// Configuration comes from flags alone: recomp reads no configuration
// files and no environment variables.
package cmd
