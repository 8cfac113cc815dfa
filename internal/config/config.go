// Package config resolves the immutable per-invocation settings of a recomp
// run from the bound flag registry.
//
// Flags are the only configuration source: recomp reads no configuration
// files and no environment variables. The command layer binds each flag into
// viper once, Load reads the resolved values once, and the core packages
// receive plain values from the Settings snapshot.
package config

import (
	"github.com/spf13/viper"

	"github.com/conneroisu/recomp/internal/logging"
	"github.com/conneroisu/recomp/internal/scaffolding"
)

// Settings holds the resolved options for one invocation.
type Settings struct {
	LogLevel  logging.LogLevel
	SkipTypes bool
	SkipCSS   bool
	SkipIndex bool
	SkipAll   bool
	DryRun    bool
}

// Load reads the resolved flag values out of the registry.
func Load() *Settings {
	return &Settings{
		LogLevel:  logging.ParseLevel(viper.GetString("log-level")),
		SkipTypes: viper.GetBool("no-types"),
		SkipCSS:   viper.GetBool("no-css"),
		SkipIndex: viper.GetBool("no-index"),
		SkipAll:   viper.GetBool("no-all"),
		DryRun:    viper.GetBool("dry-run"),
	}
}

// Selection folds the skip flags into the optional-file selection. The
// skip-all umbrella wins over the individual flags.
func (s *Settings) Selection() scaffolding.FileSelection {
	if s.SkipAll {
		return scaffolding.FileSelection{}
	}

	return scaffolding.FileSelection{
		Types: !s.SkipTypes,
		CSS:   !s.SkipCSS,
		Index: !s.SkipIndex,
	}
}
