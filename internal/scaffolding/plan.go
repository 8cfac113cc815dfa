package scaffolding

import (
	"strings"

	"github.com/conneroisu/recomp/internal/errors"
	"github.com/conneroisu/recomp/internal/naming"
)

// NewPlan resolves one generation run into a Plan. The name is required and
// validated here, before any filesystem access. An empty baseDir falls back
// to the kind's default directory.
func NewPlan(kind Kind, rawName, baseDir string, sel FileSelection) (*Plan, error) {
	if strings.TrimSpace(rawName) == "" {
		return nil, errors.ErrMissingName
	}

	pascal := naming.ToPascalCase(rawName)
	if kind == KindHook {
		pascal = naming.HookBase(rawName)
	}

	if baseDir == "" {
		baseDir = kind.DefaultBaseDir()
	}

	// A stylesheet is only part of the component layout.
	if kind != KindComponent {
		sel.CSS = false
	}

	return &Plan{
		kind:    kind,
		rawName: rawName,
		pascal:  pascal,
		dirName: dirName(kind, pascal),
		baseDir: baseDir,
		sel:     sel,
	}, nil
}

// dirName applies the per-kind directory convention. Hook directories use the
// bare base name: Debounce/useDebounce.ts, not UseDebounce or DebounceHook.
func dirName(kind Kind, pascal string) string {
	if kind == KindContext {
		return pascal + "Context"
	}
	return pascal
}
