// Package scaffolding plans and writes React artifact directories: the file
// set each artifact kind needs, the generated source text, and the single
// write sequence that puts them on disk.
package scaffolding

import "path/filepath"

// Kind identifies an artifact category.
type Kind string

const (
	KindComponent Kind = "component"
	KindContext   Kind = "context"
	KindHook      Kind = "hook"
)

// Kinds lists the supported artifact kinds in display order.
func Kinds() []Kind {
	return []Kind{KindComponent, KindContext, KindHook}
}

// String returns the CLI token for the kind.
func (k Kind) String() string {
	return string(k)
}

// DefaultBaseDir returns the base directory used when the caller does not
// supply one.
func (k Kind) DefaultBaseDir() string {
	switch k {
	case KindContext:
		return filepath.Join("src", "contexts")
	case KindHook:
		return filepath.Join("src", "hooks")
	default:
		return filepath.Join("src", "components")
	}
}

// FileSelection is the resolved set of optional files for one run. CSS only
// applies to components; NewPlan clears it for the other kinds.
type FileSelection struct {
	Types bool
	CSS   bool
	Index bool
}

// DefaultSelection includes every optional file.
func DefaultSelection() FileSelection {
	return FileSelection{Types: true, CSS: true, Index: true}
}

// GeneratedFile is one file of a materialized plan: its path relative to the
// artifact directory and its literal content.
type GeneratedFile struct {
	Path    string
	Content string
}

// Plan is the fully resolved description of one generation run, immutable
// once constructed by NewPlan.
type Plan struct {
	kind    Kind
	rawName string
	pascal  string
	dirName string
	baseDir string
	sel     FileSelection
}

// Kind returns the artifact kind.
func (p *Plan) Kind() Kind {
	return p.kind
}

// RawName returns the name as the user supplied it.
func (p *Plan) RawName() string {
	return p.rawName
}

// PascalName returns the derived PascalCase identifier. For hooks this is the
// base name without the use prefix.
func (p *Plan) PascalName() string {
	return p.pascal
}

// DirName returns the artifact directory name.
func (p *Plan) DirName() string {
	return p.dirName
}

// BaseDir returns the resolved base directory.
func (p *Plan) BaseDir() string {
	return p.baseDir
}

// TargetDir returns the directory the artifact is generated into.
func (p *Plan) TargetDir() string {
	return filepath.Join(p.baseDir, p.dirName)
}

// Selection returns the optional-file selection.
func (p *Plan) Selection() FileSelection {
	return p.sel
}
