package scaffolding

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/conneroisu/recomp/internal/errors"
)

// Generator writes a plan's files through a filesystem handle. Production
// code passes afero.NewOsFs(); tests pass an in-memory filesystem.
type Generator struct {
	fs afero.Fs
}

// NewGenerator creates a generator writing through fs.
func NewGenerator(fs afero.Fs) *Generator {
	return &Generator{fs: fs}
}

// Generate materializes the plan. The target directory is checked once, up
// front: if anything already exists there the run is refused before a single
// write. Files are then written in plan order. When a write fails midway the
// partially populated directory is removed best-effort so a rerun does not
// trip over a half-finished artifact.
func (g *Generator) Generate(plan *Plan) ([]GeneratedFile, error) {
	target := plan.TargetDir()

	exists, err := afero.Exists(g.fs, target)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", target, err)
	}
	if exists {
		return nil, errors.NewTargetExists(target)
	}

	if err := g.fs.MkdirAll(target, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", target, err)
	}

	files := plan.Files()
	for _, file := range files {
		path := filepath.Join(target, file.Path)
		if err := afero.WriteFile(g.fs, path, []byte(file.Content), 0644); err != nil {
			_ = g.fs.RemoveAll(target)
			return nil, errors.NewWriteError(path, err)
		}
	}

	return files, nil
}
