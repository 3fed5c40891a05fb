package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

// NewMemory returns an in-memory filesystem seeded with the given files.
// Each path becomes an empty file; parent directories are created.
func NewMemory(files ...string) (types.FS, afero.Fs, error) {
	mem := afero.NewMemMapFs()
	for _, f := range files {
		if err := mem.MkdirAll(filepath.Dir(f), 0755); err != nil {
			return nil, nil, err
		}
		if err := afero.WriteFile(mem, f, nil, 0755); err != nil {
			return nil, nil, err
		}
	}
	return NewAferoFS(mem), mem, nil
}
