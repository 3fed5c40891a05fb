package types

import "io/fs"

// FS is the filesystem view toolchain resolution needs
type FS interface {
	Stat(name string) (fs.FileInfo, error)
}
