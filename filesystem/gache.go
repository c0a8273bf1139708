package filesystem

import (
	"io"
	"os"
)

// GacheFs adapts the swappable backend to gache.FileSystem, so gache-backed files
// (query suggestions, release cache) follow SetMemMapFs in tests.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
