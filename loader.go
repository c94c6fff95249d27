package glapp

import (
	"io/fs"
	"os"
)

// FileLoader reads shader source text.
// ReadFile returns the full content of path, or an empty string on any failure.
type FileLoader interface {
	ReadFile(path string) string
}

// FileLoaderFunc adapts a function to FileLoader.
type FileLoaderFunc func(path string) string

// ReadFile calls f(path).
func (f FileLoaderFunc) ReadFile(path string) string {
	return f(path)
}

// OSLoader reads files from the local file system.
type OSLoader struct{}

// ReadFile returns the content of the file at path, or "" on error.
func (OSLoader) ReadFile(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		logger.Debugf("read %q: %v", path, err)
		return ""
	}
	return string(b)
}

// FSLoader reads files from an fs.FS such as an embed.FS.
type FSLoader struct {
	FS fs.FS
}

// ReadFile returns the content of path in l.FS, or "" on error or when FS is nil.
func (l FSLoader) ReadFile(path string) string {
	if l.FS == nil {
		return ""
	}
	b, err := fs.ReadFile(l.FS, path)
	if err != nil {
		logger.Debugf("read %q: %v", path, err)
		return ""
	}
	return string(b)
}
