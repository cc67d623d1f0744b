package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return false }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements Provider for in-memory testing. Paths are
// normalized to forward slashes so tests behave identically on every
// platform.
type MemoryFileSystem struct {
	files map[string]*memoryFile
}

// NewMemoryFileSystem creates a new, empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string]*memoryFile),
	}
}

// AddFile adds a file to the in-memory filesystem, overwriting any
// existing entry at the same path.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time.
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	normalized := normalize(filePath)
	contentBytes := []byte(content)

	mfs.files[normalized] = &memoryFile{
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(normalized),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
		},
	}
}

// ReadFile implements Provider.ReadFile.
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, exists := mfs.files[normalize(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	return file.content, nil
}

// Stat implements Provider.Stat.
func (mfs *MemoryFileSystem) Stat(filePath string) (FileInfo, error) {
	file, exists := mfs.files[normalize(filePath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", filePath)
	}
	return file.info, nil
}

// normalize converts a path to the virtual filesystem convention:
// forward slashes, cleaned, no leading "./".
func normalize(filePath string) string {
	return path.Clean(filepath.ToSlash(filePath))
}

// Verify MemoryFileSystem implements the interface at compile time
var _ Provider = (*MemoryFileSystem)(nil)
