package session

import (
	"os"
	"path/filepath"
	"strings"
)

// FileAccessor persists the token in a file, for the CLI
type FileAccessor struct {
	path string
}

// NewFileAccessor creates a FileAccessor for the given path
func NewFileAccessor(path string) *FileAccessor {
	return &FileAccessor{path: path}
}

func (f *FileAccessor) Get() (string, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	return token, token != ""
}

func (f *FileAccessor) Set(token string) {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return
	}
	_ = os.WriteFile(f.path, []byte(token), 0600)
}

func (f *FileAccessor) Clear() {
	_ = os.Remove(f.path)
}

var _ Accessor = (*FileAccessor)(nil)
