package storage

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// DefaultFile is where saved passwords go unless configured otherwise.
const DefaultFile = "saved_passwords.txt"

// ErrEmptyPassword is returned by Append for an empty password.
var ErrEmptyPassword = errors.New("empty password")

// FileStore appends passwords to a plain-text file, one per line.
// The file is never read back or rewritten.
type FileStore struct {
	Path string
	mu   sync.Mutex
}

// NewFileStore returns a store writing to path, or DefaultFile when path is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultFile
	}
	return &FileStore{Path: path}
}

// Append writes pw followed by a newline to the end of the file, creating it if needed.
func (fs *FileStore) Append(pw string) error {
	if pw == "" {
		return ErrEmptyPassword
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	f, err := os.OpenFile(fs.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open %s: %w", fs.Path, err)
	}
	if _, err := f.WriteString(pw + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", fs.Path, err)
	}
	return f.Close()
}
