package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppend_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	fs := NewFileStore(path)

	if err := fs.Append("Abc123!x"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(buf) != "Abc123!x\n" {
		t.Errorf("file content = %q; want %q", buf, "Abc123!x\n")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %v; want 0600", perm)
	}
}

func TestAppend_KeepsPriorLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("first\nsecond\n"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	fs := NewFileStore(path)
	for _, pw := range []string{"third", "fourth", "third"} {
		if err := fs.Append(pw); err != nil {
			t.Fatalf("Append(%q) failed: %v", pw, err)
		}
	}

	buf, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSuffix(string(buf), "\n"), "\n")
	want := []string{"first", "second", "third", "fourth", "third"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines; want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q; want %q", i, lines[i], want[i])
		}
	}
}

func TestAppend_EmptyPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	fs := NewFileStore(path)

	if err := fs.Append(""); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("Append(\"\") error = %v; want ErrEmptyPassword", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file must not be created for a refused append, stat err = %v", err)
	}
}

func TestAppend_OpenError(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "missing", "out.txt"))
	err := fs.Append("pw")
	if err == nil || !strings.Contains(err.Error(), "open") {
		t.Errorf("expected open error, got %v", err)
	}
}

func TestNewFileStore_Default(t *testing.T) {
	if fs := NewFileStore(""); fs.Path != DefaultFile {
		t.Errorf("Path = %q; want %q", fs.Path, DefaultFile)
	}
}

func TestAppend_Concurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	fs := NewFileStore(path)

	done := make(chan error)
	for i := 0; i < 20; i++ {
		go func() { done <- fs.Append("samepassword") }()
	}
	for i := 0; i < 20; i++ {
		if err := <-done; err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	buf, _ := os.ReadFile(path)
	if got := strings.Count(string(buf), "samepassword\n"); got != 20 {
		t.Errorf("got %d lines; want 20", got)
	}
}
