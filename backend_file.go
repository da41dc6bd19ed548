package fundflow

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// DefaultDocumentFile is the conventional name of the persisted document.
const DefaultDocumentFile = "fundflow.json"

// FileBackend persists the document blob in a single file. Saves are atomic:
// the blob is written to a temporary file in the same directory and renamed
// over the target, so a reader never observes a partial write.
//
// It also implements Watcher, notifying on writes made by other processes.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend persisting to the given file path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the file the backend persists to.
func (b *FileBackend) Path() string { return b.path }

// Load reads the current blob. A missing file is reported as an error, which
// the store treats as an empty document.
func (b *FileBackend) Load() ([]byte, error) {
	return os.ReadFile(b.path)
}

// Save atomically replaces the blob.
func (b *FileBackend) Save(data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", b.path, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", b.path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not write %q: %w", b.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not write %q: %w", b.path, err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not replace %q: %w", b.path, err)
	}
	return nil
}

// Watch invokes onChange whenever the document file is replaced or written.
// The parent directory is watched rather than the file itself because atomic
// saves replace the file by rename.
func (b *FileBackend) Watch(onChange func()) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("could not create directory for %q: %w", b.path, err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("could not watch %q: %w", dir, err)
	}

	target := filepath.Clean(b.path)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("watching %q: %v", target, err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
