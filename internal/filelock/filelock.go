// Package filelock coordinates access to the levels document and registry
// config files across processes. Writers take an exclusive lock and replace
// the file atomically; readers take a shared lock when a writer has created
// one, so a reader never sees a partially written document.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockSuffix is appended to a target path to name its lock file.
const LockSuffix = ".lock"

// FileLock wraps a flock lock file.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a lock backed by the file at path. The file is created
// on first use.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// ForTarget returns the lock guarding target, i.e. target + LockSuffix.
func ForTarget(target string) *FileLock {
	return NewFileLock(target + LockSuffix)
}

// Path returns the lock file path.
func (fl *FileLock) Path() string {
	return fl.path
}

// Lock acquires an exclusive lock, blocking until it is available.
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("acquire exclusive lock on %s: %w", fl.path, err)
	}
	return nil
}

// RLock acquires a shared lock, blocking while a writer holds the exclusive
// lock. Any number of readers may hold the shared lock at once.
func (fl *FileLock) RLock() error {
	if err := fl.flock.RLock(); err != nil {
		return fmt.Errorf("acquire shared lock on %s: %w", fl.path, err)
	}
	return nil
}

// TryLock attempts an exclusive lock without blocking. It returns false when
// another holder has the lock.
func (fl *FileLock) TryLock() (bool, error) {
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("try exclusive lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// TryRLock attempts a shared lock without blocking. It returns false when a
// writer holds the exclusive lock.
func (fl *FileLock) TryRLock() (bool, error) {
	acquired, err := fl.flock.TryRLock()
	if err != nil {
		return false, fmt.Errorf("try shared lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases whichever lock is held.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("release lock on %s: %w", fl.path, err)
	}
	return nil
}

// ReadShared reads path while holding the shared lock of its lock file.
//
// Readers never create the lock file. When it is missing or cannot be opened
// (no writer has locked the target yet, or the document sits on a read-only
// mount) the file is read without a lock; writers replace files atomically,
// so such a read still sees a complete document. Errors from the lock call
// itself are returned.
func ReadShared(path string) ([]byte, error) {
	lock := ForTarget(path)
	if !lock.exists() {
		return os.ReadFile(path)
	}
	if err := lock.RLock(); err != nil {
		return nil, err
	}
	defer lock.Unlock()

	return os.ReadFile(path)
}

// exists reports whether the lock file is present and can be opened.
func (fl *FileLock) exists() bool {
	f, err := os.Open(fl.path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// AtomicWrite replaces path with data via a temp file in the same directory
// and a rename, creating parent directories as needed. On failure the
// original file is left untouched.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Cleared after a successful rename.
	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", path, err)
	}

	tempFile = nil
	return nil
}

// LockAndWrite holds the exclusive lock of path while writing it atomically.
func LockAndWrite(path string, data []byte) error {
	lock := ForTarget(path)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	return AtomicWrite(path, data)
}
