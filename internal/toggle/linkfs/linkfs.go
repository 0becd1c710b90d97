package linkfs

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// ErrSymlinksUnsupported indicates the underlying filesystem cannot represent
// symbolic links (for example afero's in-memory filesystem).
var ErrSymlinksUnsupported = errors.New("filesystem does not support symlinks")

// LinkFS provides symlink-aware file operations on top of an afero filesystem.
// Symlink support is probed through afero's optional capability interfaces.
type LinkFS struct {
	fs afero.Fs
}

// New creates a new LinkFS instance.
func New(fs afero.Fs) *LinkFS {
	return &LinkFS{fs: fs}
}

// FileSystem returns the underlying filesystem.
func (l *LinkFS) FileSystem() afero.Fs {
	return l.fs
}

// Lstat returns file information without following symlinks.
func (l *LinkFS) Lstat(path string) (os.FileInfo, error) {
	lstater, ok := l.fs.(afero.Lstater)
	if !ok {
		return nil, fmt.Errorf("lstat %s: %w", path, ErrSymlinksUnsupported)
	}
	info, lstatCalled, err := lstater.LstatIfPossible(path)
	if err != nil {
		return nil, err
	}
	if !lstatCalled {
		return nil, fmt.Errorf("lstat %s: %w", path, ErrSymlinksUnsupported)
	}
	return info, nil
}

// Stat returns file information, following symlinks.
func (l *LinkFS) Stat(path string) (os.FileInfo, error) {
	return l.fs.Stat(path)
}

// Exists reports whether a path exists, without following a trailing symlink,
// so a dangling link still counts as present.
func (l *LinkFS) Exists(path string) (bool, error) {
	_, err := l.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if errors.Is(err, ErrSymlinksUnsupported) {
		return afero.Exists(l.fs, path)
	}
	return false, err
}

// IsSymlink reports whether the path exists and is a symbolic link.
func (l *LinkFS) IsSymlink(path string) (bool, error) {
	info, err := l.Lstat(path)
	if err != nil {
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

// Readlink returns the raw stored target of a symbolic link, without any
// resolution or cleaning.
func (l *LinkFS) Readlink(path string) (string, error) {
	reader, ok := l.fs.(afero.LinkReader)
	if !ok {
		return "", fmt.Errorf("readlink %s: %w", path, ErrSymlinksUnsupported)
	}
	return reader.ReadlinkIfPossible(path)
}

// Replace atomically repoints the symlink at link to target. A temporary link
// is created next to the destination and renamed over it, so there is no
// window where the link is absent.
func (l *LinkFS) Replace(target, link string) (err error) {
	linker, ok := l.fs.(afero.Linker)
	if !ok {
		return fmt.Errorf("symlink %s: %w", link, ErrSymlinksUnsupported)
	}

	tmp := link + ".tmp"
	if err := l.fs.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stale temp link: %w", err)
	}

	if err := linker.SymlinkIfPossible(target, tmp); err != nil {
		return fmt.Errorf("create temp link: %w", err)
	}

	// Rename atomically replaces the destination on POSIX systems.
	if err := l.fs.Rename(tmp, link); err != nil {
		l.fs.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}

	return nil
}
