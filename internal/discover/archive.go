package discover

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ofremap/internal/environment"
	"ofremap/internal/match"
)

var (
	// ErrModuleNotFound is returned when the mod list has no entry for the module.
	ErrModuleNotFound = errors.New("module not found")
	// ErrArchiveIO wraps every failure to resolve, open or walk the archive.
	ErrArchiveIO = errors.New("archive I/O failure")
)

// Archive is an opened container exposed as a read-only filesystem.
type Archive interface {
	fs.FS
	io.Closer
}

// Opener opens the archive at a resolved path.
type Opener func(path string) (Archive, error)

// Open opens path as an unpacked archive directory when it is one, and as a
// zip file otherwise.
func Open(path string) (Archive, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return OpenDir(path)
	}

	return OpenZip(path)
}

// OpenDir opens an unpacked archive directory.
func OpenDir(path string) (Archive, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", path)
	}

	return dirArchive{FS: os.DirFS(path)}, nil
}

type dirArchive struct {
	fs.FS
}

func (dirArchive) Close() error { return nil }

// OpenZip opens a zip or jar file.
func OpenZip(path string) (Archive, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}

	return rc, nil
}

// FindModule returns the mod list entry named name.
func FindModule(mods []environment.ModRecord, name string) (environment.ModRecord, error) {
	names := make([]string, 0, len(mods))

	for _, m := range mods {
		if m.Name == name {
			return m, nil
		}

		names = append(names, m.Name)
	}

	if guess, ok := match.Closest(name, names); ok {
		return environment.ModRecord{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrModuleNotFound, name, guess)
	}

	return environment.ModRecord{}, fmt.Errorf("%w: %q", ErrModuleNotFound, name)
}

// ArchivePath resolves a mod list file entry to a canonical real path.
// One leading '/' recorded by the mod list is dropped and the remainder is
// resolved under baseDir/modsDir, following symlinks.
func ArchivePath(baseDir, modsDir, file string) (string, error) {
	file = strings.TrimPrefix(file, "/")

	p := file
	if !filepath.IsAbs(file) {
		p = filepath.Join(baseDir, modsDir, file)
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %w", ErrArchiveIO, p, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %w", ErrArchiveIO, p, err)
	}

	return resolved, nil
}
