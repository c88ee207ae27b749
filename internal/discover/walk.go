package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"ofremap/internal/target"
)

// ClassSuffix marks binary class entries.
const ClassSuffix = ".class"

// Exclusion drops classes that belong to the archive itself.
type Exclusion struct {
	// Prefix excludes every internal name starting with it ("optifine/").
	Prefix   string
	// Patterns are doublestar globs matched against internal names.
	Patterns []string
}

// ErrInvalidExcludePattern is returned for a malformed exclusion glob.
var ErrInvalidExcludePattern = errors.New("invalid exclude pattern")

// Validate checks every pattern. Excludes assumes valid patterns.
func (e Exclusion) Validate() error {
	for _, p := range e.Patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%w: %q", ErrInvalidExcludePattern, p)
		}
	}

	return nil
}

// Excludes reports whether className must not become a target.
func (e Exclusion) Excludes(className string) bool {
	if e.Prefix != "" && strings.HasPrefix(className, e.Prefix) {
		return true
	}

	for _, p := range e.Patterns {
		if ok, _ := doublestar.Match(p, className); ok {
			return true
		}
	}

	return false
}

// WalkResult is the outcome of walking one archive.
type WalkResult struct {
	Targets  []target.Target
	Excluded int
}

// Walk enumerates every class entry of fsys in lexical order.
// A missing root yields an empty result; any other error aborts the walk.
func Walk(fsys fs.FS, excl Exclusion) (WalkResult, error) {
	var res WalkResult

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}

			return err
		}

		if d.IsDir() || !strings.HasSuffix(p, ClassSuffix) {
			return nil
		}

		// fs.FS paths are already '/'-separated, matching internal names
		name := strings.TrimSuffix(p, ClassSuffix)
		if excl.Excludes(name) {
			res.Excluded++
			return nil
		}

		res.Targets = append(res.Targets, target.Target{ClassName: name})

		return nil
	})
	if err != nil {
		return WalkResult{}, fmt.Errorf("%w: walk: %w", ErrArchiveIO, err)
	}

	return res, nil
}
