package discover

import (
	"fmt"

	"go.uber.org/zap"

	"ofremap/internal/common"
	"ofremap/internal/environment"
	"ofremap/internal/target"
)

// Defaults for locating and filtering the OptiFine archive.
const (
	DefaultModule          = "OptiFine"
	DefaultModsDir         = "mods"
	DefaultExclusionPrefix = "optifine/"
)

// Locator says where to find the archive: the mod list entry is looked up
// by module name and its file resolved under BaseDir.
type Locator struct {
	Mods    []environment.ModRecord
	BaseDir string
}

// Discoverer finds the remap targets inside one archive.
type Discoverer struct {
	Module    string
	ModsDir   string
	Exclusion Exclusion
	Open      Opener

	logger *zap.Logger
}

// New returns a Discoverer for the OptiFine archive with the default layout.
func New(logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Discoverer{
		Module:    DefaultModule,
		ModsDir:   DefaultModsDir,
		Exclusion: Exclusion{Prefix: DefaultExclusionPrefix},
		Open:      Open,
		logger:    logger,
	}
}

// Discover returns the union of explicit and the classes found in the
// archive. Exclusion patterns are validated first. On any error no set is
// returned.
func (d *Discoverer) Discover(loc Locator, explicit []target.Target) (set *target.Set, err error) {
	if err := d.Exclusion.Validate(); err != nil {
		return nil, err
	}

	mod, err := FindModule(loc.Mods, d.Module)
	if err != nil {
		return nil, err
	}

	path, err := ArchivePath(loc.BaseDir, d.ModsDir, mod.File)
	if err != nil {
		return nil, err
	}

	archive, err := d.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrArchiveIO, path, err)
	}

	defer func() {
		if cerr := archive.Close(); cerr != nil && err == nil {
			set, err = nil, fmt.Errorf("%w: close %s: %w", ErrArchiveIO, path, cerr)
		}
	}()

	res, err := Walk(archive, d.Exclusion)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, err)
	}

	d.logger.Info("Discovered remap targets",
		zap.String("module", mod.Name),
		zap.String("archive", path),
		zap.Int("classes", len(res.Targets)),
		zap.Int("excluded", res.Excluded),
		zap.Int("explicit", len(explicit)))

	pinned := target.NewSet(common.MapSlice(explicit, target.Target.Normalized)...)

	return pinned.Union(target.NewSet(res.Targets...)), nil
}
