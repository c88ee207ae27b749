package retransform

import (
	"go.uber.org/zap"

	"ofremap/internal/discover"
)

// Option configures a Transformer.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	opener  discover.Opener
	exclude []string
	modsDir string
}

func defaultOptions() options {
	return options{
		logger:  zap.NewNop(),
		opener:  discover.Open,
		modsDir: discover.DefaultModsDir,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithOpener replaces the archive opener.
func WithOpener(open discover.Opener) Option {
	return func(o *options) {
		if open != nil {
			o.opener = open
		}
	}
}

// WithExcludePatterns adds doublestar patterns of internal names to leave
// out of discovery, on top of the environment's own patterns.
func WithExcludePatterns(patterns ...string) Option {
	return func(o *options) {
		o.exclude = append(o.exclude, patterns...)
	}
}

// WithModsDir sets the mods directory relative to the game directory.
func WithModsDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.modsDir = dir
		}
	}
}
