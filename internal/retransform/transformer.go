package retransform

import (
	"fmt"

	"go.uber.org/zap"

	"ofremap/internal/audit"
	"ofremap/internal/classnode"
	"ofremap/internal/common"
	"ofremap/internal/discover"
	"ofremap/internal/environment"
	"ofremap/internal/gate"
	"ofremap/internal/naming"
	"ofremap/internal/remap"
	"ofremap/internal/target"
)

const (
	// MappingID is the rename service the transformer needs.
	MappingID = "srg"
	// Label identifies the transformer to the host pipeline.
	Label     = "OptiFineDevRetransform"
)

var (
	// ErrNoMapping is returned by New when no "srg" name mapping is registered.
	ErrNoMapping             = environment.ErrNoMapping
	// ErrInvalidExcludePattern is returned by New for a malformed exclude glob.
	ErrInvalidExcludePattern = discover.ErrInvalidExcludePattern
)

// Prerequisite is OptiFine's own transformer having run on a class.
var Prerequisite = gate.Prerequisite{Type: audit.Transformer, Tag: discover.DefaultModule}

// VotingContext is what the host scheduler knows about a class when it asks
// for a vote or hands the class over.
type VotingContext struct {
	ClassName string
	Audit     audit.Trail
}

// Transformer remaps OptiFine classes into the runtime naming scheme.
// It is immutable after New and safe for concurrent use.
type Transformer struct {
	targets *target.Set
	gate    *gate.Gate
	mapper  remap.Mapper
	logger  *zap.Logger
}

// New builds a Transformer from the launch environment. explicit lists
// classes to remap in addition to those found in the OptiFine archive; they
// are remapped only after OptiFine's transformer.
func New(env environment.Environment, explicit []target.Target, opts ...Option) (*Transformer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	explicit = common.MapSlice(explicit, target.Target.Normalized)

	mods, err := environment.RequireModList(env)
	if err != nil {
		return nil, err
	}

	gameDir, err := environment.RequireGameDir(env)
	if err != nil {
		return nil, err
	}

	d := discover.New(o.logger)
	d.ModsDir = o.modsDir
	d.Open = o.opener
	d.Exclusion.Patterns = exclusionPatterns(env, o.exclude)

	set, err := d.Discover(discover.Locator{Mods: mods, BaseDir: gameDir}, explicit)
	if err != nil {
		return nil, fmt.Errorf("failed to discover targets: %w", err)
	}

	resolver, err := environment.RequireNameMapping(env, MappingID)
	if err != nil {
		return nil, err
	}

	mapper, err := naming.NewAdapter(resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to build name mapper: %w", err)
	}

	return &Transformer{
		targets: set,
		gate:    gate.New(explicit, Prerequisite),
		mapper:  mapper,
		logger:  o.logger,
	}, nil
}

// NewFromEnvironment is New with the explicit targets taken from the
// environment's target list.
func NewFromEnvironment(env environment.Environment, opts ...Option) (*Transformer, error) {
	names, err := environment.RequireTargets(env)
	if err != nil {
		return nil, err
	}

	return New(env, common.MapSlice(names, target.Class), opts...)
}

func exclusionPatterns(env environment.Environment, extra []string) []string {
	patterns, _ := environment.Get(env, environment.ExcludePatterns)

	out := make([]string, 0, len(patterns)+len(extra))
	out = append(out, patterns...)

	return append(out, extra...)
}

// Targets returns the classes the transformer wants, ordered by name.
func (t *Transformer) Targets() []target.Target {
	return t.targets.Slice()
}

// Claims reports whether className, internal or dotted, is one of Targets.
func (t *Transformer) Claims(className string) bool {
	return t.targets.Contains(target.Class(className).ClassName)
}

// CastVote tells the scheduler whether the class may be transformed now.
func (t *Transformer) CastVote(ctx VotingContext) gate.Vote {
	vote := t.gate.Vote(ctx.ClassName, ctx.Audit)

	t.logger.Debug("Cast vote",
		zap.String("class", ctx.ClassName),
		zap.Stringer("vote", vote),
		zap.Bool("explicit", t.gate.IsExplicit(ctx.ClassName)))

	return vote
}

// Transform returns a remapped copy of in. The input is left untouched.
func (t *Transformer) Transform(in *classnode.ClassNode, ctx VotingContext) *classnode.ClassNode {
	out := remap.Rewrite(in, t.mapper)
	if out != nil {
		t.logger.Debug("Remapped class",
			zap.String("class", ctx.ClassName),
			zap.String("name", out.Name))
	}

	return out
}

// Labels names the transformer to the host pipeline.
func (t *Transformer) Labels() []string {
	return []string{Label}
}
