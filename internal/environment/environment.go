package environment

import (
	"errors"
	"fmt"

	"ofremap/internal/naming"
)

// Fatal configuration errors, one per missing input.
var (
	ErrModListMissing = errors.New("modlist not found")
	ErrGameDirMissing = errors.New("gamedir not found")
	ErrTargetsMissing = errors.New("explicit target list not found")
	ErrNoMapping      = errors.New("name mapping not found")
)

// ModRecord is one entry of the installed mod list.
type ModRecord struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// Key is a typed property key.
type Key[T any] struct {
	name string
}

// Name returns the property name.
func (k Key[T]) Name() string {
	return k.name
}

// Well-known properties.
var (
	ModList         = Key[[]ModRecord]{name: "modlist"}
	GameDir         = Key[string]{name: "gamedir"}
	Targets         = Key[[]string]{name: "targets"}
	ExcludePatterns = Key[[]string]{name: "exclude"}
)

// Environment is a read-only key-value launch environment.
type Environment interface {
	// Property returns the raw value stored under name.
	Property(name string) (any, bool)
	// FindNameMapping returns the rename service registered under id.
	FindNameMapping(id string) (naming.Resolver, bool)
}

// Get returns the property for k. ok is false when the property is absent or
// holds a value of another type.
func Get[T any](env Environment, k Key[T]) (T, bool) {
	raw, ok := env.Property(k.name)
	if !ok {
		var zero T
		return zero, false
	}

	v, ok := raw.(T)

	return v, ok
}

// RequireModList returns the mod list or ErrModListMissing.
func RequireModList(env Environment) ([]ModRecord, error) {
	mods, ok := Get(env, ModList)
	if !ok {
		return nil, ErrModListMissing
	}

	return mods, nil
}

// RequireGameDir returns the game directory or ErrGameDirMissing.
func RequireGameDir(env Environment) (string, error) {
	dir, ok := Get(env, GameDir)
	if !ok || dir == "" {
		return "", ErrGameDirMissing
	}

	return dir, nil
}

// RequireTargets returns the explicit target names or ErrTargetsMissing.
// An empty list is valid.
func RequireTargets(env Environment) ([]string, error) {
	targets, ok := Get(env, Targets)
	if !ok {
		return nil, ErrTargetsMissing
	}

	return targets, nil
}

// RequireNameMapping returns the resolver registered under id or ErrNoMapping.
// A nil resolver, typed or not, counts as missing.
func RequireNameMapping(env Environment, id string) (naming.Resolver, error) {
	r, ok := env.FindNameMapping(id)
	if !ok || naming.IsNil(r) {
		return nil, fmt.Errorf("%w: %q", ErrNoMapping, id)
	}

	return r, nil
}

// Static is an in-memory Environment. It is populated once and then only read.
type Static struct {
	props    map[string]any
	mappings map[string]naming.Resolver
}

// NewStatic returns an empty environment.
func NewStatic() *Static {
	return &Static{
		props:    make(map[string]any),
		mappings: make(map[string]naming.Resolver),
	}
}

// Set stores v under k.
func Set[T any](s *Static, k Key[T], v T) {
	s.props[k.name] = v
}

// RegisterNameMapping registers a rename service under id.
func (s *Static) RegisterNameMapping(id string, r naming.Resolver) {
	s.mappings[id] = r
}

func (s *Static) Property(name string) (any, bool) {
	v, ok := s.props[name]
	return v, ok
}

func (s *Static) FindNameMapping(id string) (naming.Resolver, bool) {
	r, ok := s.mappings[id]
	return r, ok
}
