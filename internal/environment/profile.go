package environment

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ofremap/internal/naming"
)

// Mapping source formats.
const (
	FormatYAML   = "yaml"
	FormatMCPCSV = "mcp-csv"
)

// Profile is the YAML form of a launch environment.
type Profile struct {
	GameDir  string                   `yaml:"gamedir,omitempty"`
	ModList  []ModRecord              `yaml:"modlist,omitempty"`
	Targets  []string                 `yaml:"targets"`
	Mappings map[string]MappingSource `yaml:"mappings,omitempty"`
	Exclude  []string                 `yaml:"exclude,omitempty"`

	// dir is the directory relative paths resolve against.
	dir string
}

// MappingSource points at a rename table on disk. Overlays are loaded the
// same way and merged on top in order, later renames winning.
type MappingSource struct {
	Path     string          `yaml:"path"`
	Format   string          `yaml:"format,omitempty"`
	Overlays []MappingSource `yaml:"overlays,omitempty"`
}

// LoadFile loads a profile and builds the environment it describes.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	p, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, err
	}

	return p.Build()
}

// Parse parses YAML data into a Profile whose relative paths resolve against dir.
func Parse(data []byte, dir string) (*Profile, error) {
	var p Profile

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	p.dir = dir
	applyDefaults(&p)

	return &p, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(p *Profile) {
	for id, src := range p.Mappings {
		defaultFormat(&src)
		p.Mappings[id] = src
	}
}

func defaultFormat(src *MappingSource) {
	if src.Format == "" {
		src.Format = FormatYAML
	}

	for i := range src.Overlays {
		defaultFormat(&src.Overlays[i])
	}
}

// Build loads every mapping table and returns the environment. Absent
// profile keys stay absent so that validation can report them.
func (p *Profile) Build() (*Static, error) {
	env := NewStatic()

	if p.GameDir != "" {
		Set(env, GameDir, p.resolve(p.GameDir))
	}

	if p.ModList != nil {
		Set(env, ModList, p.ModList)
	}

	if p.Targets != nil {
		Set(env, Targets, p.Targets)
	}

	if p.Exclude != nil {
		Set(env, ExcludePatterns, p.Exclude)
	}

	for id, src := range p.Mappings {
		table, err := p.loadMapping(src)
		if err != nil {
			return nil, fmt.Errorf("failed to load mapping %q: %w", id, err)
		}

		env.RegisterNameMapping(id, table)
	}

	return env, nil
}

func (p *Profile) loadMapping(src MappingSource) (*naming.Table, error) {
	table, err := p.loadTable(src)
	if err != nil {
		return nil, err
	}

	for _, o := range src.Overlays {
		overlay, err := p.loadMapping(o)
		if err != nil {
			return nil, fmt.Errorf("failed to load overlay %s: %w", o.Path, err)
		}

		table.Merge(overlay)
	}

	return table, nil
}

func (p *Profile) loadTable(src MappingSource) (*naming.Table, error) {
	path := p.resolve(src.Path)

	switch src.Format {
	case FormatYAML:
		return naming.LoadFile(path)
	case FormatMCPCSV:
		return naming.LoadMCPDir(path)
	default:
		return nil, fmt.Errorf("unknown mapping format %q", src.Format)
	}
}

func (p *Profile) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || p.dir == "" {
		return path
	}

	return filepath.Join(p.dir, path)
}
