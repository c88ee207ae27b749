package naming

import "maps"

// Table is an in-memory rename table, one map per domain.
// It is read-only once loaded and safe for concurrent use.
type Table struct {
	Version string            `yaml:"version,omitempty"`
	Classes map[string]string `yaml:"classes,omitempty"`
	Methods map[string]string `yaml:"methods,omitempty"`
	Fields  map[string]string `yaml:"fields,omitempty"`
}

// NewTable returns an empty table.
func NewTable() *Table {
	t := &Table{}
	applyDefaults(t)

	return t
}

// Resolve returns the new name for name in domain, or name itself.
func (t *Table) Resolve(domain Domain, name string) string {
	if mapped, ok := t.domain(domain)[name]; ok {
		return mapped
	}

	return name
}

// Add records a rename.
func (t *Table) Add(domain Domain, oldName, newName string) {
	if m := t.domain(domain); m != nil {
		m[oldName] = newName
	}
}

// Len returns the number of renames across all domains.
func (t *Table) Len() int {
	return len(t.Classes) + len(t.Methods) + len(t.Fields)
}

// Merge copies every rename of other into t; other wins on conflicts.
func (t *Table) Merge(other *Table) {
	applyDefaults(t)

	maps.Copy(t.Classes, other.Classes)
	maps.Copy(t.Methods, other.Methods)
	maps.Copy(t.Fields, other.Fields)
}

func (t *Table) domain(d Domain) map[string]string {
	switch d {
	case DomainClass:
		return t.Classes
	case DomainMethod:
		return t.Methods
	case DomainField:
		return t.Fields
	default:
		return nil
	}
}
