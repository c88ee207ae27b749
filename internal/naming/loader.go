package naming

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML rename table from the given path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read naming table %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Table.
func Parse(data []byte) (*Table, error) {
	var t Table

	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse naming table YAML: %w", err)
	}

	applyDefaults(&t)

	return &t, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(t *Table) {
	if t.Version == "" {
		t.Version = "1"
	}

	if t.Classes == nil {
		t.Classes = map[string]string{}
	}

	if t.Methods == nil {
		t.Methods = map[string]string{}
	}

	if t.Fields == nil {
		t.Fields = map[string]string{}
	}
}

// Marshal serializes a Table to YAML.
func Marshal(t *Table) ([]byte, error) {
	return yaml.Marshal(t)
}

// WriteFile writes a Table to the given path, creating missing parent directories.
func WriteFile(t *Table, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal naming table: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for naming table %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write naming table %s: %w", path, err)
	}

	return nil
}

// MCP export file names.
const (
	MCPFieldsFile  = "fields.csv"
	MCPMethodsFile = "methods.csv"
)

// LoadMCPDir loads an MCP export directory. Either CSV file may be absent,
// but not both.
func LoadMCPDir(dir string) (*Table, error) {
	t := NewTable()
	found := 0

	for _, src := range []struct {
		file   string
		domain Domain
	}{
		{MCPFieldsFile, DomainField},
		{MCPMethodsFile, DomainMethod},
	} {
		f, err := os.Open(filepath.Join(dir, src.file))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to open MCP table: %w", err)
		}

		err = ReadMCPCSV(f, src.domain, t)
		_ = f.Close()

		if err != nil {
			return nil, fmt.Errorf("failed to read MCP table %s: %w", src.file, err)
		}

		found++
	}

	if found == 0 {
		return nil, fmt.Errorf("no %s or %s in %s", MCPFieldsFile, MCPMethodsFile, dir)
	}

	return t, nil
}

// ReadMCPCSV reads "searge,name,..." rows into t under domain. The header
// row is skipped when its first column is "searge".
func ReadMCPCSV(r io.Reader, domain Domain, t *Table) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		if line == 1 && len(rec) > 0 && rec[0] == "searge" {
			continue
		}

		if len(rec) < 2 || rec[0] == "" || rec[1] == "" {
			return fmt.Errorf("line %d: expected at least searge and name columns", line)
		}

		t.Add(domain, rec[0], rec[1])
	}
}
