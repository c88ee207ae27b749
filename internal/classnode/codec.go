package classnode

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Decode reads one class body document.
func Decode(r io.Reader) (*ClassNode, error) {
	var node ClassNode

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&node); err != nil {
		return nil, fmt.Errorf("failed to parse class body: %w", err)
	}

	if node.Name == "" {
		return nil, fmt.Errorf("class body has no name")
	}

	return &node, nil
}

// Encode writes node as a class body document.
func Encode(w io.Writer, node *ClassNode) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to marshal class body %s: %w", node.Name, err)
	}

	return enc.Close()
}

// LoadFile reads a class body document from path.
func LoadFile(path string) (*ClassNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class body %s: %w", path, err)
	}

	return Decode(bytes.NewReader(data))
}

// WriteFile writes node to path, creating missing parent directories.
func WriteFile(node *ClassNode, path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, node); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for class body %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write class body %s: %w", path, err)
	}

	return nil
}
