package schema

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultCatalog)
		if err != nil {
			panic(fmt.Sprintf("schema: embedded catalog is invalid: %v", err))
		}

		defaultCat = c
	})

	return defaultCat
}

// LoadFile loads and parses a YAML catalog file from the given path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// ParseFile parses YAML catalog data into its on-disk form without building
// lookup indexes.
func ParseFile(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// Parse parses YAML data into a Catalog.
func Parse(data []byte) (*Catalog, error) {
	f, err := ParseFile(data)
	if err != nil {
		return nil, err
	}

	return NewCatalog(f.Version, f.Types...), nil
}

// Marshal serializes a catalog back to YAML.
func Marshal(c *Catalog) ([]byte, error) {
	f := File{Version: c.version}
	for _, rt := range c.types {
		f.Types = append(f.Types, *rt)
	}

	return yaml.Marshal(&f)
}

// applyDefaults fills in default values for optional settings.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Types {
		rt := &f.Types[i]
		for j := range rt.Fields {
			if rt.Fields[j].Kind == "" {
				rt.Fields[j].Kind = KindAlpha
			}
		}

		for j := range rt.Extensible {
			if rt.Extensible[j].Kind == "" {
				rt.Extensible[j].Kind = KindAlpha
			}
		}
	}
}
