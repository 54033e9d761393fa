package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in medical vocabulary.
func Default() Catalog {
	c, err := ParseYAML(bytes.NewReader(defaultYAML))
	if err != nil {
		log.Fatalf("builtin catalog: %s", err)
	}
	return c
}

// Load reads a catalog file, choosing the format from its extension.
// An empty path yields the built-in catalog.
func Load(fs afero.Fs, p string) (Catalog, error) {
	if p == "" {
		return Default(), nil
	}
	var (
		c   Catalog
		err error
	)
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		c, err = LoadYAML(fs, p)
	case ".xlsx":
		c, err = LoadExcel(fs, p)
	case ".html", ".htm":
		c, err = LoadHTML(fs, p)
	default:
		return c, fmt.Errorf("unsupported catalog file %s", p)
	}
	if err != nil {
		return c, err
	}
	for target, cats := range c.Duplicates() {
		log.Printf("catalog: '%s' appears in %s and shares one checkmark", target, strings.Join(cats, ", "))
	}
	return c, nil
}

func LoadYAML(fs afero.Fs, p string) (Catalog, error) {
	handle, err := fs.Open(p)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", p, err)
	}
	defer handle.Close()
	return ParseYAML(handle)
}

func ParseYAML(r io.Reader) (Catalog, error) {
	var c Catalog
	err := yaml.NewDecoder(r).Decode(&c)
	if err != nil {
		return c, fmt.Errorf("decode catalog: %w", err)
	}
	return c, c.Validate()
}

func WriteYAML(w io.Writer, c Catalog) error {
	enc := yaml.NewEncoder(w)
	err := enc.Encode(&c)
	if err != nil {
		return err
	}
	return enc.Close()
}
