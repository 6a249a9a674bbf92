// Package theme loads named base colors from TOML or YAML files and
// derives a standout companion for each.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/swatch"
)

// fileTheme is the serialized form shared by TOML and YAML.
type fileTheme struct {
	Name   string            `toml:"name" yaml:"name"`
	Colors map[string]string `toml:"colors" yaml:"colors"`
}

// Entry is one named color and its standout.
type Entry struct {
	Name     string
	Base     swatch.Color
	Standout swatch.Color
}

// Theme is a set of named colors sorted by name.
type Theme struct {
	Name    string
	Entries []Entry
}

// Format selects the decoder for theme data.
type Format int

const (
	// FormatTOML decodes TOML.
	FormatTOML Format = iota
	// FormatYAML decodes YAML.
	FormatYAML
)

// FormatFromPath picks the format from the file extension.
// ".yaml" and ".yml" select YAML; ".toml" selects TOML.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("theme: unsupported file extension %q", filepath.Ext(path))
	}
}

// Load reads and parses a theme file.
func Load(path string) (Theme, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return Parse(data, f)
}

// Parse decodes theme data. Every color must be a "#rrggbb" string.
func Parse(data []byte, f Format) (Theme, error) {
	var ft fileTheme
	switch f {
	case FormatTOML:
		if err := toml.Unmarshal(data, &ft); err != nil {
			return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &ft); err != nil {
			return Theme{}, fmt.Errorf("theme: parse YAML: %w", err)
		}
	default:
		return Theme{}, fmt.Errorf("theme: unknown format %d", f)
	}

	if len(ft.Colors) == 0 {
		return Theme{}, errors.New("theme: no colors defined")
	}

	names := make([]string, 0, len(ft.Colors))
	for name := range ft.Colors {
		names = append(names, name)
	}
	sort.Strings(names)

	t := Theme{Name: ft.Name, Entries: make([]Entry, 0, len(names))}
	for _, name := range names {
		c, err := swatch.ParseHex(ft.Colors[name])
		if err != nil {
			return Theme{}, fmt.Errorf("theme: color %q: %w", name, err)
		}
		t.Entries = append(t.Entries, Entry{
			Name:     name,
			Base:     c,
			Standout: swatch.StandoutColor(c),
		})
	}
	return t, nil
}
