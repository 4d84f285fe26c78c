package templates

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"shape-mapper/internal/match"
	"shape-mapper/shape"
	"shape-mapper/utils"
)

// LoadFile loads and parses a YAML template file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and applies defaults.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse template YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// Marshal serializes a File back to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	f.Version = utils.Coalesce(f.Version, "1")

	for i := range f.Templates {
		f.Templates[i].Length = utils.Coalesce(f.Templates[i].Length, 1)
	}
}

// Find resolves the template declared under name. When name matches no
// declaration the error suggests the closest declared name, if any is
// reasonably similar.
func (f *File) Find(name string) (shape.Template, error) {
	for _, def := range f.Templates {
		if def.Name == name {
			return def.Resolve()
		}
	}

	names := make([]string, len(f.Templates))
	for i, def := range f.Templates {
		names[i] = def.Name
	}

	if closest := match.Closest(name, names, 0.5); closest != "" {
		return shape.Template{}, fmt.Errorf("no template named %q (did you mean %q?)", name, closest)
	}

	return shape.Template{}, fmt.Errorf("no template named %q", name)
}
