// Package templates loads result-shape templates from YAML, so callers can
// keep their typed-mapping contracts in reviewable configuration instead of
// code.
package templates

import (
	"fmt"

	"shape-mapper/shape"
)

// File represents the root of a YAML template declaration file.
type File struct {
	// Version of the template schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Templates is the list of named shape declarations.
	Templates []Def `yaml:"templates"`
}

// Def declares one named result-shape template.
type Def struct {
	// Name the template is looked up under.
	Name string `yaml:"name"`

	// Elem is the element kind, e.g. "float64", "string", "duration".
	Elem string `yaml:"elem"`

	// Length of each result; omitted or 1 means scalar.
	Length int `yaml:"length,omitempty"`
}

var elemKinds = map[string]shape.KindEnum{
	"int":      shape.KindInt,
	"int8":     shape.KindInt8,
	"int16":    shape.KindInt16,
	"int32":    shape.KindInt32,
	"int64":    shape.KindInt64,
	"uint":     shape.KindUint,
	"uint8":    shape.KindUint8,
	"uint16":   shape.KindUint16,
	"uint32":   shape.KindUint32,
	"uint64":   shape.KindUint64,
	"float32":  shape.KindFloat32,
	"float64":  shape.KindFloat64,
	"bool":     shape.KindBool,
	"string":   shape.KindString,
	"time":     shape.KindTime,
	"duration": shape.KindDuration,
}

// Resolve converts a declaration into the template the typed mapper checks
// against. Call Validate first; Resolve rejects only the unknown kind.
func (d Def) Resolve() (shape.Template, error) {
	kind, ok := elemKinds[d.Elem]
	if !ok {
		return shape.Template{}, fmt.Errorf("unknown element kind %q", d.Elem)
	}

	return shape.Template{Kind: kind, Length: d.Length}, nil
}
