package templates

import (
	"fmt"

	"shape-mapper/diagnostic"
	"shape-mapper/internal/match"
)

// Diagnostic codes produced by Validate.
const (
	CodeEmptyName     = "template-name-empty"
	CodeDuplicateName = "template-name-duplicate"
	CodeUnknownElem   = "template-elem-unknown"
	CodeBadLength     = "template-length-invalid"
)

// Validate checks every declaration and reports all violations at once as
// diagnostic records. The returned error combines the error records, or is
// nil when the file is valid.
func Validate(f *File) (*diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	seen := make(map[string]int, len(f.Templates))

	for i, def := range f.Templates {
		switch first, dup := seen[def.Name]; {
		case def.Name == "":
			diags.AddError(CodeEmptyName, "template name must not be empty", i)
		case dup:
			diags.AddError(CodeDuplicateName,
				fmt.Sprintf("duplicate template name %q, first declared at %d", def.Name, first), i)
		default:
			seen[def.Name] = i
		}

		if _, ok := elemKinds[def.Elem]; !ok {
			msg := fmt.Sprintf("unknown element kind %q", def.Elem)
			if closest := match.Closest(def.Elem, knownElems(), 0.5); closest != "" {
				msg = fmt.Sprintf("%s (did you mean %q?)", msg, closest)
			}

			diags.AddError(CodeUnknownElem, msg, i)
		}

		if def.Length < 1 {
			diags.AddError(CodeBadLength,
				fmt.Sprintf("length must be at least 1, got %d", def.Length), i)
		}
	}

	return diags, diags.Err()
}

func knownElems() []string {
	names := make([]string, 0, len(elemKinds))
	for name := range elemKinds {
		names = append(names, name)
	}

	return names
}
