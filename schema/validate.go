package schema

import (
	"fmt"

	"transformable/internal/diagnostic"
)

// Validate checks the declaration against the properties a type exposes.
// known maps each exposed property name to whether it is a data property;
// callables map to false.
func (s *Schema) Validate(known map[string]bool) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		return res
	}

	seen := map[string]struct{}{}

	check := func(name string, mutable bool) {
		if _, dup := seen[name]; dup {
			res.AddWarning("duplicate_property", fmt.Sprintf("property %q declared more than once", name), s.Type, name)
			return
		}

		seen[name] = struct{}{}

		if name == "" {
			res.AddError("empty_property", "property name is empty", s.Type, "")
			return
		}

		data, exists := known[name]
		if !exists {
			res.AddError("unknown_property", fmt.Sprintf("property %q is not exposed by the type", name), s.Type, name)
			return
		}

		if mutable && !data {
			res.AddError("not_data", fmt.Sprintf("property %q is callable and cannot be mutable", name), s.Type, name)
		}
	}

	for _, name := range s.Mutable {
		check(name, true)
	}

	for _, p := range s.Properties {
		check(p.Name, p.Mutable)
	}

	return res
}
