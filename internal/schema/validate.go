package schema

import (
	"fmt"

	"bem-translator/internal/common"
	"bem-translator/internal/diagnostic"
	"bem-translator/internal/match"
)

// Validate checks a catalog for structural problems. It never mutates c.
func Validate(c *Catalog) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if c == nil {
		res.AddError("catalog_is_nil", "catalog is nil", "", "")
		return res
	}

	seenTypes := map[string]struct{}{}

	for _, rt := range c.types {
		if rt.Name == "" {
			res.AddError("missing_type_name", "record type without a name", "", "")
			continue
		}

		key := common.FoldKey(rt.Name)
		if _, ok := seenTypes[key]; ok {
			res.AddError("duplicate_type", fmt.Sprintf("duplicate record type %q", rt.Name), rt.Name, "")
			continue
		}

		seenTypes[key] = struct{}{}

		seenFields := map[string]struct{}{}
		for _, f := range rt.Fields {
			validateField(res, c, rt, f, seenFields)
		}

		seenGroup := map[string]struct{}{}
		for _, f := range rt.Extensible {
			validateField(res, c, rt, f, seenGroup)
		}

		if rt.MinGroups < 0 {
			res.AddError("invalid_min_groups", "min_groups must not be negative", rt.Name, "")
		}

		if rt.MinGroups > 0 && !rt.IsExtensible() {
			res.AddError("invalid_min_groups", "min_groups set on a type without an extensible group", rt.Name, "")
		}
	}

	return res
}

func validateField(res *diagnostic.Diagnostics, c *Catalog, rt *RecordType, f Field, seen map[string]struct{}) {
	if f.Name == "" {
		res.AddError("missing_field_name", "field without a name", rt.Name, "")
		return
	}

	key := match.NormalizeIdent(f.Name)
	if _, ok := seen[key]; ok {
		res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", f.Name), rt.Name, f.Name)
		return
	}

	seen[key] = struct{}{}

	if !f.Kind.IsValid() {
		res.AddError("invalid_kind", fmt.Sprintf("unknown field kind %q", f.Kind), rt.Name, f.Name)
		return
	}

	switch f.Kind {
	case KindChoice:
		if len(f.Choices) == 0 {
			res.AddError("missing_choices", "choice field declares no choices", rt.Name, f.Name)
		}
	case KindReference:
		if len(f.Refs) == 0 {
			res.AddError("missing_refs", "reference field declares no target types", rt.Name, f.Name)
		}

		for _, ref := range f.Refs {
			if _, ok := c.Type(ref); !ok {
				res.Add(diagnostic.Diagnostic{
					Severity:    diagnostic.SeverityError,
					Code:        "unknown_ref_type",
					Message:     fmt.Sprintf("reference names unknown record type %q", ref),
					Subject:     rt.Name,
					Field:       f.Name,
					Suggestions: c.Suggest(ref, 3),
				})
			}
		}
	}
}
