package schema

import "bem-translator/internal/match"

// FieldKind is the value kind of a record field.
type FieldKind string

const (
	KindAlpha     FieldKind = "alpha"
	KindReal      FieldKind = "real"
	KindInteger   FieldKind = "integer"
	KindChoice    FieldKind = "choice"
	KindReference FieldKind = "reference"
)

// IsValid reports whether k is a known field kind.
func (k FieldKind) IsValid() bool {
	switch k {
	case KindAlpha, KindReal, KindInteger, KindChoice, KindReference:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether values of this kind are written as numbers.
func (k FieldKind) IsNumeric() bool {
	return k == KindReal || k == KindInteger
}

// File is the on-disk form of a catalog.
type File struct {
	Version string       `yaml:"version"`
	Types   []RecordType `yaml:"types"`
}

// Field describes one positional field of a record type.
type Field struct {
	Name     string    `yaml:"name"`
	Kind     FieldKind `yaml:"kind"`
	Required bool      `yaml:"required,omitempty"`
	Default  string    `yaml:"default,omitempty"`
	Choices  []string  `yaml:"choices,omitempty"`
	// Refs lists the record types a reference field may name.
	Refs  []string `yaml:"refs,omitempty"`
	Units string   `yaml:"units,omitempty"`
}

// IsReference reports whether the field holds the name of another record.
func (f Field) IsReference() bool {
	return f.Kind == KindReference
}

// RecordType describes one Workspace record type.
type RecordType struct {
	Name   string `yaml:"name"`
	Memo   string `yaml:"memo,omitempty"`
	Named  bool   `yaml:"named,omitempty"`
	Unique bool   `yaml:"unique,omitempty"`
	Fields []Field `yaml:"fields,omitempty"`
	// Extensible is the tuple repeated after the fixed fields.
	Extensible []Field `yaml:"extensible,omitempty"`
	MinGroups  int     `yaml:"min_groups,omitempty"`

	index map[string]int
}

// IsExtensible reports whether the type carries a repeating group.
func (rt *RecordType) IsExtensible() bool {
	return len(rt.Extensible) > 0
}

// NumFields returns the number of fixed fields.
func (rt *RecordType) NumFields() int {
	return len(rt.Fields)
}

// GroupSize returns the arity of the extensible group, or 0.
func (rt *RecordType) GroupSize() int {
	return len(rt.Extensible)
}

// FieldIndex returns the position of a fixed field by (normalized) name.
func (rt *RecordType) FieldIndex(name string) (int, bool) {
	key := match.NormalizeIdent(name)

	if rt.index != nil {
		i, ok := rt.index[key]
		return i, ok
	}

	for i, f := range rt.Fields {
		if match.NormalizeIdent(f.Name) == key {
			return i, true
		}
	}

	return 0, false
}

// FieldAt returns the descriptor of the field at position i. Positions past
// the fixed fields resolve into the extensible group.
func (rt *RecordType) FieldAt(i int) (Field, bool) {
	if i < 0 {
		return Field{}, false
	}

	if i < len(rt.Fields) {
		return rt.Fields[i], true
	}

	if !rt.IsExtensible() {
		return Field{}, false
	}

	return rt.Extensible[(i-len(rt.Fields))%len(rt.Extensible)], true
}

// GroupFieldIndex returns the position of a field inside the extensible tuple.
func (rt *RecordType) GroupFieldIndex(name string) (int, bool) {
	key := match.NormalizeIdent(name)
	for i, f := range rt.Extensible {
		if match.NormalizeIdent(f.Name) == key {
			return i, true
		}
	}

	return 0, false
}

// FieldNames returns the fixed field names in order.
func (rt *RecordType) FieldNames() []string {
	names := make([]string, len(rt.Fields))
	for i, f := range rt.Fields {
		names[i] = f.Name
	}

	return names
}

func (rt *RecordType) buildIndex() {
	rt.index = make(map[string]int, len(rt.Fields))

	for i, f := range rt.Fields {
		key := match.NormalizeIdent(f.Name)
		if _, exists := rt.index[key]; !exists {
			rt.index[key] = i
		}
	}
}
