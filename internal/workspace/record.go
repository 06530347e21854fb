package workspace

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"bem-translator/internal/common"
	"bem-translator/internal/schema"
)

// Record is one typed entry of a Workspace. Fields are stored in their
// textual form; an empty string means the field is unset.
type Record struct {
	rt     *schema.RecordType
	name   string
	fields []string
	groups [][]string
	index  int
	sealed bool
}

func newRecord(rt *schema.RecordType) *Record {
	return &Record{
		rt:     rt,
		fields: make([]string, rt.NumFields()),
		index:  -1,
	}
}

// Type returns the canonical record type name.
func (r *Record) Type() string { return r.rt.Name }

// Schema returns the record type descriptor.
func (r *Record) Schema() *schema.RecordType { return r.rt }

// Name returns the record name, or "" for unnamed types.
func (r *Record) Name() string { return r.name }

// Index returns the position of the record in its Workspace, or -1 before
// insertion.
func (r *Record) Index() int { return r.index }

// Sealed reports whether the record was added to a Workspace.
func (r *Record) Sealed() bool { return r.sealed }

// NumFields returns the number of fixed fields of the record type.
func (r *Record) NumFields() int { return len(r.fields) }

// Description identifies the record in messages, e.g. "Curve:Cubic 'Curve1'".
func (r *Record) Description() string {
	return r.rt.Name + " " + common.Quote(r.name)
}

// SetName sets the record name.
func (r *Record) SetName(name string) error {
	if err := r.writable(); err != nil {
		return err
	}

	if !r.rt.Named {
		return fmt.Errorf("%s: %w", r.rt.Name, ErrUnnamedType)
	}

	if err := checkText(name); err != nil {
		return fmt.Errorf("%s: name: %w", r.rt.Name, err)
	}

	r.name = strings.TrimSpace(name)

	return nil
}

// SetString sets the fixed field at idx.
func (r *Record) SetString(idx int, s string) error {
	if err := r.writable(); err != nil {
		return err
	}

	if idx < 0 || idx >= len(r.fields) {
		return fmt.Errorf("%s: %w: %d", r.Description(), ErrFieldIndex, idx)
	}

	if err := checkText(s); err != nil {
		return fmt.Errorf("%s: %s: %w", r.Description(), r.rt.Fields[idx].Name, err)
	}

	r.fields[idx] = strings.TrimSpace(s)

	return nil
}

// SetDouble sets the fixed field at idx to a number.
func (r *Record) SetDouble(idx int, f float64) error {
	return r.SetString(idx, formatDouble(f))
}

// SetInt sets the fixed field at idx to an integer.
func (r *Record) SetInt(idx, n int) error {
	return r.SetString(idx, strconv.Itoa(n))
}

// SetByName sets a fixed field addressed by its (normalized) name.
func (r *Record) SetByName(field, s string) error {
	idx, ok := r.rt.FieldIndex(field)
	if !ok {
		return fmt.Errorf("%s: %w %q", r.rt.Name, ErrUnknownField, field)
	}

	return r.SetString(idx, s)
}

// String returns the fixed field at idx, or "" when unset or out of range.
func (r *Record) String(idx int) string {
	if idx < 0 || idx >= len(r.fields) {
		return ""
	}

	return r.fields[idx]
}

// Double parses the fixed field at idx. ok is false when the field is unset
// or not a finite number.
func (r *Record) Double(idx int) (float64, bool) {
	s := r.String(idx)
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// Get returns a fixed field addressed by name.
func (r *Record) Get(field string) string {
	idx, ok := r.rt.FieldIndex(field)
	if !ok {
		return ""
	}

	return r.fields[idx]
}

// IsSet reports whether the fixed field at idx holds a value.
func (r *Record) IsSet(idx int) bool {
	return r.String(idx) != ""
}

// PushGroup appends one extensible group.
func (r *Record) PushGroup(values ...string) error {
	if err := r.writable(); err != nil {
		return err
	}

	if !r.rt.IsExtensible() {
		return fmt.Errorf("%s: %w", r.rt.Name, ErrNotExtensible)
	}

	if len(values) != r.rt.GroupSize() {
		return fmt.Errorf("%s: %w: got %d, want %d", r.Description(), ErrGroupArity, len(values), r.rt.GroupSize())
	}

	group := make([]string, len(values))
	for i, v := range values {
		if err := checkText(v); err != nil {
			return fmt.Errorf("%s: %s: %w", r.Description(), r.rt.Extensible[i].Name, err)
		}

		group[i] = strings.TrimSpace(v)
	}

	r.groups = append(r.groups, group)

	return nil
}

// Groups returns a copy of the extensible groups in order.
func (r *Record) Groups() [][]string {
	out := make([][]string, len(r.groups))
	for i, g := range r.groups {
		out[i] = slices.Clone(g)
	}

	return out
}

// Fields returns every positional value after the name: the fixed fields
// followed by the flattened extensible groups.
func (r *Record) Fields() []string {
	out := slices.Clone(r.fields)
	for _, g := range r.groups {
		out = append(out, g...)
	}

	return out
}

// References returns the non-empty reference fields of the record, fixed and
// grouped, in positional order.
func (r *Record) References() []Reference {
	var refs []Reference

	for pos, value := range r.Fields() {
		f, ok := r.rt.FieldAt(pos)
		if !ok || !f.IsReference() || value == "" {
			continue
		}

		refs = append(refs, Reference{Position: pos, Field: f, Name: value})
	}

	return refs
}

// Reference is one reference field of a record.
type Reference struct {
	Position int
	Field    schema.Field
	Name     string
}

func (r *Record) clone() *Record {
	c := newRecord(r.rt)
	c.name = r.name
	copy(c.fields, r.fields)

	for _, g := range r.groups {
		c.groups = append(c.groups, slices.Clone(g))
	}

	return c
}

func (r *Record) writable() error {
	if r.sealed {
		return fmt.Errorf("%s: %w", r.Description(), ErrSealed)
	}

	return nil
}

func checkText(s string) error {
	if strings.ContainsAny(s, ",;!\n\r") {
		return fmt.Errorf("%w: %q must not contain ',', ';', '!' or line breaks", ErrInvalidValue, s)
	}

	return nil
}

func formatDouble(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
