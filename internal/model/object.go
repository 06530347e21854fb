package model

import (
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"

	"bem-translator/internal/common"
)

// Handle is the stable identity of a ModelObject. It is assigned at creation
// and never reused.
type Handle = uuid.UUID

// Object is a ModelObject: one typed node of the Building Model graph.
type Object struct {
	handle  Handle
	version uuid.UUID
	info    *TypeInfo
	name    string
	attrs   map[string]Value
	groups  [][]Value
	rels    map[string][]*Object
	model   *Model
}

// NewObject creates a detached object. It becomes part of a Model through Model.Add.
func NewObject(t Type, name string) (*Object, error) {
	info, ok := Info(t)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, t)
	}

	return &Object{
		handle:  uuid.New(),
		version: uuid.New(),
		info:    info,
		name:    name,
		attrs:   make(map[string]Value),
		rels:    make(map[string][]*Object),
	}, nil
}

// Handle returns the stable identity of the object.
func (o *Object) Handle() Handle { return o.handle }

// Version changes on every mutation of the object.
func (o *Object) Version() uuid.UUID { return o.version }

// Type returns the object type.
func (o *Object) Type() Type { return o.info.Type }

// Info returns the type metadata.
func (o *Object) Info() *TypeInfo { return o.info }

// Name returns the object name; unnamed types always return "".
func (o *Object) Name() string { return o.name }

// Model returns the owning model, or nil while the object is detached.
func (o *Object) Model() *Model { return o.model }

// Description identifies the object in messages, e.g. "OS:Curve:Cubic 'Curve1'".
func (o *Object) Description() string {
	return o.info.Type.String() + " " + common.Quote(o.name)
}

// SetName renames the object.
func (o *Object) SetName(name string) {
	if o.name == name {
		return
	}

	o.name = name
	o.touch()
}

// Set assigns an attribute after checking it against the type metadata.
func (o *Object) Set(attr string, v Value) error {
	spec, ok := o.info.Attribute(attr)
	if !ok {
		return fmt.Errorf("%s: %w %q", o.Description(), ErrUnknownAttribute, attr)
	}

	if err := checkValue(spec, v); err != nil {
		return fmt.Errorf("%s: %s: %w", o.Description(), attr, err)
	}

	if cur, exists := o.attrs[attr]; exists && cur == v {
		return nil
	}

	o.attrs[attr] = v
	o.touch()

	return nil
}

// MustSet is Set for statically known attributes; it panics on error.
func (o *Object) MustSet(attr string, v Value) *Object {
	if err := o.Set(attr, v); err != nil {
		panic(err)
	}

	return o
}

// Unset removes an attribute value.
func (o *Object) Unset(attr string) {
	if _, ok := o.attrs[attr]; ok {
		delete(o.attrs, attr)
		o.touch()
	}
}

// Get returns an attribute value.
func (o *Object) Get(attr string) (Value, bool) {
	v, ok := o.attrs[attr]
	return v, ok
}

// Double returns a double attribute; ok is false when unset or of another kind.
func (o *Object) Double(attr string) (float64, bool) {
	v, ok := o.attrs[attr]
	if !ok {
		return 0, false
	}

	return v.AsDouble()
}

// String returns a string or enum attribute.
func (o *Object) String(attr string) (string, bool) {
	v, ok := o.attrs[attr]
	if !ok {
		return "", false
	}

	return v.AsString()
}

// Bool returns a boolean attribute.
func (o *Object) Bool(attr string) (bool, bool) {
	v, ok := o.attrs[attr]
	if !ok {
		return false, false
	}

	return v.AsBool()
}

// Attributes returns the names of the set attributes in declaration order.
func (o *Object) Attributes() []string {
	var names []string

	for _, spec := range o.info.Attributes {
		if _, ok := o.attrs[spec.Name]; ok {
			names = append(names, spec.Name)
		}
	}

	return names
}

// PushGroup appends one extensible group.
func (o *Object) PushGroup(values ...Value) error {
	if len(o.info.Group) == 0 {
		return fmt.Errorf("%s: %w", o.Description(), ErrNoGroups)
	}

	if len(values) != len(o.info.Group) {
		return fmt.Errorf("%s: %w: got %d, want %d", o.Description(), ErrGroupArity, len(values), len(o.info.Group))
	}

	for i, spec := range o.info.Group {
		if err := checkValue(spec, values[i]); err != nil {
			return fmt.Errorf("%s: group %s: %w", o.Description(), spec.Name, err)
		}
	}

	o.groups = append(o.groups, slices.Clone(values))
	o.touch()

	return nil
}

// Groups returns a copy of the extensible groups in order.
func (o *Object) Groups() [][]Value {
	out := make([][]Value, len(o.groups))
	for i, g := range o.groups {
		out[i] = slices.Clone(g)
	}

	return out
}

// ClearGroups removes every extensible group.
func (o *Object) ClearGroups() {
	if len(o.groups) > 0 {
		o.groups = nil
		o.touch()
	}
}

// SetRelation fills a singular slot; a nil target clears it.
func (o *Object) SetRelation(slot string, target *Object) error {
	spec, err := o.checkSlot(slot, target)
	if err != nil {
		return err
	}

	if spec.Collection {
		return fmt.Errorf("%s: %s: %w; use AddRelation", o.Description(), slot, ErrNotCollection)
	}

	if target == nil {
		if _, ok := o.rels[slot]; ok {
			delete(o.rels, slot)
			o.touch()
		}

		return nil
	}

	o.rels[slot] = []*Object{target}
	o.touch()

	return nil
}

// AddRelation appends a target to a collection slot.
func (o *Object) AddRelation(slot string, target *Object) error {
	if target == nil {
		return fmt.Errorf("%s: %s: nil target", o.Description(), slot)
	}

	spec, err := o.checkSlot(slot, target)
	if err != nil {
		return err
	}

	if !spec.Collection {
		return fmt.Errorf("%s: %s: %w", o.Description(), slot, ErrNotCollection)
	}

	o.rels[slot] = append(o.rels[slot], target)
	o.touch()

	return nil
}

// Relation returns the first target of a slot, or nil.
func (o *Object) Relation(slot string) *Object {
	if targets := o.rels[slot]; len(targets) > 0 {
		return targets[0]
	}

	return nil
}

// Relations returns every target of a slot in order.
func (o *Object) Relations(slot string) []*Object {
	return slices.Clone(o.rels[slot])
}

// Slots returns the filled relationship slots in declaration order.
func (o *Object) Slots() []string {
	var slots []string

	for _, spec := range o.info.Relations {
		if len(o.rels[spec.Slot]) > 0 {
			slots = append(slots, spec.Slot)
		}
	}

	return slots
}

// Targets returns every related object across all slots, in slot order.
func (o *Object) Targets() []*Object {
	var out []*Object
	for _, slot := range o.Slots() {
		out = append(out, o.rels[slot]...)
	}

	return out
}

// Merge copies every value set on other into o; values set on both take
// other's value. Types must match.
func (o *Object) Merge(other *Object) error {
	if other.Type() != o.Type() {
		return fmt.Errorf("%w: cannot merge %s into %s", ErrKindMismatch, other.Description(), o.Description())
	}

	if other.name != "" {
		o.SetName(other.name)
	}

	for _, name := range other.Attributes() {
		if err := o.Set(name, other.attrs[name]); err != nil {
			return err
		}
	}

	if len(other.groups) > 0 {
		o.groups = nil
		for _, g := range other.groups {
			o.groups = append(o.groups, slices.Clone(g))
		}

		o.touch()
	}

	for _, slot := range other.Slots() {
		for _, target := range other.rels[slot] {
			if o.model != nil && target.model != o.model {
				return fmt.Errorf("%s: %s: %w", o.Description(), slot, ErrForeignObject)
			}
		}

		o.rels[slot] = slices.Clone(other.rels[slot])
		o.touch()
	}

	return nil
}

func (o *Object) checkSlot(slot string, target *Object) (RelationSpec, error) {
	spec, ok := o.info.Relation(slot)
	if !ok {
		return spec, fmt.Errorf("%s: %w %q", o.Description(), ErrUnknownSlot, slot)
	}

	if target == nil {
		return spec, nil
	}

	if !spec.Accepts(target.Type()) {
		return spec, fmt.Errorf("%s: %s: %w: %v", o.Description(), slot, ErrTargetType, target.Type())
	}

	if o.model != nil && target.model != o.model {
		return spec, fmt.Errorf("%s: %s: %w", o.Description(), slot, ErrForeignObject)
	}

	return spec, nil
}

func (o *Object) touch() {
	o.version = uuid.New()
}

func checkValue(spec AttributeSpec, v Value) error {
	if v.Kind() != spec.Kind {
		return fmt.Errorf("%w: got %v, want %v", ErrKindMismatch, v.Kind(), spec.Kind)
	}

	if spec.Kind == KindDouble {
		f, _ := v.AsDouble()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v", ErrNotFinite, f)
		}
	}

	if spec.Kind == KindEnum && len(spec.Choices) > 0 {
		s, _ := v.AsString()
		if !slices.Contains(spec.Choices, s) {
			return fmt.Errorf("%w: %q", ErrInvalidChoice, s)
		}
	}

	return nil
}
