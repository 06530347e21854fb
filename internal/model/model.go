package model

import (
	"fmt"
	"slices"
)

// Model is the exclusive owner of a graph of objects.
type Model struct {
	objects  []*Object
	byHandle map[Handle]*Object
	uniques  map[Type]*Object
}

// New returns an empty model.
func New() *Model {
	return &Model{
		byHandle: make(map[Handle]*Object),
		uniques:  make(map[Type]*Object),
	}
}

// NewObject creates an object and adds it to the model.
func (m *Model) NewObject(t Type, name string) (*Object, error) {
	obj, err := NewObject(t, name)
	if err != nil {
		return nil, err
	}

	if err := m.Add(obj); err != nil {
		return nil, err
	}

	return obj, nil
}

// MustNewObject is NewObject for statically known types; it panics on error.
func (m *Model) MustNewObject(t Type, name string) *Object {
	obj, err := m.NewObject(t, name)
	if err != nil {
		panic(err)
	}

	return obj
}

// Add adopts a detached object. Every related object must already belong to m.
func (m *Model) Add(obj *Object) error {
	if obj.model != nil {
		return fmt.Errorf("%s: %w", obj.Description(), ErrAlreadyOwned)
	}

	if obj.info.Unique {
		if existing := m.uniques[obj.Type()]; existing != nil {
			return fmt.Errorf("%s: %w", obj.Description(), ErrUniqueExists)
		}
	}

	for _, target := range obj.Targets() {
		if target.model != m {
			return fmt.Errorf("%s: related %s: %w", obj.Description(), target.Description(), ErrForeignObject)
		}
	}

	obj.model = m
	m.objects = append(m.objects, obj)
	m.byHandle[obj.handle] = obj

	if obj.info.Unique {
		m.uniques[obj.Type()] = obj
	}

	return nil
}

// Remove detaches the object with handle h and clears every relationship
// pointing at it. It reports whether the object was present.
func (m *Model) Remove(h Handle) bool {
	obj, ok := m.byHandle[h]
	if !ok {
		return false
	}

	delete(m.byHandle, h)
	m.objects = slices.DeleteFunc(m.objects, func(o *Object) bool { return o == obj })

	if m.uniques[obj.Type()] == obj {
		delete(m.uniques, obj.Type())
	}

	for _, o := range m.objects {
		for slot, targets := range o.rels {
			kept := slices.DeleteFunc(slices.Clone(targets), func(t *Object) bool { return t == obj })
			if len(kept) == len(targets) {
				continue
			}

			if len(kept) == 0 {
				delete(o.rels, slot)
			} else {
				o.rels[slot] = kept
			}

			o.touch()
		}
	}

	obj.model = nil

	return true
}

// Object returns the object with handle h.
func (m *Model) Object(h Handle) (*Object, bool) {
	obj, ok := m.byHandle[h]
	return obj, ok
}

// Objects returns all objects in insertion order.
func (m *Model) Objects() []*Object {
	return slices.Clone(m.objects)
}

// ObjectsOfType returns the objects of type t in insertion order.
func (m *Model) ObjectsOfType(t Type) []*Object {
	var out []*Object

	for _, o := range m.objects {
		if o.Type() == t {
			out = append(out, o)
		}
	}

	return out
}

// Unique returns the singleton instance of a unique type, or nil.
func (m *Model) Unique(t Type) *Object {
	return m.uniques[t]
}

// Len returns the number of objects.
func (m *Model) Len() int {
	return len(m.objects)
}
