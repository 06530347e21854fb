package translate

import (
	"fmt"

	"bem-translator/internal/model"
	"bem-translator/internal/schema"
	"bem-translator/internal/workspace"
)

// ReverseContext is handed to a ReverseHandler for the duration of one call.
type ReverseContext struct {
	r   *Reverse
	rec *workspace.Record
}

// Record returns the record being translated.
func (c *ReverseContext) Record() *workspace.Record { return c.rec }

// Catalog returns the schema catalog of the source Workspace.
func (c *ReverseContext) Catalog() *schema.Catalog { return c.r.cat }

// Source returns the Workspace being translated.
func (c *ReverseContext) Source() *workspace.Workspace { return c.r.src }

// NewObject creates a detached object. The Core adds the returned object to
// the output Model.
func (c *ReverseContext) NewObject(t model.Type, name string) (*model.Object, error) {
	return model.NewObject(t, name)
}

// Translate requests the translation of a related record.
func (c *ReverseContext) Translate(rec *workspace.Record) (*model.Object, error) {
	return c.r.translate(rec)
}

// Resolve translates the record named by the reference field of the current
// record. An unset field yields (nil, nil).
func (c *ReverseContext) Resolve(field string) (*model.Object, error) {
	idx, ok := c.rec.Schema().FieldIndex(field)
	if !ok {
		return nil, fmt.Errorf("%w %q", workspace.ErrUnknownField, field)
	}

	f := c.rec.Schema().Fields[idx]

	name := c.rec.String(idx)
	if name == "" {
		return nil, nil
	}

	return c.ResolveName(f, name)
}

// ResolveName translates the record called name among the target types of
// reference field f. It is used for references inside extensible groups.
func (c *ReverseContext) ResolveName(f schema.Field, name string) (*model.Object, error) {
	if c.r.src == nil {
		return nil, fmt.Errorf("%w: %s: no source workspace", ErrUnresolvedReference, f.Name)
	}

	target, ok := c.r.src.LookupAny(name, f.Refs...)
	if !ok {
		return nil, fmt.Errorf("%w: %s: no %v named %q", ErrUnresolvedReference, f.Name, f.Refs, name)
	}

	obj, err := c.r.translate(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnresolvedReference, f.Name, err)
	}

	if obj == nil {
		return nil, fmt.Errorf("%w: %s: %s produced no object", ErrUnresolvedReference, f.Name, target.Description())
	}

	return obj, nil
}

// RequiredObject resolves a required reference field; an unset field is an
// error wrapping ErrUnresolvedReference.
func (c *ReverseContext) RequiredObject(field string) (*model.Object, error) {
	obj, err := c.Resolve(field)
	if err != nil {
		return nil, err
	}

	if obj == nil {
		return nil, fmt.Errorf("%w: %s is not set", ErrUnresolvedReference, field)
	}

	return obj, nil
}

// OptionalObject resolves an optional reference field. Failures are
// recorded as warnings and yield nil.
func (c *ReverseContext) OptionalObject(field string) *model.Object {
	obj, err := c.Resolve(field)
	if err != nil {
		c.Warn(CodeUnresolvedOptional, err.Error(), field)
		return nil
	}

	return obj
}

// Warn records a warning about the record being translated.
func (c *ReverseContext) Warn(code, message, field string) {
	c.r.diags.AddWarning(code, message, c.rec.Description(), field)
	c.r.logger.Warn(message, "type", c.rec.Type(), "name", c.rec.Name(), "code", code)
}

// Info records an informational diagnostic about the record being translated.
func (c *ReverseContext) Info(code, message, field string) {
	c.r.diags.AddInfo(code, message, c.rec.Description(), field)
	c.r.logger.Info(message, "type", c.rec.Type(), "name", c.rec.Name(), "code", code)
}
