package translate

import (
	"fmt"

	"bem-translator/internal/model"
	"bem-translator/internal/schema"
	"bem-translator/internal/workspace"
)

// ForwardContext is handed to a ForwardHandler for the duration of one call.
type ForwardContext struct {
	f        *Forward
	obj      *model.Object
	reserved []reservation
}

type reservation struct {
	recordType string
	name       string
}

// Object returns the object being translated.
func (c *ForwardContext) Object() *model.Object { return c.obj }

// Catalog returns the schema catalog of the output Workspace.
func (c *ForwardContext) Catalog() *schema.Catalog { return c.f.cat }

// Workspace returns the output Workspace. Handlers must not add records to
// it; the Core inserts the returned record.
func (c *ForwardContext) Workspace() *workspace.Workspace { return c.f.ws }

// NewRecord creates a detached record of recordType.
func (c *ForwardContext) NewRecord(recordType string) (*workspace.Record, error) {
	return c.f.ws.NewRecord(recordType)
}

// AssignName gives rec the first free name derived from base and reserves it
// immediately, so nested translations cannot claim it. An empty base falls
// back to the record type name. The reservation is dropped when the handler
// fails.
func (c *ForwardContext) AssignName(rec *workspace.Record, base string) (string, error) {
	if base == "" {
		base = rec.Type()
	}

	name := c.f.ws.UniqueName(rec.Type(), base)
	if err := rec.SetName(name); err != nil {
		return "", err
	}

	c.f.ws.Reserve(rec.Type(), name)
	c.reserved = append(c.reserved, reservation{recordType: rec.Type(), name: name})

	return name, nil
}

// Translate requests the translation of a related object. It returns the
// cached record when obj was already translated in this run.
func (c *ForwardContext) Translate(obj *model.Object) (*workspace.Record, error) {
	return c.f.translate(obj)
}

// RequiredName translates obj and returns the name of its record. Any
// failure, including an unset or nameless target, wraps
// ErrUnresolvedReference; the handler should return it.
func (c *ForwardContext) RequiredName(obj *model.Object, field string) (string, error) {
	if obj == nil {
		return "", fmt.Errorf("%w: %s is not set", ErrUnresolvedReference, field)
	}

	rec, err := c.f.translate(obj)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnresolvedReference, field, err)
	}

	if rec == nil || rec.Name() == "" {
		return "", fmt.Errorf("%w: %s: %s produced no named record", ErrUnresolvedReference, field, obj.Description())
	}

	return rec.Name(), nil
}

// OptionalName is RequiredName for optional fields: an unset target yields
// "" silently, a failed one yields "" and a warning.
func (c *ForwardContext) OptionalName(obj *model.Object, field string) string {
	if obj == nil {
		return ""
	}

	name, err := c.RequiredName(obj, field)
	if err != nil {
		c.Warn(CodeUnresolvedOptional, err.Error(), field)
		return ""
	}

	return name
}

// Warn records a warning about the object being translated.
func (c *ForwardContext) Warn(code, message, field string) {
	c.f.diags.AddWarning(code, message, c.obj.Description(), field)
	c.f.logger.Warn(message, "type", c.obj.Type().String(), "name", c.obj.Name(), "code", code)
}

// Info records an informational diagnostic about the object being translated.
func (c *ForwardContext) Info(code, message, field string) {
	c.f.diags.AddInfo(code, message, c.obj.Description(), field)
	c.f.logger.Info(message, "type", c.obj.Type().String(), "name", c.obj.Name(), "code", code)
}

func (c *ForwardContext) releaseNames() {
	for _, r := range c.reserved {
		c.f.ws.Release(r.recordType, r.name)
	}

	c.reserved = nil
}
