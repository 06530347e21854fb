package translate

import (
	"context"
	"fmt"

	"bem-translator/internal/diagnostic"
	"bem-translator/internal/model"
	"bem-translator/internal/schema"
	"bem-translator/internal/workspace"
)

// Result is the outcome of a whole-graph run: the possibly partial output and
// the ordered diagnostics.
type Result[T any] struct {
	Output      T
	Diagnostics diagnostic.Diagnostics
}

// ObjectResult is the outcome of translating one model object.
type ObjectResult struct {
	// Workspace holds the record of the object and of its dependencies.
	Workspace *workspace.Workspace
	// Record is nil when the object failed or emits nothing.
	Record      *workspace.Record
	Diagnostics diagnostic.Diagnostics
}

// RecordResult is the outcome of translating one workspace record.
type RecordResult struct {
	Model *model.Model
	// Object is nil when the record failed or produces nothing.
	Object      *model.Object
	Diagnostics diagnostic.Diagnostics
}

// TranslateModel translates m into a new Workspace.
func TranslateModel(ctx context.Context, reg *Registry, cat *schema.Catalog, m *model.Model, opts ...Option) Result[*workspace.Workspace] {
	f := NewForward(reg, cat, opts...)
	ws := f.TranslateModel(ctx, m)

	return Result[*workspace.Workspace]{Output: ws, Diagnostics: f.diags}
}

// TranslateModelObject clones the dependency closure of obj into a scratch
// model and translates the clone of obj, so a single object translates the
// same way it would inside a blank model. The error is non-nil only when the
// closure cannot be extracted.
func TranslateModelObject(ctx context.Context, reg *Registry, cat *schema.Catalog, obj *model.Object, opts ...Option) (ObjectResult, error) {
	_, root, err := model.Extract(obj)
	if err != nil {
		return ObjectResult{}, fmt.Errorf("translate %s: %w", obj.Description(), err)
	}

	f := NewForward(reg, cat, opts...)
	f.logger = loggerFrom(ctx, f.logger)

	rec, _ := f.TranslateObject(root)

	return ObjectResult{Workspace: f.ws, Record: rec, Diagnostics: f.diags}, nil
}

// TranslateWorkspace translates ws into a new Model.
func TranslateWorkspace(ctx context.Context, reg *Registry, cat *schema.Catalog, ws *workspace.Workspace, opts ...Option) Result[*model.Model] {
	r := NewReverse(reg, cat, opts...)
	m := r.TranslateWorkspace(ctx, ws)

	return Result[*model.Model]{Output: m, Diagnostics: r.diags}
}

// TranslateWorkspaceObject copies the reference closure of rec into a scratch
// workspace and translates the copy of rec.
func TranslateWorkspaceObject(ctx context.Context, reg *Registry, cat *schema.Catalog, ws *workspace.Workspace, rec *workspace.Record, opts ...Option) (RecordResult, error) {
	scratch, root, err := ws.Extract(rec)
	if err != nil {
		return RecordResult{}, fmt.Errorf("translate %s: %w", rec.Description(), err)
	}

	r := NewReverse(reg, cat, opts...)
	r.logger = loggerFrom(ctx, r.logger)
	r.SetSource(scratch)

	obj, _ := r.TranslateRecord(root)

	return RecordResult{Model: r.m, Object: obj, Diagnostics: r.diags}, nil
}
