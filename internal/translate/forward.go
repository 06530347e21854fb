package translate

import (
	"context"
	"fmt"
	"log/slog"

	"bem-translator/internal/common"
	"bem-translator/internal/diagnostic"
	"bem-translator/internal/model"
	"bem-translator/internal/schema"
	"bem-translator/internal/workspace"
)

// Forward translates a Building Model into a Workspace. One Forward is one
// translation run: its cache and output live as long as the Forward does.
// A Forward is not safe for concurrent use.
type Forward struct {
	reg    *Registry
	cat    *schema.Catalog
	opts   Options
	logger *slog.Logger

	ws    *workspace.Workspace
	diags diagnostic.Diagnostics

	// cache holds successful translations only; a nil record means the
	// handler emitted nothing.
	cache    map[model.Handle]*workspace.Record
	inFlight map[model.Handle]bool
	depth    int
}

// NewForward returns a Forward writing into a fresh Workspace over cat.
func NewForward(reg *Registry, cat *schema.Catalog, opts ...Option) *Forward {
	o := buildOptions(opts)

	return &Forward{
		reg:      reg,
		cat:      cat,
		opts:     o,
		logger:   o.Logger,
		ws:       workspace.New(cat),
		cache:    make(map[model.Handle]*workspace.Record),
		inFlight: make(map[model.Handle]bool),
	}
}

// Workspace returns the output Workspace.
func (f *Forward) Workspace() *workspace.Workspace {
	return f.ws
}

// Diagnostics returns the diagnostics recorded so far, in order.
func (f *Forward) Diagnostics() *diagnostic.Diagnostics {
	return &f.diags
}

// TranslateModel translates every root object of m in insertion order and
// returns the output Workspace. Failed objects are skipped and reported.
func (f *Forward) TranslateModel(ctx context.Context, m *model.Model) *workspace.Workspace {
	f.logger = loggerFrom(ctx, f.logger)

	objects := m.Objects()
	f.logger.Debug("Translating model.", "objects", len(objects))

	for _, obj := range objects {
		if !f.opts.isRoot(obj.Type()) {
			continue
		}

		f.TranslateObject(obj)
	}

	f.logger.Debug("Model translated.", "records", f.ws.Len(), "diagnostics", f.diags.Len())

	return f.ws
}

// TranslateObject translates obj and, on failure, records one diagnostic
// citing it. ok is false only on failure; a handler that emits nothing
// yields (nil, true).
func (f *Forward) TranslateObject(obj *model.Object) (*workspace.Record, bool) {
	rec, err := f.translate(obj)
	if err != nil {
		f.report(obj, err)
		return nil, false
	}

	return rec, true
}

func (f *Forward) translate(obj *model.Object) (*workspace.Record, error) {
	h := obj.Handle()

	if rec, ok := f.cache[h]; ok {
		return rec, nil
	}

	if f.inFlight[h] {
		return nil, fmt.Errorf("%s: %w", obj.Description(), ErrCycle)
	}

	if f.depth >= f.opts.MaxDepth {
		return nil, fmt.Errorf("%s: %w (%d)", obj.Description(), ErrDepthExceeded, f.opts.MaxDepth)
	}

	handler, recordType, ok := f.reg.Forward(obj.Type())
	if !ok {
		return nil, fmt.Errorf("%s: %w", obj.Description(), ErrNoHandler)
	}

	f.logger.Debug("Dispatching forward handler.", "type", obj.Type().String(), "name", obj.Name(), "handle", h.String())

	fc := &ForwardContext{f: f, obj: obj}

	f.inFlight[h] = true
	f.depth++
	rec, err := handler(fc, obj)
	f.depth--
	delete(f.inFlight, h)

	if err != nil {
		fc.releaseNames()
		return nil, fmt.Errorf("%s: %w", obj.Description(), err)
	}

	if rec == nil {
		fc.releaseNames()
		f.cache[h] = nil
		f.logger.Debug("Object emits no record.", "type", obj.Type().String(), "name", obj.Name())

		return nil, nil
	}

	if recordType == "" || common.FoldKey(rec.Type()) != common.FoldKey(recordType) {
		panic(fmt.Sprintf("forward handler for '%s' returned a '%s' record, registered for '%s'",
			obj.Type(), rec.Type(), recordType))
	}

	if err := f.ws.Add(rec); err != nil {
		fc.releaseNames()
		return nil, fmt.Errorf("%s: %w", obj.Description(), err)
	}

	fc.releaseNames()
	f.cache[h] = rec

	return rec, nil
}

func (f *Forward) report(obj *model.Object, err error) {
	code := codeFor(err)
	subject := obj.Description()

	if code == CodeUntranslated {
		f.diags.AddWarning(code, err.Error(), subject, "")
		f.logger.Info("Object not translated.", "type", obj.Type().String(), "name", obj.Name(), "code", code)

		return
	}

	f.diags.AddError(code, err.Error(), subject, "")
	f.logger.Warn("Object translation failed.", "type", obj.Type().String(), "name", obj.Name(), "code", code, "error", err)
}
