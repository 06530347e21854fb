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

// recordKey identifies a source record: (type, folded name) for named
// records, (type, position) for unnamed ones.
type recordKey struct {
	typ   string
	name  string
	index int
}

func keyOfRecord(rec *workspace.Record) recordKey {
	if rec.Name() != "" {
		return recordKey{typ: common.FoldKey(rec.Type()), name: common.FoldKey(rec.Name()), index: -1}
	}

	return recordKey{typ: common.FoldKey(rec.Type()), index: rec.Index()}
}

// Reverse translates a Workspace into a Building Model. One Reverse is one
// translation run. A Reverse is not safe for concurrent use.
type Reverse struct {
	reg    *Registry
	cat    *schema.Catalog
	opts   Options
	logger *slog.Logger

	src   *workspace.Workspace
	m     *model.Model
	diags diagnostic.Diagnostics

	cache      map[recordKey]*model.Object
	inFlight   map[recordKey]bool
	singletons map[model.Type]*model.Object
	depth      int
}

// NewReverse returns a Reverse producing a fresh Model.
func NewReverse(reg *Registry, cat *schema.Catalog, opts ...Option) *Reverse {
	o := buildOptions(opts)

	return &Reverse{
		reg:        reg,
		cat:        cat,
		opts:       o,
		logger:     o.Logger,
		m:          model.New(),
		cache:      make(map[recordKey]*model.Object),
		inFlight:   make(map[recordKey]bool),
		singletons: make(map[model.Type]*model.Object),
	}
}

// Model returns the output Model.
func (r *Reverse) Model() *model.Model {
	return r.m
}

// Diagnostics returns the diagnostics recorded so far, in order.
func (r *Reverse) Diagnostics() *diagnostic.Diagnostics {
	return &r.diags
}

// TranslateWorkspace translates every root record of ws in order and returns
// the output Model.
func (r *Reverse) TranslateWorkspace(ctx context.Context, ws *workspace.Workspace) *model.Model {
	r.logger = loggerFrom(ctx, r.logger)
	r.src = ws

	records := ws.Records()
	r.logger.Debug("Translating workspace.", "records", len(records))

	for _, rec := range records {
		if !r.opts.isRecordRoot(rec.Type()) {
			continue
		}

		r.TranslateRecord(rec)
	}

	r.logger.Debug("Workspace translated.", "objects", r.m.Len(), "diagnostics", r.diags.Len())

	return r.m
}

// TranslateRecord translates rec, recording one diagnostic citing it on
// failure. References are resolved against the Workspace rec belongs to,
// which must be the one passed to TranslateWorkspace or SetSource.
func (r *Reverse) TranslateRecord(rec *workspace.Record) (*model.Object, bool) {
	obj, err := r.translate(rec)
	if err != nil {
		r.report(rec, err)
		return nil, false
	}

	return obj, true
}

// SetSource sets the Workspace references are resolved against when records
// are translated one by one.
func (r *Reverse) SetSource(ws *workspace.Workspace) {
	r.src = ws
}

func (r *Reverse) translate(rec *workspace.Record) (*model.Object, error) {
	key := keyOfRecord(rec)

	if obj, ok := r.cache[key]; ok {
		return obj, nil
	}

	if r.inFlight[key] {
		return nil, fmt.Errorf("%s: %w", rec.Description(), ErrCycle)
	}

	if r.depth >= r.opts.MaxDepth {
		return nil, fmt.Errorf("%s: %w (%d)", rec.Description(), ErrDepthExceeded, r.opts.MaxDepth)
	}

	handler, modelType, ok := r.reg.Reverse(rec.Type())
	if !ok {
		return nil, fmt.Errorf("%s: %w", rec.Description(), ErrNoHandler)
	}

	r.logger.Debug("Dispatching reverse handler.", "type", rec.Type(), "name", rec.Name())

	rc := &ReverseContext{r: r, rec: rec}

	r.inFlight[key] = true
	r.depth++
	obj, err := handler(rc, rec)
	r.depth--
	delete(r.inFlight, key)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", rec.Description(), err)
	}

	if obj == nil {
		r.cache[key] = nil
		r.logger.Debug("Record produces no object.", "type", rec.Type(), "name", rec.Name())

		return nil, nil
	}

	if obj.Type() != modelType {
		panic(fmt.Sprintf("reverse handler for '%s' returned a '%s' object, registered for '%s'",
			rec.Type(), obj.Type(), modelType))
	}

	if obj.Model() != nil {
		panic(fmt.Sprintf("reverse handler for '%s' returned an object it already added to a model", rec.Type()))
	}

	if r.cat.IsUniqueType(rec.Type()) || obj.Info().Unique {
		if existing := r.singletons[modelType]; existing != nil {
			if err := existing.Merge(obj); err != nil {
				return nil, fmt.Errorf("%s: %w", rec.Description(), err)
			}

			rc.Info(CodeUniqueFolded, fmt.Sprintf("folded into existing %s", existing.Description()), "")
			r.cache[key] = existing

			return existing, nil
		}
	}

	if err := r.m.Add(obj); err != nil {
		return nil, fmt.Errorf("%s: %w", rec.Description(), err)
	}

	if r.cat.IsUniqueType(rec.Type()) || obj.Info().Unique {
		r.singletons[modelType] = obj
	}

	r.cache[key] = obj

	return obj, nil
}

func (r *Reverse) report(rec *workspace.Record, err error) {
	code := codeFor(err)
	subject := rec.Description()

	if code == CodeUntranslated {
		r.diags.AddWarning(code, err.Error(), subject, "")
		r.logger.Info("Record not translated.", "type", rec.Type(), "name", rec.Name(), "code", code)

		return
	}

	r.diags.AddError(code, err.Error(), subject, "")
	r.logger.Warn("Record translation failed.", "type", rec.Type(), "name", rec.Name(), "code", code, "error", err)
}
