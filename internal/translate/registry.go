package translate

import (
	"fmt"
	"slices"
	"sort"

	"bem-translator/internal/common"
	"bem-translator/internal/diagnostic"
	"bem-translator/internal/model"
	"bem-translator/internal/schema"
	"bem-translator/internal/workspace"
)

// ForwardHandler maps one model object to at most one record. Returning
// (nil, nil) means the object deliberately emits nothing.
type ForwardHandler func(ctx *ForwardContext, obj *model.Object) (*workspace.Record, error)

// ReverseHandler maps one record to at most one detached model object.
// Returning (nil, nil) means the record deliberately produces nothing.
type ReverseHandler func(ctx *ReverseContext, rec *workspace.Record) (*model.Object, error)

// Module is implemented by handler packages.
type Module interface {
	Register(r *Registry)
}

type forwardEntry struct {
	recordType string
	handler    ForwardHandler
}

type reverseEntry struct {
	recordType string
	modelType  model.Type
	handler    ReverseHandler
}

// Registry is the dispatch table of both directions. It is filled once at
// startup and read-only afterwards.
type Registry struct {
	forward map[model.Type]forwardEntry
	reverse map[string]reverseEntry
}

// NewRegistry returns a registry holding the handlers of every module.
func NewRegistry(modules ...Module) *Registry {
	r := &Registry{
		forward: make(map[model.Type]forwardEntry),
		reverse: make(map[string]reverseEntry),
	}

	for _, m := range modules {
		m.Register(r)
	}

	return r
}

// RegisterForward registers the handler translating objects of type t into
// records of recordType. An empty recordType declares a handler that never
// emits a record.
func (r *Registry) RegisterForward(t model.Type, recordType string, h ForwardHandler) {
	if _, exists := r.forward[t]; exists {
		panic(fmt.Sprintf("forward handler for '%s' already registered", t))
	}

	r.forward[t] = forwardEntry{recordType: recordType, handler: h}
}

// RegisterReverse registers the handler translating records of recordType
// into objects of type t.
func (r *Registry) RegisterReverse(recordType string, t model.Type, h ReverseHandler) {
	key := common.FoldKey(recordType)
	if _, exists := r.reverse[key]; exists {
		panic(fmt.Sprintf("reverse handler for '%s' already registered", recordType))
	}

	r.reverse[key] = reverseEntry{recordType: recordType, modelType: t, handler: h}
}

// Forward returns the handler of model type t and the record type it emits.
func (r *Registry) Forward(t model.Type) (ForwardHandler, string, bool) {
	e, ok := r.forward[t]
	return e.handler, e.recordType, ok
}

// Reverse returns the handler of recordType and the model type it produces.
func (r *Registry) Reverse(recordType string) (ReverseHandler, model.Type, bool) {
	e, ok := r.reverse[common.FoldKey(recordType)]
	return e.handler, e.modelType, ok
}

// ForwardTypes returns the model types with a forward handler, in type order.
func (r *Registry) ForwardTypes() []model.Type {
	out := make([]model.Type, 0, len(r.forward))
	for t := range r.forward {
		out = append(out, t)
	}

	slices.Sort(out)

	return out
}

// ReverseTypes returns the record types with a reverse handler, sorted.
func (r *Registry) ReverseTypes() []string {
	out := make([]string, 0, len(r.reverse))
	for _, e := range r.reverse {
		out = append(out, e.recordType)
	}

	sort.Strings(out)

	return out
}

// Validate checks that every record type named by a handler exists in cat.
func (r *Registry) Validate(cat *schema.Catalog) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	for _, t := range r.ForwardTypes() {
		rt := r.forward[t].recordType
		if rt == "" {
			continue
		}

		if _, ok := cat.Type(rt); !ok {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityError,
				Code:        "unknown_record_type",
				Message:     fmt.Sprintf("forward handler emits unknown record type %q", rt),
				Subject:     t.String(),
				Suggestions: cat.Suggest(rt, 3),
			})
		}
	}

	for _, rt := range r.ReverseTypes() {
		if _, ok := cat.Type(rt); !ok {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityError,
				Code:        "unknown_record_type",
				Message:     fmt.Sprintf("reverse handler reads unknown record type %q", rt),
				Subject:     rt,
				Suggestions: cat.Suggest(rt, 3),
			})
		}
	}

	return diags
}
