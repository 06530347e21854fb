package translate

import (
	"slices"

	"bem-translator/internal/model"
	"bem-translator/internal/workspace"
)

// counter records how often each wrapped handler ran.
type counter map[string]int

func (c counter) forward(key string, h ForwardHandler) ForwardHandler {
	return func(ctx *ForwardContext, obj *model.Object) (*workspace.Record, error) {
		c[key]++
		return h(ctx, obj)
	}
}

func (c counter) reverse(key string, h ReverseHandler) ReverseHandler {
	return func(ctx *ReverseContext, rec *workspace.Record) (*model.Object, error) {
		c[key]++
		return h(ctx, rec)
	}
}

func curveForward(ctx *ForwardContext, obj *model.Object) (*workspace.Record, error) {
	rec, err := ctx.NewRecord("Curve:Cubic")
	if err != nil {
		return nil, err
	}

	if _, err := ctx.AssignName(rec, obj.Name()); err != nil {
		return nil, err
	}

	for i, attr := range obj.Info().AttributeNames()[:8] {
		if v, ok := obj.Double(attr); ok {
			if err := rec.SetDouble(i, v); err != nil {
				return nil, err
			}
		}
	}

	return rec, nil
}

func limitsForward(ctx *ForwardContext, obj *model.Object) (*workspace.Record, error) {
	rec, err := ctx.NewRecord("ScheduleTypeLimits")
	if err != nil {
		return nil, err
	}

	if _, err := ctx.AssignName(rec, obj.Name()); err != nil {
		return nil, err
	}

	for i, attr := range []string{"lower_limit_value", "upper_limit_value"} {
		if v, ok := obj.Double(attr); ok {
			_ = rec.SetDouble(i, v)
		}
	}

	return rec, nil
}

func scheduleForward(ctx *ForwardContext, obj *model.Object) (*workspace.Record, error) {
	rec, err := ctx.NewRecord("Schedule:Constant")
	if err != nil {
		return nil, err
	}

	if _, err := ctx.AssignName(rec, obj.Name()); err != nil {
		return nil, err
	}

	if err := rec.SetString(0, ctx.OptionalName(obj.Relation("schedule_type_limits"), "Schedule Type Limits Name")); err != nil {
		return nil, err
	}

	if v, ok := obj.Double("value"); ok {
		_ = rec.SetDouble(1, v)
	}

	return rec, nil
}

func coilForward(ctx *ForwardContext, obj *model.Object) (*workspace.Record, error) {
	rec, err := ctx.NewRecord("Coil:Heating:Electric")
	if err != nil {
		return nil, err
	}

	if _, err := ctx.AssignName(rec, obj.Name()); err != nil {
		return nil, err
	}

	sched, err := ctx.RequiredName(obj.Relation("availability_schedule"), "Availability Schedule Name")
	if err != nil {
		return nil, err
	}

	if err := rec.SetString(0, sched); err != nil {
		return nil, err
	}

	if v, ok := obj.Double("efficiency"); ok {
		_ = rec.SetDouble(1, v)
	}

	return rec, nil
}

func zoneForward(ctx *ForwardContext, obj *model.Object) (*workspace.Record, error) {
	rec, err := ctx.NewRecord("Zone")
	if err != nil {
		return nil, err
	}

	// Sets the name directly, so colliding names surface as duplicates.
	if err := rec.SetName(obj.Name()); err != nil {
		return nil, err
	}

	return rec, nil
}

func nullForward(*ForwardContext, *model.Object) (*workspace.Record, error) {
	return nil, nil
}

func scheduleReverse(ctx *ReverseContext, rec *workspace.Record) (*model.Object, error) {
	obj, err := ctx.NewObject(model.TypeScheduleConstant, rec.Name())
	if err != nil {
		return nil, err
	}

	if v, ok := rec.Double(1); ok {
		if err := obj.Set("value", model.Double(v)); err != nil {
			return nil, err
		}
	}

	if limits := ctx.OptionalObject("Schedule Type Limits Name"); limits != nil {
		if err := obj.SetRelation("schedule_type_limits", limits); err != nil {
			return nil, err
		}
	}

	return obj, nil
}

func limitsReverse(ctx *ReverseContext, rec *workspace.Record) (*model.Object, error) {
	obj, err := ctx.NewObject(model.TypeScheduleTypeLimits, rec.Name())
	if err != nil {
		return nil, err
	}

	if v, ok := rec.Double(0); ok {
		_ = obj.Set("lower_limit_value", model.Double(v))
	}

	return obj, nil
}

func coilReverse(ctx *ReverseContext, rec *workspace.Record) (*model.Object, error) {
	sched, err := ctx.RequiredObject("Availability Schedule Name")
	if err != nil {
		return nil, err
	}

	obj, err := ctx.NewObject(model.TypeCoilHeatingElectric, rec.Name())
	if err != nil {
		return nil, err
	}

	if err := obj.SetRelation("availability_schedule", sched); err != nil {
		return nil, err
	}

	return obj, nil
}

func buildingReverse(ctx *ReverseContext, rec *workspace.Record) (*model.Object, error) {
	obj, err := ctx.NewObject(model.TypeBuilding, rec.Name())
	if err != nil {
		return nil, err
	}

	if v, ok := rec.Double(0); ok {
		_ = obj.Set("north_axis", model.Double(v))
	}

	if s := rec.String(1); s != "" {
		_ = obj.Set("terrain", model.Enum(s))
	}

	return obj, nil
}

func rulesReverse(ctx *ReverseContext, rec *workspace.Record) (*model.Object, error) {
	obj, err := ctx.NewObject(model.TypeGlobalGeometryRules, "")
	if err != nil {
		return nil, err
	}

	if s := rec.String(0); s != "" {
		if err := obj.Set("starting_vertex_position", model.Enum(s)); err != nil {
			return nil, err
		}
	}

	return obj, nil
}

type testModule struct {
	calls counter
	// skip lists model types left without a forward handler.
	skip []model.Type
}

func (m testModule) Register(r *Registry) {
	forward := map[model.Type]struct {
		record string
		h      ForwardHandler
	}{
		model.TypeCurveCubic:          {"Curve:Cubic", curveForward},
		model.TypeScheduleTypeLimits:  {"ScheduleTypeLimits", limitsForward},
		model.TypeScheduleConstant:    {"Schedule:Constant", scheduleForward},
		model.TypeCoilHeatingElectric: {"Coil:Heating:Electric", coilForward},
		model.TypeThermalZone:         {"Zone", zoneForward},
		model.TypeNull:                {"", nullForward},
	}

	for _, t := range model.Types() {
		e, ok := forward[t]
		if !ok || slices.Contains(m.skip, t) {
			continue
		}

		r.RegisterForward(t, e.record, m.calls.forward(t.String(), e.h))
	}

	r.RegisterReverse("Schedule:Constant", model.TypeScheduleConstant, m.calls.reverse("Schedule:Constant", scheduleReverse))
	r.RegisterReverse("ScheduleTypeLimits", model.TypeScheduleTypeLimits, m.calls.reverse("ScheduleTypeLimits", limitsReverse))
	r.RegisterReverse("Coil:Heating:Electric", model.TypeCoilHeatingElectric, m.calls.reverse("Coil:Heating:Electric", coilReverse))
	r.RegisterReverse("Building", model.TypeBuilding, m.calls.reverse("Building", buildingReverse))
	r.RegisterReverse("GlobalGeometryRules", model.TypeGlobalGeometryRules, m.calls.reverse("GlobalGeometryRules", rulesReverse))
}

func newTestRegistry(skip ...model.Type) (*Registry, counter) {
	calls := counter{}
	return NewRegistry(testModule{calls: calls, skip: skip}), calls
}
