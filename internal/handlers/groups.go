package handlers

import (
	"fmt"

	"bem-translator/internal/model"
	"bem-translator/internal/translate"
	"bem-translator/internal/workspace"
)

const layerField = "Layer"

func constructionForward(ctx *translate.ForwardContext, obj *model.Object) (*workspace.Record, error) {
	layers := obj.Relations("layers")
	if len(layers) == 0 {
		return nil, fmt.Errorf("layers: %w", errMissingRequired)
	}

	rec, err := ctx.NewRecord("Construction")
	if err != nil {
		return nil, err
	}

	if _, err := ctx.AssignName(rec, obj.Name()); err != nil {
		return nil, err
	}

	for _, layer := range layers {
		name, err := ctx.RequiredName(layer, layerField)
		if err != nil {
			return nil, err
		}

		if err := rec.PushGroup(name); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

func constructionReverse(ctx *translate.ReverseContext, rec *workspace.Record) (*model.Object, error) {
	groups := rec.Groups()
	if len(groups) < rec.Schema().MinGroups {
		return nil, fmt.Errorf("%s: %w", layerField, errMissingRequired)
	}

	obj, err := ctx.NewObject(model.TypeConstruction, rec.Name())
	if err != nil {
		return nil, err
	}

	field := rec.Schema().Extensible[0]

	for _, g := range groups {
		if g[0] == "" {
			continue
		}

		layer, err := ctx.ResolveName(field, g[0])
		if err != nil {
			return nil, err
		}

		if err := obj.AddRelation("layers", layer); err != nil {
			return nil, err
		}
	}

	return obj, nil
}

var compactRefs = []refMap{{"schedule_type_limits", "Schedule Type Limits Name"}}

func compactForward(ctx *translate.ForwardContext, obj *model.Object) (*workspace.Record, error) {
	groups := obj.Groups()
	if len(groups) == 0 {
		return nil, fmt.Errorf("fields: %w", errMissingRequired)
	}

	rec, err := ctx.NewRecord("Schedule:Compact")
	if err != nil {
		return nil, err
	}

	if _, err := ctx.AssignName(rec, obj.Name()); err != nil {
		return nil, err
	}

	if err := writeRefs(ctx, rec, obj, compactRefs); err != nil {
		return nil, err
	}

	for _, g := range groups {
		if err := rec.PushGroup(g[0].Text()); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

func compactReverse(ctx *translate.ReverseContext, rec *workspace.Record) (*model.Object, error) {
	groups := rec.Groups()
	if len(groups) < rec.Schema().MinGroups {
		return nil, fmt.Errorf("%s: %w", rec.Schema().Extensible[0].Name, errMissingRequired)
	}

	obj, err := ctx.NewObject(model.TypeScheduleCompact, rec.Name())
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		if err := obj.PushGroup(model.String(g[0])); err != nil {
			return nil, err
		}
	}

	if err := readRefs(ctx, obj, compactRefs); err != nil {
		return nil, err
	}

	return obj, nil
}

func nullForward(*translate.ForwardContext, *model.Object) (*workspace.Record, error) {
	return nil, nil
}
