package handlers

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"bem-translator/internal/model"
	"bem-translator/internal/schema"
	"bem-translator/internal/translate"
	"bem-translator/internal/workspace"
)

// CodeInvalidValue flags a record field that could not be read back into a
// model attribute during reverse translation.
const CodeInvalidValue = "invalid_value"

var errMissingRequired = errors.New("missing required value")

// fieldMap pairs a model attribute with a record field.
type fieldMap struct {
	attr  string
	field string
}

// refMap pairs a model relationship slot with a reference field.
type refMap struct {
	slot  string
	field string
}

// recordMap describes a type whose handlers copy attributes and references
// field by field.
type recordMap struct {
	modelType  model.Type
	recordType string
	fields     []fieldMap
	refs       []refMap
}

func (rm recordMap) forward(ctx *translate.ForwardContext, obj *model.Object) (*workspace.Record, error) {
	rec, err := ctx.NewRecord(rm.recordType)
	if err != nil {
		return nil, err
	}

	if rec.Schema().Named {
		if _, err := ctx.AssignName(rec, obj.Name()); err != nil {
			return nil, err
		}
	}

	if err := writeFields(rec, obj, rm.fields); err != nil {
		return nil, err
	}

	if err := writeRefs(ctx, rec, obj, rm.refs); err != nil {
		return nil, err
	}

	return rec, nil
}

func (rm recordMap) reverse(ctx *translate.ReverseContext, rec *workspace.Record) (*model.Object, error) {
	obj, err := ctx.NewObject(rm.modelType, rec.Name())
	if err != nil {
		return nil, err
	}

	if err := readFields(ctx, obj, rec, rm.fields); err != nil {
		return nil, err
	}

	if err := readRefs(ctx, obj, rm.refs); err != nil {
		return nil, err
	}

	return obj, nil
}

func writeFields(rec *workspace.Record, obj *model.Object, fields []fieldMap) error {
	for _, fm := range fields {
		idx, ok := rec.Schema().FieldIndex(fm.field)
		if !ok {
			return fmt.Errorf("%w %q", workspace.ErrUnknownField, fm.field)
		}

		v, set := obj.Get(fm.attr)
		if !set {
			if spec, _ := obj.Info().Attribute(fm.attr); spec.Required {
				return fmt.Errorf("%s: %w", fm.attr, errMissingRequired)
			}

			continue
		}

		if err := rec.SetString(idx, formatValue(v, rec.Schema().Fields[idx])); err != nil {
			return err
		}
	}

	return nil
}

func formatValue(v model.Value, f schema.Field) string {
	if d, ok := v.AsDouble(); ok && f.Kind == schema.KindInteger {
		return strconv.Itoa(int(math.Round(d)))
	}

	return v.Text()
}

func writeRefs(ctx *translate.ForwardContext, rec *workspace.Record, obj *model.Object, refs []refMap) error {
	for _, ref := range refs {
		spec, ok := obj.Info().Relation(ref.slot)
		if !ok {
			return fmt.Errorf("%w %q", model.ErrUnknownSlot, ref.slot)
		}

		target := obj.Relation(ref.slot)

		var name string

		if spec.Required {
			n, err := ctx.RequiredName(target, ref.field)
			if err != nil {
				return err
			}

			name = n
		} else {
			name = ctx.OptionalName(target, ref.field)
		}

		if err := rec.SetByName(ref.field, name); err != nil {
			return err
		}
	}

	return nil
}

func readFields(ctx *translate.ReverseContext, obj *model.Object, rec *workspace.Record, fields []fieldMap) error {
	for _, fm := range fields {
		spec, ok := obj.Info().Attribute(fm.attr)
		if !ok {
			return fmt.Errorf("%w %q", model.ErrUnknownAttribute, fm.attr)
		}

		idx, ok := rec.Schema().FieldIndex(fm.field)
		if !ok {
			return fmt.Errorf("%w %q", workspace.ErrUnknownField, fm.field)
		}

		field := rec.Schema().Fields[idx]

		text := rec.String(idx)
		if text == "" && spec.Required {
			text = field.Default
		}

		if text == "" {
			if spec.Required {
				return fmt.Errorf("%s: %w", field.Name, errMissingRequired)
			}

			continue
		}

		v, err := parseValue(spec, text)
		if err == nil {
			err = obj.Set(fm.attr, v)
		}

		if err != nil {
			if spec.Required {
				return fmt.Errorf("%s: %w", field.Name, err)
			}

			ctx.Warn(CodeInvalidValue, err.Error(), field.Name)
		}
	}

	return nil
}

func parseValue(spec model.AttributeSpec, text string) (model.Value, error) {
	switch spec.Kind {
	case model.KindDouble:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return model.Value{}, fmt.Errorf("%q is not a finite number", text)
		}

		return model.Double(f), nil
	case model.KindBool:
		switch text {
		case "Yes", "yes", "YES", "True", "true":
			return model.Bool(true), nil
		case "No", "no", "NO", "False", "false":
			return model.Bool(false), nil
		default:
			return model.Value{}, fmt.Errorf("%q is not Yes or No", text)
		}
	case model.KindEnum:
		return model.Enum(text), nil
	default:
		return model.String(text), nil
	}
}

func readRefs(ctx *translate.ReverseContext, obj *model.Object, refs []refMap) error {
	for _, ref := range refs {
		spec, ok := obj.Info().Relation(ref.slot)
		if !ok {
			return fmt.Errorf("%w %q", model.ErrUnknownSlot, ref.slot)
		}

		var target *model.Object

		if spec.Required {
			t, err := ctx.RequiredObject(ref.field)
			if err != nil {
				return err
			}

			target = t
		} else {
			target = ctx.OptionalObject(ref.field)
		}

		if target == nil {
			continue
		}

		if err := obj.SetRelation(ref.slot, target); err != nil {
			return err
		}
	}

	return nil
}
