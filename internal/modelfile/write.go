package modelfile

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"bem-translator/internal/model"
)

// Write renders m as an HCL document, one object block per object in model
// order. The output parses back through Parse into an equivalent Model as
// long as every relationship target is named.
func Write(w io.Writer, m *model.Model) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i, obj := range m.Objects() {
		if i > 0 {
			body.AppendNewline()
		}

		block := body.AppendNewBlock("object", []string{obj.Type().String(), obj.Name()})
		if err := writeObject(block.Body(), obj); err != nil {
			return err
		}
	}

	if _, err := w.Write(hclwrite.Format(f.Bytes())); err != nil {
		return fmt.Errorf("failed to write model file: %w", err)
	}

	return nil
}

func writeObject(body *hclwrite.Body, obj *model.Object) error {
	for _, name := range obj.Attributes() {
		v, _ := obj.Get(name)
		body.SetAttributeValue(name, toCty(v))
	}

	for _, spec := range obj.Info().Relations {
		targets := obj.Relations(spec.Slot)
		if len(targets) == 0 {
			continue
		}

		names := make([]cty.Value, len(targets))
		for i, t := range targets {
			if t.Name() == "" {
				return fmt.Errorf("%s: %s: target %s has no name", obj.Description(), spec.Slot, t.Type())
			}

			names[i] = cty.StringVal(t.Name())
		}

		if spec.Collection {
			body.SetAttributeValue(spec.Slot, cty.ListVal(names))
		} else {
			body.SetAttributeValue(spec.Slot, names[0])
		}
	}

	if groups := obj.Groups(); len(groups) > 0 {
		rows := make([]cty.Value, len(groups))
		for i, g := range groups {
			values := make([]cty.Value, len(g))
			for j, v := range g {
				values[j] = toCty(v)
			}

			rows[i] = cty.TupleVal(values)
		}

		body.SetAttributeValue(groupsAttr, cty.TupleVal(rows))
	}

	return nil
}

func toCty(v model.Value) cty.Value {
	switch v.Kind() {
	case model.KindDouble:
		f, _ := v.AsDouble()
		return cty.NumberFloatVal(f)
	case model.KindBool:
		b, _ := v.AsBool()
		return cty.BoolVal(b)
	default:
		s, _ := v.AsString()
		return cty.StringVal(s)
	}
}
