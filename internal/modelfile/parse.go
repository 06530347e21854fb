package modelfile

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"bem-translator/internal/common"
	"bem-translator/internal/match"
	"bem-translator/internal/model"
)

// groupsAttr is the reserved attribute carrying extensible groups.
const groupsAttr = "groups"

type hclFile struct {
	Objects []*hclObject `hcl:"object,block"`
}

type hclObject struct {
	Type string   `hcl:"type,label"`
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// pendingRef is a relationship slot waiting for its targets to be declared.
type pendingRef struct {
	obj   *model.Object
	spec  model.RelationSpec
	names []string
	rng   hcl.Range
}

// Load reads and parses the model file at path.
func Load(path string) (*model.Model, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	return Parse(src, path)
}

// Parse builds a Model from HCL source. Relationship names may refer to
// objects declared later in the document.
func Parse(src []byte, filename string) (*model.Model, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse model file %s: %w", filename, diags)
	}

	var doc hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode model file %s: %w", filename, diags)
	}

	m := model.New()

	var pending []pendingRef

	for _, block := range doc.Objects {
		refs, err := decodeObject(m, block)
		if err != nil {
			return nil, err
		}

		pending = append(pending, refs...)
	}

	index := newNameIndex(m)

	for _, ref := range pending {
		if err := index.link(ref); err != nil {
			return nil, fmt.Errorf("%s: %w", ref.rng, err)
		}
	}

	return m, nil
}

func decodeObject(m *model.Model, block *hclObject) ([]pendingRef, error) {
	t, ok := model.ParseType(block.Type)
	if !ok {
		err := fmt.Errorf("%w %q", ErrUnknownType, block.Type)
		if s := match.Suggest(block.Type, model.TypeNames(), 1); len(s) > 0 {
			err = fmt.Errorf("%w (did you mean %s?)", err, s[0])
		}

		return nil, fmt.Errorf("%s: %w", block.Body.MissingItemRange(), err)
	}

	obj, err := model.NewObject(t, block.Name)
	if err != nil {
		return nil, err
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}

	slices.SortFunc(ordered, func(a, b *hcl.Attribute) int {
		return a.Range.Start.Byte - b.Range.Start.Byte
	})

	var pending []pendingRef

	for _, attr := range ordered {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}

		if v.IsNull() {
			continue
		}

		if err := decodeAttribute(obj, attr.Name, v, &pending, attr.Range); err != nil {
			return nil, fmt.Errorf("%s: %w", attr.Range, err)
		}
	}

	if err := m.Add(obj); err != nil {
		return nil, fmt.Errorf("%s: %w", block.Body.MissingItemRange(), err)
	}

	return pending, nil
}

func decodeAttribute(obj *model.Object, name string, v cty.Value, pending *[]pendingRef, rng hcl.Range) error {
	info := obj.Info()

	if spec, ok := info.Attribute(name); ok {
		val, err := fromCty(spec, v)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", obj.Description(), name, err)
		}

		return obj.Set(name, val)
	}

	if spec, ok := info.Relation(name); ok {
		names, err := targetNames(spec, v)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", obj.Description(), name, err)
		}

		*pending = append(*pending, pendingRef{obj: obj, spec: spec, names: names, rng: rng})

		return nil
	}

	if name == groupsAttr && len(info.Group) > 0 {
		return decodeGroups(obj, v)
	}

	candidates := append(info.AttributeNames(), info.SlotNames()...)
	if len(info.Group) > 0 {
		candidates = append(candidates, groupsAttr)
	}

	err := fmt.Errorf("%s: %w %q", obj.Description(), ErrUnknownAttribute, name)
	if s := match.Suggest(name, candidates, 1); len(s) > 0 {
		err = fmt.Errorf("%w (did you mean %s?)", err, s[0])
	}

	return err
}

func fromCty(spec model.AttributeSpec, v cty.Value) (model.Value, error) {
	switch spec.Kind {
	case model.KindDouble:
		var f float64
		if err := decodeAs(v, cty.Number, &f); err != nil {
			return model.Value{}, err
		}

		return model.Double(f), nil
	case model.KindBool:
		var b bool
		if err := decodeAs(v, cty.Bool, &b); err != nil {
			return model.Value{}, err
		}

		return model.Bool(b), nil
	default:
		var s string
		if err := decodeAs(v, cty.String, &s); err != nil {
			return model.Value{}, err
		}

		if spec.Kind == model.KindEnum {
			return model.Enum(s), nil
		}

		return model.String(s), nil
	}
}

func decodeAs(v cty.Value, want cty.Type, target any) error {
	converted, err := convert.Convert(v, want)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, err)
	}

	if err := gocty.FromCtyValue(converted, target); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, err)
	}

	return nil
}

func targetNames(spec model.RelationSpec, v cty.Value) ([]string, error) {
	if !spec.Collection {
		var name string
		if err := decodeAs(v, cty.String, &name); err != nil {
			return nil, err
		}

		return []string{name}, nil
	}

	var names []string
	if err := decodeAs(v, cty.List(cty.String), &names); err != nil {
		return nil, err
	}

	return names, nil
}

func decodeGroups(obj *model.Object, v cty.Value) error {
	if !v.CanIterateElements() {
		return fmt.Errorf("%s: %s: %w: want a list of groups", obj.Description(), groupsAttr, ErrInvalidValue)
	}

	specs := obj.Info().Group

	for it := v.ElementIterator(); it.Next(); {
		_, g := it.Element()

		elems := []cty.Value{g}
		if g.CanIterateElements() {
			elems = g.AsValueSlice()
		}

		if len(elems) != len(specs) {
			return fmt.Errorf("%s: %s: %w: got %d values, want %d", obj.Description(), groupsAttr, model.ErrGroupArity, len(elems), len(specs))
		}

		values := make([]model.Value, len(elems))
		for i, e := range elems {
			val, err := fromCty(specs[i], e)
			if err != nil {
				return fmt.Errorf("%s: %s: %w", obj.Description(), groupsAttr, err)
			}

			values[i] = val
		}

		if err := obj.PushGroup(values...); err != nil {
			return err
		}
	}

	return nil
}

type nameKey struct {
	t    model.Type
	name string
}

type nameIndex map[nameKey]*model.Object

func newNameIndex(m *model.Model) nameIndex {
	idx := make(nameIndex)

	for _, obj := range m.Objects() {
		if obj.Name() == "" {
			continue
		}

		key := nameKey{t: obj.Type(), name: common.FoldKey(obj.Name())}
		if _, taken := idx[key]; !taken {
			idx[key] = obj
		}
	}

	return idx
}

func (idx nameIndex) lookup(name string, targets []model.Type) (*model.Object, bool) {
	for _, t := range targets {
		if obj, ok := idx[nameKey{t: t, name: common.FoldKey(name)}]; ok {
			return obj, true
		}
	}

	return nil, false
}

func (idx nameIndex) link(ref pendingRef) error {
	var missing []string

	for _, name := range ref.names {
		target, ok := idx.lookup(name, ref.spec.Targets)
		if !ok {
			missing = append(missing, common.Quote(name))
			continue
		}

		var err error
		if ref.spec.Collection {
			err = ref.obj.AddRelation(ref.spec.Slot, target)
		} else {
			err = ref.obj.SetRelation(ref.spec.Slot, target)
		}

		if err != nil {
			return fmt.Errorf("%s: %s: %w", ref.obj.Description(), ref.spec.Slot, err)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%s: %s: %w %s", ref.obj.Description(), ref.spec.Slot, ErrUnresolvedName, strings.Join(missing, ", "))
	}

	return nil
}
