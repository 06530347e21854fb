package modelfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bem-translator/internal/model"
)

const officeHCL = `
object "OS:Building" "Office" {
  north_axis = 15
  terrain    = "City"
}

object "OS:Construction" "Exterior Wall" {
  layers = ["Brick", "Gypsum"]
}

object "OS:Material" "Brick" {
  roughness     = "Rough"
  thickness     = 0.1
  conductivity  = 0.89
  density       = 1920
  specific_heat = 790
}

object "OS:Material" "Gypsum" {
  roughness     = "Smooth"
  thickness     = 0.0127
  conductivity  = 0.16
  density       = 800
  specific_heat = 1090
}

object "OS:Schedule:Compact" "Heating" {
  schedule_type_limits = "Temperature"
  groups = [
    ["Through: 12/31"],
    ["For: AllDays"],
    "Until: 24:00",
    [21],
  ]
}

object "OS:ScheduleTypeLimits" "Temperature" {
  unit_type = "Temperature"
}
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(officeHCL), "office.hcl")
	require.NoError(t, err)
	assert.Equal(t, 6, m.Len())

	building := m.Unique(model.TypeBuilding)
	require.NotNil(t, building)

	axis, ok := building.Double("north_axis")
	require.True(t, ok)
	assert.InDelta(t, 15.0, axis, 1e-12)

	terrain, _ := building.Get("terrain")
	assert.Equal(t, model.Enum("City"), terrain)

	wall := m.ObjectsOfType(model.TypeConstruction)[0]
	layers := wall.Relations("layers")
	require.Len(t, layers, 2, spew.Sdump(wall.Slots()))
	assert.Equal(t, "Brick", layers[0].Name())
	assert.Equal(t, "Gypsum", layers[1].Name())

	heating := m.ObjectsOfType(model.TypeScheduleCompact)[0]
	assert.Equal(t, [][]model.Value{
		{model.String("Through: 12/31")},
		{model.String("For: AllDays")},
		{model.String("Until: 24:00")},
		{model.String("21")},
	}, heating.Groups())
	assert.Equal(t, "Temperature", heating.Relation("schedule_type_limits").Name())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		contains []string
	}{
		{
			name:     "unknown type",
			src:      `object "OS:Zone" "Z" {}`,
			contains: []string{"bad.hcl", `unknown object type "OS:Zone"`},
		},
		{
			name:     "unknown attribute",
			src:      `object "OS:ThermalZone" "Z" { multiplyer = 2 }`,
			contains: []string{"bad.hcl:1", `unknown attribute "multiplyer"`, "did you mean multiplier?"},
		},
		{
			name:     "wrong kind",
			src:      `object "OS:ThermalZone" "Z" { volume = "big" }`,
			contains: []string{"volume", "invalid value"},
		},
		{
			name:     "invalid choice",
			src:      `object "OS:Building" "B" { terrain = "Moon" }`,
			contains: []string{"terrain", `"Moon"`},
		},
		{
			name: "unresolved name",
			src: `object "OS:Construction" "Wall" { layers = ["Brick"] }
`,
			contains: []string{"OS:Construction 'Wall'", "layers", "unresolved object name 'Brick'"},
		},
		{
			name: "wrong target type",
			src: `object "OS:ScheduleTypeLimits" "Brick" {}
object "OS:Construction" "Wall" { layers = ["Brick"] }
`,
			contains: []string{"unresolved object name 'Brick'"},
		},
		{
			name: "second unique",
			src: `object "OS:Building" "A" {}
object "OS:Building" "B" {}
`,
			contains: []string{"bad.hcl:2"},
		},
		{
			name:     "syntax",
			src:      `object "OS:Building" "A" {`,
			contains: []string{"failed to parse model file bad.hcl"},
		},
		{
			name:     "variables",
			src:      `object "OS:ThermalZone" "Z" { volume = var.volume }`,
			contains: []string{"Variables not allowed"},
		},
		{
			name:     "group arity",
			src:      `object "OS:Schedule:Compact" "S" { groups = [["a", "b"]] }`,
			contains: []string{"groups", "got 2 values, want 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	m, err := Parse([]byte(officeHCL), "office.hcl")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m))

	again, err := Parse(buf.Bytes(), "again.hcl")
	require.NoError(t, err, buf.String())
	require.Equal(t, m.Len(), again.Len())

	for i, obj := range m.Objects() {
		other := again.Objects()[i]
		assert.Equal(t, obj.Type(), other.Type())
		assert.Equal(t, obj.Name(), other.Name())
		assert.Equal(t, obj.Attributes(), other.Attributes())
		assert.Equal(t, obj.Groups(), other.Groups())

		for _, name := range obj.Attributes() {
			want, _ := obj.Get(name)
			got, _ := other.Get(name)
			assert.Equal(t, want, got, "%s.%s", obj.Description(), name)
		}

		for _, slot := range obj.Slots() {
			var want, got []string
			for _, target := range obj.Relations(slot) {
				want = append(want, target.Name())
			}

			for _, target := range other.Relations(slot) {
				got = append(got, target.Name())
			}

			assert.Equal(t, want, got, "%s.%s", obj.Description(), slot)
		}
	}
}

func TestWrite_Format(t *testing.T) {
	m := model.New()
	limits := m.MustNewObject(model.TypeScheduleTypeLimits, "Fraction").
		MustSet("lower_limit_value", model.Double(0)).
		MustSet("upper_limit_value", model.Double(1))
	always := m.MustNewObject(model.TypeScheduleConstant, "Always On").MustSet("value", model.Double(1))
	require.NoError(t, always.SetRelation("schedule_type_limits", limits))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m))

	expected := `object "OS:ScheduleTypeLimits" "Fraction" {
  lower_limit_value = 0
  upper_limit_value = 1
}

object "OS:Schedule:Constant" "Always On" {
  value                = 1
  schedule_type_limits = "Fraction"
}
`
	assert.Equal(t, expected, buf.String())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "office.hcl")
	require.NoError(t, os.WriteFile(path, []byte(officeHCL), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, m.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read model file")
}
