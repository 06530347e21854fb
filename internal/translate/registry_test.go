package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bem-translator/internal/model"
	"bem-translator/internal/schema"
)

func TestRegistry_Lookup(t *testing.T) {
	reg, _ := newTestRegistry()

	_, recordType, ok := reg.Forward(model.TypeCurveCubic)
	require.True(t, ok)
	assert.Equal(t, "Curve:Cubic", recordType)

	_, _, ok = reg.Forward(model.TypeSpaceType)
	assert.False(t, ok)

	_, modelType, ok := reg.Reverse("schedule:constant")
	require.True(t, ok)
	assert.Equal(t, model.TypeScheduleConstant, modelType)

	assert.Equal(t, []model.Type{
		model.TypeThermalZone,
		model.TypeScheduleTypeLimits,
		model.TypeScheduleConstant,
		model.TypeCurveCubic,
		model.TypeCoilHeatingElectric,
		model.TypeNull,
	}, reg.ForwardTypes())

	assert.Equal(t, []string{
		"Building", "Coil:Heating:Electric", "GlobalGeometryRules", "Schedule:Constant", "ScheduleTypeLimits",
	}, reg.ReverseTypes())
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterForward(model.TypeNull, "", nullForward)

	assert.Panics(t, func() { reg.RegisterForward(model.TypeNull, "", nullForward) })

	reg.RegisterReverse("Building", model.TypeBuilding, buildingReverse)
	assert.Panics(t, func() { reg.RegisterReverse("BUILDING", model.TypeBuilding, buildingReverse) })
}

func TestRegistry_Validate(t *testing.T) {
	reg, _ := newTestRegistry()
	assert.True(t, reg.Validate(schema.Default()).IsValid())

	reg.RegisterForward(model.TypeSpaceType, "SpaceTyp", nullForward)
	reg.RegisterReverse("Curve:Cubik", model.TypeCurveCubic, nil)

	diags := reg.Validate(schema.Default())
	require.Len(t, diags.Errors(), 2)
	assert.Equal(t, "OS:SpaceType", diags.Items[0].Subject)
	assert.Equal(t, []string{"Curve:Cubic"}, diags.Items[1].Suggestions[:1])
}
