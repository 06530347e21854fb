package model

import "slices"

// AttributeSpec declares one typed attribute of a model type.
type AttributeSpec struct {
	Name     string
	Kind     ValueKind
	Required bool
	// Choices restricts enum values. Empty means any value is accepted.
	Choices []string
}

// RelationSpec declares one relationship slot of a model type.
type RelationSpec struct {
	Slot       string
	Targets    []Type
	Required   bool
	Collection bool
}

// Accepts reports whether an object of type t may fill the slot.
func (rs RelationSpec) Accepts(t Type) bool {
	return slices.Contains(rs.Targets, t)
}

// TypeInfo is the static metadata of a model type.
type TypeInfo struct {
	Type       Type
	Unique     bool
	Named      bool
	Attributes []AttributeSpec
	// Group is the tuple of an extensible group; empty means no groups.
	Group     []AttributeSpec
	Relations []RelationSpec
}

// Attribute returns the declaration of the named attribute.
func (ti *TypeInfo) Attribute(name string) (AttributeSpec, bool) {
	for _, a := range ti.Attributes {
		if a.Name == name {
			return a, true
		}
	}

	return AttributeSpec{}, false
}

// Relation returns the declaration of the named relationship slot.
func (ti *TypeInfo) Relation(slot string) (RelationSpec, bool) {
	for _, r := range ti.Relations {
		if r.Slot == slot {
			return r, true
		}
	}

	return RelationSpec{}, false
}

// AttributeNames returns the declared attribute names in order.
func (ti *TypeInfo) AttributeNames() []string {
	names := make([]string, len(ti.Attributes))
	for i, a := range ti.Attributes {
		names[i] = a.Name
	}

	return names
}

// SlotNames returns the declared relationship slot names in order.
func (ti *TypeInfo) SlotNames() []string {
	names := make([]string, len(ti.Relations))
	for i, r := range ti.Relations {
		names[i] = r.Slot
	}

	return names
}

// Info returns the metadata of t.
func Info(t Type) (*TypeInfo, bool) {
	if !t.IsValid() {
		return nil, false
	}

	ti := typeInfos[t]

	return ti, ti != nil
}

var (
	unitTypes    = []string{"Dimensionless", "Temperature", "DeltaTemperature", "Availability", "Power", "Percent"}
	curveInputs  = []string{"Dimensionless", "Temperature", "Pressure", "MassFlow", "Distance", "Power"}
	curveOutputs = []string{"Dimensionless", "Capacity", "Power", "Pressure", "Temperature"}
	schedules    = []Type{TypeScheduleConstant, TypeScheduleCompact}
)

func optionalDouble(name string) AttributeSpec { return AttributeSpec{Name: name, Kind: KindDouble} }
func requiredDouble(name string) AttributeSpec {
	return AttributeSpec{Name: name, Kind: KindDouble, Required: true}
}

var typeInfos = map[Type]*TypeInfo{
	TypeBuilding: {
		Type:   TypeBuilding,
		Unique: true,
		Named:  true,
		Attributes: []AttributeSpec{
			optionalDouble("north_axis"),
			{Name: "terrain", Kind: KindEnum, Choices: []string{"Country", "Suburbs", "City", "Ocean", "Urban"}},
			optionalDouble("loads_convergence_tolerance"),
			optionalDouble("temperature_convergence_tolerance"),
			{Name: "solar_distribution", Kind: KindEnum, Choices: []string{
				"MinimalShadowing", "FullExterior", "FullInteriorAndExterior",
				"FullExteriorWithReflections", "FullInteriorAndExteriorWithReflections",
			}},
			optionalDouble("maximum_warmup_days"),
			optionalDouble("minimum_warmup_days"),
		},
	},
	TypeGlobalGeometryRules: {
		Type:   TypeGlobalGeometryRules,
		Unique: true,
		Attributes: []AttributeSpec{
			{Name: "starting_vertex_position", Kind: KindEnum, Required: true, Choices: []string{
				"UpperLeftCorner", "LowerLeftCorner", "UpperRightCorner", "LowerRightCorner",
			}},
			{Name: "vertex_entry_direction", Kind: KindEnum, Required: true, Choices: []string{"Counterclockwise", "Clockwise"}},
			{Name: "coordinate_system", Kind: KindEnum, Required: true, Choices: []string{"Relative", "World", "Absolute"}},
		},
	},
	TypeThermalZone: {
		Type:  TypeThermalZone,
		Named: true,
		Attributes: []AttributeSpec{
			optionalDouble("direction_of_relative_north"),
			optionalDouble("x_origin"),
			optionalDouble("y_origin"),
			optionalDouble("z_origin"),
			optionalDouble("multiplier"),
			optionalDouble("ceiling_height"),
			optionalDouble("volume"),
		},
	},
	TypeScheduleTypeLimits: {
		Type:  TypeScheduleTypeLimits,
		Named: true,
		Attributes: []AttributeSpec{
			optionalDouble("lower_limit_value"),
			optionalDouble("upper_limit_value"),
			{Name: "numeric_type", Kind: KindEnum, Choices: []string{"Continuous", "Discrete"}},
			{Name: "unit_type", Kind: KindEnum, Choices: unitTypes},
		},
	},
	TypeScheduleConstant: {
		Type:       TypeScheduleConstant,
		Named:      true,
		Attributes: []AttributeSpec{requiredDouble("value")},
		Relations: []RelationSpec{
			{Slot: "schedule_type_limits", Targets: []Type{TypeScheduleTypeLimits}},
		},
	},
	TypeScheduleCompact: {
		Type:  TypeScheduleCompact,
		Named: true,
		Group: []AttributeSpec{{Name: "field", Kind: KindString, Required: true}},
		Relations: []RelationSpec{
			{Slot: "schedule_type_limits", Targets: []Type{TypeScheduleTypeLimits}},
		},
	},
	TypeCurveCubic: {
		Type:  TypeCurveCubic,
		Named: true,
		Attributes: []AttributeSpec{
			requiredDouble("coefficient1_constant"),
			requiredDouble("coefficient2_x"),
			requiredDouble("coefficient3_x2"),
			requiredDouble("coefficient4_x3"),
			requiredDouble("minimum_value_of_x"),
			requiredDouble("maximum_value_of_x"),
			optionalDouble("minimum_curve_output"),
			optionalDouble("maximum_curve_output"),
			{Name: "input_unit_type_for_x", Kind: KindEnum, Choices: curveInputs},
			{Name: "output_unit_type", Kind: KindEnum, Choices: curveOutputs},
		},
	},
	TypeCurveQuadratic: {
		Type:  TypeCurveQuadratic,
		Named: true,
		Attributes: []AttributeSpec{
			requiredDouble("coefficient1_constant"),
			requiredDouble("coefficient2_x"),
			requiredDouble("coefficient3_x2"),
			requiredDouble("minimum_value_of_x"),
			requiredDouble("maximum_value_of_x"),
			optionalDouble("minimum_curve_output"),
			optionalDouble("maximum_curve_output"),
		},
	},
	TypeStandardOpaqueMaterial: {
		Type:  TypeStandardOpaqueMaterial,
		Named: true,
		Attributes: []AttributeSpec{
			{Name: "roughness", Kind: KindEnum, Required: true, Choices: []string{
				"VeryRough", "Rough", "MediumRough", "MediumSmooth", "Smooth", "VerySmooth",
			}},
			requiredDouble("thickness"),
			requiredDouble("conductivity"),
			requiredDouble("density"),
			requiredDouble("specific_heat"),
			optionalDouble("thermal_absorptance"),
			optionalDouble("solar_absorptance"),
			optionalDouble("visible_absorptance"),
		},
	},
	TypeConstruction: {
		Type:  TypeConstruction,
		Named: true,
		Relations: []RelationSpec{
			{Slot: "layers", Targets: []Type{TypeStandardOpaqueMaterial}, Required: true, Collection: true},
		},
	},
	TypeCoilHeatingElectric: {
		Type:  TypeCoilHeatingElectric,
		Named: true,
		Attributes: []AttributeSpec{
			optionalDouble("efficiency"),
			optionalDouble("nominal_capacity"),
			{Name: "air_inlet_node", Kind: KindString},
			{Name: "air_outlet_node", Kind: KindString},
		},
		Relations: []RelationSpec{
			{Slot: "availability_schedule", Targets: schedules, Required: true},
		},
	},
	TypeThermostatSetpointDualSetpoint: {
		Type:  TypeThermostatSetpointDualSetpoint,
		Named: true,
		Relations: []RelationSpec{
			{Slot: "heating_setpoint_schedule", Targets: schedules, Required: true},
			{Slot: "cooling_setpoint_schedule", Targets: schedules, Required: true},
		},
	},
	TypeSpaceType: {
		Type:  TypeSpaceType,
		Named: true,
		Attributes: []AttributeSpec{
			{Name: "standards_building_type", Kind: KindString},
			{Name: "standards_space_type", Kind: KindString},
		},
	},
	TypeNull: {
		Type:  TypeNull,
		Named: true,
	},
}
