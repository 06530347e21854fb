package handlers

import "bem-translator/internal/model"

var recordMaps = []recordMap{
	{
		modelType:  model.TypeBuilding,
		recordType: "Building",
		fields: []fieldMap{
			{"north_axis", "North Axis"},
			{"terrain", "Terrain"},
			{"loads_convergence_tolerance", "Loads Convergence Tolerance Value"},
			{"temperature_convergence_tolerance", "Temperature Convergence Tolerance Value"},
			{"solar_distribution", "Solar Distribution"},
			{"maximum_warmup_days", "Maximum Number of Warmup Days"},
			{"minimum_warmup_days", "Minimum Number of Warmup Days"},
		},
	},
	{
		modelType:  model.TypeGlobalGeometryRules,
		recordType: "GlobalGeometryRules",
		fields: []fieldMap{
			{"starting_vertex_position", "Starting Vertex Position"},
			{"vertex_entry_direction", "Vertex Entry Direction"},
			{"coordinate_system", "Coordinate System"},
		},
	},
	{
		modelType:  model.TypeThermalZone,
		recordType: "Zone",
		fields: []fieldMap{
			{"direction_of_relative_north", "Direction of Relative North"},
			{"x_origin", "X Origin"},
			{"y_origin", "Y Origin"},
			{"z_origin", "Z Origin"},
			{"multiplier", "Multiplier"},
			{"ceiling_height", "Ceiling Height"},
			{"volume", "Volume"},
		},
	},
	{
		modelType:  model.TypeScheduleTypeLimits,
		recordType: "ScheduleTypeLimits",
		fields: []fieldMap{
			{"lower_limit_value", "Lower Limit Value"},
			{"upper_limit_value", "Upper Limit Value"},
			{"numeric_type", "Numeric Type"},
			{"unit_type", "Unit Type"},
		},
	},
	{
		modelType:  model.TypeScheduleConstant,
		recordType: "Schedule:Constant",
		fields:     []fieldMap{{"value", "Hourly Value"}},
		refs:       []refMap{{"schedule_type_limits", "Schedule Type Limits Name"}},
	},
	{
		modelType:  model.TypeCurveCubic,
		recordType: "Curve:Cubic",
		fields: []fieldMap{
			{"coefficient1_constant", "Coefficient1 Constant"},
			{"coefficient2_x", "Coefficient2 x"},
			{"coefficient3_x2", "Coefficient3 x**2"},
			{"coefficient4_x3", "Coefficient4 x**3"},
			{"minimum_value_of_x", "Minimum Value of x"},
			{"maximum_value_of_x", "Maximum Value of x"},
			{"minimum_curve_output", "Minimum Curve Output"},
			{"maximum_curve_output", "Maximum Curve Output"},
			{"input_unit_type_for_x", "Input Unit Type for X"},
			{"output_unit_type", "Output Unit Type"},
		},
	},
	{
		modelType:  model.TypeCurveQuadratic,
		recordType: "Curve:Quadratic",
		fields: []fieldMap{
			{"coefficient1_constant", "Coefficient1 Constant"},
			{"coefficient2_x", "Coefficient2 x"},
			{"coefficient3_x2", "Coefficient3 x**2"},
			{"minimum_value_of_x", "Minimum Value of x"},
			{"maximum_value_of_x", "Maximum Value of x"},
			{"minimum_curve_output", "Minimum Curve Output"},
			{"maximum_curve_output", "Maximum Curve Output"},
		},
	},
	{
		modelType:  model.TypeStandardOpaqueMaterial,
		recordType: "Material",
		fields: []fieldMap{
			{"roughness", "Roughness"},
			{"thickness", "Thickness"},
			{"conductivity", "Conductivity"},
			{"density", "Density"},
			{"specific_heat", "Specific Heat"},
			{"thermal_absorptance", "Thermal Absorptance"},
			{"solar_absorptance", "Solar Absorptance"},
			{"visible_absorptance", "Visible Absorptance"},
		},
	},
	{
		modelType:  model.TypeCoilHeatingElectric,
		recordType: "Coil:Heating:Electric",
		fields: []fieldMap{
			{"efficiency", "Efficiency"},
			{"nominal_capacity", "Nominal Capacity"},
			{"air_inlet_node", "Air Inlet Node Name"},
			{"air_outlet_node", "Air Outlet Node Name"},
		},
		refs: []refMap{{"availability_schedule", "Availability Schedule Name"}},
	},
	{
		modelType:  model.TypeThermostatSetpointDualSetpoint,
		recordType: "ThermostatSetpoint:DualSetpoint",
		refs: []refMap{
			{"heating_setpoint_schedule", "Heating Setpoint Temperature Schedule Name"},
			{"cooling_setpoint_schedule", "Cooling Setpoint Temperature Schedule Name"},
		},
	},
}
