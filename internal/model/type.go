package model

import "strings"

//go:generate go tool stringer -type=Type -linecomment -output=type_string.go

// Type is the closed set of model object types.
type Type int

const (
	_ Type = iota // skip zero value, use it as a default (invalid) value for Type

	TypeBuilding                       // OS:Building
	TypeGlobalGeometryRules            // OS:GlobalGeometryRules
	TypeThermalZone                    // OS:ThermalZone
	TypeScheduleTypeLimits             // OS:ScheduleTypeLimits
	TypeScheduleConstant               // OS:Schedule:Constant
	TypeScheduleCompact                // OS:Schedule:Compact
	TypeCurveCubic                     // OS:Curve:Cubic
	TypeCurveQuadratic                 // OS:Curve:Quadratic
	TypeStandardOpaqueMaterial         // OS:Material
	TypeConstruction                   // OS:Construction
	TypeCoilHeatingElectric            // OS:Coil:Heating:Electric
	TypeThermostatSetpointDualSetpoint // OS:ThermostatSetpoint:DualSetpoint
	TypeSpaceType                      // OS:SpaceType
	TypeNull                           // OS:Null

	// TypeTotal is a constant that represents the total number of types defined
	TypeTotal = int(iota)
)

// IsValid reports whether t is one of the declared types.
func (t Type) IsValid() bool {
	return t > 0 && int(t) < TypeTotal
}

// Types returns every declared type in declaration order.
func Types() []Type {
	out := make([]Type, 0, TypeTotal-1)
	for t := Type(1); int(t) < TypeTotal; t++ {
		out = append(out, t)
	}

	return out
}

// ParseType resolves a type name such as "OS:Curve:Cubic". The match is
// case-insensitive and the "OS:" prefix may be omitted.
func ParseType(name string) (Type, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(want, "os:") {
		want = "os:" + want
	}

	for _, t := range Types() {
		if strings.ToLower(t.String()) == want {
			return t, true
		}
	}

	return 0, false
}

// TypeNames returns the names of every declared type.
func TypeNames() []string {
	types := Types()
	names := make([]string, len(types))

	for i, t := range types {
		names[i] = t.String()
	}

	return names
}
