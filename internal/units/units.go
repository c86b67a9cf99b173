// Package units provides the physical dimension tags carried by grid
// properties and the unit systems that convert raw deck values into the
// internal SI representation. The engine stores converted values only;
// conversion happens once, at ingestion.
package units

// Dimension identifies the physical unit class of a property's values.
type Dimension string

// Dimension tags
const (
	// None marks dimensionless values (region ids, ratios, multipliers).
	None Dimension = "1"
	// Permeability is stored internally in m2; decks use milliDarcy.
	Permeability Dimension = "Permeability"
	// Temperature is stored internally in Kelvin.
	Temperature Dimension = "Temperature"
	// ThermalConductivity is stored internally in W/(m*K).
	ThermalConductivity Dimension = "ThermalConductivity"
)

// Conversion factors to internal SI units
const (
	// MetricPermeability converts milliDarcy to m2 (1 D = 9.869233e-13 m2).
	MetricPermeability = 9.869233e-16
	// MetricThermalConductivity converts kJ/(m*day*K) to W/(m*K).
	MetricThermalConductivity = 1000.0 / 86400.0
	// FieldThermalConductivity converts Btu/(ft*hr*F) to W/(m*K).
	FieldThermalConductivity = 1.730735
)

// System converts raw deck values of a given dimension into internal units.
// Conversion is affine: internal = raw*factor + offset. A System is immutable
// after construction and safe for concurrent use.
type System struct {
	name    string
	factors map[Dimension]float64
	offsets map[Dimension]float64
}

// Metric returns the metric deck unit system (mD, Celsius, kJ/(m*day*K)).
func Metric() *System {
	return &System{
		name: "METRIC",
		factors: map[Dimension]float64{
			Permeability:        MetricPermeability,
			Temperature:         1.0,
			ThermalConductivity: MetricThermalConductivity,
		},
		offsets: map[Dimension]float64{
			Temperature: 273.15, // Celsius to Kelvin
		},
	}
}

// Field returns the field deck unit system (mD, Fahrenheit, Btu/(ft*hr*F)).
func Field() *System {
	return &System{
		name: "FIELD",
		factors: map[Dimension]float64{
			Permeability:        MetricPermeability, // field decks also use mD
			Temperature:         5.0 / 9.0,
			ThermalConductivity: FieldThermalConductivity,
		},
		offsets: map[Dimension]float64{
			Temperature: 255.372222222222, // Fahrenheit to Kelvin
		},
	}
}

// ByName resolves a unit system from its deck name. Unknown names fall back
// to metric, matching the deck default.
func ByName(name string) *System {
	if name == "FIELD" {
		return Field()
	}
	return Metric()
}

// Name returns the deck name of the system ("METRIC" or "FIELD").
func (s *System) Name() string { return s.name }

// ToInternal converts one raw deck value of the given dimension into internal
// units. Dimensionless values pass through unchanged.
func (s *System) ToInternal(dim Dimension, raw float64) float64 {
	if dim == None {
		return raw
	}
	factor, ok := s.factors[dim]
	if !ok {
		return raw
	}
	return raw*factor + s.offsets[dim]
}

// Factor returns the multiplicative factor for a dimension, 1.0 when the
// dimension is unknown or dimensionless. Useful for scaling whole slices.
func (s *System) Factor(dim Dimension) float64 {
	if f, ok := s.factors[dim]; ok {
		return f
	}
	return 1.0
}

// Offset returns the additive offset for a dimension, 0 for purely
// multiplicative conversions.
func (s *System) Offset(dim Dimension) float64 { return s.offsets[dim] }
