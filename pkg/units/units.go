// Package units converts between the input units of the rack description
// (feet and inches) and the engine's internal linear unit (meters).
//
// Parameter files describe corridors and tiers in feet and member sizes in
// inches, matching shop-drawing conventions. Every resolver downstream of the
// parameter surface works in meters; only spec-facing APIs accept feet or
// inches.
package units

// Conversion factors to the internal unit.
const (
	// MetersPerFoot is the exact international foot.
	MetersPerFoot = 0.3048

	// MetersPerInch is the exact international inch.
	MetersPerInch = 0.0254

	// InchesPerFoot converts feet to inches.
	InchesPerFoot = 12.0
)

// FeetToUnits converts a length in feet to internal units.
func FeetToUnits(ft float64) float64 { return ft * MetersPerFoot }

// InchesToUnits converts a length in inches to internal units.
func InchesToUnits(in float64) float64 { return in * MetersPerInch }

// FeetToInches converts a length in feet to inches.
func FeetToInches(ft float64) float64 { return ft * InchesPerFoot }

// UnitsToFeet converts a length in internal units back to feet.
func UnitsToFeet(u float64) float64 { return u / MetersPerFoot }

// UnitsToInches converts a length in internal units back to inches.
func UnitsToInches(u float64) float64 { return u / MetersPerInch }
