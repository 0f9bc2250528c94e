// Package units provides conversion between pixel distances and
// real-world measurement units.
package units

import (
	"fmt"
)

// Unit identifies a measurement unit system.
type Unit int

const (
	Meters Unit = iota
	Inches
	Feet
)

// Conversion factors relative to meters.
const (
	metersPerMeter = 1.0
	inchesPerMeter = 39.3701
	feetPerMeter   = 3.28084
)

// DefaultPixelsPerMeter is the baseline screen scale: 100 px = 1 m.
const DefaultPixelsPerMeter = 100.0

func (u Unit) String() string {
	switch u {
	case Inches:
		return "inches"
	case Feet:
		return "feet"
	default:
		return "meters"
	}
}

// Symbol returns the short unit symbol used in measurement labels.
func (u Unit) Symbol() string {
	switch u {
	case Inches:
		return "in"
	case Feet:
		return "ft"
	default:
		return "m"
	}
}

// PerMeter returns the number of this unit per meter.
func (u Unit) PerMeter() float64 {
	switch u {
	case Inches:
		return inchesPerMeter
	case Feet:
		return feetPerMeter
	default:
		return metersPerMeter
	}
}

// Parse returns the unit matching a stored name. Unknown names fall
// back to meters.
func Parse(name string) Unit {
	switch name {
	case "inches", "in":
		return Inches
	case "feet", "ft":
		return Feet
	default:
		return Meters
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	*u = Parse(string(text))
	return nil
}

// Converter translates between pixel distances and real-world
// distances in the active unit. Changing the active unit only changes
// how lengths are displayed and how new real-unit input is
// interpreted; stored pixel geometry is never rescaled.
type Converter struct {
	Unit           Unit
	PixelsPerMeter float64
}

// NewConverter creates a converter with the default 100 px/m baseline.
func NewConverter(unit Unit) Converter {
	return Converter{Unit: unit, PixelsPerMeter: DefaultPixelsPerMeter}
}

// PixelsToUnits converts a pixel distance to the active unit.
func (c Converter) PixelsToUnits(pixels float64) float64 {
	return pixels / c.baseline() * c.Unit.PerMeter()
}

// UnitsToPixels converts a distance in the active unit to pixels.
func (c Converter) UnitsToPixels(units float64) float64 {
	return units / c.Unit.PerMeter() * c.baseline()
}

// FormatMeasurement converts a pixel distance and formats it with two
// decimals and the unit symbol, e.g. "1.50 m".
func (c Converter) FormatMeasurement(pixels float64) string {
	return fmt.Sprintf("%.2f %s", c.PixelsToUnits(pixels), c.Unit.Symbol())
}

func (c Converter) baseline() float64 {
	if c.PixelsPerMeter <= 0 {
		return DefaultPixelsPerMeter
	}
	return c.PixelsPerMeter
}
