package translator

import (
	"math"
	"strconv"
	"strings"
)

// Converter maps a parsed controller number into the characteristic's unit.
type Converter func(x float64) (float64, error)

func FahrenheitToCelsius(x float64) (float64, error) {
	return (x - 32) * 5 / 9, nil
}

// Number parses a floating-point value and applies Convert when set.
type Number struct {
	Convert Converter
	Default float64
}

func (n Number) Parse(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return n.Default
	}
	x, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return n.Default
	}
	if n.Convert == nil {
		return x
	}
	y, err := n.Convert(x)
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		return n.Default
	}
	return y
}

func (n Number) Translate(raw string) interface{} {
	return n.Parse(raw)
}

// WithConverter returns a copy of n using c.
func (n Number) WithConverter(c Converter) Number {
	n.Convert = c
	return n
}

// Integer parses a base-10 integer. A decimal is truncated, matching how the
// controller's firmware formats some battery readings ("87.0").
type Integer struct {
	Default int
}

func (i Integer) Parse(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return i.Default
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return i.Default
}

func (i Integer) Translate(raw string) interface{} {
	return i.Parse(raw)
}

var (
	CurrentTemperature = Number{Convert: FahrenheitToCelsius, Default: 0}

	// TargetTemperature defaults to the characteristic's minimum.
	TargetTemperature = Number{Convert: FahrenheitToCelsius, Default: 10}

	CurrentRelativeHumidity = Number{Default: 0}

	BatteryLevel = Integer{Default: 0}
)
