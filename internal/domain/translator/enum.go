package translator

import "github.com/brutella/hap/characteristic"

// Enum maps discrete controller strings to a characteristic enum.
type Enum struct {
	Table   map[string]int
	Default int
}

func (e Enum) Lookup(raw string) int {
	if v, ok := e.Table[raw]; ok {
		return v
	}
	return e.Default
}

func (e Enum) Translate(raw string) interface{} {
	return e.Lookup(raw)
}

var (
	CurrentHeatingCoolingState = Enum{
		Table: map[string]int{
			"Idle":    characteristic.CurrentHeatingCoolingStateOff,
			"Heating": characteristic.CurrentHeatingCoolingStateHeat,
			"Cooling": characteristic.CurrentHeatingCoolingStateCool,
		},
		Default: characteristic.CurrentHeatingCoolingStateOff,
	}

	TargetHeatingCoolingState = Enum{
		Table: map[string]int{
			"Off":            characteristic.TargetHeatingCoolingStateOff,
			"CoolOn":         characteristic.TargetHeatingCoolingStateCool,
			"HeatOn":         characteristic.TargetHeatingCoolingStateHeat,
			"AutoChangeOver": characteristic.TargetHeatingCoolingStateAuto,
		},
		Default: characteristic.TargetHeatingCoolingStateOff,
	}

	TemperatureDisplayUnits = Enum{
		Table: map[string]int{
			"C": characteristic.TemperatureDisplayUnitsCelsius,
			"F": characteristic.TemperatureDisplayUnitsFahrenheit,
		},
		Default: characteristic.TemperatureDisplayUnitsCelsius,
	}

	// LockCurrentState falls back to Unknown, the only lock value meaning
	// "no reading".
	LockCurrentState = Enum{
		Table: map[string]int{
			"0": characteristic.LockCurrentStateUnsecured,
			"1": characteristic.LockCurrentStateSecured,
		},
		Default: characteristic.LockCurrentStateUnknown,
	}

	LockTargetState = Enum{
		Table: map[string]int{
			"0": characteristic.LockTargetStateUnsecured,
			"1": characteristic.LockTargetStateSecured,
		},
		Default: characteristic.LockTargetStateUnsecured,
	}
)
