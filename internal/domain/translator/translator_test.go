package translator

import (
	"testing"

	"github.com/brutella/hap/characteristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumTables(t *testing.T) {
	tables := map[string]Enum{
		"current heating cooling": CurrentHeatingCoolingState,
		"target heating cooling":  TargetHeatingCoolingState,
		"display units":           TemperatureDisplayUnits,
		"lock current":            LockCurrentState,
		"lock target":             LockTargetState,
	}

	for name, e := range tables {
		t.Run(name, func(t *testing.T) {
			for k, v := range e.Table {
				assert.Equal(t, v, e.Translate(k), "key %q", k)
			}
			assert.Equal(t, e.Default, e.Translate(""))
			assert.Equal(t, e.Default, e.Translate("not-a-key"))
		})
	}
}

func TestCurrentHeatingCoolingState(t *testing.T) {
	assert.Equal(t, characteristic.CurrentHeatingCoolingStateOff, CurrentHeatingCoolingState.Lookup("Idle"))
	assert.Equal(t, characteristic.CurrentHeatingCoolingStateHeat, CurrentHeatingCoolingState.Lookup("Heating"))
	assert.Equal(t, characteristic.CurrentHeatingCoolingStateCool, CurrentHeatingCoolingState.Lookup("Cooling"))
	// keys are case sensitive
	assert.Equal(t, CurrentHeatingCoolingState.Default, CurrentHeatingCoolingState.Lookup("heating"))
}

func TestTargetHeatingCoolingState(t *testing.T) {
	assert.Equal(t, characteristic.TargetHeatingCoolingStateOff, TargetHeatingCoolingState.Lookup("Off"))
	assert.Equal(t, characteristic.TargetHeatingCoolingStateCool, TargetHeatingCoolingState.Lookup("CoolOn"))
	assert.Equal(t, characteristic.TargetHeatingCoolingStateHeat, TargetHeatingCoolingState.Lookup("HeatOn"))
	assert.Equal(t, characteristic.TargetHeatingCoolingStateAuto, TargetHeatingCoolingState.Lookup("AutoChangeOver"))
}

func TestLockState(t *testing.T) {
	assert.Equal(t, characteristic.LockCurrentStateUnsecured, LockCurrentState.Lookup("0"))
	assert.Equal(t, characteristic.LockCurrentStateSecured, LockCurrentState.Lookup("1"))
	assert.Equal(t, characteristic.LockCurrentStateUnknown, LockCurrentState.Lookup(""))
	assert.Equal(t, characteristic.LockTargetStateSecured, LockTargetState.Lookup("1"))
	assert.Equal(t, characteristic.LockTargetStateUnsecured, LockTargetState.Lookup("2"))
}

func TestTemperature(t *testing.T) {
	assert.InDelta(t, 37.0, CurrentTemperature.Parse("98.6"), 1e-9)
	assert.InDelta(t, 0.0, CurrentTemperature.Parse("32"), 1e-9)
	assert.InDelta(t, 20.0, TargetTemperature.Parse(" 68 "), 1e-9)

	assert.Equal(t, CurrentTemperature.Default, CurrentTemperature.Parse(""))
	assert.Equal(t, CurrentTemperature.Default, CurrentTemperature.Parse("warm"))
	assert.Equal(t, CurrentTemperature.Default, CurrentTemperature.Parse("NaN"))
	assert.Equal(t, TargetTemperature.Default, TargetTemperature.Translate("--"))
}

func TestHumidity(t *testing.T) {
	assert.Equal(t, 45.5, CurrentRelativeHumidity.Parse("45.5"))
	assert.Equal(t, CurrentRelativeHumidity.Default, CurrentRelativeHumidity.Parse(""))
}

func TestBatteryLevel(t *testing.T) {
	assert.Equal(t, 42, BatteryLevel.Translate("42"))
	assert.Equal(t, 87, BatteryLevel.Parse("87.0"))
	assert.Equal(t, BatteryLevel.Default, BatteryLevel.Parse(""))
	assert.Equal(t, BatteryLevel.Default, BatteryLevel.Parse("full"))
}

func TestFormula(t *testing.T) {
	identity, err := Formula("x")
	require.NoError(t, err)
	v, err := identity(21.5)
	require.NoError(t, err)
	assert.Equal(t, 21.5, v)

	f2c, err := Formula("(x - 32) * 5 / 9")
	require.NoError(t, err)
	n := CurrentTemperature.WithConverter(f2c)
	assert.InDelta(t, 37.0, n.Parse("98.6"), 1e-9)

	// the original rule is untouched
	assert.NotNil(t, CurrentTemperature.Convert)
	assert.InDelta(t, 37.0, CurrentTemperature.Parse("98.6"), 1e-9)
}

func TestFormula_Invalid(t *testing.T) {
	_, err := Formula("x *")
	assert.Error(t, err)

	_, err = Formula("y * 2")
	assert.Error(t, err)
}

func TestFormula_EvaluationFallsBackToDefault(t *testing.T) {
	cmp, err := Formula("x > 10")
	require.NoError(t, err)
	n := Number{Convert: cmp, Default: 7}
	assert.Equal(t, 7.0, n.Parse("20"))
}
