package capability

import (
	"github.com/brutella/hap/characteristic"
	"github.com/brutella/hap/service"

	"vera-homekit-bridge/internal/domain/translator"
)

func NewThermostat(name string, src Source, opts Options) *Bundle {
	s := service.NewThermostat()

	humidity := characteristic.NewCurrentRelativeHumidity()
	s.AddC(humidity.C)

	return build(KindThermostat, s.S, name, src, opts, []characteristicSpec{
		{
			name:     "CurrentHeatingCoolingState",
			c:        s.CurrentHeatingCoolingState.C,
			variable: VarModeState,
			rule:     translator.CurrentHeatingCoolingState,
		},
		{
			name:     "TargetHeatingCoolingState",
			c:        s.TargetHeatingCoolingState.C,
			variable: VarModeStatus,
			rule:     translator.TargetHeatingCoolingState,
			writable: true,
		},
		{
			name:     "CurrentTemperature",
			c:        s.CurrentTemperature.C,
			variable: VarCurrentTemperature,
			rule:     opts.temperature(translator.CurrentTemperature),
		},
		{
			name:     "TargetTemperature",
			c:        s.TargetTemperature.C,
			variable: VarCurrentSetpoint,
			rule:     opts.temperature(translator.TargetTemperature),
			writable: true,
		},
		{
			name:     "TemperatureDisplayUnits",
			c:        s.TemperatureDisplayUnits.C,
			variable: VarThermostatUnits,
			rule:     translator.TemperatureDisplayUnits,
			writable: true,
		},
		{
			name:     "CurrentRelativeHumidity",
			c:        humidity.C,
			variable: VarIndoorHumidity,
			rule:     translator.CurrentRelativeHumidity,
		},
	})
}
