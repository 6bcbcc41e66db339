package accessory

import (
	"github.com/rs/zerolog"

	"vera-homekit-bridge/internal/domain/capability"
	"vera-homekit-bridge/internal/domain/model"
)

// capabilitiesByType is the exact-match dispatch from device type to the
// functional capabilities it exposes. Unknown types expose none.
var capabilitiesByType = map[model.DeviceType][]capability.Kind{
	model.DeviceTypeThermostat: {capability.KindThermostat},
	model.DeviceTypeDoorLock:   {capability.KindLockMechanism, capability.KindBattery},
}

// CapabilitiesFor returns the functional capabilities for a device type.
func CapabilitiesFor(t model.DeviceType) []capability.Kind {
	return append([]capability.Kind(nil), capabilitiesByType[t]...)
}

type Assembler struct {
	controller VariableReader
	factory    *capability.Factory
	logger     zerolog.Logger
}

func NewAssembler(controller VariableReader, opts capability.Options) *Assembler {
	return &Assembler{
		controller: controller,
		factory:    capability.NewFactory(opts),
		logger:     opts.Logger,
	}
}

func (a *Assembler) Assemble(d model.Device) *Accessory {
	return &Accessory{
		Name:         d.Name,
		Manufacturer: d.Manufacturer,
		Model:        d.Model,
		SerialNumber: d.SerialNumber,
		device:       d,
		kinds:        CapabilitiesFor(d.Type),
		controller:   a.controller,
		factory:      a.factory,
		logger:       a.logger.With().Int("device_id", d.ID).Logger(),
	}
}
