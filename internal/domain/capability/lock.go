package capability

import (
	"github.com/brutella/hap/characteristic"
	"github.com/brutella/hap/service"

	"vera-homekit-bridge/internal/domain/translator"
)

func NewLockMechanism(name string, src Source, opts Options) *Bundle {
	s := service.NewLockMechanism()

	return build(KindLockMechanism, s.S, name, src, opts, []characteristicSpec{
		{
			name:     "LockCurrentState",
			c:        s.LockCurrentState.C,
			variable: VarLockStatus,
			rule:     translator.LockCurrentState,
		},
		{
			name:     "LockTargetState",
			c:        s.LockTargetState.C,
			variable: VarLockTarget,
			rule:     translator.LockTargetState,
			writable: true,
		},
	})
}

func NewBattery(name string, src Source, opts Options) *Bundle {
	s := service.NewBatteryService()
	s.ChargingState.SetValue(characteristic.ChargingStateNotChargeable)

	return build(KindBattery, s.S, name, src, opts, []characteristicSpec{
		{
			name:     "BatteryLevel",
			c:        s.BatteryLevel.C,
			variable: VarBatteryLevel,
			rule:     translator.BatteryLevel,
		},
	})
}
