package capability

import (
	"github.com/brutella/hap/service"
)

// Kind names a capability bundle.
type Kind string

const (
	KindThermostat    Kind = "thermostat"
	KindLockMechanism Kind = "lock_mechanism"
	KindBattery       Kind = "battery"
	KindIdentity      Kind = "accessory_information"
)

// Bundle is one HomeKit service built for a device, together with the
// bindings of its controller-backed characteristics.
type Bundle struct {
	Kind     Kind
	Service  *service.S
	Bindings []*Binding
}

// Binding returns the binding of the characteristic with the given HomeKit
// type, or nil.
func (b *Bundle) Binding(charType string) *Binding {
	for _, binding := range b.Bindings {
		if binding.Characteristic.Type == charType {
			return binding
		}
	}
	return nil
}

// Value returns the stored value of a characteristic of the service.
func (b *Bundle) Value(charType string) (interface{}, bool) {
	for _, c := range b.Service.Cs {
		if c.Type == charType {
			return c.Val, true
		}
	}
	return nil, false
}
