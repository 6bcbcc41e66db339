package accessory

import (
	"context"

	"github.com/rs/zerolog"

	"vera-homekit-bridge/internal/domain/capability"
	"vera-homekit-bridge/internal/domain/model"
)

// VariableReader is the part of the controller an accessory needs.
type VariableReader interface {
	GetVariable(ctx context.Context, deviceID int, serviceID, variable string) (string, error)
}

// Accessory is the HomeKit-facing view of one controller device. Identity
// fields are copied from the record at construction and never re-fetched.
type Accessory struct {
	Name         string
	Manufacturer string
	Model        string
	SerialNumber string

	device     model.Device
	kinds      []capability.Kind
	controller VariableReader
	factory    *capability.Factory
	logger     zerolog.Logger
}

// Device returns a copy of the originating record.
func (a *Accessory) Device() model.Device {
	return a.device
}

func (a *Accessory) ID() int {
	return a.device.ID
}

// Kinds returns the functional capabilities of the accessory, in declaration
// order, without the identity capability.
func (a *Accessory) Kinds() []capability.Kind {
	out := make([]capability.Kind, len(a.kinds))
	copy(out, a.kinds)
	return out
}

// Services builds the accessory's bundles fresh, the identity bundle last.
func (a *Accessory) Services() []*capability.Bundle {
	bundles := make([]*capability.Bundle, 0, len(a.kinds)+1)
	for _, kind := range a.kinds {
		if b := a.factory.Build(kind, a.device.Name, a); b != nil {
			bundles = append(bundles, b)
		}
	}
	return append(bundles, capability.NewIdentity(a.Identity()))
}

func (a *Accessory) Identity() capability.Identity {
	return capability.Identity{
		Name:         a.Name,
		Manufacturer: a.Manufacturer,
		Model:        a.Model,
		SerialNumber: a.SerialNumber,
	}
}

// Identify logs the request and calls done. A nil done makes it a no-op.
func (a *Accessory) Identify(done func()) {
	if done == nil {
		return
	}
	a.logger.Info().Str("accessory", a.Name).Msg("Identify")
	done()
}

// GetVariable reads one variable of the accessory's device from the
// controller. Failures are logged and returned unchanged.
func (a *Accessory) GetVariable(ctx context.Context, serviceID, variable string) (string, error) {
	v, err := a.controller.GetVariable(ctx, a.device.ID, serviceID, variable)
	if err != nil {
		a.logger.Error().
			Err(err).
			Int("device_id", a.device.ID).
			Str("service_id", serviceID).
			Str("variable", variable).
			Msg("Failed to read controller variable")
		return "", err
	}
	return v, nil
}
