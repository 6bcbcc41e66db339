package ports

import (
	"context"

	"vera-homekit-bridge/internal/domain/model"
)

// ControllerPort is the home-automation controller's device-state API.
type ControllerPort interface {
	GetDevices(ctx context.Context) ([]model.Device, error)
	GetVariable(ctx context.Context, deviceID int, serviceID, variable string) (string, error)
}
