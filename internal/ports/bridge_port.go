package ports

import (
	"context"

	"vera-homekit-bridge/internal/domain/accessory"
	"vera-homekit-bridge/internal/domain/model"
)

// BridgePort is what the input adapters (HomeKit server, admin API) use.
type BridgePort interface {
	// Accessories fetches the catalog and never fails: controller errors
	// yield an empty list.
	Accessories(ctx context.Context) []*accessory.Accessory
	Accessory(ctx context.Context, id int) (*accessory.Accessory, error)
	Config() model.Config
}
