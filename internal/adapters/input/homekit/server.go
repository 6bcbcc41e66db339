package homekit

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brutella/hap"
	hapaccessory "github.com/brutella/hap/accessory"
	"github.com/rs/zerolog"

	"vera-homekit-bridge/internal/domain/accessory"
	"vera-homekit-bridge/internal/domain/capability"
	"vera-homekit-bridge/internal/ports"
)

const (
	bridgeAccessoryID = 1
	// device accessories are numbered from the controller id so pairings
	// survive restarts and catalog reordering
	firstDeviceAccessoryID = 2
)

var categoryByKind = map[capability.Kind]byte{
	capability.KindThermostat:    hapaccessory.TypeThermostat,
	capability.KindLockMechanism: hapaccessory.TypeDoorLock,
}

// Server publishes the controller's accessories behind a HomeKit bridge.
type Server struct {
	bridge  ports.BridgePort
	store   hap.Store
	version string
	logger  zerolog.Logger
}

func NewServer(bridge ports.BridgePort, store hap.Store, version string, logger zerolog.Logger) *Server {
	return &Server{
		bridge:  bridge,
		store:   store,
		version: version,
		logger:  logger,
	}
}

// Build fetches the catalog once and returns the bridge and its accessories.
func (s *Server) Build(ctx context.Context) (*hapaccessory.Bridge, []*hapaccessory.A) {
	cfg := s.bridge.Config()

	bridge := hapaccessory.NewBridge(hapaccessory.Info{
		Name:         cfg.BridgeName,
		Manufacturer: "vera-homekit-bridge",
		Model:        "Vera Bridge",
		SerialNumber: cfg.Controller.Host,
		Firmware:     s.version,
	})
	bridge.A.Id = bridgeAccessoryID

	var accessories []*hapaccessory.A
	for _, a := range s.bridge.Accessories(ctx) {
		accessories = append(accessories, newAccessory(a))
	}
	return bridge, accessories
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	bridge, accessories := s.Build(ctx)

	srv, err := hap.NewServer(s.store, bridge.A, accessories...)
	if err != nil {
		return fmt.Errorf("create hap server: %w", err)
	}
	cfg := s.bridge.Config()
	srv.Pin = cfg.PIN
	srv.Addr = cfg.HAPAddr

	s.logger.Info().
		Str("name", cfg.BridgeName).
		Str("addr", cfg.HAPAddr).
		Int("accessories", len(accessories)).
		Msg("HomeKit server starting")
	return srv.ListenAndServe(ctx)
}

func newAccessory(a *accessory.Accessory) *hapaccessory.A {
	id := a.Identity()
	acc := hapaccessory.New(hapaccessory.Info{
		Name:         id.Name,
		Manufacturer: id.Manufacturer,
		Model:        id.Model,
		SerialNumber: id.SerialNumber,
	}, category(a))
	acc.Id = uint64(a.ID()) + firstDeviceAccessoryID
	acc.IdentifyFunc = func(*http.Request) {
		a.Identify(func() {})
	}

	for _, b := range a.Services() {
		// hap already carries the information service built from the same
		// identity snapshot
		if b.Kind == capability.KindIdentity {
			continue
		}
		acc.AddS(b.Service)
	}
	return acc
}

func category(a *accessory.Accessory) byte {
	kinds := a.Kinds()
	if len(kinds) == 0 {
		return hapaccessory.TypeOther
	}
	if c, ok := categoryByKind[kinds[0]]; ok {
		return c
	}
	return hapaccessory.TypeOther
}
