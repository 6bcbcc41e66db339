package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"vera-homekit-bridge/internal/domain/accessory"
	"vera-homekit-bridge/internal/domain/capability"
	"vera-homekit-bridge/internal/domain/model"
	"vera-homekit-bridge/internal/domain/translator"
	"vera-homekit-bridge/internal/ports"
)

var ErrAccessoryNotFound = errors.New("accessory not found")

// BridgeService turns the controller catalog into accessories.
type BridgeService struct {
	controller ports.ControllerPort
	assembler  *accessory.Assembler
	config     model.Config
	logger     zerolog.Logger
}

func NewBridgeService(controller ports.ControllerPort, cfg model.Config, logger zerolog.Logger) (*BridgeService, error) {
	opts := capability.Options{Logger: logger}
	if cfg.TemperatureFormula != "" {
		conv, err := translator.Formula(cfg.TemperatureFormula)
		if err != nil {
			return nil, fmt.Errorf("temperature formula: %w", err)
		}
		opts.Temperature = conv
	}

	return &BridgeService{
		controller: controller,
		assembler:  accessory.NewAssembler(controller, opts),
		config:     cfg,
		logger:     logger,
	}, nil
}

// Accessories fetches the device catalog and assembles one accessory per
// visible device, in catalog order. A failed fetch is logged and yields an
// empty list.
func (s *BridgeService) Accessories(ctx context.Context) []*accessory.Accessory {
	accessories, err := s.fetch(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to fetch controller devices")
		return []*accessory.Accessory{}
	}
	return accessories
}

func (s *BridgeService) Accessory(ctx context.Context, id int) (*accessory.Accessory, error) {
	accessories, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accessories {
		if a.ID() == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrAccessoryNotFound, id)
}

func (s *BridgeService) Config() model.Config {
	return s.config
}

func (s *BridgeService) fetch(ctx context.Context) ([]*accessory.Accessory, error) {
	s.logger.Info().Msg("Fetching controller accessories")

	devices, err := s.controller.GetDevices(ctx)
	if err != nil {
		return nil, err
	}

	accessories := make([]*accessory.Accessory, 0, len(devices))
	for _, d := range devices {
		if d.Invisible {
			continue
		}
		accessories = append(accessories, s.assembler.Assemble(d))
	}

	s.logger.Info().
		Int("devices", len(devices)).
		Int("accessories", len(accessories)).
		Msg("Fetched controller accessories")
	return accessories, nil
}
