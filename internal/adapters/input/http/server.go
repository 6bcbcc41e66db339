package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"vera-homekit-bridge/internal/domain/accessory"
	"vera-homekit-bridge/internal/domain/capability"
	"vera-homekit-bridge/internal/domain/service"
	"vera-homekit-bridge/internal/ports"
)

const shutdownTimeout = 5 * time.Second

// Server exposes a small admin API to inspect what the bridge publishes.
type Server struct {
	bridge ports.BridgePort
	logger zerolog.Logger
}

func NewServer(bridge ports.BridgePort, logger zerolog.Logger) *Server {
	return &Server{bridge: bridge, logger: logger}
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	admin := r.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/config", s.handleConfig).Methods(http.MethodGet)
	admin.HandleFunc("/accessories", s.handleAccessories).Methods(http.MethodGet)
	admin.HandleFunc("/accessories/{id:[0-9]+}/characteristics", s.handleCharacteristics).Methods(http.MethodGet)
	admin.HandleFunc("/accessories/{id:[0-9]+}/identify", s.handleIdentify).Methods(http.MethodPost)
	return r
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("Admin server shutdown failed")
		}
	}()

	s.logger.Info().Str("addr", addr).Msg("Admin server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type configView struct {
	ControllerURL      string `json:"controller_url"`
	BridgeName         string `json:"bridge_name"`
	HAPAddr            string `json:"hap_addr,omitempty"`
	TemperatureFormula string `json:"temperature_formula,omitempty"`
}

type accessoryView struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Manufacturer string            `json:"manufacturer"`
	Model        string            `json:"model"`
	SerialNumber string            `json:"serial_number"`
	DeviceType   string            `json:"device_type"`
	Capabilities []capability.Kind `json:"capabilities"`
}

type characteristicView struct {
	Capability capability.Kind `json:"capability"`
	Name       string          `json:"name"`
	ServiceID  string          `json:"service_id"`
	Variable   string          `json:"variable"`
	Writable   bool            `json:"writable"`
	Value      interface{}     `json:"value,omitempty"`
	Error      string          `json:"error,omitempty"`
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	cfg := s.bridge.Config()
	writeJSON(w, http.StatusOK, configView{
		ControllerURL:      cfg.Controller.BaseURL(),
		BridgeName:         cfg.BridgeName,
		HAPAddr:            cfg.HAPAddr,
		TemperatureFormula: cfg.TemperatureFormula,
	})
}

func (s *Server) handleAccessories(w http.ResponseWriter, r *http.Request) {
	accessories := s.bridge.Accessories(r.Context())

	views := make([]accessoryView, 0, len(accessories))
	for _, a := range accessories {
		views = append(views, newAccessoryView(a))
	}
	writeJSON(w, http.StatusOK, views)
}

// handleCharacteristics reads every bound characteristic live.
func (s *Server) handleCharacteristics(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}

	views := []characteristicView{}
	for _, b := range a.Services() {
		for _, binding := range b.Bindings {
			v := characteristicView{
				Capability: b.Kind,
				Name:       binding.Name,
				ServiceID:  binding.Variable.ServiceID,
				Variable:   binding.Variable.Name,
				Writable:   binding.Writable(),
			}
			if value, err := binding.Read(r.Context()); err != nil {
				v.Error = err.Error()
			} else {
				v.Value = value
			}
			views = append(views, v)
		}
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleIdentify(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}
	a.Identify(func() {
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*accessory.Accessory, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid accessory id", http.StatusBadRequest)
		return nil, false
	}

	a, err := s.bridge.Accessory(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrAccessoryNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	case err != nil:
		s.logger.Error().Err(err).Int("accessory", id).Msg("Accessory lookup failed")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return nil, false
	}
	return a, true
}

func newAccessoryView(a *accessory.Accessory) accessoryView {
	return accessoryView{
		ID:           a.ID(),
		Name:         a.Name,
		Manufacturer: a.Manufacturer,
		Model:        a.Model,
		SerialNumber: a.SerialNumber,
		DeviceType:   string(a.Device().Type),
		Capabilities: a.Kinds(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
