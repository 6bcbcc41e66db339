package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DefaultControllerPort is the port of the Vera data_request API.
const DefaultControllerPort = 3480

var pinPattern = regexp.MustCompile(`^\d{8}$`)

// Connection is the controller endpoint shared by every component issuing
// controller requests. It never changes after startup.
type Connection struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// BaseURL returns the root every data_request path is resolved against.
func (c Connection) BaseURL() string {
	port := c.Port
	if port == 0 {
		port = DefaultControllerPort
	}
	return "http://" + c.Host + ":" + strconv.Itoa(port) + "/"
}

type LogConfig struct {
	Level      string `json:"level"`
	File       string `json:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty"`
}

type Config struct {
	Controller Connection `json:"controller"`

	// TemperatureFormula overrides the Fahrenheit to Celsius conversion,
	// variable x. Empty keeps the default.
	TemperatureFormula string `json:"temperature_formula,omitempty"`

	BridgeName  string `json:"bridge_name"`
	PIN         string `json:"-"`
	HAPAddr     string `json:"hap_addr,omitempty"`
	StoragePath string `json:"storage_path"`
	AdminAddr   string `json:"admin_addr,omitempty"`

	Log LogConfig `json:"log"`
}

func (c *Config) Validate() error {
	if c.Controller.Host == "" {
		return errors.New("controller host is required")
	}
	if c.Controller.Port <= 0 || c.Controller.Port > 65535 {
		return fmt.Errorf("invalid controller port %d", c.Controller.Port)
	}
	if !pinPattern.MatchString(c.PIN) {
		return fmt.Errorf("invalid pin %q: must be 8 digits", c.PIN)
	}
	if c.StoragePath == "" {
		return errors.New("storage path is required")
	}
	return nil
}
