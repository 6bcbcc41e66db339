package vera

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"vera-homekit-bridge/internal/domain/model"
)

const (
	DefaultTimeout = 10 * time.Second

	dataRequestPath = "data_request"
	maxBodyBytes    = 32 << 20
)

// Client issues data_request calls against one controller. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func NewClient(conn model.Connection, opts ...Option) *Client {
	timeout := conn.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:    conn.BaseURL(),
		httpClient: &http.Client{Timeout: timeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetDevices fetches the controller catalog (user_data).
func (c *Client) GetDevices(ctx context.Context) ([]model.Device, error) {
	body, err := c.dataRequest(ctx, url.Values{"id": {"user_data"}})
	if err != nil {
		return nil, err
	}
	return parseDevices(body)
}

// GetVariable returns the raw text of one device variable. An empty string
// means the controller has no value.
func (c *Client) GetVariable(ctx context.Context, deviceID int, serviceID, variable string) (string, error) {
	body, err := c.dataRequest(ctx, url.Values{
		"id":        {"variableget"},
		"DeviceNum": {strconv.Itoa(deviceID)},
		"serviceId": {serviceID},
		"Variable":  {variable},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *Client) dataRequest(ctx context.Context, params url.Values) ([]byte, error) {
	id := params.Get("id")
	u := c.baseURL + dataRequestPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vera: %s: %w", id, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("vera: %s: read body: %w", id, err)
	}

	c.logger.Debug().
		Str("request", id).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Controller request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Request:    id,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return body, nil
}

// parseDevices reads the devices array of a user_data response. The
// controller is loose with types (ids and flags may be numbers or strings),
// so fields are read through gjson rather than a fixed struct.
func parseDevices(body []byte) ([]model.Device, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedCatalog)
	}

	result := gjson.GetBytes(body, "devices")
	if !result.Exists() {
		return nil, fmt.Errorf("%w: missing devices", ErrMalformedCatalog)
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("%w: devices is not an array", ErrMalformedCatalog)
	}

	var devices []model.Device
	result.ForEach(func(_, d gjson.Result) bool {
		devices = append(devices, model.Device{
			ID:           int(d.Get("id").Int()),
			Name:         d.Get("name").String(),
			Manufacturer: d.Get("manufacturer").String(),
			Model:        d.Get("model").String(),
			SerialNumber: d.Get("local_udn").String(),
			Type:         model.DeviceType(d.Get("device_type").String()),
			Invisible:    d.Get("invisible").Bool(),
		})
		return true
	})
	return devices, nil
}
