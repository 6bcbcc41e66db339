package model

// DeviceType is the device-type URN reported by the controller.
type DeviceType string

const (
	DeviceTypeThermostat DeviceType = "urn:schemas-upnp-org:device:HVAC_ZoneThermostat:1"
	DeviceTypeDoorLock   DeviceType = "urn:schemas-micasaverde-com:device:DoorLock:1"
)

// Device is one entry of the controller catalog. It is a value type: a copy
// is a snapshot of the record at fetch time.
type Device struct {
	ID           int
	Name         string
	Manufacturer string
	Model        string
	SerialNumber string // local_udn
	Type         DeviceType
	Invisible    bool
}
