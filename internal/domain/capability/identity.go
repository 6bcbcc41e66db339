package capability

import "github.com/brutella/hap/service"

// Identity is the snapshot carried by the accessory information service.
type Identity struct {
	Name         string
	Manufacturer string
	Model        string
	SerialNumber string
}

// NewIdentity builds the accessory information bundle. Its values are fixed at
// construction and have no controller bindings.
func NewIdentity(id Identity) *Bundle {
	s := service.NewAccessoryInformation()
	s.Name.SetValue(id.Name)
	s.Manufacturer.SetValue(id.Manufacturer)
	s.Model.SetValue(id.Model)
	s.SerialNumber.SetValue(id.SerialNumber)

	return &Bundle{Kind: KindIdentity, Service: s.S}
}
