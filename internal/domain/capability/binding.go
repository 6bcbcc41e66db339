package capability

import (
	"context"
	"net/http"

	"github.com/brutella/hap"
	"github.com/brutella/hap/characteristic"
	"github.com/brutella/hap/service"
	"github.com/rs/zerolog"

	"vera-homekit-bridge/internal/domain/translator"
)

// Source looks up one variable of the device a bundle is built for.
type Source interface {
	GetVariable(ctx context.Context, serviceID, variable string) (string, error)
}

// Variable addresses a controller variable by service URN and name.
type Variable struct {
	ServiceID string
	Name      string
}

type ReadFunc func(ctx context.Context) (interface{}, error)

type WriteFunc func(ctx context.Context, value interface{}) error

// Binding attaches a read accessor and an optional write acceptor to one
// characteristic of a bundle.
type Binding struct {
	Name           string
	Characteristic *characteristic.C
	Variable       Variable
	Read           ReadFunc
	Write          WriteFunc
}

// Writable reports whether the characteristic accepts writes.
func (b *Binding) Writable() bool {
	return b.Write != nil
}

// Options tune how builders translate values.
type Options struct {
	// Temperature replaces the Fahrenheit to Celsius conversion when set.
	Temperature translator.Converter
	Logger      zerolog.Logger
}

func (o Options) temperature(n translator.Number) translator.Number {
	if o.Temperature == nil {
		return n
	}
	return n.WithConverter(o.Temperature)
}

// characteristicSpec declares one characteristic of a capability.
type characteristicSpec struct {
	name     string
	c        *characteristic.C
	variable Variable
	rule     translator.Rule
	writable bool
}

func build(kind Kind, s *service.S, deviceName string, src Source, opts Options, specs []characteristicSpec) *Bundle {
	n := characteristic.NewName()
	n.SetValue(deviceName)
	s.AddC(n.C)

	b := &Bundle{Kind: kind, Service: s}
	for _, spec := range specs {
		binding := &Binding{
			Name:           spec.name,
			Characteristic: spec.c,
			Variable:       spec.variable,
			Read:           readVariable(src, spec.variable, spec.rule),
		}
		if spec.writable {
			binding.Write = acceptWrite(opts.Logger, deviceName, spec.name)
		}
		attach(binding)
		b.Bindings = append(b.Bindings, binding)
	}
	return b
}

func readVariable(src Source, v Variable, rule translator.Rule) ReadFunc {
	return func(ctx context.Context) (interface{}, error) {
		raw, err := src.GetVariable(ctx, v.ServiceID, v.Name)
		if err != nil {
			return nil, err
		}
		return rule.Translate(raw), nil
	}
}

// acceptWrite reports success without contacting the controller.
func acceptWrite(logger zerolog.Logger, deviceName, name string) WriteFunc {
	return func(_ context.Context, value interface{}) error {
		logger.Debug().
			Str("device", deviceName).
			Str("characteristic", name).
			Interface("value", value).
			Msg("Write accepted, not forwarded to controller")
		return nil
	}
}

// attach wires a binding into the HomeKit characteristic so reads and writes
// issued by paired controllers go through it.
func attach(b *Binding) {
	b.Characteristic.ValueRequestFunc = func(r *http.Request) (interface{}, int) {
		v, err := b.Read(requestContext(r))
		if err != nil {
			return nil, hap.JsonStatusServiceCommunicationFailure
		}
		return v, hap.JsonStatusSuccess
	}

	if b.Write == nil {
		return
	}
	b.Characteristic.SetValueRequestFunc = func(v interface{}, r *http.Request) (interface{}, int) {
		if err := b.Write(requestContext(r), v); err != nil {
			return nil, hap.JsonStatusServiceCommunicationFailure
		}
		return v, hap.JsonStatusSuccess
	}
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
