package capability

// Builder constructs one bundle for the named device.
type Builder func(name string, src Source, opts Options) *Bundle

type Factory struct {
	builders map[Kind]Builder
	opts     Options
}

func NewFactory(opts Options) *Factory {
	return &Factory{
		builders: map[Kind]Builder{
			KindThermostat:    NewThermostat,
			KindLockMechanism: NewLockMechanism,
			KindBattery:       NewBattery,
		},
		opts: opts,
	}
}

// Build returns nil for kinds without a builder.
func (f *Factory) Build(kind Kind, name string, src Source) *Bundle {
	if b, ok := f.builders[kind]; ok {
		return b(name, src, f.opts)
	}
	return nil
}
