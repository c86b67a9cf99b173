package props

// FaultMultipliers tracks MULTFLT transmissibility multipliers keyed by fault
// name. Like region edits these are incremental: a later declaration for the
// same fault multiplies into the existing value rather than replacing it.
type FaultMultipliers struct {
	byName map[string]float64
	order  []string
}

// NewFaultMultipliers returns an empty fault multiplier table.
func NewFaultMultipliers() *FaultMultipliers {
	return &FaultMultipliers{byName: make(map[string]float64)}
}

// Apply records one MULTFLT row. The first declaration for a fault starts
// from the implicit 1.0 multiplier; later ones compound multiplicatively.
func (f *FaultMultipliers) Apply(name string, multiplier float64) {
	if _, ok := f.byName[name]; !ok {
		f.byName[name] = 1.0
		f.order = append(f.order, name)
	}
	f.byName[name] *= multiplier
}

// Multiplier returns the accumulated multiplier for a fault name.
func (f *FaultMultipliers) Multiplier(name string) (float64, bool) {
	m, ok := f.byName[name]
	return m, ok
}

// Names returns the fault names in first-declaration order.
func (f *FaultMultipliers) Names() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}
