package props

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/floats"

	"github.com/strata-data/reservoir.model/internal/deck"
	"github.com/strata-data/reservoir.model/internal/grid"
	"github.com/strata-data/reservoir.model/internal/units"
)

// Engine is the facade of the property subsystem. It dispatches keyword
// records to the registry, collections, clipping context and region engine,
// and exposes the query surface the rest of the state-building pipeline
// consumes. Construction is single-threaded; after the last record the
// collections are immutable and safe for concurrent reads.
type Engine struct {
	grid     *grid.Grid
	units    *units.System
	registry *Registry
	ints     *Collection[int]
	doubles  *Collection[float64]
	box      *BoxManager
	faults   *FaultMultipliers

	// defaultRegion names the driver keyword for region edits that carry
	// none. GRIDOPTS with multiplier regions switches it to MULTNUM.
	defaultRegion string
}

// New builds an engine over the given grid and unit system, sharing the
// process-wide keyword registry.
func New(g *grid.Grid, sys *units.System) *Engine {
	r := sharedRegistry
	return &Engine{
		grid:          g,
		units:         sys,
		registry:      r,
		ints:          newCollection[int](g, r, Int),
		doubles:       newCollection[float64](g, r, Double),
		box:           NewBoxManager(g),
		faults:        NewFaultMultipliers(),
		defaultRegion: DefaultRegionKeyword,
	}
}

// Process applies one keyword record. Records are strictly sequential: BOX
// state and cumulative edits make order significant.
func (e *Engine) Process(rec deck.Record) error {
	switch Canonical(rec.Keyword) {
	case "BOX":
		return e.processBox(rec)
	case "ENDBOX":
		e.box.EndBox()
		return nil
	case "GRIDOPTS":
		return e.processGridOpts(rec)
	case "ADDREG":
		return e.processRegionEdits(rec, Add)
	case "MULTIREG":
		return e.processRegionEdits(rec, Multiply)
	case "MULTFLT":
		return e.processMultflt(rec)
	default:
		return e.processAssignment(rec)
	}
}

// ProcessAll applies an ordered record stream, stopping at the first failure.
func (e *Engine) ProcessAll(records []deck.Record) error {
	for i, rec := range records {
		if err := e.Process(rec); err != nil {
			return fmt.Errorf("record %d (%s): %w", i, rec.Keyword, err)
		}
	}
	return nil
}

func (e *Engine) processBox(rec deck.Record) error {
	if len(rec.Rows) != 1 || len(rec.Rows[0]) != 6 {
		return fmt.Errorf("BOX record needs one row of six indices")
	}
	var bounds [6]int
	for n, item := range rec.Rows[0] {
		v, ok := item.Int()
		if !ok {
			return fmt.Errorf("BOX index %d is not an integer", n)
		}
		bounds[n] = v
	}
	return e.box.SetBox(bounds[0], bounds[1], bounds[2], bounds[3], bounds[4], bounds[5])
}

func (e *Engine) processGridOpts(rec deck.Record) error {
	if len(rec.Rows) != 1 || len(rec.Rows[0]) < 2 {
		return fmt.Errorf("GRIDOPTS record needs one row with at least two items")
	}
	nrmult, ok := rec.Rows[0][1].Int()
	if !ok {
		return fmt.Errorf("GRIDOPTS multiplier region count is not an integer")
	}
	// Multiplier regions make MULTNUM the preferred region driver.
	if nrmult > 0 {
		e.defaultRegion = "MULTNUM"
	}
	return nil
}

// decodeRegionName maps the shorthand driver tags found in region-edit rows
// to their keyword names. Full keyword names pass through canonicalized.
func decodeRegionName(tag string) string {
	switch Canonical(tag) {
	case "M":
		return "MULTNUM"
	case "F":
		return "FLUXNUM"
	case "O":
		return "OPERNUM"
	default:
		return Canonical(tag)
	}
}

func (e *Engine) processRegionEdits(rec deck.Record, op Operator) error {
	for n, row := range rec.Rows {
		if len(row) < 3 || len(row) > 4 {
			return fmt.Errorf("%s row %d: want target, value, region id and optional driver", rec.Keyword, n)
		}
		target, ok := row[0].Str()
		if !ok {
			return fmt.Errorf("%s row %d: target keyword is not a name", rec.Keyword, n)
		}
		value, ok := row[1].Float()
		if !ok {
			return fmt.Errorf("%s row %d: value is not a number", rec.Keyword, n)
		}
		regionID, ok := row[2].Int()
		if !ok {
			return fmt.Errorf("%s row %d: region id is not an integer", rec.Keyword, n)
		}
		driver := ""
		if len(row) == 4 {
			tag, ok := row[3].Str()
			if !ok {
				return fmt.Errorf("%s row %d: driver is not a name", rec.Keyword, n)
			}
			driver = decodeRegionName(tag)
		}

		err := e.ApplyRegionEdit(RegionRequest{
			Target:   target,
			Value:    value,
			RegionID: regionID,
			Op:       op,
			Driver:   driver,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) processMultflt(rec deck.Record) error {
	for n, row := range rec.Rows {
		if len(row) != 2 {
			return fmt.Errorf("MULTFLT row %d: want fault name and multiplier", n)
		}
		name, ok := row[0].Str()
		if !ok {
			return fmt.Errorf("MULTFLT row %d: fault name is not a string", n)
		}
		mult, ok := row[1].Float()
		if !ok {
			return fmt.Errorf("MULTFLT row %d: multiplier is not a number", n)
		}
		e.faults.Apply(name, mult)
	}
	return nil
}

// processAssignment handles bulk cell-assignment keywords. Values land in the
// active clipping window in flat order; physical values are converted into
// internal units before they are stored.
func (e *Engine) processAssignment(rec deck.Record) error {
	desc, err := e.registry.Descriptor(rec.Keyword)
	if err != nil {
		return err
	}
	if len(rec.Rows) != 1 {
		return fmt.Errorf("keyword %s: want exactly one value row, got %d", desc.Name, len(rec.Rows))
	}

	switch desc.Kind {
	case Int:
		values := make([]int, len(rec.Rows[0]))
		for n, item := range rec.Rows[0] {
			v, ok := item.Int()
			if !ok {
				return fmt.Errorf("%w: keyword %s value %d is not an integer", ErrTypeMismatch, desc.Name, n)
			}
			values[n] = v
		}
		p, err := e.ints.GetOrCreate(desc.Name)
		if err != nil {
			return err
		}
		return p.assign(values, e.box.Window())
	default:
		values := make([]float64, len(rec.Rows[0]))
		for n, item := range rec.Rows[0] {
			v, ok := item.Float()
			if !ok {
				return fmt.Errorf("%w: keyword %s value %d is not a number", ErrTypeMismatch, desc.Name, n)
			}
			values[n] = v
		}
		e.convertPayload(desc.Dimension, values)
		p, err := e.doubles.GetOrCreate(desc.Name)
		if err != nil {
			return err
		}
		return p.assign(values, e.box.Window())
	}
}

// convertPayload scales a raw payload into internal units in place.
func (e *Engine) convertPayload(dim units.Dimension, values []float64) {
	if dim == units.None || len(values) == 0 {
		return
	}
	if factor := e.units.Factor(dim); factor != 1.0 {
		floats.Scale(factor, values)
	}
	if offset := e.units.Offset(dim); offset != 0 {
		floats.AddConst(offset, values)
	}
}

// Supports reports whether the keyword is in the registry. Never fails.
func (e *Engine) Supports(name string) bool {
	return e.registry.Supports(name)
}

// HasIntProperty reports whether an integer keyword is materialized. Unknown
// keywords of any kind fail with ErrUnsupportedKeyword.
func (e *Engine) HasIntProperty(name string) (bool, error) {
	if !e.registry.Supports(name) {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedKeyword, name)
	}
	return e.ints.Has(name), nil
}

// HasDoubleProperty reports whether a double keyword is materialized.
// Unknown keywords of any kind fail with ErrUnsupportedKeyword.
func (e *Engine) HasDoubleProperty(name string) (bool, error) {
	if !e.registry.Supports(name) {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedKeyword, name)
	}
	return e.doubles.Has(name), nil
}

// GetIntProperty returns the integer property for the keyword, materializing
// it with defaults if supported but never assigned.
func (e *Engine) GetIntProperty(name string) (*Property[int], error) {
	return e.ints.GetOrCreate(name)
}

// GetDoubleProperty returns the double property for the keyword,
// materializing it with defaults if supported but never assigned.
func (e *Engine) GetDoubleProperty(name string) (*Property[float64], error) {
	return e.doubles.GetOrCreate(name)
}

// DefaultRegionKeyword returns the driver keyword used by region edits that
// name none.
func (e *Engine) DefaultRegionKeyword() string { return e.defaultRegion }

// IntProperties iterates the materialized integer properties in insertion
// order.
func (e *Engine) IntProperties() iter.Seq[*Property[int]] { return e.ints.All() }

// DoubleProperties iterates the materialized double properties in insertion
// order.
func (e *Engine) DoubleProperties() iter.Seq[*Property[float64]] { return e.doubles.All() }

// FaultMultiplier returns the accumulated MULTFLT multiplier for a fault.
func (e *Engine) FaultMultiplier(name string) (float64, bool) {
	return e.faults.Multiplier(name)
}

// FaultNames returns the declared fault names in first-declaration order.
func (e *Engine) FaultNames() []string { return e.faults.Names() }

// Grid returns the grid topology the properties are addressed through.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// Units returns the unit system raw values were converted with.
func (e *Engine) Units() *units.System { return e.units }
