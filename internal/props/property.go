package props

import (
	"fmt"
	"iter"

	"github.com/strata-data/reservoir.model/internal/grid"
	"github.com/strata-data/reservoir.model/internal/monitoring"
	"github.com/strata-data/reservoir.model/internal/seq"
	"github.com/strata-data/reservoir.model/internal/units"
)

// Value is the cell value type of a grid property.
type Value interface {
	~int | ~float64
}

// Property is one materialized keyword: a dense per-cell array of a single
// numeric kind. The array length is fixed at creation and equals the grid
// cell count; the flat order is i fastest, then j, then k.
type Property[T Value] struct {
	name         string // canonical keyword name
	values       []T
	defaultValue T
	dim          units.Dimension
	grid         *grid.Grid
}

func newProperty[T Value](g *grid.Grid, name string, def T, dim units.Dimension) *Property[T] {
	values := make([]T, g.NumCells())
	if def != 0 {
		for i := range values {
			values[i] = def
		}
	}
	return &Property[T]{name: name, values: values, defaultValue: def, dim: dim, grid: g}
}

// Name returns the canonical keyword name.
func (p *Property[T]) Name() string { return p.name }

// Dimension returns the physical unit class of the property's values.
func (p *Property[T]) Dimension() units.Dimension { return p.dim }

// DefaultValue returns the registry default the property was filled with.
func (p *Property[T]) DefaultValue() T { return p.defaultValue }

// Values returns the full flat cell array. The slice is the property's
// backing store; callers must not mutate it after construction completes.
func (p *Property[T]) Values() []T { return p.values }

// Get returns the value at zero-based (i,j,k).
func (p *Property[T]) Get(i, j, k int) T {
	return p.values[p.grid.Index(i, j, k)]
}

// Set writes the value at zero-based (i,j,k). Only the construction flow may
// call this; region edits and assignments funnel through it.
func (p *Property[T]) Set(i, j, k int, v T) {
	p.values[p.grid.Index(i, j, k)] = v
}

// assign writes a payload over the cells of a window, pairing payload values
// with window cells in flat i-fastest order. A payload shorter than the
// window leaves the remaining cells untouched; a longer one is an error.
func (p *Property[T]) assign(values []T, win Window) error {
	if len(values) > win.Size() {
		return fmt.Errorf("keyword %s: %d values for a %d-cell window", p.name, len(values), win.Size())
	}
	next, stop := iter.Pull(win.Cells())
	defer stop()
	for _, v := range values {
		idx, ok := next()
		if !ok {
			break
		}
		p.values[idx] = v
	}
	return nil
}

// Collection owns the materialized properties of one numeric kind, keyed by
// canonical name with insertion order preserved.
type Collection[T Value] struct {
	grid     *grid.Grid
	registry *Registry
	kind     Kind
	byName   map[string]*Property[T]
	order    []string
}

func newCollection[T Value](g *grid.Grid, r *Registry, kind Kind) *Collection[T] {
	return &Collection[T]{
		grid:     g,
		registry: r,
		kind:     kind,
		byName:   make(map[string]*Property[T]),
	}
}

// Get returns an already materialized property. It never creates.
func (c *Collection[T]) Get(name string) (*Property[T], bool) {
	p, ok := c.byName[Canonical(name)]
	return p, ok
}

// Has reports whether the keyword is currently materialized in this
// collection.
func (c *Collection[T]) Has(name string) bool {
	_, ok := c.byName[Canonical(name)]
	return ok
}

// GetOrCreate returns the existing property for the keyword, or materializes
// it with the registry default fill. Unknown keywords fail with
// ErrUnsupportedKeyword; keywords of the other numeric kind fail with
// ErrTypeMismatch.
func (c *Collection[T]) GetOrCreate(name string) (*Property[T], error) {
	key := Canonical(name)
	if p, ok := c.byName[key]; ok {
		return p, nil
	}

	desc, err := c.registry.Descriptor(key)
	if err != nil {
		return nil, err
	}
	if desc.Kind != c.kind {
		return nil, fmt.Errorf("%w: %s is a %s keyword, not %s", ErrTypeMismatch, key, desc.Kind, c.kind)
	}

	var def T
	switch c.kind {
	case Int:
		def = T(desc.DefaultInt)
	case Double:
		def = T(desc.DefaultDouble)
	}

	p := newProperty(c.grid, key, def, desc.Dimension)
	c.byName[key] = p
	c.order = append(c.order, key)
	monitoring.Logf("materialized %s keyword %s (%d cells, default %v)", c.kind, key, c.grid.NumCells(), def)
	return p, nil
}

// All iterates the materialized properties in insertion order. The sequence
// is lazy and restartable; it never includes merely supported keywords.
func (c *Collection[T]) All() iter.Seq[*Property[T]] {
	return seq.Map(func(name string) *Property[T] { return c.byName[name] }, seq.Of(c.order...))
}

// Names returns the materialized keyword names in insertion order.
func (c *Collection[T]) Names() []string {
	return seq.Collect(seq.Of(c.order...))
}
