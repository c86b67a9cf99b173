// Package props implements the grid property management engine: a typed
// registry of supported keywords, lazily materialized per-cell property
// arrays, BOX/ENDBOX spatial clipping, and region-driven edit operations.
// Records are processed one at a time in input order; once construction
// finishes the collections are immutable and safe for concurrent reads.
package props

import (
	"fmt"
	"strings"

	"github.com/strata-data/reservoir.model/internal/units"
)

// Kind partitions property keywords by their cell value type.
type Kind int

// Property kinds
const (
	Int Kind = iota
	Double
)

func (k Kind) String() string {
	if k == Int {
		return "int"
	}
	return "double"
}

// DefaultRegionKeyword is the driver property used by a region edit when the
// record names none and no grid options override it.
const DefaultRegionKeyword = "FLUXNUM"

// Descriptor is the registry entry for one supported keyword. Descriptors are
// immutable; default values are expressed in internal units.
type Descriptor struct {
	Name           string // canonical (upper-case) keyword name
	Kind           Kind
	DefaultInt     int
	DefaultDouble  float64
	Dimension      units.Dimension
	RegionEligible bool // usable as a region-edit driver
}

// Registry is the fixed catalogue of supported keywords. It is built once at
// process start and shared by reference; it is never mutated afterwards and
// is safe for concurrent use.
type Registry struct {
	byName map[string]Descriptor
}

// Canonical normalizes a keyword name for lookup and storage. All internal
// comparisons are exact matches on this form.
func Canonical(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// sharedRegistry is the process-wide catalogue handed to every engine.
var sharedRegistry = NewRegistry()

// NewRegistry builds the fixed keyword catalogue.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Descriptor)}

	intKeyword := func(name string, regionEligible bool) {
		r.add(Descriptor{
			Name:           name,
			Kind:           Int,
			DefaultInt:     1,
			Dimension:      units.None,
			RegionEligible: regionEligible,
		})
	}

	// Integer region and flag keywords. FLUXNUM, MULTNUM and OPERNUM may
	// drive region edits; the rest only classify for their own consumers.
	intKeyword("ACTNUM", false)
	intKeyword("SATNUM", false)
	intKeyword("IMBNUM", false)
	intKeyword("PVTNUM", false)
	intKeyword("EQLNUM", false)
	intKeyword("ENDNUM", false)
	intKeyword("FIPNUM", false)
	intKeyword("MISCNUM", false)
	intKeyword("FLUXNUM", true)
	intKeyword("MULTNUM", true)
	intKeyword("OPERNUM", true)

	doubleKeyword := func(name string, def float64, dim units.Dimension) {
		r.add(Descriptor{Name: name, Kind: Double, DefaultDouble: def, Dimension: dim})
	}

	// Floating-point physical keywords.
	doubleKeyword("PERMX", 0, units.Permeability)
	doubleKeyword("PERMY", 0, units.Permeability)
	doubleKeyword("PERMZ", 0, units.Permeability)
	doubleKeyword("PORO", 0, units.None)
	doubleKeyword("NTG", 1, units.None)
	doubleKeyword("MULTPV", 1, units.None)
	doubleKeyword("SWATINIT", 0, units.None)
	doubleKeyword("TEMPI", 288.15, units.Temperature) // 15C
	doubleKeyword("THCONR", 0, units.ThermalConductivity)

	return r
}

func (r *Registry) add(d Descriptor) {
	r.byName[Canonical(d.Name)] = d
}

// Supports reports whether a keyword name is in the catalogue. It never
// fails; matching is case-insensitive.
func (r *Registry) Supports(name string) bool {
	_, ok := r.byName[Canonical(name)]
	return ok
}

// Descriptor looks up the registry entry for a keyword name.
func (r *Registry) Descriptor(name string) (Descriptor, error) {
	d, ok := r.byName[Canonical(name)]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnsupportedKeyword, name)
	}
	return d, nil
}
