package props

import (
	"fmt"
	"sort"

	"github.com/strata-data/reservoir.model/internal/monitoring"
)

// Operator selects how a region edit combines its value into the target.
// Records are parsed into this tag once, before the mutation loop runs.
type Operator int

// Region edit operators
const (
	Add Operator = iota
	Multiply
)

func (o Operator) String() string {
	if o == Multiply {
		return "multiply"
	}
	return "add"
}

// RegionRequest is one classification-driven edit: mutate every cell of the
// target whose driver value equals RegionID. Driver is a keyword name, or
// empty to use the engine's current default region keyword.
type RegionRequest struct {
	Target   string
	Value    float64
	RegionID int
	Op       Operator
	Driver   string
}

// ApplyRegionEdit runs one region edit against the engine's collections. The
// driver must be an integer keyword; both driver and target are materialized
// with defaults if never assigned. The BOX clipping window is deliberately
// not consulted: region selection is by classification, not by index range.
// Add operands on dimensioned targets are physical magnitudes and pass
// through unit conversion; multiply operands are dimensionless ratios.
func (e *Engine) ApplyRegionEdit(req RegionRequest) error {
	driverName := req.Driver
	if driverName == "" {
		driverName = e.defaultRegion
	}

	desc, err := e.registry.Descriptor(driverName)
	if err != nil {
		return err
	}
	if desc.Kind != Int {
		return fmt.Errorf("%w: region driver %s must be an integer keyword", ErrTypeMismatch, desc.Name)
	}
	driver, err := e.ints.GetOrCreate(driverName)
	if err != nil {
		return err
	}

	targetDesc, err := e.registry.Descriptor(req.Target)
	if err != nil {
		return err
	}

	monitoring.Logf("region edit: %s %s %v where %s == %d",
		req.Op, targetDesc.Name, req.Value, desc.Name, req.RegionID)

	switch targetDesc.Kind {
	case Int:
		return e.applyIntRegionEdit(req, driver.Values())
	default:
		return e.applyDoubleRegionEdit(req, targetDesc, driver.Values())
	}
}

func (e *Engine) applyIntRegionEdit(req RegionRequest, regions []int) error {
	target, err := e.ints.GetOrCreate(req.Target)
	if err != nil {
		return err
	}

	switch req.Op {
	case Add:
		shift := int(req.Value)
		if float64(shift) != req.Value {
			return fmt.Errorf("%w: cannot add %v to integer keyword %s", ErrTypeMismatch, req.Value, target.Name())
		}
		for idx, region := range regions {
			if region == req.RegionID {
				target.values[idx] += shift
			}
		}
	case Multiply:
		factor := int(req.Value)
		if float64(factor) != req.Value {
			return fmt.Errorf("%w: cannot scale integer keyword %s by %v", ErrTypeMismatch, target.Name(), req.Value)
		}
		for idx, region := range regions {
			if region == req.RegionID {
				target.values[idx] *= factor
			}
		}
	}
	return nil
}

func (e *Engine) applyDoubleRegionEdit(req RegionRequest, desc Descriptor, regions []int) error {
	target, err := e.doubles.GetOrCreate(req.Target)
	if err != nil {
		return err
	}

	switch req.Op {
	case Add:
		shift := e.units.ToInternal(desc.Dimension, req.Value)
		for idx, region := range regions {
			if region == req.RegionID {
				target.values[idx] += shift
			}
		}
	case Multiply:
		for idx, region := range regions {
			if region == req.RegionID {
				target.values[idx] *= req.Value
			}
		}
	}
	return nil
}

// Regions returns the ascending distinct cell values of an integer keyword.
// A supported but never materialized keyword yields an empty result; the
// query itself never materializes anything.
func (e *Engine) Regions(name string) ([]int, error) {
	desc, err := e.registry.Descriptor(name)
	if err != nil {
		return nil, err
	}
	if desc.Kind != Int {
		return nil, fmt.Errorf("%w: %s is not an integer keyword", ErrTypeMismatch, desc.Name)
	}

	p, ok := e.ints.Get(name)
	if !ok {
		return []int{}, nil
	}

	seen := make(map[int]struct{})
	regions := []int{}
	for _, v := range p.Values() {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		regions = append(regions, v)
	}
	sort.Ints(regions)
	return regions, nil
}
