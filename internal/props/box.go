package props

import (
	"fmt"
	"iter"

	"github.com/strata-data/reservoir.model/internal/grid"
)

// Window is a contiguous index-range view of the grid: either the whole grid
// or the region selected by an active BOX. Bounds are zero-based inclusive.
type Window struct {
	g                      *grid.Grid
	i1, i2, j1, j2, k1, k2 int
}

// Size returns the number of cells in the window.
func (w Window) Size() int {
	return (w.i2 - w.i1 + 1) * (w.j2 - w.j1 + 1) * (w.k2 - w.k1 + 1)
}

// Cells yields the flat indices of the window in i-fastest order.
func (w Window) Cells() iter.Seq[int] {
	return func(yield func(int) bool) {
		for k := w.k1; k <= w.k2; k++ {
			for j := w.j1; j <= w.j2; j++ {
				for i := w.i1; i <= w.i2; i++ {
					if !yield(w.g.Index(i, j, k)) {
						return
					}
				}
			}
		}
	}
}

// BoxManager is the two-state spatial clipping context threaded through
// record dispatch: clipped by exactly one active box, or unclipped. Opening
// a new box replaces the previous one; there is no stack.
type BoxManager struct {
	g      *grid.Grid
	active *Window
}

// NewBoxManager starts unclipped, spanning the whole grid.
func NewBoxManager(g *grid.Grid) *BoxManager {
	return &BoxManager{g: g}
}

// SetBox activates a clipping window from 1-based inclusive index ranges, as
// they appear in BOX records. Ranges outside the grid fail with
// ErrInvalidBox and leave the current state untouched.
func (b *BoxManager) SetBox(i1, i2, j1, j2, k1, k2 int) error {
	ok := i1 >= 1 && i2 >= i1 && i2 <= b.g.NX &&
		j1 >= 1 && j2 >= j1 && j2 <= b.g.NY &&
		k1 >= 1 && k2 >= k1 && k2 <= b.g.NZ
	if !ok {
		return fmt.Errorf("%w: BOX %d %d %d %d %d %d on %dx%dx%d grid",
			ErrInvalidBox, i1, i2, j1, j2, k1, k2, b.g.NX, b.g.NY, b.g.NZ)
	}
	b.active = &Window{g: b.g, i1: i1 - 1, i2: i2 - 1, j1: j1 - 1, j2: j2 - 1, k1: k1 - 1, k2: k2 - 1}
	return nil
}

// EndBox returns to the unclipped state. Calling it with no active box is a
// no-op.
func (b *BoxManager) EndBox() {
	b.active = nil
}

// Clipped reports whether a box is active.
func (b *BoxManager) Clipped() bool { return b.active != nil }

// Window returns the active clipping window, or the whole grid when
// unclipped.
func (b *BoxManager) Window() Window {
	if b.active != nil {
		return *b.active
	}
	return Window{g: b.g, i2: b.g.NX - 1, j2: b.g.NY - 1, k2: b.g.NZ - 1}
}
