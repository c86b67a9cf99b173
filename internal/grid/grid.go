// Package grid provides the structured 3D grid topology that property arrays
// are addressed through. It owns dimension bookkeeping and (i,j,k) to flat
// index conversion; it never owns cell data.
package grid

import "fmt"

// Grid describes an nx by ny by nz structured grid. Cells are stored flat
// with i varying fastest, then j, then k.
type Grid struct {
	NX int
	NY int
	NZ int
}

// New builds a Grid and validates the dimensions are positive.
func New(nx, ny, nz int) (*Grid, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%dx%d", nx, ny, nz)
	}
	return &Grid{NX: nx, NY: ny, NZ: nz}, nil
}

// MustNew is New for fixed-size grids in tests and tools; it panics on
// invalid dimensions.
func MustNew(nx, ny, nz int) *Grid {
	g, err := New(nx, ny, nz)
	if err != nil {
		panic(err)
	}
	return g
}

// NumCells returns the total cell count nx*ny*nz.
func (g *Grid) NumCells() int { return g.NX * g.NY * g.NZ }

// Index converts zero-based (i,j,k) to the flat cell index: idx = i + j*nx + k*nx*ny.
func (g *Grid) Index(i, j, k int) int { return i + j*g.NX + k*g.NX*g.NY }

// Contains reports whether zero-based (i,j,k) lies inside the grid.
func (g *Grid) Contains(i, j, k int) bool {
	return i >= 0 && i < g.NX && j >= 0 && j < g.NY && k >= 0 && k < g.NZ
}

// IJK converts a flat cell index back to zero-based (i,j,k).
func (g *Grid) IJK(idx int) (i, j, k int) {
	i = idx % g.NX
	j = (idx / g.NX) % g.NY
	k = idx / (g.NX * g.NY)
	return i, j, k
}
